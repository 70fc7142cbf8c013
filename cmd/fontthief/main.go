/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Command fontthief downloads the fonts used by web pages and converts WOFF fonts to
// TrueType or OpenType.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/unidoc/unidoc/common"
)

var cli struct {
	Debug bool `help:"Print debug logs." env:"FONTTHIEF_DEBUG"`

	Convert convertCmd `cmd:"" help:"Convert WOFF files to TrueType or OpenType."`
	Info    infoCmd    `cmd:"" help:"Describe a WOFF file and the font it decodes to."`
	Fetch   fetchCmd   `cmd:"" help:"Download the fonts used by a web page."`
}

// runContext is passed to the Run method of every command.
type runContext struct {
	ctx context.Context
}

func setupLogging(debug bool) {
	level := common.LogLevelInfo
	if debug {
		level = common.LogLevelDebug
	}
	common.SetLogger(common.NewConsoleLogger(level))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kctx := kong.Parse(&cli,
		kong.Name("fontthief"),
		kong.Description("Font thief: find, download and convert web fonts."),
		kong.UsageOnError(),
	)
	setupLogging(cli.Debug)

	err := kctx.Run(&runContext{ctx: ctx})
	if err != nil {
		common.Log.Error("%v", err)
		stop()
		os.Exit(1)
	}
}
