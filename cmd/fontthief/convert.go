/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"github.com/unidoc/unidoc/common"

	"github.com/unidoc/fontthief/internal/convert"
	"github.com/unidoc/fontthief/woff"
)

// DecodeFlags are the conversion settings shared by the convert and fetch commands.
type DecodeFlags struct {
	Format   string `short:"f" enum:"auto,ttf,otf" default:"auto" env:"FONTTHIEF_FORMAT" help:"Output format: auto picks otf for CFF fonts and ttf otherwise."`
	Order    string `enum:"bytewise,numeric,legacy,preserve" default:"bytewise" env:"FONTTHIEF_ORDER" help:"Table order of the output. legacy reproduces the original font-thief output."`
	Parallel bool   `help:"Inflate the tables of a font concurrently."`
	Jobs     int    `short:"j" default:"4" env:"FONTTHIEF_JOBS" help:"Number of files converted at once."`
	Keep     bool   `short:"k" env:"FONTTHIEF_KEEP" help:"Keep WOFF files after converting them."`
	NoVerify bool   `help:"Do not load converted fonts with an sfnt parser before writing them."`
}

func (f DecodeFlags) options() (convert.Options, error) {
	order, err := woff.ParseTagOrder(f.Order)
	if err != nil {
		return convert.Options{}, err
	}
	opts := convert.DefaultOptions()
	opts.Format = f.Format
	opts.Order = order
	opts.Parallel = f.Parallel
	opts.Jobs = f.Jobs
	opts.KeepSource = f.Keep
	opts.Verify = !f.NoVerify
	return opts, nil
}

type convertCmd struct {
	DecodeFlags `embed:""`

	Files []string `arg:"" type:"existingfile" help:"WOFF files to convert."`
}

func (c *convertCmd) Run(rc *runContext) error {
	opts, err := c.options()
	if err != nil {
		return err
	}
	return convertFiles(rc, c.Files, opts)
}

func convertFiles(rc *runContext, paths []string, opts convert.Options) error {
	results, err := convert.Files(rc.ctx, paths, opts)
	for _, res := range results {
		if res == nil {
			continue
		}
		common.Log.Info("Converted %s to %s", res.Input, res.Output)
	}
	return err
}
