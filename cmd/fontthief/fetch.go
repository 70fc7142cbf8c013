/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/unidoc/unidoc/common"

	"github.com/unidoc/fontthief/internal/fetch"
	"github.com/unidoc/fontthief/internal/slug"
)

type fetchCmd struct {
	URL       string        `arg:"" name:"url" help:"Page to take the fonts from."`
	Dir       string        `short:"d" type:"path" default:"." env:"FONTTHIEF_DIR" help:"Directory the font-thief-<page> folder is created in."`
	Timeout   time.Duration `default:"30s" env:"FONTTHIEF_TIMEOUT" help:"HTTP timeout per request."`
	UserAgent string        `default:"fontthief" env:"FONTTHIEF_USER_AGENT" help:"User-Agent header sent with requests."`
	Convert   bool          `short:"c" help:"Convert downloaded WOFF fonts."`

	DecodeFlags `embed:""`
}

func (c *fetchCmd) Run(rc *runContext) error {
	_, err := fetch.ParsePageURL(c.URL)
	if err != nil {
		return err
	}

	opts := fetch.DefaultOptions()
	opts.Client = &http.Client{Timeout: c.Timeout}
	opts.UserAgent = c.UserAgent
	opts.Jobs = c.Jobs

	fonts, err := fetch.Scan(rc.ctx, c.URL, opts)
	if err != nil {
		return err
	}
	if len(fonts) == 0 {
		common.Log.Info("Found no fonts")
		return nil
	}
	common.Log.Info("Found %d fonts:", len(fonts))
	for _, f := range fonts {
		common.Log.Info("  %s", f.Name)
	}

	dir := filepath.Join(c.Dir, slug.DirName(c.URL))
	common.Log.Info("Downloading to %s", dir)
	paths, downloadErr := fetch.Download(rc.ctx, fonts, dir, opts)
	if !c.Convert {
		return downloadErr
	}

	var woffs []string
	for _, p := range paths {
		if strings.EqualFold(filepath.Ext(p), ".woff") {
			woffs = append(woffs, p)
		} else {
			common.Log.Debug("Not converting %s", p)
		}
	}
	convertOpts, err := c.options()
	if err != nil {
		return err
	}

	// Fonts that were downloaded are converted even if others failed.
	return errors.Join(downloadErr, convertFiles(rc, woffs, convertOpts))
}
