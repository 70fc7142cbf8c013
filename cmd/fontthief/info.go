/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/unidoc/unidoc/common"

	"github.com/unidoc/fontthief/internal/convert"
	"github.com/unidoc/fontthief/internal/truetype"
	"github.com/unidoc/fontthief/woff"
)

type infoCmd struct {
	File  string `arg:"" type:"existingfile" help:"WOFF file to describe."`
	Order string `enum:"bytewise,numeric,legacy,preserve" default:"bytewise" help:"Table order used for decoding."`
}

func (c *infoCmd) Run(rc *runContext) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	order, err := woff.ParseTagOrder(c.Order)
	if err != nil {
		return err
	}
	return describe(os.Stdout, data, order)
}

// describe writes the WOFF header and directory of `data`, then decodes it and reports on
// the resulting font, including the checksums that decoding copied through unchecked.
func describe(w io.Writer, data []byte, order woff.TagOrder) error {
	h, err := woff.ParseHeader(data)
	if err != nil {
		return err
	}
	entries, err := woff.ParseTableDirectory(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Format:      %s\n", woff.Sniff(data))
	fmt.Fprintf(w, "Flavor:      0x%08x (%s)\n", h.Flavor, woff.FlavorFormat(h.Flavor))
	fmt.Fprintf(w, "WOFF:        version %d.%d\n", h.MajorVersion, h.MinorVersion)
	fmt.Fprintf(w, "Tables:      %d\n", h.NumTables)
	for _, e := range entries {
		state := "stored"
		if e.IsCompressed() {
			state = "compressed"
		}
		fmt.Fprintf(w, "  %-4s  %8d -> %8d  %-10s  checksum 0x%08x\n", e.Tag, e.CompLength, e.OrigLength, state, e.OrigChecksum)
	}

	meta, err := woff.ReadMetadata(data)
	if err != nil {
		return err
	}
	if meta != nil {
		fmt.Fprintf(w, "Metadata:    %d bytes\n", len(meta))
	}

	out, err := woff.DecodeWithOptions(data, woff.DecodeOptions{Order: order})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Decoded:     %d bytes\n", len(out))

	fnt, err := truetype.ParseBytes(out)
	if err != nil {
		return err
	}
	outlines := "none"
	switch {
	case fnt.HasTable("glyf"):
		outlines = "TrueType"
	case fnt.HasTable("CFF"), fnt.HasTable("CFF2"):
		outlines = "CFF"
	}
	fmt.Fprintf(w, "Sfnt:        0x%08x, %d tables, %s outlines\n", fnt.SfntVersion(), fnt.NumTables(), outlines)
	common.Log.Debug("Decoded table directory:\n%s", fnt.TableRecords())
	fmt.Fprintf(w, "Family:      %s\n", fnt.FamilyName())
	fmt.Fprintf(w, "Full name:   %s\n", fnt.FullName())
	fmt.Fprintf(w, "Version:     %s (revision %.3f)\n", fnt.Version(), fnt.Revision())
	fmt.Fprintf(w, "Glyphs:      %d\n", fnt.NumGlyphs())
	fmt.Fprintf(w, "Units/em:    %d, ascender %d, descender %d\n", fnt.UnitsPerEm(), fnt.Ascender(), fnt.Descender())

	if _, err := convert.Verify(out); err != nil {
		fmt.Fprintf(w, "Sfnt parser: %v\n", err)
	} else {
		fmt.Fprintf(w, "Sfnt parser: ok\n")
	}

	report, err := fnt.Audit()
	if err != nil {
		return err
	}
	for _, m := range report.Mismatches {
		fmt.Fprintf(w, "Checksum mismatch: %s\n", m)
	}
	if !report.Sorted {
		fmt.Fprintf(w, "Table directory is not sorted by tag\n")
	}
	if report.HasHead && !report.FileChecksumOK {
		fmt.Fprintf(w, "Font checksum adjustment does not match\n")
	}
	if report.OK() {
		fmt.Fprintf(w, "Checksums:   ok\n")
	}
	return nil
}
