/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/unidoc/unidoc/common"

	"github.com/unidoc/fontthief/woff"
)

// Options control conversion.
type Options struct {
	// Format is the output extension: FormatAuto picks otf for CFF flavored fonts and ttf
	// otherwise.
	Format string

	// Order and Parallel are passed to the decoder.
	Order    woff.TagOrder
	Parallel bool

	// Jobs bounds the number of files converted at the same time. Values below 1 mean 1.
	Jobs int

	// KeepSource keeps the WOFF file after a successful conversion.
	KeepSource bool

	// Verify loads the decoded font with an independent sfnt parser before writing it.
	Verify bool
}

// DefaultOptions returns the default conversion options.
func DefaultOptions() Options {
	return Options{
		Format: FormatAuto,
		Order:  woff.TagOrderBytewise,
		Jobs:   4,
		Verify: true,
	}
}

// Result describes a converted file.
type Result struct {
	Input     string
	Output    string
	Format    woff.Format
	NumTables int
	NumGlyphs int // only set when verified.
}

// Bytes converts the WOFF font `data` and returns the sfnt data and its format.
func Bytes(data []byte, opts Options) ([]byte, woff.Format, error) {
	switch f := woff.Sniff(data); f {
	case woff.FormatWOFF:
	default:
		return nil, f, fmt.Errorf("%w: %s: %w", ErrUnsupportedFormat, f, woff.ErrNotWOFF)
	}

	h, err := woff.ParseHeader(data)
	if err != nil {
		return nil, woff.FormatUnknown, err
	}
	format, err := outputFormat(opts.Format, h.Flavor)
	if err != nil {
		return nil, woff.FormatUnknown, err
	}

	out, err := woff.DecodeWithOptions(data, woff.DecodeOptions{Order: opts.Order, Parallel: opts.Parallel})
	if err != nil {
		return nil, format, err
	}
	return out, format, nil
}

func outputFormat(option string, flavor uint32) (woff.Format, error) {
	switch option {
	case FormatAuto, "":
		return woff.FlavorFormat(flavor), nil
	case FormatTTF:
		return woff.FormatTrueType, nil
	case FormatOTF:
		return woff.FormatOpenType, nil
	}
	return woff.FormatUnknown, fmt.Errorf("%w: %q", errInvalidFormatOption, option)
}

// OutputPath returns `input` with its extension replaced by the one of `format`.
func OutputPath(input string, format woff.Format) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format.String()
}

// File converts the WOFF file at `path`, writing the result next to it.
func File(path string, opts Options) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	out, format, err := Bytes(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	res := &Result{
		Input:     path,
		Output:    OutputPath(path, format),
		Format:    format,
		NumTables: int(out[4])<<8 | int(out[5]),
	}
	if opts.Verify {
		res.NumGlyphs, err = Verify(out)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	err = os.WriteFile(res.Output, out, 0644)
	if err != nil {
		return nil, err
	}
	common.Log.Debug("Wrote %s (%d bytes, %d tables)", res.Output, len(out), res.NumTables)

	if !opts.KeepSource && res.Output != path {
		err = os.Remove(path)
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

// Files converts the files in `paths`, up to opts.Jobs at a time. A failure does not stop
// the other conversions; results of failed files are nil and the first error is returned.
func Files(ctx context.Context, paths []string, opts Options) ([]*Result, error) {
	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	results := make([]*Result, len(paths))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := File(path, opts)
			if err != nil {
				common.Log.Error("Converting %s: %v", path, err)
				return err
			}
			results[i] = res
			return nil
		})
	}
	return results, g.Wait()
}
