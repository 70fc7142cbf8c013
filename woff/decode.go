/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff

import (
	"fmt"

	"github.com/unidoc/unidoc/common"
)

// DecodeOptions controls decoding.
type DecodeOptions struct {
	// Order is the order of tables in the output directory and data.
	Order TagOrder

	// Parallel inflates tables concurrently. The output is identical either way.
	Parallel bool
}

// DefaultDecodeOptions returns the options used by Decode.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{Order: TagOrderBytewise}
}

// Decode converts the WOFF font `data` to its sfnt form.
//
// Errors wrap ErrMalformedInput or ErrDecode. `data` is not modified and the returned
// buffer never aliases it. Table checksums are copied through without validation.
func Decode(data []byte) ([]byte, error) {
	return DecodeWithOptions(data, DefaultDecodeOptions())
}

// DecodeWithOptions is like Decode with explicit options.
func DecodeWithOptions(data []byte, opts DecodeOptions) ([]byte, error) {
	if !opts.Order.valid() {
		return nil, fmt.Errorf("invalid %s", opts.Order)
	}

	r := newByteReader(data)
	h, err := parseHeader(r)
	if err != nil {
		return nil, err
	}

	ot, err := newOffsetTable(h.Flavor, h.NumTables)
	if err != nil {
		return nil, err
	}

	entries, err := parseTableDirectory(r, int(h.NumTables))
	if err != nil {
		return nil, err
	}
	sortEntries(entries, opts.Order)

	records, size, err := layoutTables(entries)
	if err != nil {
		return nil, err
	}
	common.Log.Debug("Decoding %d tables into %d bytes (%s order)", len(entries), size, opts.Order)

	tables, err := extractTables(r, entries, opts.Parallel)
	if err != nil {
		return nil, err
	}

	w := newByteWriter(size)
	err = ot.write(w)
	if err != nil {
		return nil, err
	}
	for _, tr := range records {
		err = tr.write(w)
		if err != nil {
			return nil, err
		}
	}
	for i, t := range tables {
		if w.Offset() != int(records[i].offset) {
			return nil, fmt.Errorf("%w: table %q written at %d, expected %d",
				errRangeCheck, t.entry.Tag, w.Offset(), records[i].offset)
		}
		err = w.writeBytes(t.data)
		if err != nil {
			return nil, err
		}
	}
	if w.Offset() != size {
		return nil, fmt.Errorf("%w: wrote %d of %d bytes", errRangeCheck, w.Offset(), size)
	}

	return w.Bytes(), nil
}
