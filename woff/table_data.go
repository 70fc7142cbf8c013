/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"golang.org/x/sync/errgroup"
)

// sfntTable is the data of one table, ready to be copied into the sfnt output.
type sfntTable struct {
	entry TableDirectoryEntry
	data  []byte // OrigLength bytes, zero padded to a 4-byte boundary.
}

// align4 rounds `n` up to the next multiple of 4.
func align4(n uint64) uint64 {
	return (n + 3) &^ 3
}

// extractTable returns the uncompressed and padded data of table `e` in `r`.
func extractTable(r *byteReader, e TableDirectoryEntry) (*sfntTable, error) {
	if e.CompLength > e.OrigLength {
		return nil, fmt.Errorf("%w: table %q compressed length %d exceeds original length %d",
			ErrMalformedInput, e.Tag, e.CompLength, e.OrigLength)
	}

	stored, err := r.region(e.Offset, e.CompLength)
	if err != nil {
		return nil, fmt.Errorf("table %q: %w", e.Tag, err)
	}

	data := stored
	if e.IsCompressed() {
		data, err = inflate(stored, e.OrigLength)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", e.Tag, err)
		}
	}

	return &sfntTable{entry: e, data: padTable(data, e.OrigLength)}, nil
}

// extractTables extracts all tables in `entries`, in order. With `parallel` set the
// tables are inflated concurrently; the call returns once all of them are done.
func extractTables(r *byteReader, entries []TableDirectoryEntry, parallel bool) ([]*sfntTable, error) {
	tables := make([]*sfntTable, len(entries))
	if !parallel {
		for i, e := range entries {
			t, err := extractTable(r, e)
			if err != nil {
				return nil, err
			}
			tables[i] = t
		}
		return tables, nil
	}

	var g errgroup.Group
	for i := range entries {
		i := i
		g.Go(func() error {
			t, err := extractTable(r, entries[i])
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// inflate decompresses the zlib stream `stored`, which must hold exactly `origLen`
// bytes of data. The output buffer grows with the inflated data, so a corrupt `origLen`
// does not cause a large allocation.
func inflate(stored []byte, origLen uint32) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(stored))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer zr.Close()

	var buf bytes.Buffer
	buf.Grow(int(min(uint64(origLen), uint64(len(stored))*4)))

	// Reading one byte past the expected length either hits the end of the stream, which
	// also verifies its adler32 checksum, or reveals surplus data.
	n, err := io.Copy(&buf, io.LimitReader(zr, int64(origLen)+1))
	switch {
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	case n > int64(origLen):
		return nil, fmt.Errorf("%w: inflated data exceeds expected %d bytes", ErrDecode, origLen)
	case n < int64(origLen):
		return nil, fmt.Errorf("%w: inflated %d bytes, expected %d", ErrDecode, n, origLen)
	}
	return buf.Bytes(), nil
}

// padTable returns `data` zero padded to a 4-byte boundary. Data already aligned is
// returned as is.
func padTable(data []byte, origLen uint32) []byte {
	if origLen%4 == 0 {
		return data
	}
	padded := make([]byte, align4(uint64(origLen)))
	copy(padded, data)
	return padded
}
