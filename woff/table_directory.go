/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff

import (
	"fmt"

	"github.com/unidoc/unidoc/common"
)

// TableDirectoryEntry describes one table of a WOFF file.
type TableDirectoryEntry struct {
	Tag          Tag
	Offset       uint32 // offset of the table data in the WOFF file.
	CompLength   uint32 // length of the stored (possibly compressed) data.
	OrigLength   uint32 // length of the uncompressed table.
	OrigChecksum uint32 // checksum of the uncompressed table, passed through unchanged.
}

// IsCompressed reports whether the table data is stored zlib compressed.
func (e TableDirectoryEntry) IsCompressed() bool {
	return e.CompLength != e.OrigLength
}

func (e *TableDirectoryEntry) read(r *byteReader) error {
	return r.read(&e.Tag, &e.Offset, &e.CompLength, &e.OrigLength, &e.OrigChecksum)
}

// ParseTableDirectory reads the WOFF table directory of `data`. Entries are returned
// in file order.
func ParseTableDirectory(data []byte) ([]TableDirectoryEntry, error) {
	r := newByteReader(data)
	h, err := parseHeader(r)
	if err != nil {
		return nil, err
	}
	return parseTableDirectory(r, int(h.NumTables))
}

func parseTableDirectory(r *byteReader, numTables int) ([]TableDirectoryEntry, error) {
	if numTables < 0 {
		return nil, errRangeCheck
	}
	if need := headerSize + numTables*tableDirectoryEntrySize; need > r.Len() {
		return nil, fmt.Errorf("%w: table directory of %d entries needs %d bytes, have %d",
			ErrMalformedInput, numTables, need, r.Len())
	}

	err := r.Seek(headerSize)
	if err != nil {
		return nil, err
	}

	entries := make([]TableDirectoryEntry, numTables)
	for i := range entries {
		err = entries[i].read(r)
		if err != nil {
			return nil, err
		}
		common.Log.Debug("Table directory entry %d: %s %+v", i, entries[i].Tag, entries[i])
	}
	return entries, nil
}
