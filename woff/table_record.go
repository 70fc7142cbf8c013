/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff

import (
	"fmt"
	"math"
)

// tableRecord is an entry of the sfnt table directory.
type tableRecord struct {
	tableTag Tag
	checksum uint32
	offset   uint32
	length   uint32 // unpadded length.
}

func (tr tableRecord) write(w *byteWriter) error {
	return w.write(tr.tableTag, tr.checksum, tr.offset, tr.length)
}

// layoutTables assigns each table its offset in the sfnt output and returns the records
// together with the total output size. Tables are placed back to back after the header
// and directory, each starting on a 4-byte boundary.
func layoutTables(entries []TableDirectoryEntry) ([]tableRecord, int, error) {
	offset := uint64(sfntHeaderSize + len(entries)*sfntTableRecordSize)
	records := make([]tableRecord, len(entries))
	for i, e := range entries {
		if offset > math.MaxUint32 {
			return nil, 0, fmt.Errorf("%w: table %q offset %d exceeds 32 bits", ErrMalformedInput, e.Tag, offset)
		}
		records[i] = tableRecord{
			tableTag: e.Tag,
			checksum: e.OrigChecksum,
			offset:   uint32(offset),
			length:   e.OrigLength,
		}
		offset += align4(uint64(e.OrigLength))
	}
	if offset > math.MaxUint32 {
		return nil, 0, fmt.Errorf("%w: sfnt size %d exceeds 32 bits", ErrMalformedInput, offset)
	}
	return records, int(offset), nil
}
