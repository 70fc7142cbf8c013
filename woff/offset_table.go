/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff

import (
	"fmt"
	"math/bits"
)

// offsetTable is the 12-byte header of an sfnt font.
type offsetTable struct {
	sfntVersion   uint32
	numTables     uint16
	searchRange   uint16
	entrySelector uint16
	rangeShift    uint16
}

// newOffsetTable returns the sfnt header for a font of `numTables` tables, deriving the
// binary search parameters: searchRange is 16 times the largest power of two not
// exceeding numTables, entrySelector is log2 of that power and rangeShift is the
// remainder numTables*16 - searchRange.
func newOffsetTable(sfntVersion uint32, numTables uint16) (*offsetTable, error) {
	if numTables == 0 {
		return nil, fmt.Errorf("%w: font has no tables", ErrMalformedInput)
	}
	if numTables > maxNumTables {
		return nil, fmt.Errorf("%w: %d tables exceeds sfnt limit of %d", ErrMalformedInput, numTables, maxNumTables)
	}

	entrySelector := uint16(bits.Len16(numTables) - 1)
	searchRange := uint16(1<<entrySelector) * sfntTableRecordSize
	return &offsetTable{
		sfntVersion:   sfntVersion,
		numTables:     numTables,
		searchRange:   searchRange,
		entrySelector: entrySelector,
		rangeShift:    numTables*sfntTableRecordSize - searchRange,
	}, nil
}

func (ot *offsetTable) write(w *byteWriter) error {
	return w.write(ot.sfntVersion, ot.numTables, ot.searchRange, ot.entrySelector, ot.rangeShift)
}
