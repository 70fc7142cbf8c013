/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetTableSearchParameters(t *testing.T) {
	testcases := []struct {
		numTables uint16
		expected  offsetTable
	}{
		{1, offsetTable{sfntVersion: FlavorTrueType, numTables: 1, searchRange: 16, entrySelector: 0, rangeShift: 0}},
		{2, offsetTable{sfntVersion: FlavorTrueType, numTables: 2, searchRange: 32, entrySelector: 1, rangeShift: 0}},
		{3, offsetTable{sfntVersion: FlavorTrueType, numTables: 3, searchRange: 32, entrySelector: 1, rangeShift: 16}},
		{15, offsetTable{sfntVersion: FlavorTrueType, numTables: 15, searchRange: 128, entrySelector: 3, rangeShift: 112}},
		{16, offsetTable{sfntVersion: FlavorTrueType, numTables: 16, searchRange: 256, entrySelector: 4, rangeShift: 0}},
		{18, offsetTable{sfntVersion: FlavorTrueType, numTables: 18, searchRange: 256, entrySelector: 4, rangeShift: 32}},
		{4095, offsetTable{sfntVersion: FlavorTrueType, numTables: 4095, searchRange: 32768, entrySelector: 11, rangeShift: 32752}},
	}

	for _, tcase := range testcases {
		ot, err := newOffsetTable(FlavorTrueType, tcase.numTables)
		require.NoError(t, err)
		assert.Equal(t, tcase.expected, *ot)
	}
}

func TestOffsetTableRejectsInvalidCounts(t *testing.T) {
	for _, n := range []uint16{0, 4096, 65535} {
		_, err := newOffsetTable(FlavorCFF, n)
		assert.ErrorIs(t, err, ErrMalformedInput, "numTables %d", n)
	}
}

func TestOffsetTableWrite(t *testing.T) {
	ot, err := newOffsetTable(FlavorCFF, 11)
	require.NoError(t, err)

	w := newByteWriter(sfntHeaderSize)
	require.NoError(t, ot.write(w))
	assert.Equal(t, []byte{'O', 'T', 'T', 'O', 0, 11, 0, 128, 0, 3, 0, 48}, w.Bytes())

	// The buffer is full.
	assert.ErrorIs(t, w.write(uint16(1)), errRangeCheck)
}
