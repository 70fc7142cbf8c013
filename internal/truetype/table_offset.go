/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

type offsetTable struct {
	sfntVersion   uint32
	numTables     uint16
	searchRange   uint16
	entrySelector uint16
	rangeShift    uint16
}

func (f *font) parseOffsetTable(r *byteReader) (*offsetTable, error) {
	ot := &offsetTable{}
	err := r.read(&ot.sfntVersion, &ot.numTables, &ot.searchRange, &ot.entrySelector, &ot.rangeShift)
	if err != nil {
		return nil, err
	}
	return ot, nil
}
