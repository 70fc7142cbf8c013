/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/unidoc/unidoc/common"

// hheaSize is the length of a version 1.0 hhea table.
const hheaSize = 36

// hheaTable holds the vertical metrics and the hmtx entry count of the horizontal header
// table (hhea). Caret and side bearing fields are not kept.
// https://docs.microsoft.com/en-us/typography/opentype/spec/hhea
type hheaTable struct {
	majorVersion     uint16
	minorVersion     uint16
	ascender         fword
	descender        fword
	lineGap          fword
	advanceWidthMax  ufword
	numberOfHMetrics uint16
}

func (f *font) parseHhea(r *byteReader) (*hheaTable, error) {
	tr, has, err := f.seekToTable(r, "hhea")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("hhea table absent")
		return nil, nil
	}
	if tr.length < hheaSize {
		common.Log.Debug("hhea too short: %d bytes", tr.length)
		return nil, errRangeCheck
	}

	t := &hheaTable{}
	err = r.read(&t.majorVersion, &t.minorVersion, &t.ascender, &t.descender, &t.lineGap, &t.advanceWidthMax)
	if err != nil {
		return nil, err
	}

	// minLeftSideBearing through metricDataFormat.
	err = r.Skip(hheaSize - 12 - 2)
	if err != nil {
		return nil, err
	}
	return t, r.read(&t.numberOfHMetrics)
}
