/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/unidoc/unidoc/common"

// maxpTable holds the glyph count of the Maximum Profile (maxp) table.
// Version 0.5 (CFF outlines) carries only the glyph count, version 1.0 (TrueType
// outlines) adds the memory requirements of the glyph program, which are not kept.
type maxpTable struct {
	version   fixed
	numGlyphs uint16
}

const (
	maxpVersion05 fixed = 0x00005000
	maxpVersion10 fixed = 0x00010000
)

// Table lengths by version.
const (
	maxpSize05 = 6
	maxpSize10 = 32
)

func (f *font) parseMaxp(r *byteReader) (*maxpTable, error) {
	tr, has, err := f.seekToTable(r, "maxp")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("maxp table not present")
		return nil, nil
	}

	t := &maxpTable{}
	err = r.read(&t.version, &t.numGlyphs)
	if err != nil {
		return nil, err
	}

	size := uint32(maxpSize10)
	switch {
	case t.version == maxpVersion05:
		size = maxpSize05
	case t.version < maxpVersion10:
		common.Log.Debug("Unsupported maxp version %#08x", int32(t.version))
		return nil, errRangeCheck
	}
	if tr.length < size {
		common.Log.Debug("maxp version %.1f too short: %d bytes", t.version.Float64(), tr.length)
		return nil, errRangeCheck
	}
	return t, nil
}
