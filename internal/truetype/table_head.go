/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/unidoc/unidoc/common"

// headSize is the length of a version 1.0 head table.
const headSize = 54

const headMagicNumber = 0x5F0F3CF5

// offset of checksumAdjustment within the head table.
const headChecksumAdjustmentOffset = 8

// headTable holds the font header fields used for reporting and checksum auditing.
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
type headTable struct {
	majorVersion       uint16
	minorVersion       uint16
	fontRevision       fixed
	checksumAdjustment uint32
	magicNumber        uint32
	flags              uint16
	unitsPerEm         uint16
}

// parse the font's *head* table from `r` in the context of `f`.
func (f *font) parseHead(r *byteReader) (*headTable, error) {
	tr, has, err := f.seekToTable(r, "head")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}
	if tr.length < headSize {
		common.Log.Debug("head too short: %d bytes", tr.length)
		return nil, errRangeCheck
	}

	t := &headTable{}
	err = r.read(&t.majorVersion, &t.minorVersion, &t.fontRevision, &t.checksumAdjustment, &t.magicNumber)
	if err != nil {
		return nil, err
	}
	if t.magicNumber != headMagicNumber {
		common.Log.Debug("head magic number %#08x", t.magicNumber)
		return nil, errRangeCheck
	}
	return t, r.read(&t.flags, &t.unitsPerEm)
}
