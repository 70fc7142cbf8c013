/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff

import "errors"

var (
	// ErrMalformedInput is returned when the WOFF buffer is truncated or structurally
	// invalid: too short for the header or a directory record, zero tables, or table
	// regions outside the buffer.
	ErrMalformedInput = errors.New("malformed woff input")

	// ErrDecode is returned when a compressed table (or the metadata block) cannot be
	// inflated, or inflates to a length other than the one recorded in the directory.
	ErrDecode = errors.New("woff decode error")

	// ErrNotWOFF is returned when a buffer is expected to be WOFF but is not.
	ErrNotWOFF = errors.New("not a woff font")

	errTypeCheck  = errors.New("type check error")
	errRangeCheck = errors.New("range check error")
)

const (
	headerSize              = 44
	tableDirectoryEntrySize = 20
	sfntHeaderSize          = 12
	sfntTableRecordSize     = 16

	// maxNumTables is the largest table count whose searchRange still fits in 16 bits.
	maxNumTables = 4095
)

// Flavors of the sfnt container wrapped by a WOFF file.
const (
	FlavorTrueType uint32 = 0x00010000
	FlavorApple    uint32 = 0x74727565 // 'true'
	FlavorCFF      uint32 = 0x4F54544F // 'OTTO'
)

const (
	signatureWOFF  uint32 = 0x774F4646 // 'wOFF'
	signatureWOFF2 uint32 = 0x774F4632 // 'wOF2'
)
