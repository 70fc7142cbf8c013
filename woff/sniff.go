/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff

import "encoding/binary"

// Format is the container format of a font file.
type Format int

const (
	FormatUnknown Format = iota
	FormatWOFF
	FormatWOFF2
	FormatTrueType
	FormatOpenType // sfnt with CFF outlines.
)

func (f Format) String() string {
	switch f {
	case FormatWOFF:
		return "woff"
	case FormatWOFF2:
		return "woff2"
	case FormatTrueType:
		return "ttf"
	case FormatOpenType:
		return "otf"
	}
	return "unknown"
}

// Sniff identifies the format of `data` from its first four bytes.
func Sniff(data []byte) Format {
	if len(data) < 4 {
		return FormatUnknown
	}
	switch binary.BigEndian.Uint32(data) {
	case signatureWOFF:
		return FormatWOFF
	case signatureWOFF2:
		return FormatWOFF2
	case FlavorTrueType, FlavorApple:
		return FormatTrueType
	case FlavorCFF:
		return FormatOpenType
	}
	return FormatUnknown
}

// FlavorFormat returns the sfnt format corresponding to a WOFF flavor.
func FlavorFormat(flavor uint32) Format {
	if flavor == FlavorCFF {
		return FormatOpenType
	}
	return FormatTrueType
}
