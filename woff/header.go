/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff

import (
	"fmt"

	"github.com/unidoc/unidoc/common"
)

// Header is the fixed 44-byte WOFF header.
// Only Flavor and NumTables take part in decoding; the other fields are informational.
type Header struct {
	Signature      uint32
	Flavor         uint32 // sfnt version of the wrapped font.
	Length         uint32
	NumTables      uint16
	Reserved       uint16
	TotalSfntSize  uint32
	MajorVersion   uint16
	MinorVersion   uint16
	MetaOffset     uint32
	MetaLength     uint32
	MetaOrigLength uint32
	PrivOffset     uint32
	PrivLength     uint32
}

// ParseHeader reads the WOFF header from the start of `data`.
func ParseHeader(data []byte) (*Header, error) {
	return parseHeader(newByteReader(data))
}

func parseHeader(r *byteReader) (*Header, error) {
	if r.Len() < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the %d byte header", ErrMalformedInput, r.Len(), headerSize)
	}
	err := r.Seek(0)
	if err != nil {
		return nil, err
	}

	h := &Header{}
	err = r.read(&h.Signature, &h.Flavor, &h.Length, &h.NumTables, &h.Reserved, &h.TotalSfntSize)
	if err != nil {
		return nil, err
	}

	err = r.read(&h.MajorVersion, &h.MinorVersion)
	if err != nil {
		return nil, err
	}

	err = r.read(&h.MetaOffset, &h.MetaLength, &h.MetaOrigLength, &h.PrivOffset, &h.PrivLength)
	if err != nil {
		return nil, err
	}

	common.Log.Debug("WOFF header: %+v", *h)
	return h, nil
}

// HasSignature reports whether `h` carries the 'wOFF' signature.
func (h *Header) HasSignature() bool {
	return h.Signature == signatureWOFF
}
