/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff

import "fmt"

// ReadMetadata returns the uncompressed extended metadata (an XML document) of the WOFF
// font `data`, or nil if the font has none.
func ReadMetadata(data []byte) ([]byte, error) {
	r := newByteReader(data)
	h, err := parseHeader(r)
	if err != nil {
		return nil, err
	}
	if h.MetaLength == 0 {
		return nil, nil
	}

	stored, err := r.region(h.MetaOffset, h.MetaLength)
	if err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}
	meta, err := inflate(stored, h.MetaOrigLength)
	if err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}
	return meta, nil
}
