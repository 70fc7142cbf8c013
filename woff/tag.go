/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff

import (
	"encoding/binary"
	"strings"
)

// Tag is a 4-byte table identifier (four ASCII bytes packed big-endian).
type Tag uint32

// MakeTag returns the tag for `s`, truncated or padded with spaces to 4 bytes.
func MakeTag(s string) Tag {
	b := []byte(s)
	if len(b) > 4 {
		b = b[:4]
	}
	for len(b) < 4 {
		b = append(b, ' ')
	}
	return Tag(binary.BigEndian.Uint32(b))
}

// Bytes returns the big-endian bytes of `t`.
func (t Tag) Bytes() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(t))
	return b
}

func (t Tag) String() string {
	b := t.Bytes()
	return strings.TrimSpace(string(b[:]))
}
