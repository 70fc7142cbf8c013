/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff

import (
	"encoding/binary"
	"fmt"
)

// byteWriter writes big-endian fields into a buffer allocated once at its final size.
// The buffer starts zeroed, so bytes that are never written (such as table padding)
// read back as zero.
type byteWriter struct {
	buf []byte
	off int
}

func newByteWriter(size int) *byteWriter {
	return &byteWriter{buf: make([]byte, size)}
}

// Bytes returns the written buffer.
func (w *byteWriter) Bytes() []byte {
	return w.buf
}

// Offset returns the current write offset.
func (w *byteWriter) Offset() int {
	return w.off
}

func (w *byteWriter) reserve(n int) ([]byte, error) {
	if len(w.buf)-w.off < n {
		return nil, fmt.Errorf("%w: write of %d bytes at offset %d exceeds output size %d",
			errRangeCheck, n, w.off, len(w.buf))
	}
	b := w.buf[w.off : w.off+n]
	w.off += n
	return b, nil
}

// write writes a series of values to `w`.
func (w *byteWriter) write(fields ...interface{}) error {
	for _, f := range fields {
		switch t := f.(type) {
		case uint16:
			b, err := w.reserve(2)
			if err != nil {
				return err
			}
			binary.BigEndian.PutUint16(b, t)
		case uint32:
			b, err := w.reserve(4)
			if err != nil {
				return err
			}
			binary.BigEndian.PutUint32(b, t)
		case Tag:
			b, err := w.reserve(4)
			if err != nil {
				return err
			}
			binary.BigEndian.PutUint32(b, uint32(t))
		default:
			return fmt.Errorf("%w: %T (write)", errTypeCheck, t)
		}
	}
	return nil
}

// writeBytes copies `data` into `w`.
func (w *byteWriter) writeBytes(data []byte) error {
	b, err := w.reserve(len(data))
	if err != nil {
		return err
	}
	copy(b, data)
	return nil
}
