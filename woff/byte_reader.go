/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff

import (
	"encoding/binary"
	"fmt"
)

// byteReader is a cursor over an in-memory WOFF buffer. Every read is bounds checked:
// reading past the end of the buffer fails with ErrMalformedInput rather than panicking
// or returning short data.
type byteReader struct {
	data []byte
	off  int
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data}
}

// Offset returns the current offset of `r`.
func (r *byteReader) Offset() int {
	return r.off
}

// Len returns the length of the underlying buffer.
func (r *byteReader) Len() int {
	return len(r.data)
}

// Seek moves the cursor to `offset`.
func (r *byteReader) Seek(offset int) error {
	if offset < 0 || offset > len(r.data) {
		return fmt.Errorf("%w: seek to %d outside buffer of length %d", ErrMalformedInput, offset, len(r.data))
	}
	r.off = offset
	return nil
}

// Skip skips over `n` bytes.
func (r *byteReader) Skip(n int) error {
	return r.Seek(r.off + n)
}

// next returns the next `n` bytes and advances the cursor.
func (r *byteReader) next(n int) ([]byte, error) {
	if n < 0 || len(r.data)-r.off < n {
		return nil, fmt.Errorf("%w: read of %d bytes at offset %d exceeds buffer length %d",
			ErrMalformedInput, n, r.off, len(r.data))
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

// region returns a view of `length` bytes at `offset` without moving the cursor.
// The returned slice aliases the input and must not be modified.
func (r *byteReader) region(offset, length uint32) ([]byte, error) {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(r.data)) {
		return nil, fmt.Errorf("%w: region [%d, %d) exceeds buffer length %d",
			ErrMalformedInput, offset, end, len(r.data))
	}
	return r.data[offset:end], nil
}

// read reads a series of big-endian fields from `r`.
func (r *byteReader) read(fields ...interface{}) error {
	for _, f := range fields {
		switch t := f.(type) {
		case *uint16:
			val, err := r.readUint16()
			if err != nil {
				return err
			}
			*t = val
		case *uint32:
			val, err := r.readUint32()
			if err != nil {
				return err
			}
			*t = val
		case *Tag:
			val, err := r.readUint32()
			if err != nil {
				return err
			}
			*t = Tag(val)
		default:
			return fmt.Errorf("%w: %T (read)", errTypeCheck, t)
		}
	}
	return nil
}

func (r *byteReader) readUint16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *byteReader) readUint32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}
