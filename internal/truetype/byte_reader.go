/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// byteReader encapsulates io.ReadSeeker with buffering and provides methods to read binary data as
// needed for truetype fonts.
type byteReader struct {
	rs     io.ReadSeeker
	reader *bufio.Reader
}

func newByteReader(rs io.ReadSeeker) *byteReader {
	return &byteReader{
		rs:     rs,
		reader: bufio.NewReader(rs),
	}
}

// SeekTo seeks to offset.
func (r *byteReader) SeekTo(offset int64) error {
	_, err := r.rs.Seek(offset, io.SeekStart)
	if err != nil {
		return err
	}
	r.reader.Reset(r.rs)
	return nil
}

// Skip skips over `n` bytes.
func (r *byteReader) Skip(n int) error {
	_, err := r.reader.Discard(n)
	return err
}

// readBytes reads `length` bytes straight from `r`.
func (r *byteReader) readBytes(length int) ([]byte, error) {
	b := make([]byte, length)
	_, err := io.ReadFull(r.reader, b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// read reads a series of big-endian fields from `r`.
func (r *byteReader) read(fields ...interface{}) error {
	for _, f := range fields {
		switch f.(type) {
		case *fixed, *fword, *ufword, *int16, *uint16, *uint32, *tag, *offset16, *offset32:
			err := binary.Read(r.reader, binary.BigEndian, f)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %T (read)", errTypeCheck, f)
		}
	}
	return nil
}
