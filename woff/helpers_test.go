/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"
)

// testTable is a table of a synthesized WOFF file.
type testTable struct {
	tag      Tag
	data     []byte // uncompressed data.
	compress bool
	checksum uint32
}

type testWOFF struct {
	flavor uint32
	tables []testTable
	meta   []byte
}

func zlibCompress(t testing.TB, data []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// build lays out a WOFF file: header, directory, then each table's stored data on a
// 4-byte boundary, then the metadata block if any.
func (tw testWOFF) build(t testing.TB) []byte {
	numTables := len(tw.tables)
	stored := make([][]byte, numTables)
	for i, tt := range tw.tables {
		stored[i] = tt.data
		if tt.compress {
			stored[i] = zlibCompress(t, tt.data)
			require.Less(t, len(stored[i]), len(tt.data), "table %d does not compress", i)
		}
	}

	offset := headerSize + numTables*tableDirectoryEntrySize
	var dir, body bytes.Buffer
	for i, tt := range tw.tables {
		binary.Write(&dir, binary.BigEndian, []uint32{
			uint32(tt.tag), uint32(offset), uint32(len(stored[i])), uint32(len(tt.data)), tt.checksum,
		})
		body.Write(stored[i])
		for body.Len()%4 != 0 {
			body.WriteByte(0)
		}
		offset = headerSize + numTables*tableDirectoryEntrySize + body.Len()
	}

	var metaOffset, metaLength, metaOrigLength uint32
	if tw.meta != nil {
		packed := zlibCompress(t, tw.meta)
		metaOffset, metaLength, metaOrigLength = uint32(offset), uint32(len(packed)), uint32(len(tw.meta))
		body.Write(packed)
	}

	total := headerSize + dir.Len() + body.Len()
	var out bytes.Buffer
	binary.Write(&out, binary.BigEndian, []uint32{signatureWOFF, tw.flavor, uint32(total)})
	binary.Write(&out, binary.BigEndian, []uint16{uint16(numTables), 0})
	binary.Write(&out, binary.BigEndian, uint32(0)) // totalSfntSize
	binary.Write(&out, binary.BigEndian, []uint16{1, 0})
	binary.Write(&out, binary.BigEndian, []uint32{metaOffset, metaLength, metaOrigLength, 0, 0})
	require.Equal(t, headerSize, out.Len())
	out.Write(dir.Bytes())
	out.Write(body.Bytes())
	return out.Bytes()
}

type sfntRecord struct {
	tag      Tag
	checksum uint32
	offset   uint32
	length   uint32
}

// readSfntRecords reads back the table directory of a decoded font.
func readSfntRecords(t testing.TB, sfnt []byte) []sfntRecord {
	require.GreaterOrEqual(t, len(sfnt), sfntHeaderSize)
	numTables := int(binary.BigEndian.Uint16(sfnt[4:]))
	require.GreaterOrEqual(t, len(sfnt), sfntHeaderSize+numTables*sfntTableRecordSize)

	var records []sfntRecord
	for i := 0; i < numTables; i++ {
		b := sfnt[sfntHeaderSize+i*sfntTableRecordSize:]
		records = append(records, sfntRecord{
			tag:      Tag(binary.BigEndian.Uint32(b)),
			checksum: binary.BigEndian.Uint32(b[4:]),
			offset:   binary.BigEndian.Uint32(b[8:]),
			length:   binary.BigEndian.Uint32(b[12:]),
		})
	}
	return records
}

func repeated(s string, n int) []byte {
	return bytes.Repeat([]byte(s), n)
}
