/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tunicode "golang.org/x/text/encoding/unicode"
)

// beBytes encodes `fields` big-endian.
func beBytes(t testing.TB, fields ...interface{}) []byte {
	var buf bytes.Buffer
	for _, f := range fields {
		require.NoError(t, binary.Write(&buf, binary.BigEndian, f))
	}
	return buf.Bytes()
}

func tagOf(s string) tag {
	var tg tag
	copy(tg[:], s+"    ")
	return tg
}

// buildTestFont writes a minimal sfnt font with head, hhea, maxp and name tables and
// valid checksums.
func buildTestFont(t *testing.T, family, fullName string, maxpVersion fixed) []byte {
	head := beBytes(t, uint16(1), uint16(0), fixed(0x00018000), uint32(0), uint32(headMagicNumber),
		uint16(0), uint16(2048), int64(0), int64(0),
		[]int16{0, -200, 1000, 1500}, uint16(0), uint16(8), int16(2), int16(1), int16(0))
	require.Len(t, head, headSize)

	hhea := beBytes(t, uint16(1), uint16(0), fword(1900), fword(-500), fword(0), ufword(1200),
		make([]byte, 22), uint16(3))
	require.Len(t, hhea, hheaSize)

	maxp := beBytes(t, maxpVersion, uint16(3))
	if maxpVersion != maxpVersion05 {
		maxp = append(maxp, make([]byte, maxpSize10-maxpSize05)...)
	}

	winFamily, err := tunicode.UTF16(tunicode.BigEndian, tunicode.IgnoreBOM).NewEncoder().Bytes([]byte(family))
	require.NoError(t, err)
	macFull := []byte(fullName)
	name := beBytes(t, uint16(0), uint16(2), offset16(6+2*12),
		[]uint16{platformWindows, 1, 0x409, nameIDFamily, uint16(len(winFamily)), 0},
		[]uint16{platformMacintosh, 0, 0, nameIDFullName, uint16(len(macFull)), uint16(len(winFamily))},
		winFamily, macFull)

	bodies := []struct {
		tag  string
		data []byte
	}{
		{"head", head},
		{"hhea", hhea},
		{"maxp", maxp},
		{"name", name},
	}

	var dir, body bytes.Buffer
	dir.Write(beBytes(t, uint32(0x00010000), uint16(len(bodies)), uint16(64), uint16(2), uint16(0)))
	offset := 12 + 16*len(bodies)
	for _, b := range bodies {
		dir.Write(beBytes(t, tagOf(b.tag), checksum(b.data), uint32(offset+body.Len()), uint32(len(b.data))))
		body.Write(b.data)
		for body.Len()%4 != 0 {
			body.WriteByte(0)
		}
	}

	data := append(dir.Bytes(), body.Bytes()...)
	binary.BigEndian.PutUint32(data[offset+headChecksumAdjustmentOffset:], checksumMagic-checksum(data))
	return data
}

func TestParseBytes(t *testing.T) {
	data := buildTestFont(t, "Thief Sans", "Thief Sans Regular", maxpVersion10)

	fnt, err := ParseBytes(data)
	require.NoError(t, err)

	assert.Equal(t, uint32(0x00010000), fnt.SfntVersion())
	assert.Equal(t, 4, fnt.NumTables())
	assert.Equal(t, []string{"head", "hhea", "maxp", "name"}, fnt.TableTags())
	assert.True(t, fnt.HasTable("maxp"))
	assert.False(t, fnt.HasTable("glyf"))
	assert.Equal(t, 3, fnt.NumGlyphs())
	assert.Equal(t, 2048, fnt.UnitsPerEm())
	assert.Equal(t, 1.5, fnt.Revision())
	assert.Equal(t, 1900, fnt.Ascender())
	assert.Equal(t, -500, fnt.Descender())
	assert.Equal(t, "Thief Sans", fnt.FamilyName())
	assert.Equal(t, "Thief Sans Regular", fnt.FullName())
	assert.Equal(t, "", fnt.Version())
	assert.Contains(t, fnt.TableRecords(), "Table record 4: name")
}

func TestParseMaxpVersion05(t *testing.T) {
	data := buildTestFont(t, "Thief", "Thief", maxpVersion05)
	fnt, err := ParseBytes(data)
	require.NoError(t, err)
	assert.Equal(t, 3, fnt.NumGlyphs())

	report, err := fnt.Audit()
	require.NoError(t, err)
	assert.True(t, report.OK())
}

func TestParseTruncated(t *testing.T) {
	data := buildTestFont(t, "Thief", "Thief", maxpVersion10)
	for _, n := range []int{0, 11, 40, 80} {
		_, err := ParseBytes(data[:n])
		assert.Error(t, err, "length %d", n)
	}
}

func TestParseInvalidTables(t *testing.T) {
	// Table records start at 12: tag, checksum, offset, length.
	setLength := func(i int, length uint32) func(b []byte) {
		return func(b []byte) { binary.BigEndian.PutUint32(b[12+16*i+12:], length) }
	}

	testcases := []struct {
		name   string
		modify func(b []byte)
	}{
		{"short head", setLength(0, 20)},
		{"short hhea", setLength(1, 30)},
		{"short maxp", setLength(2, 6)},
		{"head magic", func(b []byte) {
			off := binary.BigEndian.Uint32(b[12+8:])
			b[off+12] ^= 0xFF
		}},
		{"maxp version", func(b []byte) {
			off := binary.BigEndian.Uint32(b[12+2*16+8:])
			binary.BigEndian.PutUint32(b[off:], 0x00004000)
		}},
	}

	for _, tcase := range testcases {
		t.Run(tcase.name, func(t *testing.T) {
			data := buildTestFont(t, "Thief", "Thief", maxpVersion10)
			tcase.modify(data)
			_, err := ParseBytes(data)
			assert.ErrorIs(t, err, errRangeCheck)
		})
	}
}

func TestParseTableRecords(t *testing.T) {
	data := buildTestFont(t, "Thief", "Thief", maxpVersion10)
	fnt, err := ParseBytes(data)
	require.NoError(t, err)

	expected := &offsetTable{sfntVersion: 0x00010000, numTables: 4, searchRange: 64, entrySelector: 2}
	opts := cmp.AllowUnexported(offsetTable{}, tableRecord{})
	if diff := cmp.Diff(expected, fnt.ot, opts); diff != "" {
		t.Errorf("offset table mismatch (-want +got):\n%s", diff)
	}

	// The head record's checksum covers head with checksumAdjustment zeroed.
	var records []tableRecord
	offset := uint32(12 + 16*4)
	for _, tr := range fnt.trec.list {
		b := append([]byte(nil), data[tr.offset:tr.offset+offset32(tr.length)]...)
		if tr.tableTag.String() == "head" {
			copy(b[headChecksumAdjustmentOffset:], []byte{0, 0, 0, 0})
		}
		records = append(records, tableRecord{tableTag: tr.tableTag, checksum: checksum(b), offset: offset32(offset), length: tr.length})
		offset += (tr.length + 3) &^ 3
	}
	if diff := cmp.Diff(records, fnt.trec.list, opts); diff != "" {
		t.Errorf("table records mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, fnt.trec.list[2], fnt.trec.trMap["maxp"])
}

func TestReadTypeCheck(t *testing.T) {
	r := newByteReader(bytes.NewReader([]byte{1, 2}))
	assert.ErrorIs(t, r.read(new(int8)), errTypeCheck)

	_, err := (&font{}).audit(nil)
	assert.ErrorIs(t, err, errRequiredField)
}
