/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	tunicode "golang.org/x/text/encoding/unicode"

	"github.com/unidoc/unidoc/common"
)

// nameTable represents the Naming table (name).
// The naming table allows multilingual strings to be associated with the font.
// These strings can represent copyright notices, font names, family names, style names, and so on.
type nameTable struct {
	format       uint16
	count        uint16
	stringOffset offset16
	nameRecords  []*nameRecord // len = count.
}

// Each string in the string storage is referenced by a name record.
type nameRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	length     uint16
	offset     offset16
	data       []byte // actual string data.
}

// Name IDs used for reporting.
const (
	nameIDFamily   = 1
	nameIDFullName = 4
	nameIDVersion  = 5
)

const (
	platformUnicode   = 0
	platformMacintosh = 1
	platformWindows   = 3
)

// GetNameByID returns the first entry of the name table with `nameID`, preferring
// Unicode and Windows records over Macintosh ones. An empty string is returned if
// there is none.
func (f *font) GetNameByID(nameID int) string {
	if f == nil || f.name == nil {
		common.Log.Debug("Font or name not set")
		return ""
	}
	var fallback string
	for _, nr := range f.name.nameRecords {
		if int(nr.nameID) != nameID {
			continue
		}
		if nr.platformID == platformMacintosh {
			if fallback == "" {
				fallback = nr.Decoded()
			}
			continue
		}
		return nr.Decoded()
	}
	return fallback
}

// makePrintable replaces unprintable runes with quoted runes.
func makePrintable(str string) string {
	var b strings.Builder
	for _, r := range str {
		if unicode.IsPrint(r) || r == '\n' {
			b.WriteRune(r)
		} else {
			b.WriteString(strconv.QuoteRune(r))
		}
	}
	return b.String()
}

// Decoded decodes the string data of `nr` according to its platform and encoding.
func (nr nameRecord) Decoded() string {
	switch nr.platformID {
	case platformUnicode, platformWindows:
		// Unicode platform strings and Windows Unicode (1) and symbol (0) strings are
		// UTF-16BE. https://docs.microsoft.com/en-us/typography/opentype/spec/name
		if nr.platformID == platformWindows && nr.encodingID > 1 {
			break
		}
		dec := tunicode.UTF16(tunicode.BigEndian, tunicode.IgnoreBOM).NewDecoder()
		s, err := dec.Bytes(nr.data)
		if err != nil {
			common.Log.Debug("Invalid UTF-16 name record %d: %v", nr.nameID, err)
			break
		}
		return makePrintable(string(s))
	case platformMacintosh:
		s, err := charmap.Macintosh.NewDecoder().Bytes(nr.data)
		if err != nil {
			break
		}
		return makePrintable(string(s))
	}

	return makePrintable(string(nr.data))
}

func (f *font) parseNameTable(r *byteReader) (*nameTable, error) {
	tr, has, err := f.seekToTable(r, "name")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}

	t := &nameTable{}
	err = r.read(&t.format, &t.count, &t.stringOffset)
	if err != nil {
		return nil, err
	}
	if t.format > 1 {
		common.Log.Debug("ERROR: format > 1 (%d)", t.format)
		return nil, errRangeCheck
	}

	for i := 0; i < int(t.count); i++ {
		var nr nameRecord
		err = r.read(&nr.platformID, &nr.encodingID, &nr.languageID, &nr.nameID, &nr.length, &nr.offset)
		if err != nil {
			return nil, err
		}
		t.nameRecords = append(t.nameRecords, &nr)
	}

	// Get the actual string data. Language tag records of format 1 are not needed.
	for _, nr := range t.nameRecords {
		if int(t.stringOffset)+int(nr.offset)+int(nr.length) > int(tr.length) {
			common.Log.Debug("name string offset outside table")
			return nil, errRangeCheck
		}

		err = r.SeekTo(int64(t.stringOffset) + int64(tr.offset) + int64(nr.offset))
		if err != nil {
			return nil, err
		}

		nr.data, err = r.readBytes(int(nr.length))
		if err != nil {
			return nil, err
		}
	}

	common.Log.Debug("Name records: %d", len(t.nameRecords))
	return t, nil
}
