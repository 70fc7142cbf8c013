/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "bytes"

// Font wraps font for outside access.
type Font struct {
	data []byte
	*font
}

// ParseBytes parses the font held in `data`.
func ParseBytes(data []byte) (*Font, error) {
	fnt, err := parseFont(newByteReader(bytes.NewReader(data)))
	if err != nil {
		return nil, err
	}
	return &Font{data: data, font: fnt}, nil
}

// Audit recomputes the checksums of all tables and of the whole font and compares them
// with the recorded values.
func (f *Font) Audit() (*AuditReport, error) {
	return f.audit(f.data)
}

// SfntVersion returns the sfnt version (0x00010000 for TrueType, 'OTTO' for CFF).
func (f *Font) SfntVersion() uint32 {
	return f.ot.sfntVersion
}

// NumTables returns the number of tables in the font.
func (f *Font) NumTables() int {
	return int(f.ot.numTables)
}

// TableTags returns the table tags in directory order.
func (f *Font) TableTags() []string {
	tags := make([]string, 0, len(f.trec.list))
	for _, tr := range f.trec.list {
		tags = append(tags, tr.tableTag.String())
	}
	return tags
}

// HasTable returns true if the font has a table named `tableName`.
func (f *Font) HasTable(tableName string) bool {
	_, has := f.trec.trMap[tableName]
	return has
}

// TableRecords returns a printable listing of the table directory.
func (f *Font) TableRecords() string {
	return f.trec.String()
}

// NumGlyphs returns the glyph count from the maxp table, or 0 without one.
func (f *Font) NumGlyphs() int {
	if f.maxp == nil {
		return 0
	}
	return int(f.maxp.numGlyphs)
}

// UnitsPerEm returns the design units per em from the head table, or 0 without one.
func (f *Font) UnitsPerEm() int {
	if f.head == nil {
		return 0
	}
	return int(f.head.unitsPerEm)
}

// Revision returns the font revision from the head table, or 0 without one.
func (f *Font) Revision() float64 {
	if f.head == nil {
		return 0
	}
	return f.head.fontRevision.Float64()
}

// Ascender returns the typographic ascender from the hhea table, or 0 without one.
func (f *Font) Ascender() int {
	if f.hhea == nil {
		return 0
	}
	return int(f.hhea.ascender)
}

// Descender returns the typographic descender from the hhea table, or 0 without one.
func (f *Font) Descender() int {
	if f.hhea == nil {
		return 0
	}
	return int(f.hhea.descender)
}

// FamilyName returns the font family name.
func (f *Font) FamilyName() string {
	return f.GetNameByID(nameIDFamily)
}

// FullName returns the full font name.
func (f *Font) FullName() string {
	return f.GetNameByID(nameIDFullName)
}

// Version returns the version string of the name table.
func (f *Font) Version() string {
	return f.GetNameByID(nameIDVersion)
}
