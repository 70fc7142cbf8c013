/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"fmt"

	"github.com/unidoc/unidoc/common"
)

// tableRecord represents table records, including name (tag) and file offset, size
// and checksum for integrity checking.
type tableRecord struct {
	tableTag tag
	checksum uint32
	offset   offset32
	length   uint32
}

func (tr *tableRecord) read(r *byteReader) error {
	return r.read(&tr.tableTag, &tr.checksum, &tr.offset, &tr.length)
}

// tableRecords represents the table directory of a font, in file order, with a map by
// table name for quick lookup.
type tableRecords struct {
	list  []tableRecord
	trMap map[string]tableRecord
}

func (f *font) parseTableRecords(r *byteReader) (*tableRecords, error) {
	numTables := int(f.ot.numTables)
	trs := &tableRecords{
		list:  make([]tableRecord, 0, numTables),
		trMap: make(map[string]tableRecord, numTables),
	}

	for i := 0; i < numTables; i++ {
		var rec tableRecord
		err := rec.read(r)
		if err != nil {
			return nil, err
		}
		trs.list = append(trs.list, rec)
		if _, dup := trs.trMap[rec.tableTag.String()]; dup {
			common.Log.Debug("Duplicate table record %s", rec.tableTag)
			continue
		}
		trs.trMap[rec.tableTag.String()] = rec
	}

	return trs, nil
}

// seekToTable seeks to position font table `tableName` in `r` if it has the table.
// The bool flag indicates that the table exists.
func (f *font) seekToTable(r *byteReader, tableName string) (tr tableRecord, has bool, err error) {
	tr, has = f.trec.trMap[tableName]
	if !has {
		return tr, false, nil
	}

	err = r.SeekTo(int64(tr.offset))
	if err != nil {
		return tr, false, err
	}

	return tr, true, nil
}

// sorted reports whether the records are in ascending tag order, as the sfnt format
// requires for binary search.
func (trs *tableRecords) sorted() bool {
	for i := 1; i < len(trs.list); i++ {
		prev, cur := trs.list[i-1].tableTag, trs.list[i].tableTag
		if bytes.Compare(prev[:], cur[:]) > 0 {
			return false
		}
	}
	return true
}

func (trs *tableRecords) String() string {
	var buf bytes.Buffer
	for i, tr := range trs.list {
		buf.WriteString(fmt.Sprintf("Table record %d: %s checksum=%#08x offset=%d length=%d\n",
			i+1, tr.tableTag, tr.checksum, tr.offset, tr.length))
	}
	return buf.String()
}
