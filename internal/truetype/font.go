/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

// font is a data model for the parts of an sfnt font needed to describe it.
type font struct {
	ot   *offsetTable
	trec *tableRecords // table records (references other tables).
	head *headTable
	maxp *maxpTable
	hhea *hheaTable
	name *nameTable
}

func parseFont(r *byteReader) (*font, error) {
	f := &font{}

	var err error

	f.ot, err = f.parseOffsetTable(r)
	if err != nil {
		return nil, err
	}

	f.trec, err = f.parseTableRecords(r)
	if err != nil {
		return nil, err
	}

	f.head, err = f.parseHead(r)
	if err != nil {
		return nil, err
	}

	f.maxp, err = f.parseMaxp(r)
	if err != nil {
		return nil, err
	}

	f.hhea, err = f.parseHhea(r)
	if err != nil {
		return nil, err
	}

	f.name, err = f.parseNameTable(r)
	if err != nil {
		return nil, err
	}

	return f, nil
}
