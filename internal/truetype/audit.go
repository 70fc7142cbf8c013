/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"encoding/binary"
	"fmt"

	"github.com/unidoc/unidoc/common"
)

// ChecksumMismatch is a table whose recorded checksum differs from the checksum of its data.
type ChecksumMismatch struct {
	Tag      string
	Recorded uint32
	Computed uint32
}

func (m ChecksumMismatch) String() string {
	return fmt.Sprintf("%s: recorded %#08x, computed %#08x", m.Tag, m.Recorded, m.Computed)
}

// AuditReport holds the results of auditing a font's checksums and directory.
// An audit never rejects a font; it only reports what it finds.
type AuditReport struct {
	Mismatches []ChecksumMismatch

	// HasHead is false if the font has no head table, in which case the whole-font
	// checksum cannot be checked and FileChecksumOK is false.
	HasHead        bool
	FileChecksumOK bool

	// Sorted reports whether the table directory is in ascending tag order.
	Sorted bool
}

// OK reports whether the audit found nothing wrong.
func (a *AuditReport) OK() bool {
	return len(a.Mismatches) == 0 && a.HasHead && a.FileChecksumOK && a.Sorted
}

// audit recomputes the table checksums of font `f` from `data`, the complete font file.
func (f *font) audit(data []byte) (*AuditReport, error) {
	if f.ot == nil || f.trec == nil {
		return nil, errRequiredField
	}

	report := &AuditReport{Sorted: f.trec.sorted()}
	for _, tr := range f.trec.list {
		end := uint64(tr.offset) + uint64(tr.length)
		if end > uint64(len(data)) {
			common.Log.Debug("Table %s [%d, %d) outside font of %d bytes", tr.tableTag, tr.offset, end, len(data))
			return nil, errRangeCheck
		}
		b := data[tr.offset:end]

		// The head checksum is computed with checksumAdjustment set to 0.
		if tr.tableTag.String() == "head" {
			if len(b) < headChecksumAdjustmentOffset+4 {
				return nil, fmt.Errorf("%w: head too short", errRangeCheck)
			}
			b = append([]byte(nil), b...)
			copy(b[headChecksumAdjustmentOffset:], []byte{0, 0, 0, 0})
		}

		computed := checksum(b)
		if computed != tr.checksum {
			common.Log.Debug("Checksum of %s: recorded %d, computed %d", tr.tableTag, tr.checksum, computed)
			report.Mismatches = append(report.Mismatches, ChecksumMismatch{
				Tag:      tr.tableTag.String(),
				Recorded: tr.checksum,
				Computed: computed,
			})
		}
	}

	headRec, ok := f.trec.trMap["head"]
	if !ok || f.head == nil {
		return report, nil
	}
	report.HasHead = true

	whole := append([]byte(nil), data...)
	copy(whole[headRec.offset+headChecksumAdjustmentOffset:], []byte{0, 0, 0, 0})
	report.FileChecksumOK = f.head.checksumAdjustment == checksumMagic-checksum(whole)
	return report, nil
}

// checksum returns the sfnt checksum of `data`: the sum of its big-endian uint32 words,
// with a short final word zero padded.
func checksum(data []byte) uint32 {
	var sum uint32
	for len(data) >= 4 {
		sum += binary.BigEndian.Uint32(data)
		data = data[4:]
	}
	if len(data) > 0 {
		var tail [4]byte
		copy(tail[:], data)
		sum += binary.BigEndian.Uint32(tail[:])
	}
	return sum
}
