/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// TagOrder selects how table directory entries are ordered in the decoded font.
type TagOrder int

const (
	// TagOrderBytewise sorts tags by their bytes, as the sfnt format requires.
	TagOrderBytewise TagOrder = iota

	// TagOrderNumeric sorts tags as unsigned 32-bit integers. Since tags are stored
	// big-endian this gives the same order as TagOrderBytewise.
	TagOrderNumeric

	// TagOrderLegacy sorts tags by comparing their decimal representations as strings,
	// so that 10 sorts before 2. This reproduces the output of the font-thief tool
	// byte for byte.
	TagOrderLegacy

	// TagOrderPreserve keeps the order of the WOFF table directory.
	TagOrderPreserve
)

var tagOrderNames = map[TagOrder]string{
	TagOrderBytewise: "bytewise",
	TagOrderNumeric:  "numeric",
	TagOrderLegacy:   "legacy",
	TagOrderPreserve: "preserve",
}

func (o TagOrder) String() string {
	if name, ok := tagOrderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("TagOrder(%d)", int(o))
}

func (o TagOrder) valid() bool {
	_, ok := tagOrderNames[o]
	return ok
}

// ParseTagOrder returns the TagOrder named `name`.
func ParseTagOrder(name string) (TagOrder, error) {
	for o, n := range tagOrderNames {
		if n == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown tag order %q", name)
}

// less reports whether tag `a` sorts before `b` under `o`.
func (o TagOrder) less(a, b Tag) bool {
	switch o {
	case TagOrderNumeric:
		return a < b
	case TagOrderLegacy:
		return strconv.FormatUint(uint64(a), 10) < strconv.FormatUint(uint64(b), 10)
	case TagOrderPreserve:
		return false
	}
	ab, bb := a.Bytes(), b.Bytes()
	return bytes.Compare(ab[:], bb[:]) < 0
}

// sortEntries orders `entries` in place. The sort is stable, so entries with equal
// keys keep their directory order.
func sortEntries(entries []TableDirectoryEntry, o TagOrder) {
	if o == TagOrderPreserve {
		return
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return o.less(entries[i].Tag, entries[j].Tag)
	})
}
