// SPDX-License-Identifier: MPL-2.0

package vk

import (
	"sort"
)

// stringTable is an immutable, sorted, deduplicated index over capability
// names. Each indexed name carries the position of the raw record it was
// built from, so revision and origin metadata can be recovered from a found
// name without any assumption about record memory layout.
//
// Duplicate names collapse to a single entry keeping the record with the
// lowest position. Raw records are appended in scope order by the callers,
// so for extensions this implements the documented "lowest origin index
// wins" tie-break.
type stringTable struct {
	// names is the unique name index, ascending.
	names []string
	// record maps names[i] to the index of its raw record.
	record []int
}

// buildStringTable indexes the given raw names. The slice is not retained.
func buildStringTable(raw []string) stringTable {
	order := make([]int, len(raw))
	for i := range order {
		order[i] = i
	}
	// Stable so that equal names keep their raw order and the unique pass
	// below retains the first, i.e. lowest, record index.
	sort.SliceStable(order, func(a, b int) bool {
		return raw[order[a]] < raw[order[b]]
	})

	t := stringTable{
		names:  make([]string, 0, len(raw)),
		record: make([]int, 0, len(raw)),
	}
	for _, idx := range order {
		if n := len(t.names); n != 0 && t.names[n-1] == raw[idx] {
			continue
		}
		t.names = append(t.names, raw[idx])
		t.record = append(t.record, idx)
	}
	return t
}

// len returns the unique name count.
func (t stringTable) len() int { return len(t.names) }

// sorted returns the unique names in ascending order. Callers must not
// modify the returned slice.
func (t stringTable) sorted() []string { return t.names }

// contains reports whether name is in the index. O(log n).
func (t stringTable) contains(name string) bool {
	_, ok := t.find(name)
	return ok
}

// find returns the raw record index for name. O(log n). Unknown names are
// "not found", never an error.
func (t stringTable) find(name string) (int, bool) {
	i := sort.SearchStrings(t.names, name)
	if i == len(t.names) || t.names[i] != name {
		return 0, false
	}
	return t.record[i], true
}
