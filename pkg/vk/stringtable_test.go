// SPDX-License-Identifier: MPL-2.0

package vk

import (
	"sort"
	"testing"
)

func TestBuildStringTable(t *testing.T) {
	t.Parallel()

	table := buildStringTable([]string{"c", "a", "b", "a", "c"})

	if got, want := table.len(), 3; got != want {
		t.Fatalf("len() = %d, want %d", got, want)
	}
	names := table.sorted()
	if !sort.StringsAreSorted(names) {
		t.Errorf("sorted() = %v, not ascending", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i] == names[i-1] {
			t.Errorf("sorted() contains duplicate %q", names[i])
		}
	}
}

func TestStringTableDuplicatesKeepLowestRecord(t *testing.T) {
	t.Parallel()

	// "a" appears at record 1 and 3; the index must resolve it to 1.
	table := buildStringTable([]string{"b", "a", "c", "a"})

	record, ok := table.find("a")
	if !ok {
		t.Fatal(`find("a") not found`)
	}
	if record != 1 {
		t.Errorf(`find("a") record = %d, want 1`, record)
	}
}

func TestStringTableFind(t *testing.T) {
	t.Parallel()

	table := buildStringTable([]string{"VK_LAYER_B", "VK_LAYER_A"})

	tests := []struct {
		name       string
		query      string
		wantRecord int
		wantOK     bool
	}{
		{name: "exact match first", query: "VK_LAYER_A", wantRecord: 1, wantOK: true},
		{name: "exact match second", query: "VK_LAYER_B", wantRecord: 0, wantOK: true},
		{name: "unknown", query: "VK_LAYER_C", wantOK: false},
		{name: "prefix does not leak", query: "VK_LAYER_A_hello", wantOK: false},
		{name: "shorter prefix does not leak", query: "VK_LAYER", wantOK: false},
		{name: "empty", query: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			record, ok := table.find(tt.query)
			if ok != tt.wantOK {
				t.Fatalf("find(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if ok && record != tt.wantRecord {
				t.Errorf("find(%q) record = %d, want %d", tt.query, record, tt.wantRecord)
			}
			if got := table.contains(tt.query); got != tt.wantOK {
				t.Errorf("contains(%q) = %v, want %v", tt.query, got, tt.wantOK)
			}
		})
	}
}

func TestStringTableEmpty(t *testing.T) {
	t.Parallel()

	table := buildStringTable(nil)
	if table.len() != 0 {
		t.Errorf("len() = %d, want 0", table.len())
	}
	if table.contains("anything") {
		t.Error(`contains("anything") = true on empty table`)
	}
}
