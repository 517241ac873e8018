// SPDX-License-Identifier: MPL-2.0

package vkdriver

import "testing"

func TestSafeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "vkCreateInstance", want: "vkCreateInstance\x00"},
		{name: "already terminated", in: "vkCreateInstance\x00", want: "vkCreateInstance\x00"},
		{name: "empty", in: "", want: "\x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := safeString(tt.in); got != tt.want {
				t.Errorf("safeString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSafeStrings(t *testing.T) {
	t.Parallel()

	if got := safeStrings(nil); got != nil {
		t.Errorf("safeStrings(nil) = %v, want nil", got)
	}

	got := safeStrings([]string{"a", "b\x00"})
	want := []string{"a\x00", "b\x00"}
	if len(got) != len(want) {
		t.Fatalf("safeStrings() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("safeStrings()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
