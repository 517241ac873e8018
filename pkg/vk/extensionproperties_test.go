// SPDX-License-Identifier: MPL-2.0

package vk_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/evandropoa/magnum/internal/testutil/drivertest"
	"github.com/evandropoa/magnum/pkg/vk"
)

func extensionDriver() *drivertest.Driver {
	driver := drivertest.New()
	driver.Layers = []vk.LayerProperties{
		{LayerName: "VK_LAYER_X"},
		{LayerName: "VK_LAYER_Y"},
	}
	driver.GlobalExtensions = []vk.ExtensionProperties{
		{ExtensionName: "VK_EXT_debug_report", SpecVersion: 9},
		{ExtensionName: "EXT_FOO", SpecVersion: 1},
	}
	driver.LayerExtensions = map[string][]vk.ExtensionProperties{
		"VK_LAYER_X": {
			{ExtensionName: "EXT_FOO", SpecVersion: 5},
			{ExtensionName: "EXT_LAYERED", SpecVersion: 2},
		},
	}
	return driver
}

func TestInstanceExtensionPropertiesGlobalOnly(t *testing.T) {
	t.Parallel()

	properties := vk.NewInstanceExtensionProperties(extensionDriver())

	extensions := properties.Extensions()
	if !sort.StringsAreSorted(extensions) {
		t.Errorf("Extensions() = %v, not ascending", extensions)
	}
	if got, want := len(extensions), 2; got != want {
		t.Fatalf("len(Extensions()) = %d, want %d", got, want)
	}
	if properties.IsExtensionSupported("EXT_LAYERED") {
		t.Error("layer-scoped extension visible without querying the layer")
	}
}

func TestInstanceExtensionPropertiesMergesScopes(t *testing.T) {
	t.Parallel()

	properties := vk.NewInstanceExtensionProperties(extensionDriver(), "VK_LAYER_X")

	// Four raw records: two global, two from the layer; EXT_FOO twice.
	if got := properties.ExtensionCount(); got != 4 {
		t.Fatalf("ExtensionCount() = %d, want 4", got)
	}

	// The deduplicated listing has it once.
	extensions := properties.Extensions()
	if got, want := len(extensions), 3; got != want {
		t.Fatalf("len(Extensions()) = %d, want %d", got, want)
	}
	seen := 0
	for _, name := range extensions {
		if name == "EXT_FOO" {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("EXT_FOO listed %d times, want 1", seen)
	}

	if !properties.IsExtensionSupported("EXT_LAYERED") {
		t.Error("layer-scoped extension not visible after querying the layer")
	}
}

func TestInstanceExtensionPropertiesRevisionTieBreak(t *testing.T) {
	t.Parallel()

	properties := vk.NewInstanceExtensionProperties(extensionDriver(), "VK_LAYER_X")

	// EXT_FOO is r1 globally and r5 in the layer; the global record wins.
	if got := properties.ExtensionRevisionFor("EXT_FOO"); got != 1 {
		t.Errorf(`ExtensionRevisionFor("EXT_FOO") = %d, want 1`, got)
	}
	if got := properties.ExtensionRevisionFor("EXT_LAYERED"); got != 2 {
		t.Errorf(`ExtensionRevisionFor("EXT_LAYERED") = %d, want 2`, got)
	}
	if got := properties.ExtensionRevisionFor("EXT_NOPE"); got != 0 {
		t.Errorf(`ExtensionRevisionFor("EXT_NOPE") = %d, want 0`, got)
	}
	if got := properties.ExtensionRevisionFor("EXT_FO"); got != 0 {
		t.Errorf("prefix of a known name reported revision %d, want 0", got)
	}
}

func TestInstanceExtensionPropertiesRawRecords(t *testing.T) {
	t.Parallel()

	properties := vk.NewInstanceExtensionProperties(extensionDriver(), "VK_LAYER_X", "VK_LAYER_Y")

	tests := []struct {
		id           uint32
		wantName     string
		wantRevision uint32
		wantOrigin   uint32
	}{
		{0, "VK_EXT_debug_report", 9, 0},
		{1, "EXT_FOO", 1, 0},
		{2, "EXT_FOO", 5, 1},
		{3, "EXT_LAYERED", 2, 1},
	}

	for _, tt := range tests {
		name, err := properties.Extension(tt.id)
		if err != nil {
			t.Fatalf("Extension(%d) error = %v", tt.id, err)
		}
		if name != tt.wantName {
			t.Errorf("Extension(%d) = %q, want %q", tt.id, name, tt.wantName)
		}
		revision, err := properties.ExtensionRevision(tt.id)
		if err != nil {
			t.Fatalf("ExtensionRevision(%d) error = %v", tt.id, err)
		}
		if revision != tt.wantRevision {
			t.Errorf("ExtensionRevision(%d) = %d, want %d", tt.id, revision, tt.wantRevision)
		}
		origin, err := properties.ExtensionLayer(tt.id)
		if err != nil {
			t.Fatalf("ExtensionLayer(%d) error = %v", tt.id, err)
		}
		if origin != tt.wantOrigin {
			t.Errorf("ExtensionLayer(%d) = %d, want %d", tt.id, origin, tt.wantOrigin)
		}
	}

	// VK_LAYER_Y contributes no records of its own.
	if got := properties.ExtensionCount(); got != 4 {
		t.Errorf("ExtensionCount() = %d, want 4", got)
	}
}

func TestInstanceExtensionPropertiesIndexOutOfRange(t *testing.T) {
	t.Parallel()

	properties := vk.NewInstanceExtensionProperties(extensionDriver())

	_, err := properties.Extension(10)
	if err == nil {
		t.Fatal("Extension(10) error = nil, want out of range")
	}
	if !errors.Is(err, vk.ErrIndexOutOfRange) {
		t.Errorf("error does not wrap ErrIndexOutOfRange: %v", err)
	}
	want := "Vk::InstanceExtensionProperties::extension(): index 10 out of range for 2 entries"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}

	var oob *vk.IndexOutOfRangeError
	if _, err := properties.ExtensionRevision(10); !errors.As(err, &oob) || oob.Method != "extensionRevision" {
		t.Errorf("ExtensionRevision(10) error = %v, want extensionRevision out of range", err)
	}
	if _, err := properties.ExtensionLayer(10); !errors.As(err, &oob) || oob.Method != "extensionLayer" {
		t.Errorf("ExtensionLayer(10) error = %v, want extensionLayer out of range", err)
	}
}

func TestInstanceExtensionPropertiesUnknownLayerPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("querying an unverified layer did not panic")
		}
	}()
	vk.NewInstanceExtensionProperties(extensionDriver(), "VK_LAYER_NOPE")
}
