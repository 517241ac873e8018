// SPDX-License-Identifier: MPL-2.0

package vk_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/evandropoa/magnum/internal/testutil/drivertest"
	"github.com/evandropoa/magnum/pkg/vk"
)

func TestInstanceCreateInfoDefaults(t *testing.T) {
	t.Parallel()

	info := vk.NewInstanceCreateInfo(nil)

	if got := info.ApplicationName(); got != "" {
		t.Errorf("ApplicationName() = %q, want absent", got)
	}
	if got := info.EnabledLayers(); len(got) != 0 {
		t.Errorf("EnabledLayers() = %v, want empty", got)
	}
	if got := info.EnabledExtensions(); len(got) != 0 {
		t.Errorf("EnabledExtensions() = %v, want empty", got)
	}
}

func TestInstanceCreateInfoApplicationInfo(t *testing.T) {
	t.Parallel()

	info := vk.NewInstanceCreateInfo(nil).
		SetApplicationInfo("my app", vk.MakeVersion(0, 1, 0))

	if got := info.ApplicationName(); got != "my app" {
		t.Errorf("ApplicationName() = %q, want %q", got, "my app")
	}
	if got, want := info.ApplicationVersion(), vk.MakeVersion(0, 1, 0); got != want {
		t.Errorf("ApplicationVersion() = %v, want %v", got, want)
	}

	// An empty name clears the previous one rather than storing "".
	info.SetApplicationInfo("", 0)
	if got := info.ApplicationName(); got != "" {
		t.Errorf("ApplicationName() after clearing = %q, want absent", got)
	}
}

func TestInstanceCreateInfoDisableFiltering(t *testing.T) {
	t.Parallel()

	info := vk.NewInstanceCreateInfo(&vk.Overrides{
		DisabledLayers:     []string{"VK_LAYER_BAD"},
		DisabledExtensions: []string{"EXT_BAR"},
	})

	info.AddEnabledExtensions("EXT_FOO", "EXT_BAR")
	if got, want := info.EnabledExtensions(), []string{"EXT_FOO"}; !equalStrings(got, want) {
		t.Errorf("EnabledExtensions() = %v, want %v", got, want)
	}

	info.AddEnabledLayers("VK_LAYER_BAD", "VK_LAYER_GOOD", "VK_LAYER_BAD")
	if got, want := info.EnabledLayers(), []string{"VK_LAYER_GOOD"}; !equalStrings(got, want) {
		t.Errorf("EnabledLayers() = %v, want %v", got, want)
	}
}

func TestInstanceCreateInfoOverrideEnables(t *testing.T) {
	t.Parallel()

	// Enables from the overrides go through the same filter; requests keep
	// their order and duplicates.
	info := vk.NewInstanceCreateInfo(&vk.Overrides{
		EnabledLayers:      []string{"VK_LAYER_FIRST"},
		EnabledExtensions:  []string{"EXT_FIRST", "EXT_BAR"},
		DisabledExtensions: []string{"EXT_BAR"},
	})
	info.AddEnabledExtensions("EXT_SECOND", "EXT_FIRST")

	if got, want := info.EnabledLayers(), []string{"VK_LAYER_FIRST"}; !equalStrings(got, want) {
		t.Errorf("EnabledLayers() = %v, want %v", got, want)
	}
	want := []string{"EXT_FIRST", "EXT_SECOND", "EXT_FIRST"}
	if got := info.EnabledExtensions(); !equalStrings(got, want) {
		t.Errorf("EnabledExtensions() = %v, want %v", got, want)
	}
}

func TestInstanceCreateInfoKnownExtensions(t *testing.T) {
	t.Parallel()

	info := vk.NewInstanceCreateInfo(&vk.Overrides{
		DisabledExtensions: []string{"VK_EXT_debug_report"},
	})
	info.AddEnabledInstanceExtensions(vk.ExtDebugReport, vk.ExtDebugUtils)

	want := []string{"VK_EXT_debug_utils"}
	if got := info.EnabledExtensions(); !equalStrings(got, want) {
		t.Errorf("EnabledExtensions() = %v, want %v", got, want)
	}
}

func TestInstanceCreateInfoConsumedPanics(t *testing.T) {
	t.Parallel()

	info := vk.NewInstanceCreateInfo(nil)
	instance, err := vk.CreateInstance(drivertest.New(), info)
	if err != nil {
		t.Fatalf("CreateInstance() error = %v", err)
	}
	defer instance.Destroy()

	defer func() {
		if recover() == nil {
			t.Error("mutating a consumed descriptor did not panic")
		}
	}()
	info.AddEnabledExtensions("EXT_LATE")
}

func TestInstanceCreateInfoVerboseListing(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	info := vk.NewInstanceCreateInfo(&vk.Overrides{VerboseLog: true}).
		SetLogger(log.New(&buf)).
		AddEnabledLayers("VK_LAYER_KHRONOS_validation").
		AddEnabledExtensions("VK_EXT_debug_utils")

	instance, err := vk.CreateInstance(drivertest.New(), info)
	if err != nil {
		t.Fatalf("CreateInstance() error = %v", err)
	}
	defer instance.Destroy()

	out := buf.String()
	for _, want := range []string{
		"Enabled instance layers:",
		"VK_LAYER_KHRONOS_validation",
		"Enabled instance extensions:",
		"VK_EXT_debug_utils",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q:\n%s", want, out)
		}
	}
}

func TestInstanceCreateInfoQuietByDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	info := vk.NewInstanceCreateInfo(nil).
		SetLogger(log.New(&buf)).
		AddEnabledLayers("VK_LAYER_KHRONOS_validation")

	instance, err := vk.CreateInstance(drivertest.New(), info)
	if err != nil {
		t.Fatalf("CreateInstance() error = %v", err)
	}
	defer instance.Destroy()

	if buf.Len() != 0 {
		t.Errorf("creation logged without the verbose override:\n%s", buf.String())
	}
}

func equalStrings(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
