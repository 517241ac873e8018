// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/evandropoa/magnum/pkg/vk"
)

// reportOptions control which sections printReport emits.
type reportOptions struct {
	// ExtensionStrings replaces the support table with a flat listing of
	// every raw extension record and its origin.
	ExtensionStrings bool
	// AllExtensions keeps version partitions in the table even when the
	// instance already supports the whole version.
	AllExtensions bool
}

// printReport queries the driver and writes the capability report to w. The
// extension query covers the global scope plus every reported layer, so the
// table shows everything that could possibly be enabled.
func printReport(w io.Writer, driver vk.Driver, opts reportOptions) error {
	properties := vk.NewInstanceProperties(driver)
	layers := properties.Layers()
	extensionProperties := vk.NewInstanceExtensionProperties(driver, layers...)

	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render("  +---------------------------------------------------+"))
	fmt.Fprintln(w, TitleStyle.Render("  |   Information about Vulkan instance capabilities  |"))
	fmt.Fprintln(w, TitleStyle.Render("  +---------------------------------------------------+"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Instance version:", properties.Version())
	fmt.Fprintln(w, "Instance layers:")
	for i := uint32(0); i < properties.LayerCount(); i++ {
		name, err := properties.Layer(i)
		if err != nil {
			return err
		}
		revision, err := properties.LayerRevision(i)
		if err != nil {
			return err
		}
		version, err := properties.LayerVersion(i)
		if err != nil {
			return err
		}
		description, err := properties.LayerDescription(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "    %s (r%d, written against %s)\n", name, revision, version)
		fmt.Fprintf(w, "      %s\n", SubtitleStyle.Render(description))
	}
	fmt.Fprintln(w)

	if opts.ExtensionStrings {
		return printExtensionStrings(w, layers, extensionProperties)
	}
	return printExtensionTable(w, properties, extensionProperties, opts.AllExtensions)
}

// printExtensionStrings lists every raw extension record in scope order, with
// the layer it came from when not from the global scope.
func printExtensionStrings(w io.Writer, layers []string, extensionProperties *vk.InstanceExtensionProperties) error {
	fmt.Fprintln(w, "Instance extension strings:")
	for i := uint32(0); i < extensionProperties.ExtensionCount(); i++ {
		name, err := extensionProperties.Extension(i)
		if err != nil {
			return err
		}
		revision, err := extensionProperties.ExtensionRevision(i)
		if err != nil {
			return err
		}
		origin, err := extensionProperties.ExtensionLayer(i)
		if err != nil {
			return err
		}
		if origin != 0 {
			fmt.Fprintf(w, "    %s (r%d, from %s)\n", name, revision, layers[origin-1])
		} else {
			fmt.Fprintf(w, "    %s (r%d)\n", name, revision)
		}
	}
	return nil
}

// printExtensionTable prints the known extensions partitioned by the version
// that adopted them to core, with the reported revision, a dash for known
// extensions the driver merely does not offer, or n/a when the instance
// version is too old for the extension to exist at all. Partitions whose
// version the instance fully supports are skipped unless allExtensions is
// set, matching the idea that a core feature needs no extension.
func printExtensionTable(w io.Writer, properties *vk.InstanceProperties, extensionProperties *vk.InstanceExtensionProperties, allExtensions bool) error {
	versions := []vk.Version{vk.Vk11, vk.Vk12, vk.VersionNone}

	future := 0
	if !allExtensions {
		for versions[future] != vk.VersionNone && properties.IsVersionSupported(versions[future]) {
			future++
		}
	}

	for _, version := range versions[future:] {
		extensions := vk.InstanceExtensions(version)
		if len(extensions) == 0 {
			continue
		}

		if version != vk.VersionNone {
			fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("%s instance extension support:", version)))
		} else {
			fmt.Fprintln(w, TitleStyle.Render("Vendor instance extension support:"))
		}

		for _, extension := range extensions {
			var marker string
			switch {
			case extensionProperties.IsExtensionSupported(extension.Name()):
				revision := extensionProperties.ExtensionRevisionFor(extension.Name())
				marker = SupportedStyle.Render(fmt.Sprintf("REV.%d", revision))
			case properties.IsVersionSupported(extension.RequiredVersion()):
				marker = "  -"
			default:
				marker = UnavailableStyle.Render(" n/a")
			}
			fmt.Fprintf(w, "    %-64s %s\n", extension.Name(), marker)
		}
		fmt.Fprintln(w)
	}
	return nil
}
