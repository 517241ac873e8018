// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/evandropoa/magnum/internal/config"
	"github.com/evandropoa/magnum/internal/vkdriver"
	"github.com/evandropoa/magnum/pkg/vk"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// extensionStrings switches to the flat raw extension listing.
	extensionStrings bool
	// allExtensions keeps fully supported version partitions in the table.
	allExtensions bool

	rootCmd = &cobra.Command{
		Use:   "vk-info",
		Short: "Display information about instance-level Vulkan capabilities",
		Long: TitleStyle.Render("vk-info") + SubtitleStyle.Render(" - Vulkan instance capability info") + `

Queries the Vulkan loader for the instance version, the available layers
and the extensions visible globally and through each layer, and prints a
version-partitioned support table for the known extensions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides, err := config.LoadOverrides(cmd.Flags())
			if err != nil {
				return err
			}

			driver, err := vkdriver.New()
			if err != nil {
				return err
			}

			// Exercise the same startup the applications go through so
			// misspelled override values surface here too; the tool itself
			// never creates an instance.
			vk.NewInstanceCreateInfo(overrides)

			return printReport(cmd.OutOrStdout(), driver, reportOptions{
				ExtensionStrings: extensionStrings,
				AllExtensions:    allExtensions,
			})
		},
	}
)

func init() {
	rootCmd.Flags().BoolVar(&extensionStrings, "extension-strings", false,
		"list all raw extension strings with their origin instead of the support table")
	rootCmd.Flags().BoolVar(&allExtensions, "all-extensions", false,
		"keep fully supported version partitions in the support table")
	config.RegisterFlags(rootCmd.Flags())
}

func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
