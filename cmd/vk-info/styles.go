// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/charmbracelet/lipgloss"

// Color palette, tuned for dark terminal backgrounds.
const (
	// ColorPrimary is purple - used for the title banner.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for secondary text such as layer
	// descriptions.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for supported-extension markers.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorWarning is amber - used for the not-available marker.
	ColorWarning = lipgloss.Color("#F59E0B")
)

var (
	// TitleStyle is for the banner and section headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for descriptions and de-emphasized detail.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SupportedStyle marks extensions the driver reports.
	SupportedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// UnavailableStyle marks extensions the driver cannot provide at the
	// current version.
	UnavailableStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)
)
