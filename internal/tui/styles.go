// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import "github.com/charmbracelet/lipgloss"

// Palette. Dark is the default; ApplyTheme remaps for light terminals.
var (
	ColorInk   = lipgloss.Color("231") // primary text
	ColorSlate = lipgloss.Color("245") // muted text, descriptions
	ColorBrass = lipgloss.Color("178") // accents, keys, folders
	ColorMoss  = lipgloss.Color("71")  // expanded / positive
	ColorRust  = lipgloss.Color("167") // warnings
	ColorPane  = lipgloss.Color("238") // borders
)

var (
	StyleApp = lipgloss.NewStyle().Padding(1, 2)

	StyleTopBar = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorPane).
			PaddingBottom(0)

	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(ColorBrass)

	StyleMenuKey        = lipgloss.NewStyle().Foreground(ColorBrass)
	StyleMenuItem       = lipgloss.NewStyle().Foreground(ColorSlate).PaddingRight(2)
	StyleMenuItemActive = lipgloss.NewStyle().Foreground(ColorMoss).Bold(true).PaddingRight(2)

	StyleSectionHeader = lipgloss.NewStyle().Bold(true).Foreground(ColorInk)
	StyleSectionFocus  = lipgloss.NewStyle().Bold(true).Foreground(ColorBrass)

	StyleCard = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorPane).
			Padding(0, 1)

	StyleSubtle = lipgloss.NewStyle().Foreground(ColorSlate)
	StyleWarn   = lipgloss.NewStyle().Foreground(ColorRust)

	StyleTreeDir  = lipgloss.NewStyle().Bold(true).Foreground(ColorBrass)
	StyleTreeFile = lipgloss.NewStyle().Foreground(ColorInk)
	StyleTreeDesc = lipgloss.NewStyle().Foreground(ColorSlate)
)

// glamourStyle tracks the markdown style matching the active theme.
var glamourStyle = "dark"

// ApplyTheme remaps the palette. Unknown names are ignored so a stale
// config value degrades to the default look instead of failing.
func ApplyTheme(name string) {
	switch name {
	case "light":
		ColorInk = lipgloss.Color("235")
		ColorSlate = lipgloss.Color("243")
		ColorPane = lipgloss.Color("250")
		glamourStyle = "light"
	case "dark":
		ColorInk = lipgloss.Color("231")
		ColorSlate = lipgloss.Color("245")
		ColorPane = lipgloss.Color("238")
		glamourStyle = "dark"
	default:
		return
	}
	rebuildStyles()
}

// rebuildStyles refreshes the derived styles after a palette change.
func rebuildStyles() {
	StyleTopBar = StyleTopBar.BorderForeground(ColorPane)
	StyleMenuItem = StyleMenuItem.Foreground(ColorSlate)
	StyleSectionHeader = StyleSectionHeader.Foreground(ColorInk)
	StyleCard = StyleCard.BorderForeground(ColorPane)
	StyleSubtle = StyleSubtle.Foreground(ColorSlate)
	StyleTreeFile = StyleTreeFile.Foreground(ColorInk)
	StyleTreeDesc = StyleTreeDesc.Foreground(ColorSlate)
}
