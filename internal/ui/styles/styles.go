// Package styles provides the colour palette and glyph sets for UI components.
//
// This package centralizes colour definitions and symbols so the prompt
// theme, spinner and CLI output share one look. Call [Init] after loading
// config and before building the theme.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Active palette colours. Updated by Init.
var (
	// Primary marks the active prompt (bar and state symbol)
	Primary color.Color = lipgloss.Cyan

	// Accent highlights spinners and selected items
	Accent color.Color = lipgloss.Magenta

	// Success is used for submitted prompts and positive outcomes
	Success color.Color = lipgloss.Green

	// Error is used for cancelled prompts and error logs
	Error color.Color = lipgloss.Red

	// Muted is used for finished prompts, hints and placeholders
	Muted color.Color = lipgloss.BrightBlack

	// Normal is the standard text color
	Normal color.Color = lipgloss.NoColor{}

	// Info is used for informational log lines
	Info color.Color = lipgloss.Blue

	// Warning is used for validation errors and warnings
	Warning color.Color = lipgloss.Yellow
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// PrimaryStyle applies the primary color
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// NormalStyle applies the normal text color
	NormalStyle = lipgloss.NewStyle().Foreground(Normal)

	// InfoStyle applies the info color
	InfoStyle = lipgloss.NewStyle().Foreground(Info)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
)
