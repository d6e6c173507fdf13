// File: styles.go
// Title: REPL Styles
// Description: Lipgloss color palette and styles for the REPL UI:
//              prompt, transcript, output, errors, and help bar.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-21
// Modified: 2026-06-21
//
// Change History:
// - 2026-06-21 v0.1.0: Initial implementation

package repl

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
)

// Header and transcript styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	TranscriptPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorDimmed).
				Padding(0, 1)

	InputLineStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)
)

// Transcript entry styles
var (
	EchoStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	PythonStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	OutputStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	DebugStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Help bar styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
