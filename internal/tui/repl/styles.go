// ============================================================================
// meinRECHENWERK (mRW) - Lokale Rechenplattform
// ============================================================================
//
// Package:     repl
// Description: Styles for the mRW REPL TUI
// Created:     2026-07-23
// License:     MIT
// ============================================================================

package repl

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	// Background colors
	ColorBg       = lipgloss.Color("#0F172A") // Slate 900
	ColorBgPanel  = lipgloss.Color("#1E293B") // Slate 800
	ColorBgResult = lipgloss.Color("#1E3A5F") // Result line background

	// Text colors
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Logo/Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// History entry styles
var (
	ExpressionStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	ResultStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ColorError)

	TokenStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			PaddingLeft(2)

	TreeStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			PaddingLeft(2)

	SystemMessageStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true).
				Padding(0, 2).
				MarginBottom(1)

	PromptLabelStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)
)

// Panel/Box styles
var (
	HistoryPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorDimmed).
				Padding(0, 1)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2).
			MarginBottom(1)
)

// Input styles
var (
	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusLabelStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	StatusValueStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true)

	ToggleOnStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	ToggleOffStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Prompt markers
const (
	IconPrompt = "❯"
	IconResult = "="
	IconError  = "✗"
)

// Logo
const Logo = "mRW Rechner"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderPromptLabel renders the input prompt marker
func RenderPromptLabel() string {
	return PromptLabelStyle.Render(IconPrompt)
}

// RenderToggle renders an on/off indicator for the status bar
func RenderToggle(label string, on bool) string {
	if on {
		return ToggleOnStyle.Render(label + " an")
	}
	return ToggleOffStyle.Render(label + " aus")
}
