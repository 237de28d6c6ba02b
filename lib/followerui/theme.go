// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package followerui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the viewer. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Input labels; the focused field's label uses FocusedLabel.
	Label        lipgloss.Color
	FocusedLabel lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	ErrorText lipgloss.Color
	Spinner   lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	HelpText         lipgloss.Color

	FilterMatchForeground lipgloss.Color // Matched characters in filtered logins.
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	Label:        lipgloss.Color("245"),
	FocusedLabel: lipgloss.Color("75"), // blue

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	ErrorText: lipgloss.Color("196"), // red
	Spinner:   lipgloss.Color("220"), // amber

	HeaderForeground: lipgloss.Color("255"),
	HelpText:         lipgloss.Color("241"),

	FilterMatchForeground: lipgloss.Color("114"), // green
}

// styles are the lipgloss styles derived from a Theme once per Model.
type styles struct {
	header      lipgloss.Style
	label       lipgloss.Style
	labelActive lipgloss.Style
	helper      lipgloss.Style
	errorText   lipgloss.Style
	emptyText   lipgloss.Style
	row         lipgloss.Style
	rowSelected lipgloss.Style
	avatar      lipgloss.Style
	match       lipgloss.Style
	status      lipgloss.Style
	spinner     lipgloss.Style
}

func newStyles(theme Theme) styles {
	return styles{
		header:      lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground),
		label:       lipgloss.NewStyle().Foreground(theme.Label),
		labelActive: lipgloss.NewStyle().Bold(true).Foreground(theme.FocusedLabel),
		helper:      lipgloss.NewStyle().Foreground(theme.FaintText).Italic(true),
		errorText:   lipgloss.NewStyle().Bold(true).Foreground(theme.ErrorText),
		emptyText:   lipgloss.NewStyle().Foreground(theme.FaintText),
		row:         lipgloss.NewStyle().Foreground(theme.NormalText),
		rowSelected: lipgloss.NewStyle().
			Foreground(theme.SelectedForeground).
			Background(theme.SelectedBackground),
		avatar:  lipgloss.NewStyle().Foreground(theme.FaintText),
		match:   lipgloss.NewStyle().Bold(true).Foreground(theme.FilterMatchForeground),
		status:  lipgloss.NewStyle().Foreground(theme.HelpText),
		spinner: lipgloss.NewStyle().Foreground(theme.Spinner),
	}
}
