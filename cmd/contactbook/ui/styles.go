// Package ui renders console output for the contactbook CLI.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles applied to table parts.
type Styles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Rule   lipgloss.Style
}

// DefaultStyles returns unstyled output, which keeps the table plain text
// when piped or captured.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle(),
		Cell:   lipgloss.NewStyle(),
		Rule:   lipgloss.NewStyle(),
	}
}

// TerminalStyles bolds the header and mutes the rule.
func TerminalStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true),
		Cell:   lipgloss.NewStyle(),
		Rule:   lipgloss.NewStyle().Faint(true),
	}
}
