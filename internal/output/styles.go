package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used by the text report
var Styles = struct {
	Header  lipgloss.Style
	Label   lipgloss.Style
	Key     lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
}{
	Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	Label:   lipgloss.NewStyle().Bold(true),
	Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // Orange
	Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
}

// ClassStyle returns the style for a count line of the given severity
func ClassStyle(errors bool) lipgloss.Style {
	if errors {
		return Styles.Danger
	}
	return Styles.Warning
}
