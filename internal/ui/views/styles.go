package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Text      lipgloss.Style
	Tilde     lipgloss.Style
	Greeting  lipgloss.Style
	StatusBar lipgloss.Style
	Message   lipgloss.Style
	Prompt    lipgloss.Style
	Cursor    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Text:      lipgloss.NewStyle(),
		Tilde:     lipgloss.NewStyle().Faint(true),
		Greeting:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		StatusBar: lipgloss.NewStyle().Reverse(true),
		Message:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Prompt:    lipgloss.NewStyle().Bold(true),
		Cursor:    lipgloss.NewStyle(),
	}
}
