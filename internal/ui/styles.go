// Package ui defines the terminal styles used by the session.
package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles groups the lipgloss styles for one output stream.
type Styles struct {
	// Notice renders cancellation notices.
	Notice lipgloss.Style
	// Error renders validation failures and action faults.
	Error lipgloss.Style
	// Result renders computed values.
	Result lipgloss.Style
	// Label renders menu entry numbers.
	Label lipgloss.Style
}

// NewRenderer returns a renderer bound to w. Plain forces the ASCII colour
// profile so no escape sequences are written.
func NewRenderer(w io.Writer, plain bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// New builds the styles for r.
func New(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Notice: r.NewStyle().
			Foreground(lipgloss.Color("242")).
			Italic(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#ff4444")),
		Result: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("220")),
	}
}

// Plain returns styles that render text unchanged.
func Plain(w io.Writer) *Styles {
	return New(NewRenderer(w, true))
}
