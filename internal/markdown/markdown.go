// Package markdown renders markdown for the terminal.
package markdown

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Styles understood by NewRenderer.
const (
	StyleNoTTY = "notty"
	StyleDark  = "dark"
	StyleASCII = "ascii"
)

// Renderer turns markdown into terminal text.
type Renderer struct {
	tr *glamour.TermRenderer
}

// NewRenderer creates a renderer for a glamour standard style, wrapping at width.
func NewRenderer(style string, width int) (*Renderer, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &Renderer{tr: tr}, nil
}

// Render renders md.
func (r *Renderer) Render(md string) (string, error) {
	out, err := r.tr.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
