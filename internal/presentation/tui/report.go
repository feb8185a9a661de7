package tui

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders a Markdown report for the terminal using glamour.
// On renderer failure the raw Markdown is returned so the report is never
// lost to a styling problem.
func RenderMarkdown(markdown string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
