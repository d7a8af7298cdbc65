package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer turns topic source into terminal output.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Other formats pass
// through untouched, as does markdown glamour fails on.
type GlamourRenderer struct {
	// Style is a glamour style name ("dark", "light", "notty") or "auto".
	Style string
	// Width wraps output; 0 leaves glamour's default.
	Width int
}

// NewGlamourRenderer auto-detects the style, or uses "notty" when colour is off.
func NewGlamourRenderer(color bool) *GlamourRenderer {
	if !color {
		return &GlamourRenderer{Style: "notty"}
	}
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style == "" || r.Style == "auto" {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
