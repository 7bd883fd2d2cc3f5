package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/vanderheijden86/showcase/pkg/config"
)

// MarkdownRenderer renders prose with Glamour. Term renderers are built
// lazily and cached per wrap width because panels are re-rendered on every
// resize.
type MarkdownRenderer struct {
	style     string
	renderers map[int]*glamour.TermRenderer
}

// NewMarkdownRenderer creates a renderer for one of the config.Markdown*
// styles.
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	if style == "" {
		style = config.MarkdownAuto
	}
	return &MarkdownRenderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// Render renders md wrapped at width cells. Leading and trailing blank
// lines and trailing spaces added by Glamour are removed.
func (r *MarkdownRenderer) Render(md string, width int) (string, error) {
	if width < 10 {
		width = 10
	}
	tr, ok := r.renderers[width]
	if !ok {
		var err error
		tr, err = glamour.NewTermRenderer(r.styleOption(), glamour.WithWordWrap(width))
		if err != nil {
			return "", err
		}
		r.renderers[width] = tr
	}

	out, err := tr.Render(md)
	if err != nil {
		return "", err
	}
	return tidyRendered(out), nil
}

// RenderOrRaw is Render with the raw markdown as the fallback.
func (r *MarkdownRenderer) RenderOrRaw(md string, width int) string {
	out, err := r.Render(md, width)
	if err != nil {
		return md
	}
	return out
}

func (r *MarkdownRenderer) styleOption() glamour.TermRendererOption {
	if r.style == config.MarkdownAuto {
		return glamour.WithAutoStyle()
	}
	return glamour.WithStandardStyle(r.style)
}

func tidyRendered(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
