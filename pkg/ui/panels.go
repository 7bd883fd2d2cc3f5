package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/showcase/pkg/content"
)

// PanelFunc builds the body of one section at the given width.
type PanelFunc func(width int) string

// Panels is the dispatch table from section to panel builder. Rendering a
// section runs exactly one builder; the others are never called.
type Panels struct {
	builders map[SectionID]PanelFunc
}

// NewPanels checks that builders covers every known section and nothing
// else.
func NewPanels(builders map[SectionID]PanelFunc) (Panels, error) {
	for id := range builders {
		if !id.Valid() {
			return Panels{}, fmt.Errorf("panel for %w", &InvalidSectionError{ID: string(id)})
		}
	}
	for _, id := range sectionOrder {
		if builders[id] == nil {
			return Panels{}, fmt.Errorf("no panel for section %q", id)
		}
	}
	table := make(map[SectionID]PanelFunc, len(builders))
	for id, fn := range builders {
		table[id] = fn
	}
	return Panels{builders: table}, nil
}

// Render builds the panel for id.
func (p Panels) Render(id SectionID, width int) (string, error) {
	fn, ok := p.builders[id]
	if !ok {
		return "", &InvalidSectionError{ID: string(id)}
	}
	return fn(width), nil
}

// BuildPanels derives one panel per known section from the document. The
// document must describe exactly the known sections.
func BuildPanels(doc content.Document, theme Theme, md *MarkdownRenderer) (Panels, error) {
	builders := make(map[SectionID]PanelFunc, len(doc.Sections))
	for _, sec := range doc.Sections {
		id := SectionID(sec.ID)
		if !id.Valid() {
			return Panels{}, fmt.Errorf("%w: unknown section %q", content.ErrInvalidDocument, sec.ID)
		}
		builders[id] = sectionPanel(sec, theme, md)
	}
	for _, id := range sectionOrder {
		if builders[id] == nil {
			return Panels{}, fmt.Errorf("%w: no content for section %q", content.ErrInvalidDocument, id)
		}
	}
	return NewPanels(builders)
}

// sectionPanel lays out a section top to bottom: callout, intro, cards,
// then content blocks.
func sectionPanel(sec content.Section, theme Theme, md *MarkdownRenderer) PanelFunc {
	blocks := make([]ContentBlock, len(sec.Blocks))
	for i, b := range sec.Blocks {
		blocks[i] = BlockFromContent(b)
	}

	return func(width int) string {
		var parts []string
		if sec.Callout != "" {
			parts = append(parts, renderCallout(sec.Callout, theme, md, width))
		}
		if sec.Intro != "" {
			parts = append(parts, theme.Intro.Width(width).Render(sec.Intro))
		}
		if len(sec.Cards) > 0 {
			parts = append(parts, renderCards(sec.Cards, theme, md, width))
		}
		for _, b := range blocks {
			parts = append(parts, RenderBlock(b, theme, width))
		}
		return strings.Join(parts, "\n\n")
	}
}

func renderCallout(text string, theme Theme, md *MarkdownRenderer, width int) string {
	// border and padding take four cells
	inner := width - 4
	body := md.RenderOrRaw(text, inner)
	return theme.Callout.Width(width - 2).Render(body)
}

// minCardWidth is the narrowest card that still reads well side by side.
const minCardWidth = 30

// renderCards lays cards out two per row when there is room, otherwise
// stacked.
func renderCards(cards []content.Card, theme Theme, md *MarkdownRenderer, width int) string {
	perRow := 1
	if width >= 2*minCardWidth+1 {
		perRow = 2
	}
	cardWidth := (width - (perRow - 1)) / perRow

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		bodies := make([]string, 0, perRow)
		height := 0
		for _, c := range cards[i:end] {
			b := cardBody(c, theme, md, cardWidth-4)
			height = max(height, lipgloss.Height(b))
			bodies = append(bodies, b)
		}

		rendered := make([]string, 0, len(bodies)*2)
		for j, b := range bodies {
			if j > 0 {
				rendered = append(rendered, " ")
			}
			rendered = append(rendered, theme.Card.Width(cardWidth-2).Height(height).Render(b))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return strings.Join(rows, "\n")
}

func cardBody(c content.Card, theme Theme, md *MarkdownRenderer, width int) string {
	var list strings.Builder
	for _, item := range c.Items {
		list.WriteString("- ")
		list.WriteString(item)
		list.WriteString("\n")
	}
	items := md.RenderOrRaw(list.String(), width)
	return theme.CardTitle.Render(c.Title) + "\n" + items
}
