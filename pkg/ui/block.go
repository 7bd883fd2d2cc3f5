package ui

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/vanderheijden86/showcase/pkg/content"
)

// DefaultCategory is the category shown when a block does not name one.
const DefaultCategory = "python"

const (
	// tabStop is the tab width used when expanding tabs in block text.
	tabStop = 8

	// blockChrome is the horizontal space taken by the frame: two border
	// cells plus one padding cell on each side.
	blockChrome   = 4
	minBlockWidth = 16
)

// ContentBlock is a titled, categorized piece of preformatted text.
// It is a plain value; rendering never mutates it.
type ContentBlock struct {
	Title    string
	Category string // empty means DefaultCategory
	Body     string
}

// BlockFromContent converts a document block into a renderable block.
func BlockFromContent(b content.Block) ContentBlock {
	return ContentBlock{Title: b.Title, Category: b.Category, Body: b.Body}
}

// EffectiveCategory returns the category with the default applied.
func (b ContentBlock) EffectiveCategory() string {
	if b.Category == "" {
		return DefaultCategory
	}
	return b.Category
}

// CategoryLabel returns the category as displayed in the header bar.
func (b ContentBlock) CategoryLabel() string {
	return strings.ToUpper(b.EffectiveCategory())
}

// LineCount is the number of body rows the block renders. An empty body
// still occupies one row.
func (b ContentBlock) LineCount() int {
	return strings.Count(b.Body, "\n") + 1
}

// Render is shorthand for RenderBlock(b, theme, width).
func (b ContentBlock) Render(theme Theme, width int) string {
	return RenderBlock(b, theme, width)
}

// RenderBlock frames a block at the given outer width: a header row with the
// title on the left and the upper-cased category on the right, a rule, then
// the body. Body lines are reproduced verbatim, including leading whitespace
// and blank lines. Lines wider than the frame are clipped, never wrapped.
// Tabs are expanded to 8-column stops, a CRLF line ending loses its CR, and
// other control characters are drawn as visible symbols, so every row
// occupies exactly the frame width on a real terminal.
func RenderBlock(b ContentBlock, theme Theme, width int) string {
	if width < minBlockWidth {
		width = minBlockWidth
	}
	inner := width - blockChrome

	lines := make([]string, 0, strings.Count(b.Body, "\n")+3)
	lines = append(lines, blockHeader(b, theme, inner))
	lines = append(lines, theme.BlockCategory.Render(strings.Repeat("─", inner)))
	for _, line := range strings.Split(b.Body, "\n") {
		lines = append(lines, theme.BlockBody.Render(fitLine(line, inner)))
	}

	return theme.BlockFrame.Render(strings.Join(lines, "\n"))
}

func blockHeader(b ContentBlock, theme Theme, inner int) string {
	category := displayLine(b.CategoryLabel())
	// The category only gives way when it alone cannot fit beside a
	// one-cell title.
	if runewidth.StringWidth(category) > inner-2 {
		category = runewidth.Truncate(category, inner-2, "…")
	}
	catWidth := runewidth.StringWidth(category)

	title := displayLine(b.Title)
	room := inner - catWidth - 1
	if runewidth.StringWidth(title) > room {
		title = runewidth.Truncate(title, room, "…")
	}
	gap := inner - runewidth.StringWidth(title) - catWidth

	return theme.BlockHeader.Render(title) + strings.Repeat(" ", gap) + theme.BlockCategory.Render(category)
}

// fitLine clips s to width cells and pads it so every body row has the same
// width.
func fitLine(s string, width int) string {
	s = displayLine(strings.TrimSuffix(s, "\r"))
	w := runewidth.StringWidth(s)
	if w > width {
		s = runewidth.Truncate(s, width, "")
		w = runewidth.StringWidth(s)
	}
	return s + strings.Repeat(" ", width-w)
}

// displayLine makes s safe to measure and draw as one row. Tabs become
// spaces up to the next tab stop; other control characters, which would
// move the cursor or start escape sequences, become Unicode control
// pictures (␍, ␛, ...) or U+FFFD.
func displayLine(s string) string {
	if !strings.ContainsFunc(s, unicode.IsControl) {
		return s
	}

	var b strings.Builder
	col := 0
	for _, r := range s {
		switch {
		case r == '\t':
			n := tabStop - col%tabStop
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case r < 0x20:
			b.WriteRune(0x2400 + r)
			col++
		case r == 0x7f:
			b.WriteRune('␡')
			col++
		case unicode.IsControl(r):
			b.WriteRune(unicode.ReplacementChar)
			col++
		default:
			b.WriteRune(r)
			col += runewidth.RuneWidth(r)
		}
	}
	return b.String()
}
