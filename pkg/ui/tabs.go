package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Tabs owns the active section. The zero value behaves like NewTabs().
//
// The only way to change the active section is Select (Next and Prev go
// through it), and Select refuses identifiers outside the known set, so the
// active section is always valid.
type Tabs struct {
	active SectionID
}

// NewTabs returns tabs with DefaultSection active.
func NewTabs() Tabs {
	return Tabs{active: DefaultSection}
}

// Active returns the active section.
func (t Tabs) Active() SectionID {
	if t.active == "" {
		return DefaultSection
	}
	return t.active
}

// Select makes id the active section. An unknown id leaves the tabs
// unchanged and returns an *InvalidSectionError.
func (t *Tabs) Select(id SectionID) error {
	if !id.Valid() {
		return &InvalidSectionError{ID: string(id)}
	}
	t.active = id
	return nil
}

// Neighbor returns the section delta steps away from the active one,
// wrapping around at both ends.
func (t Tabs) Neighbor(delta int) SectionID {
	n := len(sectionOrder)
	i := ((t.Active().index()+delta)%n + n) % n
	return sectionOrder[i]
}

// Next activates the section to the right, wrapping to the first.
func (t *Tabs) Next() {
	_ = t.Select(t.Neighbor(1))
}

// Prev activates the section to the left, wrapping to the last.
func (t *Tabs) Prev() {
	_ = t.Select(t.Neighbor(-1))
}

// tabZone is the horizontal extent [start, end) of one tab cell.
type tabZone struct {
	id         SectionID
	label      string
	start, end int
}

// tabGap separates adjacent tab cells.
const tabGap = 1

func tabZones() []tabZone {
	zones := make([]tabZone, 0, len(sectionOrder))
	x := 0
	for _, s := range Sections() {
		label := " " + s.Label + " "
		w := runewidth.StringWidth(label)
		zones = append(zones, tabZone{id: s.ID, label: label, start: x, end: x + w})
		x += w + tabGap
	}
	return zones
}

// HitTest maps a column of the tab bar to the tab drawn there.
func (t Tabs) HitTest(x int) (SectionID, bool) {
	for _, z := range tabZones() {
		if x >= z.start && x < z.end {
			return z.id, true
		}
	}
	return "", false
}

// View renders the tab bar as two rows: labels, then a rule that is heavy
// under the active tab and light elsewhere. The rule extends to width.
func (t Tabs) View(theme Theme, width int) string {
	active := t.Active()

	var labels, rule strings.Builder
	x := 0
	for i, z := range tabZones() {
		if i > 0 {
			labels.WriteString(strings.Repeat(" ", tabGap))
			rule.WriteString(theme.MutedText.Render(strings.Repeat("─", tabGap)))
		}
		w := z.end - z.start
		if z.id == active {
			labels.WriteString(theme.TabActive.Render(z.label))
			rule.WriteString(theme.TabActive.Render(strings.Repeat("━", w)))
		} else {
			labels.WriteString(theme.TabInactive.Render(z.label))
			rule.WriteString(theme.MutedText.Render(strings.Repeat("─", w)))
		}
		x = z.end
	}
	if width > x {
		rule.WriteString(theme.MutedText.Render(strings.Repeat("─", width-x)))
	}

	return labels.String() + "\n" + rule.String()
}
