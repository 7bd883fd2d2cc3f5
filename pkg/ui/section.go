package ui

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SectionID identifies one tab. Only the constants below are valid.
type SectionID string

const (
	SectionOverview       SectionID = "overview"
	SectionImplementation SectionID = "implementation"
	SectionInfrastructure SectionID = "infrastructure"
)

// DefaultSection is active when the viewer starts.
const DefaultSection = SectionOverview

// sectionOrder is the tab order, left to right.
var sectionOrder = []SectionID{
	SectionOverview,
	SectionImplementation,
	SectionInfrastructure,
}

// ErrInvalidSection matches every *InvalidSectionError via errors.Is.
var ErrInvalidSection = errors.New("invalid section")

// InvalidSectionError reports a selection outside the known sections.
type InvalidSectionError struct {
	ID string
}

func (e *InvalidSectionError) Error() string {
	known := make([]string, len(sectionOrder))
	for i, id := range sectionOrder {
		known[i] = string(id)
	}
	return fmt.Sprintf("invalid section %q (want one of: %s)", e.ID, strings.Join(known, ", "))
}

func (e *InvalidSectionError) Is(target error) bool {
	return target == ErrInvalidSection
}

// Section is a selectable tab: its identifier and display label.
type Section struct {
	ID    SectionID
	Label string
}

// Sections returns the known sections in tab order.
func Sections() []Section {
	out := make([]Section, len(sectionOrder))
	for i, id := range sectionOrder {
		out[i] = Section{ID: id, Label: id.Label()}
	}
	return out
}

// Valid reports whether id is one of the known sections.
func (id SectionID) Valid() bool {
	return id.index() >= 0
}

// Label is the identifier with its first letter capitalized.
func (id SectionID) Label() string {
	r, size := utf8.DecodeRuneInString(string(id))
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + string(id)[size:]
}

func (id SectionID) index() int {
	for i, known := range sectionOrder {
		if known == id {
			return i
		}
	}
	return -1
}

// ParseSectionID validates a user-supplied identifier.
func ParseSectionID(s string) (SectionID, error) {
	id := SectionID(strings.ToLower(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", &InvalidSectionError{ID: s}
	}
	return id, nil
}
