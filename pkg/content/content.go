// Package content holds the static page data shown by the viewer.
//
// The document is authored as YAML next to this file and compiled into the
// binary, so it is fixed at build time. Nothing here is read from disk or
// mutated at runtime.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed showcase.yaml
var embedded []byte

// Badge kinds control badge coloring in the page header.
const (
	BadgeStatus = "status"
	BadgeTech   = "tech"
)

// ErrInvalidDocument is wrapped by every validation failure.
var ErrInvalidDocument = errors.New("invalid content document")

// Badge is a short tag displayed under the page title.
type Badge struct {
	Text string `yaml:"text" json:"text"`
	Kind string `yaml:"kind,omitempty" json:"kind,omitempty"`
}

// Card is a titled bullet list (the overview grid).
type Card struct {
	Title string   `yaml:"title" json:"title"`
	Items []string `yaml:"items" json:"items"`
}

// Block is a titled, categorized piece of preformatted text. An empty
// Category means the renderer's default.
type Block struct {
	Title    string `yaml:"title" json:"title"`
	Category string `yaml:"category,omitempty" json:"category,omitempty"`
	Body     string `yaml:"body" json:"body"`
}

// Section is the payload of one tab. Callout and Intro are markdown.
type Section struct {
	ID      string  `yaml:"id" json:"id"`
	Callout string  `yaml:"callout,omitempty" json:"callout,omitempty"`
	Intro   string  `yaml:"intro,omitempty" json:"intro,omitempty"`
	Cards   []Card  `yaml:"cards,omitempty" json:"cards,omitempty"`
	Blocks  []Block `yaml:"blocks,omitempty" json:"blocks,omitempty"`
}

// Document is the whole page.
type Document struct {
	Title    string    `yaml:"title" json:"title"`
	Badges   []Badge   `yaml:"badges,omitempty" json:"badges,omitempty"`
	Sections []Section `yaml:"sections" json:"sections"`
}

// Default returns the document compiled into the binary.
func Default() (Document, error) {
	return Parse(embedded)
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parsing content: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Validate checks the structural rules the renderer relies on.
func (d Document) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidDocument)
	}
	for i, b := range d.Badges {
		if strings.TrimSpace(b.Text) == "" {
			return fmt.Errorf("%w: badge %d has no text", ErrInvalidDocument, i)
		}
		switch b.Kind {
		case "", BadgeStatus, BadgeTech:
		default:
			return fmt.Errorf("%w: badge %q has unknown kind %q", ErrInvalidDocument, b.Text, b.Kind)
		}
	}
	if len(d.Sections) == 0 {
		return fmt.Errorf("%w: no sections", ErrInvalidDocument)
	}

	seen := make(map[string]bool, len(d.Sections))
	for _, s := range d.Sections {
		if s.ID == "" {
			return fmt.Errorf("%w: section without id", ErrInvalidDocument)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate section %q", ErrInvalidDocument, s.ID)
		}
		seen[s.ID] = true

		for i, c := range s.Cards {
			if strings.TrimSpace(c.Title) == "" {
				return fmt.Errorf("%w: section %q card %d has no title", ErrInvalidDocument, s.ID, i)
			}
		}
		for i, b := range s.Blocks {
			if strings.TrimSpace(b.Title) == "" {
				return fmt.Errorf("%w: section %q block %d has no title", ErrInvalidDocument, s.ID, i)
			}
		}
	}
	return nil
}

// Section returns the section with the given id.
func (d Document) Section(id string) (Section, bool) {
	for _, s := range d.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// SectionIDs returns section ids in document order.
func (d Document) SectionIDs() []string {
	ids := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		ids = append(ids, s.ID)
	}
	return ids
}
