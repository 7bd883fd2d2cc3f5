package ui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so every style helper can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// ThemeBg returns the given hex color for TrueColor terminals and
// lipgloss.NoColor{} otherwise, so 16/256-color terminals use the
// terminal's own background instead of a down-converted approximation
// that may clash with palettes like Solarized.
func ThemeBg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.TrueColor {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

type Theme struct {
	Renderer *lipgloss.Renderer

	// Colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Info      lipgloss.AdaptiveColor

	// UI Elements
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor

	// Styles
	Base        lipgloss.Style
	Title       lipgloss.Style
	StatusBadge lipgloss.Style
	TechBadge   lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Callout     lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	Intro       lipgloss.Style
	ErrorText   lipgloss.Style
	MutedText   lipgloss.Style

	// Content block styles
	BlockFrame    lipgloss.Style
	BlockHeader   lipgloss.Style
	BlockCategory lipgloss.Style
	BlockBody     lipgloss.Style
}

// DefaultTheme returns the standard Dracula-inspired theme (adaptive)
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary:   lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#8BE9FD"}, // Blue (tab underline)
		Secondary: lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"}, // Gray
		Subtext:   lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BFBFBF"}, // Dim
		Success:   lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}, // Green
		Info:      lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"}, // Cyan

		Border:    lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#44475A"},
		Highlight: lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#44475A"},
		Muted:     lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"},
	}

	t.Base = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#F8F8F2"})
	t.Title = r.NewStyle().Bold(true).Foreground(t.Primary)

	t.StatusBadge = r.NewStyle().
		Foreground(t.Success).
		Background(ThemeBg("#1A3D2A")).
		Bold(true).
		Padding(0, 1)
	t.TechBadge = r.NewStyle().
		Foreground(t.Info).
		Background(ThemeBg("#1A3344")).
		Bold(true).
		Padding(0, 1)

	t.TabActive = r.NewStyle().Bold(true).Foreground(t.Primary)
	t.TabInactive = r.NewStyle().Foreground(t.Subtext)

	t.Callout = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Success).
		Padding(0, 1)
	t.Card = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.CardTitle = r.NewStyle().Bold(true)
	t.Intro = r.NewStyle().Foreground(t.Subtext)
	t.ErrorText = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"})
	t.MutedText = r.NewStyle().Foreground(t.Muted)

	// Block text arrives with tabs already expanded to 8-column stops;
	// lipgloss must not convert them a second time.
	t.BlockFrame = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		TabWidth(lipgloss.NoTabConversion)
	t.BlockHeader = r.NewStyle().Bold(true)
	t.BlockCategory = r.NewStyle().Foreground(t.Muted)
	t.BlockBody = r.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#F3F4F6"}).
		TabWidth(lipgloss.NoTabConversion)

	return t
}

// TestTheme returns a theme suitable for use in tests.
func TestTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(os.Stdout))
}
