// Package config handles loading and saving showcase configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/showcase/config.yaml
//
// Only presentation preferences live here. The content itself is compiled
// into the binary and is never read from disk.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Markdown styles accepted by UIConfig.MarkdownStyle.
const (
	MarkdownAuto  = "auto"
	MarkdownDark  = "dark"
	MarkdownLight = "light"
	MarkdownNoTTY = "notty"
)

// UIConfig holds UI preference settings.
type UIConfig struct {
	AltScreen     *bool  `yaml:"alt_screen,omitempty"`     // Full-screen mode (default true)
	Mouse         *bool  `yaml:"mouse,omitempty"`          // Click tabs, wheel scroll (default true; needs alt_screen)
	MarkdownStyle string `yaml:"markdown_style,omitempty"` // auto, dark, light, notty
	MaxWidth      int    `yaml:"max_width,omitempty"`      // Cap on content width in cells
}

// Config is the top-level configuration for showcase.
type Config struct {
	UI UIConfig `yaml:"ui,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			MarkdownStyle: MarkdownAuto,
			MaxWidth:      100,
		},
	}
}

// AltScreenEnabled reports whether the TUI should take over the full screen.
func (u UIConfig) AltScreenEnabled() bool {
	return u.AltScreen == nil || *u.AltScreen
}

// MouseEnabled reports whether mouse events should be captured. Tab clicks
// are mapped to screen rows, which only line up with the view when it is
// drawn from the top of the alternate screen, so the mouse stays off
// without it.
func (u UIConfig) MouseEnabled() bool {
	if !u.AltScreenEnabled() {
		return false
	}
	return u.Mouse == nil || *u.Mouse
}

// ConfigDir returns the XDG config directory for showcase.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "showcase")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "showcase")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(expandHome(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func (c *Config) normalize() error {
	style := strings.ToLower(strings.TrimSpace(c.UI.MarkdownStyle))
	switch style {
	case "":
		style = MarkdownAuto
	case MarkdownAuto, MarkdownDark, MarkdownLight, MarkdownNoTTY:
	default:
		return fmt.Errorf("parsing config: unknown markdown_style %q", c.UI.MarkdownStyle)
	}
	c.UI.MarkdownStyle = style

	if c.UI.MaxWidth <= 0 {
		c.UI.MaxWidth = DefaultConfig().UI.MaxWidth
	}
	// Anything narrower cannot fit a block header plus its category tag.
	if c.UI.MaxWidth < 40 {
		c.UI.MaxWidth = 40
	}
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
