package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/term"

	"github.com/vanderheijden86/showcase/pkg/config"
	"github.com/vanderheijden86/showcase/pkg/content"
	"github.com/vanderheijden86/showcase/pkg/debug"
	"github.com/vanderheijden86/showcase/pkg/ui"
	"github.com/vanderheijden86/showcase/pkg/version"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrMountFailed means there is no terminal to draw the viewer on.
var ErrMountFailed = errors.New("stdout is not a terminal (use --print for plain output)")

const defaultPrintWidth = 80

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, isTerminal(os.Stdout)))
}

// run executes the CLI and returns the process exit code. tty reports
// whether stdout is an interactive terminal.
func run(args []string, stdout, stderr io.Writer, tty bool) int {
	fs := flag.NewFlagSet("showcase", flag.ContinueOnError)
	fs.SetOutput(stderr)
	help := fs.Bool("help", false, "Show help")
	versionFlag := fs.Bool("version", false, "Show version")
	printFlag := fs.Bool("print", false, "Render the page once to stdout instead of starting the TUI")
	sectionFlag := fs.String("section", "", "Section to show with --print (overview, implementation, infrastructure)")
	robotSections := fs.Bool("robot-sections", false, "Output sections and their blocks as JSON")
	configPath := fs.String("config", "", "Path to config.yaml (default: ~/.config/showcase/config.yaml)")
	debugFlag := fs.Bool("debug", false, "Enable debug logging (stderr, or $SHOWCASE_DEBUG_LOG while the TUI runs)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *help {
		fmt.Fprintln(stdout, "Usage: showcase [options]")
		fmt.Fprintln(stdout, "\nA tabbed terminal viewer for the GenAI backend project summary.")
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		return 0
	}

	if *versionFlag {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	if *debugFlag {
		debug.SetEnabled(true)
	}

	start := time.Now()
	doc, err := content.Default()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading content: %v\n", err)
		return 1
	}

	if *robotSections {
		if err := writeRobotSections(stdout, doc); err != nil {
			fmt.Fprintf(stderr, "Error encoding sections: %v\n", err)
			return 1
		}
		return 0
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		// Non-fatal: continue with defaults
		debug.Log("config: %v (using defaults)", err)
		fmt.Fprintf(stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}

	if *sectionFlag != "" && !*printFlag {
		fmt.Fprintln(stderr, "Error: --section requires --print")
		return 2
	}

	if !*printFlag && !tty {
		fmt.Fprintf(stderr, "Error: %v\n", ErrMountFailed)
		return 1
	}

	renderer := lipgloss.NewRenderer(stdout)
	m, err := ui.NewModel(doc, cfg.UI, ui.DefaultTheme(renderer))
	if err != nil {
		fmt.Fprintf(stderr, "Error building viewer: %v\n", err)
		return 1
	}
	debug.LogTiming("building viewer", time.Since(start))

	if *printFlag {
		if *sectionFlag != "" {
			id, err := ui.ParseSectionID(*sectionFlag)
			if err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return 2
			}
			if err := m.SelectSection(id); err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return 2
			}
		}
		m.SetSize(printWidth(stdout), 0)
		fmt.Fprintln(stdout, m.Printable())
		return 0
	}

	// The TUI owns the terminal, so log lines go to a file instead of being
	// drawn over it. A redirected stderr (2>file) is left alone.
	if debug.Enabled() && isTerminal(stderr) {
		path := debugLogPath()
		closeLog, err := openDebugLog(path)
		if err != nil {
			fmt.Fprintf(stderr, "Warning: %v\n", err)
		} else {
			fmt.Fprintf(stderr, "Debug log: %s\n", path)
			defer closeLog()
		}
	}

	if err := runTUIProgram(m, cfg.UI); err != nil {
		fmt.Fprintf(stderr, "Error running showcase: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// debugLogPath is where debug output goes while the TUI is running.
func debugLogPath() string {
	if p := os.Getenv("SHOWCASE_DEBUG_LOG"); p != "" {
		return p
	}
	return filepath.Join(os.TempDir(), "showcase-debug.log")
}

// openDebugLog appends debug output to path until the returned func is
// called, which restores stderr and closes the file.
func openDebugLog(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening debug log: %w", err)
	}
	debug.SetOutput(f)
	return func() {
		debug.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printWidth is the terminal width for --print, or 80 when piped.
func printWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultPrintWidth
}

type robotBlock struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Lines    int    `json:"lines"`
}

type robotSection struct {
	ID      string       `json:"id"`
	Label   string       `json:"label"`
	Default bool         `json:"default,omitempty"`
	Blocks  []robotBlock `json:"blocks"`
}

type robotOutput struct {
	Title    string         `json:"title"`
	Version  string         `json:"version"`
	Sections []robotSection `json:"sections"`
}

// writeRobotSections lists the tabs in order with the blocks each one shows.
// Categories are the effective ones, after defaulting.
func writeRobotSections(w io.Writer, doc content.Document) error {
	out := robotOutput{
		Title:    doc.Title,
		Version:  version.Version,
		Sections: make([]robotSection, 0, len(ui.Sections())),
	}
	for _, s := range ui.Sections() {
		rs := robotSection{
			ID:      string(s.ID),
			Label:   s.Label,
			Default: s.ID == ui.DefaultSection,
			Blocks:  []robotBlock{},
		}
		if cs, ok := doc.Section(string(s.ID)); ok {
			for _, b := range cs.Blocks {
				blk := ui.BlockFromContent(b)
				rs.Blocks = append(rs.Blocks, robotBlock{
					Title:    blk.Title,
					Category: blk.EffectiveCategory(),
					Lines:    blk.LineCount(),
				})
			}
		}
		out.Sections = append(out.Sections, rs)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func runTUIProgram(m ui.Model, cfg config.UIConfig) error {
	opts := []tea.ProgramOption{tea.WithoutSignalHandler()}
	if cfg.AltScreenEnabled() {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.MouseEnabled() {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, opts...)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated tests: set SHOWCASE_TUI_AUTOCLOSE_MS.
	if delay, ok := autocloseDelay(os.Getenv("SHOWCASE_TUI_AUTOCLOSE_MS")); ok {
		go func() {
			timer := time.NewTimer(delay)
			defer timer.Stop()

			select {
			case <-runDone:
				return
			case <-timer.C:
			}

			p.Quit()

			select {
			case <-runDone:
				return
			case <-time.After(2 * time.Second):
			}

			p.Kill()
		}()
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}

func autocloseDelay(v string) (time.Duration, bool) {
	if v == "" {
		return 0, false
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}
