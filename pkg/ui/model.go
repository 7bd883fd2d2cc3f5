package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vanderheijden86/showcase/pkg/config"
	"github.com/vanderheijden86/showcase/pkg/content"
	"github.com/vanderheijden86/showcase/pkg/debug"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// SelectSectionMsg is the "section selected" input event. Key presses and
// tab clicks are translated into it; hosts may also send it directly.
type SelectSectionMsg struct {
	ID SectionID
}

// SelectSection returns a command that emits SelectSectionMsg for id.
func SelectSection(id SectionID) tea.Cmd {
	return func() tea.Msg { return SelectSectionMsg{ID: id} }
}

// Model is the Bubble Tea model for the viewer: page header, tab bar, the
// active panel in a scrollable viewport, and a help footer.
type Model struct {
	doc    content.Document
	cfg    config.UIConfig
	theme  Theme
	md     *MarkdownRenderer
	tabs   Tabs
	panels Panels

	viewport viewport.Model
	help     help.Model
	keys     keyMap

	width  int
	height int

	statusMsg     string
	statusIsError bool
	quitting      bool
}

// NewModel builds the viewer for doc. The model starts at DefaultSection
// with a default 80x24 size until the first WindowSizeMsg arrives.
func NewModel(doc content.Document, cfg config.UIConfig, theme Theme) (Model, error) {
	md := NewMarkdownRenderer(cfg.MarkdownStyle)
	panels, err := BuildPanels(doc, theme, md)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		doc:      doc,
		cfg:      cfg,
		theme:    theme,
		md:       md,
		tabs:     NewTabs(),
		panels:   panels,
		viewport: viewport.New(defaultWidth, defaultHeight),
		help:     help.New(),
		keys:     defaultKeyMap(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.help.Width = defaultWidth
	m.resize()
	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles window, selection, mouse, and key messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case SelectSectionMsg:
		m.handleSelect(msg.ID)
		return m, nil

	case tea.MouseMsg:
		if m.handleMouse(msg) {
			return m, nil
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.handleSelect(m.tabs.Neighbor(1))
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.handleSelect(m.tabs.Neighbor(-1))
			return m, nil
		case key.Matches(msg, m.keys.Jump):
			if idx := int(msg.String()[0] - '1'); idx >= 0 && idx < len(sectionOrder) {
				m.handleSelect(sectionOrder[idx])
			}
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.copyPanel()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the full screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		m.tabs.View(m.theme, m.contentWidth()),
		m.viewport.View(),
		m.renderStatus(),
		m.help.View(m.keys),
	)
}

// Printable renders the header, tab bar, and the whole active panel without
// the viewport or footer, for non-interactive output.
func (m Model) Printable() string {
	return strings.Join([]string{
		m.renderHeader(),
		"",
		m.tabs.View(m.theme, m.contentWidth()),
		m.activePanel(),
	}, "\n")
}

// ActiveSection returns the active section.
func (m Model) ActiveSection() SectionID {
	return m.tabs.Active()
}

// SelectSection makes id the active section and re-renders the panel. An
// unknown id changes nothing and returns an *InvalidSectionError.
func (m *Model) SelectSection(id SectionID) error {
	prev := m.tabs.Active()
	if err := m.tabs.Select(id); err != nil {
		return err
	}
	if prev != id {
		debug.Log("section %s -> %s", prev, id)
		m.refreshPanel()
		m.viewport.GotoTop()
	}
	return nil
}

// SetSize applies terminal dimensions outside of the event loop.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.resize()
}

// StatusMessage returns the footer status text and whether it is an error.
func (m Model) StatusMessage() (string, bool) {
	return m.statusMsg, m.statusIsError
}

func (m *Model) handleSelect(id SectionID) {
	if err := m.SelectSection(id); err != nil {
		debug.Log("rejected selection: %v", err)
		m.statusMsg = err.Error()
		m.statusIsError = true
		return
	}
	m.statusMsg = ""
	m.statusIsError = false
}

// handleMouse selects a tab on a left click inside the tab bar. It reports
// whether the event was consumed.
func (m *Model) handleMouse(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	top := m.tabBarRow()
	if msg.Y != top && msg.Y != top+1 {
		return false
	}
	id, ok := m.tabs.HitTest(msg.X)
	debug.LogIf(!ok, "click at column %d outside tabs", msg.X)
	if ok {
		m.handleSelect(id)
	}
	return true
}

func (m *Model) copyPanel() {
	label := m.tabs.Active().Label()
	text := strings.TrimRight(ansi.Strip(m.activePanel()), "\n")
	if err := clipboardWrite(text); err != nil {
		m.statusMsg = fmt.Sprintf("❌ Clipboard error: %v", err)
		m.statusIsError = true
		return
	}
	m.statusMsg = fmt.Sprintf("📋 Copied %s panel to clipboard", label)
	m.statusIsError = false
}

func (m Model) activePanel() string {
	body, err := m.panels.Render(m.tabs.Active(), m.contentWidth())
	if err != nil {
		return m.theme.ErrorText.Render(err.Error())
	}
	return body
}

func (m *Model) refreshPanel() {
	m.viewport.SetContent(m.activePanel())
}

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-m.chromeHeight())
	m.refreshPanel()
}

// contentWidth is the terminal width capped by the configured maximum.
func (m Model) contentWidth() int {
	w := m.width
	if m.cfg.MaxWidth > 0 && w > m.cfg.MaxWidth {
		w = m.cfg.MaxWidth
	}
	return w
}

// chromeHeight is everything except the viewport: header, spacer, two tab
// bar rows, status line, and help.
func (m Model) chromeHeight() int {
	return lipgloss.Height(m.renderHeader()) + 1 + 2 + 1 + lipgloss.Height(m.help.View(m.keys))
}

// tabBarRow is the screen row of the tab labels.
func (m Model) tabBarRow() int {
	return lipgloss.Height(m.renderHeader()) + 1
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render(m.doc.Title)
	if len(m.doc.Badges) == 0 {
		return title
	}

	badges := make([]string, 0, len(m.doc.Badges))
	for _, b := range m.doc.Badges {
		style := m.theme.TechBadge
		if b.Kind == content.BadgeStatus {
			style = m.theme.StatusBadge
		}
		badges = append(badges, style.Render(b.Text))
	}
	return title + "\n" + strings.Join(badges, " ")
}

func (m Model) renderStatus() string {
	if m.statusMsg != "" {
		if m.statusIsError {
			return m.theme.ErrorText.Render(m.statusMsg)
		}
		return m.theme.MutedText.Render(m.statusMsg)
	}

	active := m.tabs.Active()
	pos := fmt.Sprintf("[%d/%d] %s", active.index()+1, len(sectionOrder), active.Label())
	if m.viewport.TotalLineCount() > m.viewport.Height {
		pos += fmt.Sprintf(" · %3.0f%%", m.viewport.ScrollPercent()*100)
	}
	return m.theme.MutedText.Render(pos)
}
