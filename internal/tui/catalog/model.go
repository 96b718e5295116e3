// Package catalog is the interactive showcase of every component: a page
// list on the left, the live preview on the right, and a help bar.
package catalog

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/valger11/suomifi-ui-components/internal/config"
	"github.com/valger11/suomifi-ui-components/internal/diagnostics"
	"github.com/valger11/suomifi-ui-components/internal/logger"
	widgets "github.com/valger11/suomifi-ui-components/internal/tui/components"
	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

// Pane is the part of the screen that receives keys.
type Pane int

const (
	PaneNav Pane = iota
	PanePreview
)

const eventHistory = 4

// Options configures a catalog Model.
type Options struct {
	Config      *config.Config
	Theme       ui.Theme
	Logger      *logger.Logger
	Diagnostics *diagnostics.Reporter
	// Loader fetches Config.Source when set. Without it the source is ignored.
	Loader    ThemeLoader
	Clipboard ui.Clipboard
	// Version is shown next to the title when set.
	Version string
}

// Model is the Bubbletea state of the catalog.
type Model struct {
	pages  []*Page
	cursor int
	pane   Pane
	focus  int

	themes   []ui.Theme
	themeIdx int

	version string

	cfg    *config.Config
	log    *logger.Logger
	diag   *diagnostics.Reporter
	events *eventLog

	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	fetching    bool
	fetchCmd    tea.Cmd
	cancelFetch context.CancelFunc

	showError bool
	errorMsg  string

	width  int
	height int
}

// NewModel builds the catalog. A nil Config means the defaults.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	events := newEventLog(eventHistory)
	m := Model{
		pages:   buildPages(cfg, events, opts.Clipboard),
		version: opts.Version,
		cfg:     cfg,
		log:     opts.Logger.WithComponent("catalog"),
		diag:    opts.Diagnostics,
		events:  events,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: s,
		width:   100,
		height:  30,
	}
	if m.diag == nil {
		m.diag = diagnostics.New(opts.Logger)
	}

	m.themes = []ui.Theme{ui.LightTheme(), ui.DarkTheme(), ui.AutoTheme()}
	if opts.Theme.Name != "" {
		m.themes, m.themeIdx = withTheme(m.themes, opts.Theme)
	}

	if cfg.Source != nil && opts.Loader != nil {
		ctx, cancel := context.WithCancel(context.Background())
		m.fetching = true
		m.cancelFetch = cancel
		m.fetchCmd = fetchThemeCmd(ctx, opts.Loader, *cfg.Source)
	}

	return m
}

// withTheme puts theme in the list, replacing a built-in of the same name,
// and returns its index.
func withTheme(themes []ui.Theme, theme ui.Theme) ([]ui.Theme, int) {
	for i, t := range themes {
		if t.Name == theme.Name {
			themes[i] = theme
			return themes, i
		}
	}
	return append(themes, theme), len(themes)
}

// Init starts the theme fetch, if one is configured.
func (m Model) Init() tea.Cmd {
	if !m.fetching {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.fetchCmd)
}

// Pages returns the catalog entries in navigation order.
func (m Model) Pages() []*Page {
	return m.pages
}

// CurrentPage returns the page under the navigation cursor.
func (m Model) CurrentPage() *Page {
	if m.cursor < 0 || m.cursor >= len(m.pages) {
		return nil
	}
	return m.pages[m.cursor]
}

// Cursor returns the navigation index.
func (m Model) Cursor() int { return m.cursor }

// Pane returns which pane has the keyboard.
func (m Model) Pane() Pane { return m.pane }

// FocusIndex returns the focused widget of the current page.
func (m Model) FocusIndex() int { return m.focus }

// FocusedWidget returns the widget holding focus in the preview pane.
func (m Model) FocusedWidget() (widgets.Widget, bool) {
	page := m.CurrentPage()
	if m.pane != PanePreview || page == nil || m.focus < 0 || m.focus >= len(page.Widgets) {
		return nil, false
	}
	return page.Widgets[m.focus], true
}

// Theme returns the active theme.
func (m Model) Theme() ui.Theme { return m.themes[m.themeIdx] }

// IsFetching reports whether a theme fetch is in flight.
func (m Model) IsFetching() bool { return m.fetching }

// Events returns the most recent widget callbacks, oldest first.
func (m Model) Events() []string { return m.events.recent() }

// Diagnostics returns the reporter collecting usage warnings.
func (m Model) Diagnostics() *diagnostics.Reporter { return m.diag }

// ErrorMessage returns the banner text, if the banner is shown.
func (m Model) ErrorMessage() (string, bool) { return m.errorMsg, m.showError }

func (m Model) renderContext(width int) ui.RenderContext {
	ctx := ui.DefaultContext().WithTheme(m.Theme()).WithDiagnostics(m.diag)
	ctx.ParentWidth = width
	return ctx
}

// MoveCursorUp moves the navigation cursor up with wrapping.
func (m *Model) MoveCursorUp() {
	if len(m.pages) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.pages) - 1
	}
}

// MoveCursorDown moves the navigation cursor down with wrapping.
func (m *Model) MoveCursorDown() {
	if len(m.pages) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.pages) {
		m.cursor = 0
	}
}

// SetCursor selects a page by index.
func (m *Model) SetCursor(index int) {
	if index >= 0 && index < len(m.pages) {
		m.cursor = index
	}
}

// NextTheme cycles through the available themes.
func (m *Model) NextTheme() {
	m.themeIdx = (m.themeIdx + 1) % len(m.themes)
	m.log.WithFields(map[string]any{"theme": m.Theme().Name}).Debug("theme switched")
}

// shutdown releases pending timers and fetches.
func (m *Model) shutdown() {
	if m.cancelFetch != nil {
		m.cancelFetch()
	}
	for _, page := range m.pages {
		for _, w := range page.Widgets {
			if c, ok := w.(closer); ok {
				c.Close()
			}
		}
	}
}
