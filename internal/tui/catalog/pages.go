package catalog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/valger11/suomifi-ui-components/internal/combobox"
	"github.com/valger11/suomifi-ui-components/internal/config"
	"github.com/valger11/suomifi-ui-components/internal/expander"
	widgets "github.com/valger11/suomifi-ui-components/internal/tui/components"
	core "github.com/valger11/suomifi-ui-components/internal/ui"
	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
	apperrors "github.com/valger11/suomifi-ui-components/pkg/errors"
)

// Page is one entry of the catalog navigation.
type Page struct {
	Title   string
	Intro   string
	Statics []core.Renderable
	Widgets []widgets.Widget
}

// Slug is the page title in lower case with spaces removed, as used by
// the render command.
func (p *Page) Slug() string {
	return strings.ReplaceAll(strings.ToLower(p.Title), " ", "")
}

// Render draws the page body: intro, static components, then widgets.
func (p *Page) Render(ctx ui.RenderContext) string {
	parts := []string{ui.TypographyStyle(ctx.Theme, ui.TypographyLead).Render(p.Intro)}
	for _, r := range p.Statics {
		parts = append(parts, render(ctx, r))
	}
	for _, w := range p.Widgets {
		parts = append(parts, w.ViewWithContext(ctx))
	}
	return strings.Join(parts, "\n\n")
}

// BuildPages returns the showcase pages without a live catalog around
// them. Widget callbacks are discarded.
func BuildPages(cfg *config.Config, clipboard ui.Clipboard) []*Page {
	if cfg == nil {
		cfg = config.Default()
	}
	return buildPages(cfg, newEventLog(eventHistory), clipboard)
}

// FindPage looks a page up by slug.
func FindPage(pages []*Page, slug string) (*Page, error) {
	want := strings.ReplaceAll(strings.ToLower(slug), " ", "")
	available := make([]string, len(pages))
	for i, p := range pages {
		if p.Slug() == want {
			return p, nil
		}
		available[i] = p.Slug()
	}
	return nil, &apperrors.UnknownComponentError{Name: slug, Available: available}
}

// eventLog keeps the most recent widget callbacks for the status area.
type eventLog struct {
	limit   int
	entries []string
}

func newEventLog(limit int) *eventLog {
	return &eventLog{limit: limit}
}

func (e *eventLog) add(format string, args ...any) {
	e.entries = append(e.entries, fmt.Sprintf(format, args...))
	if len(e.entries) > e.limit {
		e.entries = e.entries[len(e.entries)-e.limit:]
	}
}

func (e *eventLog) recent() []string {
	return e.entries
}

// trap is implemented by widgets that keep every key while active.
type trap interface {
	Trapping() bool
}

type closer interface {
	Close()
}

// buildPages assembles the showcase. events receives every widget callback.
func buildPages(cfg *config.Config, events *eventLog, clipboard ui.Clipboard) []*Page {
	return []*Page{
		buttonPage(),
		headingPage(),
		textPage(),
		chipPage(),
		iconPage(),
		colorsPage(clipboard, events),
		checkboxPage(events),
		textInputPage(cfg, events),
		expanderPage(events),
		comboboxPage(cfg, events),
		modalPage(events),
		languagePage(cfg, events),
	}
}

func buttonPage() *Page {
	return &Page{
		Title: "Button",
		Intro: "Primary, secondary and link actions.",
		Statics: []core.Renderable{
			ui.HStack(
				ui.NewButton("Default"),
				ui.NewButton("Secondary").WithVariant(ui.ButtonSecondary),
				ui.NewButton("No border").WithVariant(ui.ButtonSecondaryNoBorder),
			).WithGap(1),
			ui.HStack(
				ui.NewButton("Inverted").WithVariant(ui.ButtonInverted),
				ui.NewButton("Link").WithVariant(ui.ButtonLink),
				ui.NewButton("Disabled").WithDisabled(true),
			).WithGap(1),
			ui.NewButton("Log in").WithIcon("login").WithFullWidth(true),
		},
	}
}

func headingPage() *Page {
	return &Page{
		Title: "Heading",
		Intro: "Six heading levels plus the hero size.",
		Statics: []core.Renderable{
			ui.NewHeading(ui.HeadingH1Hero, "Hero heading"),
			ui.NewHeading(ui.HeadingH1, "Heading 1"),
			ui.NewHeading(ui.HeadingH2, "Heading 2"),
			ui.NewHeading(ui.HeadingH3, "Heading 3"),
			ui.NewHeading(ui.HeadingH4, "Heading 4"),
			ui.NewHeading(ui.HeadingH5, "Heading 5"),
			ui.NewHeading(ui.HeadingH6, "Heading 6").WithColor("highlightBase"),
		},
	}
}

func textPage() *Page {
	return &Page{
		Title: "Text and links",
		Intro: "Body text, links and the breadcrumb trail.",
		Statics: []core.Renderable{
			ui.NewText("Suomi.fi is the shared service channel of the Finnish public administration."),
			ui.NewLink("Read the guidelines", "https://suomi.fi/guidelines"),
			ui.NewExternalLink("Open the design system", "https://designsystem.suomi.fi", "opens in a new window"),
			ui.NewBreadcrumb("Breadcrumb",
				ui.BreadcrumbLink{Text: "Home", Href: "/"},
				ui.BreadcrumbLink{Text: "Components", Href: "/components"},
				ui.BreadcrumbLink{Text: "Breadcrumb", Current: true},
			),
			ui.NewVisuallyHidden("Read by screen readers only"),
		},
	}
}

func chipPage() *Page {
	return &Page{
		Title: "Chip",
		Intro: "Static and removable chips.",
		Statics: []core.Renderable{
			ui.NewChipList("Tools",
				ui.NewStaticChip("Hammer"),
				ui.NewChip("Saw", "Remove"),
				ui.NewChip("Chisel", "Remove").WithDisabled(true),
			),
		},
	}
}

func iconPage() *Page {
	names := ui.IconNames()
	rows := make([]core.Renderable, 0, len(names))
	for _, name := range names {
		rows = append(rows, ui.HStack(ui.NewIcon(name).WithAriaLabel(name), ui.NewText(name)).WithGap(1))
	}
	return &Page{Title: "Icon", Intro: "Registered icon glyphs.", Statics: rows}
}

func colorsPage(clipboard ui.Clipboard, events *eventLog) *Page {
	colors := ui.NewColors()
	if clipboard != nil {
		colors = colors.WithClipboard(clipboard)
	}
	return &Page{
		Title:   "Colors",
		Intro:   "Design tokens. Enter copies the token key.",
		Widgets: []widgets.Widget{newColorsWidget(colors, events)},
	}
}

func checkboxPage(events *eventLog) *Page {
	return &Page{
		Title: "Checkbox",
		Intro: "Small and large checkboxes, and the toggle switch.",
		Widgets: []widgets.Widget{
			widgets.NewCheckbox("I accept the terms").
				WithName("terms").WithValue("accepted").
				OnClick(func(checked bool) { events.add("checkbox terms: %t", checked) }),
			widgets.NewCheckbox("Large checkbox").
				WithVariant(widgets.CheckboxLarge).
				WithHintText("Large variant for touch screens").
				OnClick(func(checked bool) { events.add("checkbox large: %t", checked) }),
			widgets.NewCheckbox("Required choice").
				WithStatus(ui.StatusError, "Choose this option").
				OnClick(func(checked bool) { events.add("checkbox required: %t", checked) }),
			widgets.NewCheckbox("Disabled").WithDisabled(true).WithDefaultChecked(true),
			widgets.NewToggle("Notifications").
				OnChange(func(on bool) { events.add("toggle notifications: %t", on) }),
		},
	}
}

func textInputPage(cfg *config.Config, events *eventLog) *Page {
	search := widgets.NewSearchInput("Search services", "Clear", "Search").
		OnSearch(func(v string) { events.add("search: %q", v) })
	search.WithDebounce(cfg.Debounce()).
		OnChange(func(v string) { events.add("search typed: %q", v) })

	return &Page{
		Title: "Text input",
		Intro: "Single and multi-line text fields.",
		Widgets: []widgets.Widget{
			widgets.NewTextInput("First name").
				WithHintText("As written in your passport").
				WithDebounce(cfg.Debounce()).
				OnChange(func(v string) { events.add("text input: %q", v) }),
			widgets.NewTextInput("Email").
				WithOptionalText("optional").
				WithStatus(ui.StatusError, "Enter a valid address").
				WithPlaceholder("name@example.com"),
			search,
			widgets.NewTextarea("Message").
				WithHintText("Max 200 characters").
				WithCharLimit(200).
				OnBlur(func(v string) { events.add("textarea: %d characters", len(v)) }),
		},
	}
}

func expanderPage(events *eventLog) *Page {
	first := widgets.NewExpander("", "Opening hours", ui.NewText("Mon–Fri 8–16"), expander.Options{})
	second := widgets.NewExpander("", "Contact", ui.NewText("info@example.com"), expander.Options{DefaultOpen: true})
	third := widgets.NewExpander("", "Accessibility", ui.NewText("The service follows WCAG 2.1 AA."), expander.Options{
		OnOpenChange: func(open bool) { events.add("expander accessibility: %t", open) },
	})
	return &Page{
		Title: "Expander",
		Intro: "Collapsible panels with an open-all control. Use ↑/↓ inside the group.",
		Widgets: []widgets.Widget{
			widgets.NewExpander("", "Standalone expander", ui.NewText("Content outside any group."), expander.Options{}),
			widgets.NewExpanderGroup("Open all", "Close all", first, second, third),
		},
	}
}

func comboboxPage(cfg *config.Config, events *eventLog) *Page {
	items := cfg.Items()
	multi := widgets.NewCombobox("Tools", items, combobox.Options{
		Callbacks: combobox.Callbacks{
			OnSelectionChange: func(selected []combobox.Item) {
				labels := make([]string, len(selected))
				for i, it := range selected {
					labels[i] = it.Label
				}
				events.add("combobox: %s", strings.Join(labels, ", "))
			},
			OnRemoveAll: func() { events.add("combobox: removed all") },
		},
	}).WithHintText("Type to filter, enter to pick").WithPlaceholder("Choose tools")

	single := widgets.NewSelect("Favourite tool", items, combobox.Options{
		Callbacks: combobox.Callbacks{
			OnItemSelect: func(id string) { events.add("select: %s", id) },
		},
	})

	return &Page{
		Title:   "Combobox",
		Intro:   "Multi-select with chips, and single select.",
		Widgets: []widgets.Widget{multi, single},
	}
}

func modalPage(events *eventLog) *Page {
	modal := widgets.NewModal("Delete draft?", ui.NewText("The draft cannot be restored.")).
		WithFooter("Delete", "Cancel")
	modal.OnEscape(func() { events.add("modal: escaped") })
	modal.OnAction(func(i int) {
		events.add("modal: action %d", i)
		modal.Close()
	})
	return &Page{
		Title:   "Modal",
		Intro:   "Enter opens the dialog. Focus stays inside until it closes.",
		Widgets: []widgets.Widget{newModalLauncher("Open modal", modal)},
	}
}

func languagePage(cfg *config.Config, events *eventLog) *Page {
	items := make([]widgets.LanguageItem, len(cfg.Demo.Languages))
	for i, lang := range cfg.Demo.Languages {
		items[i] = widgets.LanguageItem{Label: lang.Label, Lang: lang.Code}
	}
	menu := widgets.NewLanguageMenu(strings.ToUpper(cfg.Language), items...).
		WithSelected(cfg.Language).
		OnSelect(func(item widgets.LanguageItem) { events.add("language: %s", item.Lang) })
	return &Page{
		Title:   "Language menu",
		Intro:   "Menu button with a popover list.",
		Widgets: []widgets.Widget{menu},
	}
}

// modalLauncher is a button that opens a modal and hands it every key
// while it is open.
type modalLauncher struct {
	label   string
	modal   *widgets.Modal
	focused bool
}

func newModalLauncher(label string, modal *widgets.Modal) *modalLauncher {
	return &modalLauncher{label: label, modal: modal}
}

func (l *modalLauncher) Trapping() bool { return l.modal.IsOpen() }

func (l *modalLauncher) Update(msg tea.Msg) tea.Cmd {
	if !l.focused {
		return nil
	}
	if l.modal.IsOpen() {
		return l.modal.Update(msg)
	}
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, widgets.Keys.Submit, widgets.Keys.Toggle) {
		l.modal.Open()
		return l.modal.Focus()
	}
	return nil
}

func (l *modalLauncher) View() string {
	return l.ViewWithContext(ui.DefaultContext())
}

func (l *modalLauncher) ViewWithContext(ctx ui.RenderContext) string {
	button := ui.NewButton(l.label).WithFocused(l.focused && !l.modal.IsOpen()).ViewWithContext(ctx)
	if !l.modal.IsOpen() {
		return button
	}
	return button + "\n" + l.modal.ViewWithContext(ctx)
}

func (l *modalLauncher) Focus() tea.Cmd {
	l.focused = true
	return nil
}

func (l *modalLauncher) Blur() {
	l.focused = false
	l.modal.Blur()
}

func (l *modalLauncher) Focused() bool { return l.focused }

func (l *modalLauncher) Accessibility() ui.Accessibility {
	return ui.Accessibility{Role: "button", Label: l.label, Controls: l.modal.Accessibility().ID, Expanded: ui.Bool(l.modal.IsOpen())}
}

// colorsWidget makes the token list navigable.
type colorsWidget struct {
	colors  *ui.Colors
	events  *eventLog
	focused bool
}

func newColorsWidget(colors *ui.Colors, events *eventLog) *colorsWidget {
	return &colorsWidget{colors: colors, events: events}
}

func (c *colorsWidget) Update(msg tea.Msg) tea.Cmd {
	if !c.focused {
		return nil
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(k, widgets.Keys.Down):
		c.colors.Move(1)
	case key.Matches(k, widgets.Keys.Up):
		c.colors.Move(-1)
	case key.Matches(k, widgets.Keys.Submit, widgets.Keys.Toggle):
		copied, err := c.colors.CopySelected()
		if err != nil {
			return func() tea.Msg { return ErrorMsg{Message: err.Error()} }
		}
		c.events.add("copied %s", copied)
	}
	return nil
}

func (c *colorsWidget) View() string {
	return c.ViewWithContext(ui.DefaultContext())
}

func (c *colorsWidget) ViewWithContext(ctx ui.RenderContext) string {
	return c.colors.ViewWithContext(ctx)
}

func (c *colorsWidget) Focus() tea.Cmd {
	c.focused = true
	return nil
}

func (c *colorsWidget) Blur()         { c.focused = false }
func (c *colorsWidget) Focused() bool { return c.focused }

func (c *colorsWidget) Accessibility() ui.Accessibility {
	return ui.Accessibility{Role: "listbox", Label: "Colors"}
}
