package components

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/valger11/suomifi-ui-components/internal/combobox"
	"github.com/valger11/suomifi-ui-components/internal/debounce"
	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

const popoverRows = 8

// ComboboxTexts are the visible and announced strings of a combobox.
type ComboboxTexts struct {
	EmptyItems       string
	RemoveAll        string
	ChipAction       string
	SelectedAmount   string
	OptionsAvailable string
}

// Combobox is a filterable multi-select: a text field narrows the item list,
// picked items show up as removable chips.
type Combobox struct {
	field
	state       *combobox.State
	input       textinput.Model
	debouncer   *debounce.Debouncer
	onQuery     func(query string)
	texts       ComboboxTexts
	chipsHidden bool
	// chipFocus is the index of the focused chip, or -1.
	chipFocus int
	component string
}

// NewCombobox creates a multi-select over items.
func NewCombobox(label string, items []combobox.Item, opts combobox.Options) *Combobox {
	opts.Mode = combobox.ModeMulti
	return newCombobox("multiselect", label, items, opts)
}

func newCombobox(component, label string, items []combobox.Item, opts combobox.Options) *Combobox {
	in := textinput.New()
	in.Prompt = ""
	in.Cursor.SetMode(cursor.CursorStatic)
	return &Combobox{
		field:     newField(component, label),
		state:     combobox.New(items, opts),
		input:     in,
		chipFocus: -1,
		component: component,
		texts: ComboboxTexts{
			EmptyItems:       "No items",
			RemoveAll:        "Remove all selections",
			ChipAction:       "Remove",
			SelectedAmount:   "selected",
			OptionsAvailable: "options available",
		},
	}
}

// WithID sets the id the label, hint and status ids derive from.
func (c *Combobox) WithID(id string) *Combobox {
	c.id = id
	return c
}

// WithTexts replaces the visible and announced texts.
func (c *Combobox) WithTexts(texts ComboboxTexts) *Combobox {
	c.texts = texts
	return c
}

// WithHintText shows text under the label and adds it to DescribedBy.
func (c *Combobox) WithHintText(text string) *Combobox {
	c.hintText = text
	return c
}

// WithStatus marks the field, e.g. ui.StatusError with an error text.
func (c *Combobox) WithStatus(status ui.Status, text string) *Combobox {
	c.status = status
	c.statusText = text
	return c
}

// WithPlaceholder sets the text shown in an empty filter field.
func (c *Combobox) WithPlaceholder(text string) *Combobox {
	c.input.Placeholder = text
	return c
}

// WithDisabled makes the combobox ignore focus and keys.
func (c *Combobox) WithDisabled(disabled bool) *Combobox {
	c.disabled = disabled
	return c
}

// WithChipListHidden hides the chips; the selection is then only announced.
func (c *Combobox) WithChipListHidden(hidden bool) *Combobox {
	c.chipsHidden = hidden
	return c
}

// WithDebounce delays OnQueryChange until typing pauses for d. Filtering
// itself is never delayed.
func (c *Combobox) WithDebounce(d time.Duration) *Combobox {
	c.debouncer = debounce.New(d)
	return c
}

// OnQueryChange is called with the filter text after the debounce delay.
func (c *Combobox) OnQueryChange(fn func(query string)) *Combobox {
	c.onQuery = fn
	return c
}

// State exposes the selection model.
func (c *Combobox) State() *combobox.State { return c.state }

// ID returns the element id.
func (c *Combobox) ID() string { return c.id }

// Query returns the current filter text.
func (c *Combobox) Query() string { return c.input.Value() }

// ChipFocus is the index of the focused chip, or -1.
func (c *Combobox) ChipFocus() int { return c.chipFocus }

// Focus moves keyboard input to the filter field.
func (c *Combobox) Focus() tea.Cmd {
	if c.disabled {
		return nil
	}
	c.focused = true
	return c.input.Focus()
}

// Blur closes the popover and drops the filter text.
func (c *Combobox) Blur() {
	c.focused = false
	c.chipFocus = -1
	c.input.Blur()
	c.state.ClosePopover()
	c.input.SetValue("")
	if c.debouncer != nil {
		c.debouncer.Cancel()
	}
}

// Focused reports whether the combobox has keyboard focus.
func (c *Combobox) Focused() bool { return c.focused }

// Update handles keys while focused and debounce ticks at any time.
func (c *Combobox) Update(msg tea.Msg) tea.Cmd {
	if c.debouncer != nil {
		if value, ok := c.debouncer.Accept(msg); ok {
			c.notifyQuery(value)
			return nil
		}
	}
	if !c.focused || c.disabled {
		return nil
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return cmd
	}

	if c.chipFocus >= 0 && c.updateChips(k) {
		return nil
	}

	switch {
	case key.Matches(k, Keys.Down):
		c.state.HandleKey(combobox.KeyDown)
	case key.Matches(k, Keys.Up):
		c.state.HandleKey(combobox.KeyUp)
	case key.Matches(k, Keys.Submit):
		c.state.HandleKey(combobox.KeyEnter)
		c.afterCommit()
	case key.Matches(k, Keys.Close):
		c.state.HandleKey(combobox.KeyEscape)
		return c.setInput("")
	case key.Matches(k, Keys.RemoveAll):
		c.state.RemoveAll()
	case key.Matches(k, Keys.Left) && c.input.Value() == "" && len(c.chips()) > 0:
		c.chipFocus = len(c.chips()) - 1
		c.state.ClosePopover()
	default:
		c.state.HandleKey(combobox.KeyOther)
		before := c.input.Value()
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(k)
		if after := c.input.Value(); after != before {
			c.state.SetQuery(after)
			return tea.Batch(cmd, c.queryChanged(after))
		}
		return cmd
	}
	return nil
}

// updateChips handles keys while a chip has focus. It reports whether the
// key was consumed.
func (c *Combobox) updateChips(k tea.KeyMsg) bool {
	chips := c.chips()
	if c.chipFocus >= len(chips) {
		c.chipFocus = len(chips) - 1
	}
	if c.chipFocus < 0 {
		return false
	}
	switch {
	case key.Matches(k, Keys.Left):
		if c.chipFocus > 0 {
			c.chipFocus--
		}
	case key.Matches(k, Keys.Right):
		c.chipFocus++
		if c.chipFocus >= len(chips) {
			c.chipFocus = -1
		}
	case key.Matches(k, Keys.Remove, Keys.Submit, Keys.Toggle):
		c.state.ToggleID(chips[c.chipFocus].ID)
		if n := len(c.chips()); c.chipFocus >= n {
			c.chipFocus = n - 1
		}
	default:
		c.chipFocus = -1
		return false
	}
	return true
}

func (c *Combobox) afterCommit() {
	if c.state.Mode() != combobox.ModeSingle {
		return
	}
	c.state.ClosePopover()
	c.input.SetValue("")
}

func (c *Combobox) setInput(value string) tea.Cmd {
	if c.input.Value() == value {
		return nil
	}
	c.input.SetValue(value)
	return c.queryChanged(value)
}

func (c *Combobox) queryChanged(value string) tea.Cmd {
	if c.debouncer == nil {
		c.notifyQuery(value)
		return nil
	}
	return c.debouncer.Trigger(value)
}

func (c *Combobox) notifyQuery(value string) {
	if c.onQuery != nil {
		c.onQuery(value)
	}
}

// chips are the selected items shown as chips, in pick order.
func (c *Combobox) chips() []combobox.Item {
	if c.chipsHidden || c.state.Mode() == combobox.ModeSingle {
		return nil
	}
	return c.state.Selected()
}

// View renders with the default theme.
func (c *Combobox) View() string {
	return c.ViewWithContext(ui.DefaultContext())
}

// ViewWithContext renders the field, the chip list and, while open, the
// popover list.
func (c *Combobox) ViewWithContext(ctx ui.RenderContext) string {
	c.report(ctx)

	box := ui.InputStyle(ctx.Theme, c.inputState())
	content := c.input.View()
	if c.state.Mode() == combobox.ModeSingle && c.input.Value() == "" && !c.state.PopoverOpen() {
		if sel := c.state.Selected(); len(sel) > 0 {
			content = sel[0].Label
		}
	}
	content += " " + ui.IconGlyph("arrowDown")
	if w := ctx.Width(); w > 0 {
		box = box.Width(w - box.GetHorizontalBorderSize())
	}
	control := box.Render(content)
	if c.state.PopoverOpen() {
		control = joinLines(control, c.popover(ctx))
	}
	if chips := c.chipsView(ctx); chips != "" {
		control = joinLines(control, chips)
	}
	return c.layout(ctx, control)
}

func (c *Combobox) report(ctx ui.RenderContext) {
	if c.label == "" {
		ctx.Diagnostics.MissingLabel(c.component, c.id)
	}
	var dup *combobox.DuplicateIDError
	if err := combobox.ValidateItems(c.state.Items()); errors.As(err, &dup) {
		ctx.Diagnostics.DuplicateIDs(c.component, dup.IDs)
	}
}

func (c *Combobox) popover(ctx ui.RenderContext) string {
	palette := ctx.Theme.Palette
	frame := lipgloss.NewStyle().
		Border(ui.BorderForVariant(ctx.Theme, ui.BorderVariantNormal)).
		BorderForeground(palette.Depth.Base)

	visible := c.state.Visible()
	if len(visible) == 0 {
		empty := ui.TypographyStyle(ctx.Theme, ui.TypographyBody).Foreground(palette.Depth.Base)
		return frame.Render(empty.Render(c.texts.EmptyItems))
	}

	cursor := c.state.CursorIndex()
	start := 0
	if cursor >= popoverRows {
		start = cursor - popoverRows + 1
	}
	end := start + popoverRows
	if end > len(visible) {
		end = len(visible)
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, c.row(ctx, visible[i], i == cursor))
	}
	return frame.Render(strings.Join(rows, "\n"))
}

func (c *Combobox) row(ctx ui.RenderContext, item combobox.Item, active bool) string {
	palette := ctx.Theme.Palette
	text := ui.TypographyStyle(ctx.Theme, ui.TypographyBody)
	match := text.Bold(true).Underline(true)
	disabled := c.state.IsDisabled(item.ID) || item.Disabled
	if disabled {
		text = text.Foreground(palette.Depth.Base)
		match = match.Foreground(palette.Depth.Base)
	}

	var b strings.Builder
	if active {
		b.WriteString(ui.IconGlyph("arrowRight"))
	} else {
		b.WriteString(" ")
	}
	b.WriteString(" ")
	selected := c.state.IsSelected(item.ID)
	if c.state.Mode() == combobox.ModeMulti {
		mark := " "
		if selected {
			mark = ui.IconGlyph("check")
		}
		b.WriteString("[" + mark + "] ")
	}
	for _, seg := range combobox.Highlight(item.Label, c.state.Query()) {
		if seg.Match {
			b.WriteString(match.Render(seg.Text))
		} else {
			b.WriteString(text.Render(seg.Text))
		}
	}
	if c.state.Mode() == combobox.ModeSingle && selected {
		b.WriteString(" " + ui.IconGlyph("check"))
	}

	line := b.String()
	if active {
		line = lipgloss.NewStyle().Background(palette.Highlight.Muted).Render(line)
	}
	return line
}

func (c *Combobox) chipsView(ctx ui.RenderContext) string {
	items := c.chips()
	if len(items) == 0 {
		return ""
	}
	chips := make([]*ui.Chip, len(items))
	removable := false
	for i, item := range items {
		disabled := c.state.IsDisabled(item.ID) || item.Disabled || c.disabled
		chips[i] = ui.NewChip(item.Chip(), c.texts.ChipAction).
			WithID(item.ID).
			WithDisabled(disabled).
			WithFocused(i == c.chipFocus)
		removable = removable || !disabled
	}
	list := ui.NewChipList(c.label, chips...).ViewWithContext(ctx)
	if !removable {
		return list
	}
	removeAll := ui.NewButton(c.texts.RemoveAll).
		WithVariant(ui.ButtonLink).
		WithIcon("close").
		ViewWithContext(ctx)
	return joinLines(list, removeAll)
}

// Announcement is the live text a screen reader reads after filtering or
// selecting.
func (c *Combobox) Announcement() string {
	parts := []string{fmt.Sprintf("%d %s", len(c.state.Visible()), c.texts.OptionsAvailable)}
	if c.state.Mode() == combobox.ModeMulti {
		parts = append([]string{fmt.Sprintf("%d %s", len(c.state.Selected()), c.texts.SelectedAmount)}, parts...)
	}
	return strings.Join(parts, ", ")
}

// Accessibility describes the filter field as a combobox controlling the list.
func (c *Combobox) Accessibility() ui.Accessibility {
	return ui.Accessibility{
		Role:        "combobox",
		ID:          c.id,
		Label:       c.label,
		Description: c.Announcement(),
		DescribedBy: c.describedBy(),
		Controls:    c.id + "-popover",
		Expanded:    ui.Bool(c.state.PopoverOpen()),
		Invalid:     c.status == ui.StatusError,
		Disabled:    c.disabled,
	}
}

// Select is the single-choice variant: the cursor lands on the first match
// while filtering and the popover closes once an item is picked.
type Select struct {
	*Combobox
}

// NewSelect creates a single-select over items.
func NewSelect(label string, items []combobox.Item, opts combobox.Options) *Select {
	opts.Mode = combobox.ModeSingle
	opts.CursorReset = combobox.ResetToFirst
	return &Select{Combobox: newCombobox("select", label, items, opts)}
}

// Value returns the selected item, if any.
func (s *Select) Value() (combobox.Item, bool) {
	sel := s.state.Selected()
	if len(sel) == 0 {
		return combobox.Item{}, false
	}
	return sel[0], true
}
