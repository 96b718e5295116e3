package components

import (
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/valger11/suomifi-ui-components/internal/debounce"
	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

// TextInput is a labelled single line text field.
type TextInput struct {
	field
	input       textinput.Model
	debouncer   *debounce.Debouncer
	onChange    func(value string)
	externalIDs []string
	fullWidth   bool
	icon        string
	role        string
}

// NewTextInput creates an empty text field.
func NewTextInput(label string) *TextInput {
	in := textinput.New()
	in.Prompt = ""
	in.Cursor.SetMode(cursor.CursorStatic)
	return &TextInput{field: newField("textinput", label), input: in, role: "textbox"}
}

func (t *TextInput) WithID(id string) *TextInput {
	t.id = id
	return t
}

func (t *TextInput) WithLabelMode(mode ui.LabelMode) *TextInput {
	t.labelMode = mode
	return t
}

func (t *TextInput) WithOptionalText(text string) *TextInput {
	t.optionalText = text
	return t
}

func (t *TextInput) WithHintText(text string) *TextInput {
	t.hintText = text
	return t
}

func (t *TextInput) WithStatus(status ui.Status, text string) *TextInput {
	t.status = status
	t.statusText = text
	return t
}

// WithPlaceholder sets the visual placeholder shown while the field is empty.
func (t *TextInput) WithPlaceholder(text string) *TextInput {
	t.input.Placeholder = text
	return t
}

func (t *TextInput) WithDisabled(disabled bool) *TextInput {
	t.disabled = disabled
	if disabled {
		t.input.Blur()
	}
	return t
}

func (t *TextInput) WithFullWidth(full bool) *TextInput {
	t.fullWidth = full
	return t
}

// WithIcon shows a named glyph after the field.
func (t *TextInput) WithIcon(name string) *TextInput {
	t.icon = name
	return t
}

func (t *TextInput) WithCharLimit(n int) *TextInput {
	t.input.CharLimit = n
	return t
}

// WithDescribedBy adds ids of external elements that describe the field.
func (t *TextInput) WithDescribedBy(ids ...string) *TextInput {
	t.externalIDs = append(t.externalIDs, ids...)
	return t
}

// WithDebounce delays OnChange until typing pauses for d.
func (t *TextInput) WithDebounce(d time.Duration) *TextInput {
	t.debouncer = debounce.New(d)
	return t
}

func (t *TextInput) OnChange(fn func(value string)) *TextInput {
	t.onChange = fn
	return t
}

func (t *TextInput) ID() string    { return t.id }
func (t *TextInput) Value() string { return t.input.Value() }

// SetValue replaces the text without notifying OnChange.
func (t *TextInput) SetValue(value string) {
	t.input.SetValue(value)
}

func (t *TextInput) Focus() tea.Cmd {
	if t.disabled {
		return nil
	}
	t.focused = true
	return t.input.Focus()
}

func (t *TextInput) Blur() {
	t.focused = false
	t.input.Blur()
}

func (t *TextInput) Focused() bool { return t.focused }

// Close drops any pending debounced notification.
func (t *TextInput) Close() {
	if t.debouncer != nil {
		t.debouncer.Cancel()
	}
}

func (t *TextInput) Update(msg tea.Msg) tea.Cmd {
	if t.debouncer != nil {
		if value, ok := t.debouncer.Accept(msg); ok {
			t.notify(value)
			return nil
		}
	}
	if !t.focused || t.disabled {
		return nil
	}
	before := t.input.Value()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if after := t.input.Value(); after != before {
		return tea.Batch(cmd, t.changed(after))
	}
	return cmd
}

// changed forwards a new value to OnChange, through the debouncer when set.
func (t *TextInput) changed(value string) tea.Cmd {
	if t.debouncer == nil {
		t.notify(value)
		return nil
	}
	return t.debouncer.Trigger(value)
}

func (t *TextInput) notify(value string) {
	if t.onChange != nil {
		t.onChange(value)
	}
}

func (t *TextInput) View() string {
	return t.ViewWithContext(ui.DefaultContext())
}

func (t *TextInput) ViewWithContext(ctx ui.RenderContext) string {
	if t.label == "" {
		ctx.Diagnostics.MissingLabel(t.role, t.id)
	}
	return t.layout(ctx, t.box(ctx, t.input.View(), t.icon))
}

// box draws the bordered input frame around content.
func (t *TextInput) box(ctx ui.RenderContext, content, icon string) string {
	style := ui.InputStyle(ctx.Theme, t.inputState())
	if icon != "" {
		content += " " + ui.IconGlyph(icon)
	}
	if t.fullWidth {
		if w := ctx.Width(); w > 0 {
			style = style.Width(w - style.GetHorizontalBorderSize())
		}
	}
	return style.Render(content)
}

func (t *TextInput) Accessibility() ui.Accessibility {
	return ui.Accessibility{
		Role:        t.role,
		ID:          t.id,
		Label:       t.labelText().Accessibility().Label,
		DescribedBy: append(t.describedBy(), t.externalIDs...),
		Invalid:     t.status == ui.StatusError,
		Disabled:    t.disabled,
	}
}
