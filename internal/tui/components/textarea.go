package components

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

// Textarea is a labelled multi-line text field.
type Textarea struct {
	field
	area     textarea.Model
	onChange func(value string)
	onBlur   func(value string)
}

// NewTextarea creates an empty text area.
func NewTextarea(label string) *Textarea {
	area := textarea.New()
	area.ShowLineNumbers = false
	area.Prompt = ""
	area.Cursor.SetMode(cursor.CursorStatic)
	area.SetHeight(4)
	return &Textarea{field: newField("textarea", label), area: area}
}

func (t *Textarea) WithID(id string) *Textarea {
	t.id = id
	return t
}

func (t *Textarea) WithHintText(text string) *Textarea {
	t.hintText = text
	return t
}

func (t *Textarea) WithOptionalText(text string) *Textarea {
	t.optionalText = text
	return t
}

func (t *Textarea) WithStatus(status ui.Status, text string) *Textarea {
	t.status = status
	t.statusText = text
	return t
}

func (t *Textarea) WithPlaceholder(text string) *Textarea {
	t.area.Placeholder = text
	return t
}

func (t *Textarea) WithDisabled(disabled bool) *Textarea {
	t.disabled = disabled
	return t
}

// WithSize sets the visible area in cells.
func (t *Textarea) WithSize(width, height int) *Textarea {
	t.area.SetWidth(width)
	t.area.SetHeight(height)
	return t
}

func (t *Textarea) WithCharLimit(n int) *Textarea {
	t.area.CharLimit = n
	return t
}

func (t *Textarea) OnChange(fn func(value string)) *Textarea {
	t.onChange = fn
	return t
}

// OnBlur is called with the text when focus leaves the area.
func (t *Textarea) OnBlur(fn func(value string)) *Textarea {
	t.onBlur = fn
	return t
}

func (t *Textarea) ID() string    { return t.id }
func (t *Textarea) Value() string { return t.area.Value() }

func (t *Textarea) SetValue(value string) {
	t.area.SetValue(value)
}

func (t *Textarea) Focus() tea.Cmd {
	if t.disabled {
		return nil
	}
	t.focused = true
	return t.area.Focus()
}

func (t *Textarea) Blur() {
	wasFocused := t.focused
	t.focused = false
	t.area.Blur()
	if wasFocused && t.onBlur != nil {
		t.onBlur(t.area.Value())
	}
}

func (t *Textarea) Focused() bool { return t.focused }

func (t *Textarea) Update(msg tea.Msg) tea.Cmd {
	if !t.focused || t.disabled {
		return nil
	}
	before := t.area.Value()
	var cmd tea.Cmd
	t.area, cmd = t.area.Update(msg)
	if after := t.area.Value(); after != before && t.onChange != nil {
		t.onChange(after)
	}
	return cmd
}

func (t *Textarea) View() string {
	return t.ViewWithContext(ui.DefaultContext())
}

func (t *Textarea) ViewWithContext(ctx ui.RenderContext) string {
	if t.label == "" {
		ctx.Diagnostics.MissingLabel("textarea", t.id)
	}
	style := ui.InputStyle(ctx.Theme, t.inputState())
	return t.layout(ctx, style.Render(t.area.View()))
}

func (t *Textarea) Accessibility() ui.Accessibility {
	return ui.Accessibility{
		Role:        "textbox",
		ID:          t.id,
		Label:       t.labelText().Accessibility().Label,
		Description: "multiline",
		DescribedBy: t.describedBy(),
		Invalid:     t.status == ui.StatusError,
		Disabled:    t.disabled,
	}
}
