// Package components contains the interactive widgets of the catalog. Each
// widget owns its local UI state, handles key messages while focused and
// renders through the themed primitives in internal/ui/components.
package components

import (
	"fmt"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

// Widget is an interactive component the catalog can host and focus.
type Widget interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
	ViewWithContext(ctx ui.RenderContext) string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Accessibility() ui.Accessibility
}

var idCounter int64

// autoID generates an id for widgets created without one.
func autoID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, atomic.AddInt64(&idCounter, 1))
}

func statusTextID(id string) string { return id + "-statusText" }

func hintTextID(id string) string { return id + "-hintText" }

// field carries what every labelled form control shares.
type field struct {
	id           string
	label        string
	labelMode    ui.LabelMode
	optionalText string
	hintText     string
	status       ui.Status
	statusText   string
	disabled     bool
	focused      bool
}

func newField(prefix, label string) field {
	return field{id: autoID(prefix), label: label}
}

func (f *field) hint() *ui.HintText {
	if f.hintText == "" {
		return nil
	}
	return ui.NewHintText(hintTextID(f.id), f.hintText)
}

func (f *field) statusLine() *ui.StatusText {
	if f.statusText == "" {
		return nil
	}
	return ui.NewStatusText(statusTextID(f.id), f.statusText, f.status)
}

func (f *field) labelText() *ui.LabelText {
	return ui.NewLabelText(f.label).
		WithID(f.id + "-label").
		WithMode(f.labelMode).
		WithOptionalText(f.optionalText)
}

func (f *field) describedBy() []string {
	return ui.DescribedBy(f.hint(), f.statusLine())
}

func (f *field) inputState() ui.InputState {
	switch {
	case f.disabled:
		return ui.InputStateDisabled
	case f.status == ui.StatusError:
		return ui.InputStateError
	case f.focused:
		return ui.InputStateFocus
	default:
		return ui.InputStateDefault
	}
}

// layout stacks label, hint, control and status text, skipping empty parts.
func (f *field) layout(ctx ui.RenderContext, control string) string {
	parts := []string{f.labelText().ViewWithContext(ctx)}
	if h := f.hint(); h != nil {
		parts = append(parts, h.ViewWithContext(ctx))
	}
	parts = append(parts, control)
	if s := f.statusLine(); s != nil && !f.disabled {
		parts = append(parts, s.ViewWithContext(ctx))
	}
	return joinLines(parts...)
}

func joinLines(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}
