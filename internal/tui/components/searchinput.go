package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

// SearchInput is a text field with clear and search actions. The clear
// action is shown only when there is text; search is enabled only then.
type SearchInput struct {
	TextInput
	clearText  string
	searchText string
	onSearch   func(value string)
}

// NewSearchInput creates a search field. clearText and searchText label the
// two actions for assistive technology.
func NewSearchInput(label, clearText, searchText string) *SearchInput {
	s := &SearchInput{TextInput: *NewTextInput(label), clearText: clearText, searchText: searchText}
	s.id = autoID("searchinput")
	s.role = "searchbox"
	return s
}

func (s *SearchInput) WithID(id string) *SearchInput {
	s.id = id
	return s
}

func (s *SearchInput) OnSearch(fn func(value string)) *SearchInput {
	s.onSearch = fn
	return s
}

// Search submits the current value. It does nothing while the field is empty.
func (s *SearchInput) Search() bool {
	value := s.Value()
	if value == "" {
		return false
	}
	if s.onSearch != nil {
		s.onSearch(value)
	}
	return true
}

// Clear empties the field and reports the empty value.
func (s *SearchInput) Clear() {
	if s.Value() == "" {
		return
	}
	s.Close()
	s.SetValue("")
	s.notify("")
}

func (s *SearchInput) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && s.focused && !s.disabled {
		switch {
		case key.Matches(k, Keys.Submit):
			s.Search()
			return nil
		case key.Matches(k, Keys.Clear, Keys.Close):
			s.Clear()
			return nil
		}
	}
	return s.TextInput.Update(msg)
}

func (s *SearchInput) View() string {
	return s.ViewWithContext(ui.DefaultContext())
}

func (s *SearchInput) ViewWithContext(ctx ui.RenderContext) string {
	if s.label == "" {
		ctx.Diagnostics.MissingLabel(s.role, s.id)
	}
	palette := ctx.Theme.Palette
	content := s.input.View()
	if s.Value() != "" {
		content += " " + lipgloss.NewStyle().Foreground(palette.Depth.Base).Render(ui.IconGlyph("close"))
	}
	search := lipgloss.NewStyle().Foreground(palette.Depth.Muted)
	if s.Value() != "" {
		search = search.Foreground(palette.Highlight.Base)
	}
	content += " " + search.Render(ui.IconGlyph("search"))
	return s.layout(ctx, s.box(ctx, content, ""))
}

// Actions describes the clear and search buttons.
func (s *SearchInput) Actions() []ui.Accessibility {
	var out []ui.Accessibility
	if s.Value() != "" {
		out = append(out, ui.Accessibility{Role: "button", Label: s.clearText})
	}
	return append(out, ui.Accessibility{Role: "button", Label: s.searchText, Disabled: s.Value() == ""})
}
