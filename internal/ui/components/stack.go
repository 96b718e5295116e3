package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/valger11/suomifi-ui-components/internal/ui"
)

// Direction is the axis a Stack lays its children along.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack places children in a row or a column, gap cells apart. Empty
// children take no space.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
}

// VStack lays children out top to bottom.
func VStack(children ...ui.Renderable) *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), children: children}
}

// HStack lays children out left to right, top aligned. Button rows and
// icon rows in the catalog use it.
func HStack(children ...ui.Renderable) *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), children: children, direction: DirectionHorizontal}
}

func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if v := renderChild(ctx, child); v != "" {
			views = append(views, v)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if w := ctx.Width(); w > 0 {
		style = style.MaxWidth(w)
	}
	if len(views) == 0 {
		return style.Render("")
	}

	if s.direction == DirectionHorizontal {
		return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, s.spaced(views, " ", s.gap)...))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, s.spaced(views, "\n", s.gap-1)...))
}

// spaced puts n copies of unit between views. A vertical gap of one is an
// empty line, so callers pass gap-1 newlines there.
func (s *Stack) spaced(views []string, unit string, n int) []string {
	if s.gap <= 0 || len(views) < 2 {
		return views
	}
	sep := ""
	if n > 0 {
		sep = strings.Repeat(unit, n)
	}
	out := make([]string, 0, len(views)*2-1)
	for i, v := range views {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, v)
	}
	return out
}
