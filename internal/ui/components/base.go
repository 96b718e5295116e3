package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/valger11/suomifi-ui-components/internal/diagnostics"
	"github.com/valger11/suomifi-ui-components/internal/ui"
)

// StyleFunc derives a style from the theme a component is rendered with.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// StyleStrategy computes a component style for a theme.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// CompositeStrategy runs its funcs in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy chains funcs into one strategy.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// BaseComponent is embedded by every static component. The raw style is
// fixed at build time; the strategy adds theme dependent styling at render.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle(), strategy: CompositeStrategy{}}
}

// ComputeStyle resolves the component style against theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers replaces the strategy with appliers.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers runs appliers after the current strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := append(append([]StyleFunc(nil), existing.funcs...), appliers...)
		b.strategy = CompositeStrategy{funcs: funcs}
		return
	}
	prev := b.strategy
	b.strategy = NewCompositeStrategy(append([]StyleFunc{func(s lipgloss.Style, t Theme) lipgloss.Style {
		if prev != nil {
			s = prev.Apply(s, t)
		}
		return s
	}}, appliers...)...)
}

// Constraints limits how wide a component may render. Zero means no limit.
type Constraints struct {
	MaxWidth int
}

// WithMaxWidth limits rendering to maxWidth columns.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth}
}

// RenderContext carries the theme, layout limits and diagnostics sink down
// the component tree. Nothing is global, so two themes can render side by side.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
	Diagnostics *diagnostics.Reporter
}

// DefaultContext renders with the default theme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithDiagnostics returns a new context reporting usage problems to d.
func (r RenderContext) WithDiagnostics(d *diagnostics.Reporter) RenderContext {
	r.Diagnostics = d
	return r
}

// Width is the widest the component may render, or 0 when unbounded.
func (r RenderContext) Width() int {
	if r.Constraints.MaxWidth > 0 {
		return r.Constraints.MaxWidth
	}
	if r.ParentWidth > 0 {
		return r.ParentWidth
	}
	return 0
}

// ContextualRenderable is a Renderable that reads the render context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

func renderChild(ctx RenderContext, r ui.Renderable) string {
	if cr, ok := r.(ContextualRenderable); ok {
		return cr.ViewWithContext(ctx)
	}
	return r.View()
}
