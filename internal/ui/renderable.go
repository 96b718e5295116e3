// Package ui holds the contracts shared by every component package.
package ui

// Renderable is anything that can draw itself as terminal text.
type Renderable interface {
	View() string
}

// Focusable is implemented by interactive components that take keyboard focus.
type Focusable interface {
	Focused() bool
}
