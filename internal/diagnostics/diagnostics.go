// Package diagnostics reports developer mistakes in component usage, such as
// a checkbox without a label, as warnings. They never fail a render.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/valger11/suomifi-ui-components/internal/logger"
)

// Kind classifies a diagnostic.
type Kind string

const (
	KindMissingLabel   Kind = "missing_label"
	KindEmptyAttribute Kind = "empty_attribute"
	KindMissingVariant Kind = "missing_variant"
	KindEmptyMenu      Kind = "empty_menu"
	KindDuplicateIDs   Kind = "duplicate_ids"
)

// Entry is one reported diagnostic.
type Entry struct {
	Kind      Kind
	Component string
	ID        string
	Message   string
}

// Reporter forwards diagnostics to a logger. Each distinct entry is logged
// once, since views re-render on every update.
type Reporter struct {
	log     *logger.Logger
	seen    map[Entry]struct{}
	entries []Entry
}

// New creates a Reporter writing to log. A nil log only records entries.
func New(log *logger.Logger) *Reporter {
	return &Reporter{log: log, seen: make(map[Entry]struct{})}
}

// Entries returns everything reported so far, in order.
func (r *Reporter) Entries() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Has reports whether a diagnostic of kind was raised for component.
func (r *Reporter) Has(kind Kind, component string) bool {
	if r == nil {
		return false
	}
	for _, e := range r.entries {
		if e.Kind == kind && e.Component == component {
			return true
		}
	}
	return false
}

// MissingLabel reports a form control rendered without a visible or hidden label.
func (r *Reporter) MissingLabel(component, id string) {
	r.report(Entry{
		Kind:      KindMissingLabel,
		Component: component,
		ID:        id,
		Message:   fmt.Sprintf("%s %q is missing a label; screen readers cannot announce it", component, id),
	})
}

// EmptyAttribute reports an attribute that was given but left empty.
func (r *Reporter) EmptyAttribute(component, id, attr string) {
	r.report(Entry{
		Kind:      KindEmptyAttribute,
		Component: component,
		ID:        id,
		Message:   fmt.Sprintf("%s %q has an empty %s; omit it or give it a value", component, id, attr),
	})
}

// MissingVariant reports a heading rendered without a variant.
func (r *Reporter) MissingVariant(component, id string) {
	r.report(Entry{
		Kind:      KindMissingVariant,
		Component: component,
		ID:        id,
		Message:   fmt.Sprintf("%s %q has no variant and was not rendered", component, id),
	})
}

// EmptyMenu reports a menu without items.
func (r *Reporter) EmptyMenu(name string) {
	r.report(Entry{
		Kind:      KindEmptyMenu,
		Component: "language_menu",
		ID:        name,
		Message:   fmt.Sprintf("Menu '%s' does not contain items", name),
	})
}

// DuplicateIDs reports candidate lists whose ids are not unique.
func (r *Reporter) DuplicateIDs(component string, ids []string) {
	if len(ids) == 0 {
		return
	}
	r.report(Entry{
		Kind:      KindDuplicateIDs,
		Component: component,
		ID:        strings.Join(ids, ","),
		Message:   fmt.Sprintf("%s has duplicate item ids: %s", component, strings.Join(ids, ", ")),
	})
}

func (r *Reporter) report(e Entry) {
	if r == nil {
		return
	}
	if _, dup := r.seen[e]; dup {
		return
	}
	r.seen[e] = struct{}{}
	r.entries = append(r.entries, e)

	r.log.WithFields(map[string]any{
		"diagnostic": string(e.Kind),
		"component":  e.Component,
		"id":         e.ID,
	}).Warn(e.Message)
}
