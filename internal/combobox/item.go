// Package combobox holds the filter, selection and keyboard navigation state
// behind the Combobox (multi-select) and Select (single-select) widgets.
package combobox

import (
	"fmt"
	"strings"
)

// Item is a selectable candidate.
type Item struct {
	ID       string
	Label    string
	ChipText string
	Disabled bool
}

// Chip returns the text used for the item's chip, falling back to the label.
func (i Item) Chip() string {
	if i.ChipText != "" {
		return i.ChipText
	}
	return i.Label
}

// Matches reports whether the label contains query, ignoring case. An empty
// query matches everything.
func (i Item) Matches(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(i.Label), strings.ToLower(query))
}

// Filter returns the ordered subsequence of items matching query.
func Filter(items []Item, query string) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Matches(query) {
			out = append(out, item)
		}
	}
	return out
}

// DuplicateIDError reports a candidate list with repeated identifiers.
type DuplicateIDError struct {
	IDs []string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate item ids: %s", strings.Join(e.IDs, ", "))
}

// ValidateItems checks that every item id is unique and non-empty.
func ValidateItems(items []Item) error {
	seen := make(map[string]int, len(items))
	var dups []string
	for _, item := range items {
		if item.ID == "" {
			return fmt.Errorf("item %q has an empty id", item.Label)
		}
		seen[item.ID]++
		if seen[item.ID] == 2 {
			dups = append(dups, item.ID)
		}
	}
	if len(dups) > 0 {
		return &DuplicateIDError{IDs: dups}
	}
	return nil
}
