package components

import (
	"fmt"
	"strings"
)

// Accessibility describes what a screen-reader bridge needs to announce a
// component. Zero fields are omitted from String.
type Accessibility struct {
	Role        string
	ID          string
	Label       string
	Description string
	DescribedBy []string
	Controls    string
	Expanded    *bool
	Checked     *bool
	Selected    *bool
	Invalid     bool
	Disabled    bool
	Required    bool
	Hidden      bool
	// Current marks the current item in a set, e.g. "location" in breadcrumbs.
	Current string
	// Live is the politeness of a live region, e.g. "assertive" for errors.
	Live string
}

// Accessible is implemented by components that expose an Accessibility descriptor.
type Accessible interface {
	Accessibility() Accessibility
}

// Bool returns a pointer to v for the tri-state fields of Accessibility.
func Bool(v bool) *bool {
	return &v
}

// String renders the descriptor as space separated key=value pairs in a
// stable order.
func (a Accessibility) String() string {
	var parts []string
	add := func(key, value string) {
		if value != "" {
			parts = append(parts, fmt.Sprintf("%s=%q", key, value))
		}
	}
	flag := func(key string, v *bool) {
		if v != nil {
			parts = append(parts, fmt.Sprintf("%s=%t", key, *v))
		}
	}

	add("role", a.Role)
	add("id", a.ID)
	add("label", a.Label)
	add("description", a.Description)
	add("describedby", strings.Join(a.DescribedBy, " "))
	add("controls", a.Controls)
	flag("expanded", a.Expanded)
	flag("checked", a.Checked)
	flag("selected", a.Selected)
	if a.Invalid {
		parts = append(parts, "invalid=true")
	}
	if a.Disabled {
		parts = append(parts, "disabled=true")
	}
	if a.Required {
		parts = append(parts, "required=true")
	}
	if a.Hidden {
		parts = append(parts, "hidden=true")
	}
	add("current", a.Current)
	add("live", a.Live)
	return strings.Join(parts, " ")
}
