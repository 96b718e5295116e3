// Package errors holds the typed errors surfaced by the catalog's config,
// theme and CLI layers.
package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ThemeError reports a theme that could not be resolved or applied.
type ThemeError struct {
	Theme  string
	Source string
	Err    error
}

// NewThemeError constructs a ThemeError. Source is the file or repository
// the theme was read from and may be empty for built-in themes.
func NewThemeError(theme, source string, err error) error {
	return &ThemeError{Theme: theme, Source: source, Err: err}
}

func (e *ThemeError) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("theme error")
	if e.Theme != "" {
		fmt.Fprintf(&b, " [%s]", e.Theme)
	}
	if e.Source != "" {
		fmt.Fprintf(&b, " from %s", e.Source)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes the underlying error.
func (e *ThemeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownComponentError is returned when a component name has no renderer.
type UnknownComponentError struct {
	Name      string
	Available []string
}

func (e *UnknownComponentError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Available) == 0 {
		return fmt.Sprintf("unknown component %q", e.Name)
	}
	return fmt.Sprintf("unknown component %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}
