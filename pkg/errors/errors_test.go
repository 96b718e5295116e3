package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("catalog.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "catalog.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: catalog.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("catalog.yaml", 0, stdErrors.New("empty document"))
	require.Equal(t, "parse error: catalog.yaml: empty document", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("palette.brand", "must be a #rrggbb colour", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "palette.brand", validationErr.Field)
	require.Contains(t, err.Error(), "palette.brand")
}

func TestThemeErrorIncludesSource(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("file not found")
	err := NewThemeError("dark", "https://example.com/themes.git", underlying)

	var themeErr *ThemeError
	require.ErrorAs(t, err, &themeErr)
	require.Equal(t, "dark", themeErr.Theme)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "theme error [dark] from https://example.com/themes.git: file not found", err.Error())
}

func TestUnknownComponentListsAlternatives(t *testing.T) {
	t.Parallel()

	err := &UnknownComponentError{Name: "slider", Available: []string{"button", "chip"}}
	require.Equal(t, `unknown component "slider" (available: button, chip)`, err.Error())

	bare := &UnknownComponentError{Name: "slider"}
	require.Equal(t, `unknown component "slider"`, bare.Error())
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var themeErr *ThemeError
	require.Equal(t, "", parseErr.Error())
	require.Nil(t, themeErr.Unwrap())
}
