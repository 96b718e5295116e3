package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/valger11/suomifi-ui-components/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `theme: dark
log_level: debug
debounce_ms: 150
palette:
  highlightBase: "#112233"
demo:
  items:
    - id: hammer
      label: Hammer
    - id: saw
      label: Saw
      chip_text: Big saw
`

	invalidYAML := `theme: [1, 0]
`

	duplicateIDs := `demo:
  items:
    - id: hammer
      label: Hammer
    - id: hammer
      label: Other hammer
`

	badTheme := `theme: sepia
`

	badPalette := `palette:
  highlightBase: blue
`

	unknownToken := `palette:
  notAToken: "#000000"
`

	allDisabled := `demo:
  items:
    - id: hammer
      label: Hammer
      disabled: true
`

	cases := []struct {
		name   string
		input  string
		assert func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:  "valid configuration is parsed",
			input: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "dark", cfg.Theme)
				require.Equal(t, "debug", cfg.LogLevel)
				require.Equal(t, 150, cfg.DebounceMS)
				require.Len(t, cfg.Demo.Items, 2)
				require.Equal(t, "Big saw", cfg.Items()[1].Chip())
				require.NotEmpty(t, cfg.Demo.Languages)
			},
		},
		{
			name:  "empty document gets defaults",
			input: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "light", cfg.Theme)
				require.Equal(t, 300, cfg.DebounceMS)
				require.NotEmpty(t, cfg.Demo.Items)
			},
		},
		{
			name:  "invalid yaml returns parse error",
			input: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
				require.Nil(t, cfg)
			},
		},
		{
			name:  "duplicate item ids are rejected",
			input: duplicateIDs,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "demo.items[1].id", validationErr.Field)
				require.Contains(t, validationErr.Message, "duplicate")
			},
		},
		{
			name:  "unknown theme name is rejected",
			input: badTheme,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "theme_name")
			},
		},
		{
			name:  "palette values must be hex colours",
			input: badPalette,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "hexcolor_token")
			},
		},
		{
			name:  "palette keys must name tokens",
			input: unknownToken,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "token_key")
			},
		},
		{
			name:  "some item must be enabled",
			input: allDisabled,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "demo.items", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.input)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestResolveTheme(t *testing.T) {
	t.Parallel()

	cfg, err := ParseBytes("inline", []byte("theme: light\npalette:\n  highlightBase: \"#112233\"\n"))
	require.NoError(t, err)

	theme, err := cfg.ResolveTheme()
	require.NoError(t, err)
	tok, ok := theme.Token("highlightBase")
	require.True(t, ok)
	require.Equal(t, "#112233", tok.Hex)
}

func TestParseThemeFile(t *testing.T) {
	t.Parallel()

	file, err := ParseThemeFile("brand.yaml", []byte("name: brand\nbase: dark\ntokens:\n  brandBase: \"#ABCDEF\"\n"))
	require.NoError(t, err)
	require.Equal(t, "brand", file.Name)

	theme, err := file.Resolve()
	require.NoError(t, err)
	require.Equal(t, "dark", theme.Name)
	tok, ok := theme.Token("brandBase")
	require.True(t, ok)
	require.Equal(t, "#abcdef", tok.Hex)

	_, err = ParseThemeFile("empty.yaml", []byte("name: brand\n"))
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "tokens", validationErr.Field)
}

func TestMarshalRoundTripKeepsTheme(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Theme = "auto"
	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := ParseBytes("roundtrip", data)
	require.NoError(t, err)
	require.Equal(t, "auto", back.Theme)
	require.Equal(t, cfg.Demo.Items, back.Demo.Items)
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
