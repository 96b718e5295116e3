package config

import (
	"testing"
)

func TestGetValidator(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator should return the same instance (singleton pattern)")
	}
}

func TestThemeNameValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"light", "light", true},
		{"dark", "dark", true},
		{"auto", "auto", true},
		{"mixed case", "Dark", true},
		{"unknown", "sepia", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Var(tt.value, "theme_name") == nil
			if got != tt.expected {
				t.Errorf("theme_name validation for %q: got %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestHexColorTokenValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"lowercase", "#2a6ebb", true},
		{"uppercase", "#2A6EBB", true},
		{"short form", "#fff", false},
		{"missing hash", "2a6ebb", false},
		{"named colour", "blue", false},
		{"with alpha", "#2a6ebbff", false},
		{"bad digit", "#2a6ebg", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Var(tt.value, "hexcolor_token") == nil
			if got != tt.expected {
				t.Errorf("hexcolor_token validation for %q: got %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestTokenKeyValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"highlight", "highlightBase", true},
		{"brand", "brandBase", true},
		{"wrong case", "HighlightBase", false},
		{"unknown", "sparkle", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Var(tt.value, "token_key") == nil
			if got != tt.expected {
				t.Errorf("token_key validation for %q: got %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestItemIDValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"simple", "hammer", true},
		{"hyphen", "tape-measure", true},
		{"underscore", "item_1", true},
		{"mixed case", "Hammer", true},
		{"empty", "", false},
		{"spaces", "tape measure", false},
		{"dots", "item.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Var(tt.value, "item_id") == nil
			if got != tt.expected {
				t.Errorf("item_id validation for %q: got %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestGitURLValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{"empty string", "", true},
		{"space", " ", false},
		{"valid https", "https://github.com/org/themes.git", true},
		{"no host", "https:///path", false},
		{"ftp scheme", "ftp://example.com/themes.git", false},
		{"ssh", "git@github.com:org/themes.git", true},
		{"ssh no colon", "git@github.com/org/themes.git", false},
		{"absolute path", "/srv/git/themes.git", true},
		{"relative", "./themes", true},
		{"bare name", "themes", false},
		{"traversal", "/srv/../etc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Var(tt.url, "git_url") == nil
			if got != tt.expected {
				t.Errorf("git_url validation for %q: got %v, expected %v", tt.url, got, tt.expected)
			}
		})
	}
}

func TestValidatorRegistration(t *testing.T) {
	v := GetValidator()

	type sample struct {
		Theme string            `validate:"theme_name"`
		Color string            `validate:"hexcolor_token"`
		Map   map[string]string `validate:"dive,keys,token_key,endkeys,hexcolor_token"`
	}

	valid := sample{Theme: "auto", Color: "#000000", Map: map[string]string{"brandBase": "#111111"}}
	if err := v.Struct(valid); err != nil {
		t.Errorf("valid struct should pass validation: %v", err)
	}

	invalid := sample{Theme: "neon", Color: "red", Map: map[string]string{"nope": "#111111"}}
	if err := v.Struct(invalid); err == nil {
		t.Error("invalid struct should fail validation")
	}
}
