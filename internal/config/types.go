package config

import (
	"time"

	"github.com/valger11/suomifi-ui-components/internal/combobox"
	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

// Config represents the catalog configuration document.
type Config struct {
	Theme      string            `yaml:"theme,omitempty" validate:"omitempty,theme_name"`
	LogLevel   string            `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	DebounceMS int               `yaml:"debounce_ms,omitempty" validate:"gte=0,lte=5000"`
	Width      int               `yaml:"width,omitempty" validate:"gte=0,lte=400"`
	Language   string            `yaml:"language,omitempty" validate:"omitempty,oneof=fi sv en"`
	Palette    map[string]string `yaml:"palette,omitempty" validate:"omitempty,dive,keys,token_key,endkeys,hexcolor_token"`
	Source     *ThemeSource      `yaml:"theme_source,omitempty" validate:"omitempty"`
	Demo       Demo              `yaml:"demo,omitempty"`
}

// ThemeSource points at a theme file kept in a git repository.
type ThemeSource struct {
	Repo string `yaml:"repo" validate:"required,git_url"`
	Ref  string `yaml:"ref,omitempty"`
	Path string `yaml:"path" validate:"required"`
}

// ThemeFile is a standalone theme document: a built-in base theme plus
// token overrides.
type ThemeFile struct {
	Name   string            `yaml:"name" validate:"required"`
	Base   string            `yaml:"base,omitempty" validate:"omitempty,theme_name"`
	Tokens map[string]string `yaml:"tokens" validate:"required,min=1,dive,keys,token_key,endkeys,hexcolor_token"`
}

// Resolve builds the theme described by the file. The result keeps the
// base theme's name so light and dark token selection still applies.
func (f *ThemeFile) Resolve() (ui.Theme, error) {
	base, err := ui.ThemeByName(f.Base)
	if err != nil {
		return ui.Theme{}, err
	}
	return base.WithOverrides(f.Tokens)
}

// Demo holds the sample data the catalog shows in its widgets.
type Demo struct {
	Items     []DemoItem `yaml:"items,omitempty" validate:"omitempty,dive"`
	Languages []Language `yaml:"languages,omitempty" validate:"omitempty,dive"`
}

// DemoItem is a combobox candidate.
type DemoItem struct {
	ID       string `yaml:"id" validate:"required,item_id"`
	Label    string `yaml:"label" validate:"required"`
	ChipText string `yaml:"chip_text,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Language is an entry of the demo language menu.
type Language struct {
	Code  string `yaml:"code" validate:"required,oneof=fi sv en"`
	Label string `yaml:"label" validate:"required"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Theme == "" {
		c.Theme = ui.ThemeLight
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.DebounceMS == 0 {
		c.DebounceMS = 300
	}
	if c.Language == "" {
		c.Language = "fi"
	}
	if len(c.Demo.Items) == 0 {
		c.Demo.Items = []DemoItem{
			{ID: "hammer", Label: "Hammer"},
			{ID: "saw", Label: "Saw"},
			{ID: "handsaw", Label: "Handsaw"},
			{ID: "chisel", Label: "Chisel", Disabled: true},
			{ID: "jigsaw", Label: "Jigsaw"},
			{ID: "screwdriver", Label: "Screwdriver", ChipText: "Driver"},
			{ID: "tape-measure", Label: "Tape measure"},
		}
	}
	if len(c.Demo.Languages) == 0 {
		c.Demo.Languages = []Language{
			{Code: "fi", Label: "Suomeksi (FI)"},
			{Code: "sv", Label: "På svenska (SV)"},
			{Code: "en", Label: "In English (EN)"},
		}
	}
}

// Debounce is the configured delay as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Items converts the demo items to combobox candidates.
func (c *Config) Items() []combobox.Item {
	items := make([]combobox.Item, len(c.Demo.Items))
	for i, it := range c.Demo.Items {
		items[i] = combobox.Item{ID: it.ID, Label: it.Label, ChipText: it.ChipText, Disabled: it.Disabled}
	}
	return items
}

// ResolveTheme returns the named theme with the palette overrides applied.
func (c *Config) ResolveTheme() (ui.Theme, error) {
	theme, err := ui.ThemeByName(c.Theme)
	if err != nil {
		return ui.Theme{}, err
	}
	if len(c.Palette) == 0 {
		return theme, nil
	}
	return theme.WithOverrides(c.Palette)
}
