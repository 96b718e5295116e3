package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/valger11/suomifi-ui-components/pkg/errors"
)

// Theme names accepted by ThemeByName.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// ThemeNames lists the built-in themes in display order.
func ThemeNames() []string {
	return []string{ThemeLight, ThemeDark, ThemeAuto}
}

// ColorToken is a named colour of the design system.
type ColorToken struct {
	Key string
	Hex string
}

func lightTokens() []ColorToken {
	return []ColorToken{
		{Key: "blackBase", Hex: "#292929"},
		{Key: "blackLight1", Hex: "#5f686d"},
		{Key: "whiteBase", Hex: "#ffffff"},
		{Key: "brandBase", Hex: "#e97025"},
		{Key: "depthDark1", Hex: "#5f686d"},
		{Key: "depthBase", Hex: "#a5acb0"},
		{Key: "depthLight1", Hex: "#c8cdd0"},
		{Key: "depthLight2", Hex: "#dee1e3"},
		{Key: "depthLight3", Hex: "#f6f6f7"},
		{Key: "depthSecondary", Hex: "#eaf2fa"},
		{Key: "highlightDark1", Hex: "#235a9a"},
		{Key: "highlightBase", Hex: "#2a6ebb"},
		{Key: "highlightLight1", Hex: "#4e8fd9"},
		{Key: "highlightLight2", Hex: "#a6c6ec"},
		{Key: "highlightLight3", Hex: "#d5e4f5"},
		{Key: "highlightLight4", Hex: "#eaf2fa"},
		{Key: "accentBase", Hex: "#f0a327"},
		{Key: "accentSecondary", Hex: "#1a99c7"},
		{Key: "successBase", Hex: "#09a580"},
		{Key: "successSecondary", Hex: "#dcf3ed"},
		{Key: "warningBase", Hex: "#e9a329"},
		{Key: "warningLight1", Hex: "#fff6e0"},
		{Key: "alertBase", Hex: "#c3112c"},
		{Key: "alertLight1", Hex: "#fbe6e9"},
	}
}

func darkTokens() []ColorToken {
	return []ColorToken{
		{Key: "blackBase", Hex: "#eef0f1"},
		{Key: "blackLight1", Hex: "#b6bdc1"},
		{Key: "whiteBase", Hex: "#1c2024"},
		{Key: "brandBase", Hex: "#f08a4b"},
		{Key: "depthDark1", Hex: "#b6bdc1"},
		{Key: "depthBase", Hex: "#6b757b"},
		{Key: "depthLight1", Hex: "#3b4349"},
		{Key: "depthLight2", Hex: "#2c3237"},
		{Key: "depthLight3", Hex: "#22272b"},
		{Key: "depthSecondary", Hex: "#1f2b38"},
		{Key: "highlightDark1", Hex: "#8ab8ec"},
		{Key: "highlightBase", Hex: "#5b9be0"},
		{Key: "highlightLight1", Hex: "#3f78b8"},
		{Key: "highlightLight2", Hex: "#2b4f78"},
		{Key: "highlightLight3", Hex: "#1f3a59"},
		{Key: "highlightLight4", Hex: "#1a2b3f"},
		{Key: "accentBase", Hex: "#f5b84e"},
		{Key: "accentSecondary", Hex: "#49b6dd"},
		{Key: "successBase", Hex: "#2dc29b"},
		{Key: "successSecondary", Hex: "#133a31"},
		{Key: "warningBase", Hex: "#f0b54a"},
		{Key: "warningLight1", Hex: "#3a2f12"},
		{Key: "alertBase", Hex: "#ee5a6f"},
		{Key: "alertLight1", Hex: "#3d1a1f"},
	}
}

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingNone SpacingSize = iota
	SpacingXXS
	SpacingXS
	SpacingS
	SpacingM
	SpacingL
	SpacingXL
	SpacingXXL
)

const spacingSizeCount = int(SpacingXXL) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyBody TypographyVariant = iota
	TypographyBodySmall
	TypographyBodySemiBold
	TypographyLead
	TypographyAction
	TypographyCode
	TypographyHeading1Hero
	TypographyHeading1
	TypographyHeading2
	TypographyHeading3
	TypographyHeading4
	TypographyHeading5
	TypographyHeading1HeroSmallScreen
	TypographyHeading1SmallScreen
	TypographyHeading2SmallScreen
	TypographyHeading3SmallScreen
	TypographyHeading4SmallScreen
	TypographyHeading5SmallScreen
)

type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateError
	InputStateDisabled
)

// Palette describes semantic colour slots used by components.
type Palette struct {
	Brand     ColourSet
	Highlight ColourSet
	Accent    ColourSet
	Depth     ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Alert     ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyScale holds one style per typography token.
type TypographyScale struct {
	styles map[TypographyVariant]lipgloss.Style
}

// InputStyles describes per-state styles for input controls.
type InputStyles struct {
	Default  lipgloss.Style
	Focus    lipgloss.Style
	Error    lipgloss.Style
	Disabled lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[any]StyleStrategy),
	}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme represents an immutable styling theme for components.
// Themes should be created once and reused. WithOverrides returns a new
// theme rather than mutating the receiver.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Input      InputStyles
	Variants   *VariantRegistry

	light []ColorToken
	dark  []ColorToken
}

// Normalize returns a new theme with all fields properly initialized.
func (t Theme) Normalize() Theme {
	t.Spacing = normalizeSpacingConfig(t.Spacing)
	if t.Variants == nil {
		t.Variants = NewVariantRegistry()
	}
	return t
}

// Tokens returns the theme's colour tokens in their canonical order. The
// auto theme reports its light values.
func (t Theme) Tokens() []ColorToken {
	src := t.light
	if t.Name == ThemeDark {
		src = t.dark
	}
	out := make([]ColorToken, len(src))
	copy(out, src)
	return out
}

// Token looks up a colour token by key.
func (t Theme) Token(key string) (ColorToken, bool) {
	for _, tok := range t.Tokens() {
		if tok.Key == key {
			return tok, true
		}
	}
	return ColorToken{}, false
}

// Color returns the adaptive colour for a token key.
func (t Theme) Color(key string) (lipgloss.AdaptiveColor, bool) {
	light, ok := lookupHex(t.light, key)
	if !ok {
		return lipgloss.AdaptiveColor{}, false
	}
	dark, _ := lookupHex(t.dark, key)
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}, true
}

// WithOverrides returns a copy of the theme with token values replaced.
// Keys must name existing tokens and values must be #rrggbb.
func (t Theme) WithOverrides(overrides map[string]string) (Theme, error) {
	if len(overrides) == 0 {
		return t, nil
	}

	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	light := cloneTokens(t.light)
	dark := cloneTokens(t.dark)
	for _, key := range keys {
		hex := strings.ToLower(overrides[key])
		if !IsHexColor(hex) {
			return t, apperrors.NewThemeError(t.Name, "", fmt.Errorf("token %s: %q is not a #rrggbb colour", key, overrides[key]))
		}
		if !replaceHex(light, key, hex) {
			return t, apperrors.NewThemeError(t.Name, "", fmt.Errorf("unknown colour token %q", key))
		}
		replaceHex(dark, key, hex)
	}
	return buildTheme(t.Name, light, dark), nil
}

// IsHexColor reports whether s has the #rrggbb form.
func IsHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func normalizeSpacingConfig(cfg SpacingConfig) SpacingConfig {
	if spacingTableIsZero(cfg.Padding) {
		cfg.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(cfg.Margin) {
		cfg.Margin = defaultSpacingTable()
	}
	return cfg
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingNone: 0,
		SpacingXXS:  1,
		SpacingXS:   1,
		SpacingS:    1,
		SpacingM:    2,
		SpacingL:    3,
		SpacingXL:   4,
		SpacingXXL:  6,
	}
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	return LightTheme()
}

// LightTheme renders the light token set regardless of the terminal background.
func LightTheme() Theme {
	return buildTheme(ThemeLight, lightTokens(), lightTokens())
}

// DarkTheme renders the dark token set regardless of the terminal background.
func DarkTheme() Theme {
	return buildTheme(ThemeDark, darkTokens(), darkTokens())
}

// AutoTheme picks light or dark values from the terminal background.
func AutoTheme() Theme {
	return buildTheme(ThemeAuto, lightTokens(), darkTokens())
}

// ThemeByName resolves one of ThemeNames.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case ThemeLight, "":
		return LightTheme(), nil
	case ThemeDark:
		return DarkTheme(), nil
	case ThemeAuto:
		return AutoTheme(), nil
	default:
		return Theme{}, apperrors.NewThemeError(name, "", fmt.Errorf("unknown theme, want one of %s", strings.Join(ThemeNames(), ", ")))
	}
}

func buildTheme(name string, light, dark []ColorToken) Theme {
	ac := func(key string) lipgloss.AdaptiveColor {
		l, _ := lookupHex(light, key)
		d, _ := lookupHex(dark, key)
		return lipgloss.AdaptiveColor{Light: l, Dark: d}
	}

	palette := Palette{
		Brand: ColourSet{
			Base:     ac("brandBase"),
			OnBase:   ac("whiteBase"),
			Muted:    ac("warningLight1"),
			Contrast: ac("blackBase"),
		},
		Highlight: ColourSet{
			Base:     ac("highlightBase"),
			OnBase:   ac("whiteBase"),
			Muted:    ac("highlightLight3"),
			Contrast: ac("highlightDark1"),
		},
		Accent: ColourSet{
			Base:     ac("accentBase"),
			OnBase:   ac("blackBase"),
			Muted:    ac("warningLight1"),
			Contrast: ac("accentSecondary"),
		},
		Depth: ColourSet{
			Base:     ac("depthBase"),
			OnBase:   ac("whiteBase"),
			Muted:    ac("depthLight2"),
			Contrast: ac("depthDark1"),
		},
		Surface: ColourSet{
			Base:     ac("whiteBase"),
			OnBase:   ac("blackBase"),
			Muted:    ac("depthLight3"),
			Contrast: ac("highlightBase"),
		},
		Success: ColourSet{
			Base:     ac("successBase"),
			OnBase:   ac("whiteBase"),
			Muted:    ac("successSecondary"),
			Contrast: ac("blackBase"),
		},
		Warning: ColourSet{
			Base:     ac("warningBase"),
			OnBase:   ac("blackBase"),
			Muted:    ac("warningLight1"),
			Contrast: ac("blackBase"),
		},
		Alert: ColourSet{
			Base:     ac("alertBase"),
			OnBase:   ac("whiteBase"),
			Muted:    ac("alertLight1"),
			Contrast: ac("blackBase"),
		},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	input := InputStyles{
		Default: lipgloss.NewStyle().
			BorderStyle(borders.Normal).
			BorderForeground(palette.Depth.Base).
			Padding(0, 1).
			Foreground(palette.Surface.OnBase),
		Focus: lipgloss.NewStyle().
			BorderStyle(borders.Thick).
			BorderForeground(palette.Accent.Base).
			Padding(0, 1).
			Foreground(palette.Surface.OnBase),
		Error: lipgloss.NewStyle().
			BorderStyle(borders.Thick).
			BorderForeground(palette.Alert.Base).
			Padding(0, 1).
			Foreground(palette.Surface.OnBase),
		Disabled: lipgloss.NewStyle().
			BorderStyle(borders.Normal).
			BorderForeground(palette.Depth.Muted).
			Padding(0, 1).
			Foreground(palette.Depth.Base),
	}

	variants := NewVariantRegistry()
	registerButtonVariants(variants)
	registerChipVariants(variants)
	registerStatusVariants(variants)

	theme := Theme{
		Name:    name,
		Palette: palette,
		Borders: borders,
		Spacing: SpacingConfig{
			Padding: defaultSpacingTable(),
			Margin:  defaultSpacingTable(),
		},
		Typography: defaultTypography(palette),
		Input:      input,
		Variants:   variants,
		light:      cloneTokens(light),
		dark:       cloneTokens(dark),
	}

	return theme.Normalize()
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonDefault, NewCompositeStrategy(
		Background(PaletteHighlight),
		PaddingX(SpacingM),
		Typography(TypographyAction),
	))
	registry.Register(ButtonSecondary, NewCompositeStrategy(
		Foreground(PaletteHighlight),
		Border(BorderVariantNormal),
		BorderColour(PaletteHighlight),
		PaddingX(SpacingM),
		Typography(TypographyAction),
	))
	registry.Register(ButtonSecondaryNoBorder, NewCompositeStrategy(
		Foreground(PaletteHighlight),
		PaddingX(SpacingM),
		Typography(TypographyAction),
	))
	registry.Register(ButtonInverted, NewCompositeStrategy(
		Background(PaletteHighlight),
		Border(BorderVariantNormal),
		BorderColour(PaletteSurface),
		PaddingX(SpacingM),
		Typography(TypographyAction),
	))
	registry.Register(ButtonLink, NewCompositeStrategy(
		Foreground(PaletteHighlight),
		func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Underline(true) },
	))
}

func registerChipVariants(registry *VariantRegistry) {
	registry.Register(ChipStatic, NewCompositeStrategy(
		Background(PaletteHighlight),
		PaddingX(SpacingXS),
		Typography(TypographyBodySmall),
	))
	registry.Register(ChipRemovable, NewCompositeStrategy(
		Background(PaletteHighlight),
		PaddingX(SpacingXS),
		Typography(TypographyBodySmall),
	))
	registry.Register(ChipDisabled, NewCompositeStrategy(
		Background(PaletteDepth),
		PaddingX(SpacingXS),
		Typography(TypographyBodySmall),
	))
}

func registerStatusVariants(registry *VariantRegistry) {
	registry.Register(StatusDefault, NewCompositeStrategy(
		Foreground(PaletteSurface),
		Typography(TypographyBodySmall),
	))
	registry.Register(StatusError, NewCompositeStrategy(
		Foreground(PaletteAlert),
		Typography(TypographyBodySemiBold),
	))
	registry.Register(StatusSuccess, NewCompositeStrategy(
		Foreground(PaletteSuccess),
		Typography(TypographyBodySemiBold),
	))
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	heading := body.Bold(true)

	return TypographyScale{styles: map[TypographyVariant]lipgloss.Style{
		TypographyBody:         body,
		TypographyBodySmall:    body,
		TypographyBodySemiBold: body.Bold(true),
		TypographyLead:         body.Italic(true),
		TypographyAction:       body.Bold(true),
		TypographyCode:         body.Foreground(p.Highlight.Contrast).Background(p.Surface.Muted),

		TypographyHeading1Hero: heading.Underline(true).Foreground(p.Brand.Base).MarginBottom(1),
		TypographyHeading1:     heading.Underline(true).MarginBottom(1),
		TypographyHeading2:     heading.Underline(true),
		TypographyHeading3:     heading,
		TypographyHeading4:     heading.Italic(true),
		TypographyHeading5:     body.Italic(true),

		TypographyHeading1HeroSmallScreen: heading.Foreground(p.Brand.Base).MarginBottom(1),
		TypographyHeading1SmallScreen:     heading.MarginBottom(1),
		TypographyHeading2SmallScreen:     heading,
		TypographyHeading3SmallScreen:     heading,
		TypographyHeading4SmallScreen:     body.Bold(true).Italic(true),
		TypographyHeading5SmallScreen:     body.Italic(true),
	}}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin value for the given size. Widgets that
// lay out their own rows, such as the modal footer, use it for gaps.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingM)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	if style, ok := theme.Typography.styles[variant]; ok {
		return style
	}
	return theme.Typography.styles[TypographyBody]
}

// InputStyle returns the input style for the given state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	input := theme.Input
	switch state {
	case InputStateFocus:
		return input.Focus
	case InputStateError:
		return input.Error
	case InputStateDisabled:
		return input.Disabled
	default:
		return input.Default
	}
}

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
//
//   - Base: the slot's main colour
//   - OnBase: text colour that reads well on Base
//   - Muted: a light tint used for backgrounds and disabled states
//   - Contrast: a stronger companion colour for borders and hover
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PaletteBrand     PaletteSlot = func(p Palette) ColourSet { return p.Brand }
	PaletteHighlight PaletteSlot = func(p Palette) ColourSet { return p.Highlight }
	PaletteAccent    PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteDepth     PaletteSlot = func(p Palette) ColourSet { return p.Depth }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteAlert     PaletteSlot = func(p Palette) ColourSet { return p.Alert }
)

// Background applies a semantic background colour and matching foreground.
//
// Example:
//
//	chip := NewStaticChip("Tag").WithAppliers(Background(PaletteSuccess))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Base)
	}
}

// TokenForeground colours text with a named token. Unknown keys leave the style unchanged.
func TokenForeground(key string) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if c, ok := theme.Color(key); ok {
			return base.Foreground(c)
		}
		return base
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// BorderColour colours the border with a slot's base colour.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// PaddingX pads left and right with the theme padding for size.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

func lookupHex(tokens []ColorToken, key string) (string, bool) {
	for _, tok := range tokens {
		if tok.Key == key {
			return tok.Hex, true
		}
	}
	return "", false
}

func replaceHex(tokens []ColorToken, key, hex string) bool {
	for i := range tokens {
		if tokens[i].Key == key {
			tokens[i].Hex = hex
			return true
		}
	}
	return false
}

func cloneTokens(tokens []ColorToken) []ColorToken {
	out := make([]ColorToken, len(tokens))
	copy(out, tokens)
	return out
}
