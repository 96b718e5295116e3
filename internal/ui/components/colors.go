package components

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
)

// Clipboard receives copied token names.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboard writes to the operating system clipboard.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

// ColorSwatch shows one token: a colour block, its hex value and key.
type ColorSwatch struct {
	token    ColorToken
	selected bool
}

// NewColorSwatch creates a swatch for token.
func NewColorSwatch(token ColorToken) *ColorSwatch {
	return &ColorSwatch{token: token}
}

// WithSelected highlights the swatch as the keyboard target.
func (s *ColorSwatch) WithSelected(selected bool) *ColorSwatch {
	s.selected = selected
	return s
}

func (s *ColorSwatch) View() string {
	return s.ViewWithContext(DefaultContext())
}

func (s *ColorSwatch) ViewWithContext(ctx RenderContext) string {
	block := lipgloss.NewStyle().Background(lipgloss.Color(s.token.Hex)).Render("      ")
	hex := TypographyStyle(ctx.Theme, TypographyCode).Render(s.token.Hex)
	key := TypographyStyle(ctx.Theme, TypographyBody).Render(s.token.Key)

	marker := " "
	if s.selected {
		marker = lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Accent.Base).Render(IconGlyph("arrowRight"))
	}
	return fmt.Sprintf("%s %s %s %s", marker, block, hex, key)
}

func (s *ColorSwatch) Accessibility() Accessibility {
	return Accessibility{Role: "img", Label: s.token.Hex, Description: s.token.Key}
}

// Colors lists colour tokens and copies the selected key to a clipboard.
type Colors struct {
	tokens    []ColorToken
	cursor    int
	clipboard Clipboard
}

// NewColors lists tokens, or the default theme's tokens when none are given.
func NewColors(tokens ...ColorToken) *Colors {
	if len(tokens) == 0 {
		tokens = DefaultTheme().Tokens()
	}
	return &Colors{tokens: tokens, clipboard: SystemClipboard()}
}

// WithClipboard replaces the clipboard used by Copy.
func (c *Colors) WithClipboard(cb Clipboard) *Colors {
	c.clipboard = cb
	return c
}

// Tokens returns the listed tokens.
func (c *Colors) Tokens() []ColorToken {
	return c.tokens
}

// Cursor returns the selected index.
func (c *Colors) Cursor() int {
	return c.cursor
}

// Move shifts the selection by delta, clamped to the list.
func (c *Colors) Move(delta int) {
	c.cursor += delta
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.cursor >= len(c.tokens) {
		c.cursor = len(c.tokens) - 1
	}
}

// Selected returns the token under the cursor.
func (c *Colors) Selected() (ColorToken, bool) {
	if c.cursor < 0 || c.cursor >= len(c.tokens) {
		return ColorToken{}, false
	}
	return c.tokens[c.cursor], true
}

// Copy writes key to the clipboard.
func (c *Colors) Copy(key string) error {
	if c.clipboard == nil {
		return fmt.Errorf("copy %s: no clipboard", key)
	}
	if err := c.clipboard.WriteAll(key); err != nil {
		return fmt.Errorf("copy %s: %w", key, err)
	}
	return nil
}

// CopySelected copies the selected token's key and returns it.
func (c *Colors) CopySelected() (string, error) {
	token, ok := c.Selected()
	if !ok {
		return "", fmt.Errorf("no colour selected")
	}
	return token.Key, c.Copy(token.Key)
}

func (c *Colors) View() string {
	return c.ViewWithContext(DefaultContext())
}

func (c *Colors) ViewWithContext(ctx RenderContext) string {
	rows := make([]string, len(c.tokens))
	for i, token := range c.tokens {
		rows[i] = NewColorSwatch(token).WithSelected(i == c.cursor).ViewWithContext(ctx)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
