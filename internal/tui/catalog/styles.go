package catalog

import (
	"github.com/charmbracelet/lipgloss"

	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

const navWidth = 24

// styles are derived from the active theme so the chrome follows theme
// switches together with the preview.
type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	nav         lipgloss.Style
	navItem     lipgloss.Style
	navSelected lipgloss.Style
	preview     lipgloss.Style
	events      lipgloss.Style
	footer      lipgloss.Style
	errorBanner lipgloss.Style
	muted       lipgloss.Style
}

func newStyles(theme ui.Theme, focusPreview bool) styles {
	p := theme.Palette

	navBorder := p.Highlight.Base
	previewBorder := p.Depth.Muted
	if focusPreview {
		navBorder, previewBorder = previewBorder, navBorder
	}

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Brand.Base).
			PaddingLeft(1).
			PaddingRight(1),
		header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Depth.Muted).
			MarginBottom(1),
		nav: lipgloss.NewStyle().
			Width(navWidth).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(navBorder).
			PaddingRight(1),
		navItem: lipgloss.NewStyle().
			PaddingLeft(2),
		navSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Foreground(p.Highlight.Base).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(p.Highlight.Base),
		preview: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(previewBorder).
			PaddingLeft(1).
			PaddingRight(1),
		events: lipgloss.NewStyle().
			Foreground(p.Depth.Base).
			MarginTop(1),
		footer: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Depth.Muted),
		errorBanner: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Alert.OnBase).
			Background(p.Alert.Base).
			PaddingLeft(1).
			PaddingRight(1),
		muted: lipgloss.NewStyle().Foreground(p.Depth.Base),
	}
}
