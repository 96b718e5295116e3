package catalog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	core "github.com/valger11/suomifi-ui-components/internal/ui"
	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

const minWidth = 60

// View renders the current model state.
func (m Model) View() string {
	if m.width > 0 && m.width < minWidth {
		return fmt.Sprintf("Terminal too small (%d columns). Minimum width: %d", m.width, minWidth)
	}

	st := newStyles(m.Theme(), m.pane == PanePreview)

	var content strings.Builder
	content.WriteString(m.renderHeader(st))
	content.WriteString("\n")

	if m.showError {
		content.WriteString(st.errorBanner.Render(m.errorMsg))
		content.WriteString("\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderNav(st), m.renderPreview(st))
	content.WriteString(body)
	content.WriteString("\n")

	if events := m.events.recent(); len(events) > 0 {
		content.WriteString(st.events.Render(strings.Join(events, "\n")))
		content.WriteString("\n")
	}

	content.WriteString(m.renderFooter(st))
	return content.String()
}

func (m Model) renderHeader(st styles) string {
	summary := fmt.Sprintf("theme: %s", m.Theme().Name)
	if m.fetching {
		summary += fmt.Sprintf("  %s fetching theme", m.spinner.View())
	}
	if n := len(m.diag.Entries()); n > 0 {
		summary += fmt.Sprintf("  ⚠ %d diagnostics", n)
	}
	title := "suomifi-ui-components"
	if m.version != "" {
		title += " " + m.version
	}
	return st.header.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		st.title.Render(title),
		st.muted.Render(summary),
	))
}

func (m Model) renderNav(st styles) string {
	lines := make([]string, len(m.pages))
	for i, page := range m.pages {
		if i == m.cursor {
			lines[i] = st.navSelected.Render(page.Title)
			continue
		}
		lines[i] = st.navItem.Render(page.Title)
	}
	return st.nav.Render(strings.Join(lines, "\n"))
}

func (m Model) previewWidth() int {
	w := m.width - navWidth - 6
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) renderPreview(st styles) string {
	page := m.CurrentPage()
	if page == nil {
		return st.preview.Render("No components")
	}

	width := m.previewWidth()
	ctx := m.renderContext(width)

	body := lipgloss.JoinVertical(lipgloss.Left,
		ui.NewHeading(ui.HeadingH2, page.Title).ViewWithContext(ctx),
		page.Render(ctx),
	)
	return st.preview.Width(width).Render(body)
}

func render(ctx ui.RenderContext, r core.Renderable) string {
	if cr, ok := r.(ui.ContextualRenderable); ok {
		return cr.ViewWithContext(ctx)
	}
	return r.View()
}

func (m Model) renderFooter(st styles) string {
	return st.footer.Render(m.help.View(m.keys))
}
