package components

import "strings"

// BreadcrumbLink is one step of a breadcrumb trail.
type BreadcrumbLink struct {
	Text    string
	Href    string
	Current bool
}

// Breadcrumb shows where the current page sits in the hierarchy. The
// current step is plain text; every other step is a link followed by a
// separator.
type Breadcrumb struct {
	ariaLabel string
	links     []BreadcrumbLink
}

// NewBreadcrumb creates a trail. ariaLabel names the navigation landmark.
func NewBreadcrumb(ariaLabel string, links ...BreadcrumbLink) *Breadcrumb {
	return &Breadcrumb{ariaLabel: ariaLabel, links: links}
}

// Links returns the steps in order.
func (b *Breadcrumb) Links() []BreadcrumbLink {
	return b.links
}

func (b *Breadcrumb) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b *Breadcrumb) ViewWithContext(ctx RenderContext) string {
	parts := make([]string, 0, len(b.links))
	separator := NewIcon("linkBreadcrumb").WithColor("depthDark1").ViewWithContext(ctx)
	current := TypographyStyle(ctx.Theme, TypographyBodySemiBold)

	for _, link := range b.links {
		if link.Current {
			parts = append(parts, current.Render(link.Text))
			continue
		}
		parts = append(parts, NewLink(link.Text, link.Href).ViewWithContext(ctx)+" "+separator)
	}
	return strings.Join(parts, " ")
}

func (b *Breadcrumb) Accessibility() Accessibility {
	return Accessibility{Role: "navigation", Label: b.ariaLabel}
}

// LinkAccessibility describes step i of the trail.
func (b *Breadcrumb) LinkAccessibility(i int) Accessibility {
	if i < 0 || i >= len(b.links) {
		return Accessibility{}
	}
	link := b.links[i]
	if link.Current {
		return Accessibility{Label: link.Text, Current: "location"}
	}
	return Accessibility{Role: "link", Label: link.Text, Description: link.Href}
}
