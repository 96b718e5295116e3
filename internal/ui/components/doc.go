// Package components provides the static, themed building blocks of the
// catalog: typography, buttons, chips, form texts, links, breadcrumbs and
// colour swatches, plus the layout primitives they are composed with.
//
// # Theme System
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	theme, _ := components.ThemeByName("dark")
//	ctx := components.DefaultContext().WithTheme(theme)
//	output := components.NewHeading(components.HeadingH2, "Forms").ViewWithContext(ctx)
//
// View() renders with the light theme.
//
// A theme is built from named colour tokens (brandBase, highlightBase,
// depthLight1, ...). Semantic palette slots such as PaletteHighlight and
// PaletteAlert are derived from those tokens, so overriding a token with
// Theme.WithOverrides recolours every component that uses it.
//
// # Style Modifiers
//
// Components accept theme-aware style functions:
//
//	chip := components.NewStaticChip("Beta").WithAppliers(
//		components.Background(components.PaletteSuccess),
//	)
//
// # Accessibility
//
// Components implementing Accessible expose an Accessibility descriptor
// with role, label and state. Usage mistakes found while rendering, such
// as a heading without a variant, go to RenderContext.Diagnostics.
package components
