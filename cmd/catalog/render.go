package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valger11/suomifi-ui-components/internal/tui/catalog"
	apperrors "github.com/valger11/suomifi-ui-components/pkg/errors"
)

type renderOptions struct {
	width int
	a11y  bool
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <component>",
		Short: "Print a component page once and exit",
		Long: `Print one catalog page without starting the interactive view.

Components are named by page title without spaces, for example
"checkbox", "textinput" or "languagemenu". Run with "list" to see them all.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Render width in columns (default: terminal width)")
	cmd.Flags().BoolVar(&opts.a11y, "a11y", false, "Also print the accessibility descriptor of each widget")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, name string, opts *renderOptions) error {
	app, err := loadApp(cmd, rootFlags)
	if err != nil {
		return err
	}

	pages := catalog.BuildPages(app.Config, nil)
	out := cmd.OutOrStdout()

	if name == "list" {
		for _, p := range pages {
			fmt.Fprintf(out, "%-14s %s\n", p.Slug(), p.Title)
		}
		return nil
	}

	page, err := catalog.FindPage(pages, name)
	if err != nil {
		var unknown *apperrors.UnknownComponentError
		if errors.As(err, &unknown) {
			return newCommandError("render", fmt.Sprintf("looking up component %q", name), err, "Run 'catalog render list' to see the available components.")
		}
		return err
	}

	ctx := app.RenderContext(outputWidth(cmd, opts.width, app.Config))
	fmt.Fprintln(out, page.Render(ctx))

	if opts.a11y {
		fmt.Fprintln(out)
		for _, w := range page.Widgets {
			fmt.Fprintln(out, w.Accessibility().String())
		}
	}

	for _, entry := range app.Diagnostics.Entries() {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", entry.Message)
	}
	return nil
}
