package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/valger11/suomifi-ui-components/internal/themesource"
	"github.com/valger11/suomifi-ui-components/internal/tui/catalog"
	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

type rootFlags struct {
	configPath string
	theme      string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Browse the Suomi.fi component library in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       currentBuild().Short(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runCatalog(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.SetVersionTemplate("suomifi-ui-components {{.Version}}\n")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Catalog configuration file (YAML)")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Theme to use: light, dark or auto")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newColorsCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runCatalog(cmd *cobra.Command, flags *rootFlags) error {
	app, err := loadApp(cmd, flags)
	if err != nil {
		return err
	}
	app.Logger.Info("launching catalog")

	m := catalog.NewModel(catalog.Options{
		Config:      app.Config,
		Theme:       app.Theme,
		Logger:      app.Logger,
		Diagnostics: app.Diagnostics,
		Loader:      themesource.New(app.Logger),
		Clipboard:   ui.SystemClipboard(),
		Version:     currentBuild().Short(),
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "catalog execution failed")
		return fmt.Errorf("failed to run catalog: %w", err)
	}

	app.Logger.Info("catalog closed")
	return nil
}
