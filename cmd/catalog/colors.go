package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
	apperrors "github.com/valger11/suomifi-ui-components/pkg/errors"
)

// systemClipboard is swapped out in tests.
var systemClipboard = ui.SystemClipboard

func newColorsCmd(rootFlags *rootFlags) *cobra.Command {
	var (
		copyKey string
		width   int
	)

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List the colour tokens of the active theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, rootFlags)
			if err != nil {
				return err
			}

			colors := ui.NewColors(app.Theme.Tokens()...).WithClipboard(systemClipboard())

			if copyKey != "" {
				token, ok := app.Theme.Token(copyKey)
				if !ok {
					err := apperrors.NewValidationError("copy", fmt.Sprintf("unknown colour token %q", copyKey), nil)
					return newCommandError("copy", "looking up colour token", err, "Run 'catalog colors' to list the token keys.")
				}
				if err := colors.Copy(token.Key); err != nil {
					return newCommandError("copy", "writing to the clipboard", err, "Check that a clipboard utility such as xclip or wl-copy is installed.")
				}
				app.Logger.WithFields(map[string]any{"key": token.Key}).Debug("copied colour token")
				fmt.Fprintf(cmd.OutOrStdout(), "copied %s (%s)\n", token.Key, strings.ToLower(token.Hex))
				return nil
			}

			ctx := app.RenderContext(outputWidth(cmd, width, app.Config))
			fmt.Fprintln(cmd.OutOrStdout(), colors.ViewWithContext(ctx))
			return nil
		},
	}

	cmd.Flags().StringVar(&copyKey, "copy", "", "Copy the named token key to the clipboard instead of listing")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Render width in columns")

	return cmd
}
