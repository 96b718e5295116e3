package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valger11/suomifi-ui-components/internal/tui/catalog"
	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

// Set through -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type buildInfo struct {
	Version string
	Commit  string
	Date    string
}

func currentBuild() buildInfo {
	return buildInfo{Version: version, Commit: commit, Date: date}
}

// Short is shown by --version and in the catalog header.
func (b buildInfo) Short() string {
	if b.Commit == "" || b.Commit == "none" {
		return b.Version
	}
	c := b.Commit
	if len(c) > 7 {
		c = c[:7]
	}
	return fmt.Sprintf("%s (%s)", b.Version, c)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the build and the components and themes it ships",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := currentBuild()
			pages := catalog.BuildPages(nil, nil)
			slugs := make([]string, len(pages))
			for i, p := range pages {
				slugs[i] = p.Slug()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "suomifi-ui-components %s\n", b.Version)
			fmt.Fprintf(out, "commit:     %s\n", b.Commit)
			fmt.Fprintf(out, "built:      %s\n", b.Date)
			fmt.Fprintf(out, "themes:     %s\n", strings.Join(ui.ThemeNames(), ", "))
			fmt.Fprintf(out, "components: %d (%s)\n", len(slugs), strings.Join(slugs, ", "))
			return nil
		},
	}
}
