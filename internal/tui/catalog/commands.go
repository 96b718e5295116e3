package catalog

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/valger11/suomifi-ui-components/internal/config"
)

const fetchTimeout = 30 * time.Second

// fetchThemeCmd loads a theme from its repository asynchronously.
func fetchThemeCmd(ctx context.Context, loader ThemeLoader, src config.ThemeSource) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()

		file, err := loader.Fetch(ctx, src)
		if err != nil {
			if ctx.Err() == context.Canceled {
				return ThemeFetchCancelledMsg{}
			}
			return ThemeFetchErrorMsg{Source: src, Error: err}
		}
		if file == nil {
			return ThemeFetchErrorMsg{Source: src, Error: fmt.Errorf("theme fetch produced no result")}
		}
		return ThemeFetchedMsg{Source: src, File: file}
	}
}
