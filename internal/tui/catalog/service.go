package catalog

import (
	"context"

	"github.com/valger11/suomifi-ui-components/internal/config"
)

// ThemeLoader fetches theme documents. *themesource.Fetcher satisfies it.
type ThemeLoader interface {
	Fetch(ctx context.Context, src config.ThemeSource) (*config.ThemeFile, error)
}
