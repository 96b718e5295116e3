package catalog

import (
	"github.com/valger11/suomifi-ui-components/internal/config"
)

// ThemeFetchedMsg carries a theme loaded from a repository.
type ThemeFetchedMsg struct {
	Source config.ThemeSource
	File   *config.ThemeFile
}

// ThemeFetchErrorMsg reports a failed theme fetch.
type ThemeFetchErrorMsg struct {
	Source config.ThemeSource
	Error  error
}

// ErrorMsg shows a message in the error banner.
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg hides the error banner.
type ClearErrorMsg struct{}

// ThemeFetchCancelledMsg is sent when a fetch is abandoned.
type ThemeFetchCancelledMsg struct{}
