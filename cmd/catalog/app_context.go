package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/valger11/suomifi-ui-components/internal/config"
	"github.com/valger11/suomifi-ui-components/internal/diagnostics"
	"github.com/valger11/suomifi-ui-components/internal/logger"
	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

const fallbackWidth = 80

// AppContext bundles the services every command builds at startup.
type AppContext struct {
	Config      *config.Config
	Theme       ui.Theme
	Logger      *logger.Logger
	Diagnostics *diagnostics.Reporter
}

// loadApp reads the config named by the root flags, applies flag
// overrides and prepares logging.
func loadApp(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	cfg := config.Default()
	if strings.TrimSpace(flags.configPath) != "" {
		parsed, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, newCommandError("load", "reading configuration", err, "Run 'catalog config validate <file>' to see what is wrong.")
		}
		cfg = parsed
	}
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	theme, err := cfg.ResolveTheme()
	if err != nil {
		return nil, newCommandError("load", "resolving theme", err, fmt.Sprintf("Use one of: %s.", strings.Join(ui.ThemeNames(), ", ")))
	}

	return &AppContext{
		Config:      cfg,
		Theme:       theme,
		Logger:      log,
		Diagnostics: diagnostics.New(log),
	}, nil
}

// RenderContext returns a context for printing components at width.
func (a *AppContext) RenderContext(width int) ui.RenderContext {
	ctx := ui.DefaultContext().WithTheme(a.Theme).WithDiagnostics(a.Diagnostics)
	ctx.ParentWidth = width
	return ctx
}

// outputWidth picks the explicit width, the configured width, the
// terminal width, then a fixed fallback.
func outputWidth(cmd *cobra.Command, explicit int, cfg *config.Config) int {
	if explicit > 0 {
		return explicit
	}
	if cfg != nil && cfg.Width > 0 {
		return cfg.Width
	}
	if file, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if w, _, err := term.GetSize(int(file.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return fallbackWidth
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
