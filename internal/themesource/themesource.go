// Package themesource fetches theme documents kept in git repositories.
// Repositories are cloned into memory; nothing touches the local disk.
package themesource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-billy/v5/memfs"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/valger11/suomifi-ui-components/internal/config"
	"github.com/valger11/suomifi-ui-components/internal/logger"
	apperrors "github.com/valger11/suomifi-ui-components/pkg/errors"
)

// maxThemeSize bounds the theme file read from a clone.
const maxThemeSize = 1 << 20

// ErrThemeTooLarge is wrapped by the ThemeError returned for theme files
// over maxThemeSize.
var ErrThemeTooLarge = errors.New("theme file exceeds 1 MiB")

// Fetcher clones theme repositories.
type Fetcher struct {
	log *logger.Logger
}

// New returns a Fetcher. A nil logger disables logging.
func New(log *logger.Logger) *Fetcher {
	return &Fetcher{log: log.WithComponent("themesource")}
}

// Fetch clones src.Repo at src.Ref and parses the theme file at src.Path.
func (f *Fetcher) Fetch(ctx context.Context, src config.ThemeSource) (*config.ThemeFile, error) {
	if err := config.GetValidator().Struct(src); err != nil {
		return nil, apperrors.NewValidationError("theme_source", err.Error(), err)
	}

	label := src.Repo + "//" + src.Path
	fs := memfs.New()
	opts := &git.CloneOptions{URL: src.Repo}
	if src.Ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(src.Ref)
		opts.SingleBranch = true
	}
	if isRemote(src.Repo) {
		opts.Depth = 1
	}

	f.log.WithFields(map[string]any{"repo": src.Repo, "ref": src.Ref}).Debug("cloning theme repository")
	if _, err := git.CloneContext(ctx, memory.NewStorage(), fs, opts); err != nil {
		return nil, apperrors.NewThemeError("", label, fmt.Errorf("clone: %w", err))
	}

	file, err := fs.Open(strings.TrimPrefix(src.Path, "/"))
	if err != nil {
		return nil, apperrors.NewThemeError("", label, fmt.Errorf("open: %w", err))
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxThemeSize+1))
	if err != nil {
		return nil, apperrors.NewThemeError("", label, fmt.Errorf("read: %w", err))
	}
	if len(data) > maxThemeSize {
		return nil, apperrors.NewThemeError("", label, ErrThemeTooLarge)
	}

	theme, err := config.ParseThemeFile(label, data)
	if err != nil {
		return nil, err
	}
	f.log.WithFields(map[string]any{"theme": theme.Name, "tokens": len(theme.Tokens)}).Info("fetched theme")
	return theme, nil
}

// isRemote reports whether url uses a network transport. Local clones are
// full because the in-process file transport does not negotiate shallow
// history.
func isRemote(url string) bool {
	for _, prefix := range []string{"http://", "https://", "ssh://", "git://"} {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}
	return strings.Contains(url, "@") && strings.Contains(url, ":")
}
