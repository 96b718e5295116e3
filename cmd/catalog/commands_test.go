package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
	apperrors "github.com/valger11/suomifi-ui-components/pkg/errors"
)

const brandTheme = `name: brand
base: dark
tokens:
  brandBase: "#ff6600"
`

type recordingClipboard struct {
	writes []string
	err    error
}

func (c *recordingClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, text)
	return nil
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRenderCheckbox(t *testing.T) {
	out, _, err := execute(t, "render", "checkbox", "--width", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "I accept the terms")
}

func TestRenderWithAccessibility(t *testing.T) {
	out, _, err := execute(t, "render", "checkbox", "--a11y", "--width", "80")
	require.NoError(t, err)
	assert.Contains(t, out, `role="checkbox"`)
}

func TestRenderList(t *testing.T) {
	out, _, err := execute(t, "render", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "textinput")
	assert.Contains(t, out, "Language menu")
}

func TestRenderUnknownComponent(t *testing.T) {
	_, _, err := execute(t, "render", "carousel")
	require.Error(t, err)

	var unknown *apperrors.UnknownComponentError
	require.ErrorAs(t, err, &unknown)
	assert.Contains(t, err.Error(), "render list")
}

func TestRenderRejectsUnknownTheme(t *testing.T) {
	_, _, err := execute(t, "--theme", "sepia", "render", "button")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolving theme")
}

func TestColorsListsTokens(t *testing.T) {
	out, _, err := execute(t, "colors", "--width", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "brandBase")
	assert.Contains(t, out, "#e97025")
}

func TestColorsCopy(t *testing.T) {
	cb := &recordingClipboard{}
	original := systemClipboard
	systemClipboard = func() ui.Clipboard { return cb }
	t.Cleanup(func() { systemClipboard = original })

	out, _, err := execute(t, "colors", "--copy", "brandBase")
	require.NoError(t, err)
	assert.Equal(t, []string{"brandBase"}, cb.writes)
	assert.Contains(t, out, "copied brandBase")

	_, _, err = execute(t, "colors", "--copy", "nope")
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	cb.err = errors.New("no clipboard utility")
	_, _, err = execute(t, "colors", "--copy", "brandBase")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no clipboard utility")
}

func TestThemeValidate(t *testing.T) {
	path := writeFile(t, "brand.yaml", brandTheme)

	out, _, err := execute(t, "theme", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, `theme "brand" is valid`)
	assert.Contains(t, out, "base dark")
}

func TestThemeValidateRejectsBadToken(t *testing.T) {
	path := writeFile(t, "bad.yaml", "name: bad\ntokens:\n  brandBase: orange\n")

	_, _, err := execute(t, "theme", "validate", path)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestThemeFetchFromLocalRepository(t *testing.T) {
	repo := initRepo(t, map[string]string{"themes/brand.yaml": brandTheme})
	target := filepath.Join(t.TempDir(), "brand.yaml")

	out, _, err := execute(t, "theme", "fetch", "--repo", repo, "--path", "themes/brand.yaml", "--out", target)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote theme")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#ff6600")
}

func TestThemeFetchRequiresFlags(t *testing.T) {
	_, _, err := execute(t, "theme", "fetch", "--repo", "./themes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path")
}

func TestConfigValidate(t *testing.T) {
	path := writeFile(t, "catalog.yaml", "theme: dark\ndebounce_ms: 100\n")

	out, _, err := execute(t, "config", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid (theme dark")

	bad := writeFile(t, "bad.yaml", "theme: sepia\n")
	_, _, err = execute(t, "config", "validate", bad)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestConfigDefaults(t *testing.T) {
	out, _, err := execute(t, "config", "defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: light")
	assert.Contains(t, out, "hammer")
}

func initRepo(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	for name, contents := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
		_, err = wt.Add(name)
		require.NoError(t, err)
	}

	_, err = wt.Commit("add themes", &git.CommitOptions{
		Author: &object.Signature{Name: "Catalog", Email: "catalog@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir
}

func TestThemeDiffShowsChangedTokens(t *testing.T) {
	path := writeFile(t, "brand.yaml", brandTheme)

	out, _, err := execute(t, "theme", "diff", path)
	require.NoError(t, err)
	assert.Contains(t, out, "--- dark")
	assert.Contains(t, out, "+++ brand")
	assert.Contains(t, out, "+brandBase")
	assert.Contains(t, out, "#ff6600")
	assert.Contains(t, out, "1 tokens changed")
}
