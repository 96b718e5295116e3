package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBuild(t *testing.T, v, c, d string) {
	t.Helper()
	origVersion, origCommit, origDate := version, commit, date
	t.Cleanup(func() { version, commit, date = origVersion, origCommit, origDate })
	version, commit, date = v, c, d
}

func TestVersionCommandListsBuildAndCatalog(t *testing.T) {
	withBuild(t, "1.2.3", "abcdef1234", "2026-10-18")

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "suomifi-ui-components 1.2.3")
	assert.Contains(t, out, "commit:     abcdef1234")
	assert.Contains(t, out, "built:      2026-10-18")
	assert.Contains(t, out, "themes:     light, dark, auto")
	assert.Contains(t, out, "components: 12 (")
	assert.Contains(t, out, "languagemenu")
}

func TestVersionFlagUsesShortBuild(t *testing.T) {
	withBuild(t, "1.2.3", "abcdef1234", "2026-10-18")

	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "suomifi-ui-components 1.2.3 (abcdef1)\n", out)
}

func TestBuildInfoShort(t *testing.T) {
	assert.Equal(t, "dev", buildInfo{Version: "dev", Commit: "none"}.Short())
	assert.Equal(t, "0.4.0", buildInfo{Version: "0.4.0"}.Short())
	assert.Equal(t, "0.4.0 (1234567)", buildInfo{Version: "0.4.0", Commit: "123456789"}.Short())
}
