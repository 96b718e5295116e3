package diagnostics

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/valger11/suomifi-ui-components/internal/logger"
)

func TestReporterLogsWarning(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	r := New(log)
	r.MissingLabel("checkbox", "terms")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "missing_label", entry["diagnostic"])
	require.Equal(t, "checkbox", entry["component"])
	require.Equal(t, "terms", entry["id"])
	require.Contains(t, entry["message"], "missing a label")
}

func TestReporterDeduplicates(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Writer: buf})
	require.NoError(t, err)

	r := New(log)
	for i := 0; i < 3; i++ {
		r.EmptyMenu("Language")
	}
	r.EmptyAttribute("checkbox", "terms", "name")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Len(t, r.Entries(), 2)
	require.Equal(t, "Menu 'Language' does not contain items", r.Entries()[0].Message)
	require.True(t, r.Has(KindEmptyAttribute, "checkbox"))
	require.False(t, r.Has(KindMissingVariant, "heading"))
}

func TestDuplicateIDsIgnoresEmptyList(t *testing.T) {
	t.Parallel()

	r := New(nil)
	r.DuplicateIDs("combobox", nil)
	require.Empty(t, r.Entries())

	r.DuplicateIDs("combobox", []string{"2", "5"})
	require.Len(t, r.Entries(), 1)
	require.Equal(t, "2,5", r.Entries()[0].ID)
}

func TestNilReporterIsSafe(t *testing.T) {
	t.Parallel()

	var r *Reporter
	r.MissingVariant("heading", "title")
	require.Nil(t, r.Entries())
	require.False(t, r.Has(KindMissingVariant, "heading"))
}
