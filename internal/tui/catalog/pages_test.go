package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
	apperrors "github.com/valger11/suomifi-ui-components/pkg/errors"
)

func TestFindPageBySlug(t *testing.T) {
	pages := BuildPages(nil, nil)

	for _, slug := range []string{"textinput", "languagemenu", "Text Input", "checkbox"} {
		page, err := FindPage(pages, slug)
		require.NoError(t, err, slug)
		assert.NotEmpty(t, page.Title)
	}

	page, err := FindPage(pages, "textandlinks")
	require.NoError(t, err)
	assert.Equal(t, "Text and links", page.Title)
}

func TestFindPageUnknownListsAvailable(t *testing.T) {
	pages := BuildPages(nil, nil)

	_, err := FindPage(pages, "carousel")
	var unknown *apperrors.UnknownComponentError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "carousel", unknown.Name)
	assert.Len(t, unknown.Available, len(pages))
	assert.Contains(t, unknown.Available, "combobox")
}

func TestBuildPagesRendersWithoutCatalog(t *testing.T) {
	pages := BuildPages(nil, nil)
	require.Len(t, pages, 12)

	page, err := FindPage(pages, "checkbox")
	require.NoError(t, err)
	out := page.Render(ui.DefaultContext())
	assert.Contains(t, out, "I accept the terms")
}
