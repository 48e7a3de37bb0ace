package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketcrew/mc-cli/internal/domain"
)

func TestRenderEmptyContentSet(t *testing.T) {
	out, err := Render(domain.ContentSet{}, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, "artifacts: 0")
	assert.Contains(t, out, "No generated content available.")
}

func TestRenderAllArtifactsInDeclarationOrder(t *testing.T) {
	content := domain.ContentSet{Artifacts: map[domain.ArtifactKind]string{
		domain.ArtifactHashtags:    "#acme",
		domain.ArtifactWeeklyPosts: "Monday post",
	}}

	out, err := Render(content, RenderOptions{BrandName: "Acme"})
	require.NoError(t, err)
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "artifacts: 2")
	assert.Contains(t, out, "Weekly Posts")
	assert.Contains(t, out, "Hashtags")
	assert.Less(t, strings.Index(out, "Weekly Posts"), strings.Index(out, "Hashtags"))
}

func TestRenderSingleKind(t *testing.T) {
	content := domain.ContentSet{Artifacts: map[domain.ArtifactKind]string{
		domain.ArtifactHashtags:    "#acme",
		domain.ArtifactWeeklyPosts: "Monday post",
	}}

	out, err := Render(content, RenderOptions{Kind: domain.ArtifactHashtags})
	require.NoError(t, err)
	assert.Contains(t, out, "Hashtags")
	assert.NotContains(t, out, "Monday post")
}

func TestFormatBodyHandlesMarkup(t *testing.T) {
	out := FormatBody("# Title\n## Sub\n- bullet\n*note*\nplain")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Sub")
	assert.Contains(t, out, "• bullet")
	assert.Contains(t, out, "note")
	assert.Contains(t, out, "plain")
	assert.NotContains(t, out, "# Title")
}
