package pages

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/mdpages/internal/config"
	"git.home.luguber.info/inful/mdpages/internal/frontmatter"
)

func TestTitle_ExplicitFrontmatterTitle_Wins(t *testing.T) {
	got := Title("/docs/getting-started.md", frontmatter.Attrs{Title: "Custom"})
	require.Equal(t, "Custom", got)
}

func TestTitle_Fallback_TitleCasesBasename(t *testing.T) {
	got := Title("/docs/getting-started.md", frontmatter.Attrs{})
	require.Equal(t, "Getting Started", got)
}

func TestTitle_Fallback_UnderscoresAsWordBreaks(t *testing.T) {
	got := Title("/docs/api_reference.mdx", frontmatter.Attrs{})
	require.Equal(t, "Api Reference", got)
}

func TestValidateLayout_EmptyAndDefault_AlwaysPass(t *testing.T) {
	opts := &config.Options{}
	require.NoError(t, ValidateLayout(opts, "/docs/a.md", frontmatter.Attrs{}))
	require.NoError(t, ValidateLayout(opts, "/docs/a.md", frontmatter.Attrs{Layout: "default"}))
}

func TestValidateLayout_RegisteredLayout_Passes(t *testing.T) {
	opts := &config.Options{Layouts: map[string]string{"guide": "layouts/guide.html"}}
	require.NoError(t, ValidateLayout(opts, "/docs/a.md", frontmatter.Attrs{Layout: "guide"}))
}

func TestValidateLayout_UnknownLayout_Fails(t *testing.T) {
	opts := &config.Options{Layouts: map[string]string{"guide": "layouts/guide.html"}}
	err := ValidateLayout(opts, "/docs/a.md", frontmatter.Attrs{Layout: "missing"})
	require.Error(t, err)

	var ile *InvalidLayoutError
	require.ErrorAs(t, err, &ile)
	require.Equal(t, "/docs/a.md", ile.Path)
	require.Equal(t, "missing", ile.Layout)
}

func TestBuildPath_RootRoute_TreatedAsIndex(t *testing.T) {
	require.Equal(t, "pages/index.js", BuildPath("/"))
}

func TestBuildPath_NestedRoute(t *testing.T) {
	require.Equal(t, "pages/guide/getting-started.js", BuildPath("/guide/getting-started"))
}

func TestBuildPath_TrailingSlashRoute_Trimmed(t *testing.T) {
	require.Equal(t, "pages/guide.js", BuildPath("/guide/"))
}

func TestIndexBuildPath_Root(t *testing.T) {
	require.Equal(t, "pages/index.json", IndexBuildPath("/"))
}

func TestIndexBuildPath_Nested(t *testing.T) {
	require.Equal(t, "pages/guide/index.json", IndexBuildPath("/guide"))
	require.Equal(t, "pages/guide/index.json", IndexBuildPath("/guide/"))
}
