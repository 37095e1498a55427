package routes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/mdpages/internal/config"
)

func docsOptions(trailingSlash bool) *config.Options {
	return &config.Options{PagesDir: "/docs", TrailingSlash: trailingSlash}
}

func TestPageRoute_RootIndex_MapsToRoot(t *testing.T) {
	route, err := PageRoute(docsOptions(false), "/docs/index.md")
	require.NoError(t, err)
	require.Equal(t, "/", route)
}

func TestPageRoute_NestedIndex_Rejected(t *testing.T) {
	_, err := PageRoute(docsOptions(false), "/docs/guide/index.md")
	require.Error(t, err)

	var nie *NestedIndexError
	require.ErrorAs(t, err, &nie)
	require.Equal(t, "/docs/guide/index.md", nie.Path)
}

func TestPageRoute_BasicRoute(t *testing.T) {
	route, err := PageRoute(docsOptions(false), "/docs/Guide/Getting Started.mdx")
	require.NoError(t, err)
	require.Equal(t, "/guide/getting-started", route)
}

func TestPageRoute_TrailingSlashPolicy(t *testing.T) {
	route, err := PageRoute(docsOptions(true), "/docs/Guide/Getting Started.mdx")
	require.NoError(t, err)
	require.Equal(t, "/guide/getting-started/", route)
}

func TestPageRoute_TopLevelFile(t *testing.T) {
	route, err := PageRoute(docsOptions(false), "/docs/about.md")
	require.NoError(t, err)
	require.Equal(t, "/about", route)
}

func TestPageRoute_ExtensionMatch_CaseInsensitive(t *testing.T) {
	route, err := PageRoute(docsOptions(false), "/docs/notes.MD")
	require.NoError(t, err)
	require.Equal(t, "/notes", route)
}

// The "index" token is matched case-sensitively: a file named Index.md is an
// ordinary page whose basename happens to slugify to "index".
func TestPageRoute_CapitalizedIndex_IsOrdinaryPage(t *testing.T) {
	route, err := PageRoute(docsOptions(false), "/docs/guide/Index.md")
	require.NoError(t, err)
	require.Equal(t, "/guide/index", route)
}

func TestPageRoute_OutputAlphabet(t *testing.T) {
	inputs := []string{
		"/docs/Guide/Getting Started.mdx",
		"/docs/API_Reference/HTTP Codes.md",
		"/docs/Über/Straße.md",
	}
	for _, in := range inputs {
		route, err := PageRoute(docsOptions(false), in)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(route, "/"))
		require.False(t, strings.ContainsAny(route, "\\ _"), "route %q", route)
		require.Equal(t, strings.ToLower(route), route)
	}
}

func TestIndexRoute_UsesDirectoryOnly(t *testing.T) {
	route, err := IndexRoute(docsOptions(false), "/docs/guide/index.md")
	require.NoError(t, err)
	require.Equal(t, "/guide", route)
}

func TestIndexRoute_RootIndex(t *testing.T) {
	route, err := IndexRoute(docsOptions(false), "/docs/index.md")
	require.NoError(t, err)
	require.Equal(t, "/", route)
}

func TestIndexRoute_NoNestingRestriction(t *testing.T) {
	route, err := IndexRoute(docsOptions(true), "/docs/Guide/Deep Dir/index.md")
	require.NoError(t, err)
	require.Equal(t, "/guide/deep-dir/", route)
}
