package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/mdpages/internal/config"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte("# stub\n"), 0o644))
}

func TestDiscover_ContentFilesOnly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.md")
	writeFile(t, root, "about.mdx")
	writeFile(t, root, "guide/setup.md")
	writeFile(t, root, "logo.png")
	writeFile(t, root, "notes.txt")

	files, err := Discover(&config.Options{PagesDir: root})
	require.NoError(t, err)

	rels := make([]string, 0, len(files))
	for _, f := range files {
		rels = append(rels, f.RelPath)
	}
	require.ElementsMatch(t, []string{"index.md", "about.mdx", "guide/setup.md"}, rels)
}

func TestDiscover_UnderscoreAndDotNames_Skipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "visible.md")
	writeFile(t, root, "_draft.md")
	writeFile(t, root, ".hidden.md")
	writeFile(t, root, "_layouts/page.md")
	writeFile(t, root, ".cache/stale.md")

	files, err := Discover(&config.Options{PagesDir: root})
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "visible.md", files[0].RelPath)
}

func TestDiscover_IgnoredDirectoryNames_Pruned(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.md")
	writeFile(t, root, "node_modules/pkg/readme.md")

	files, err := Discover(&config.Options{PagesDir: root})
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "a.md", files[0].RelPath)
}

func TestDiscover_MarksIndexFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.md")
	writeFile(t, root, "about.md")

	files, err := Discover(&config.Options{PagesDir: root})
	require.NoError(t, err)

	byRel := map[string]File{}
	for _, f := range files {
		byRel[f.RelPath] = f
	}
	require.True(t, byRel["index.md"].IsIndex)
	require.False(t, byRel["about.md"].IsIndex)
}

func TestDiscover_ExtensionMatch_CaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "upper.MD")

	files, err := Discover(&config.Options{PagesDir: root})
	require.NoError(t, err)
	require.Len(t, files, 1)
}
