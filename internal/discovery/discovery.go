// Package discovery enumerates the content files under the pages root,
// filtering out non-content files so the route resolver only ever sees
// recognized sources.
package discovery

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/mdpages/internal/config"
	"git.home.luguber.info/inful/mdpages/internal/logfields"
	"git.home.luguber.info/inful/mdpages/internal/util/sets"
)

// File is a discovered content source.
type File struct {
	// Path is the absolute filesystem path.
	Path string
	// RelPath is the slash-separated path relative to the pages root.
	RelPath string
	// IsIndex is true when the extension-stripped basename is literally
	// "index".
	IsIndex bool
}

// ignoredNames are directory/file names skipped outright wherever they
// appear, on top of the underscore/dot prefix rule.
var ignoredNames = sets.New("node_modules", ".git")

// Discover walks opts.PagesDir and returns every recognized content file.
// Names starting with "_" or "." are skipped (directories are pruned), as is
// anything whose extension is not a recognized content extension.
func Discover(opts *config.Options) ([]File, error) {
	var files []File

	err := filepath.WalkDir(opts.PagesDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == opts.PagesDir {
			return nil
		}

		name := d.Name()
		if ignoredNames.Has(name) || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(name))
		if !opts.ContentExtension(ext) {
			return nil
		}

		rel, err := filepath.Rel(opts.PagesDir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		stem := strings.TrimSuffix(name, path.Ext(name))
		files = append(files, File{
			Path:    p,
			RelPath: rel,
			IsIndex: stem == "index",
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk pages dir %s: %w", opts.PagesDir, err)
	}

	slog.Debug("Discovered content files", logfields.Path(opts.PagesDir), logfields.Count(len(files)))
	return files, nil
}
