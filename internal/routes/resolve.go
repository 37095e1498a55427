package routes

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/mdpages/internal/config"
)

// indexName is the reserved basename for a directory's own page.
// The match is case-sensitive: "Index.md" is an ordinary page.
const indexName = "index"

// PageRoute resolves a content file path to its canonical route pathname.
//
// A root-level index file maps to "/". An index file anywhere deeper is a
// structural authoring error and returns *NestedIndexError.
func PageRoute(opts *config.Options, filePath string) (string, error) {
	dir, name, err := splitContentPath(opts, filePath)
	if err != nil {
		return "", err
	}

	if name == indexName {
		if dir == "" {
			return Normalize("/", opts.TrailingSlash), nil
		}
		return "", &NestedIndexError{Path: filePath}
	}

	skeleton := "/" + name
	if dir != "" {
		skeleton = "/" + dir + "/" + name
	}
	return Normalize(skeleton, opts.TrailingSlash), nil
}

// IndexRoute resolves the route of the directory an index document
// represents. The file's own basename is ignored entirely, so no index
// nesting restriction applies here.
func IndexRoute(opts *config.Options, filePath string) (string, error) {
	dir, _, err := splitContentPath(opts, filePath)
	if err != nil {
		return "", err
	}
	return Normalize("/"+dir, opts.TrailingSlash), nil
}

// splitContentPath computes filePath relative to the pages root and returns
// the slash-separated parent directory ("" at the root) and the basename with
// any recognized content extension stripped (case-insensitive match).
func splitContentPath(opts *config.Options, filePath string) (dir, name string, err error) {
	rel, err := filepath.Rel(opts.PagesDir, filePath)
	if err != nil {
		return "", "", fmt.Errorf("resolve %s against pages dir %s: %w", filePath, opts.PagesDir, err)
	}
	rel = filepath.ToSlash(rel)

	dir = path.Dir(rel)
	if dir == "." || dir == "/" {
		dir = ""
	}
	dir = strings.Trim(dir, "/")

	name = path.Base(rel)
	if ext := path.Ext(name); opts.ContentExtension(strings.ToLower(ext)) {
		name = name[:len(name)-len(ext)]
	}
	return dir, name, nil
}
