// Package pages carries the page model and the formatting helpers the build
// output writer consumes: title fallback, layout validation, and the output
// path conventions for page and index artifacts.
package pages

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/mdpages/internal/config"
	"git.home.luguber.info/inful/mdpages/internal/frontmatter"
)

// Page is a resolved content page ready for output.
type Page struct {
	SourcePath string
	Route      string
	Title      string
	Layout     string
	Body       []byte
}

// Index is a resolved index document representing its directory's route.
type Index struct {
	SourcePath string
	Route      string
	Title      string
	Body       []byte
}

// defaultLayout always validates, whether or not it is registered.
const defaultLayout = "default"

// Title returns the explicit frontmatter title when present, otherwise a
// title-cased rendering of the file's basename with hyphens and underscores
// read as word breaks ("getting-started.md" becomes "Getting Started").
func Title(filePath string, attrs frontmatter.Attrs) string {
	if attrs.Title != "" {
		return attrs.Title
	}

	base := path.Base(filepath.ToSlash(filePath))
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.ReplaceAll(base, "_", " ")
	// Casers are stateful; build one per call so Title stays parallel-safe.
	return cases.Title(language.English).String(base)
}

// ValidateLayout checks a file's declared layout against the registered
// layout table. Empty and "default" always pass.
func ValidateLayout(opts *config.Options, filePath string, attrs frontmatter.Attrs) error {
	layout := attrs.Layout
	if layout == "" || layout == defaultLayout {
		return nil
	}
	if _, ok := opts.Layouts[layout]; !ok {
		return &InvalidLayoutError{Path: filePath, Layout: layout}
	}
	return nil
}

// BuildPath returns the output location for a page: "pages{route}.js", with
// the root route "/" written as "pages/index.js".
func BuildPath(route string) string {
	r := strings.TrimSuffix(route, "/")
	if r == "" {
		r = "/index"
	}
	return "pages" + r + ".js"
}

// IndexBuildPath returns the output location for an index document:
// "pages{indexRoute}/index.json".
func IndexBuildPath(indexRoute string) string {
	r := strings.TrimSuffix(indexRoute, "/")
	return "pages" + r + "/index.json"
}

// InvalidLayoutError reports a declared layout name with no registered
// implementation. Authoring mistake; surfaced, never retried.
type InvalidLayoutError struct {
	Path   string
	Layout string
}

func (e *InvalidLayoutError) Error() string {
	return fmt.Sprintf("unknown layout %q declared by %s", e.Layout, e.Path)
}
