package config

import "git.home.luguber.info/inful/mdpages/internal/util/sets"

// Options is the process-wide build configuration. It is constructed once by
// Load (or built literally in tests), normalized, and never mutated afterward;
// every core function receives it by reference and only reads it.
type Options struct {
	// PagesDir is the absolute root of the content tree.
	PagesDir string
	// OutputDir is where build artifacts are written.
	OutputDir string
	// TrailingSlash controls whether every route ends with "/".
	TrailingSlash bool
	// Extensions is the set of recognized content file extensions,
	// lower-cased and dot-prefixed (".md", ".mdx").
	Extensions sets.Set[string]
	// Layouts maps allowed layout names to their template paths. Used only
	// for validating per-file layout declarations.
	Layouts map[string]string
}

// ContentExtension reports whether ext (lower-cased, dot-prefixed) is a
// recognized content extension. An Options value with no extension set falls
// back to the defaults, so hand-built Options in tests behave like loaded ones.
func (o *Options) ContentExtension(ext string) bool {
	if o.Extensions.Len() == 0 {
		return ext == ".md" || ext == ".mdx"
	}
	return o.Extensions.Has(ext)
}

// fileConfig mirrors the YAML configuration file. Pointer fields distinguish
// "absent" from zero values so normalization can apply defaults.
type fileConfig struct {
	PagesDir      string            `yaml:"pages_dir,omitempty"`
	OutputDir     string            `yaml:"output_dir,omitempty"`
	TrailingSlash *bool             `yaml:"trailing_slash,omitempty"`
	Extensions    []string          `yaml:"extensions,omitempty"`
	Layouts       map[string]string `yaml:"layouts,omitempty"`
}
