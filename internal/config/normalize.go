package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/mdpages/internal/util/sets"
)

const (
	defaultPagesDir  = "./pages"
	defaultOutputDir = "./build"
)

// defaultExtensions are the content extensions recognized when the config
// file does not list any.
var defaultExtensions = []string{".md", ".mdx"}

// normalize fills defaults and canonicalizes a raw file config into Options.
// PagesDir and OutputDir come out absolute; extensions come out lower-cased
// and dot-prefixed regardless of how they were written in the config file.
func normalize(fc *fileConfig) (*Options, error) {
	pagesDir := fc.PagesDir
	if pagesDir == "" {
		pagesDir = defaultPagesDir
	}
	absPages, err := filepath.Abs(pagesDir)
	if err != nil {
		return nil, fmt.Errorf("resolve pages dir %s: %w", pagesDir, err)
	}

	outputDir := fc.OutputDir
	if outputDir == "" {
		outputDir = defaultOutputDir
	}
	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("resolve output dir %s: %w", outputDir, err)
	}

	exts := fc.Extensions
	if len(exts) == 0 {
		exts = defaultExtensions
	}
	extSet := sets.New[string]()
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		extSet.Add(e)
	}

	trailing := false
	if fc.TrailingSlash != nil {
		trailing = *fc.TrailingSlash
	}

	layouts := fc.Layouts
	if layouts == nil {
		layouts = map[string]string{}
	}

	return &Options{
		PagesDir:      absPages,
		OutputDir:     absOutput,
		TrailingSlash: trailing,
		Extensions:    extSet,
		Layouts:       layouts,
	}, nil
}
