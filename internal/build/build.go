// Package build orchestrates the pipeline: discover content files, extract
// metadata, resolve routes, rewrite index links, and write output artifacts.
package build

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/mdpages/internal/config"
	"git.home.luguber.info/inful/mdpages/internal/discovery"
	"git.home.luguber.info/inful/mdpages/internal/frontmatter"
	"git.home.luguber.info/inful/mdpages/internal/logfields"
	"git.home.luguber.info/inful/mdpages/internal/markdown"
	"git.home.luguber.info/inful/mdpages/internal/pages"
	"git.home.luguber.info/inful/mdpages/internal/routes"
)

// Result summarizes a completed build.
type Result struct {
	BuildID   string
	OutputDir string
	Pages     []pages.Page
	Indexes   []pages.Index
}

// Manifest is written as manifest.json at the output root.
type Manifest struct {
	BuildID     string    `json:"build_id"`
	GeneratedAt time.Time `json:"generated_at"`
	PageCount   int       `json:"page_count"`
	Routes      []string  `json:"routes"`
}

// pageModule is the payload of a page's .js output artifact.
type pageModule struct {
	Route  string `json:"route"`
	Title  string `json:"title"`
	Layout string `json:"layout,omitempty"`
	HTML   string `json:"html"`
}

// indexDocument is the payload of an index's .json output artifact.
type indexDocument struct {
	Route string          `json:"route"`
	Title string          `json:"title"`
	Links []markdown.Link `json:"links"`
	HTML  string          `json:"html"`
}

// Run executes a full build into outputDir. The first per-file failure aborts
// the build with the offending path in the error; there is no partial success.
func Run(opts *config.Options, outputDir string) (*Result, error) {
	files, err := discovery.Discover(opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		BuildID:   uuid.NewString(),
		OutputDir: outputDir,
	}
	routeList := make([]string, 0, len(files))

	for _, f := range files {
		route, err := processFile(opts, f, outputDir, result)
		if err != nil {
			return nil, err
		}
		routeList = append(routeList, route)
	}

	sort.Strings(routeList)
	manifest := Manifest{
		BuildID:     result.BuildID,
		GeneratedAt: time.Now().UTC(),
		PageCount:   len(routeList),
		Routes:      routeList,
	}
	if err := writeJSON(filepath.Join(outputDir, "manifest.json"), manifest); err != nil {
		return nil, err
	}

	slog.Info("Build complete",
		slog.String("build_id", result.BuildID),
		logfields.Count(len(routeList)),
		logfields.Output(outputDir))
	return result, nil
}

// processFile runs one source file through the pipeline and returns its route.
func processFile(opts *config.Options, f discovery.File, outputDir string, result *Result) (string, error) {
	content, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", f.Path, err)
	}

	fm, body, _, err := frontmatter.Split(content)
	if err != nil {
		return "", fmt.Errorf("%s: %w", f.Path, err)
	}
	attrs, err := frontmatter.Parse(fm)
	if err != nil {
		return "", fmt.Errorf("%s: %w", f.Path, err)
	}
	if err := pages.ValidateLayout(opts, f.Path, attrs); err != nil {
		return "", err
	}

	// PageRoute also rejects nested index files, so index documents go
	// through it first even though their artifact path uses the index route.
	route, err := routes.PageRoute(opts, f.Path)
	if err != nil {
		return "", err
	}
	title := pages.Title(f.Path, attrs)

	if f.IsIndex {
		return route, writeIndex(opts, f, route, title, body, outputDir, result)
	}

	html, err := markdown.Render(body)
	if err != nil {
		return "", fmt.Errorf("%s: %w", f.Path, err)
	}
	page := pages.Page{SourcePath: f.Path, Route: route, Title: title, Layout: attrs.Layout, Body: body}
	result.Pages = append(result.Pages, page)

	target := filepath.Join(outputDir, filepath.FromSlash(pages.BuildPath(route)))
	if err := writePageModule(target, pageModule{Route: route, Title: title, Layout: attrs.Layout, HTML: string(html)}); err != nil {
		return "", err
	}

	slog.Debug("Wrote page", logfields.File(f.RelPath), logfields.Route(route))
	return route, nil
}

// writeIndex rewrites the index document's links, renders it, and writes both
// its page module (the directory's own page) and its index.json artifact.
func writeIndex(opts *config.Options, f discovery.File, route, title string, body []byte, outputDir string, result *Result) error {
	rewritten, err := markdown.RewriteIndexLinks(opts, f.Path, body)
	if err != nil {
		return err
	}

	indexRoute, err := routes.IndexRoute(opts, f.Path)
	if err != nil {
		return err
	}
	html, err := markdown.Render(rewritten)
	if err != nil {
		return fmt.Errorf("%s: %w", f.Path, err)
	}

	result.Indexes = append(result.Indexes, pages.Index{SourcePath: f.Path, Route: indexRoute, Title: title, Body: rewritten})

	doc := indexDocument{
		Route: indexRoute,
		Title: title,
		Links: markdown.ExtractLinks(rewritten),
		HTML:  string(html),
	}
	target := filepath.Join(outputDir, filepath.FromSlash(pages.IndexBuildPath(indexRoute)))
	if err := writeJSON(target, doc); err != nil {
		return err
	}

	pageTarget := filepath.Join(outputDir, filepath.FromSlash(pages.BuildPath(route)))
	if err := writePageModule(pageTarget, pageModule{Route: route, Title: title, HTML: string(html)}); err != nil {
		return err
	}

	slog.Debug("Wrote index", logfields.File(f.RelPath), logfields.Route(indexRoute))
	return nil
}

func writePageModule(target string, mod pageModule) error {
	data, err := json.MarshalIndent(mod, "", "  ")
	if err != nil {
		return fmt.Errorf("encode page module %s: %w", target, err)
	}
	return writeFile(target, append([]byte("export default "), append(data, '\n')...))
}

func writeJSON(target string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", target, err)
	}
	return writeFile(target, append(data, '\n'))
}

func writeFile(target string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create output dir for %s: %w", target, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}
