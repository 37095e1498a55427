package routes

import (
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/mdpages/internal/config"
)

// passthroughPrefixes mark hrefs the rewriter never touches: already-absolute
// site routes and external schemes. Matched case-insensitively.
var passthroughPrefixes = []string{"/", "https:", "http:", "file:"}

// RewriteLink resolves a relative link found inside an index document onto
// the canonical route of the file it targets.
//
// Non-content targets (wrong extension) come back as the authored path with
// any query/fragment stripped. When the original href carries both a query
// and a fragment, only the query survives reattachment; the fragment is
// dropped. That asymmetry is intentional, pinned behavior.
func RewriteLink(opts *config.Options, indexFilePath, rawHref string) (string, error) {
	low := strings.ToLower(rawHref)
	for _, prefix := range passthroughPrefixes {
		if strings.HasPrefix(low, prefix) {
			return rawHref, nil
		}
	}

	// Query and fragment split independently over the whole href: a "?"
	// anywhere makes the query win reattachment below, whichever delimiter
	// comes first, and the fragment is lost. The path portion ends at the
	// first delimiter of either kind.
	query, hasQuery := "", false
	if i := strings.Index(rawHref, "?"); i >= 0 {
		q := rawHref[i+1:]
		if j := strings.Index(q, "#"); j >= 0 {
			q = q[:j]
		}
		query, hasQuery = q, true
	}
	fragment, hasFragment := "", false
	if i := strings.Index(rawHref, "#"); i >= 0 {
		fragment, hasFragment = rawHref[i+1:], true
	}
	pathPart := rawHref
	if i := strings.IndexAny(rawHref, "?#"); i >= 0 {
		pathPart = rawHref[:i]
	}

	if ext := strings.ToLower(path.Ext(pathPart)); !opts.ContentExtension(ext) {
		return pathPart, nil
	}

	segs := make([]string, 0, 4)
	segs = append(segs, filepath.Dir(indexFilePath))
	for _, seg := range strings.Split(filepath.ToSlash(pathPart), "/") {
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	candidate := filepath.Join(segs...)

	route, err := PageRoute(opts, candidate)
	if err != nil {
		return "", err
	}

	switch {
	case hasQuery:
		return route + "?" + query, nil
	case hasFragment:
		return route + "#" + fragment, nil
	default:
		return route, nil
	}
}
