// Package routes derives canonical, URL-safe route pathnames for content
// files and rewrites relative content links onto those routes.
package routes

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"

	"git.home.luguber.info/inful/mdpages/internal/slug"
)

// dummyBase anchors URL resolution so "."/".." segments and percent-encoding
// artifacts canonicalize the same way a browser would resolve them.
var dummyBase = url.URL{Scheme: "https", Host: "mdpages.invalid"}

// Normalize canonicalizes a route skeleton into the final route pathname.
//
// The steps run in this exact order; later steps must not reintroduce what
// earlier steps removed:
//
//  1. trim surrounding whitespace
//  2. case-fold (Unicode fold, not plain ASCII lowering)
//  3. spaces to hyphens
//  4. underscores to hyphens
//  5. slugify each segment
//  6. URL-canonicalize "."/".." and percent escapes
//  7. slugify each segment again (URL parsing can decode characters the
//     first pass already stripped)
//  8. apply the trailing-slash policy
//
// The result is used verbatim as a route; callers never mutate it.
func Normalize(skeleton string, trailingSlash bool) string {
	p := strings.TrimSpace(skeleton)
	p = cases.Fold().String(p)
	p = strings.ReplaceAll(p, " ", "-")
	p = strings.ReplaceAll(p, "_", "-")
	p = slugifySegments(p)

	if ref, err := url.Parse(p); err == nil {
		p = dummyBase.ResolveReference(ref).Path
	}
	p = slugifySegments(p)

	if trailingSlash && !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// slugifySegments applies the slug transform to each non-empty "/"-separated
// segment, leaving the separator structure intact.
func slugifySegments(p string) string {
	segs := strings.Split(p, "/")
	for i, seg := range segs {
		if seg == "" {
			continue
		}
		segs[i] = slug.Segment(seg)
	}
	return strings.Join(segs, "/")
}
