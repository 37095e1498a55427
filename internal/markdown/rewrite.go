package markdown

import (
	"fmt"
	"regexp"

	"git.home.luguber.info/inful/mdpages/internal/config"
	"git.home.luguber.info/inful/mdpages/internal/routes"
)

// linkRe matches inline-style markdown links and image links; the target is
// the capture rewritten through the route resolver. Destinations containing
// ")" are not matched, same limitation as the source pattern this replaces.
var linkRe = regexp.MustCompile(`\[(?P<text>[^\]]*)\]\((?P<link>[^)]+)\)`)

// RewriteIndexLinks rewrites every markdown link target inside an index
// document onto the canonical route of the file it points at. External and
// non-content targets pass through per the route rewriter's rules.
//
// The first resolver failure aborts the whole rewrite: a link into a nested
// index is an authoring error the build must surface, not patch around.
func RewriteIndexLinks(opts *config.Options, indexFilePath string, body []byte) ([]byte, error) {
	var rewriteErr error

	out := linkRe.ReplaceAllFunc(body, func(m []byte) []byte {
		if rewriteErr != nil {
			return m
		}
		groups := linkRe.FindSubmatch(m)
		if len(groups) != 3 {
			return m
		}
		text, target := string(groups[1]), string(groups[2])

		resolved, err := routes.RewriteLink(opts, indexFilePath, target)
		if err != nil {
			rewriteErr = fmt.Errorf("rewrite link %q in %s: %w", target, indexFilePath, err)
			return m
		}
		return []byte(fmt.Sprintf("[%s](%s)", text, resolved))
	})
	if rewriteErr != nil {
		return nil, rewriteErr
	}
	return out, nil
}
