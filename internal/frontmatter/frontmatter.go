// Package frontmatter splits and parses the YAML metadata block at the top
// of a content file.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter is returned when a document opens a frontmatter
// block but never closes it.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Attrs is the per-file metadata the build pipeline consumes. Title and
// Layout are pulled out because route/title derivation and layout validation
// read them; everything else lands in Extra untouched.
type Attrs struct {
	Title  string
	Layout string
	Extra  map[string]any
}

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a frontmatter delimiter, had is false
// and body is the full input. CRLF documents are handled.
func Split(content []byte) (frontmatter, body []byte, had bool, err error) {
	nl := "\n"
	if bytes.HasPrefix(content, []byte("---\r\n")) {
		nl = "\r\n"
	}

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		return []byte{}, content[start+len(open):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	fmEnd := start + idx + len(nl)
	bodyStart := start + idx + len(closeSeq)
	return content[start:fmEnd], content[bodyStart:], true, nil
}

// Parse decodes raw frontmatter (without delimiters) into Attrs.
func Parse(frontmatter []byte) (Attrs, error) {
	attrs := Attrs{Extra: map[string]any{}}
	if len(frontmatter) == 0 {
		return attrs, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(frontmatter, &fields); err != nil {
		return Attrs{}, fmt.Errorf("parse frontmatter: %w", err)
	}

	for key, val := range fields {
		switch key {
		case "title":
			if s, ok := val.(string); ok {
				attrs.Title = s
			}
		case "layout":
			if s, ok := val.(string); ok {
				attrs.Layout = s
			}
		default:
			attrs.Extra[key] = val
		}
	}
	return attrs, nil
}
