package routes

import "fmt"

// NestedIndexError reports a content file literally named "index" outside the
// pages root. An index file means "this directory's own page"; nesting one
// would give the directory two competing sources for a single route, so the
// author has to rename the file.
type NestedIndexError struct {
	Path string
}

func (e *NestedIndexError) Error() string {
	return fmt.Sprintf("index file outside the pages root: %s (rename it; \"index\" is reserved for the root page)", e.Path)
}
