// Package search finds query matches in a document and cycles through them.
package search

import (
	"strings"

	"scribe/internal/document"
	"scribe/internal/domain"
)

// Options tune how matches are found
type Options struct {
	IgnoreCase bool
}

// Find returns the leftmost match of query on every line that contains it,
// in document order. An empty query matches nothing.
func Find(query string, doc *document.Document, opts Options) []domain.Coordinates {
	if query == "" || doc == nil {
		return nil
	}

	var matches []domain.Coordinates
	for row, line := range doc.Lines() {
		if col := index(line, query, opts.IgnoreCase); col >= 0 {
			matches = append(matches, domain.NewCoordinates(col, row))
		}
	}
	return matches
}

func index(line, query string, ignoreCase bool) int {
	if !ignoreCase {
		return strings.Index(line, query)
	}
	for i := 0; i+len(query) <= len(line); i++ {
		if strings.EqualFold(line[i:i+len(query)], query) {
			return i
		}
	}
	return -1
}
