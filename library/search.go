package library

import (
	"sort"
	"strings"
)

// SearchMode selects which field SearchBooks matches against.
type SearchMode string

const (
	SearchByTitle  SearchMode = "title"
	SearchByAuthor SearchMode = "author"
	SearchBoth     SearchMode = "both"
)

// SearchBooks scans the shelf for books whose title and/or author contains
// the query, case-insensitively. Books on loan are not searchable: the call
// answers "can a patron check this out", not "does this title exist".
//
// An empty or whitespace-only query returns no results. So does an unknown
// mode; the soft failure is intentional API forgiveness, kept as is.
func (l *Library) SearchBooks(query string, mode SearchMode) []*Book {
	results := []*Book{}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return results
	}

	for _, b := range l.books {
		var match bool
		switch mode {
		case SearchByTitle:
			match = strings.Contains(strings.ToLower(b.Title), query)
		case SearchByAuthor:
			match = strings.Contains(strings.ToLower(b.Author), query)
		case SearchBoth:
			match = strings.Contains(strings.ToLower(b.Title), query) ||
				strings.Contains(strings.ToLower(b.Author), query)
		}
		if match {
			results = append(results, b)
		}
	}
	return results
}

// BooksByCategory returns the shelved books whose category equals the query
// case-insensitively. The match is exact, not substring. A blank query
// returns no results.
func (l *Library) BooksByCategory(category string) []*Book {
	results := []*Book{}

	category = strings.TrimSpace(category)
	if category == "" {
		return results
	}

	for _, b := range l.books {
		if strings.EqualFold(b.Category, category) {
			results = append(results, b)
		}
	}
	return results
}

// Categories returns the distinct categories present on the shelf, sorted.
// Categories of books currently on loan are not visible, mirroring search.
func (l *Library) Categories() []string {
	seen := map[string]struct{}{}
	var categories []string
	for _, b := range l.books {
		if _, ok := seen[b.Category]; !ok {
			seen[b.Category] = struct{}{}
			categories = append(categories, b.Category)
		}
	}
	sort.Strings(categories)
	return categories
}
