package view

import (
	"strings"
)

// PageSize is fixed across every screen.
const PageSize = 5

// ListController derives the visible page from a collection given the
// current search text and page number.
type ListController[T any] struct {
	col    *Collection[T]
	match  func(T, string) bool
	search string
	page   int
}

func NewListController[T any](col *Collection[T], match func(T, string) bool) *ListController[T] {
	return &ListController[T]{col: col, match: match, page: 1}
}

// SetSearch resets the page so a narrower filter can't leave the user on
// an out-of-range page.
func (l *ListController[T]) SetSearch(search string) {
	l.search = search
	l.page = 1
}

func (l *ListController[T]) Search() string {
	return l.search
}

func (l *ListController[T]) Page() int {
	return l.page
}

// Filtered preserves fetch order.
func (l *ListController[T]) Filtered() []T {
	items := l.col.Items()
	if l.search == "" {
		return items
	}
	var out []T
	for _, item := range items {
		if l.match(item, l.search) {
			out = append(out, item)
		}
	}
	return out
}

func (l *ListController[T]) TotalPages() int {
	return (len(l.Filtered()) + PageSize - 1) / PageSize
}

// Visible returns filtered[(page-1)*PageSize : page*PageSize].
func (l *ListController[T]) Visible() []T {
	filtered := l.Filtered()
	start := (l.page - 1) * PageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// NextPage and PrevPage clamp at the boundaries; navigation never wraps.
func (l *ListController[T]) NextPage() {
	if l.page < l.TotalPages() {
		l.page++
	}
}

func (l *ListController[T]) PrevPage() {
	if l.page > 1 {
		l.page--
	}
}

// MatchAny builds a predicate matching when any designated field contains
// the search text, case-insensitively. Absent optional fields read as
// empty strings and simply never match.
func MatchAny[T any](fields ...func(T) string) func(T, string) bool {
	return func(item T, search string) bool {
		needle := strings.ToLower(search)
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), needle) {
				return true
			}
		}
		return false
	}
}
