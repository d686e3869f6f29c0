// Package collection implements the filter/sort/search pipeline shared by every
// page of the site. Nothing in this package knows how records are rendered.
package collection

import (
	"slices"
	"sort"
)

// All is the primary selector that matches every record.
const All = "all"

// Predicate reports whether a record matches some condition.
type Predicate[T any] func(T) bool

// NamedFilter is one primary selector offered by a page, e.g. "open" or "workshop".
type NamedFilter[T any] struct {
	Name  string
	Label string
	Match Predicate[T]
}

// Policy describes how one kind of record is filtered, searched and ordered.
type Policy[T any] struct {
	// Filters are the primary selectors in display order. "all" is implicit.
	Filters []NamedFilter[T]

	// Tags returns the values of the secondary (multi-valued) dimension.
	// Nil means the page has no tag filter.
	Tags func(T) []string

	// TagAliases maps short chip labels to the canonical tag value.
	TagAliases map[string]string

	// Fields returns the free-text values searched by SetSearchTerm.
	Fields func(T) []string

	// Priority puts matching records ahead of non-matching ones. Nil means
	// every record is in the same bucket.
	Priority Predicate[T]

	// Compare orders records inside a priority bucket. Nil keeps insertion order.
	Compare func(a, b T) int
}

// HasFilter reports whether name is a known primary selector.
func (p Policy[T]) HasFilter(name string) bool {
	if name == All {
		return true
	}
	_, ok := p.filter(name)
	return ok
}

// FilterNames returns "all" followed by the page's selectors in display order.
func (p Policy[T]) FilterNames() []string {
	names := make([]string, 0, len(p.Filters)+1)
	names = append(names, All)
	for _, f := range p.Filters {
		names = append(names, f.Name)
	}
	return names
}

// CanonicalTag resolves a chip label to the tag value stored on records.
func (p Policy[T]) CanonicalTag(tag string) string {
	if canonical, ok := p.TagAliases[tag]; ok {
		return canonical
	}
	return tag
}

// Vocabulary returns the sorted, de-duplicated union of tags across records.
func (p Policy[T]) Vocabulary(records []T) []string {
	if p.Tags == nil {
		return nil
	}
	seen := make(map[string]struct{})
	for _, r := range records {
		for _, tag := range p.Tags(r) {
			seen[tag] = struct{}{}
		}
	}
	vocab := make([]string, 0, len(seen))
	for tag := range seen {
		vocab = append(vocab, tag)
	}
	sort.Strings(vocab)
	return vocab
}

func (p Policy[T]) filter(name string) (NamedFilter[T], bool) {
	i := slices.IndexFunc(p.Filters, func(f NamedFilter[T]) bool { return f.Name == name })
	if i < 0 {
		return NamedFilter[T]{}, false
	}
	return p.Filters[i], true
}

// compare is the full ordering: priority bucket first, then Compare.
func (p Policy[T]) compare(a, b T) int {
	if p.Priority != nil {
		pa, pb := p.Priority(a), p.Priority(b)
		switch {
		case pa && !pb:
			return -1
		case !pa && pb:
			return 1
		}
	}
	if p.Compare != nil {
		return p.Compare(a, b)
	}
	return 0
}
