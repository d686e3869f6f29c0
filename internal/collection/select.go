package collection

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Select computes the visible records for the given filter and search term.
// It never modifies all and always returns a non-nil slice.
//
// A record is visible when it matches the primary selector (an unknown selector
// matches everything), shares at least one tag with spec.Tags (when non-empty),
// and, for a non-blank term, has a searchable field containing the term under
// Unicode case folding. The result is stably sorted by the policy.
func Select[T any](all []T, p Policy[T], spec FilterSpec, term string) []T {
	primary, hasPrimary := p.filter(spec.Primary)

	folder := cases.Fold()
	needle := folder.String(strings.TrimSpace(term))

	visible := make([]T, 0, len(all))
	for _, r := range all {
		if hasPrimary && primary.Match != nil && !primary.Match(r) {
			continue
		}
		if spec.Tags.Len() > 0 && (p.Tags == nil || !spec.Tags.Intersects(p.Tags(r))) {
			continue
		}
		if needle != "" && !matchesSearch(folder, p.Fields, r, needle) {
			continue
		}
		visible = append(visible, r)
	}

	slices.SortStableFunc(visible, p.compare)
	return visible
}

// Matches reports whether any field contains term, ignoring case. A blank term
// matches everything.
func Matches(fields []string, term string) bool {
	folder := cases.Fold()
	needle := folder.String(strings.TrimSpace(term))
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(folder.String(f), needle) {
			return true
		}
	}
	return false
}

func matchesSearch[T any](folder cases.Caser, fields func(T) []string, r T, needle string) bool {
	if fields == nil {
		return false
	}
	for _, f := range fields(r) {
		if strings.Contains(folder.String(f), needle) {
			return true
		}
	}
	return false
}
