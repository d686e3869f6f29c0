package collection

import "sort"

// TagSet is an immutable set of secondary tags. The zero value is empty.
type TagSet struct {
	m map[string]struct{}
}

// NewTagSet builds a set from the given tags.
func NewTagSet(tags ...string) TagSet {
	if len(tags) == 0 {
		return TagSet{}
	}
	m := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		m[t] = struct{}{}
	}
	return TagSet{m: m}
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int { return len(s.m) }

// Has reports whether tag is in the set.
func (s TagSet) Has(tag string) bool {
	_, ok := s.m[tag]
	return ok
}

// Toggle returns a copy of the set with tag added if absent or removed if present.
func (s TagSet) Toggle(tag string) TagSet {
	m := make(map[string]struct{}, len(s.m)+1)
	for t := range s.m {
		m[t] = struct{}{}
	}
	if _, ok := m[tag]; ok {
		delete(m, tag)
	} else {
		m[tag] = struct{}{}
	}
	if len(m) == 0 {
		return TagSet{}
	}
	return TagSet{m: m}
}

// Intersects reports whether any of tags is in the set.
func (s TagSet) Intersects(tags []string) bool {
	for _, t := range tags {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s.m))
	for t := range s.m {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// FilterSpec is the active filter: one primary selector plus a tag set.
type FilterSpec struct {
	Primary string
	Tags    TagSet
}

// DefaultFilter selects everything.
func DefaultFilter() FilterSpec {
	return FilterSpec{Primary: All}
}
