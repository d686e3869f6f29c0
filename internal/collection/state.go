package collection

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownFilter is returned when a primary selector is not offered by the page.
var ErrUnknownFilter = errors.New("unknown filter")

// State owns one page's records and its active filter and search term. The
// visible list is never stored; every call to Visible recomputes it.
//
// A State is not safe for concurrent use.
type State[T any] struct {
	all    []T
	policy Policy[T]
	spec   FilterSpec
	term   string
}

// NewState creates a State over a private copy of all.
func NewState[T any](all []T, policy Policy[T]) *State[T] {
	return &State[T]{
		all:    slices.Clone(all),
		policy: policy,
		spec:   DefaultFilter(),
	}
}

// SetPrimaryFilter replaces the primary selector.
func (s *State[T]) SetPrimaryFilter(name string) error {
	if !s.policy.HasFilter(name) {
		return fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	s.spec.Primary = name
	return nil
}

// ToggleSecondaryTag adds tag to the active set, or removes it if present.
func (s *State[T]) ToggleSecondaryTag(tag string) {
	s.spec.Tags = s.spec.Tags.Toggle(s.policy.CanonicalTag(tag))
}

// SetSearchTerm replaces the search term.
func (s *State[T]) SetSearchTerm(term string) {
	s.term = term
}

// Reset clears the filter, tags and search term.
func (s *State[T]) Reset() {
	s.spec = DefaultFilter()
	s.term = ""
}

// Visible returns the records currently on screen.
func (s *State[T]) Visible() []T {
	return Select(s.all, s.policy, s.spec, s.term)
}

// All returns a copy of the loaded records in load order.
func (s *State[T]) All() []T { return slices.Clone(s.all) }

// Filter returns the active filter.
func (s *State[T]) Filter() FilterSpec { return s.spec }

// SearchTerm returns the active search term as entered.
func (s *State[T]) SearchTerm() string { return s.term }

// Policy returns the policy the state was created with.
func (s *State[T]) Policy() Policy[T] { return s.policy }

// Snapshot summarises the state for transport.
type Snapshot struct {
	Primary    string   `json:"primary"`
	Tags       []string `json:"tags"`
	Search     string   `json:"search"`
	Total      int      `json:"total"`
	Visible    int      `json:"visible"`
	Filters    []string `json:"filters"`
	Vocabulary []string `json:"vocabulary,omitempty"`
}

// Snapshot reports the active selection and counts.
func (s *State[T]) Snapshot() Snapshot {
	return Snapshot{
		Primary:    s.spec.Primary,
		Tags:       s.spec.Tags.Sorted(),
		Search:     s.term,
		Total:      len(s.all),
		Visible:    len(s.Visible()),
		Filters:    s.policy.FilterNames(),
		Vocabulary: s.policy.Vocabulary(s.all),
	}
}
