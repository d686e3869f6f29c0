// Package interact turns UI events into collection state transitions and
// keeps the rendered DisplayTree in step with the state.
package interact

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/folio/internal/collection"
	"github.com/ziadkadry99/folio/internal/render"
)

// EventType names a user interaction.
type EventType string

const (
	EventFilter EventType = "filter"
	EventTag    EventType = "tag"
	EventSearch EventType = "search"
	EventReset  EventType = "reset"
)

// ErrUnknownEvent is returned by Dispatch for an unrecognised event type.
var ErrUnknownEvent = errors.New("unknown event")

// Event is one interaction as received from a client.
type Event struct {
	Type  EventType `json:"type"`
	Value string    `json:"value,omitempty"`
}

// Session is a type-erased Controller, so pages with different record types
// can be driven through one interface.
type Session interface {
	Dispatch(ev Event) error
	Tree() *render.Node
	Snapshot() collection.Snapshot
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	onRender func(*render.Node)
}

// WithOnRender registers a hook called with every new tree, including the
// initial one.
func WithOnRender(fn func(*render.Node)) Option {
	return func(o *options) { o.onRender = fn }
}

// Controller owns a collection.State and re-renders after every transition.
// It must be used from a single goroutine.
type Controller[T any] struct {
	state  *collection.State[T]
	render func([]T) *render.Node
	tree   *render.Node
	opts   options
}

// NewController renders the initial view of state.
func NewController[T any](state *collection.State[T], renderFn func([]T) *render.Node, opts ...Option) *Controller[T] {
	c := &Controller[T]{state: state, render: renderFn}
	for _, opt := range opts {
		opt(&c.opts)
	}
	c.rerender()
	return c
}

func (c *Controller[T]) rerender() {
	c.tree = c.render(c.state.Visible())
	if c.opts.onRender != nil {
		c.opts.onRender(c.tree)
	}
}

// SetPrimaryFilter switches the primary selector. Unknown selectors leave the
// state and tree untouched.
func (c *Controller[T]) SetPrimaryFilter(name string) error {
	if err := c.state.SetPrimaryFilter(name); err != nil {
		return err
	}
	c.rerender()
	return nil
}

// ToggleSecondaryTag adds or removes a tag.
func (c *Controller[T]) ToggleSecondaryTag(tag string) {
	c.state.ToggleSecondaryTag(tag)
	c.rerender()
}

// SetSearchTerm replaces the search term.
func (c *Controller[T]) SetSearchTerm(term string) {
	c.state.SetSearchTerm(term)
	c.rerender()
}

// Reset clears filter, tags and search.
func (c *Controller[T]) Reset() {
	c.state.Reset()
	c.rerender()
}

// Dispatch applies ev.
func (c *Controller[T]) Dispatch(ev Event) error {
	switch ev.Type {
	case EventFilter:
		return c.SetPrimaryFilter(ev.Value)
	case EventTag:
		c.ToggleSecondaryTag(ev.Value)
	case EventSearch:
		c.SetSearchTerm(ev.Value)
	case EventReset:
		c.Reset()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	return nil
}

// Tree returns the most recent render.
func (c *Controller[T]) Tree() *render.Node { return c.tree }

// Visible returns the records currently rendered.
func (c *Controller[T]) Visible() []T { return c.state.Visible() }

// Snapshot reports the current selection.
func (c *Controller[T]) Snapshot() collection.Snapshot { return c.state.Snapshot() }

// Replay dispatches events in order and stops at the first error.
func Replay(s Session, events ...Event) error {
	for _, ev := range events {
		if err := s.Dispatch(ev); err != nil {
			return err
		}
	}
	return nil
}

// QueryEvents builds the events equivalent to a one-shot query: a primary
// filter, a set of tags, then a search term. Empty parts are skipped.
func QueryEvents(filter string, tags []string, search string) []Event {
	var events []Event
	if filter != "" {
		events = append(events, Event{Type: EventFilter, Value: filter})
	}
	for _, tag := range tags {
		if tag != "" {
			events = append(events, Event{Type: EventTag, Value: tag})
		}
	}
	if search != "" {
		events = append(events, Event{Type: EventSearch, Value: search})
	}
	return events
}
