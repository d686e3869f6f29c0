package pages

import (
	"fmt"
	"strconv"

	"github.com/ziadkadry99/folio/internal/collection"
	"github.com/ziadkadry99/folio/internal/interact"
	"github.com/ziadkadry99/folio/internal/render"
)

// collectionView wraps a Controller with the page chrome: title, summary
// panel, filter and tag chips, and the hidden loading and error placeholders.
type collectionView[T any] struct {
	page    Page
	ctl     *interact.Controller[T]
	state   *collection.State[T]
	summary *render.Node
	entry   func(T) Entry
	// tagLabel decorates a tag chip; nil shows the tag as is.
	tagLabel func(tag string) string
}

func newCollectionView[T any](p Page, all []T, policy collection.Policy[T], renderFn func([]T) *render.Node, entry func(T) Entry) *collectionView[T] {
	state := collection.NewState(all, policy)
	return &collectionView[T]{
		page:  p,
		state: state,
		ctl:   interact.NewController(state, renderFn),
		entry: entry,
	}
}

func (v *collectionView[T]) Dispatch(ev interact.Event) error { return v.ctl.Dispatch(ev) }

func (v *collectionView[T]) Snapshot() collection.Snapshot { return v.ctl.Snapshot() }

func (v *collectionView[T]) Visible() []Entry { return v.entries(v.ctl.Visible()) }

func (v *collectionView[T]) All() []Entry { return v.entries(v.state.All()) }

func (v *collectionView[T]) entries(records []T) []Entry {
	out := make([]Entry, len(records))
	for i, r := range records {
		out[i] = v.entry(r)
	}
	return out
}

// Tree composes the page around the controller's latest render.
func (v *collectionView[T]) Tree() *render.Node {
	snap := v.ctl.Snapshot()
	return render.New(render.KindPage,
		render.Heading(1, v.page.Title),
		v.summary,
		filterChips(v.state.Policy(), snap.Primary),
		v.tagChips(snap),
		resultCount(snap),
		hidden(render.Loading(v.page.ContainerID)),
		hidden(render.Failure(v.page.ContainerID)),
		v.ctl.Tree(),
	).WithID("page-" + v.page.Name)
}

func filterChips[T any](policy collection.Policy[T], active string) *render.Node {
	g := render.Group(chip("All", "filter", collection.All, active == collection.All))
	for _, f := range policy.Filters {
		label := f.Label
		if label == "" {
			label = f.Name
		}
		g.Append(chip(label, "filter", f.Name, active == f.Name))
	}
	return g.WithID("filters").Set("role", "filters")
}

func (v *collectionView[T]) tagChips(snap collection.Snapshot) *render.Node {
	if len(snap.Vocabulary) == 0 {
		return nil
	}
	selected := collection.NewTagSet(snap.Tags...)
	g := render.Group().WithID("tags").Set("role", "tags")
	for _, tag := range snap.Vocabulary {
		label := tag
		if v.tagLabel != nil {
			label = v.tagLabel(tag)
		}
		g.Append(chip(label, "tag", tag, selected.Has(tag)))
	}
	return g
}

func chip(label, event, value string, active bool) *render.Node {
	n := render.Badge(label, "").Set("event", event).Set("value", value)
	if active {
		n.Set("class", "active").Set("pressed", "true")
	}
	return n
}

func resultCount(snap collection.Snapshot) *render.Node {
	return render.Text(fmt.Sprintf("Showing %d of %d", snap.Visible, snap.Total)).
		WithID("result-count").
		Set("visible", strconv.Itoa(snap.Visible))
}

func hidden(n *render.Node) *render.Node {
	return n.Set("hidden", "true")
}

// staticView is a page without a filterable collection.
type staticView struct {
	tree    *render.Node
	entries []Entry
}

func (v *staticView) Dispatch(ev interact.Event) error {
	return fmt.Errorf("%w: %s event", ErrNotInteractive, ev.Type)
}

func (v *staticView) Tree() *render.Node { return v.tree }

func (v *staticView) Snapshot() collection.Snapshot {
	return collection.Snapshot{
		Primary: collection.All,
		Tags:    []string{},
		Total:   len(v.entries),
		Visible: len(v.entries),
		Filters: []string{collection.All},
	}
}

func (v *staticView) Visible() []Entry { return v.entries }

func (v *staticView) All() []Entry { return v.entries }
