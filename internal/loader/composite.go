package loader

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProgressFunc is called after each item settles, from the worker goroutine.
type ProgressFunc func(done, total int, id string)

// ItemSpec describes how index entries map to per-item resources.
type ItemSpec[E, T any] struct {
	// ID identifies the entry in logs and errors.
	ID func(E) string
	// Ref is the resource holding the entry's record.
	Ref func(E) string
	// Merge copies index-level fields (such as a featured flag) into the
	// decoded record. Optional.
	Merge func(E, *T)
}

// GatherOptions tunes a composite load.
type GatherOptions struct {
	// Concurrency bounds in-flight item fetches. Values below 1 mean 4.
	Concurrency int
	Logger      *zap.Logger
	OnProgress  ProgressFunc
}

// GatherResult holds the records that loaded, in index order, and the
// failures that were dropped.
type GatherResult[T any] struct {
	Items    []T
	Failures []*ItemLoadError
}

// Gather fetches one resource per entry concurrently and keeps every success
// in index order. A failing item is logged and dropped. If entries is
// non-empty and every item fails, Gather returns a *LoadError wrapping
// ErrNoItems. Cancelling ctx fails the whole load.
func Gather[E, T any](ctx context.Context, f Fetcher, indexRef string, entries []E, spec ItemSpec[E, T], opts GatherOptions) (*GatherResult[T], error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := opts.Concurrency
	if limit < 1 {
		limit = 4
	}

	total := len(entries)
	loaded := make([]*T, total)
	failed := make([]*ItemLoadError, total)
	var settled atomic.Int64

	var g errgroup.Group
	g.SetLimit(limit)
	for i, entry := range entries {
		g.Go(func() error {
			id, ref := spec.ID(entry), spec.Ref(entry)
			defer func() {
				if opts.OnProgress != nil {
					opts.OnProgress(int(settled.Add(1)), total, id)
				}
			}()

			item, err := LoadJSON[T](ctx, f, ref)
			if err != nil {
				failed[i] = &ItemLoadError{ID: id, Ref: ref, Cause: err}
				logger.Warn("item load failed, skipping",
					zap.String("index", indexRef),
					zap.String("id", id),
					zap.String("ref", ref),
					zap.Error(err))
				return nil
			}
			if spec.Merge != nil {
				spec.Merge(entry, &item)
			}
			loaded[i] = &item
			return nil
		})
	}
	// Workers record their own outcome and never return an error.
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Ref: indexRef, Cause: err}
	}

	res := &GatherResult[T]{Items: make([]T, 0, total)}
	for i := range entries {
		if loaded[i] != nil {
			res.Items = append(res.Items, *loaded[i])
		}
		if failed[i] != nil {
			res.Failures = append(res.Failures, failed[i])
		}
	}
	if total > 0 && len(res.Items) == 0 {
		return nil, &LoadError{
			Ref:   indexRef,
			Cause: fmt.Errorf("%w: all %d items failed", ErrNoItems, total),
		}
	}
	return res, nil
}

// LoadComposite loads an index resource, then gathers the items it lists.
// Failure to load the index is fatal.
func LoadComposite[I, E, T any](ctx context.Context, f Fetcher, indexRef string, entries func(I) []E, spec ItemSpec[E, T], opts GatherOptions) (*GatherResult[T], error) {
	index, err := LoadJSON[I](ctx, f, indexRef)
	if err != nil {
		return nil, err
	}
	return Gather(ctx, f, indexRef, entries(index), spec, opts)
}
