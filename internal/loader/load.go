package loader

import (
	"context"
	"encoding/json"
	"fmt"
)

// LoadJSON fetches ref and decodes it into a D. Any failure is a *LoadError.
func LoadJSON[D any](ctx context.Context, f Fetcher, ref string) (D, error) {
	var doc D
	data, err := f.Fetch(ctx, ref)
	if err != nil {
		return doc, &LoadError{Ref: ref, Cause: err}
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, &LoadError{Ref: ref, Cause: fmt.Errorf("parsing JSON: %w", err)}
	}
	return doc, nil
}

// Load fetches ref, decodes it and extracts the flat record list.
func Load[D, T any](ctx context.Context, f Fetcher, ref string, extract func(D) []T) ([]T, error) {
	doc, err := LoadJSON[D](ctx, f, ref)
	if err != nil {
		return nil, err
	}
	records := extract(doc)
	if records == nil {
		records = []T{}
	}
	return records, nil
}
