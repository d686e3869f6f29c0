package loader

import (
	"errors"
	"fmt"
)

// ErrNoItems is the cause of a composite load whose index listed items but
// none of them could be loaded.
var ErrNoItems = errors.New("no items could be loaded")

// LoadError is a fetch or parse failure that is fatal for the page.
type LoadError struct {
	Ref   string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Ref, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// ItemLoadError is the failure of one per-item fetch in a composite load.
// The item is dropped and the page continues.
type ItemLoadError struct {
	ID    string
	Ref   string
	Cause error
}

func (e *ItemLoadError) Error() string {
	return fmt.Sprintf("loading item %s (%s): %v", e.ID, e.Ref, e.Cause)
}

func (e *ItemLoadError) Unwrap() error { return e.Cause }

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}
