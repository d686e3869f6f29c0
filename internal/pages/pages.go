// Package pages ties each site page to its loader, policy and renderer, and
// exposes them behind one type-erased View so the builder, the HTTP server,
// the query command and the MCP tools can drive any page the same way.
package pages

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/interact"
	"github.com/ziadkadry99/folio/internal/loader"
	"github.com/ziadkadry99/folio/internal/render"
)

var (
	// ErrUnknownPage is returned when a page name is not registered.
	ErrUnknownPage = errors.New("unknown page")
	// ErrNotInteractive is returned when an event is sent to a page without
	// a filterable collection.
	ErrNotInteractive = errors.New("page has no filterable collection")
)

// Env carries what a page needs to load and render.
type Env struct {
	Fetcher          loader.Fetcher
	Now              func() time.Time
	DeadlineSoonDays int
	Concurrency      int
	Logger           *zap.Logger
	OnProgress       loader.ProgressFunc
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e Env) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// Entry summarises one record for listings and the search index.
type Entry struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary,omitempty"`
	Path    string `json:"path"`
	Content string `json:"content,omitempty"`
}

// View is an opened page.
type View interface {
	interact.Session
	// Visible summarises the records currently shown.
	Visible() []Entry
	// All summarises every loaded record in load order.
	All() []Entry
}

// Page describes one page of the site.
type Page struct {
	Name        string
	Title       string
	Path        string
	ContainerID string
	Resource    string
	// Interactive pages accept filter, tag and search events.
	Interactive bool

	open func(ctx context.Context, env Env, p Page) (View, error)
}

// Open loads the page's data and returns its initial view.
func (p Page) Open(ctx context.Context, env Env) (View, error) {
	v, err := p.open(ctx, env, p)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", p.Name, err)
	}
	return v, nil
}

// FailedTree is what a page shows when its data could not be loaded: the
// error placeholder visible and no collection.
func (p Page) FailedTree() *render.Node {
	return render.New(render.KindPage,
		render.Heading(1, p.Title),
		hidden(render.Loading(p.ContainerID)),
		render.Failure(p.ContainerID),
	).WithID("page-" + p.Name)
}

// All returns every registered page in navigation order.
func All() []Page {
	return []Page{
		{Name: "home", Title: "Home", Path: "index.html", ContainerID: biographyContainer, Resource: biographyResource, open: openHome},
		{Name: "projects", Title: "Research Projects", Path: "projects.html", ContainerID: projectContainer, Resource: projectIndex, Interactive: true, open: openProjects},
		{Name: "students", Title: "Students", Path: "students.html", ContainerID: studentContainer, Resource: studentResource, Interactive: true, open: openStudents},
		{Name: "teaching", Title: "Teaching", Path: "teaching.html", ContainerID: teachingContainer, Resource: teachingResource, Interactive: true, open: openTeaching},
		{Name: "conferences", Title: "Conferences & Deadlines", Path: "conferences.html", ContainerID: conferenceContainer, Resource: conferenceResource, Interactive: true, open: openConferences},
	}
}

// Names returns the registered page names in navigation order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}
	return names
}

// Lookup finds a page by name.
func Lookup(name string) (Page, error) {
	for _, p := range All() {
		if p.Name == name {
			return p, nil
		}
	}
	return Page{}, fmt.Errorf("%w: %q", ErrUnknownPage, name)
}
