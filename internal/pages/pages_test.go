package pages

import (
	"context"
	"errors"
	"testing"
	"time"

	gocmp "github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ziadkadry99/folio/internal/interact"
	"github.com/ziadkadry99/folio/internal/loader"
	"github.com/ziadkadry99/folio/internal/render"
)

const siteDir = "../../testdata/site"

func testEnv() Env {
	return Env{
		Fetcher: loader.NewFSFetcher(siteDir),
		Now:     func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) },
	}
}

func open(t *testing.T, name string, env Env) View {
	t.Helper()
	p, err := Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%q): %v", name, err)
	}
	v, err := p.Open(context.Background(), env)
	if err != nil {
		t.Fatalf("Open(%q): %v", name, err)
	}
	return v
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestLookup(t *testing.T) {
	if diff := gocmp.Diff([]string{"home", "projects", "students", "teaching", "conferences"}, Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if _, err := Lookup("blog"); !errors.Is(err, ErrUnknownPage) {
		t.Errorf("Lookup(blog) error = %v, want ErrUnknownPage", err)
	}
}

func TestConferencesPage(t *testing.T) {
	v := open(t, "conferences", testEnv())

	if diff := gocmp.Diff([]string{"acl", "neurips", "cvpr-ws", "icter"}, ids(v.Visible())); diff != "" {
		t.Errorf("initial order mismatch (-want +got):\n%s", diff)
	}

	if err := v.Dispatch(interact.Event{Type: interact.EventFilter, Value: "workshop"}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if diff := gocmp.Diff([]string{"cvpr-ws"}, ids(v.Visible())); diff != "" {
		t.Errorf("workshops mismatch (-want +got):\n%s", diff)
	}

	tree := v.Tree()
	var active []string
	for _, b := range tree.Find("filters").Children {
		if b.Prop("pressed") == "true" {
			active = append(active, b.Prop("value"))
		}
	}
	if diff := gocmp.Diff([]string{"workshop"}, active); diff != "" {
		t.Errorf("active chips mismatch (-want +got):\n%s", diff)
	}
	if got := tree.Find("result-count").Text; got != "Showing 1 of 4" {
		t.Errorf("result count = %q", got)
	}

	if err := v.Dispatch(interact.Event{Type: interact.EventFilter, Value: "keynote"}); err == nil {
		t.Error("unknown filter should fail")
	}

	_ = v.Dispatch(interact.Event{Type: interact.EventReset})
	_ = v.Dispatch(interact.Event{Type: interact.EventTag, Value: "AI"})
	if diff := gocmp.Diff([]string{"acl", "neurips"}, ids(v.Visible())); diff != "" {
		t.Errorf("AI topic mismatch (-want +got):\n%s", diff)
	}

	if _, err := render.HTML(v.Tree()); err != nil {
		t.Errorf("HTML: %v", err)
	}
}

func TestProjectsPageSkipsBrokenItems(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	env := testEnv()
	env.Logger = zap.New(core)

	v := open(t, "projects", env)
	if diff := gocmp.Diff([]string{"ocr", "qa"}, ids(v.All())); diff != "" {
		t.Errorf("projects mismatch (-want +got):\n%s", diff)
	}
	if logs.Len() != 1 {
		t.Errorf("warnings = %d, want 1", logs.Len())
	}
	if got := v.Visible()[0].Path; got != "projects/ocr.html" {
		t.Errorf("path = %q", got)
	}

	_ = v.Dispatch(interact.Event{Type: interact.EventSearch, Value: "tamil"})
	if diff := gocmp.Diff([]string{"qa"}, ids(v.Visible())); diff != "" {
		t.Errorf("search mismatch (-want +got):\n%s", diff)
	}
}

func TestTeachingTagLabels(t *testing.T) {
	v := open(t, "teaching", testEnv())
	tags := v.Tree().Find("tags")
	if tags == nil {
		t.Fatal("no tag chips")
	}
	var labels []string
	for _, c := range tags.Children {
		labels = append(labels, c.Text)
	}
	want := []string{"Big Data (1)", "Machine Learning (1)", "Programming (1)"}
	if diff := gocmp.Diff(want, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	if v.Tree().Find("summary-stats") == nil {
		t.Error("summary panel missing")
	}
}

func TestStudentsPage(t *testing.T) {
	v := open(t, "students", testEnv())
	if diff := gocmp.Diff([]string{"kasun", "amal", "zoe"}, ids(v.Visible())); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if v.Tree().Find("tags") != nil {
		t.Error("students have no tag dimension")
	}
}

func TestHomeIsStatic(t *testing.T) {
	v := open(t, "home", testEnv())
	if err := v.Dispatch(interact.Event{Type: interact.EventSearch, Value: "x"}); !errors.Is(err, ErrNotInteractive) {
		t.Errorf("Dispatch error = %v, want ErrNotInteractive", err)
	}
	if got := len(v.All()); got != 5 {
		t.Errorf("entries = %d, want 5", got)
	}
	if v.Tree().Find("content") == nil {
		t.Error("content container missing")
	}
}

func TestOpenFailure(t *testing.T) {
	env := testEnv()
	env.Fetcher = loader.NewFSFetcher(t.TempDir())
	p, _ := Lookup("students")
	_, err := p.Open(context.Background(), env)
	var le *loader.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want *loader.LoadError", err)
	}

	tree := p.FailedTree()
	var failure *render.Node
	for _, n := range tree.FindAll(render.KindPlaceholder) {
		if n.Prop("name") == render.PlaceholderError {
			failure = n
		}
	}
	if failure == nil || failure.Prop("hidden") != "" {
		t.Errorf("error placeholder = %+v, want visible", failure)
	}
}

func TestProjectDetails(t *testing.T) {
	details, err := ProjectDetails(context.Background(), testEnv())
	if err != nil {
		t.Fatalf("ProjectDetails: %v", err)
	}
	var paths []string
	for _, d := range details {
		paths = append(paths, d.Path)
	}
	if diff := gocmp.Diff([]string{"projects/ocr.html", "projects/qa.html"}, paths); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
	if _, err := render.HTML(details[0].Tree); err != nil {
		t.Errorf("HTML: %v", err)
	}

	if _, err := ProjectDetail(context.Background(), testEnv(), "missing"); err == nil {
		t.Error("missing project should fail")
	}
}
