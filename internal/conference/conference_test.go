package conference

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	gocmp "github.com/google/go-cmp/cmp"

	"github.com/ziadkadry99/folio/internal/collection"
	"github.com/ziadkadry99/folio/internal/dates"
	"github.com/ziadkadry99/folio/internal/loader"
	"github.com/ziadkadry99/folio/internal/render"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func day(offset int) dates.Date {
	return dates.Of(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset))
}

func scenario() []Conference {
	return []Conference{
		{ID: "c", Acronym: "C", Type: "conference", SubmissionDate: day(-40), ConferenceDate: day(-5), Topics: []string{"Data Science"}},
		{ID: "b", Acronym: "B", Type: "workshop", SubmissionDate: day(60), ConferenceDate: day(120), Topics: []string{"Machine Learning"}},
		{ID: "a", Acronym: "A", Type: "conference", SubmissionDate: day(10), ConferenceDate: day(90), Topics: []string{"Artificial Intelligence"}, Location: "Kandy, Sri Lanka"},
	}
}

func keys(cs []Conference) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Key()
	}
	return out
}

func TestDefaultOrderOpenSoonFirst(t *testing.T) {
	got := collection.Select(scenario(), Policy(now), collection.DefaultFilter(), "")
	if diff := gocmp.Diff([]string{"a", "b", "c"}, keys(got)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	for _, c := range got {
		st := c.Status(now, 0)
		if st.DeadlineSoon != (c.ID == "a") {
			t.Errorf("%s: DeadlineSoon = %v", c.ID, st.DeadlineSoon)
		}
	}
}

func TestClosedOrderedByConferenceDate(t *testing.T) {
	all := []Conference{
		{ID: "late", SubmissionDate: day(-30), ConferenceDate: day(40)},
		{ID: "early", SubmissionDate: day(-10), ConferenceDate: day(-2)},
		{ID: "open", SubmissionDate: day(5), ConferenceDate: day(200)},
	}
	got := collection.Select(all, Policy(now), collection.DefaultFilter(), "")
	if diff := gocmp.Diff([]string{"open", "early", "late"}, keys(got)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name        string
		sub, conf   int
		soon        int
		wantSoon    bool
		wantPast    bool
		wantDaysSub int
	}{
		{"open soon", 10, 90, 30, true, false, 10},
		{"open later", 60, 120, 30, false, false, 60},
		{"custom threshold", 60, 120, 90, true, false, 60},
		{"closed upcoming", -3, 20, 30, false, false, -3},
		{"all over", -40, -5, 30, false, true, -40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Conference{SubmissionDate: day(tt.sub), ConferenceDate: day(tt.conf)}
			st := c.Status(now, tt.soon)
			if st.DeadlineSoon != tt.wantSoon || st.DeadlinePast != tt.wantPast {
				t.Errorf("Status = %+v", st)
			}
			if st.DaysToSubmission != tt.wantDaysSub {
				t.Errorf("DaysToSubmission = %d, want %d", st.DaysToSubmission, tt.wantDaysSub)
			}
		})
	}
}

func TestFiltersAndTopics(t *testing.T) {
	p := Policy(now)
	tests := []struct {
		spec collection.FilterSpec
		term string
		want []string
	}{
		{collection.FilterSpec{Primary: "workshop"}, "", []string{"b"}},
		{collection.FilterSpec{Primary: "open"}, "", []string{"a", "b"}},
		{collection.FilterSpec{Primary: "upcoming"}, "", []string{"a", "b"}},
		{collection.FilterSpec{Primary: "conference", Tags: collection.NewTagSet("Machine Learning")}, "", []string{}},
		{collection.FilterSpec{Primary: collection.All}, "kandy", []string{"a"}},
		{collection.FilterSpec{Primary: collection.All}, "data sci", []string{"c"}},
	}
	for _, tt := range tests {
		got := keys(collection.Select(scenario(), p, tt.spec, tt.term))
		if diff := gocmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%+v %q mismatch (-want +got):\n%s", tt.spec.Primary, tt.term, diff)
		}
	}

	s := collection.NewState(scenario(), p)
	s.ToggleSecondaryTag("AI")
	if diff := gocmp.Diff([]string{"a"}, keys(s.Visible())); diff != "" {
		t.Errorf("AI alias mismatch (-want +got):\n%s", diff)
	}
}

func TestRender(t *testing.T) {
	r := Renderer{Now: now}
	tree := r.Render(collection.Select(scenario(), Policy(now), collection.DefaultFilter(), ""))

	cards := tree.FindAll(render.KindCard)
	if len(cards) != 3 || cards[0].ID != "a" {
		t.Fatalf("cards = %d, first %q", len(cards), cards[0].ID)
	}
	if cards[0].Prop("class") != "deadline-soon" {
		t.Errorf("card a class = %q, want deadline-soon", cards[0].Prop("class"))
	}
	if cards[2].Prop("class") != "deadline-past" {
		t.Errorf("card c class = %q, want deadline-past", cards[2].Prop("class"))
	}
	if got := cards[0].TextContent(); !strings.Contains(got, "10 days left") {
		t.Errorf("card a text %q lacks countdown", got)
	}

	if !render.IsNoResults(r.Render(nil)) {
		t.Error("empty render should be the no-results placeholder")
	}
}

func TestLoad(t *testing.T) {
	f := &loader.FSFetcher{FS: fstest.MapFS{
		Resource: {Data: []byte(`{"conferences":[
			{"name":"Neural Information Processing Systems","acronym":"NeurIPS","type":"conference",
			 "location":"Vancouver","submissionDate":"2025-05-15","conferenceDate":"2025-12-10",
			 "topics":["Machine Learning"],"website":"https://neurips.cc"}
		]}`)},
	}}
	got, err := Load(context.Background(), f)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || got[0].Key() != "neurips" {
		t.Fatalf("got %+v", got)
	}
	if got[0].SubmissionDate.Display() != "May 15, 2025" {
		t.Errorf("submission = %s", got[0].SubmissionDate.Display())
	}
}
