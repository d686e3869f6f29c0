package student

import (
	"context"
	"testing"
	"testing/fstest"

	gocmp "github.com/google/go-cmp/cmp"

	"github.com/ziadkadry99/folio/internal/collection"
	"github.com/ziadkadry99/folio/internal/loader"
	"github.com/ziadkadry99/folio/internal/render"
)

const studentsJSON = `{"students":{
	"undergraduate":[
		{"id":"zoe","name":"Zoë Perera","specialization":"Computer Vision","researchAreas":["OCR"],"bio":"Works on scripts."},
		{"id":"amal","name":"amal Silva","specialization":"NLP","researchAreas":["Parsing","Tagging","Morphology","Speech","Translation"],
		 "projects":[{"title":"Sinhala Tagger","description":"A POS tagger"}]}
	],
	"postgraduate":[
		{"id":"kasun","name":"Kasun Fernando","featured":true,"specialization":"Data Science","email":"kasun@example.org"}
	],
	"summary":{"totalStudents":3,"undergraduate":2,"postgraduate":1,"activeProjects":4}
}}`

func load(t *testing.T) *Roster {
	t.Helper()
	r, err := Load(context.Background(), &loader.FSFetcher{FS: fstest.MapFS{Resource: {Data: []byte(studentsJSON)}}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return r
}

func ids(ss []Student) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.ID
	}
	return out
}

func TestLoadFlattensLevels(t *testing.T) {
	r := load(t)
	var levels []string
	for _, s := range r.Students {
		levels = append(levels, s.ID+":"+s.Level)
	}
	want := []string{"zoe:undergraduate", "amal:undergraduate", "kasun:postgraduate"}
	if diff := gocmp.Diff(want, levels); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if r.Summary.ActiveProjects != 4 {
		t.Errorf("summary = %+v", r.Summary)
	}
}

func TestOrderFeaturedThenCollatedName(t *testing.T) {
	r := load(t)
	got := collection.Select(r.Students, Policy(), collection.DefaultFilter(), "")
	// Collation ignores case, so "amal" sorts before "Zoë".
	if diff := gocmp.Diff([]string{"kasun", "amal", "zoe"}, ids(got)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestFiltersAndSearch(t *testing.T) {
	r := load(t)
	tests := []struct {
		primary, term string
		want          []string
	}{
		{LevelPostgraduate, "", []string{"kasun"}},
		{LevelUndergraduate, "", []string{"amal", "zoe"}},
		{collection.All, "pos tagger", []string{"amal"}},
		{collection.All, "scripts", []string{"zoe"}},
		{LevelPostgraduate, "vision", []string{}},
	}
	for _, tt := range tests {
		got := collection.Select(r.Students, Policy(), collection.FilterSpec{Primary: tt.primary}, tt.term)
		if diff := gocmp.Diff(tt.want, ids(got)); diff != "" {
			t.Errorf("%s/%q mismatch (-want +got):\n%s", tt.primary, tt.term, diff)
		}
	}
}

func TestCardResearchAreasTruncated(t *testing.T) {
	r := load(t)
	card := Card(r.Students[1])
	var badges []string
	for _, b := range card.FindAll(render.KindBadge) {
		badges = append(badges, b.Text)
	}
	want := []string{"Undergraduate", "Parsing", "Tagging", "Morphology", "+2 more"}
	if diff := gocmp.Diff(want, badges); diff != "" {
		t.Errorf("badges mismatch (-want +got):\n%s", diff)
	}
	for _, l := range card.FindAll(render.KindLink) {
		if l.Prop("href") == "mailto:" {
			t.Error("empty email should not produce a mail link")
		}
	}

	img := Card(r.Students[0]).FindAll(render.KindImage)[0]
	if img.Prop("fallback") != defaultAvatar {
		t.Errorf("fallback = %q", img.Prop("fallback"))
	}
}

func TestRenderSummary(t *testing.T) {
	n := RenderSummary(Summary{TotalStudents: 3, Undergraduate: 2, Postgraduate: 1, ActiveProjects: 4})
	stats := n.FindAll(render.KindStat)
	if len(stats) != 4 || stats[3].Text != "4" || stats[3].Prop("label") != "Active Projects" {
		t.Errorf("stats = %+v", stats)
	}
}
