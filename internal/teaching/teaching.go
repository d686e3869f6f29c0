// Package teaching models the course history grouped by student intake.
package teaching

import (
	"cmp"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ziadkadry99/folio/internal/collection"
	"github.com/ziadkadry99/folio/internal/loader"
	"github.com/ziadkadry99/folio/internal/render"
)

const (
	Resource    = "teaching.json"
	ContainerID = "courses-container"

	LevelUndergraduate = "Undergraduate"
	LevelPostgraduate  = "Postgraduate"
	RoleMainExaminer   = "Main Examiner"
	RoleModerator      = "Moderator"
)

// Course is one module taught to one intake.
type Course struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Role     string `json:"role"`
	Level    string `json:"level"`
	Degree   string `json:"degree"`
	Intake   string `json:"intake"`
	Semester string `json:"semester"`
}

// Key identifies the course offering.
func (c Course) Key() string {
	return strings.ToLower(c.Code + "-" + c.Intake + "-" + c.Semester)
}

// IntakeNumber parses "In23" as 23. Unparseable intakes give 0.
func IntakeNumber(intake string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(intake), "In"))
	return n
}

// SemesterNumber parses "S2" as 2. Unparseable semesters give 0.
func SemesterNumber(semester string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(semester), "S"))
	return n
}

// Summary holds the headline teaching numbers.
type Summary struct {
	TotalCourses    int      `json:"totalCourses"`
	YearsOfTeaching int      `json:"yearsOfTeaching"`
	Degrees         []string `json:"degrees"`
	Roles           []string `json:"roles"`
}

// Category describes one course category chip.
type Category struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// Document is the layout of teaching.json.
type Document struct {
	Teaching struct {
		Courses    []Course            `json:"courses"`
		Summary    Summary             `json:"summary"`
		Categories map[string]Category `json:"categories"`
	} `json:"teaching"`
}

// Record is the loaded teaching history.
type Record struct {
	Courses    []Course
	Summary    Summary
	Categories map[string]Category
}

// CategoryNames returns the category keys in name order.
func (r *Record) CategoryNames() []string {
	names := make([]string, 0, len(r.Categories))
	for name := range r.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads teaching.json.
func Load(ctx context.Context, f loader.Fetcher) (*Record, error) {
	doc, err := loader.LoadJSON[Document](ctx, f, Resource)
	if err != nil {
		return nil, err
	}
	courses := doc.Teaching.Courses
	if courses == nil {
		courses = []Course{}
	}
	return &Record{
		Courses:    courses,
		Summary:    doc.Teaching.Summary,
		Categories: doc.Teaching.Categories,
	}, nil
}

// Policy filters courses by level or role and by category; newest intake
// first, then latest semester.
func Policy() collection.Policy[Course] {
	return collection.Policy[Course]{
		Filters: []collection.NamedFilter[Course]{
			{Name: "undergraduate", Label: "Undergraduate", Match: func(c Course) bool { return c.Level == LevelUndergraduate }},
			{Name: "postgraduate", Label: "Postgraduate", Match: func(c Course) bool { return c.Level == LevelPostgraduate }},
			{Name: "main_examiner", Label: "Main Examiner", Match: func(c Course) bool { return c.Role == RoleMainExaminer }},
			{Name: "moderator", Label: "Moderator", Match: func(c Course) bool { return c.Role == RoleModerator }},
		},
		Tags: func(c Course) []string { return []string{c.Category} },
		Fields: func(c Course) []string {
			return []string{c.Name, c.Code, c.Degree, c.Category, c.Intake}
		},
		Compare: func(a, b Course) int {
			if n := cmp.Compare(IntakeNumber(b.Intake), IntakeNumber(a.Intake)); n != 0 {
				return n
			}
			return cmp.Compare(SemesterNumber(b.Semester), SemesterNumber(a.Semester))
		},
	}
}

// Group is the courses of one intake.
type Group struct {
	Intake  string
	Courses []Course
}

// GroupByIntake splits visible into runs sharing an intake. Intakes appear in
// the order they first occur, which for sorted input is newest first.
func GroupByIntake(visible []Course) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, c := range visible {
		i, ok := index[c.Intake]
		if !ok {
			i = len(groups)
			index[c.Intake] = i
			groups = append(groups, Group{Intake: c.Intake})
		}
		groups[i].Courses = append(groups[i].Courses, c)
	}
	return groups
}

// Render returns one section per intake, each holding its course cards.
func Render(visible []Course) *render.Node {
	groups := GroupByIntake(visible)
	sections := make([]*render.Node, 0, len(groups))
	for _, g := range groups {
		cards := make([]*render.Node, 0, len(g.Courses))
		for _, c := range g.Courses {
			cards = append(cards, Card(c))
		}
		sections = append(sections, render.Section(
			fmt.Sprintf("Intake %s (20%02d)", g.Intake, IntakeNumber(g.Intake)),
			render.Badge(fmt.Sprintf("%d courses", len(g.Courses)), "blue"),
			render.Group(cards...),
		).WithID("intake-"+strings.ToLower(g.Intake)))
	}
	return render.Collection(ContainerID, sections)
}

var roleTones = map[string]string{
	RoleMainExaminer: "green",
	RoleModerator:    "blue",
	"Co Examiner":    "yellow",
	"Evaluator":      "purple",
}

// Card renders one course.
func Card(c Course) *render.Node {
	tone, ok := roleTones[c.Role]
	if !ok {
		tone = "gray"
	}
	return render.Card(c.Key(),
		render.Heading(4, c.Code),
		render.Text(c.Category).Set("role", "category"),
		render.Badge(c.Role, tone),
		render.Heading(5, c.Name),
		render.Group(render.Text(c.Level), render.Text(c.Semester)),
		render.Text("Program: "+c.Degree),
	)
}

// RenderSummary renders the teaching overview panel.
func RenderSummary(s Summary) *render.Node {
	degrees := render.Group()
	for _, d := range s.Degrees {
		degrees.Append(render.Badge(d, "blue"))
	}
	roles := render.Group()
	for _, r := range s.Roles {
		roles.Append(render.Badge(r, "green"))
	}
	return render.Section("Teaching Overview",
		render.Group(
			render.Stat(strconv.Itoa(s.TotalCourses)+"+", "Total Courses"),
			render.Stat(strconv.Itoa(s.YearsOfTeaching), "Years Experience"),
			render.Stat(strconv.Itoa(len(s.Degrees)), "Degree Programs"),
			render.Stat(strconv.Itoa(len(s.Roles)), "Teaching Roles"),
		),
		render.Heading(4, "Degree Programs"), degrees,
		render.Heading(4, "Teaching Roles"), roles,
	).WithID("summary-stats")
}
