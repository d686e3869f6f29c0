// Package student models the supervised student roster.
package student

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ziadkadry99/folio/internal/collection"
	"github.com/ziadkadry99/folio/internal/loader"
	"github.com/ziadkadry99/folio/internal/render"
)

const (
	Resource    = "students.json"
	ContainerID = "students-container"

	LevelUndergraduate = "undergraduate"
	LevelPostgraduate  = "postgraduate"

	defaultAvatar = "images/default-avatar.jpg"
	shownAreas    = 3
)

// Work is a project a student worked on.
type Work struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Student is one supervised student. Level is filled in by Load from the
// list the student appears in.
type Student struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	ShortTitle     string   `json:"shortTitle,omitempty"`
	Photo          string   `json:"photo,omitempty"`
	Email          string   `json:"email,omitempty"`
	Motto          string   `json:"motto,omitempty"`
	Year           string   `json:"year,omitempty"`
	Degree         string   `json:"degree,omitempty"`
	Specialization string   `json:"specialization,omitempty"`
	ResearchAreas  []string `json:"researchAreas,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	Projects       []Work   `json:"projects,omitempty"`
	Featured       bool     `json:"featured,omitempty"`
	Level          string   `json:"level"`
}

// Summary holds the headline numbers shown above the roster.
type Summary struct {
	TotalStudents  int `json:"totalStudents"`
	Undergraduate  int `json:"undergraduate"`
	Postgraduate   int `json:"postgraduate"`
	ActiveProjects int `json:"activeProjects"`
}

// Document is the layout of students.json.
type Document struct {
	Students struct {
		Undergraduate []Student `json:"undergraduate"`
		Postgraduate  []Student `json:"postgraduate"`
		Summary       Summary   `json:"summary"`
	} `json:"students"`
}

// Roster is the flattened student list plus its summary.
type Roster struct {
	Students []Student
	Summary  Summary
}

// Load reads students.json and flattens both levels, undergraduates first.
func Load(ctx context.Context, f loader.Fetcher) (*Roster, error) {
	doc, err := loader.LoadJSON[Document](ctx, f, Resource)
	if err != nil {
		return nil, err
	}
	r := &Roster{
		Students: make([]Student, 0, len(doc.Students.Undergraduate)+len(doc.Students.Postgraduate)),
		Summary:  doc.Students.Summary,
	}
	for _, s := range doc.Students.Undergraduate {
		s.Level = LevelUndergraduate
		r.Students = append(r.Students, s)
	}
	for _, s := range doc.Students.Postgraduate {
		s.Level = LevelPostgraduate
		r.Students = append(r.Students, s)
	}
	return r, nil
}

// Policy filters students by level; featured students come first, then
// names in English collation order. Each call builds its own collator, so a
// policy must not be shared between goroutines.
func Policy() collection.Policy[Student] {
	collator := collate.New(language.English)
	return collection.Policy[Student]{
		Filters: []collection.NamedFilter[Student]{
			{Name: LevelUndergraduate, Label: "Undergraduate", Match: func(s Student) bool { return s.Level == LevelUndergraduate }},
			{Name: LevelPostgraduate, Label: "Postgraduate", Match: func(s Student) bool { return s.Level == LevelPostgraduate }},
		},
		Fields: func(s Student) []string {
			fields := []string{s.Name, s.Specialization, s.Bio}
			fields = append(fields, s.ResearchAreas...)
			for _, w := range s.Projects {
				fields = append(fields, w.Title, w.Description)
			}
			return fields
		},
		Priority: func(s Student) bool { return s.Featured },
		Compare:  func(a, b Student) int { return collator.CompareString(a.Name, b.Name) },
	}
}

// DetailPath is the site path of a student's profile page.
func DetailPath(id string) string {
	return "students/" + id + ".html"
}

// Render returns the student card grid for visible, in order.
func Render(visible []Student) *render.Node {
	cards := make([]*render.Node, 0, len(visible))
	for _, s := range visible {
		cards = append(cards, Card(s))
	}
	return render.Collection(ContainerID, cards)
}

// Card renders one student.
func Card(s Student) *render.Node {
	level := render.Badge("Undergraduate", "blue")
	if s.Level == LevelPostgraduate {
		level = render.Badge("Postgraduate", "purple")
	}
	var featured *render.Node
	if s.Featured {
		featured = render.Badge("Featured", "yellow")
	}
	var motto *render.Node
	if s.Motto != "" {
		motto = render.Text(strconv.Quote(s.Motto)).Set("role", "motto")
	}

	areas := render.Group()
	for i, a := range s.ResearchAreas {
		if i == shownAreas {
			areas.Append(render.Badge(fmt.Sprintf("+%d more", len(s.ResearchAreas)-shownAreas), "gray"))
			break
		}
		areas.Append(render.Badge(a, "gray"))
	}

	return render.Card(s.ID,
		render.Image(s.Photo, s.Name, defaultAvatar),
		render.Heading(3, s.Name),
		render.Text(s.ShortTitle),
		render.Group(level, featured),
		motto,
		render.Text(s.Year+" - "+s.Degree),
		render.Text(s.Specialization),
		render.Heading(4, "Research Areas"),
		areas,
		render.Group(render.Link("View Details", DetailPath(s.ID)), render.Mailto("Send Email", s.Email)),
	)
}

// RenderSummary renders the statistics panel.
func RenderSummary(sum Summary) *render.Node {
	return render.Section("Student Statistics",
		render.Group(
			render.Stat(strconv.Itoa(sum.TotalStudents), "Total Students"),
			render.Stat(strconv.Itoa(sum.Undergraduate), "Undergraduate"),
			render.Stat(strconv.Itoa(sum.Postgraduate), "Postgraduate"),
			render.Stat(strconv.Itoa(sum.ActiveProjects), "Active Projects"),
		),
	).WithID("statistics")
}
