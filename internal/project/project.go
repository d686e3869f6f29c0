// Package project models research projects: an index of project ids plus one
// detail file per project.
package project

import (
	"context"
	"path"
	"strings"

	"github.com/ziadkadry99/folio/internal/collection"
	"github.com/ziadkadry99/folio/internal/dates"
	"github.com/ziadkadry99/folio/internal/loader"
)

const (
	// IndexResource lists the projects to load.
	IndexResource = "projects/projects.json"
	// ContainerID is the element the project cards render into.
	ContainerID = "projects-container"
	// DetailContainerID is the element a single project renders into.
	DetailContainerID = "project-container"

	StatusCompleted  = "completed"
	StatusInProgress = "in_progress"
)

// ItemResource is the detail file for project id.
func ItemResource(id string) string {
	return path.Join("projects", id, "project.json")
}

// DetailPath is the site path of the page for project id.
func DetailPath(id string) string {
	return "projects/" + id + ".html"
}

// IndexEntry is one line of the project index.
type IndexEntry struct {
	ID       string `json:"id"`
	Featured bool   `json:"featured"`
}

// Index is the layout of projects/projects.json.
type Index struct {
	Projects []IndexEntry `json:"projects"`
}

type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// Link is an external resource. Type is "primary" or "secondary".
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
	Type  string `json:"type,omitempty"`
}

type Contribution struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Results struct {
	Title         string         `json:"title,omitempty"`
	Performance   string         `json:"performance,omitempty"`
	Contributions []Contribution `json:"contributions,omitempty"`
	Impact        string         `json:"impact,omitempty"`
}

// AwardDetails describes the paper an award was given for.
type AwardDetails struct {
	PaperTitle string   `json:"paper_title,omitempty"`
	Authors    []string `json:"authors,omitempty"`
	Conference string   `json:"conference,omitempty"`
	Date       string   `json:"date,omitempty"`
	Pages      string   `json:"pages,omitempty"`
	Publisher  string   `json:"publisher,omitempty"`
}

type Award struct {
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Details     *AwardDetails `json:"details,omitempty"`
}

// MemberLinks holds profile URLs; "#" means not set.
type MemberLinks struct {
	Scholar  string `json:"scholar,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

type Member struct {
	Name        string      `json:"name"`
	Role        string      `json:"role,omitempty"`
	Description string      `json:"description,omitempty"`
	Email       string      `json:"email,omitempty"`
	Links       MemberLinks `json:"links"`
}

// Project is one research project. Featured comes from the index, not the
// detail file.
type Project struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	ShortDescription string     `json:"shortDescription"`
	Description      string     `json:"description"`
	Motivation       string     `json:"motivation,omitempty"`
	Status           string     `json:"status"`
	StartDate        dates.Date `json:"startDate"`
	EndDate          dates.Date `json:"endDate"`
	Tags             []string   `json:"tags"`
	Images           []Image    `json:"images,omitempty"`
	Links            []Link     `json:"links,omitempty"`
	Results          *Results   `json:"results,omitempty"`
	Awards           []Award    `json:"awards,omitempty"`
	Team             []Member   `json:"team,omitempty"`
	Featured         bool       `json:"featured"`
}

// CodebaseLink returns the first link that points at source code, or nil.
func (p Project) CodebaseLink() *Link {
	for i, l := range p.Links {
		title := strings.ToLower(l.Title)
		if strings.Contains(title, "code") || strings.Contains(title, "github") || strings.Contains(l.Icon, "github") {
			return &p.Links[i]
		}
	}
	return nil
}

// DateRange formats the project period, e.g. "2021 - Present".
func (p Project) DateRange() string {
	return dates.YearRange(p.StartDate, p.EndDate)
}

// StatusLabel is the human form of Status.
func (p Project) StatusLabel() string {
	if p.Status == StatusCompleted {
		return "Completed"
	}
	return "In Progress"
}

var itemSpec = loader.ItemSpec[IndexEntry, Project]{
	ID:  func(e IndexEntry) string { return e.ID },
	Ref: func(e IndexEntry) string { return ItemResource(e.ID) },
	Merge: func(e IndexEntry, p *Project) {
		p.Featured = e.Featured
		if p.ID == "" {
			p.ID = e.ID
		}
	},
}

// Load reads the index and every project it lists. Projects that fail to
// load are dropped and reported in the result.
func Load(ctx context.Context, f loader.Fetcher, opts loader.GatherOptions) (*loader.GatherResult[Project], error) {
	return loader.LoadComposite(ctx, f, IndexResource,
		func(i Index) []IndexEntry { return i.Projects }, itemSpec, opts)
}

// LoadIndex reads the project index alone.
func LoadIndex(ctx context.Context, f loader.Fetcher) ([]IndexEntry, error) {
	return loader.Load(ctx, f, IndexResource, func(i Index) []IndexEntry { return i.Projects })
}

// LoadOne reads a single project's detail file.
func LoadOne(ctx context.Context, f loader.Fetcher, id string) (Project, error) {
	p, err := loader.LoadJSON[Project](ctx, f, ItemResource(id))
	if err != nil {
		return Project{}, err
	}
	if p.ID == "" {
		p.ID = id
	}
	return p, nil
}

// Policy filters projects by status or featured flag and tags; featured
// projects come first, then newest start date.
func Policy() collection.Policy[Project] {
	return collection.Policy[Project]{
		Filters: []collection.NamedFilter[Project]{
			{Name: StatusCompleted, Label: "Completed", Match: func(p Project) bool { return p.Status == StatusCompleted }},
			{Name: StatusInProgress, Label: "In Progress", Match: func(p Project) bool { return p.Status == StatusInProgress }},
			{Name: "featured", Label: "Featured", Match: func(p Project) bool { return p.Featured }},
		},
		Tags: func(p Project) []string { return p.Tags },
		Fields: func(p Project) []string {
			return append([]string{p.Title, p.ShortDescription, p.Description}, p.Tags...)
		},
		Priority: func(p Project) bool { return p.Featured },
		Compare: func(a, b Project) int {
			return b.StartDate.Compare(a.StartDate)
		},
	}
}
