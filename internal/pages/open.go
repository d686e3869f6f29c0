package pages

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/biography"
	"github.com/ziadkadry99/folio/internal/conference"
	"github.com/ziadkadry99/folio/internal/loader"
	"github.com/ziadkadry99/folio/internal/project"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/student"
	"github.com/ziadkadry99/folio/internal/teaching"
)

const (
	biographyResource   = biography.Resource
	biographyContainer  = biography.ContainerID
	projectIndex        = project.IndexResource
	projectContainer    = project.ContainerID
	studentResource     = student.Resource
	studentContainer    = student.ContainerID
	teachingResource    = teaching.Resource
	teachingContainer   = teaching.ContainerID
	conferenceResource  = conference.Resource
	conferenceContainer = conference.ContainerID
)

func openHome(ctx context.Context, env Env, p Page) (View, error) {
	doc, err := biography.Load(ctx, env.Fetcher)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		entries = append(entries, Entry{
			ID:      s.Key,
			Title:   s.DisplayTitle(),
			Summary: s.Subtitle,
			Path:    p.Path + "#" + s.Key,
			Content: s.Words(),
		})
	}
	tree := render.New(render.KindPage,
		hidden(render.Loading(p.ContainerID)),
		hidden(render.Failure(p.ContainerID)),
		biography.Render(doc),
	).WithID("page-" + p.Name)
	return &staticView{tree: tree, entries: entries}, nil
}

func openProjects(ctx context.Context, env Env, p Page) (View, error) {
	res, err := project.Load(ctx, env.Fetcher, loader.GatherOptions{
		Concurrency: env.Concurrency,
		Logger:      env.logger(),
		OnProgress:  env.OnProgress,
	})
	if err != nil {
		return nil, err
	}
	return newCollectionView(p, res.Items, project.Policy(), project.Render, func(pr project.Project) Entry {
		return Entry{
			ID:      pr.ID,
			Title:   pr.Title,
			Summary: pr.ShortDescription,
			Path:    project.DetailPath(pr.ID),
			Content: strings.Join(append([]string{pr.Description}, pr.Tags...), " "),
		}
	}), nil
}

func openStudents(ctx context.Context, env Env, p Page) (View, error) {
	roster, err := student.Load(ctx, env.Fetcher)
	if err != nil {
		return nil, err
	}
	v := newCollectionView(p, roster.Students, student.Policy(), student.Render, func(s student.Student) Entry {
		return Entry{
			ID:      s.ID,
			Title:   s.Name,
			Summary: s.Specialization,
			Path:    student.DetailPath(s.ID),
			Content: strings.Join(append([]string{s.Bio}, s.ResearchAreas...), " "),
		}
	})
	v.summary = student.RenderSummary(roster.Summary)
	return v, nil
}

func openTeaching(ctx context.Context, env Env, p Page) (View, error) {
	rec, err := teaching.Load(ctx, env.Fetcher)
	if err != nil {
		return nil, err
	}
	v := newCollectionView(p, rec.Courses, teaching.Policy(), teaching.Render, func(c teaching.Course) Entry {
		return Entry{
			ID:      c.Key(),
			Title:   c.Code + " " + c.Name,
			Summary: c.Category,
			Path:    p.Path + "#intake-" + strings.ToLower(c.Intake),
			Content: strings.Join([]string{c.Degree, c.Level, c.Role, c.Intake, c.Semester}, " "),
		}
	})
	v.summary = teaching.RenderSummary(rec.Summary)
	v.tagLabel = func(tag string) string {
		if cat, ok := rec.Categories[tag]; ok && cat.Count > 0 {
			return fmt.Sprintf("%s (%d)", tag, cat.Count)
		}
		return tag
	}
	return v, nil
}

func openConferences(ctx context.Context, env Env, p Page) (View, error) {
	all, err := conference.Load(ctx, env.Fetcher)
	if err != nil {
		return nil, err
	}
	now := env.now()
	r := conference.Renderer{Now: now, DeadlineSoonDays: env.DeadlineSoonDays}
	return newCollectionView(p, all, conference.Policy(now), r.Render, func(c conference.Conference) Entry {
		return Entry{
			ID:      c.Key(),
			Title:   c.Acronym + ": " + c.Name,
			Summary: c.Location,
			Path:    p.Path + "#" + c.Key(),
			Content: strings.Join(append([]string{c.Description}, c.Topics...), " "),
		}
	}), nil
}

// Detail is a standalone page for one record.
type Detail struct {
	Path  string
	Title string
	Tree  *render.Node
}

// ProjectDetails loads every project and renders its detail page. Projects
// that fail to load are skipped with a warning, as on the listing.
func ProjectDetails(ctx context.Context, env Env) ([]Detail, error) {
	res, err := project.Load(ctx, env.Fetcher, loader.GatherOptions{
		Concurrency: env.Concurrency,
		Logger:      env.logger(),
	})
	if err != nil {
		return nil, err
	}
	details := make([]Detail, 0, len(res.Items))
	for _, pr := range res.Items {
		details = append(details, projectDetail(pr))
	}
	return details, nil
}

// ProjectDetail loads and renders one project's detail page.
func ProjectDetail(ctx context.Context, env Env, id string) (Detail, error) {
	pr, err := project.LoadOne(ctx, env.Fetcher, id)
	if err != nil {
		env.logger().Warn("project detail load failed", zap.String("id", id), zap.Error(err))
		return Detail{}, err
	}
	return projectDetail(pr), nil
}

func projectDetail(pr project.Project) Detail {
	tree := render.New(render.KindPage,
		render.Link("Back to Projects", "../projects.html"),
		project.RenderDetail(pr, "../"),
	).WithID("page-project-" + pr.ID)
	return Detail{Path: project.DetailPath(pr.ID), Title: pr.Title, Tree: tree}
}
