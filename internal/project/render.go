package project

import (
	"strings"

	"github.com/ziadkadry99/folio/internal/render"
)

const placeholderImage = "images/project-placeholder.svg"

// Render returns the project card grid for visible, in order.
func Render(visible []Project) *render.Node {
	cards := make([]*render.Node, 0, len(visible))
	for _, p := range visible {
		cards = append(cards, Card(p))
	}
	return render.Collection(ContainerID, cards)
}

// Card renders one project summary.
func Card(p Project) *render.Node {
	src, alt := placeholderImage, p.Title
	if len(p.Images) > 0 {
		src = p.Images[0].URL
		if p.Images[0].Caption != "" {
			alt = p.Images[0].Caption
		}
	}

	var code *render.Node
	if l := p.CodebaseLink(); l != nil {
		code = render.ExternalLink(l.Title, l.URL).Set("icon", l.Icon)
	}

	card := render.Card(p.ID,
		render.Image(src, alt, placeholderImage),
		render.Group(render.Heading(3, p.Title), statusBadge(p)),
		render.Text(p.ShortDescription),
		render.Text(p.DateRange()).Set("role", "date-range"),
		tagGroup(p.Tags),
		render.Group(render.Link("View Details", DetailPath(p.ID)), code),
	)
	if p.Featured {
		card.Set("class", "featured")
	}
	return card
}

func statusBadge(p Project) *render.Node {
	tone := "blue"
	if p.Status == StatusCompleted {
		tone = "green"
	}
	return render.Badge(p.StatusLabel(), tone)
}

func tagGroup(tags []string) *render.Node {
	g := render.Group()
	for _, tag := range tags {
		g.Append(render.Badge(tag, "blue"))
	}
	return g
}

// RenderDetail returns the full page for one project. assetPrefix is
// prepended to image URLs, since detail pages live one directory down.
func RenderDetail(p Project, assetPrefix string) *render.Node {
	return render.New(render.KindContainer,
		header(p, assetPrefix),
		render.Section("Project Overview", render.Text(p.Description)),
		motivation(p.Motivation),
		results(p.Results),
		awards(p.Awards),
		team(p.Team),
		resources(p.Links),
	).WithID(DetailContainerID)
}

func header(p Project, assetPrefix string) *render.Node {
	gallery := render.New(render.KindGallery).WithID("carousel-" + p.ID)
	if len(p.Images) == 0 {
		gallery.Append(render.Image(assetPrefix+placeholderImage, p.Title, ""))
	}
	for _, img := range p.Images {
		alt := img.Caption
		if alt == "" {
			alt = p.Title
		}
		gallery.Append(render.Image(assetPrefix+img.URL, alt, assetPrefix+placeholderImage).Set("caption", img.Caption))
	}

	return render.New(render.KindSection,
		gallery,
		render.Heading(1, p.Title),
		render.Text(p.ShortDescription),
		render.Group(statusBadge(p), render.Text(p.DateRange())),
		tagGroup(p.Tags),
	)
}

// MultilineText splits text on newlines (real or the escaped "\n" sequence
// used in the data files). A line wrapped in ** becomes a sub-heading.
func MultilineText(text string) []*render.Node {
	text = strings.ReplaceAll(text, `\n`, "\n")
	var out []*render.Node
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > 4 && strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") {
			out = append(out, render.Heading(3, line[2:len(line)-2]))
			continue
		}
		out = append(out, render.Text(line))
	}
	return out
}

func motivation(text string) *render.Node {
	lines := MultilineText(text)
	if len(lines) == 0 {
		return nil
	}
	return render.Section("Motivation & Objectives", lines...)
}

func results(r *Results) *render.Node {
	if r == nil {
		return nil
	}
	title := r.Title
	if title == "" {
		title = "Results & Impact"
	}
	s := render.Section(title)
	if r.Performance != "" {
		s.Append(render.New(render.KindGroup, render.Heading(3, "Performance"), render.Text(r.Performance)))
	}
	if len(r.Contributions) > 0 {
		contribs := render.New(render.KindGroup, render.Heading(3, "Key Contributions"))
		for _, c := range r.Contributions {
			contribs.Append(render.New(render.KindCard, render.Heading(4, c.Title), render.Text(c.Description)))
		}
		s.Append(contribs)
	}
	if r.Impact != "" {
		s.Append(render.New(render.KindGroup, render.Heading(3, "Impact"), render.Text(r.Impact)))
	}
	return s
}

func awards(list []Award) *render.Node {
	if len(list) == 0 {
		return nil
	}
	s := render.Section("Awards & Recognition")
	for _, a := range list {
		card := render.New(render.KindCard, render.Heading(3, a.Title), render.Text(a.Description))
		if d := a.Details; d != nil {
			card.Append(
				labelled("Paper", d.PaperTitle),
				labelled("Authors", strings.Join(d.Authors, ", ")),
				labelled("Conference", d.Conference),
				labelled("Date", d.Date),
				labelled("Pages", d.Pages),
				labelled("Publisher", d.Publisher),
			)
		}
		s.Append(card)
	}
	return s
}

func labelled(label, value string) *render.Node {
	if value == "" {
		return nil
	}
	return render.Text(label + ": " + value).Set("label", label)
}

func team(members []Member) *render.Node {
	if len(members) == 0 {
		return nil
	}
	s := render.Section("Team Members")
	for _, m := range members {
		s.Append(render.New(render.KindCard,
			render.Heading(3, m.Name),
			render.Text(m.Role).Set("role", "member-role"),
			render.Text(m.Description),
			render.Group(
				render.Mailto("Email", m.Email),
				profileLink("Google Scholar", m.Links.Scholar),
				profileLink("LinkedIn", m.Links.LinkedIn),
				profileLink("GitHub", m.Links.GitHub),
			),
		))
	}
	return s
}

func profileLink(title, url string) *render.Node {
	if url == "" || url == "#" {
		return nil
	}
	return render.ExternalLink(title, url)
}

func resources(links []Link) *render.Node {
	var primary, secondary []*render.Node
	for _, l := range links {
		n := render.ExternalLink(l.Title, l.URL).Set("icon", l.Icon)
		switch l.Type {
		case "primary":
			primary = append(primary, n.Set("class", "primary"))
		case "secondary":
			secondary = append(secondary, n.Set("class", "secondary"))
		}
	}
	if len(primary) == 0 && len(secondary) == 0 {
		return nil
	}
	s := render.Section("Project Resources")
	if len(primary) > 0 {
		s.Append(render.Group(primary...))
	}
	if len(secondary) > 0 {
		s.Append(render.Group(secondary...))
	}
	return s
}
