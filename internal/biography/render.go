package biography

import "github.com/ziadkadry99/folio/internal/render"

// Render returns the landing page sections in document order.
func Render(doc *Document) *render.Node {
	root := render.New(render.KindContainer).WithID(ContainerID)
	for _, s := range doc.Sections {
		root.Append(renderSection(s))
	}
	return root
}

func renderSection(s Section) *render.Node {
	n := render.Section(s.DisplayTitle()).WithID(s.Key)

	switch s.Key {
	case "home":
		n.Append(optionalText(s.Subtitle, "subtitle"), optionalText(s.University, "university"))
	case "teaching":
		n.Append(optionalText(s.Subtitle, "subtitle"))
	}

	switch s.Key {
	case "teaching":
		n.Append(courseGrid(s.Undergraduate), courseGrid(s.Postgraduate))
	case "awards":
		n.Append(
			titledList("Grants", s.Grants),
			titledList("Awards", s.Awards),
			titledList("Leadership & Professional Memberships", s.Leadership),
		)
	case "biography":
		n.Append(render.Markdown(s.Content), detailed(s.Detailed))
	default:
		n.Append(render.Markdown(s.Content), itemList(s.Items))
	}
	return n
}

func optionalText(text, role string) *render.Node {
	if text == "" {
		return nil
	}
	return render.Text(text).Set("role", role)
}

func courseGrid(list *CourseList) *render.Node {
	if list == nil {
		return nil
	}
	grid := render.Group()
	for _, c := range list.Courses {
		grid.Append(render.New(render.KindCard, render.Heading(4, c), render.Text("Course Module")))
	}
	return render.New(render.KindGroup, render.Heading(3, list.Title), grid)
}

func titledList(title string, items []Item) *render.Node {
	if items == nil {
		return nil
	}
	return render.New(render.KindGroup, render.Heading(3, title), itemList(items))
}

func itemList(items []Item) *render.Node {
	if items == nil {
		return nil
	}
	entries := make([]*render.Node, 0, len(items))
	for _, it := range items {
		entries = append(entries, item(it))
	}
	return render.List(entries...)
}

func item(it Item) *render.Node {
	if it.Text != "" {
		return render.New(render.KindItem, render.Text(it.Text))
	}
	var title, desc, link *render.Node
	if it.Title != "" {
		title = render.Heading(4, it.Title)
	}
	if it.Description != "" {
		desc = render.Text(it.Description)
	}
	if it.Link != "" && it.Link != "#" {
		link = render.Link("Read more", it.Link)
	}
	return render.New(render.KindItem, title, desc, link)
}

// detailed renders the extended biography, hidden until expanded.
func detailed(parts []Detail) *render.Node {
	if len(parts) == 0 {
		return nil
	}
	g := render.New(render.KindGroup, render.Heading(2, "Complete Biography")).WithID("biography-detailed")
	g.Set("hidden", "true")
	for _, d := range parts {
		g.Append(render.Heading(3, d.Title), render.Text(d.Content))
	}
	return g
}
