// Package render describes what a page shows as a tree of framework-agnostic
// nodes. Builders here are pure: they only allocate nodes.
package render

import (
	"strconv"
	"strings"
)

// Kind identifies the component a node stands for.
type Kind string

const (
	KindPage        Kind = "page"
	KindContainer   Kind = "container"
	KindSection     Kind = "section"
	KindCard        Kind = "card"
	KindHeading     Kind = "heading"
	KindText        Kind = "text"
	KindBadge       Kind = "badge"
	KindLink        Kind = "link"
	KindImage       Kind = "image"
	KindGallery     Kind = "gallery"
	KindList        Kind = "list"
	KindItem        Kind = "item"
	KindGroup       Kind = "group"
	KindStat        Kind = "stat"
	KindPlaceholder Kind = "placeholder"
	KindMarkup      Kind = "markup"
)

// Placeholder names. The loading and error placeholders are toggled by
// visibility; no-results replaces an empty collection.
const (
	PlaceholderLoading   = "loading"
	PlaceholderError     = "error"
	PlaceholderNoResults = "no-results"
)

// Node is one element of a DisplayTree.
type Node struct {
	Kind     Kind              `json:"kind"`
	ID       string            `json:"id,omitempty"`
	Props    map[string]string `json:"props,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// New creates a node of the given kind. Nil children are dropped so optional
// parts can be passed inline.
func New(kind Kind, children ...*Node) *Node {
	n := &Node{Kind: kind}
	n.Append(children...)
	return n
}

// Append adds the non-nil children to n.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Set stores a prop and returns n. Empty values are ignored.
func (n *Node) Set(key, value string) *Node {
	if value == "" {
		return n
	}
	if n.Props == nil {
		n.Props = make(map[string]string)
	}
	n.Props[key] = value
	return n
}

// WithID sets the node identifier.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// Prop returns a prop value or "".
func (n *Node) Prop(key string) string {
	if n == nil {
		return ""
	}
	return n.Props[key]
}

// Walk visits n and its descendants depth-first, stopping a branch when fn
// returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// FindAll returns every descendant (including n) of the given kind.
func (n *Node) FindAll(kind Kind) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.Kind == kind {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Find returns the first node (depth-first) with the given id.
func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.ID == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// TextContent concatenates the text of n and its descendants, space separated.
func (n *Node) TextContent() string {
	var parts []string
	n.Walk(func(c *Node) bool {
		if c.Text != "" && c.Kind != KindMarkup {
			parts = append(parts, c.Text)
		}
		return true
	})
	return strings.Join(parts, " ")
}

// Heading returns a heading of the given level (1-6).
func Heading(level int, text string) *Node {
	return (&Node{Kind: KindHeading, Text: text}).Set("level", strconv.Itoa(level))
}

// Text returns a paragraph of plain text.
func Text(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// Badge returns a short label; tone is a semantic colour hint such as "success".
func Badge(text, tone string) *Node {
	return (&Node{Kind: KindBadge, Text: text}).Set("tone", tone)
}

// Link returns a link to an in-site page.
func Link(text, href string) *Node {
	return (&Node{Kind: KindLink, Text: text}).Set("href", href)
}

// ExternalLink returns a link opened in a new tab.
func ExternalLink(text, href string) *Node {
	return Link(text, href).Set("target", "_blank").Set("rel", "noopener noreferrer")
}

// Mailto returns a mail link, or nil for an empty address.
func Mailto(text, address string) *Node {
	if address == "" {
		return nil
	}
	return Link(text, "mailto:"+address)
}

// Image returns an image; fallback is shown when src fails to load.
func Image(src, alt, fallback string) *Node {
	return (&Node{Kind: KindImage}).Set("src", src).Set("alt", alt).Set("fallback", fallback)
}

// Group returns an inline row of nodes such as badges or buttons.
func Group(children ...*Node) *Node {
	return New(KindGroup, children...)
}

// List returns an unordered list with one item per child.
func List(items ...*Node) *Node {
	l := New(KindList)
	for _, it := range items {
		if it == nil {
			continue
		}
		if it.Kind != KindItem {
			it = New(KindItem, it)
		}
		l.Append(it)
	}
	return l
}

// Stat returns a labelled figure for summary panels.
func Stat(value, label string) *Node {
	return (&Node{Kind: KindStat, Text: value}).Set("label", label)
}

// Section returns a titled block. An empty title omits the heading.
func Section(title string, children ...*Node) *Node {
	s := New(KindSection)
	if title != "" {
		s.Append(Heading(2, title))
	}
	return s.Append(children...)
}

// Card returns one collection entry.
func Card(id string, children ...*Node) *Node {
	return New(KindCard, children...).WithID(id)
}

// Placeholder returns the named placeholder for the container with the given id.
func Placeholder(name, containerID, message string) *Node {
	return (&Node{Kind: KindPlaceholder, Text: message}).Set("name", name).Set("for", containerID)
}

// NoResults is the empty-state shown when a selection has no records.
func NoResults(containerID string) *Node {
	return Placeholder(PlaceholderNoResults, containerID, "No results match the current filters.")
}

// Loading is the placeholder visible while a page's data is being fetched.
func Loading(containerID string) *Node {
	return Placeholder(PlaceholderLoading, containerID, "Loading...")
}

// Failure is the placeholder shown when a page's data could not be loaded.
func Failure(containerID string) *Node {
	return Placeholder(PlaceholderError, containerID, "Failed to load content. Please reload the page.")
}

// Collection wraps rendered entries in the container with the given id. With
// no entries it returns the no-results placeholder instead of an empty container.
func Collection(containerID string, entries []*Node) *Node {
	if len(entries) == 0 {
		return NoResults(containerID)
	}
	return New(KindContainer, entries...).WithID(containerID)
}

// IsNoResults reports whether n is the no-results placeholder.
func IsNoResults(n *Node) bool {
	return n != nil && n.Kind == KindPlaceholder && n.Prop("name") == PlaceholderNoResults
}
