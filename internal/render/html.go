package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Props copied to HTML attributes as-is. Other props become data-* attributes,
// except the ones consumed while choosing the element.
var (
	passthroughAttrs = map[string]bool{"href": true, "src": true, "alt": true, "target": true, "rel": true, "title": true}
	consumedProps    = map[string]bool{"level": true, "tone": true, "class": true, "hidden": true}
)

type elementSpec struct {
	tag   atom.Atom
	class string
}

var elements = map[Kind]elementSpec{
	KindPage:        {atom.Div, "page"},
	KindContainer:   {atom.Div, "collection"},
	KindSection:     {atom.Section, "section"},
	KindCard:        {atom.Article, "card"},
	KindText:        {atom.P, ""},
	KindBadge:       {atom.Span, "badge"},
	KindLink:        {atom.A, ""},
	KindImage:       {atom.Img, ""},
	KindGallery:     {atom.Div, "gallery"},
	KindList:        {atom.Ul, ""},
	KindItem:        {atom.Li, ""},
	KindGroup:       {atom.Div, "group"},
	KindStat:        {atom.Div, "stat"},
	KindPlaceholder: {atom.Div, "placeholder"},
	KindMarkup:      {atom.Div, "markup"},
}

var headingAtoms = []atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// HTML renders a DisplayTree to an HTML string.
func HTML(n *Node) (string, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteHTML renders a DisplayTree as HTML to w.
func WriteHTML(w io.Writer, n *Node) error {
	hn, err := ToHTML(n)
	if err != nil {
		return err
	}
	return html.Render(w, hn)
}

// ToHTML converts a DisplayTree into an x/net/html node tree.
func ToHTML(n *Node) (*html.Node, error) {
	if n == nil {
		return nil, fmt.Errorf("render: nil node")
	}

	el, err := element(n)
	if err != nil {
		return nil, err
	}

	switch n.Kind {
	case KindMarkup:
		frag, err := html.ParseFragment(strings.NewReader(n.Text), &html.Node{
			Type:     html.ElementNode,
			Data:     "div",
			DataAtom: atom.Div,
		})
		if err != nil {
			return nil, fmt.Errorf("parsing markup: %w", err)
		}
		for _, c := range frag {
			el.AppendChild(c)
		}
		return el, nil
	case KindStat:
		el.AppendChild(textElement(atom.Strong, n.Text))
		el.AppendChild(textElement(atom.Span, n.Prop("label")))
		return el, nil
	}

	if n.Text != "" && n.Kind != KindImage {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, c := range n.Children {
		child, err := ToHTML(c)
		if err != nil {
			return nil, err
		}
		el.AppendChild(child)
	}
	return el, nil
}

func element(n *Node) (*html.Node, error) {
	var spec elementSpec
	if n.Kind == KindHeading {
		level := 3
		if l := n.Prop("level"); l != "" {
			if _, err := fmt.Sscanf(l, "%d", &level); err != nil || level < 1 || level > 6 {
				return nil, fmt.Errorf("render: invalid heading level %q", l)
			}
		}
		spec = elementSpec{tag: headingAtoms[level-1]}
	} else {
		var ok bool
		spec, ok = elements[n.Kind]
		if !ok {
			return nil, fmt.Errorf("render: unknown node kind %q", n.Kind)
		}
	}

	el := &html.Node{Type: html.ElementNode, Data: spec.tag.String(), DataAtom: spec.tag}

	var classes []string
	if spec.class != "" {
		classes = append(classes, spec.class)
	}
	if tone := n.Prop("tone"); tone != "" {
		classes = append(classes, string(n.Kind)+"-"+tone)
	}
	if n.Kind == KindPlaceholder {
		classes = append(classes, "placeholder-"+n.Prop("name"))
	}
	if extra := n.Prop("class"); extra != "" {
		classes = append(classes, extra)
	}

	id := n.ID
	if id == "" && n.Kind == KindPlaceholder {
		id = n.Prop("name")
	}
	if id != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "id", Val: id})
	}
	if len(classes) > 0 {
		el.Attr = append(el.Attr, html.Attribute{Key: "class", Val: strings.Join(classes, " ")})
	}

	keys := make([]string, 0, len(n.Props))
	for k := range n.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch {
		case consumedProps[k]:
		case passthroughAttrs[k]:
			el.Attr = append(el.Attr, html.Attribute{Key: k, Val: n.Props[k]})
		default:
			el.Attr = append(el.Attr, html.Attribute{Key: "data-" + k, Val: n.Props[k]})
		}
	}
	if n.Prop("hidden") == "true" {
		el.Attr = append(el.Attr, html.Attribute{Key: "hidden"})
	}
	return el, nil
}

func textElement(tag atom.Atom, text string) *html.Node {
	el := &html.Node{Type: html.ElementNode, Data: tag.String(), DataAtom: tag}
	el.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return el
}
