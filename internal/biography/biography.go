// Package biography renders the landing page from content.json, an ordered
// object whose keys are page sections.
package biography

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ziadkadry99/folio/internal/loader"
)

const (
	Resource    = "content.json"
	ContainerID = "content"
)

// Item is a list entry: either plain text or a titled entry with an
// optional link.
type Item struct {
	Text        string `json:"-"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

// UnmarshalJSON accepts a string or an object.
func (it *Item) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		*it = Item{}
		return json.Unmarshal(b, &it.Text)
	}
	type plain Item
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("list item: %w", err)
	}
	*it = Item(p)
	return nil
}

// CourseList is a titled list of course names on the landing page.
type CourseList struct {
	Title   string   `json:"title"`
	Courses []string `json:"courses"`
}

// Detail is one part of the extended biography.
type Detail struct {
	Key     string
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Section is one top-level entry of content.json. Only the fields relevant
// to the section's key are set.
type Section struct {
	Key        string
	Title      string
	Subtitle   string
	University string
	Content    string
	Items      []Item

	Undergraduate *CourseList
	Postgraduate  *CourseList

	Grants     []Item
	Awards     []Item
	Leadership []Item

	Detailed []Detail
}

// DisplayTitle is Title, or the key with its first letter upper-cased.
func (s Section) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	r, size := utf8.DecodeRuneInString(s.Key)
	if r == utf8.RuneError {
		return s.Key
	}
	return string(unicode.ToUpper(r)) + s.Key[size:]
}

type sectionJSON struct {
	Title         string          `json:"title"`
	Subtitle      string          `json:"subtitle"`
	University    string          `json:"university"`
	Content       string          `json:"content"`
	Items         []Item          `json:"items"`
	Undergraduate *CourseList     `json:"undergraduate"`
	Postgraduate  *CourseList     `json:"postgraduate"`
	Grants        []Item          `json:"grants"`
	Awards        []Item          `json:"awards"`
	Leadership    []Item          `json:"leadership"`
	Detailed      json.RawMessage `json:"detailed"`
}

// Document is content.json with its key order preserved.
type Document struct {
	Sections []Section
}

// UnmarshalJSON decodes the sections in document order.
func (d *Document) UnmarshalJSON(b []byte) error {
	var sections []Section
	err := decodeOrdered(b, func(key string, raw json.RawMessage) error {
		var sj sectionJSON
		if err := json.Unmarshal(raw, &sj); err != nil {
			return fmt.Errorf("section %q: %w", key, err)
		}
		s := Section{
			Key:           key,
			Title:         sj.Title,
			Subtitle:      sj.Subtitle,
			University:    sj.University,
			Content:       sj.Content,
			Items:         sj.Items,
			Undergraduate: sj.Undergraduate,
			Postgraduate:  sj.Postgraduate,
			Grants:        sj.Grants,
			Awards:        sj.Awards,
			Leadership:    sj.Leadership,
		}
		if len(sj.Detailed) > 0 && !bytes.Equal(sj.Detailed, []byte("null")) {
			err := decodeOrdered(sj.Detailed, func(dk string, draw json.RawMessage) error {
				det := Detail{Key: dk}
				if err := json.Unmarshal(draw, &det); err != nil {
					return fmt.Errorf("section %q detail %q: %w", key, dk, err)
				}
				s.Detailed = append(s.Detailed, det)
				return nil
			})
			if err != nil {
				return err
			}
		}
		sections = append(sections, s)
		return nil
	})
	if err != nil {
		return err
	}
	d.Sections = sections
	return nil
}

// Section returns the section with the given key, or nil.
func (d *Document) Section(key string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Key == key {
			return &d.Sections[i]
		}
	}
	return nil
}

// decodeOrdered walks a JSON object and calls fn for each member in order.
func decodeOrdered(b []byte, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a JSON object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected an object key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decoding %q: %w", key, err)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

// Load reads content.json.
func Load(ctx context.Context, f loader.Fetcher) (*Document, error) {
	doc, err := loader.LoadJSON[Document](ctx, f, Resource)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Words returns the plain searchable text of a section.
func (s Section) Words() string {
	parts := []string{s.DisplayTitle(), s.Subtitle, s.University, s.Content}
	for _, list := range [][]Item{s.Items, s.Grants, s.Awards, s.Leadership} {
		for _, it := range list {
			parts = append(parts, it.Text, it.Title, it.Description)
		}
	}
	for _, d := range s.Detailed {
		parts = append(parts, d.Title, d.Content)
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
