// Package conference models the conference and workshop deadline tracker.
package conference

import (
	"context"
	"strings"
	"time"

	"github.com/ziadkadry99/folio/internal/collection"
	"github.com/ziadkadry99/folio/internal/dates"
	"github.com/ziadkadry99/folio/internal/loader"
)

const (
	// Resource is the data file holding every conference.
	Resource = "conferences.json"
	// ContainerID is the element the conference cards render into.
	ContainerID = "conferences-container"

	// DefaultDeadlineSoonDays is how close an open deadline must be to be
	// flagged as soon.
	DefaultDeadlineSoonDays = 30
)

// Conference is one call for papers.
type Conference struct {
	ID             string     `json:"id,omitempty"`
	Name           string     `json:"name"`
	Acronym        string     `json:"acronym"`
	Type           string     `json:"type"`
	Location       string     `json:"location"`
	SubmissionDate dates.Date `json:"submissionDate"`
	ConferenceDate dates.Date `json:"conferenceDate"`
	Topics         []string   `json:"topics"`
	Website        string     `json:"website"`
	Description    string     `json:"description,omitempty"`
	Ranking        string     `json:"ranking,omitempty"`
}

// Key identifies the conference. Entries without an id fall back to a slug
// of the acronym.
func (c Conference) Key() string {
	if c.ID != "" {
		return c.ID
	}
	return strings.ToLower(strings.Join(strings.Fields(c.Acronym), "-"))
}

// Document is the layout of conferences.json.
type Document struct {
	Conferences []Conference `json:"conferences"`
}

// Load reads every conference in file order.
func Load(ctx context.Context, f loader.Fetcher) ([]Conference, error) {
	return loader.Load(ctx, f, Resource, func(d Document) []Conference { return d.Conferences })
}

// Status is the deadline state of a conference at some instant.
type Status struct {
	SubmissionOpen     bool
	ConferenceUpcoming bool
	DaysToSubmission   int
	DaysToConference   int
	// DeadlineSoon is set for open submissions closing within the threshold.
	DeadlineSoon bool
	// DeadlinePast is set once both submission and conference are over.
	DeadlinePast bool
}

// Status computes the deadline state at now. soonDays below 1 means
// DefaultDeadlineSoonDays.
func (c Conference) Status(now time.Time, soonDays int) Status {
	if soonDays < 1 {
		soonDays = DefaultDeadlineSoonDays
	}
	s := Status{
		SubmissionOpen:     c.SubmissionDate.After(now),
		ConferenceUpcoming: c.ConferenceDate.After(now),
		DaysToSubmission:   dates.DaysUntil(c.SubmissionDate.Time, now),
		DaysToConference:   dates.DaysUntil(c.ConferenceDate.Time, now),
	}
	s.DeadlineSoon = s.SubmissionOpen && s.DaysToSubmission <= soonDays
	s.DeadlinePast = !s.SubmissionOpen && !s.ConferenceUpcoming
	return s
}

// TopicAliases maps the short topic chips to the topic names used in data.
var TopicAliases = map[string]string{
	"AI": "Artificial Intelligence",
	"ML": "Machine Learning",
}

// Policy filters and orders conferences relative to now. Open submissions
// come first, soonest deadline first; closed ones follow by conference date.
func Policy(now time.Time) collection.Policy[Conference] {
	open := func(c Conference) bool { return c.SubmissionDate.After(now) }
	return collection.Policy[Conference]{
		Filters: []collection.NamedFilter[Conference]{
			{Name: "conference", Label: "Conferences", Match: func(c Conference) bool { return c.Type == "conference" }},
			{Name: "workshop", Label: "Workshops", Match: func(c Conference) bool { return c.Type == "workshop" }},
			{Name: "open", Label: "Open Submissions", Match: open},
			{Name: "upcoming", Label: "Upcoming", Match: func(c Conference) bool { return c.ConferenceDate.After(now) }},
		},
		Tags:       func(c Conference) []string { return c.Topics },
		TagAliases: TopicAliases,
		Fields: func(c Conference) []string {
			return append([]string{c.Name, c.Acronym, c.Location}, c.Topics...)
		},
		Priority: open,
		Compare: func(a, b Conference) int {
			if open(a) {
				return a.SubmissionDate.Compare(b.SubmissionDate)
			}
			return a.ConferenceDate.Compare(b.ConferenceDate)
		},
	}
}
