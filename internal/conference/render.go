package conference

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ziadkadry99/folio/internal/render"
)

var titleCase = cases.Title(language.English)

var topicTones = map[string]string{
	"Artificial Intelligence": "blue",
	"Machine Learning":        "green",
	"Data Science":            "purple",
	"Computer Vision":         "orange",
	"Image Processing":        "red",
}

// Renderer draws conference cards as of Now.
type Renderer struct {
	Now              time.Time
	DeadlineSoonDays int
}

// Render returns the card grid for visible, in order.
func (r Renderer) Render(visible []Conference) *render.Node {
	cards := make([]*render.Node, 0, len(visible))
	for _, c := range visible {
		cards = append(cards, r.Card(c))
	}
	return render.Collection(ContainerID, cards)
}

// Card renders one conference.
func (r Renderer) Card(c Conference) *render.Node {
	st := c.Status(r.Now, r.DeadlineSoonDays)

	typeTone := "blue"
	if c.Type == "workshop" {
		typeTone = "purple"
	}

	var countdown *render.Node
	if st.DeadlineSoon {
		countdown = render.Badge(fmt.Sprintf("%d days left", st.DaysToSubmission), "danger")
	}

	topics := render.Group()
	for _, topic := range c.Topics {
		tone, ok := topicTones[topic]
		if !ok {
			tone = "gray"
		}
		topics.Append(render.Badge(topic, tone))
	}

	submission := render.Text("Submission: " + c.SubmissionDate.Display())
	submission.Set("state", openState(st.SubmissionOpen))
	conf := render.Text("Conference: " + c.ConferenceDate.Display())
	conf.Set("state", upcomingState(st.ConferenceUpcoming))

	submissions := "Submissions Closed"
	if st.SubmissionOpen {
		submissions = "Submissions Open"
	}
	var website *render.Node
	if c.Website != "" {
		website = render.ExternalLink("Visit Website", c.Website)
	}

	card := render.Card(c.Key(),
		render.Group(render.Heading(3, c.Acronym), render.Badge(titleCase.String(c.Type), typeTone), countdown),
		render.Heading(4, c.Name),
		render.Text(c.Location).Set("icon", "location"),
		render.Group(submission, conf),
		topics,
		render.Group(render.Text(submissions), website),
	)
	switch {
	case st.DeadlineSoon:
		card.Set("class", "deadline-soon")
	case st.DeadlinePast:
		card.Set("class", "deadline-past")
	}
	return card
}

func openState(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}

func upcomingState(upcoming bool) string {
	if upcoming {
		return "upcoming"
	}
	return "past"
}
