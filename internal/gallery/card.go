package gallery

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/inovacc/repogallery/internal/model"
)

// NoDescription stands in for a missing description
const NoDescription = "No description provided"

// Card is what a shell renders for one repository. Language is empty
// when the repository has none, and renderers omit it entirely.
type Card struct {
	Name        string
	URL         string
	Description string
	Stars       string
	Language    string
	Fork        bool
	Updated     string
}

// NewCard builds the card of r.
func NewCard(r model.Repository) Card {
	return newCard(r, time.Now())
}

func newCard(r model.Repository, now time.Time) Card {
	c := Card{
		Name:        r.Name,
		URL:         r.HTMLURL,
		Description: r.Description,
		Stars:       humanize.Comma(int64(r.Stars)),
		Language:    r.Language,
		Fork:        r.Fork,
	}

	if !r.HasDescription() {
		c.Description = NoDescription
	}

	if !r.UpdatedAt.IsZero() {
		c.Updated = humanize.RelTime(r.UpdatedAt, now, "ago", "from now")
	}

	return c
}

// NewCards builds the cards of a projected view in order.
func NewCards(view []model.Repository) []Card {
	now := time.Now()

	cards := make([]Card, len(view))
	for i, r := range view {
		cards[i] = newCard(r, now)
	}

	return cards
}
