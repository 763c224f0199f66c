package agents

import (
	"context"
	"fmt"
	"strings"
)

var finderInstructions = []string{
	"You are an expert at finding the best hotels and restaurants.",
	"Identify key locations from the user's travel plans.",
	"Search for highly-rated hotels in convenient locations.",
	"Consider proximity to main attractions and transportation.",
	"Search for top-rated restaurants offering diverse cuisines.",
	"Prioritize results based on user preferences, ratings, and reviews.",
	"Include a range of options for different budgets.",
	"Provide specific names, locations, and brief descriptions.",
	"Mention approximate price ranges.",
	"Include any special features or highlights.",
	"Provide direct booking links or reservation information when available.",
	"Organize recommendations by location or day of itinerary.",
}

// Finder discovers hotels and restaurants for the destination.
type Finder struct {
	completer Completer
	model     string
}

func NewFinder(completer Completer, model string) *Finder {
	return &Finder{completer: completer, model: model}
}

type FinderParams struct {
	Destination         string
	Theme               string
	Budget              string
	HotelRating         string
	ActivityPreferences string
}

// Find returns hotel and restaurant recommendations as displayable
// text. A failure from the completion capability is folded into the
// text.
func (f *Finder) Find(ctx context.Context, p FinderParams) string {
	prompt := fmt.Sprintf(`Find the best hotels and restaurants in %s for a %s trip.

Preferences:
- Budget: %s
- Hotel Rating: %s
- Activities interested in: %s

Please provide:

**Hotels** (3-5 recommendations):
For each hotel include:
- Name and location
- Star rating and guest rating
- Brief description and highlights
- Approximate price range per night
- Proximity to main attractions
- Special amenities

**Restaurants** (5-7 recommendations):
For each restaurant include:
- Name and location
- Cuisine type
- Brief description
- Approximate price range
- Specialties or must-try dishes
- Atmosphere (casual, fine dining, etc.)

Organize by area/neighborhood if helpful, and include options for different budgets within the %s range.`,
		p.Destination, strings.ToLower(p.Theme),
		p.Budget, p.HotelRating, p.ActivityPreferences, p.Budget)

	text, err := f.completer.Complete(ctx, CompletionRequest{
		Model:        f.model,
		Instructions: datedInstructions(finderInstructions),
		Prompt:       prompt,
	})
	if err != nil {
		return "Error finding accommodations: " + err.Error()
	}

	return text
}
