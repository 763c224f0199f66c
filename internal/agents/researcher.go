package agents

import (
	"context"
	"fmt"
	"strings"
)

var researcherInstructions = []string{
	"You are an expert travel researcher.",
	"Identify the travel destination specified by the user.",
	"Gather detailed information on the destination including:",
	"  - Climate and best time to visit",
	"  - Culture and local customs",
	"  - Safety tips and travel advisories",
	"  - Popular attractions and landmarks",
	"  - Must-visit places and hidden gems",
	"Search for activities that match the user's interests and travel style.",
	"Prioritize information from reliable sources and official travel guides.",
	"Provide well-structured summaries with key insights and recommendations.",
	"Keep responses concise but informative.",
	"Format your response in a readable way with clear sections.",
}

// Researcher gathers destination information matched to the trip style.
type Researcher struct {
	completer Completer
	model     string
}

func NewResearcher(completer Completer, model string) *Researcher {
	return &Researcher{completer: completer, model: model}
}

type ResearchParams struct {
	Destination         string
	NumDays             int
	Theme               string
	ActivityPreferences string
	Budget              string
}

// Research returns destination research as displayable text. A failure
// from the completion capability is folded into the text.
func (r *Researcher) Research(ctx context.Context, p ResearchParams) string {
	prompt := fmt.Sprintf(`Research the best attractions and activities in %s for a %d-day %s trip.

Travel Preferences:
- Activities interested in: %s
- Budget: %s
- Trip duration: %d days

Please provide:
1. Overview of %s (climate, culture, best time to visit)
2. Top 5-7 must-visit attractions suitable for this trip type
3. Recommended activities based on preferences
4. Local dining recommendations
5. Safety tips and travel advice
6. Estimated daily budget for activities

Keep the response well-organized and practical.`,
		p.Destination, p.NumDays, strings.ToLower(p.Theme),
		p.ActivityPreferences, p.Budget, p.NumDays, p.Destination)

	text, err := r.completer.Complete(ctx, CompletionRequest{
		Model:        r.model,
		Instructions: datedInstructions(researcherInstructions),
		Prompt:       prompt,
	})
	if err != nil {
		return "Error researching destination: " + err.Error()
	}

	return text
}
