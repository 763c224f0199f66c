package agents

import (
	"context"
	"fmt"
	"strings"
)

var plannerInstructions = []string{
	"You are an expert travel itinerary planner.",
	"Create detailed, day-by-day itineraries based on user preferences.",
	"Gather details about travel preferences, budget, and interests.",
	"Create realistic schedules with appropriate time allocations.",
	"Include transportation options and estimated travel times between locations.",
	"Suggest optimal timing for activities (morning, afternoon, evening).",
	"Provide estimated costs for activities and meals.",
	"Balance the itinerary - don't overpack the schedule.",
	"Include time for rest and spontaneous exploration.",
	"Consider opening hours and booking requirements.",
	"Present the itinerary in a clear, day-by-day structured format.",
	"Use bullet points and clear formatting for readability.",
}

// Planner assembles the day-by-day itinerary from the other agents'
// output.
type Planner struct {
	completer Completer
	model     string
}

func NewPlanner(completer Completer, model string) *Planner {
	return &Planner{completer: completer, model: model}
}

type PlannerParams struct {
	Destination         string
	NumDays             int
	Theme               string
	ActivityPreferences string
	Budget              string
	ResearchData        string
	HotelData           string
}

// Plan returns a detailed itinerary as displayable text. A failure from
// the completion capability is folded into the text.
func (p *Planner) Plan(ctx context.Context, params PlannerParams) string {
	prompt := fmt.Sprintf(`Create a detailed %d-day itinerary for a %s trip to %s.

Travel Details:
- Duration: %d days
- Trip Type: %s
- Activities preferred: %s
- Budget: %s

Research Data:
%s

Hotels & Restaurants:
%s

Please create a day-by-day itinerary with:
- Morning, afternoon, and evening activities for each day
- Specific attractions to visit with estimated time needed
- Restaurant recommendations for meals
- Transportation suggestions between locations
- Estimated costs for activities
- Tips for making the most of each day
- One flexible/rest time each day

Format each day clearly with:
**Day X: [Theme/Focus]**
- Morning: [Activity] (Time, Cost, Details)
- Afternoon: [Activity] (Time, Cost, Details)
- Evening: [Activity] (Time, Cost, Details)

Keep it practical, realistic, and exciting!`,
		params.NumDays, strings.ToLower(params.Theme), params.Destination,
		params.NumDays, params.Theme, params.ActivityPreferences, params.Budget,
		params.ResearchData, params.HotelData)

	text, err := p.completer.Complete(ctx, CompletionRequest{
		Model:        p.model,
		Instructions: datedInstructions(plannerInstructions),
		Prompt:       prompt,
	})
	if err != nil {
		return "Error creating itinerary: " + err.Error()
	}

	return text
}
