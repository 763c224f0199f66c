package planner

import (
	"fmt"
	"strings"

	"github.com/dharmasatrya/travelplanner/internal/format"
	"github.com/dharmasatrya/travelplanner/internal/models"
)

// ExportText renders a plan as the downloadable plain-text document:
// trip metadata, flight count, then the three agent outputs verbatim.
func ExportText(plan *models.TravelPlan) string {
	req := plan.Request

	var b strings.Builder
	fmt.Fprintf(&b, "# Travel Plan: %s to %s\n\n", req.Origin, req.Destination)
	b.WriteString("## Trip Details\n")
	fmt.Fprintf(&b, "- Duration: %d days\n", req.NumDays)
	fmt.Fprintf(&b, "- Theme: %s\n", req.Theme)
	fmt.Fprintf(&b, "- Dates: %s to %s\n\n", req.DepartureDate, req.ReturnDate)
	b.WriteString("## Flights\n")
	fmt.Fprintf(&b, "%d options found\n", len(plan.Flights))
	for i, f := range plan.Flights {
		fmt.Fprintf(&b, "%d. %s | %s to %s | %s | %s | departs %s\n",
			i+1, f.Airline,
			format.Airport(f.DepartureAirport, f.DepartureAirportName),
			format.Airport(f.ArrivalAirport, f.ArrivalAirportName),
			f.Price, f.TotalDuration, f.DepartureTime)
	}
	b.WriteString("\n")
	b.WriteString("## Destination Research\n")
	b.WriteString(plan.Research)
	b.WriteString("\n\n## Hotels & Restaurants\n")
	b.WriteString(plan.Hotels)
	b.WriteString("\n\n## Itinerary\n")
	b.WriteString(plan.Itinerary)
	b.WriteString("\n")

	return b.String()
}

// ExportFileName names the download after the destination code.
func ExportFileName(plan *models.TravelPlan) string {
	return fmt.Sprintf("travel_plan_%s.txt", plan.Request.Destination)
}
