package flights

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/dharmasatrya/travelplanner/internal/format"
	"github.com/dharmasatrya/travelplanner/internal/models"
)

// Normalize turns a raw search response into at most limit display-ready
// flights, cheapest first. An absent or empty offer list is a valid
// "no flights found" outcome, not an error. Offers without a parseable
// price sort last; a partially populated offer degrades field by field
// to sentinels instead of failing the batch.
func Normalize(resp SearchResponse, limit int, symbol string) []models.NormalizedFlight {
	offers := resp.BestFlights
	if len(offers) == 0 {
		return []models.NormalizedFlight{}
	}

	sorted := make([]RawOffer, len(offers))
	copy(sorted, offers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return priceSortKey(sorted[i], symbol) < priceSortKey(sorted[j], symbol)
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	normalized := make([]models.NormalizedFlight, 0, len(sorted))
	for _, offer := range sorted {
		normalized = append(normalized, project(offer, symbol))
	}

	return normalized
}

// priceSortKey treats a missing or unparseable price as positive
// infinity so such offers rank last without breaking the sort.
func priceSortKey(offer RawOffer, symbol string) float64 {
	raw, state := rawField(offer.Price)
	if state != fieldValue {
		return math.Inf(1)
	}

	cleaned := strings.ReplaceAll(raw, symbol, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	value, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return math.Inf(1)
	}
	return value
}

// project flattens one offer into a NormalizedFlight, using the first
// leg for departure information and the last leg for arrival
// information. Single-leg itineraries use the same leg for both.
func project(offer RawOffer, symbol string) models.NormalizedFlight {
	var first, last RawLeg
	if len(offer.Flights) > 0 {
		first = offer.Flights[0]
		last = offer.Flights[len(offer.Flights)-1]
	}

	stops := len(offer.Flights) - 1
	if stops < 0 {
		stops = 0
	}

	airline := first.Airline
	if airline == "" {
		airline = "Unknown Airline"
	}

	price, priceState := rawField(offer.Price)
	if priceState == fieldMissing {
		price = ""
	}
	duration, durationState := rawField(offer.TotalDuration)
	if durationState == fieldMissing {
		duration = ""
	}

	return models.NormalizedFlight{
		Airline:              airline,
		AirlineLogo:          offer.AirlineLogo,
		Price:                format.Price(price, symbol),
		TotalDuration:        format.Duration(duration),
		DepartureTime:        format.Timestamp(first.DepartureAirport.Time),
		DepartureAirport:     orNA(first.DepartureAirport.ID),
		DepartureAirportName: orNA(first.DepartureAirport.Name),
		ArrivalTime:          format.Timestamp(last.ArrivalAirport.Time),
		ArrivalAirport:       orNA(last.ArrivalAirport.ID),
		ArrivalAirportName:   orNA(last.ArrivalAirport.Name),
		Stops:                stops,
		DepartureToken:       offer.DepartureToken,
		BookingToken:         offer.BookingToken,
		BookingLink:          PlaceholderLink,
	}
}

func orNA(s string) string {
	if s == "" {
		return format.NotAvailable
	}
	return s
}
