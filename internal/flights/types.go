package flights

import "encoding/json"

// SearchResponse is the slice of the provider response this service reads.
// Offers are provider-controlled and frequently partial, so the fields
// that may arrive as a number, a string, or not at all stay raw until the
// normalization pipeline inspects them.
type SearchResponse struct {
	BestFlights []RawOffer `json:"best_flights"`
}

// RawOffer is one priced itinerary option, potentially multi-leg.
type RawOffer struct {
	Flights        []RawLeg        `json:"flights"`
	TotalDuration  json.RawMessage `json:"total_duration"`
	Price          json.RawMessage `json:"price"`
	AirlineLogo    string          `json:"airline_logo"`
	DepartureToken string          `json:"departure_token"`
	BookingToken   string          `json:"booking_token"`
}

// RawLeg is one direct flight segment within an offer.
type RawLeg struct {
	DepartureAirport RawEndpoint `json:"departure_airport"`
	ArrivalAirport   RawEndpoint `json:"arrival_airport"`
	Airline          string      `json:"airline"`
	AirlineLogo      string      `json:"airline_logo"`
	FlightNumber     string      `json:"flight_number"`
}

type RawEndpoint struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

// fieldState classifies a raw wire field so formatting can distinguish a
// value from a hole from garbage instead of hiding all three behind one
// sentinel.
type fieldState int

const (
	fieldMissing fieldState = iota
	fieldValue
	fieldUnparseable
)

// rawField extracts a raw JSON field as text. Numbers keep their literal
// form, strings are unquoted, null or absent is missing, and anything
// else (objects, arrays) is unparseable and returned verbatim.
func rawField(raw json.RawMessage) (string, fieldState) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", fieldMissing
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return string(raw), fieldUnparseable
		}
		if s == "" {
			return "", fieldMissing
		}
		return s, fieldValue
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return string(raw), fieldUnparseable
	}
	return n.String(), fieldValue
}
