package models

import "time"

// NormalizedFlight is the display-ready projection of one provider offer.
// Every string field is pre-formatted: missing or unparseable source data
// degrades to "N/A" (or "Not Available" for prices), never to an error.
type NormalizedFlight struct {
	Airline              string `json:"airline"`
	AirlineLogo          string `json:"airline_logo,omitempty"`
	Price                string `json:"price"`
	TotalDuration        string `json:"total_duration"`
	DepartureTime        string `json:"departure_time"`
	DepartureAirport     string `json:"departure_airport"`
	DepartureAirportName string `json:"departure_airport_name"`
	ArrivalTime          string `json:"arrival_time"`
	ArrivalAirport       string `json:"arrival_airport"`
	ArrivalAirportName   string `json:"arrival_airport_name"`
	Stops                int    `json:"stops"`
	DepartureToken       string `json:"departure_token,omitempty"`
	BookingToken         string `json:"booking_token,omitempty"`
	BookingLink          string `json:"booking_link"`
}

// TravelPlan is the assembled result of one generate-plan action.
type TravelPlan struct {
	ID          string             `json:"id"`
	Request     TripRequest        `json:"request"`
	Flights     []NormalizedFlight `json:"flights"`
	Research    string             `json:"research"`
	Hotels      string             `json:"hotels"`
	Itinerary   string             `json:"itinerary"`
	GeneratedAt time.Time          `json:"generated_at"`
}
