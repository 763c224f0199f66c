package models

const (
	MinTripDays    = 1
	MaxTripDays    = 30
	MaxAdvanceDays = 365

	// DateLayout is the wire format for trip dates, both in the form
	// inputs and in the flight-provider query parameters.
	DateLayout = "2006-01-02"
)

// TravelThemes are the selectable trip styles. The theme is used only as
// prompt context for the agents, never as branching logic.
var TravelThemes = []string{
	"Couple Getaway",
	"Family Vacation",
	"Adventure Trip",
	"Solo Exploration",
}

var BudgetTiers = []string{"Economy", "Standard", "Luxury"}

var FlightClasses = []string{"Economy", "Business", "First Class"}

var HotelRatings = []string{"Any", "3 Star", "4 Star", "5 Star"}

// TripRequest carries the user-supplied trip parameters. It is validated
// once at the boundary (validators.ValidateTripRequest) and treated as
// read-only by everything downstream.
type TripRequest struct {
	Origin              string `json:"origin" form:"origin"`
	Destination         string `json:"destination" form:"destination"`
	DepartureDate       string `json:"departure_date" form:"departure_date"`
	ReturnDate          string `json:"return_date" form:"return_date"`
	NumDays             int    `json:"num_days" form:"num_days"`
	Theme               string `json:"theme" form:"theme"`
	ActivityPreferences string `json:"activity_preferences" form:"activity_preferences"`
	Budget              string `json:"budget" form:"budget"`
	FlightClass         string `json:"flight_class" form:"flight_class"`
	HotelRating         string `json:"hotel_rating" form:"hotel_rating"`
}

// ApplyDefaults fills optional preference fields the form may omit.
// NumDays is not defaulted here: a zero day count must reach validation
// and fail there, not be silently promoted.
func (r *TripRequest) ApplyDefaults() {
	if r.Theme == "" {
		r.Theme = TravelThemes[0]
	}
	if r.Budget == "" {
		r.Budget = "Standard"
	}
	if r.FlightClass == "" {
		r.FlightClass = "Economy"
	}
	if r.HotelRating == "" {
		r.HotelRating = "Any"
	}
}
