// Package planner orchestrates one generate-plan action: flight search,
// destination research, hotel and restaurant finding, and itinerary
// creation, strictly in that order. Each step blocks on its network
// round trip before the next starts.
package planner

import (
	"context"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/dharmasatrya/travelplanner/internal/agents"
	"github.com/dharmasatrya/travelplanner/internal/format"
	"github.com/dharmasatrya/travelplanner/internal/models"
	"github.com/dharmasatrya/travelplanner/internal/validators"
)

// DefaultFlightLimit is how many cheapest flights a plan presents.
const DefaultFlightLimit = 3

// FlightSearcher is the slice of the flight client the planner needs.
type FlightSearcher interface {
	SearchAndExtract(ctx context.Context, origin, destination, departureDate, returnDate string, limit int) []models.NormalizedFlight
	ResolveBookingLink(ctx context.Context, flight models.NormalizedFlight, origin, destination, departureDate, returnDate string) string
}

type Service struct {
	flights     FlightSearcher
	researcher  *agents.Researcher
	finder      *agents.Finder
	planner     *agents.Planner
	store       *Store
	flightLimit int
	log         *charmlog.Logger
}

func NewService(flights FlightSearcher, researcher *agents.Researcher, finder *agents.Finder, itinerary *agents.Planner, store *Store, logger *charmlog.Logger) *Service {
	if logger == nil {
		logger = charmlog.Default()
	}
	return &Service{
		flights:     flights,
		researcher:  researcher,
		finder:      finder,
		planner:     itinerary,
		store:       store,
		flightLimit: DefaultFlightLimit,
		log:         logger,
	}
}

// Generate runs the full pipeline for a validated request. It never
// fails: missing flights degrade to an empty list and agent failures
// arrive as displayable error text inside the plan.
func (s *Service) Generate(ctx context.Context, req models.TripRequest) *models.TravelPlan {
	req.ActivityPreferences = validators.SanitizeText(req.ActivityPreferences)

	started := time.Now()
	s.log.Info("generating travel plan",
		"origin", req.Origin, "destination", req.Destination,
		"departure", req.DepartureDate, "return", req.ReturnDate)

	found := s.flights.SearchAndExtract(ctx, req.Origin, req.Destination, req.DepartureDate, req.ReturnDate, s.flightLimit)
	for i := range found {
		found[i].BookingLink = s.flights.ResolveBookingLink(ctx, found[i], req.Origin, req.Destination, req.DepartureDate, req.ReturnDate)
	}
	s.log.Info("flight search complete", "flights", len(found))

	research := s.researcher.Research(ctx, agents.ResearchParams{
		Destination:         req.Destination,
		NumDays:             req.NumDays,
		Theme:               req.Theme,
		ActivityPreferences: req.ActivityPreferences,
		Budget:              req.Budget,
	})
	s.log.Debug("research complete", "preview", format.Truncate(research, 120))

	hotels := s.finder.Find(ctx, agents.FinderParams{
		Destination:         req.Destination,
		Theme:               req.Theme,
		Budget:              req.Budget,
		HotelRating:         req.HotelRating,
		ActivityPreferences: req.ActivityPreferences,
	})
	s.log.Debug("accommodation search complete", "preview", format.Truncate(hotels, 120))

	itinerary := s.planner.Plan(ctx, agents.PlannerParams{
		Destination:         req.Destination,
		NumDays:             req.NumDays,
		Theme:               req.Theme,
		ActivityPreferences: req.ActivityPreferences,
		Budget:              req.Budget,
		ResearchData:        research,
		HotelData:           hotels,
	})

	plan := &models.TravelPlan{
		ID:          uuid.NewString(),
		Request:     req,
		Flights:     found,
		Research:    research,
		Hotels:      hotels,
		Itinerary:   itinerary,
		GeneratedAt: time.Now(),
	}

	if s.store != nil {
		s.store.Put(plan)
	}

	s.log.Info("travel plan generated", "plan_id", plan.ID, "elapsed", time.Since(started))
	return plan
}
