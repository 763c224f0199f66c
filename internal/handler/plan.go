package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/travelplanner/internal/flights"
	"github.com/dharmasatrya/travelplanner/internal/models"
	"github.com/dharmasatrya/travelplanner/internal/planner"
	"github.com/dharmasatrya/travelplanner/internal/validators"
	"github.com/dharmasatrya/travelplanner/internal/web"
)

// FlightSearcher is the slice of the flight client the handlers use
// directly (the plan pipeline gets its own copy through the service).
type FlightSearcher interface {
	Search(ctx context.Context, origin, destination, departureDate, returnDate string) (*flights.SearchResponse, bool, error)
}

type PlanHandler struct {
	service        *planner.Service
	store          *planner.Store
	searcher       FlightSearcher
	currencySymbol string
}

func NewPlanHandler(service *planner.Service, store *planner.Store, searcher FlightSearcher, currencySymbol string) *PlanHandler {
	return &PlanHandler{
		service:        service,
		store:          store,
		searcher:       searcher,
		currencySymbol: currencySymbol,
	}
}

// Index renders the trip-request form with the default trip.
func (h *PlanHandler) Index(c echo.Context) error {
	today := time.Now()
	req := models.TripRequest{
		Origin:        "BOM",
		Destination:   "DEL",
		DepartureDate: today.AddDate(0, 0, 7).Format(models.DateLayout),
		ReturnDate:    today.AddDate(0, 0, 12).Format(models.DateLayout),
		NumDays:       5,
	}
	req.ApplyDefaults()

	return c.Render(http.StatusOK, "index.html", h.formPage(req, nil))
}

// CreatePlanPage handles the form submission: validate everything,
// collect every failure, and either re-render the form or run the full
// pipeline and render the plan.
func (h *PlanHandler) CreatePlanPage(c echo.Context) error {
	var req models.TripRequest
	if err := c.Bind(&req); err != nil {
		return c.Render(http.StatusBadRequest, "index.html",
			h.formPage(req, []string{"could not read the submitted form"}))
	}
	normalizeRequest(&req)

	if errs := validators.ValidateTripRequest(req); len(errs) > 0 {
		return c.Render(http.StatusBadRequest, "index.html", h.formPage(req, errs))
	}

	plan := h.service.Generate(c.Request().Context(), req)

	page := web.PlanPage{
		Title:         "Your Travel Plan",
		Plan:          plan,
		ResearchHTML:  web.Markdown(plan.Research),
		HotelsHTML:    web.Markdown(plan.Hotels),
		ItineraryHTML: web.Markdown(plan.Itinerary),
	}
	if unresolvedBookingLinks(plan.Flights) {
		page.Warning = "Booking links could not be resolved for some flights."
	}

	return c.Render(http.StatusOK, "plan.html", page)
}

// ExportPlan serves the plain-text document for a stored plan.
func (h *PlanHandler) ExportPlan(c echo.Context) error {
	plan, ok := h.store.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "No travel plan with that id",
			Code:    http.StatusNotFound,
		})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", planner.ExportFileName(plan)))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(planner.ExportText(plan)))
}

// CreatePlanAPI is the JSON mirror of CreatePlanPage.
func (h *PlanHandler) CreatePlanAPI(c echo.Context) error {
	startTime := time.Now()

	var req models.TripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}
	normalizeRequest(&req)

	if errs := validators.ValidateTripRequest(req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "Trip request failed validation",
			Details: errs,
			Code:    http.StatusBadRequest,
		})
	}

	plan := h.service.Generate(c.Request().Context(), req)

	return c.JSON(http.StatusOK, models.PlanResponse{
		Plan: plan,
		Metadata: models.ResponseMeta{
			FlightsFound: len(plan.Flights),
			ElapsedMs:    time.Since(startTime).Milliseconds(),
		},
	})
}

// SearchFlightsAPI exposes the flight search and normalization pipeline
// on its own.
func (h *PlanHandler) SearchFlightsAPI(c echo.Context) error {
	startTime := time.Now()

	var req FlightSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if errs := req.Validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "Flight search request failed validation",
			Details: errs,
			Code:    http.StatusBadRequest,
		})
	}

	resp, cacheHit, err := h.searcher.Search(c.Request().Context(), req.Origin, req.Destination, req.DepartureDate, req.ReturnDate)
	found := []models.NormalizedFlight{}
	if err == nil {
		found = flights.Normalize(*resp, req.Limit, h.currencySymbol)
	}

	return c.JSON(http.StatusOK, models.FlightSearchResponse{
		Flights: found,
		Metadata: models.ResponseMeta{
			FlightsFound: len(found),
			ElapsedMs:    time.Since(startTime).Milliseconds(),
			CacheHit:     cacheHit,
		},
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// FlightSearchRequest is the JSON body for the standalone flight search.
type FlightSearchRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
	Limit         int    `json:"limit"`
}

func (r *FlightSearchRequest) Validate() []string {
	var errs []string
	if err := validators.ValidateAirportCode(r.Origin); err != nil {
		errs = append(errs, "origin: "+err.Error())
	}
	if err := validators.ValidateAirportCode(r.Destination); err != nil {
		errs = append(errs, "destination: "+err.Error())
	}
	if _, err := time.Parse(models.DateLayout, r.DepartureDate); err != nil {
		errs = append(errs, "departure_date must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse(models.DateLayout, r.ReturnDate); err != nil {
		errs = append(errs, "return_date must be in YYYY-MM-DD format")
	}
	if r.Limit <= 0 {
		r.Limit = planner.DefaultFlightLimit
	}
	return errs
}

func (h *PlanHandler) formPage(req models.TripRequest, errs []string) web.FormPage {
	return web.FormPage{
		Title:         "AI Travel Planner",
		Themes:        models.TravelThemes,
		Budgets:       models.BudgetTiers,
		FlightClasses: models.FlightClasses,
		HotelRatings:  models.HotelRatings,
		Request:       req,
		Errors:        errs,
	}
}

func normalizeRequest(req *models.TripRequest) {
	req.Origin = strings.ToUpper(strings.TrimSpace(req.Origin))
	req.Destination = strings.ToUpper(strings.TrimSpace(req.Destination))
	req.ActivityPreferences = validators.SanitizeText(req.ActivityPreferences)
	req.ApplyDefaults()
}

func unresolvedBookingLinks(found []models.NormalizedFlight) bool {
	for _, f := range found {
		if f.DepartureToken != "" && f.BookingLink == flights.PlaceholderLink {
			return true
		}
	}
	return false
}
