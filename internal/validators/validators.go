// Package validators holds the stateless input checks applied to a trip
// request before any external call is made. Every function is pure: the
// same input always yields the same verdict, and nothing here touches the
// network or process state.
package validators

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dharmasatrya/travelplanner/internal/models"
)

var (
	ErrEmptyAirportCode      = errors.New("airport code cannot be empty")
	ErrAirportCodeLength     = errors.New("airport code must be exactly 3 characters")
	ErrAirportCodeNonLetters = errors.New("airport code must contain only letters")

	ErrDepartureInPast    = errors.New("departure date cannot be in the past")
	ErrReturnBeforeDepart = errors.New("return date must be after departure date")
	ErrTripTooShort       = errors.New("trip must be at least 1 day long")
	ErrTooFarInFuture     = errors.New("cannot book flights more than 1 year in advance")

	ErrDurationTooShort = fmt.Errorf("trip duration must be at least %d day", models.MinTripDays)
	ErrDurationTooLong  = fmt.Errorf("trip duration cannot exceed %d days", models.MaxTripDays)

	ErrNoPreferences    = errors.New("please provide at least one activity preference")
	ErrPreferencesShort = errors.New("please provide more details about your activity preferences")
)

// ValidateAirportCode checks that code is a 3-letter IATA code after
// trimming and upper-casing.
func ValidateAirportCode(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ErrEmptyAirportCode
	}
	if len(code) != 3 {
		return ErrAirportCodeLength
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return ErrAirportCodeNonLetters
		}
	}
	return nil
}

// ValidateTripDates checks the departure/return pair against the caller's
// wall-clock date. The four checks are independent; the first failing one
// wins. Callers wanting every message run the checks via
// ValidateTripRequest instead.
func ValidateTripDates(departure, returnDate time.Time) error {
	return ValidateTripDatesAt(departure, returnDate, time.Now())
}

// ValidateTripDatesAt is ValidateTripDates with an explicit "today",
// compared at day granularity.
func ValidateTripDatesAt(departure, returnDate, now time.Time) error {
	today := truncateToDay(now)
	departure = truncateToDay(departure)
	returnDate = truncateToDay(returnDate)

	if departure.Before(today) {
		return ErrDepartureInPast
	}
	if returnDate.Before(departure) {
		return ErrReturnBeforeDepart
	}
	if returnDate.Sub(departure) < 24*time.Hour {
		return ErrTripTooShort
	}
	if departure.Sub(today) > models.MaxAdvanceDays*24*time.Hour {
		return ErrTooFarInFuture
	}
	return nil
}

// ValidateTripDuration checks the day count against the allowed range.
func ValidateTripDuration(days int) error {
	if days < models.MinTripDays {
		return ErrDurationTooShort
	}
	if days > models.MaxTripDays {
		return ErrDurationTooLong
	}
	return nil
}

// ValidateActivityText checks that the free-text preferences carry enough
// signal to be useful as prompt context. The length floor counts
// characters, not bytes, so non-Latin input is measured the same way.
func ValidateActivityText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrNoPreferences
	}
	if utf8.RuneCountInString(trimmed) < 10 {
		return ErrPreferencesShort
	}
	return nil
}

// SanitizeText trims whitespace and strips angle brackets. The text is
// later embedded verbatim into rendered markup, so this is a minimal
// injection defense, not a substitute for full HTML escaping.
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "<", "")
	text = strings.ReplaceAll(text, ">", "")
	return text
}

// ValidateTripRequest runs every check against the request and collects
// all failure messages, the way the presentation layer reports them.
func ValidateTripRequest(req models.TripRequest) []string {
	return validateTripRequestAt(req, time.Now())
}

func validateTripRequestAt(req models.TripRequest, now time.Time) []string {
	var errs []string

	if err := ValidateAirportCode(req.Origin); err != nil {
		errs = append(errs, "departure: "+err.Error())
	}
	if err := ValidateAirportCode(req.Destination); err != nil {
		errs = append(errs, "destination: "+err.Error())
	}
	origin := strings.ToUpper(strings.TrimSpace(req.Origin))
	destination := strings.ToUpper(strings.TrimSpace(req.Destination))
	if origin != "" && origin == destination {
		errs = append(errs, "departure and destination must be different")
	}

	departure, depErr := time.Parse(models.DateLayout, req.DepartureDate)
	returnDate, retErr := time.Parse(models.DateLayout, req.ReturnDate)
	switch {
	case depErr != nil:
		errs = append(errs, "departure date must be in YYYY-MM-DD format")
	case retErr != nil:
		errs = append(errs, "return date must be in YYYY-MM-DD format")
	default:
		if err := ValidateTripDatesAt(departure, returnDate, now); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if err := ValidateTripDuration(req.NumDays); err != nil {
		errs = append(errs, err.Error())
	}
	if err := ValidateActivityText(req.ActivityPreferences); err != nil {
		errs = append(errs, err.Error())
	}

	return errs
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
