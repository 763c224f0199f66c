// Package flights wraps the external flight-search provider and the
// normalization pipeline that turns its semi-structured offers into
// uniformly shaped, always-renderable records.
package flights

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"

	"github.com/dharmasatrya/travelplanner/internal/cache"
	"github.com/dharmasatrya/travelplanner/internal/models"
	"github.com/dharmasatrya/travelplanner/internal/ratelimit"
)

const (
	defaultBaseURL = "https://serpapi.com/search"

	// PlaceholderLink stands in whenever a bookable deep link cannot
	// be resolved.
	PlaceholderLink = "#"

	bookingLinkPrefix = "https://www.google.com/travel/flights?tfs="
)

type Config struct {
	APIKey   string
	BaseURL  string
	Currency string
	Symbol   string
	Language string
	Timeout  time.Duration
}

// Client queries the google_flights engine. Transport and provider
// failures are absorbed at this boundary: callers of SearchAndExtract
// and ResolveBookingLink get an empty result or a placeholder, never an
// error.
type Client struct {
	http     *resty.Client
	apiKey   string
	currency string
	symbol   string
	language string
	cache    cache.Cache
	limiter  *ratelimit.EndpointLimiter
	log      *charmlog.Logger
}

func NewClient(cfg Config, store cache.Cache, limiter *ratelimit.EndpointLimiter, logger *charmlog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second)

	if store == nil {
		store = cache.NewNoOpCache()
	}
	if logger == nil {
		logger = charmlog.Default()
	}

	return &Client{
		http:     httpClient,
		apiKey:   cfg.APIKey,
		currency: cfg.Currency,
		symbol:   cfg.Symbol,
		language: cfg.Language,
		cache:    store,
		limiter:  limiter,
		log:      logger,
	}
}

func (c *Client) queryParams(origin, destination, departureDate, returnDate string) map[string]string {
	return map[string]string{
		"engine":        "google_flights",
		"departure_id":  strings.ToUpper(origin),
		"arrival_id":    strings.ToUpper(destination),
		"outbound_date": departureDate,
		"return_date":   returnDate,
		"currency":      c.currency,
		"hl":            c.language,
		"api_key":       c.apiKey,
	}
}

// Search performs the initial provider query. The second return value
// reports whether the response came from the session cache.
func (c *Client) Search(ctx context.Context, origin, destination, departureDate, returnDate string) (*SearchResponse, bool, error) {
	key := cache.Key("search", strings.ToUpper(origin), strings.ToUpper(destination), departureDate, returnDate, c.currency, c.language)

	if data, ok := c.cache.Get(ctx, key); ok {
		var cached SearchResponse
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, true, nil
		}
	}

	resp, err := c.query(ctx, c.queryParams(origin, destination, departureDate, returnDate))
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(resp); err == nil {
		_ = c.cache.Set(ctx, key, data)
	}

	return resp, false, nil
}

func (c *Client) query(ctx context.Context, params map[string]string) (*SearchResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, ratelimit.EndpointFlights); err != nil {
			return nil, err
		}
	}

	var result SearchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get("")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &ProviderError{Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	return &result, nil
}

// SearchAndExtract runs the search and normalization in one call. Any
// failure degrades to an empty slice, so "no flights" and "search
// failed" look the same here; the failure is logged for the operator.
func (c *Client) SearchAndExtract(ctx context.Context, origin, destination, departureDate, returnDate string, limit int) []models.NormalizedFlight {
	resp, _, err := c.Search(ctx, origin, destination, departureDate, returnDate)
	if err != nil {
		c.log.Warn("flight search failed", "origin", origin, "destination", destination, "error", err)
		return []models.NormalizedFlight{}
	}

	return Normalize(*resp, limit, c.symbol)
}

// ResolveBookingLink exchanges a flight's continuation token for a deep
// booking link. The follow-up query must carry the same trip parameters
// plus the token, not the token alone. Every failure path degrades to
// the placeholder.
func (c *Client) ResolveBookingLink(ctx context.Context, flight models.NormalizedFlight, origin, destination, departureDate, returnDate string) string {
	if flight.DepartureToken == "" {
		return PlaceholderLink
	}

	params := c.queryParams(origin, destination, departureDate, returnDate)
	params["departure_token"] = flight.DepartureToken

	resp, err := c.query(ctx, params)
	if err != nil {
		c.log.Warn("booking link lookup failed", "origin", origin, "destination", destination, "error", err)
		return PlaceholderLink
	}

	if len(resp.BestFlights) == 0 || resp.BestFlights[0].BookingToken == "" {
		return PlaceholderLink
	}

	return bookingLinkPrefix + resp.BestFlights[0].BookingToken
}

// ProviderError reports a non-2xx provider response.
type ProviderError struct {
	Status int
	Body   string
}

func (e *ProviderError) Error() string {
	return "flight provider returned status " + strconv.Itoa(e.Status)
}
