package flights

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/travelplanner/internal/cache"
	"github.com/dharmasatrya/travelplanner/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(Config{
		APIKey:   "test-key",
		BaseURL:  server.URL,
		Currency: "INR",
		Symbol:   "₹",
		Language: "en",
	}, cache.NewMemoryCache(), nil, nil)

	return client, server
}

func searchPayload(prices ...int) SearchResponse {
	resp := SearchResponse{}
	for _, p := range prices {
		raw, _ := json.Marshal(p)
		resp.BestFlights = append(resp.BestFlights, RawOffer{
			Price: raw,
			Flights: []RawLeg{{
				Airline:          "IndiGo",
				DepartureAirport: RawEndpoint{ID: "BOM", Time: "2025-03-06 09:00"},
				ArrivalAirport:   RawEndpoint{ID: "DEL", Time: "2025-03-06 11:10"},
			}},
		})
	}
	return resp
}

func TestSearchAndExtract(t *testing.T) {
	var gotParams map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotParams = map[string]string{}
		for k := range r.URL.Query() {
			gotParams[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(searchPayload(500, 200, 800))
	})

	got := client.SearchAndExtract(context.Background(), "bom", "del", "2025-03-06", "2025-03-11", 2)

	require.Len(t, got, 2)
	assert.Equal(t, "₹200", got[0].Price)
	assert.Equal(t, "₹500", got[1].Price)

	assert.Equal(t, "google_flights", gotParams["engine"])
	assert.Equal(t, "BOM", gotParams["departure_id"])
	assert.Equal(t, "DEL", gotParams["arrival_id"])
	assert.Equal(t, "2025-03-06", gotParams["outbound_date"])
	assert.Equal(t, "2025-03-11", gotParams["return_date"])
	assert.Equal(t, "INR", gotParams["currency"])
	assert.Equal(t, "en", gotParams["hl"])
	assert.Equal(t, "test-key", gotParams["api_key"])
}

func TestSearchAndExtractAbsorbsProviderFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	got := client.SearchAndExtract(context.Background(), "BOM", "DEL", "2025-03-06", "2025-03-11", 3)
	assert.Empty(t, got)
}

func TestSearchAndExtractAbsorbsMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not json"))
	})

	got := client.SearchAndExtract(context.Background(), "BOM", "DEL", "2025-03-06", "2025-03-11", 3)
	assert.Empty(t, got)
}

func TestSearchAndExtractEmptyOfferListIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"best_flights":[]}`))
	})

	got := client.SearchAndExtract(context.Background(), "BOM", "DEL", "2025-03-06", "2025-03-11", 3)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchUsesSessionCache(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(searchPayload(500))
	})

	ctx := context.Background()

	_, hit, err := client.Search(ctx, "BOM", "DEL", "2025-03-06", "2025-03-11")
	require.NoError(t, err)
	assert.False(t, hit)

	resp, hit, err := client.Search(ctx, "BOM", "DEL", "2025-03-06", "2025-03-11")
	require.NoError(t, err)
	assert.True(t, hit)
	require.Len(t, resp.BestFlights, 1)

	// Different arguments miss the cache.
	_, hit, err = client.Search(ctx, "BOM", "DEL", "2025-03-07", "2025-03-11")
	require.NoError(t, err)
	assert.False(t, hit)

	assert.Equal(t, 2, requests)
}

func TestResolveBookingLinkWithoutTokenIsPlaceholder(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected when the flight has no continuation token")
	})

	flight := models.NormalizedFlight{}
	got := client.ResolveBookingLink(context.Background(), flight, "BOM", "DEL", "2025-03-06", "2025-03-11")
	assert.Equal(t, PlaceholderLink, got)
}

func TestResolveBookingLinkHappyPath(t *testing.T) {
	var gotParams map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotParams = map[string]string{}
		for k := range r.URL.Query() {
			gotParams[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"best_flights":[{"booking_token":"tok-123"}]}`))
	})

	flight := models.NormalizedFlight{DepartureToken: "dep-tok"}
	got := client.ResolveBookingLink(context.Background(), flight, "BOM", "DEL", "2025-03-06", "2025-03-11")

	assert.Equal(t, "https://www.google.com/travel/flights?tfs=tok-123", got)

	// The follow-up call reuses the full trip parameters plus the token.
	assert.Equal(t, "dep-tok", gotParams["departure_token"])
	assert.Equal(t, "BOM", gotParams["departure_id"])
	assert.Equal(t, "DEL", gotParams["arrival_id"])
	assert.Equal(t, "2025-03-06", gotParams["outbound_date"])
	assert.Equal(t, "2025-03-11", gotParams["return_date"])
}

func TestResolveBookingLinkMissingBookingToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"best_flights":[{}]}`))
	})

	flight := models.NormalizedFlight{DepartureToken: "dep-tok"}
	got := client.ResolveBookingLink(context.Background(), flight, "BOM", "DEL", "2025-03-06", "2025-03-11")
	assert.Equal(t, PlaceholderLink, got)
}

func TestResolveBookingLinkProviderFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	flight := models.NormalizedFlight{DepartureToken: "dep-tok"}
	got := client.ResolveBookingLink(context.Background(), flight, "BOM", "DEL", "2025-03-06", "2025-03-11")
	assert.Equal(t, PlaceholderLink, got)
}
