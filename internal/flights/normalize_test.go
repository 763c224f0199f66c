package flights

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const symbol = "₹"

func offer(price string, legs ...RawLeg) RawOffer {
	o := RawOffer{Flights: legs}
	if price != "" {
		o.Price = json.RawMessage(price)
	}
	return o
}

func leg(airline, depID, depName, depTime, arrID, arrName, arrTime string) RawLeg {
	return RawLeg{
		Airline:          airline,
		DepartureAirport: RawEndpoint{ID: depID, Name: depName, Time: depTime},
		ArrivalAirport:   RawEndpoint{ID: arrID, Name: arrName, Time: arrTime},
	}
}

func TestNormalizeSortsByPriceAndLimits(t *testing.T) {
	resp := SearchResponse{BestFlights: []RawOffer{
		offer("500", leg("IndiGo", "BOM", "", "", "DEL", "", "")),
		offer("200", leg("Air India", "BOM", "", "", "DEL", "", "")),
		offer("800", leg("Vistara", "BOM", "", "", "DEL", "", "")),
		offer("", leg("SpiceJet", "BOM", "", "", "DEL", "", "")),
	}}

	got := Normalize(resp, 2, symbol)

	require.Len(t, got, 2)
	assert.Equal(t, "₹200", got[0].Price)
	assert.Equal(t, "Air India", got[0].Airline)
	assert.Equal(t, "₹500", got[1].Price)
}

func TestNormalizeMissingPriceSortsLast(t *testing.T) {
	resp := SearchResponse{BestFlights: []RawOffer{
		offer("", leg("SpiceJet", "BOM", "", "", "DEL", "", "")),
		offer("300", leg("IndiGo", "BOM", "", "", "DEL", "", "")),
	}}

	got := Normalize(resp, 0, symbol)

	require.Len(t, got, 2)
	assert.Equal(t, "₹300", got[0].Price)
	assert.Equal(t, "Not Available", got[1].Price)
}

func TestNormalizeEmptyResponse(t *testing.T) {
	assert.Empty(t, Normalize(SearchResponse{}, 3, symbol))
	assert.Empty(t, Normalize(SearchResponse{BestFlights: []RawOffer{}}, 3, symbol))
}

func TestNormalizeMultiLegUsesFirstAndLast(t *testing.T) {
	resp := SearchResponse{BestFlights: []RawOffer{
		offer("4500",
			leg("Air India", "BOM", "Chhatrapati Shivaji", "2025-03-06 06:10", "DXB", "Dubai International", "2025-03-06 08:30"),
			leg("Air India", "DXB", "Dubai International", "2025-03-06 10:00", "LHR", "Heathrow", "2025-03-06 14:40"),
		),
	}}

	got := Normalize(resp, 3, symbol)

	require.Len(t, got, 1)
	f := got[0]
	assert.Equal(t, 1, f.Stops)
	assert.Equal(t, "BOM", f.DepartureAirport)
	assert.Equal(t, "Chhatrapati Shivaji", f.DepartureAirportName)
	assert.Equal(t, "Mar-06, 2025 | 6:10 AM", f.DepartureTime)
	assert.Equal(t, "LHR", f.ArrivalAirport)
	assert.Equal(t, "Heathrow", f.ArrivalAirportName)
	assert.Equal(t, "Mar-06, 2025 | 2:40 PM", f.ArrivalTime)
}

func TestNormalizeSingleLegIsNonStop(t *testing.T) {
	resp := SearchResponse{BestFlights: []RawOffer{
		offer("1200", leg("IndiGo", "BOM", "", "2025-03-06 09:00", "DEL", "", "2025-03-06 11:10")),
	}}

	got := Normalize(resp, 3, symbol)

	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Stops)
	assert.Equal(t, got[0].DepartureAirport, "BOM")
	assert.Equal(t, got[0].ArrivalAirport, "DEL")
}

func TestNormalizeDegradesMissingFields(t *testing.T) {
	resp := SearchResponse{BestFlights: []RawOffer{
		{}, // no legs, no price, no duration
	}}

	got := Normalize(resp, 3, symbol)

	require.Len(t, got, 1)
	f := got[0]
	assert.Equal(t, "Unknown Airline", f.Airline)
	assert.Equal(t, "Not Available", f.Price)
	assert.Equal(t, "N/A", f.TotalDuration)
	assert.Equal(t, "N/A", f.DepartureTime)
	assert.Equal(t, "N/A", f.DepartureAirport)
	assert.Equal(t, "N/A", f.ArrivalAirportName)
	assert.Equal(t, 0, f.Stops)
	assert.Equal(t, PlaceholderLink, f.BookingLink)
}

func TestNormalizeStringPriceAndDuration(t *testing.T) {
	o := offer("", leg("IndiGo", "BOM", "", "", "DEL", "", ""))
	o.Price = json.RawMessage(`"₹4,250"`)
	o.TotalDuration = json.RawMessage(`"135"`)
	resp := SearchResponse{BestFlights: []RawOffer{o}}

	got := Normalize(resp, 3, symbol)

	require.Len(t, got, 1)
	assert.Equal(t, "₹4,250", got[0].Price)
	assert.Equal(t, "2h 15m", got[0].TotalDuration)
}

func TestNormalizeBrokenOfferDoesNotAbortBatch(t *testing.T) {
	broken := RawOffer{
		Price:         json.RawMessage(`{"weird":"object"}`),
		TotalDuration: json.RawMessage(`[1,2]`),
	}
	resp := SearchResponse{BestFlights: []RawOffer{
		broken,
		offer("900", leg("IndiGo", "BOM", "", "", "DEL", "", "")),
	}}

	got := Normalize(resp, 0, symbol)

	require.Len(t, got, 2)
	assert.Equal(t, "₹900", got[0].Price)
	// The unparseable price renders verbatim rather than failing.
	assert.Equal(t, `{"weird":"object"}`, got[1].Price)
}

func TestPriceSortKeyHandlesFormattedStrings(t *testing.T) {
	o := RawOffer{Price: json.RawMessage(`"₹1,250"`)}
	assert.InDelta(t, 1250, priceSortKey(o, symbol), 0.001)
}

func TestRawField(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      string
		wantState fieldState
	}{
		{name: "number", raw: `425`, want: "425", wantState: fieldValue},
		{name: "float", raw: `425.5`, want: "425.5", wantState: fieldValue},
		{name: "string", raw: `"425"`, want: "425", wantState: fieldValue},
		{name: "empty string is missing", raw: `""`, want: "", wantState: fieldMissing},
		{name: "null is missing", raw: `null`, want: "", wantState: fieldMissing},
		{name: "absent is missing", raw: ``, want: "", wantState: fieldMissing},
		{name: "object is unparseable", raw: `{"a":1}`, want: `{"a":1}`, wantState: fieldUnparseable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw json.RawMessage
			if tt.raw != "" {
				raw = json.RawMessage(tt.raw)
			}
			got, state := rawField(raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantState, state)
		})
	}
}
