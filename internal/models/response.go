package models

type PlanResponse struct {
	Plan     *TravelPlan  `json:"plan"`
	Metadata ResponseMeta `json:"metadata"`
}

type ResponseMeta struct {
	FlightsFound int   `json:"flights_found"`
	ElapsedMs    int64 `json:"elapsed_ms"`
	CacheHit     bool  `json:"cache_hit"`
}

type FlightSearchResponse struct {
	Flights  []NormalizedFlight `json:"flights"`
	Metadata ResponseMeta       `json:"metadata"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	Code    int      `json:"code"`
}
