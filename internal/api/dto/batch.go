package dto

type BatchRequest struct {
	Sources     []string `json:"sources"`
	Destination string   `json:"destination"`
}

type RecordResponse struct {
	Source        string   `json:"source"`
	DistanceKm    *float64 `json:"distance_km,omitempty"`
	DistanceMiles *float64 `json:"distance_miles,omitempty"`
	DurationMins  *float64 `json:"duration_mins,omitempty"`
	Error         string   `json:"error,omitempty"`
	IsMin         bool     `json:"is_min"`
}

type BatchResponse struct {
	Destination string           `json:"destination"`
	Records     []RecordResponse `json:"records"`
}
