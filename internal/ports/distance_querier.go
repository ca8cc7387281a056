package ports

import (
	"context"
	"fmt"
)

// Distance and travel duration between two postal codes.
// All fields are rounded to 2 decimal places for display.
type DistanceQueryResult struct {
	DistanceKm    float64
	DistanceMiles float64
	DurationMins  float64
}

// Contract for retrieving travel distance and duration between two postal codes.
type DistanceQuerier interface {
	// Return travel distance and estimated duration from source to destination.
	Query(ctx context.Context, source string, destination string) (DistanceQueryResult, error)
}

// RouteNotFoundError reports that the upstream service has no usable route
// for a (source, destination) pair. The message format is part of the
// adapter contract and is rendered to the user verbatim.
type RouteNotFoundError struct {
	Source      string
	Destination string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("No route found from %s to %s", e.Source, e.Destination)
}
