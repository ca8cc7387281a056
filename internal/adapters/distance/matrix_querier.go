package distance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"postal-distance-service/internal/platform/obs"
	"postal-distance-service/internal/ports"
)

const (
	statusOK   = "OK"
	milesPerKm = 0.621371
)

// MatrixQuerier implements DistanceQuerier against a distance-matrix style
// HTTP endpoint (origins/destinations query parameters, row/element JSON).
//
// Every invocation issues exactly one outbound request: no caching, no
// retry. The only timeout is the one configured on the underlying client.
//
// The querier is safe for concurrent use.
type MatrixQuerier struct {
	session *http.Client
	baseURL string
}

func NewMatrixQuerier(baseURL string, timeout time.Duration) (*MatrixQuerier, error) {
	if baseURL == "" {
		return nil, errors.New("matrix base URL is empty")
	}

	querier := &MatrixQuerier{
		session: &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}

	return querier, nil
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value float64 `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// Query retrieves distance and duration for a single (source, destination)
// pair. Only rows[0].elements[0] of the upstream response is consulted.
func (m *MatrixQuerier) Query(
	ctx context.Context,
	source string,
	destination string,
) (_ ports.DistanceQueryResult, err error) {
	defer obs.Time(ctx, "matrix.Query")(&err)

	if source == "" || destination == "" {
		return ports.DistanceQueryResult{}, errors.New("query distance: source and destination must be non-empty")
	}

	req, err := m.newRequest(ctx, source, destination)
	if err != nil {
		return ports.DistanceQueryResult{}, fmt.Errorf("build matrix request: %w", err)
	}

	resp, err := m.do(req)
	if err != nil {
		return ports.DistanceQueryResult{}, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.DistanceQueryResult{}, fmt.Errorf("decode matrix response: %w", err)
	}

	if decoded.Status != statusOK {
		return ports.DistanceQueryResult{}, &ports.RouteNotFoundError{Source: source, Destination: destination}
	}

	if len(decoded.Rows) == 0 || len(decoded.Rows[0].Elements) == 0 {
		return ports.DistanceQueryResult{}, fmt.Errorf(
			"matrix response has no elements for %q -> %q",
			source, destination,
		)
	}

	element := decoded.Rows[0].Elements[0]
	if element.Status != statusOK {
		return ports.DistanceQueryResult{}, &ports.RouteNotFoundError{Source: source, Destination: destination}
	}

	// Miles derive from the unrounded km value; each field is then
	// rounded independently.
	km := element.Distance.Value / 1000
	miles := km * milesPerKm
	mins := element.Duration.Value / 60

	return ports.DistanceQueryResult{
		DistanceKm:    round2(km),
		DistanceMiles: round2(miles),
		DurationMins:  round2(mins),
	}, nil
}
