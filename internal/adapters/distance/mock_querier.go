package distance

import (
	"context"
	"fmt"

	"postal-distance-service/internal/ports"
)

type MockPair struct {
	From, To string
	Km       float64
	Miles    float64
	Mins     float64
}

type MockQuerier struct {
	m map[string]ports.DistanceQueryResult
}

func NewMockQuerier(pairs []MockPair) *MockQuerier {
	m := make(map[string]ports.DistanceQueryResult, len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To] = ports.DistanceQueryResult{DistanceKm: p.Km, DistanceMiles: p.Miles, DurationMins: p.Mins}
	}
	return &MockQuerier{m: m}
}

func (q *MockQuerier) Query(ctx context.Context, source, destination string) (ports.DistanceQueryResult, error) {
	r, ok := q.m[source+"|"+destination]
	if !ok {
		return ports.DistanceQueryResult{}, fmt.Errorf("missing pair %q -> %q", source, destination)
	}

	return r, nil
}
