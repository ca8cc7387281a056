package services

import (
	"context"
	"math"
	"strings"

	"postal-distance-service/internal/domain"
	"postal-distance-service/internal/ports"
)

// ComputeBatch queries the distance provider once per source, in input order.
//
// Queries run strictly sequentially: each call fully resolves before the
// next begins, so total batch latency is the sum of the round-trips. This
// also keeps exactly one outbound call in flight per submission.
//
// Individual failures (route-not-found or transport errors alike) are
// captured on their record and never abort the remaining queries; the
// batch itself has no failure mode and always returns one record per
// source, in the order the sources were given.
func ComputeBatch(
	ctx context.Context,
	sources []string,
	destination string,
	querier ports.DistanceQuerier,
) []domain.OutcomeRecord {
	dest := strings.TrimSpace(destination)

	records := make([]domain.OutcomeRecord, 0, len(sources))
	for _, src := range sources {
		result, err := querier.Query(ctx, strings.TrimSpace(src), dest)
		if err != nil {
			records = append(records, domain.OutcomeRecord{
				Source: src,
				Err:    err.Error(),
			})
			continue
		}

		r := result
		records = append(records, domain.OutcomeRecord{
			Source: src,
			Result: &r,
		})
	}

	markNearest(records)
	return records
}

// markNearest flags every record whose rounded distance equals the batch
// minimum. Ties are all flagged. With zero successful records the +Inf
// sentinel never matches a real distance, so an all-failure batch carries
// no flag at all.
func markNearest(records []domain.OutcomeRecord) {
	minKm := math.Inf(1)
	for _, rec := range records {
		if rec.Result != nil && rec.Result.DistanceKm < minKm {
			minKm = rec.Result.DistanceKm
		}
	}

	for i := range records {
		rec := &records[i]
		if rec.Result != nil && rec.Result.DistanceKm == minKm {
			rec.IsMin = true
		}
	}
}
