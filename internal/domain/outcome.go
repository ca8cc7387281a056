package domain

import "postal-distance-service/internal/ports"

// Per-source outcome of one batch submission.
//
// Exactly one of Result and Err is set. Source keeps the string as
// originally entered (untrimmed); trimming happens only for the query
// itself. Records are immutable once the batch has completed and are
// replaced wholesale by the next submission.
type OutcomeRecord struct {
	Source string
	Result *ports.DistanceQueryResult
	Err    string
	IsMin  bool
}
