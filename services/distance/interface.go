package distance

import "context"

// StatusOK is the per-element status of a successful lookup. Any other status
// fails the calculation that issued the batch.
const StatusOK = "OK"

// LegQuery is one origin/destination pair. Origin and Destination are either
// "lat,lng" pairs or formatted address lines.
type LegQuery struct {
	Origin      string
	Destination string
}

// LegMetric is the measured distance and drive time for one query.
type LegMetric struct {
	DistanceKm   float64
	DurationMins float64
	Status       string
}

// Provider resolves a batch of leg queries in a single upstream call. The
// result slice is ordered identically to the query slice, one element per
// query. Implementations perform no retries; retry policy belongs to the
// caller.
type Provider interface {
	BatchDistances(ctx context.Context, queries []LegQuery) ([]LegMetric, error)
}
