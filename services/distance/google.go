package distance

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// GoogleProvider resolves leg metrics through the Google Distance Matrix API.
type GoogleProvider struct {
	client *maps.Client
}

// NewGoogleProvider creates a GoogleProvider with the given API key.
func NewGoogleProvider(apiKey string) (*GoogleProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleProvider{client: client}, nil
}

// BatchDistances issues one Distance Matrix request for the whole batch and
// reads the diagonal of the response matrix, so leg i maps to origins[i] ->
// destinations[i]. One upstream call per batch is a hard requirement of the
// quote calculator.
func (p *GoogleProvider) BatchDistances(ctx context.Context, queries []LegQuery) ([]LegMetric, error) {
	if len(queries) == 0 {
		return nil, nil
	}

	origins := make([]string, len(queries))
	destinations := make([]string, len(queries))
	for i, q := range queries {
		origins[i] = q.Origin
		destinations[i] = q.Destination
	}

	req := &maps.DistanceMatrixRequest{
		Origins:      origins,
		Destinations: destinations,
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsMetric,
	}
	resp, err := p.client.DistanceMatrix(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("distance matrix request failed: %w", err)
	}
	if len(resp.Rows) != len(queries) {
		return nil, fmt.Errorf("distance matrix returned %d rows for %d queries", len(resp.Rows), len(queries))
	}

	metrics := make([]LegMetric, len(queries))
	for i, row := range resp.Rows {
		if len(row.Elements) <= i {
			return nil, fmt.Errorf("distance matrix row %d has no element for its own destination", i)
		}
		el := row.Elements[i]
		metrics[i] = LegMetric{
			DistanceKm:   float64(el.Distance.Meters) / 1000,
			DurationMins: el.Duration.Minutes(),
			Status:       el.Status,
		}
	}
	return metrics, nil
}
