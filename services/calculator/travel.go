package calculator

import (
	"github.com/shopspring/decimal"

	"tradely/models"
	"tradely/services/distance"
)

// legChargeable implements the policy chargeability table. BETWEEN_CUSTOMERS
// legs are billable under every policy; the base legs depend on it.
func legChargeable(policy, legKind string) bool {
	switch legKind {
	case LegKindBetweenCustomers:
		return true
	case LegKindBaseToFirst:
		return policy == models.TravelPolicyFromBaseToCustomers || policy == models.TravelPolicyFullRoute
	case LegKindLastToBase:
		return policy == models.TravelPolicyCustomersAndBackToBase || policy == models.TravelPolicyFullRoute
	}
	return false
}

// segmentEstimate pairs a result segment with its unrounded cost. The cost
// field on the segment itself is only filled in at final aggregation.
type segmentEstimate struct {
	Segment models.TravelSegment
	Cost    decimal.Decimal
}

// chargeRoute prices the legs of one travel component using the distance
// metrics already fetched for them. Non-chargeable legs stay in the breakdown
// with a zero cost. Zero-distance legs (coincident pickup and dropoff) are
// valid and simply cost nothing.
func chargeRoute(
	component models.PriceComponent,
	tier models.PriceComponentTier,
	quantity float64,
	legs []Leg,
	metrics []distance.LegMetric,
) ([]segmentEstimate, componentEstimate, error) {
	rate := decimal.NewFromFloat(tier.Price)
	qty := decimal.NewFromFloat(quantity)

	var total componentEstimate
	segments := make([]segmentEstimate, 0, len(legs))
	for i, leg := range legs {
		m := metrics[i]
		km := decimal.NewFromFloat(m.DistanceKm)
		mins := decimal.NewFromFloat(m.DurationMins)

		cost := decimal.Zero
		chargeable := legChargeable(component.TravelChargingPolicy, leg.Kind)
		if chargeable {
			switch component.PricingMethod {
			case models.PricingMethodPerUnit:
				cost = rate.Mul(km)
			case models.PricingMethodPerMinute:
				cost = rate.Mul(mins).Mul(qty)
			default:
				return nil, componentEstimate{}, newConfigurationError(
					"component %s: travel components must be priced PER_UNIT or PER_MINUTE, got %s",
					component.ID, component.PricingMethod)
			}
		}

		// Travel time is real regardless of billability, so every leg
		// contributes to the duration estimate.
		total.Cost = total.Cost.Add(cost)
		total.DurationMins = total.DurationMins.Add(mins)

		segments = append(segments, segmentEstimate{
			Segment: models.TravelSegment{
				ComponentID:  component.ID,
				LegKind:      leg.Kind,
				FromAddress:  leg.From.FormattedLine,
				ToAddress:    leg.To.FormattedLine,
				DistanceKm:   m.DistanceKm,
				DurationMins: m.DurationMins,
				IsChargeable: chargeable,
			},
			Cost: cost,
		})
	}
	return segments, total, nil
}
