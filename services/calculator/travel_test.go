package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradely/models"
	"tradely/services/distance"
)

// Chargeability table for all four policies against the classic
// base -> pickup -> dropoff -> base route.
func TestLegChargeable(t *testing.T) {
	tests := []struct {
		policy      string
		baseToFirst bool
		between     bool
		lastToBase  bool
	}{
		{models.TravelPolicyBetweenCustomerLocations, false, true, false},
		{models.TravelPolicyFromBaseToCustomers, true, true, false},
		{models.TravelPolicyCustomersAndBackToBase, false, true, true},
		{models.TravelPolicyFullRoute, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.policy, func(t *testing.T) {
			assert.Equal(t, tt.baseToFirst, legChargeable(tt.policy, LegKindBaseToFirst))
			assert.Equal(t, tt.between, legChargeable(tt.policy, LegKindBetweenCustomers))
			assert.Equal(t, tt.lastToBase, legChargeable(tt.policy, LegKindLastToBase))
		})
	}
}

func removalRoute() ([]Leg, []distance.LegMetric) {
	legs := []Leg{
		{From: addr("base", "1 Depot Rd"), To: addr("p", "10 Pickup St"), Kind: LegKindBaseToFirst},
		{From: addr("p", "10 Pickup St"), To: addr("d", "20 Dropoff Ave"), Kind: LegKindBetweenCustomers},
		{From: addr("d", "20 Dropoff Ave"), To: addr("base", "1 Depot Rd"), Kind: LegKindLastToBase},
	}
	metrics := []distance.LegMetric{
		{DistanceKm: 5, DurationMins: 10, Status: distance.StatusOK},
		{DistanceKm: 8.5, DurationMins: 13, Status: distance.StatusOK},
		{DistanceKm: 6, DurationMins: 11, Status: distance.StatusOK},
	}
	return legs, metrics
}

// Spec'd worked example: an 8.5 km / 13 minute pickup->dropoff leg at
// $1.50/person-minute under BETWEEN_CUSTOMER_LOCATIONS costs $19.50, and the
// base legs cost nothing but stay in the breakdown.
func TestChargeRoutePerMinute(t *testing.T) {
	component := models.PriceComponent{
		ID:                   "travel",
		PricingMethod:        models.PricingMethodPerMinute,
		TravelChargingPolicy: models.TravelPolicyBetweenCustomerLocations,
	}
	tier := models.PriceComponentTier{Price: 1.5}
	legs, metrics := removalRoute()

	segments, total, err := chargeRoute(component, tier, 1, legs, metrics)
	require.NoError(t, err)
	require.Len(t, segments, 3)

	assert.False(t, segments[0].Segment.IsChargeable)
	assert.True(t, segments[0].Cost.IsZero())
	assert.True(t, segments[1].Segment.IsChargeable)
	assert.Equal(t, "19.5", segments[1].Cost.String())
	assert.False(t, segments[2].Segment.IsChargeable)
	assert.True(t, segments[2].Cost.IsZero())

	assert.Equal(t, "19.5", total.Cost.String())
	// Every leg's travel time counts toward the estimate.
	assert.Equal(t, 34.0, total.DurationMins.InexactFloat64())
}

func TestChargeRoutePerKilometre(t *testing.T) {
	component := models.PriceComponent{
		ID:                   "travel",
		PricingMethod:        models.PricingMethodPerUnit,
		TravelChargingPolicy: models.TravelPolicyFullRoute,
	}
	tier := models.PriceComponentTier{Price: 2}
	legs, metrics := removalRoute()

	segments, total, err := chargeRoute(component, tier, 1, legs, metrics)
	require.NoError(t, err)
	require.Len(t, segments, 3)
	for _, se := range segments {
		assert.True(t, se.Segment.IsChargeable)
	}
	// (5 + 8.5 + 6) km * $2/km
	assert.Equal(t, "39", total.Cost.String())
}

// PER_MINUTE travel scales with the crew size selecting the tier.
func TestChargeRoutePerMinuteTwoPeople(t *testing.T) {
	component := models.PriceComponent{
		ID:                   "travel",
		PricingMethod:        models.PricingMethodPerMinute,
		TravelChargingPolicy: models.TravelPolicyBetweenCustomerLocations,
	}
	tier := models.PriceComponentTier{Price: 1.5}
	legs, metrics := removalRoute()

	_, total, err := chargeRoute(component, tier, 2, legs, metrics)
	require.NoError(t, err)
	assert.Equal(t, "39", total.Cost.String()) // 13 min * $1.50 * 2 people
}

// Coincident pickup/dropoff legs are valid and cost nothing.
func TestChargeRouteZeroDistanceLeg(t *testing.T) {
	component := models.PriceComponent{
		ID:                   "travel",
		PricingMethod:        models.PricingMethodPerUnit,
		TravelChargingPolicy: models.TravelPolicyFullRoute,
	}
	legs := []Leg{
		{From: addr("p", "10 Pickup St"), To: addr("p", "10 Pickup St"), Kind: LegKindBetweenCustomers},
	}
	metrics := []distance.LegMetric{{DistanceKm: 0, DurationMins: 0, Status: distance.StatusOK}}

	segments, total, err := chargeRoute(component, models.PriceComponentTier{Price: 2}, 1, legs, metrics)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.True(t, total.Cost.IsZero())
	assert.True(t, segments[0].Segment.IsChargeable)
}

func TestChargeRouteRejectsNonTravelMethod(t *testing.T) {
	component := models.PriceComponent{
		ID:                   "travel",
		PricingMethod:        models.PricingMethodHourly,
		TravelChargingPolicy: models.TravelPolicyFullRoute,
	}
	legs, metrics := removalRoute()

	_, _, err := chargeRoute(component, models.PriceComponentTier{Price: 2}, 1, legs, metrics)
	require.Error(t, err)
	assert.Equal(t, ErrKindConfiguration, ErrorKind(err))
}
