package calculator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradely/models"
	"tradely/services/distance"
)

// fakeDistanceProvider records batches and answers with canned metrics. When
// no canned metrics are given, every leg measures 5 km / 10 min.
type fakeDistanceProvider struct {
	metrics []distance.LegMetric
	err     error
	calls   int
	batches [][]distance.LegQuery
}

func (f *fakeDistanceProvider) BatchDistances(_ context.Context, queries []distance.LegQuery) ([]distance.LegMetric, error) {
	f.calls++
	f.batches = append(f.batches, queries)
	if f.err != nil {
		return nil, f.err
	}
	if f.metrics != nil {
		return f.metrics, nil
	}
	out := make([]distance.LegMetric, len(queries))
	for i := range out {
		out[i] = distance.LegMetric{DistanceKm: 5, DurationMins: 10, Status: distance.StatusOK}
	}
	return out, nil
}

func removalService(businessID string) models.Service {
	return models.Service{
		ID:           "svc-removal",
		BusinessID:   businessID,
		Name:         "Home removal",
		LocationType: models.LocationTypePickupAndDropoff,
		PriceComponents: []models.PriceComponent{
			{
				ID:            "labour",
				Name:          "Removalists",
				PricingMethod: models.PricingMethodHourly,
				TierUnitLabel: "people",
				HasTiers:      true,
				Tiers: []models.PriceComponentTier{
					{MinQuantity: 1, MaxQuantity: 1, Price: 95, DurationEstimateMinutes: 90},
					{MinQuantity: 2, MaxQuantity: 2, Price: 150, DurationEstimateMinutes: 60},
				},
			},
			{
				ID:                   "travel",
				Name:                 "Travel time",
				PricingMethod:        models.PricingMethodPerMinute,
				TravelChargingPolicy: models.TravelPolicyBetweenCustomerLocations,
				HasTiers:             false,
				Price:                1.5,
			},
		},
	}
}

func removalInput() models.BookingCalculationInput {
	business := feeBusiness()
	business.Currency = "aud"
	business.BaseAddress = addr("base", "1 Depot Rd")
	service := removalService(business.ID)
	return models.BookingCalculationInput{
		Business: business,
		Services: []models.ServiceRequest{{Service: service, Quantity: 1}},
		Addresses: []models.BookingAddress{
			{Address: addr("p", "10 Pickup St"), Role: models.AddressRolePickup, SequenceOrder: 1, ServiceID: service.ID},
			{Address: addr("d", "20 Dropoff Ave"), Role: models.AddressRoleDropoff, SequenceOrder: 2, ServiceID: service.ID},
		},
	}
}

// End-to-end worked example: $95/hr x 1.5h labour plus a 13-minute
// pickup->dropoff leg at $1.50/person-minute.
func TestCalculateRemovalBooking(t *testing.T) {
	_, metrics := removalRoute()
	provider := &fakeDistanceProvider{metrics: metrics}
	calc := &DefaultBookingCalculator{Distance: provider}

	result, err := calc.Calculate(context.Background(), removalInput())
	require.NoError(t, err)

	require.Len(t, result.Services, 1)
	svc := result.Services[0]
	assert.Equal(t, 142.5, svc.BaseCost)
	assert.Equal(t, 19.5, svc.TravelCost)
	assert.Equal(t, 162.0, svc.TotalCost)
	assert.Equal(t, 124.0, svc.EstimatedDurationMin) // 90 labour + 34 on the road

	require.Len(t, result.TravelSegments, 3)
	assert.Equal(t, 0.0, result.TravelSegments[0].Cost)
	assert.False(t, result.TravelSegments[0].IsChargeable)
	assert.Equal(t, 19.5, result.TravelSegments[1].Cost)
	assert.True(t, result.TravelSegments[1].IsChargeable)
	assert.Equal(t, 0.0, result.TravelSegments[2].Cost)

	assert.Equal(t, 162.0, result.Subtotal)
	assert.Equal(t, 16.2, result.Fees.GSTAmount)
	assert.Equal(t, 8.1, result.Fees.PlatformFeeAmount)
	assert.Equal(t, 3.24, result.Fees.PaymentProcessingFeeAmount)
	assert.Equal(t, 189.54, result.TotalEstimateAmount)
	assert.False(t, result.MinimumChargeApplied)
	assert.Equal(t, 37.91, result.DepositAmount)     // 20% of 189.54
	assert.Equal(t, 151.63, result.RemainingBalance) // unrounded 151.632
	assert.Equal(t, 124.0, result.TotalEstimateTimeInMins)
	assert.Equal(t, "aud", result.Currency)

	assert.Equal(t, 1, provider.calls)
}

// All legs of all services go out in one batched lookup.
func TestCalculateSingleBatchAcrossServices(t *testing.T) {
	provider := &fakeDistanceProvider{}
	calc := &DefaultBookingCalculator{Distance: provider}

	input := removalInput()
	second := removalService(input.Business.ID)
	second.ID = "svc-removal-2"
	input.Services = append(input.Services, models.ServiceRequest{Service: second, Quantity: 2})
	input.Addresses = append(input.Addresses,
		models.BookingAddress{Address: addr("p2", "30 Second Pickup"), Role: models.AddressRolePickup, SequenceOrder: 3, ServiceID: second.ID},
		models.BookingAddress{Address: addr("d2", "40 Second Dropoff"), Role: models.AddressRoleDropoff, SequenceOrder: 4, ServiceID: second.ID},
	)

	result, err := calc.Calculate(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, 1, provider.calls)
	assert.Len(t, provider.batches[0], 6) // 3 legs per service
	assert.Len(t, result.TravelSegments, 6)
	assert.Len(t, result.Services, 2)
}

func TestCalculateMinimumChargeFloor(t *testing.T) {
	provider := &fakeDistanceProvider{}
	calc := &DefaultBookingCalculator{Distance: provider}

	input := removalInput()
	input.Business.MinimumCharge = 1000

	result, err := calc.Calculate(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, result.MinimumChargeApplied)
	assert.Equal(t, 1000.0, result.TotalEstimateAmount)
	// Fees still reflect the pre-floor subtotal.
	assert.InDelta(t, result.Subtotal*0.10, result.Fees.GSTAmount, 0.01)
}

func TestCalculateInputErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.BookingCalculationInput)
		wantKind string
	}{
		{
			name:     "zero quantity",
			mutate:   func(in *models.BookingCalculationInput) { in.Services[0].Quantity = 0 },
			wantKind: ErrKindValidation,
		},
		{
			name:     "duplicate sequence order",
			mutate:   func(in *models.BookingCalculationInput) { in.Addresses[1].SequenceOrder = 1 },
			wantKind: ErrKindValidation,
		},
		{
			name:     "service from another business",
			mutate:   func(in *models.BookingCalculationInput) { in.Services[0].Service.BusinessID = "someone-else" },
			wantKind: ErrKindMismatch,
		},
		{
			name:     "address linked to unknown service",
			mutate:   func(in *models.BookingCalculationInput) { in.Addresses[0].ServiceID = "ghost" },
			wantKind: ErrKindMismatch,
		},
		{
			name:     "service without components",
			mutate:   func(in *models.BookingCalculationInput) { in.Services[0].Service.PriceComponents = nil },
			wantKind: ErrKindConfiguration,
		},
		{
			name: "quantity outside every tier",
			mutate: func(in *models.BookingCalculationInput) {
				in.Services[0].Quantity = 9
			},
			wantKind: ErrKindOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := &DefaultBookingCalculator{Distance: &fakeDistanceProvider{}}
			input := removalInput()
			tt.mutate(&input)

			result, err := calc.Calculate(context.Background(), input)
			require.Error(t, err)
			assert.Nil(t, result, "no partial quote on failure")
			assert.Equal(t, tt.wantKind, ErrorKind(err))
		})
	}
}

func TestCalculateDistanceProviderFailure(t *testing.T) {
	t.Run("lookup error", func(t *testing.T) {
		provider := &fakeDistanceProvider{err: errors.New("upstream timeout")}
		calc := &DefaultBookingCalculator{Distance: provider}

		result, err := calc.Calculate(context.Background(), removalInput())
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, ErrKindExternalProvider, ErrorKind(err))
	})

	t.Run("non-OK leg status", func(t *testing.T) {
		_, metrics := removalRoute()
		metrics[1].Status = "NOT_FOUND"
		provider := &fakeDistanceProvider{metrics: metrics}
		calc := &DefaultBookingCalculator{Distance: provider}

		result, err := calc.Calculate(context.Background(), removalInput())
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, ErrKindExternalProvider, ErrorKind(err))
	})
}

// Same input, same provider response: byte-identical results.
func TestCalculateDeterministic(t *testing.T) {
	_, metrics := removalRoute()
	calc := &DefaultBookingCalculator{Distance: &fakeDistanceProvider{metrics: metrics}}

	first, err := calc.Calculate(context.Background(), removalInput())
	require.NoError(t, err)
	second, err := calc.Calculate(context.Background(), removalInput())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// A business-site service has no route and must not touch the provider.
func TestCalculateBusinessSiteSkipsDistanceLookup(t *testing.T) {
	provider := &fakeDistanceProvider{}
	calc := &DefaultBookingCalculator{Distance: provider}

	input := removalInput()
	input.Services[0].Service.LocationType = models.LocationTypeBusinessSite

	result, err := calc.Calculate(context.Background(), input)
	require.NoError(t, err)
	assert.Zero(t, provider.calls)
	assert.Empty(t, result.TravelSegments)
	assert.Equal(t, 0.0, result.Services[0].TravelCost)
}
