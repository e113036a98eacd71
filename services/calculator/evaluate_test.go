package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradely/models"
)

func TestEvaluateComponent(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		tier         models.PriceComponentTier
		quantity     float64
		wantCost     float64
		wantDuration float64
	}{
		{
			name:         "fixed price ignores quantity",
			method:       models.PricingMethodFixed,
			tier:         models.PriceComponentTier{Price: 250, DurationEstimateMinutes: 120},
			quantity:     7,
			wantCost:     250,
			wantDuration: 120,
		},
		{
			name:         "hourly rate times tier duration (95/hr for 1.5h)",
			method:       models.PricingMethodHourly,
			tier:         models.PriceComponentTier{Price: 95, DurationEstimateMinutes: 90},
			quantity:     1,
			wantCost:     142.5,
			wantDuration: 90,
		},
		{
			name:         "hourly two-person tier completes faster",
			method:       models.PricingMethodHourly,
			tier:         models.PriceComponentTier{Price: 150, DurationEstimateMinutes: 60},
			quantity:     2,
			wantCost:     150,
			wantDuration: 60,
		},
		{
			name:         "per-unit scales with quantity (per sqm)",
			method:       models.PricingMethodPerUnit,
			tier:         models.PriceComponentTier{Price: 2.5, DurationEstimateMinutes: 45},
			quantity:     30,
			wantCost:     75,
			wantDuration: 45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			component := models.PriceComponent{ID: "c", PricingMethod: tt.method}
			est, err := evaluateComponent(component, tt.tier, tt.quantity)
			require.NoError(t, err)
			assert.True(t, est.Cost.Equal(decimal.NewFromFloat(tt.wantCost)),
				"cost = %s, want %v", est.Cost, tt.wantCost)
			assert.Equal(t, tt.wantDuration, est.DurationMins.InexactFloat64())
		})
	}
}

func TestEvaluateComponentPerMinuteRejected(t *testing.T) {
	component := models.PriceComponent{ID: "travel", PricingMethod: models.PricingMethodPerMinute}
	_, err := evaluateComponent(component, models.PriceComponentTier{Price: 1.5}, 1)
	require.Error(t, err)
	assert.Equal(t, ErrKindConfiguration, ErrorKind(err))
}

// FIXED cost must be idempotent across repeated calls with identical input.
func TestEvaluateComponentFixedDeterministic(t *testing.T) {
	component := models.PriceComponent{ID: "c", PricingMethod: models.PricingMethodFixed}
	tier := models.PriceComponentTier{Price: 199.99, DurationEstimateMinutes: 60}

	first, err := evaluateComponent(component, tier, 3)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := evaluateComponent(component, tier, 3)
		require.NoError(t, err)
		assert.True(t, first.Cost.Equal(again.Cost))
	}
}
