package calculator

import (
	"github.com/shopspring/decimal"

	"tradely/models"
)

var minutesPerHour = decimal.NewFromInt(60)

// componentEstimate is an unrounded cost/duration contribution. Money stays
// in decimal form until final aggregation so intermediate rounding never
// compounds.
type componentEstimate struct {
	Cost         decimal.Decimal
	DurationMins decimal.Decimal
}

// evaluateComponent prices a non-travel component against its resolved tier.
// PER_MINUTE components are travel-linked and priced by the travel charger,
// never here.
func evaluateComponent(component models.PriceComponent, tier models.PriceComponentTier, quantity float64) (componentEstimate, error) {
	price := decimal.NewFromFloat(tier.Price)
	duration := decimal.NewFromFloat(tier.DurationEstimateMinutes)

	switch component.PricingMethod {
	case models.PricingMethodFixed:
		// Quantity selected the tier (per-person team rates); the price
		// itself ignores it.
		return componentEstimate{Cost: price, DurationMins: duration}, nil

	case models.PricingMethodHourly:
		// Rate times the tier's authored duration. Team-size efficiency is
		// pre-baked into the tier duration, not derived here.
		hours := duration.Div(minutesPerHour)
		return componentEstimate{Cost: price.Mul(hours), DurationMins: duration}, nil

	case models.PricingMethodPerUnit:
		q := decimal.NewFromFloat(quantity)
		return componentEstimate{Cost: price.Mul(q), DurationMins: duration}, nil

	case models.PricingMethodPerMinute:
		return componentEstimate{}, newConfigurationError(
			"component %s: PER_MINUTE pricing requires a travel-charging policy", component.ID)

	default:
		return componentEstimate{}, newConfigurationError(
			"component %s: unknown pricing method %q", component.ID, component.PricingMethod)
	}
}
