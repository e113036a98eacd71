package calculator

import (
	"tradely/models"
)

// resolveTier selects the tier whose [min, max] range contains quantity,
// inclusive both ends. A quantity outside every tier is a hard error, never
// clamped to the nearest tier. Components without tiers use the implicit
// single tier formed by the component's own price and duration estimate.
func resolveTier(component models.PriceComponent, quantity float64) (models.PriceComponentTier, error) {
	if quantity <= 0 {
		return models.PriceComponentTier{}, newValidationError(
			"component %s: quantity must be positive, got %v", component.ID, quantity)
	}

	if !component.HasTiers {
		return models.PriceComponentTier{
			MinQuantity:             quantity,
			MaxQuantity:             quantity,
			Price:                   component.Price,
			DurationEstimateMinutes: component.DurationEstimateMinutes,
		}, nil
	}

	if len(component.Tiers) == 0 {
		return models.PriceComponentTier{}, newConfigurationError(
			"component %s: hasTiers set but no tiers defined", component.ID)
	}

	for _, tier := range component.Tiers {
		if tier.Contains(quantity) {
			return tier, nil
		}
	}
	return models.PriceComponentTier{}, newOutOfRangeError(
		"component %s: no tier matches quantity %v %s", component.ID, quantity, component.TierUnitLabel)
}
