package calculator

import (
	"tradely/models"
)

// validateInput rejects malformed requests before any pricing work starts.
// Linkage rules: every requested service must belong to the input's business,
// and every address carrying a serviceId must point at a requested service.
func validateInput(input models.BookingCalculationInput) error {
	if input.Business.ID == "" {
		return newValidationError("business is required")
	}
	if len(input.Services) == 0 {
		return newValidationError("at least one service is required")
	}

	requested := make(map[string]bool, len(input.Services))
	for _, sr := range input.Services {
		if sr.Service.ID == "" {
			return newValidationError("service id is required")
		}
		if sr.Quantity <= 0 {
			return newValidationError("service %s: quantity must be positive, got %v", sr.Service.ID, sr.Quantity)
		}
		if sr.Service.BusinessID != input.Business.ID {
			return newMismatchError("service %s belongs to business %s, not %s",
				sr.Service.ID, sr.Service.BusinessID, input.Business.ID)
		}
		if len(sr.Service.PriceComponents) == 0 {
			return newConfigurationError("service %s has no price components", sr.Service.ID)
		}
		requested[sr.Service.ID] = true
	}

	seenOrder := make(map[int]bool, len(input.Addresses))
	for _, ba := range input.Addresses {
		if ba.Address.FormattedLine == "" {
			return newValidationError("address %s has an empty formatted line", ba.Address.ID)
		}
		switch ba.Role {
		case models.AddressRoleBusinessBase, models.AddressRolePickup, models.AddressRoleDropoff,
			models.AddressRoleService, models.AddressRoleCustomer:
		default:
			return newValidationError("address %s has unknown role %q", ba.Address.ID, ba.Role)
		}
		if seenOrder[ba.SequenceOrder] {
			return newValidationError("two addresses share sequence order %d", ba.SequenceOrder)
		}
		seenOrder[ba.SequenceOrder] = true
		if ba.ServiceID != "" && !requested[ba.ServiceID] {
			return newMismatchError("address %s references service %s which is not part of this booking",
				ba.Address.ID, ba.ServiceID)
		}
	}
	return nil
}
