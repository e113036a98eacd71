package calculator

import (
	"sort"

	"tradely/models"
)

// Leg kinds, classified by the route builder.
const (
	LegKindBaseToFirst      = "BASE_TO_FIRST"
	LegKindBetweenCustomers = "BETWEEN_CUSTOMERS"
	LegKindLastToBase       = "LAST_TO_BASE"
)

// Leg is one point-to-point hop in the materialized route, before distance
// pricing is applied.
type Leg struct {
	From models.Address
	To   models.Address
	Kind string
}

// buildRoute materializes the ordered leg list for one service. Stops are the
// booking addresses linked to the service (or booking-wide stops with no
// service link), sorted by sequence order. When no explicit BUSINESS_BASE
// address brackets the route, the base legs are synthesized from the
// business's registered base address, so the travel charger never has to
// special-case missing addresses.
func buildRoute(business models.Business, service models.Service, addresses []models.BookingAddress) []Leg {
	if service.LocationType == models.LocationTypeBusinessSite {
		return nil
	}

	base := business.BaseAddress
	var stops []models.BookingAddress
	for _, ba := range addresses {
		if ba.Role == models.AddressRoleBusinessBase {
			base = ba.Address
			continue
		}
		if ba.ServiceID == "" || ba.ServiceID == service.ID {
			stops = append(stops, ba)
		}
	}
	if len(stops) == 0 {
		return nil
	}

	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].SequenceOrder < stops[j].SequenceOrder
	})

	legs := make([]Leg, 0, len(stops)+1)
	legs = append(legs, Leg{From: base, To: stops[0].Address, Kind: LegKindBaseToFirst})
	for i := 0; i < len(stops)-1; i++ {
		legs = append(legs, Leg{From: stops[i].Address, To: stops[i+1].Address, Kind: LegKindBetweenCustomers})
	}
	legs = append(legs, Leg{From: stops[len(stops)-1].Address, To: base, Kind: LegKindLastToBase})
	return legs
}
