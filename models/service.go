package models

import "fmt"

// Where a service is delivered. Pickup-and-dropoff services move goods
// between customer locations; business-site services are performed at the
// business's own premises and involve no travel.
const (
	LocationTypeCustomerSite     = "CUSTOMER_SITE"
	LocationTypePickupAndDropoff = "PICKUP_AND_DROPOFF"
	LocationTypeBusinessSite     = "BUSINESS_SITE"
)

// Pricing methods for a price component.
const (
	PricingMethodFixed     = "FIXED"
	PricingMethodHourly    = "HOURLY"
	PricingMethodPerUnit   = "PER_UNIT"
	PricingMethodPerMinute = "PER_MINUTE"
)

// Travel-charging policies. They decide which route legs are billable for a
// travel component; non-billable legs still appear in the quote breakdown.
const (
	TravelPolicyBetweenCustomerLocations = "BETWEEN_CUSTOMER_LOCATIONS"
	TravelPolicyFromBaseToCustomers      = "FROM_BASE_TO_CUSTOMERS"
	TravelPolicyCustomersAndBackToBase   = "CUSTOMERS_AND_BACK_TO_BASE"
	TravelPolicyFullRoute                = "FULL_ROUTE"
)

// Service is one bookable offering of a business, priced through an ordered
// set of price components.
type Service struct {
	ID              string           `bson:"id" json:"id"`
	BusinessID      string           `bson:"businessId" json:"businessId"`
	Name            string           `bson:"name" json:"name"`
	LocationType    string           `bson:"locationType" json:"locationType"`
	MinimumCharge   float64          `bson:"minimumCharge" json:"minimumCharge"`
	PriceComponents []PriceComponent `bson:"priceComponents" json:"priceComponents"`
}

// PriceComponent is one billable dimension of a service (labour, travel,
// materials). Travel components carry a non-empty TravelChargingPolicy.
type PriceComponent struct {
	ID                   string               `bson:"id" json:"id"`
	Name                 string               `bson:"name" json:"name"`
	PricingMethod        string               `bson:"pricingMethod" json:"pricingMethod"`
	TierUnitLabel        string               `bson:"tierUnitLabel" json:"tierUnitLabel"` // what quantity counts: people, sqm, boxes
	TravelChargingPolicy string               `bson:"travelChargingPolicy,omitempty" json:"travelChargingPolicy,omitempty"`
	HasTiers             bool                 `bson:"hasTiers" json:"hasTiers"`
	Tiers                []PriceComponentTier `bson:"tiers,omitempty" json:"tiers,omitempty"`

	// Price and DurationEstimateMinutes form the implicit single tier for
	// components with HasTiers == false.
	Price                   float64 `bson:"price,omitempty" json:"price,omitempty"`
	DurationEstimateMinutes float64 `bson:"durationEstimateMinutes,omitempty" json:"durationEstimateMinutes,omitempty"`
}

// IsTravel reports whether this component is priced over route legs.
func (pc *PriceComponent) IsTravel() bool {
	return pc.TravelChargingPolicy != ""
}

// PriceComponentTier maps an inclusive quantity range to a price and an
// authored duration estimate. Multi-person efficiency is pre-baked into the
// tier's duration, not derived from a formula.
type PriceComponentTier struct {
	MinQuantity             float64 `bson:"minQuantity" json:"minQuantity"`
	MaxQuantity             float64 `bson:"maxQuantity" json:"maxQuantity"`
	Price                   float64 `bson:"price" json:"price"`
	DurationEstimateMinutes float64 `bson:"durationEstimateMinutes,omitempty" json:"durationEstimateMinutes,omitempty"`
}

// Contains reports whether q falls inside the tier range, inclusive both ends.
func (t PriceComponentTier) Contains(q float64) bool {
	return q >= t.MinQuantity && q <= t.MaxQuantity
}

// Validate rejects unknown method/policy strings and malformed tier tables at
// the configuration-load boundary rather than at calculation time.
func (s *Service) Validate() error {
	switch s.LocationType {
	case LocationTypeCustomerSite, LocationTypePickupAndDropoff, LocationTypeBusinessSite:
	default:
		return fmt.Errorf("service %s: unknown location type %q", s.ID, s.LocationType)
	}
	if len(s.PriceComponents) == 0 {
		return fmt.Errorf("service %s: no price components configured", s.ID)
	}
	for i := range s.PriceComponents {
		if err := s.PriceComponents[i].Validate(); err != nil {
			return fmt.Errorf("service %s: %w", s.ID, err)
		}
	}
	return nil
}

func (pc *PriceComponent) Validate() error {
	switch pc.PricingMethod {
	case PricingMethodFixed, PricingMethodHourly, PricingMethodPerUnit, PricingMethodPerMinute:
	default:
		return fmt.Errorf("component %s: unknown pricing method %q", pc.ID, pc.PricingMethod)
	}
	if pc.TravelChargingPolicy != "" {
		switch pc.TravelChargingPolicy {
		case TravelPolicyBetweenCustomerLocations, TravelPolicyFromBaseToCustomers,
			TravelPolicyCustomersAndBackToBase, TravelPolicyFullRoute:
		default:
			return fmt.Errorf("component %s: unknown travel-charging policy %q", pc.ID, pc.TravelChargingPolicy)
		}
	}
	if pc.HasTiers && len(pc.Tiers) == 0 {
		return fmt.Errorf("component %s: hasTiers set but no tiers defined", pc.ID)
	}
	for i, t := range pc.Tiers {
		if t.MaxQuantity < t.MinQuantity {
			return fmt.Errorf("component %s: tier %d has max < min", pc.ID, i)
		}
		for _, prev := range pc.Tiers[:i] {
			if t.MinQuantity <= prev.MaxQuantity && prev.MinQuantity <= t.MaxQuantity {
				return fmt.Errorf("component %s: overlapping tiers", pc.ID)
			}
		}
	}
	return nil
}
