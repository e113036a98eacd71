package models

// Roles an address plays when attached to a booking request.
const (
	AddressRoleBusinessBase = "BUSINESS_BASE"
	AddressRolePickup       = "PICKUP"
	AddressRoleDropoff      = "DROPOFF"
	AddressRoleService      = "SERVICE"
	AddressRoleCustomer     = "CUSTOMER"
)

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// Address is a geocoded location. Geocoding happens upstream; the calculator
// only consumes the formatted line and coordinates.
type Address struct {
	ID            string   `bson:"id" json:"id"`
	FormattedLine string   `bson:"formattedLine" json:"formattedLine"`
	LocationGeo   GeoPoint `bson:"locationGeo" json:"locationGeo"`
}

// BookingAddress attaches an Address to a booking with a role and a route
// position. ServiceID links pickup/dropoff/service stops to the service they
// belong to.
type BookingAddress struct {
	Address       Address `bson:"address" json:"address"`
	Role          string  `bson:"role" json:"role"`
	SequenceOrder int     `bson:"sequenceOrder" json:"sequenceOrder"`
	ServiceID     string  `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
}
