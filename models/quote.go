package models

import "time"

// Quote statuses.
const (
	QuoteStatusOpen    = "open"
	QuoteStatusExpired = "expired"
)

// Quote is the persisted copy of a calculation result, addressable by a
// customer-facing reference. Create-once: the result inside is never mutated.
type Quote struct {
	Reference  string                   `bson:"reference" json:"reference"`
	BusinessID string                   `bson:"businessId" json:"businessId"`
	CustomerID string                   `bson:"customerId,omitempty" json:"customerId,omitempty"`
	Result     BookingCalculationResult `bson:"result" json:"result"`
	Status     string                   `bson:"status" json:"status"`
	CreatedAt  time.Time                `bson:"createdAt" json:"createdAt"`
	ExpiresAt  time.Time                `bson:"expiresAt" json:"expiresAt"`
}

// QuoteServiceSelection is one requested service line in a quote request.
type QuoteServiceSelection struct {
	ServiceID string  `json:"serviceId" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required"`
}

// QuoteRequest is the inbound payload for requesting a quote.
type QuoteRequest struct {
	BusinessID string                  `json:"businessId" binding:"required"`
	CustomerID string                  `json:"customerId,omitempty"`
	Services   []QuoteServiceSelection `json:"services" binding:"required"`
	Addresses  []BookingAddress        `json:"addresses"`
}

// QuoteFollowUpPayload is the asynq task payload for quote follow-ups.
type QuoteFollowUpPayload struct {
	Reference  string `json:"reference"`
	BusinessID string `json:"businessId"`
	CustomerID string `json:"customerId,omitempty"`
	ExpiresAt  string `json:"expiresAt"`
}
