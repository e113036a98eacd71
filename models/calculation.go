package models

// ServiceRequest pairs a requested service with the quantity the customer
// asked for. Quantity is a float to accommodate area-based components (sqm);
// person/box counts are whole numbers.
type ServiceRequest struct {
	Service  Service `bson:"service" json:"service"`
	Quantity float64 `bson:"quantity" json:"quantity"`
}

// BookingCalculationInput is the transient request object handed to the
// calculator: a read-only snapshot of the business configuration, the
// requested services, and the ordered route addresses. It is produced fresh
// per quote request and never persisted.
type BookingCalculationInput struct {
	Business  Business         `bson:"business" json:"business"`
	Services  []ServiceRequest `bson:"services" json:"services"`
	Addresses []BookingAddress `bson:"addresses" json:"addresses"`
}

// ServiceCostBreakdown is the per-service slice of the quote.
type ServiceCostBreakdown struct {
	ServiceID            string  `bson:"serviceId" json:"serviceId"`
	ServiceName          string  `bson:"serviceName" json:"serviceName"`
	Quantity             float64 `bson:"quantity" json:"quantity"`
	BaseCost             float64 `bson:"baseCost" json:"baseCost"`
	TravelCost           float64 `bson:"travelCost" json:"travelCost"`
	TotalCost            float64 `bson:"totalCost" json:"totalCost"`
	EstimatedDurationMin float64 `bson:"estimatedDurationMins" json:"estimatedDurationMins"`
}

// TravelSegment is one priced route leg. Non-chargeable legs are kept in the
// breakdown with a zero cost so the customer can see the full route.
type TravelSegment struct {
	ServiceID    string  `bson:"serviceId" json:"serviceId"`
	ComponentID  string  `bson:"componentId" json:"componentId"`
	LegKind      string  `bson:"legKind" json:"legKind"`
	FromAddress  string  `bson:"fromAddress" json:"fromAddress"`
	ToAddress    string  `bson:"toAddress" json:"toAddress"`
	DistanceKm   float64 `bson:"distanceKm" json:"distanceKm"`
	DurationMins float64 `bson:"durationMins" json:"durationMins"`
	Cost         float64 `bson:"cost" json:"cost"`
	IsChargeable bool    `bson:"isChargeable" json:"isChargeable"`
}

// BusinessFees itemizes everything applied on top of the service subtotal.
// All fee amounts are computed on the pre-minimum-charge subtotal.
type BusinessFees struct {
	GSTAmount                  float64 `bson:"gstAmount" json:"gstAmount"`
	PlatformFeeAmount          float64 `bson:"platformFeeAmount" json:"platformFeeAmount"`
	PaymentProcessingFeeAmount float64 `bson:"paymentProcessingFeeAmount" json:"paymentProcessingFeeAmount"`
}

// BookingCalculationResult is the binding quote. It is immutable once
// produced; the persistence layer stores a copy.
type BookingCalculationResult struct {
	Currency                  string                 `bson:"currency" json:"currency"`
	Services                  []ServiceCostBreakdown `bson:"services" json:"services"`
	TravelSegments            []TravelSegment        `bson:"travelSegments" json:"travelSegments"`
	Fees                      BusinessFees           `bson:"fees" json:"fees"`
	Subtotal                  float64                `bson:"subtotal" json:"subtotal"`
	TotalEstimateAmount       float64                `bson:"totalEstimateAmount" json:"totalEstimateAmount"`
	TotalEstimateTimeInMins   float64                `bson:"totalEstimateTimeInMinutes" json:"totalEstimateTimeInMinutes"`
	DepositAmount             float64                `bson:"depositAmount" json:"depositAmount"`
	RemainingBalance          float64                `bson:"remainingBalance" json:"remainingBalance"`
	MinimumChargeApplied      bool                   `bson:"minimumChargeApplied" json:"minimumChargeApplied"`
}
