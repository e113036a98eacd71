package models

import "fmt"

// Deposit rule types. A business charges either a fixed deposit amount or a
// percentage of the final estimate, never both.
const (
	DepositTypeFixed      = "FIXED"
	DepositTypePercentage = "PERCENTAGE"
)

// Business represents a provider business and its billing configuration.
// The calculator treats this as a read-only snapshot supplied by the caller.
type Business struct {
	ID                             string  `bson:"id" json:"id"`
	Name                           string  `bson:"name" json:"name"`
	Currency                       string  `bson:"currency" json:"currency"`
	ChargesGST                     bool    `bson:"chargesGst" json:"chargesGst"`
	GSTRate                        float64 `bson:"gstRate" json:"gstRate"` // percentage, e.g. 10 for 10%
	MinimumCharge                  float64 `bson:"minimumCharge" json:"minimumCharge"`
	ChargesDeposit                 bool    `bson:"chargesDeposit" json:"chargesDeposit"`
	DepositType                    string  `bson:"depositType" json:"depositType"` // FIXED | PERCENTAGE
	DepositFixedAmount             float64 `bson:"depositFixedAmount" json:"depositFixedAmount"`
	DepositPercentage              float64 `bson:"depositPercentage" json:"depositPercentage"`
	PlatformFeePercentage          float64 `bson:"platformFeePercentage" json:"platformFeePercentage"`
	PaymentProcessingFeePercentage float64 `bson:"paymentProcessingFeePercentage" json:"paymentProcessingFeePercentage"`
	BaseAddress                    Address `bson:"baseAddress" json:"baseAddress"`
}

// Validate checks the billing configuration at load time so the calculator
// never has to reason about unknown deposit types mid-calculation.
func (b *Business) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("business id is required")
	}
	if b.ChargesDeposit {
		switch b.DepositType {
		case DepositTypeFixed, DepositTypePercentage:
		default:
			return fmt.Errorf("business %s: unknown deposit type %q", b.ID, b.DepositType)
		}
	}
	if b.GSTRate < 0 || b.MinimumCharge < 0 || b.DepositFixedAmount < 0 ||
		b.DepositPercentage < 0 || b.PlatformFeePercentage < 0 || b.PaymentProcessingFeePercentage < 0 {
		return fmt.Errorf("business %s: billing percentages and amounts must not be negative", b.ID)
	}
	return nil
}
