package calculator

import (
	"github.com/shopspring/decimal"

	"tradely/models"
)

var hundred = decimal.NewFromInt(100)

// feeBreakdown holds the unrounded business-level totals. Rounding to two
// decimal places happens once, when the result is assembled.
type feeBreakdown struct {
	GSTAmount            decimal.Decimal
	PlatformFee          decimal.Decimal
	ProcessingFee        decimal.Decimal
	RawTotal             decimal.Decimal
	Total                decimal.Decimal
	Deposit              decimal.Decimal
	RemainingBalance     decimal.Decimal
	MinimumChargeApplied bool
}

// applyFees runs the business-level order of operations. All three fee
// amounts are computed on the pre-minimum-charge subtotal; the floor is
// applied to the fee-inclusive raw total, and the deposit comes off the
// floored total. This ordering is part of the quote contract, not an
// implementation detail.
func applyFees(business models.Business, subtotal decimal.Decimal) feeBreakdown {
	var fb feeBreakdown

	if business.ChargesGST {
		fb.GSTAmount = subtotal.Mul(decimal.NewFromFloat(business.GSTRate)).Div(hundred)
	}
	fb.PlatformFee = subtotal.Mul(decimal.NewFromFloat(business.PlatformFeePercentage)).Div(hundred)
	fb.ProcessingFee = subtotal.Mul(decimal.NewFromFloat(business.PaymentProcessingFeePercentage)).Div(hundred)

	fb.RawTotal = subtotal.Add(fb.GSTAmount).Add(fb.PlatformFee).Add(fb.ProcessingFee)

	minimum := decimal.NewFromFloat(business.MinimumCharge)
	if fb.RawTotal.LessThan(minimum) {
		fb.Total = minimum
		fb.MinimumChargeApplied = true
	} else {
		fb.Total = fb.RawTotal
	}

	if business.ChargesDeposit {
		switch business.DepositType {
		case models.DepositTypeFixed:
			fb.Deposit = decimal.NewFromFloat(business.DepositFixedAmount)
		case models.DepositTypePercentage:
			fb.Deposit = fb.Total.Mul(decimal.NewFromFloat(business.DepositPercentage)).Div(hundred)
		}
	}
	fb.RemainingBalance = fb.Total.Sub(fb.Deposit)
	return fb
}
