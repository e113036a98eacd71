package quote

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"tradely/models"
	"tradely/utils"
)

// CreateDepositIntent creates a Stripe PaymentIntent for the quote's deposit
// amount. Capturing the payment is the client's job; this only opens the
// intent.
func (s *DefaultQuoteService) CreateDepositIntent(ctx context.Context, reference string) (*stripe.PaymentIntent, error) {
	record, err := s.GetQuote(ctx, reference)
	if err != nil {
		return nil, err
	}
	if record.Status != models.QuoteStatusOpen || time.Now().After(record.ExpiresAt) {
		return nil, fmt.Errorf("quote %s is no longer open", reference)
	}
	if record.Result.DepositAmount <= 0 {
		return nil, fmt.Errorf("quote %s has no deposit to collect", reference)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(record.Result.DepositAmount * 100))),
		Currency: stripe.String(record.Result.Currency),
	}
	params.AddMetadata("quoteReference", record.Reference)
	params.AddMetadata("businessId", record.BusinessID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create deposit payment intent: %w", err)
	}

	utils.GetLogger().Info("deposit intent created",
		zap.String("reference", record.Reference),
		zap.String("intentID", intent.ID),
		zap.Float64("deposit", record.Result.DepositAmount))
	return intent, nil
}
