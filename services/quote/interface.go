package quote

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"

	catalogRepo "tradely/database/repository/catalog"
	quoteRepo "tradely/database/repository/quote"
	"tradely/models"
	"tradely/services/calculator"
)

// QuoteService is the customer-facing quoting surface: it loads the pricing
// configuration snapshot, drives the booking calculator, and manages the
// issued quote's lifecycle (persist, cache, follow-up, deposit intent).
type QuoteService interface {
	RequestQuote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error)
	GetQuote(ctx context.Context, reference string) (*models.Quote, error)
	CreateDepositIntent(ctx context.Context, reference string) (*stripe.PaymentIntent, error)
}

// DefaultQuoteService implements QuoteService.
type DefaultQuoteService struct {
	Catalog    catalogRepo.CatalogRepository
	Quotes     quoteRepo.QuoteRepository
	Calculator calculator.BookingCalculator
	TaskClient *asynq.Client
}
