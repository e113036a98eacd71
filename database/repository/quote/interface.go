package quoteRepo

import "tradely/models"

// QuoteRepository persists issued quotes. Quotes are create-once: there is no
// update operation, only insert and fetch.
type QuoteRepository interface {
	Insert(quote *models.Quote) error
	GetByReference(reference string) (*models.Quote, error)
}
