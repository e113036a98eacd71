package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tradely/config"
	"tradely/models"
	"tradely/services/tasks"
	"tradely/utils"
)

// RequestQuote loads the business and service configuration, assembles the
// calculation input, runs the calculator, and persists the resulting quote.
// The quote is cached under its reference and a follow-up task is scheduled.
func (s *DefaultQuoteService) RequestQuote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error) {
	logger := utils.GetLogger()

	business, err := s.Catalog.GetBusinessByID(req.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load business: %w", err)
	}

	serviceIDs := make([]string, 0, len(req.Services))
	for _, sel := range req.Services {
		serviceIDs = append(serviceIDs, sel.ServiceID)
	}
	services, err := s.Catalog.GetServicesByIDs(business.ID, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	byID := make(map[string]models.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	input := models.BookingCalculationInput{
		Business:  *business,
		Addresses: req.Addresses,
	}
	for _, sel := range req.Services {
		svc, ok := byID[sel.ServiceID]
		if !ok {
			return nil, fmt.Errorf("service %s not found for business %s", sel.ServiceID, business.ID)
		}
		input.Services = append(input.Services, models.ServiceRequest{Service: svc, Quantity: sel.Quantity})
	}

	result, err := s.Calculator.Calculate(ctx, input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ttl := time.Duration(config.AppConfig.QuoteTTLMinutes) * time.Minute
	record := &models.Quote{
		Reference:  uuid.New().String(),
		BusinessID: business.ID,
		CustomerID: req.CustomerID,
		Result:     *result,
		Status:     models.QuoteStatusOpen,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
	if err := s.Quotes.Insert(record); err != nil {
		return nil, fmt.Errorf("failed to persist quote: %w", err)
	}

	if err := s.cacheQuote(ctx, record, ttl); err != nil {
		logger.Warn("failed to cache quote", zap.String("reference", record.Reference), zap.Error(err))
	}
	s.scheduleFollowUp(record)

	logger.Info("quote issued",
		zap.String("reference", record.Reference),
		zap.String("businessID", business.ID),
		zap.Float64("total", result.TotalEstimateAmount))
	return record, nil
}

// GetQuote is cache-first with a read-through to the quote store.
func (s *DefaultQuoteService) GetQuote(ctx context.Context, reference string) (*models.Quote, error) {
	cacheClient := utils.GetQuoteCacheClient()

	if data, err := cacheClient.Get(ctx, quoteCacheKey(reference)).Result(); err == nil {
		var record models.Quote
		if err := json.Unmarshal([]byte(data), &record); err == nil {
			return &record, nil
		}
	}

	record, err := s.Quotes.GetByReference(reference)
	if err != nil {
		return nil, err
	}
	if ttl := time.Until(record.ExpiresAt); ttl > 0 {
		if err := s.cacheQuote(ctx, record, ttl); err != nil {
			utils.GetLogger().Warn("failed to backfill quote cache",
				zap.String("reference", reference), zap.Error(err))
		}
	}
	return record, nil
}

func (s *DefaultQuoteService) cacheQuote(ctx context.Context, record *models.Quote, ttl time.Duration) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}
	cacheClient := utils.GetQuoteCacheClient()
	if err := cacheClient.Set(ctx, quoteCacheKey(record.Reference), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store quote in cache: %w", err)
	}
	return nil
}

// scheduleFollowUp enqueues the customer nudge. Losing a follow-up never
// fails the quote itself.
func (s *DefaultQuoteService) scheduleFollowUp(record *models.Quote) {
	if s.TaskClient == nil {
		return
	}
	logger := utils.GetLogger()
	payload := models.QuoteFollowUpPayload{
		Reference:  record.Reference,
		BusinessID: record.BusinessID,
		CustomerID: record.CustomerID,
		ExpiresAt:  record.ExpiresAt.Format(time.RFC3339),
	}
	fireAt := record.CreatedAt.Add(time.Duration(config.AppConfig.QuoteFollowUpHours) * time.Hour)
	task, opts, err := tasks.NewQuoteFollowUpTask(payload, fireAt)
	if err != nil {
		logger.Warn("failed to build follow-up task", zap.String("reference", record.Reference), zap.Error(err))
		return
	}
	if _, err := s.TaskClient.Enqueue(task, opts...); err != nil {
		logger.Warn("failed to enqueue follow-up task", zap.String("reference", record.Reference), zap.Error(err))
	}
}

func quoteCacheKey(reference string) string {
	return "quote:" + reference
}
