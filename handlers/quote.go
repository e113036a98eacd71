package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tradely/models"
	"tradely/services/calculator"
	"tradely/services/quote"
	"tradely/utils"
)

// QuoteHandler exposes the quoting engine over HTTP.
type QuoteHandler struct {
	Service quote.QuoteService
	Logger  *zap.Logger
}

func NewQuoteHandler(service quote.QuoteService, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{Service: service, Logger: logger}
}

// RequestQuote handles POST /api/quote.
func (h *QuoteHandler) RequestQuote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid quote request", err.Error())
		return
	}

	record, err := h.Service.RequestQuote(c.Request.Context(), req)
	if err != nil {
		h.Logger.Warn("quote request failed", zap.String("businessID", req.BusinessID), zap.Error(err))
		utils.JSONError(c, quoteErrorStatus(err), "failed to calculate quote", err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetQuote handles GET /api/quote/:reference.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	reference := c.Param("reference")
	record, err := h.Service.GetQuote(c.Request.Context(), reference)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "quote not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

// CreateDepositIntent handles POST /api/quote/:reference/deposit-intent.
func (h *QuoteHandler) CreateDepositIntent(c *gin.Context) {
	reference := c.Param("reference")
	intent, err := h.Service.CreateDepositIntent(c.Request.Context(), reference)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to create deposit intent", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"paymentIntentId": intent.ID,
		"clientSecret":    intent.ClientSecret,
	})
}

// HealthHandler handles GET /api/health.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// quoteErrorStatus maps calculation error kinds to HTTP statuses. Foreign
// errors (store failures and the like) stay 500.
func quoteErrorStatus(err error) int {
	switch calculator.ErrorKind(err) {
	case calculator.ErrKindValidation, calculator.ErrKindMismatch:
		return http.StatusBadRequest
	case calculator.ErrKindOutOfRange, calculator.ErrKindConfiguration:
		return http.StatusUnprocessableEntity
	case calculator.ErrKindExternalProvider:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
