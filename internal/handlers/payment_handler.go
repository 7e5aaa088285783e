package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-payments-gateway/internal/gateway"
	"github.com/jeffleon2/draftea-payments-gateway/internal/models"
	"github.com/jeffleon2/draftea-payments-gateway/internal/models/dto"
	"github.com/jeffleon2/draftea-payments-gateway/internal/service"
)

type PaymentService interface {
	CreatePaymentSession(ctx context.Context, session *dto.PaymentSession) (*models.CheckoutSessionResult, error)
	HandleWebhook(ctx context.Context, payload []byte, header string) service.WebhookResult
}

type PaymentHandler struct {
	Service PaymentService
}

func NewPaymentHandler(s PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

// POST /payments/create-payment-session
func (h *PaymentHandler) CreatePaymentSession(c *gin.Context) {
	var req dto.PaymentSession
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.Service.CreatePaymentSession(c.Request.Context(), &req)
	if err != nil {
		var validationErr *models.ValidationError
		var upstreamErr *gateway.UpstreamError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
		case errors.As(err, &upstreamErr):
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment processor unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// GET /payments/success
func (h *PaymentHandler) Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Payment successful"})
}

// GET /payments/cancel
func (h *PaymentHandler) Cancel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": false, "message": "Payment cancelled"})
}
