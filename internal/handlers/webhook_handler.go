package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-payments-gateway/internal/signature"
	"github.com/sirupsen/logrus"
)

type WebhookHandler struct {
	Service      PaymentService
	MaxBodyBytes int64
}

func NewWebhookHandler(s PaymentService, maxBodyBytes int64) *WebhookHandler {
	return &WebhookHandler{Service: s, MaxBodyBytes: maxBodyBytes}
}

// POST /payments/webhook
//
// The body is read as raw bytes and never re-encoded; the signature covers
// the exact bytes the processor sent.
func (h *WebhookHandler) Receive(c *gin.Context) {
	if h.MaxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBodyBytes)
	}

	payload, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.String(http.StatusRequestEntityTooLarge, "Webhook Error: payload exceeds %d bytes", tooLarge.Limit)
			return
		}
		logrus.WithError(err).Warn("error reading webhook body")
		c.String(http.StatusBadRequest, "Webhook Error: %s", err.Error())
		return
	}

	header := c.GetHeader(signature.HeaderName)
	result := h.Service.HandleWebhook(c.Request.Context(), payload, header)
	if result.Rejected() {
		c.String(http.StatusBadRequest, "Webhook Error: %s", result.Err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"sig": header})
}
