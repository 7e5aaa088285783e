package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	handlers "github.com/jeffleon2/draftea-payments-gateway/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(ph *handlers.PaymentHandler, wh *handlers.WebhookHandler) {
	app := a.Router.Group("/payments")
	app.POST("/create-payment-session", ph.CreatePaymentSession)
	app.GET("/success", ph.Success)
	app.GET("/cancel", ph.Cancel)
	app.POST("/webhook", wh.Receive)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
