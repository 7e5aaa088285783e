package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-payments-gateway/config"
	"github.com/jeffleon2/draftea-payments-gateway/internal/gateway"
	handlers "github.com/jeffleon2/draftea-payments-gateway/internal/handlers"
	"github.com/jeffleon2/draftea-payments-gateway/internal/metrics"
	"github.com/jeffleon2/draftea-payments-gateway/internal/models"
	"github.com/jeffleon2/draftea-payments-gateway/internal/outbox"
	"github.com/jeffleon2/draftea-payments-gateway/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-payments-gateway/internal/service"
	"github.com/jeffleon2/draftea-payments-gateway/internal/signature"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	config     *config.Config
	Router     *gin.Engine
	broker     Broker
	dispatcher *outbox.Dispatcher
}

func (a *App) Initialize(cfg *config.Config) error {
	a.config = cfg
	configureLogging(cfg.APP)
	metrics.RegisterMetrics()

	broker, err := NewBroker(cfg)
	if err != nil {
		return err
	}
	a.broker = broker

	var store outbox.Store
	if cfg.DB.Enabled() {
		db, err := cfg.DB.GormConnect()
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.AutoMigrate(&models.OutboxMessage{}); err != nil {
			return fmt.Errorf("failed to auto migrate: %w", err)
		}
		store = posgrest.New[models.OutboxMessage](db)
	} else {
		logrus.Warn("DB_HOST not set, payment events are published best effort")
	}

	a.dispatcher = outbox.NewDispatcher(broker, store, outbox.Config{
		QueueSize:      cfg.Outbox.QueueSize,
		Workers:        cfg.Outbox.Workers,
		PublishTimeout: cfg.Outbox.PublishTimeout,
		StoreTimeout:   cfg.Outbox.StoreTimeout,
		SweepInterval:  cfg.Outbox.SweepInterval,
		RedeliverAfter: cfg.Outbox.RedeliverAfter,
		SweepBatch:     cfg.Outbox.SweepBatch,
	})

	stripeGateway := gateway.NewStripeGateway(gateway.Config{
		SecretKey:  cfg.Stripe.SecretKey,
		SuccessURL: cfg.Stripe.SuccessURL,
		CancelURL:  cfg.Stripe.CancelURL,
		Timeout:    cfg.Stripe.Timeout,
		APIURL:     cfg.Stripe.APIURL,
	})
	verifier := signature.NewVerifier(cfg.Stripe.EndpointSecret, cfg.Stripe.WebhookTolerance)

	paymentService := service.NewPaymentService(stripeGateway, verifier, a.dispatcher, cfg.Broker.PaymentSucceededTopic)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	webhookHandler := handlers.NewWebhookHandler(paymentService, cfg.Stripe.WebhookMaxBodyBytes)

	gin.SetMode(cfg.APP.GinMode)
	a.Router = gin.New()
	a.Router.Use(gin.Logger(), gin.Recovery())
	a.RegisterRoutes(paymentHandler, webhookHandler)

	return nil
}

// Run serves HTTP until ctx is cancelled, then stops accepting requests,
// drains the outbox and closes the broker.
func (a *App) Run(ctx context.Context) error {
	a.dispatcher.Start(ctx)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logrus.Infof("payments gateway listening on %s (broker=%s, durable_outbox=%t)",
			srv.Addr, a.config.Broker.Driver, a.dispatcher.Durable())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err, ok := <-serveErr:
		if ok {
			runErr = fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error shutting down http server")
	}
	if err := a.dispatcher.Stop(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error draining outbox")
	}
	if err := a.broker.Close(); err != nil {
		logrus.WithError(err).Error("error closing broker")
	}

	return runErr
}

func configureLogging(cfg config.APP) {
	if cfg.LogFormat == "text" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
