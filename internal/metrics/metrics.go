package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CheckoutSessionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_sessions_total",
			Help: "Checkout session requests by result",
		},
		[]string{"result"},
	)

	CheckoutSessionAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "checkout_session_amounts",
			Help:    "Distribution of checkout session totals in major units",
			Buckets: prometheus.LinearBuckets(0, 50, 20),
		},
		[]string{"currency"},
	)

	StripeRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stripe_request_duration_seconds",
			Help:    "Latency of calls to the Stripe API",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	WebhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_total",
			Help: "Webhook deliveries by outcome",
		},
		[]string{"outcome"},
	)

	OutboxMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbox_messages_total",
			Help: "Outbox messages by delivery result",
		},
		[]string{"result"},
	)

	OutboxQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "outbox_queue_depth",
			Help: "Messages waiting for a dispatcher worker",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		CheckoutSessionsTotal,
		CheckoutSessionAmounts,
		StripeRequestDuration,
		WebhookEventsTotal,
		OutboxMessagesTotal,
		OutboxQueueDepth,
	)
}
