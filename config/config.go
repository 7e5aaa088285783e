package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DriverKafka    = "kafka"
	DriverRabbitMQ = "rabbitmq"
	DriverNATS     = "nats"
)

func New() (*Config, error) {
	var Config Config
	if err := godotenv.Load(".env"); err != nil {
		logrus.Debug("no .env file found, reading configuration from the environment")
	}
	if err := env.Parse(&Config); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	if err := Config.Validate(); err != nil {
		return nil, err
	}
	return &Config, nil
}

type Config struct {
	APP
	Stripe
	Broker
	Kafka
	RabbitMQ
	NATS
	DB
	Outbox
}

type APP struct {
	PORT      string `env:"APP_PORT,required"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	GinMode   string `env:"GIN_MODE" envDefault:"release"`
}

type Stripe struct {
	SecretKey           string        `env:"STRIPE_SECRET,required"`
	EndpointSecret      string        `env:"STRIPE_ENDPOINT_SECRET,required"`
	SuccessURL          string        `env:"STRIPE_SUCCESS_URL,required"`
	CancelURL           string        `env:"STRIPE_CANCEL_URL,required"`
	Timeout             time.Duration `env:"STRIPE_TIMEOUT" envDefault:"10s"`
	WebhookTolerance    time.Duration `env:"STRIPE_WEBHOOK_TOLERANCE" envDefault:"300s"`
	APIURL              string        `env:"STRIPE_API_URL"`
	WebhookMaxBodyBytes int64         `env:"WEBHOOK_MAX_BODY_BYTES" envDefault:"1048576"`
}

type Broker struct {
	Driver                string `env:"BROKER_DRIVER" envDefault:"kafka"`
	PaymentSucceededTopic string `env:"PAYMENT_SUCCEEDED_TOPIC" envDefault:"payment.succeeded"`
}

type Kafka struct {
	Brokers string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`

	// Publishes are single synchronous writes; a batch never fills.
	BatchSize    int           `env:"KAFKA_BATCH_SIZE" envDefault:"1"`
	BatchTimeout time.Duration `env:"KAFKA_BATCH_TIMEOUT" envDefault:"10ms"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type RabbitMQ struct {
	URL string `env:"RABBITMQ_URL"`
}

type NATS struct {
	Servers string `env:"NATS_SERVERS"`
}

// DB is optional. The outbox becomes durable when HOST is set.
type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT" envDefault:"5432"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type Outbox struct {
	QueueSize      int           `env:"OUTBOX_QUEUE_SIZE" envDefault:"1024"`
	Workers        int           `env:"OUTBOX_WORKERS" envDefault:"4"`
	PublishTimeout time.Duration `env:"OUTBOX_PUBLISH_TIMEOUT" envDefault:"30s"`
	StoreTimeout   time.Duration `env:"OUTBOX_STORE_TIMEOUT" envDefault:"2s"`
	SweepInterval  time.Duration `env:"OUTBOX_SWEEP_INTERVAL" envDefault:"30s"`
	RedeliverAfter time.Duration `env:"OUTBOX_REDELIVER_AFTER" envDefault:"2m"`
	SweepBatch     int           `env:"OUTBOX_SWEEP_BATCH" envDefault:"100"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

type WriterConfig struct {
	BatchSize    int
	BatchTimeout time.Duration
}

func (k Kafka) GetWriterConfig() WriterConfig {
	return WriterConfig{
		BatchSize:    k.BatchSize,
		BatchTimeout: k.BatchTimeout,
	}
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

func (k Kafka) BrokerList() []string {
	return splitList(k.Brokers)
}

func (n NATS) ServerList() []string {
	return splitList(n.Servers)
}

func (db DB) Enabled() bool {
	return db.HOST != ""
}

// Validate checks the cross-field rules env tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	switch c.Broker.Driver {
	case DriverKafka:
		if len(c.Kafka.BrokerList()) == 0 {
			errs = append(errs, errors.New("KAFKA_BROKERS is required when BROKER_DRIVER=kafka"))
		}
	case DriverRabbitMQ:
		if c.RabbitMQ.URL == "" {
			errs = append(errs, errors.New("RABBITMQ_URL is required when BROKER_DRIVER=rabbitmq"))
		}
	case DriverNATS:
		if len(c.NATS.ServerList()) == 0 {
			errs = append(errs, errors.New("NATS_SERVERS is required when BROKER_DRIVER=nats"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown BROKER_DRIVER %q", c.Broker.Driver))
	}

	if strings.TrimSpace(c.Broker.PaymentSucceededTopic) == "" {
		errs = append(errs, errors.New("PAYMENT_SUCCEEDED_TOPIC must not be empty"))
	}
	if c.Stripe.Timeout <= 0 {
		errs = append(errs, errors.New("STRIPE_TIMEOUT must be positive"))
	}
	if c.Stripe.WebhookTolerance <= 0 {
		errs = append(errs, errors.New("STRIPE_WEBHOOK_TOLERANCE must be positive"))
	}
	if c.Stripe.WebhookMaxBodyBytes <= 0 {
		errs = append(errs, errors.New("WEBHOOK_MAX_BODY_BYTES must be positive"))
	}
	if c.Outbox.QueueSize <= 0 || c.Outbox.Workers <= 0 {
		errs = append(errs, errors.New("OUTBOX_QUEUE_SIZE and OUTBOX_WORKERS must be positive"))
	}

	return errors.Join(errs...)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
