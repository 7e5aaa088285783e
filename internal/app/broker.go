package app

import (
	"fmt"

	"github.com/jeffleon2/draftea-payments-gateway/config"
	"github.com/jeffleon2/draftea-payments-gateway/internal/outbox"
	"github.com/jeffleon2/draftea-payments-gateway/internal/publisher"
)

type Broker interface {
	outbox.Broker
	Close() error
}

// NewBroker connects the publisher selected by BROKER_DRIVER.
func NewBroker(cfg *config.Config) (Broker, error) {
	topics := []string{cfg.Broker.PaymentSucceededTopic}

	switch cfg.Broker.Driver {
	case config.DriverKafka:
		return publisher.NewKafkaPublisher(cfg.Kafka.BrokerList(), topics, cfg.Kafka.GetWriterConfig(), cfg.Kafka.GetRetryConfig()), nil
	case config.DriverRabbitMQ:
		p, err := publisher.NewRabbitPublisher(cfg.RabbitMQ.URL, topics)
		if err != nil {
			return nil, err
		}
		return p, nil
	case config.DriverNATS:
		p, err := publisher.NewNatsPublisher(cfg.NATS.ServerList())
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown broker driver %q", cfg.Broker.Driver)
	}
}
