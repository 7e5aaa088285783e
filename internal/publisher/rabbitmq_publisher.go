package publisher

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the subset of *amqp.Channel the publisher drives.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithDeferredConfirmWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (*amqp.DeferredConfirmation, error)
	Close() error
}

// RabbitPublisher sends each topic to a durable queue of the same name on the
// default exchange, with publisher confirms enabled.
type RabbitPublisher struct {
	conn *amqp.Connection
	chn  Channel

	mu       sync.Mutex
	declared map[string]bool
}

func NewRabbitPublisher(url string, topics []string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error dialing rabbitmq: %w", err)
	}

	chn, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("error opening rabbitmq channel: %w", err)
	}

	if err := chn.Confirm(false); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("error enabling publisher confirms: %w", err)
	}

	p, err := NewRabbitPublisherWithChannel(chn, topics)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func NewRabbitPublisherWithChannel(chn Channel, topics []string) (*RabbitPublisher, error) {
	p := &RabbitPublisher{
		chn:      chn,
		declared: make(map[string]bool, len(topics)),
	}
	for _, topic := range topics {
		if err := p.declare(topic); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, topic, key string, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.declare(topic); err != nil {
		return err
	}

	confirmation, err := p.chn.PublishWithDeferredConfirmWithContext(ctx, "", topic, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    key,
		Timestamp:    time.Now().UTC(),
		Body:         value,
	})
	if err != nil {
		return fmt.Errorf("error publishing to queue %s: %w", topic, err)
	}

	// nil when the channel is not in confirm mode
	if confirmation == nil {
		return nil
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("error waiting for confirm on queue %s: %w", topic, err)
	}
	if !acked {
		return fmt.Errorf("broker nacked message for queue %s", topic)
	}
	return nil
}

func (p *RabbitPublisher) Close() error {
	if err := p.chn.Close(); err != nil {
		return err
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

func (p *RabbitPublisher) declare(topic string) error {
	if p.declared[topic] {
		return nil
	}
	if _, err := p.chn.QueueDeclare(topic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("error declaring queue %s: %w", topic, err)
	}
	p.declared[topic] = true
	return nil
}
