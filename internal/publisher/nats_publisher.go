package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

type NatsConn interface {
	Publish(subj string, data []byte) error
	FlushWithContext(ctx context.Context) error
	Drain() error
}

// natsEnvelope is the packet shape NestJS microservice consumers decode.
type natsEnvelope struct {
	Pattern string          `json:"pattern"`
	Data    json.RawMessage `json:"data"`
}

type NatsPublisher struct {
	conn NatsConn
}

func NewNatsPublisher(servers []string) (*NatsPublisher, error) {
	conn, err := nats.Connect(strings.Join(servers, ","),
		nats.Name("payments-gateway"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logrus.Warnf("[NATS Publisher] disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logrus.Infof("[NATS Publisher] reconnected to %s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("error connecting to nats: %w", err)
	}
	return NewNatsPublisherWithConn(conn), nil
}

func NewNatsPublisherWithConn(conn NatsConn) *NatsPublisher {
	return &NatsPublisher{conn: conn}
}

// Publish emits value on the subject named by topic and flushes, so a nil
// return means the server has the message. NATS has no partition key.
func (p *NatsPublisher) Publish(ctx context.Context, topic, _ string, value []byte) error {
	data, err := json.Marshal(natsEnvelope{Pattern: topic, Data: value})
	if err != nil {
		return fmt.Errorf("error marshaling envelope: %w", err)
	}

	if err := p.conn.Publish(topic, data); err != nil {
		return fmt.Errorf("error publishing to subject %s: %w", topic, err)
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("error flushing subject %s: %w", topic, err)
	}
	return nil
}

func (p *NatsPublisher) Close() error {
	return p.conn.Drain()
}
