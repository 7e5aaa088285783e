// Package outbox delivers broker messages off the request path. With a Store
// every message is recorded before it is queued and removed once the broker
// accepts it, so a crash or broker outage leaves rows for the sweeper to
// redeliver. Without a Store delivery is best effort.
package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-payments-gateway/internal/metrics"
	"github.com/jeffleon2/draftea-payments-gateway/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	ErrQueueFull        = errors.New("outbox queue is full")
	ErrDispatcherClosed = errors.New("outbox dispatcher is closed")
)

type Broker interface {
	Publish(ctx context.Context, topic, key string, value []byte) error
}

type Store interface {
	Create(ctx context.Context, entity *models.OutboxMessage) error
	Update(ctx context.Context, entity *models.OutboxMessage, id string) error
	Delete(ctx context.Context, id string) error
	ListCreatedBefore(ctx context.Context, before time.Time, limit int) ([]models.OutboxMessage, error)
}

type Config struct {
	QueueSize      int
	Workers        int
	PublishTimeout time.Duration
	StoreTimeout   time.Duration
	SweepInterval  time.Duration
	RedeliverAfter time.Duration
	SweepBatch     int
}

func (c Config) withDefaults() Config {
	if c.QueueSize <= 0 {
		c.QueueSize = 1024
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.PublishTimeout <= 0 {
		c.PublishTimeout = 30 * time.Second
	}
	if c.StoreTimeout <= 0 {
		c.StoreTimeout = 2 * time.Second
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = 30 * time.Second
	}
	if c.RedeliverAfter <= 0 {
		c.RedeliverAfter = 2 * time.Minute
	}
	if c.SweepBatch <= 0 {
		c.SweepBatch = 100
	}
	return c
}

type Dispatcher struct {
	broker Broker
	store  Store
	cfg    Config
	now    func() time.Time

	queue    chan models.OutboxMessage
	inFlight sync.Map

	mu     sync.RWMutex
	closed bool

	workers    sync.WaitGroup
	sweeper    sync.WaitGroup
	stopSweep  context.CancelFunc
	deliverCtx context.Context
	abort      context.CancelFunc
}

// NewDispatcher builds a dispatcher. store may be nil.
func NewDispatcher(broker Broker, store Store, cfg Config) *Dispatcher {
	cfg = cfg.withDefaults()
	deliverCtx, abort := context.WithCancel(context.Background())

	return &Dispatcher{
		broker:     broker,
		store:      store,
		cfg:        cfg,
		now:        time.Now,
		queue:      make(chan models.OutboxMessage, cfg.QueueSize),
		stopSweep:  func() {},
		deliverCtx: deliverCtx,
		abort:      abort,
	}
}

func (d *Dispatcher) Durable() bool {
	return d.store != nil
}

// Start launches the workers and, for a durable dispatcher, the sweeper. The
// sweeper stops with ctx; workers run until Stop.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.cfg.Workers; i++ {
		d.workers.Add(1)
		go d.work()
	}

	if d.store == nil {
		return
	}

	sweepCtx, cancel := context.WithCancel(ctx)
	d.stopSweep = cancel
	d.sweeper.Add(1)
	go d.runSweeper(sweepCtx)
}

// Publish marshals message and hands it to the workers without waiting for
// the broker. When durable, the only blocking step is the outbox insert.
func (d *Dispatcher) Publish(ctx context.Context, topic, key string, message interface{}) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	msg := models.OutboxMessage{
		ID:      uuid.New().String(),
		Topic:   topic,
		Key:     key,
		Payload: payload,
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrDispatcherClosed
	}

	if d.store != nil {
		storeCtx, cancel := context.WithTimeout(ctx, d.cfg.StoreTimeout)
		defer cancel()
		if err := d.store.Create(storeCtx, &msg); err != nil {
			return fmt.Errorf("error recording outbox message: %w", err)
		}
	}

	if d.enqueue(msg) {
		return nil
	}

	if d.store != nil {
		logrus.WithFields(logrus.Fields{
			"outbox_id": msg.ID,
			"topic":     topic,
		}).Warn("outbox queue full, message left for the sweeper")
		return nil
	}
	return ErrQueueFull
}

// Stop refuses new messages, stops the sweeper and waits for queued messages
// to drain. When ctx expires first, in-progress deliveries are cancelled.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.stopSweep()
	d.sweeper.Wait()

	done := make(chan struct{})
	go func() {
		d.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.abort()
		return nil
	case <-ctx.Done():
		d.abort()
		<-done
		return fmt.Errorf("outbox drain interrupted: %w", ctx.Err())
	}
}

// enqueue must be called with d.mu held for reading.
func (d *Dispatcher) enqueue(msg models.OutboxMessage) bool {
	if _, queued := d.inFlight.LoadOrStore(msg.ID, struct{}{}); queued {
		return true
	}

	select {
	case d.queue <- msg:
		metrics.OutboxQueueDepth.Set(float64(len(d.queue)))
		return true
	default:
		d.inFlight.Delete(msg.ID)
		return false
	}
}

func (d *Dispatcher) work() {
	defer d.workers.Done()

	for msg := range d.queue {
		metrics.OutboxQueueDepth.Set(float64(len(d.queue)))
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg models.OutboxMessage) {
	defer d.inFlight.Delete(msg.ID)

	log := logrus.WithFields(logrus.Fields{
		"outbox_id": msg.ID,
		"topic":     msg.Topic,
		"key":       msg.Key,
	})

	ctx, cancel := context.WithTimeout(d.deliverCtx, d.cfg.PublishTimeout)
	err := d.broker.Publish(ctx, msg.Topic, msg.Key, msg.Payload)
	cancel()

	if err != nil {
		metrics.OutboxMessagesTotal.WithLabelValues("failed").Inc()
		log.WithError(err).Error("error publishing outbox message")
		if d.store != nil {
			d.recordFailure(msg, err)
		}
		return
	}

	metrics.OutboxMessagesTotal.WithLabelValues("published").Inc()
	log.Info("outbox message published")

	if d.store == nil {
		return
	}

	storeCtx, cancel := context.WithTimeout(context.Background(), d.cfg.StoreTimeout)
	defer cancel()
	if err := d.store.Delete(storeCtx, msg.ID); err != nil {
		log.WithError(err).Error("error removing delivered outbox message")
	}
}

func (d *Dispatcher) recordFailure(msg models.OutboxMessage, cause error) {
	msg.Attempts++
	msg.LastError = cause.Error()

	storeCtx, cancel := context.WithTimeout(context.Background(), d.cfg.StoreTimeout)
	defer cancel()
	if err := d.store.Update(storeCtx, &msg, msg.ID); err != nil {
		logrus.WithField("outbox_id", msg.ID).WithError(err).Error("error recording outbox failure")
	}
}

func (d *Dispatcher) runSweeper(ctx context.Context) {
	defer d.sweeper.Done()

	ticker := time.NewTicker(d.cfg.SweepInterval)
	defer ticker.Stop()

	d.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.sweep(ctx)
		}
	}
}

func (d *Dispatcher) sweep(ctx context.Context) {
	storeCtx, cancel := context.WithTimeout(ctx, d.cfg.StoreTimeout)
	defer cancel()

	pending, err := d.store.ListCreatedBefore(storeCtx, d.now().Add(-d.cfg.RedeliverAfter), d.cfg.SweepBatch)
	if err != nil {
		if ctx.Err() == nil {
			logrus.WithError(err).Error("error listing pending outbox messages")
		}
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	for _, msg := range pending {
		if !d.enqueue(msg) {
			logrus.Warnf("outbox queue full, %d pending messages deferred to the next sweep", len(pending))
			return
		}
	}

	if len(pending) > 0 {
		logrus.Infof("outbox sweep re-enqueued %d messages", len(pending))
	}
}
