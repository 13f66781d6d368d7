// Package service provides publishers for domain events.  Publishing never
// blocks the request path: events are queued and sent by a background
// goroutine, and dropped when the queue is full.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	q "github.com/iliyamo/letter-pairs/internal/queue"
)

const (
	defaultBufferSize     = 1024
	defaultDialTimeout    = 2 * time.Second
	defaultPublishTimeout = 3 * time.Second
)

var (
	// ErrQueueFull is returned when the event buffer has no room; the event
	// is dropped.
	ErrQueueFull = errors.New("publish queue full")
	// ErrPublisherClosed is returned after Close.
	ErrPublisherClosed = errors.New("publisher closed")
)

// QueuePublisher publishes PairsServedEvent messages to the pairs.served
// queue.  A single goroutine owns the broker connection, opening it on
// first use and reopening it after any failure.  Safe for concurrent use.
type QueuePublisher struct {
	url            string
	log            *zap.Logger
	dialTimeout    time.Duration
	publishTimeout time.Duration

	events chan q.PairsServedEvent
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup

	// owned by the run goroutine
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewQueuePublisher returns a running publisher for the broker at url.  No
// connection is made until the first event arrives.  Call Close to stop it.
func NewQueuePublisher(url string, log *zap.Logger) *QueuePublisher {
	if log == nil {
		log = zap.NewNop()
	}
	p := &QueuePublisher{
		url:            url,
		log:            log,
		dialTimeout:    defaultDialTimeout,
		publishTimeout: defaultPublishTimeout,
		events:         make(chan q.PairsServedEvent, defaultBufferSize),
		done:           make(chan struct{}),
	}
	p.wg.Add(1)
	go p.run()
	return p
}

// PublishPairsServed queues ev for sending and returns at once.  ctx is
// only checked, never waited on.
func (p *QueuePublisher) PublishPairsServed(ctx context.Context, ev q.PairsServedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-p.done:
		return ErrPublisherClosed
	default:
	}
	select {
	case p.events <- ev:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *QueuePublisher) run() {
	defer p.wg.Done()
	defer p.reset()
	for {
		// done wins over queued events so Close waits for at most one send.
		select {
		case <-p.done:
			return
		default:
		}
		select {
		case <-p.done:
			return
		case ev := <-p.events:
			ctx, cancel := context.WithTimeout(context.Background(), p.publishTimeout)
			if err := p.send(ctx, ev); err != nil {
				p.log.Warn("rabbitmq: publish failed", zap.String("mode", ev.Mode), zap.Error(err))
			}
			cancel()
		}
	}
}

// send publishes ev as a persistent JSON message.
func (p *QueuePublisher) send(ctx context.Context, ev q.PairsServedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if err := p.ensureChannel(ctx); err != nil {
		return err
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := p.ch.PublishWithContext(ctx,
		"",                 // default exchange
		q.PairsServedQueue, // routing key = queue name
		false,              // mandatory
		false,              // immediate
		pub,
	); err != nil {
		p.reset()
		return err
	}
	return nil
}

// ensureChannel dials and declares the queue when no live channel exists.
// The TCP connect and the AMQP handshake are both bounded by dialTimeout.
func (p *QueuePublisher) ensureChannel(ctx context.Context) error {
	if p.ch != nil && !p.ch.IsClosed() && p.conn != nil && !p.conn.IsClosed() {
		return nil
	}
	p.reset()
	if err := ctx.Err(); err != nil {
		return err
	}

	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(p.dialTimeout),
	})
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}
	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(q.PairsServedQueue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}
	p.conn, p.ch = conn, ch
	return nil
}

func (p *QueuePublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// Close stops the background goroutine and releases the broker connection.
// Events still queued are dropped; a send in flight is allowed to finish.
func (p *QueuePublisher) Close() error {
	p.once.Do(func() { close(p.done) })
	p.wg.Wait()
	return nil
}
