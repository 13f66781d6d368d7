// Package queue contains the background consumer that listens to the
// pairs.served queue and records each event in the stats store.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/iliyamo/letter-pairs/internal/model"
	"github.com/iliyamo/letter-pairs/internal/repository"
)

// QueryStore persists served queries.  *repository.PairQueryRepo satisfies it.
type QueryStore interface {
	Create(ctx context.Context, q *model.PairQuery) error
}

// StartPairsConsumer connects to the broker at url, declares the
// pairs.served queue (durable) and stores every message it receives.  It
// reconnects with exponential backoff and only returns once ctx is done.
func StartPairsConsumer(ctx context.Context, url string, store QueryStore, log *zap.Logger) error {
	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Warn("pairs-consumer: failed to dial broker", zap.Error(err), zap.Duration("retry_in", backoff))
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = consumeLoop(ctx, conn, store, log)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn("pairs-consumer: consume loop ended, reconnecting", zap.Error(err))
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, store QueryStore, log *zap.Logger) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Warn("pairs-consumer: set QoS failed", zap.Error(err))
	}

	if _, err := ch.QueueDeclare(PairsServedQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(PairsServedQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := handleMessage(ctx, store, d.Body); err != nil {
				log.Error("pairs-consumer: handle message failed", zap.Error(err))
				// Bad payloads never become valid; only requeue store failures.
				_ = d.Nack(false, isRetryable(err))
				continue
			}
			_ = d.Ack(false)
		}
	}
}

// errDecode marks payloads that cannot be parsed.
var errDecode = errors.New("decode event")

func handleMessage(ctx context.Context, store QueryStore, body []byte) error {
	var ev PairsServedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("%w: %v", errDecode, err)
	}
	q := &model.PairQuery{
		Mode:     ev.Mode,
		Count:    ev.Count,
		Found:    ev.Found,
		ServedAt: ev.ServedAt.UTC(),
	}
	if err := store.Create(ctx, q); err != nil {
		return fmt.Errorf("store event: %w", err)
	}
	return nil
}

func isRetryable(err error) bool {
	return !errors.Is(err, errDecode) && !errors.Is(err, repository.ErrInvalidQuery)
}
