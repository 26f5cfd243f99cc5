package main

import (
	"context"
	"encoding/json"
	"os/signal"
	"syscall"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.com/emarket/devoluciones/internal/config"
	"gitlab.com/emarket/devoluciones/internal/events"
	"gitlab.com/emarket/devoluciones/internal/logger"
)

const groupID = "devoluciones-notification-consumer"

// Tails every return topic and logs the envelopes; this is the worker that
// the notification service side consumes from.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	defer func() { _ = log.Sync() }()

	cfg := config.Load()
	log.Info("Starting event consumer", zap.Strings("brokers", cfg.KafkaBrokers), zap.Strings("topics", events.Topics))

	g, gctx := errgroup.WithContext(ctx)
	for _, topic := range events.Topics {
		topic := topic
		g.Go(func() error {
			return consumeTopic(gctx, cfg.KafkaBrokers, topic, log.With(zap.String("topic", topic)))
		})
	}

	if err := g.Wait(); err != nil && gctx.Err() == nil {
		log.Fatal("Consumer exited with error", zap.Error(err))
	}
	log.Info("Consumer stopped")
}

func consumeTopic(ctx context.Context, brokers []string, topic string, log *zap.Logger) error {
	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        brokers,
		GroupID:        groupID,
		Topic:          topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Error("Error closing reader", zap.Error(err))
		}
	}()

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Error("Error reading message", zap.Error(err))
			time.Sleep(5 * time.Second)
			continue
		}

		var envelope events.Envelope
		if err := json.Unmarshal(m.Value, &envelope); err != nil {
			log.Warn("Skipping malformed envelope",
				zap.Int64("offset", m.Offset),
				zap.ByteString("value", m.Value))
			continue
		}

		log.Info("Event received",
			zap.String("event_type", envelope.EventType),
			zap.Time("timestamp", envelope.Timestamp),
			zap.Int("partition", m.Partition),
			zap.Int64("offset", m.Offset),
			zap.ByteString("data", envelope.Data),
		)
	}
}
