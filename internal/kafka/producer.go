package kafka

import (
	"context"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key []byte, value []byte) error
	Close() error
}

// KafkaProducer writes to the broker with full acks; the outbox relay owns
// retries, so the writer itself stays synchronous.
type KafkaProducer struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

func NewKafkaProducer(brokers []string, logger *zap.Logger) *KafkaProducer {
	return &KafkaProducer{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Balancer:     &kafkago.Hash{},
			RequiredAcks: kafkago.RequireAll,
			BatchTimeout: 50 * time.Millisecond,
		},
		logger: logger,
	}
}

func (p *KafkaProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: topic,
		Key:   key,
		Value: value,
		Time:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", topic, err)
	}
	p.logger.Debug("Message written", zap.String("topic", topic), zap.ByteString("key", key))
	return nil
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// ConsoleProducer prints messages instead of shipping them; useful for local
// runs without a broker.
type ConsoleProducer struct {
	logger *zap.Logger
}

func NewConsoleProducer(logger *zap.Logger) *ConsoleProducer {
	logger.Info("Initialized console producer (no broker configured)")
	return &ConsoleProducer{logger: logger}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	select {
	case <-time.After(50 * time.Millisecond):
		p.logger.Info("Console producer message",
			zap.String("topic", topic),
			zap.ByteString("key", key),
			zap.ByteString("value", value),
		)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *ConsoleProducer) Close() error {
	return nil
}
