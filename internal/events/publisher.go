//go:generate mockgen -source ./publisher.go -destination=./mocks/publisher.go -package=mock_events
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gitlab.com/emarket/devoluciones/internal/db"
	"gitlab.com/emarket/devoluciones/internal/repository"
	"gitlab.com/emarket/devoluciones/internal/storage"
)

// Publisher records domain events for delivery. PublishTx writes into the
// caller's transaction, so an event only exists if the state change it
// announces committed; the outbox relay pushes it to the broker afterwards.
type Publisher interface {
	PublishTx(ctx context.Context, tx db.Tx, eventType string, data interface{}) error
}

type OutboxPublisher struct {
	repo storage.OutboxTaskRepository
	now  func() time.Time
}

func NewOutboxPublisher(repo storage.OutboxTaskRepository) *OutboxPublisher {
	return &OutboxPublisher{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (p *OutboxPublisher) PublishTx(ctx context.Context, tx db.Tx, eventType string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	envelope, err := json.Marshal(Envelope{
		EventType: eventType,
		Data:      raw,
		Timestamp: p.now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s envelope: %w", eventType, err)
	}
	task := &repository.OutboxTask{
		Topic:   eventType,
		Payload: envelope,
	}
	if err := p.repo.CreateTx(ctx, tx, task); err != nil {
		return fmt.Errorf("failed to enqueue %s event: %w", eventType, err)
	}
	return nil
}
