//go:generate mockgen -source ./storage.go -destination=./mocks/storage.go -package=mock_storage
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gitlab.com/emarket/devoluciones/internal/db"
	"gitlab.com/emarket/devoluciones/internal/devolucion"
	"gitlab.com/emarket/devoluciones/internal/repository"
)

type DevolucionRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, d *repository.Devolucion, items []repository.DevolucionItem) error
	// NextCorrelativoTx atomically increments and returns the per-day
	// sequence used for the human-readable code.
	NextCorrelativoTx(ctx context.Context, tx db.Tx, day time.Time) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Devolucion, error)
	GetItems(ctx context.Context, devolucionID uuid.UUID) ([]repository.DevolucionItem, error)
	List(ctx context.Context, page, limit int) ([]*repository.Devolucion, error)
	// UpdateEstadoTx performs an optimistic-lock state change; it returns
	// devolucion.ErrVersionConflict when the version no longer matches.
	UpdateEstadoTx(ctx context.Context, tx db.Tx, id uuid.UUID, fromVersion int, estado devolucion.Status, processedAt *time.Time) error
	SetReembolsoIDTx(ctx context.Context, tx db.Tx, id, reembolsoID uuid.UUID) error
	SetReplacementOrderIDTx(ctx context.Context, tx db.Tx, id uuid.UUID, orderID string) error
}

type ReembolsoRepository interface {
	GetByDevolucionID(ctx context.Context, devolucionID uuid.UUID) (*repository.Reembolso, error)
	// UpsertTx creates the refund row or refreshes the existing one for the
	// return (idempotent by lookup on devolucion_id).
	UpsertTx(ctx context.Context, tx db.Tx, r *repository.Reembolso) error
	MarkProcessedTx(ctx context.Context, tx db.Tx, id uuid.UUID, transaccionID string, processedAt time.Time) error
}

type ReemplazoRepository interface {
	CreateBulkTx(ctx context.Context, tx db.Tx, rows []repository.Reemplazo) error
	GetByDevolucionID(ctx context.Context, devolucionID uuid.UUID) ([]repository.Reemplazo, error)
}

type HistorialRepository interface {
	Create(ctx context.Context, entry *repository.HistorialEntry) error
	CreateTx(ctx context.Context, tx db.Tx, entry *repository.HistorialEntry) error
	GetByDevolucionID(ctx context.Context, devolucionID uuid.UUID) ([]*repository.HistorialEntry, error)
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, db db.DB, limit int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, username, password string) error
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}
