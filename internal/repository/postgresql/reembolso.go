package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/google/uuid"

	"gitlab.com/emarket/devoluciones/internal/db"
	"gitlab.com/emarket/devoluciones/internal/devolucion"
	"gitlab.com/emarket/devoluciones/internal/repository"
	"gitlab.com/emarket/devoluciones/internal/storage"
)

type ReembolsoRepo struct {
	db db.DB
}

func NewReembolsoRepo(db db.DB) storage.ReembolsoRepository {
	return &ReembolsoRepo{db: db}
}

func (r *ReembolsoRepo) GetByDevolucionID(ctx context.Context, devolucionID uuid.UUID) (*repository.Reembolso, error) {
	var out repository.Reembolso
	err := r.db.Get(ctx, &out, `
        SELECT id, devolucion_id, amount, currency, estado, transaccion_id, processed_at, created_at
        FROM reembolsos
        WHERE devolucion_id = $1
    `, devolucionID)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, devolucion.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// UpsertTx keeps the one-refund-per-return invariant: a second insert for
// the same devolucion refreshes the existing row instead of adding another.
func (r *ReembolsoRepo) UpsertTx(ctx context.Context, tx db.Tx, reembolso *repository.Reembolso) error {
	if reembolso.ID == uuid.Nil {
		reembolso.ID = uuid.New()
	}
	err := tx.ExecQueryRow(ctx, `
        INSERT INTO reembolsos (id, devolucion_id, amount, currency, estado, transaccion_id, processed_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (devolucion_id) DO UPDATE SET
            amount = EXCLUDED.amount,
            currency = EXCLUDED.currency,
            estado = EXCLUDED.estado,
            transaccion_id = EXCLUDED.transaccion_id,
            processed_at = EXCLUDED.processed_at
        RETURNING id
    `, reembolso.ID, reembolso.DevolucionID, reembolso.Amount, reembolso.Currency,
		reembolso.Estado, reembolso.TransaccionID, reembolso.ProcessedAt, reembolso.CreatedAt).
		Scan(&reembolso.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert reembolso: %w", err)
	}
	return nil
}

func (r *ReembolsoRepo) MarkProcessedTx(ctx context.Context, tx db.Tx, id uuid.UUID, transaccionID string, processedAt time.Time) error {
	tag, err := tx.Exec(ctx, `
        UPDATE reembolsos
        SET estado = $2, transaccion_id = $3, processed_at = $4
        WHERE id = $1
    `, id, devolucion.RefundProcessed, transaccionID, processedAt)
	if err != nil {
		return fmt.Errorf("failed to mark reembolso processed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return devolucion.ErrNotFound
	}
	return nil
}
