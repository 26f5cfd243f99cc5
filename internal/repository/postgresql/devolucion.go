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

type DevolucionRepo struct {
	db db.DB
}

func NewDevolucionRepo(db db.DB) storage.DevolucionRepository {
	return &DevolucionRepo{db: db}
}

func (r *DevolucionRepo) CreateTx(ctx context.Context, tx db.Tx, d *repository.Devolucion, items []repository.DevolucionItem) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	_, err := tx.Exec(ctx, `
        INSERT INTO devoluciones (
            id, codigo, order_id, estado, version, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6)
    `, d.ID, d.Codigo, d.OrderID, d.Estado, d.Version, d.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert devolucion: %w", err)
	}

	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].DevolucionID = d.ID
		_, err := tx.Exec(ctx, `
            INSERT INTO devolucion_items (
                id, devolucion_id, product_id, quantity, unit_price, currency, action, reason
            ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        `, items[i].ID, items[i].DevolucionID, items[i].ProductID, items[i].Quantity,
			items[i].UnitPrice, items[i].Currency, items[i].Action, items[i].Reason)
		if err != nil {
			return fmt.Errorf("failed to insert devolucion item: %w", err)
		}
	}
	d.Items = items
	return nil
}

func (r *DevolucionRepo) NextCorrelativoTx(ctx context.Context, tx db.Tx, day time.Time) (int64, error) {
	var seq int64
	err := tx.ExecQueryRow(ctx, `
        INSERT INTO devolucion_correlativos (dia, last_seq)
        VALUES ($1, 1)
        ON CONFLICT (dia) DO UPDATE SET last_seq = devolucion_correlativos.last_seq + 1
        RETURNING last_seq
    `, day.UTC().Truncate(24*time.Hour)).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to advance correlativo: %w", err)
	}
	return seq, nil
}

func (r *DevolucionRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.Devolucion, error) {
	var d repository.Devolucion
	err := r.db.Get(ctx, &d, `
        SELECT id, codigo, order_id, estado, version, reembolso_id, replacement_order_id, created_at, processed_at
        FROM devoluciones
        WHERE id = $1
    `, id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, devolucion.ErrNotFound
		}
		return nil, err
	}

	items, err := r.GetItems(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Items = items
	return &d, nil
}

func (r *DevolucionRepo) GetItems(ctx context.Context, devolucionID uuid.UUID) ([]repository.DevolucionItem, error) {
	var items []repository.DevolucionItem
	err := r.db.Select(ctx, &items, `
        SELECT id, devolucion_id, product_id, quantity, unit_price, currency, action, reason
        FROM devolucion_items
        WHERE devolucion_id = $1
        ORDER BY id
    `, devolucionID)
	return items, err
}

func (r *DevolucionRepo) List(ctx context.Context, page, limit int) ([]*repository.Devolucion, error) {
	offset := (page - 1) * limit

	var out []*repository.Devolucion
	err := r.db.Select(ctx, &out, `
        SELECT id, codigo, order_id, estado, version, reembolso_id, replacement_order_id, created_at, processed_at
        FROM devoluciones
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `, limit, offset)
	return out, err
}

func (r *DevolucionRepo) UpdateEstadoTx(ctx context.Context, tx db.Tx, id uuid.UUID, fromVersion int, estado devolucion.Status, processedAt *time.Time) error {
	tag, err := tx.Exec(ctx, `
        UPDATE devoluciones
        SET estado = $2,
            version = version + 1,
            processed_at = COALESCE($3, processed_at)
        WHERE id = $1 AND version = $4
    `, id, estado, processedAt, fromVersion)
	if err != nil {
		return fmt.Errorf("failed to update devolucion estado: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the row is gone or someone advanced the version first.
		var exists bool
		if checkErr := r.db.Get(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM devoluciones WHERE id = $1)`, id); checkErr == nil && !exists {
			return devolucion.ErrNotFound
		}
		return devolucion.ErrVersionConflict
	}
	return nil
}

func (r *DevolucionRepo) SetReembolsoIDTx(ctx context.Context, tx db.Tx, id, reembolsoID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
        UPDATE devoluciones SET reembolso_id = $2 WHERE id = $1
    `, id, reembolsoID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return devolucion.ErrNotFound
	}
	return nil
}

func (r *DevolucionRepo) SetReplacementOrderIDTx(ctx context.Context, tx db.Tx, id uuid.UUID, orderID string) error {
	tag, err := tx.Exec(ctx, `
        UPDATE devoluciones SET replacement_order_id = $2 WHERE id = $1
    `, id, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return devolucion.ErrNotFound
	}
	return nil
}
