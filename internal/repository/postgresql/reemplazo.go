package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/emarket/devoluciones/internal/db"
	"gitlab.com/emarket/devoluciones/internal/repository"
	"gitlab.com/emarket/devoluciones/internal/storage"
)

type ReemplazoRepo struct {
	db db.DB
}

func NewReemplazoRepo(db db.DB) storage.ReemplazoRepository {
	return &ReemplazoRepo{db: db}
}

func (r *ReemplazoRepo) CreateBulkTx(ctx context.Context, tx db.Tx, rows []repository.Reemplazo) error {
	for i := range rows {
		if rows[i].ID == uuid.Nil {
			rows[i].ID = uuid.New()
		}
		_, err := tx.Exec(ctx, `
            INSERT INTO reemplazos (
                id, devolucion_id, item_id, new_product_id, adjustment_type, price, currency, created_at
            ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        `, rows[i].ID, rows[i].DevolucionID, rows[i].ItemID, rows[i].NewProductID,
			rows[i].AdjustmentType, rows[i].Price, rows[i].Currency, rows[i].CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert reemplazo for item %s: %w", rows[i].ItemID, err)
		}
	}
	return nil
}

func (r *ReemplazoRepo) GetByDevolucionID(ctx context.Context, devolucionID uuid.UUID) ([]repository.Reemplazo, error) {
	var out []repository.Reemplazo
	err := r.db.Select(ctx, &out, `
        SELECT id, devolucion_id, item_id, new_product_id, adjustment_type, price, currency, created_at
        FROM reemplazos
        WHERE devolucion_id = $1
        ORDER BY created_at ASC
    `, devolucionID)
	return out, err
}
