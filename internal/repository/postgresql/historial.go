package postgresql

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/emarket/devoluciones/internal/db"
	"gitlab.com/emarket/devoluciones/internal/repository"
	"gitlab.com/emarket/devoluciones/internal/storage"
)

type HistorialRepo struct {
	db db.DB
}

func NewHistorialRepo(db db.DB) storage.HistorialRepository {
	return &HistorialRepo{db: db}
}

func (r *HistorialRepo) Create(ctx context.Context, entry *repository.HistorialEntry) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO historial (
            devolucion_id, estado_anterior, estado_nuevo, actor_id, comentario, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6)
    `, entry.DevolucionID, entry.EstadoAnterior, entry.EstadoNuevo, entry.ActorID, entry.Comentario, entry.CreatedAt)
	return err
}

func (r *HistorialRepo) CreateTx(ctx context.Context, tx db.Tx, entry *repository.HistorialEntry) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO historial (
            devolucion_id, estado_anterior, estado_nuevo, actor_id, comentario, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6)
    `, entry.DevolucionID, entry.EstadoAnterior, entry.EstadoNuevo, entry.ActorID, entry.Comentario, entry.CreatedAt)
	return err
}

func (r *HistorialRepo) GetByDevolucionID(ctx context.Context, devolucionID uuid.UUID) ([]*repository.HistorialEntry, error) {
	var entries []*repository.HistorialEntry
	err := r.db.Select(ctx, &entries, `
        SELECT id, devolucion_id, estado_anterior, estado_nuevo, actor_id, comentario, created_at
        FROM historial
        WHERE devolucion_id = $1
        ORDER BY created_at ASC, id ASC
    `, devolucionID)
	return entries, err
}
