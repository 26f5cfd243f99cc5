package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"gitlab.com/emarket/devoluciones/internal/devolucion"
)

// Devolucion is the return aggregate root.
type Devolucion struct {
	ID                 uuid.UUID         `db:"id"`
	Codigo             string            `db:"codigo"`
	OrderID            string            `db:"order_id"`
	Estado             devolucion.Status `db:"estado"`
	Version            int               `db:"version"`
	ReembolsoID        *uuid.UUID        `db:"reembolso_id"`
	ReplacementOrderID *string           `db:"replacement_order_id"`
	CreatedAt          time.Time         `db:"created_at"`
	ProcessedAt        *time.Time        `db:"processed_at"`

	Items     []DevolucionItem `db:"-"`
	Historial []HistorialEntry `db:"-"`
	Reembolso *Reembolso       `db:"-"`
}

// DevolucionItem is immutable after creation; there is no business-rule
// update path for it.
type DevolucionItem struct {
	ID           uuid.UUID             `db:"id"`
	DevolucionID uuid.UUID             `db:"devolucion_id"`
	ProductID    string                `db:"product_id"`
	Quantity     int                   `db:"quantity"`
	UnitPrice    float64               `db:"unit_price"`
	Currency     string                `db:"currency"`
	Action       devolucion.ItemAction `db:"action"`
	Reason       string                `db:"reason"`
}

// Reembolso is the refund record, at most one per return.
type Reembolso struct {
	ID            uuid.UUID               `db:"id"`
	DevolucionID  uuid.UUID               `db:"devolucion_id"`
	Amount        float64                 `db:"amount"`
	Currency      string                  `db:"currency"`
	Estado        devolucion.RefundStatus `db:"estado"`
	TransaccionID *string                 `db:"transaccion_id"`
	ProcessedAt   *time.Time              `db:"processed_at"`
	CreatedAt     time.Time               `db:"created_at"`
}

// Reemplazo pairs one returned item with its substitute product.
type Reemplazo struct {
	ID             uuid.UUID                 `db:"id"`
	DevolucionID   uuid.UUID                 `db:"devolucion_id"`
	ItemID         uuid.UUID                 `db:"item_id"`
	NewProductID   string                    `db:"new_product_id"`
	AdjustmentType devolucion.AdjustmentType `db:"adjustment_type"`
	Price          float64                   `db:"price"`
	Currency       string                    `db:"currency"`
	CreatedAt      time.Time                 `db:"created_at"`
}

// HistorialEntry is an append-only audit row for one status transition.
type HistorialEntry struct {
	ID             int64             `db:"id"`
	DevolucionID   uuid.UUID         `db:"devolucion_id"`
	EstadoAnterior devolucion.Status `db:"estado_anterior"`
	EstadoNuevo    devolucion.Status `db:"estado_nuevo"`
	ActorID        string            `db:"actor_id"`
	Comentario     string            `db:"comentario"`
	CreatedAt      time.Time         `db:"created_at"`
}

// RefundableAmount sums unit_price*quantity over REFUND items only; REPLACE
// and REPAIR items never contribute. The currency is taken from the first
// REFUND item (single currency per return assumed).
func RefundableAmount(items []DevolucionItem) (float64, string) {
	var total float64
	currency := ""
	for _, it := range items {
		if it.Action != devolucion.ActionRefund {
			continue
		}
		if currency == "" {
			currency = it.Currency
		}
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total, currency
}

// ReplaceItems filters the items whose requested action is REPLACE.
func ReplaceItems(items []DevolucionItem) []DevolucionItem {
	out := make([]DevolucionItem, 0, len(items))
	for _, it := range items {
		if it.Action == devolucion.ActionReplace {
			out = append(out, it)
		}
	}
	return out
}

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

// OutboxTask is one pending event delivery, persisted in the same
// transaction as the state change it announces.
type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}
