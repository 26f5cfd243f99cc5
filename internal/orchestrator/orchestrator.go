//go:generate mockgen -source ./orchestrator.go -destination=./mocks/orchestrator.go -package=mock_orchestrator
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gitlab.com/emarket/devoluciones/internal/clients"
	"gitlab.com/emarket/devoluciones/internal/db"
	"gitlab.com/emarket/devoluciones/internal/devolucion"
	"gitlab.com/emarket/devoluciones/internal/events"
	"gitlab.com/emarket/devoluciones/internal/metrics"
	"gitlab.com/emarket/devoluciones/internal/repository"
	"gitlab.com/emarket/devoluciones/internal/storage"
)

const systemActor = "system"

type OrderLookup interface {
	GetOrderByID(ctx context.Context, orderID string) (*clients.Order, error)
}

type PaymentsGateway interface {
	ProcessRefund(ctx context.Context, req clients.RefundRequest) (*clients.RefundResult, error)
}

type ReplacementOrders interface {
	CreateReplacementOrder(ctx context.Context, customerID string, items []clients.ReplacementItem, originalOrderID, returnID, shippingAddress string) (*clients.ReplacementOrder, error)
}

type Notifier interface {
	SendApprovalNotification(ctx context.Context, payload clients.ApprovalNotification) error
	SendRejectionNotification(ctx context.Context, payload clients.RejectionNotification) error
}

// NewItem is the inbound shape for one requested return line.
type NewItem struct {
	ProductID string
	Quantity  int
	UnitPrice float64
	Currency  string
	Action    devolucion.ItemAction
	Reason    string
}

// Orchestrator drives the return lifecycle. State changes, historial rows
// and outbox events share one transaction; calls to external services happen
// outside it and their failures are absorbed into historial entries and step
// reports rather than propagated.
type Orchestrator struct {
	db           db.DB
	devoluciones storage.DevolucionRepository
	reembolsos   storage.ReembolsoRepository
	reemplazos   storage.ReemplazoRepository
	historial    storage.HistorialRepository
	events       events.Publisher
	orders       OrderLookup
	payments     PaymentsGateway
	replacements ReplacementOrders
	notifier     Notifier
	logger       *zap.Logger
	now          func() time.Time
}

func New(
	database db.DB,
	devoluciones storage.DevolucionRepository,
	reembolsos storage.ReembolsoRepository,
	reemplazos storage.ReemplazoRepository,
	historial storage.HistorialRepository,
	publisher events.Publisher,
	orders OrderLookup,
	payments PaymentsGateway,
	replacements ReplacementOrders,
	notifier Notifier,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		db:           database,
		devoluciones: devoluciones,
		reembolsos:   reembolsos,
		reemplazos:   reemplazos,
		historial:    historial,
		events:       publisher,
		orders:       orders,
		payments:     payments,
		replacements: replacements,
		notifier:     notifier,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the clock, for tests.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// Create registers a new return request in PENDING. The originating order
// must resolve; otherwise nothing is persisted and no event is emitted.
func (o *Orchestrator) Create(ctx context.Context, orderID string, newItems []NewItem) (*repository.Devolucion, error) {
	l := o.logger.With(zap.String("operation", "create"), zap.String("order_id", orderID))

	order, err := o.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create").Inc()
		return nil, fmt.Errorf("order lookup failed: %w", err)
	}

	now := o.now()
	items := make([]repository.DevolucionItem, 0, len(newItems))
	for _, it := range newItems {
		items = append(items, repository.DevolucionItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Currency:  it.Currency,
			Action:    it.Action,
			Reason:    it.Reason,
		})
	}

	d := &repository.Devolucion{
		OrderID:   orderID,
		Estado:    devolucion.StatusPending,
		CreatedAt: now,
	}

	tx, err := o.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	seq, err := o.devoluciones.NextCorrelativoTx(ctx, tx, now)
	if err != nil {
		return nil, err
	}
	d.Codigo = devolucion.FormatCodigo(now, seq)

	if err := o.devoluciones.CreateTx(ctx, tx, d, items); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create").Inc()
		return nil, err
	}

	payload := events.ReturnCreatedPayload{
		DevolucionID:  d.ID.String(),
		Codigo:        d.Codigo,
		OrderID:       orderID,
		CustomerID:    order.CustomerID,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		Items:         toItemPayloads(d.Items),
	}
	if err := o.events.PublishTx(ctx, tx, events.TopicReturnCreated, payload); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.DevolucionesCreatedTotal.Inc()
	l.Info("Return created", zap.String("devolucion_id", d.ID.String()), zap.String("codigo", d.Codigo))
	return d, nil
}

// Approve moves a PENDING return to PROCESSING, generates shipping
// instructions, and best-effort creates a replacement order for REPLACE
// items plus a customer notification. Failures in those legs never roll the
// approval back.
func (o *Orchestrator) Approve(ctx context.Context, id uuid.UUID, adminID, comentario, metodo string) (*repository.Devolucion, *devolucion.ShippingInstructions, *ApprovalReport, error) {
	l := o.logger.With(zap.String("operation", "approve"), zap.String("devolucion_id", id.String()), zap.String("admin_id", adminID))

	d, err := o.devoluciones.GetByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	if d.Estado != devolucion.StatusPending {
		return nil, nil, nil, fmt.Errorf("cannot approve from %s: %w", d.Estado, devolucion.ErrInvalidState)
	}

	now := o.now()
	instructions := devolucion.GenerateShippingInstructions(d.Codigo, now)

	tx, err := o.db.BeginTx(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if err := o.devoluciones.UpdateEstadoTx(ctx, tx, d.ID, d.Version, devolucion.StatusProcessing, nil); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("approve").Inc()
		return nil, nil, nil, err
	}
	if err := o.historial.CreateTx(ctx, tx, &repository.HistorialEntry{
		DevolucionID:   d.ID,
		EstadoAnterior: devolucion.StatusPending,
		EstadoNuevo:    devolucion.StatusProcessing,
		ActorID:        adminID,
		Comentario:     comentario,
		CreatedAt:      now,
	}); err != nil {
		return nil, nil, nil, err
	}
	if err := o.events.PublishTx(ctx, tx, events.TopicReturnApproved, events.ReturnApprovedPayload{
		DevolucionID:     d.ID.String(),
		Codigo:           d.Codigo,
		OrderID:          d.OrderID,
		AdminID:          adminID,
		MetodoDevolucion: metodo,
	}); err != nil {
		return nil, nil, nil, err
	}
	if err := o.events.PublishTx(ctx, tx, events.TopicReturnInstructionsGenerated, events.InstructionsGeneratedPayload{
		DevolucionID:        d.ID.String(),
		Codigo:              d.Codigo,
		AuthorizationNumber: instructions.AuthorizationNumber,
		Steps:               instructions.Steps,
		Deadline:            instructions.Deadline,
	}); err != nil {
		return nil, nil, nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, nil, nil, err
	}

	d.Estado = devolucion.StatusProcessing
	d.Version++
	metrics.DevolucionesApprovedTotal.Inc()
	l.Info("Return approved", zap.String("codigo", d.Codigo))

	report := &ApprovalReport{}

	// Replacement and notification both want customer data; its absence is
	// tolerated.
	order, orderErr := o.orders.GetOrderByID(ctx, d.OrderID)
	if orderErr != nil {
		l.Warn("Order lookup failed during approval, continuing", zap.Error(orderErr))
		report.Steps = append(report.Steps, StepResult{Step: StepOrderLookup, Success: false, Detail: orderErr.Error()})
	}

	if replaceItems := repository.ReplaceItems(d.Items); len(replaceItems) > 0 {
		replacementID, err := o.createReplacementOrder(ctx, d, replaceItems, order)
		if err != nil {
			l.Warn("Replacement order creation failed, approval stands", zap.Error(err))
			o.recordFailure(ctx, d, "creación de orden de reemplazo fallida: "+err.Error())
			report.Steps = append(report.Steps, StepResult{Step: StepReplacementOrder, Success: false, Detail: err.Error()})
		} else {
			report.ReplacementOrderID = replacementID
			report.Steps = append(report.Steps, StepResult{Step: StepReplacementOrder, Success: true, Detail: replacementID})
		}
	}

	if order != nil {
		if err := o.notifier.SendApprovalNotification(ctx, clients.ApprovalNotification{
			CustomerEmail: order.CustomerEmail,
			CustomerName:  order.CustomerName,
			Codigo:        d.Codigo,
			Instructions:  instructions,
		}); err != nil {
			l.Warn("Approval notification failed", zap.Error(err))
			report.Steps = append(report.Steps, StepResult{Step: StepNotification, Success: false, Detail: err.Error()})
		} else {
			report.Steps = append(report.Steps, StepResult{Step: StepNotification, Success: true})
		}
	}

	return d, &instructions, report, nil
}

// Reject moves a PENDING return to CANCELLED.
func (o *Orchestrator) Reject(ctx context.Context, id uuid.UUID, adminID, motivo, comentario string) (*repository.Devolucion, error) {
	l := o.logger.With(zap.String("operation", "reject"), zap.String("devolucion_id", id.String()), zap.String("admin_id", adminID))

	d, err := o.devoluciones.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Estado != devolucion.StatusPending {
		return nil, fmt.Errorf("cannot reject from %s: %w", d.Estado, devolucion.ErrInvalidState)
	}

	now := o.now()
	comment := motivo
	if comentario != "" {
		comment = motivo + ": " + comentario
	}

	tx, err := o.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if err := o.devoluciones.UpdateEstadoTx(ctx, tx, d.ID, d.Version, devolucion.StatusCancelled, &now); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("reject").Inc()
		return nil, err
	}
	if err := o.historial.CreateTx(ctx, tx, &repository.HistorialEntry{
		DevolucionID:   d.ID,
		EstadoAnterior: devolucion.StatusPending,
		EstadoNuevo:    devolucion.StatusCancelled,
		ActorID:        adminID,
		Comentario:     comment,
		CreatedAt:      now,
	}); err != nil {
		return nil, err
	}
	if err := o.events.PublishTx(ctx, tx, events.TopicReturnRejected, events.ReturnRejectedPayload{
		DevolucionID: d.ID.String(),
		Codigo:       d.Codigo,
		OrderID:      d.OrderID,
		AdminID:      adminID,
		Motivo:       motivo,
		Comentario:   comentario,
	}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	d.Estado = devolucion.StatusCancelled
	d.Version++
	d.ProcessedAt = &now
	metrics.DevolucionesRejectedTotal.Inc()
	l.Info("Return rejected", zap.String("codigo", d.Codigo), zap.String("motivo", motivo))

	if order, err := o.orders.GetOrderByID(ctx, d.OrderID); err == nil {
		if err := o.notifier.SendRejectionNotification(ctx, clients.RejectionNotification{
			CustomerEmail: order.CustomerEmail,
			CustomerName:  order.CustomerName,
			Codigo:        d.Codigo,
			Motivo:        motivo,
			Comentario:    comentario,
		}); err != nil {
			l.Warn("Rejection notification failed", zap.Error(err))
		}
	} else {
		l.Warn("Order lookup failed, skipping rejection notification", zap.Error(err))
	}

	return d, nil
}

// ExecuteRefund computes the refundable amount and settles it against the
// payments gateway. Gateway failures park the return in ERROR_REFUND with a
// historial entry; they are never surfaced as errors. Calling it on an
// already COMPLETED return is a no-op.
func (o *Orchestrator) ExecuteRefund(ctx context.Context, id uuid.UUID) (*repository.Devolucion, error) {
	l := o.logger.With(zap.String("operation", "execute_refund"), zap.String("devolucion_id", id.String()))

	d, err := o.devoluciones.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch d.Estado {
	case devolucion.StatusCompleted:
		// Idempotent short-circuit: no second gateway call.
		l.Info("Return already completed, nothing to refund")
		return d, nil
	case devolucion.StatusPending, devolucion.StatusProcessing, devolucion.StatusErrorRefund:
	default:
		return nil, fmt.Errorf("cannot refund from %s: %w", d.Estado, devolucion.ErrInvalidState)
	}

	if d.Estado == devolucion.StatusPending {
		now := o.now()
		if err := o.transition(ctx, d, devolucion.StatusProcessing, nil, systemActor, "inicio de procesamiento de reembolso", now); err != nil {
			return nil, err
		}
	}

	amount, currency := repository.RefundableAmount(d.Items)
	if amount <= 0 {
		// Nothing to pay out; the gateway is never called.
		now := o.now()
		if err := o.transition(ctx, d, devolucion.StatusCompleted, &now, systemActor, "sin items reembolsables, completado sin pago", now); err != nil {
			return nil, err
		}
		l.Info("Return completed without refundable amount")
		return d, nil
	}

	result, gatewayErr := o.payments.ProcessRefund(ctx, clients.RefundRequest{
		OrderID: d.OrderID,
		Amount:  amount,
		Reason:  "devolución " + d.Codigo,
	})
	if gatewayErr != nil || result == nil {
		detail := "la pasarela no entregó id de transacción"
		if gatewayErr != nil {
			detail = gatewayErr.Error()
		}
		metrics.RefundsFailedTotal.Inc()
		l.Warn("Refund failed at gateway", zap.Float64("amount", amount), zap.String("detail", detail))

		now := o.now()
		if d.Estado != devolucion.StatusErrorRefund {
			if err := o.transition(ctx, d, devolucion.StatusErrorRefund, nil, systemActor, "reembolso fallido: "+detail, now); err != nil {
				return nil, err
			}
		} else {
			o.recordFailure(ctx, d, "reintento de reembolso fallido: "+detail)
		}
		return d, nil
	}

	now := o.now()
	reembolso := &repository.Reembolso{
		DevolucionID:  d.ID,
		Amount:        amount,
		Currency:      currency,
		Estado:        devolucion.RefundProcessed,
		TransaccionID: &result.TransactionID,
		ProcessedAt:   &result.ProcessedAt,
		CreatedAt:     now,
	}

	tx, err := o.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if err := o.reembolsos.UpsertTx(ctx, tx, reembolso); err != nil {
		return nil, err
	}
	if err := o.devoluciones.SetReembolsoIDTx(ctx, tx, d.ID, reembolso.ID); err != nil {
		return nil, err
	}
	if err := o.devoluciones.UpdateEstadoTx(ctx, tx, d.ID, d.Version, devolucion.StatusCompleted, &now); err != nil {
		return nil, err
	}
	if err := o.historial.CreateTx(ctx, tx, &repository.HistorialEntry{
		DevolucionID:   d.ID,
		EstadoAnterior: d.Estado,
		EstadoNuevo:    devolucion.StatusCompleted,
		ActorID:        systemActor,
		Comentario:     fmt.Sprintf("reembolso procesado por %.2f %s, transacción %s", amount, currency, result.TransactionID),
		CreatedAt:      now,
	}); err != nil {
		return nil, err
	}
	if err := o.events.PublishTx(ctx, tx, events.TopicReturnPaid, events.ReturnPaidPayload{
		DevolucionID:  d.ID.String(),
		Codigo:        d.Codigo,
		OrderID:       d.OrderID,
		Amount:        amount,
		Currency:      currency,
		TransaccionID: result.TransactionID,
	}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	d.Estado = devolucion.StatusCompleted
	d.Version++
	d.ProcessedAt = &now
	d.Reembolso = reembolso
	d.ReembolsoID = &reembolso.ID
	metrics.RefundsProcessedTotal.Inc()
	l.Info("Refund completed", zap.Float64("amount", amount), zap.String("transaccion_id", result.TransactionID))
	return d, nil
}

// MarkAsCompleted is the operator-triggered "finish this return": it settles
// the refund leg and the replacement leg as best it can and unconditionally
// lands on COMPLETED, reporting per-step outcomes. Partial failure is
// informational, not blocking.
func (o *Orchestrator) MarkAsCompleted(ctx context.Context, id uuid.UUID) (*repository.Devolucion, *CompletionReport, error) {
	l := o.logger.With(zap.String("operation", "mark_as_completed"), zap.String("devolucion_id", id.String()))

	d, err := o.devoluciones.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if d.Estado == devolucion.StatusCompleted || d.Estado == devolucion.StatusCancelled {
		return nil, nil, fmt.Errorf("cannot complete from %s: %w", d.Estado, devolucion.ErrInvalidState)
	}

	report := &CompletionReport{}

	order, orderErr := o.orders.GetOrderByID(ctx, d.OrderID)
	if orderErr != nil {
		l.Warn("Order lookup failed, continuing with placeholder data", zap.Error(orderErr))
		report.add(StepOrderLookup, false, orderErr.Error())
	}

	if amount, currency := repository.RefundableAmount(d.Items); amount > 0 {
		o.completeRefundLeg(ctx, d, amount, currency, report)
	}

	if replaceItems := repository.ReplaceItems(d.Items); len(replaceItems) > 0 && d.ReplacementOrderID == nil {
		replacementID, err := o.createReplacementOrder(ctx, d, replaceItems, order)
		if err != nil {
			l.Warn("Replacement order creation failed, completion continues", zap.Error(err))
			o.recordFailure(ctx, d, "creación de orden de reemplazo fallida: "+err.Error())
			report.add(StepReplacementOrder, false, err.Error())
		} else {
			report.add(StepReplacementOrder, true, replacementID)
		}
	}

	// Unconditional: COMPLETED even when sub-steps failed, reconciliation is
	// a human reading the historial. Flagged as a deliberate policy.
	now := o.now()
	tx, err := o.db.BeginTx(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if err := o.devoluciones.UpdateEstadoTx(ctx, tx, d.ID, d.Version, devolucion.StatusCompleted, &now); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("mark_as_completed").Inc()
		return nil, nil, err
	}
	if err := o.historial.CreateTx(ctx, tx, &repository.HistorialEntry{
		DevolucionID:   d.ID,
		EstadoAnterior: d.Estado,
		EstadoNuevo:    devolucion.StatusCompleted,
		ActorID:        systemActor,
		Comentario:     report.Summary(),
		CreatedAt:      now,
	}); err != nil {
		return nil, nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}

	d.Estado = devolucion.StatusCompleted
	d.Version++
	d.ProcessedAt = &now
	l.Info("Return marked as completed", zap.String("summary", report.Summary()))
	return d, report, nil
}

// GetByID loads the aggregate with refund and historial attached.
func (o *Orchestrator) GetByID(ctx context.Context, id uuid.UUID) (*repository.Devolucion, error) {
	d, err := o.devoluciones.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if reembolso, err := o.reembolsos.GetByDevolucionID(ctx, id); err == nil {
		d.Reembolso = reembolso
	} else if !errors.Is(err, devolucion.ErrNotFound) {
		return nil, err
	}

	entries, err := o.historial.GetByDevolucionID(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Historial = make([]repository.HistorialEntry, 0, len(entries))
	for _, e := range entries {
		d.Historial = append(d.Historial, *e)
	}
	return d, nil
}

// GetEnriched additionally fetches customer/order data, best effort.
func (o *Orchestrator) GetEnriched(ctx context.Context, id uuid.UUID) (*repository.Devolucion, *clients.Order, error) {
	d, err := o.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	order, err := o.orders.GetOrderByID(ctx, d.OrderID)
	if err != nil {
		o.logger.Warn("Order enrichment failed", zap.String("order_id", d.OrderID), zap.Error(err))
		return d, nil, nil
	}
	return d, order, nil
}

func (o *Orchestrator) List(ctx context.Context, page, limit int) ([]*repository.Devolucion, error) {
	return o.devoluciones.List(ctx, page, limit)
}

func (o *Orchestrator) GetHistorial(ctx context.Context, id uuid.UUID) ([]*repository.HistorialEntry, error) {
	if _, err := o.devoluciones.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return o.historial.GetByDevolucionID(ctx, id)
}

// transition applies one optimistic-locked state change together with its
// historial row in a single transaction and mirrors it onto the in-memory
// aggregate.
func (o *Orchestrator) transition(ctx context.Context, d *repository.Devolucion, to devolucion.Status, processedAt *time.Time, actor, comentario string, at time.Time) error {
	tx, err := o.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if err := o.devoluciones.UpdateEstadoTx(ctx, tx, d.ID, d.Version, to, processedAt); err != nil {
		return err
	}
	if err := o.historial.CreateTx(ctx, tx, &repository.HistorialEntry{
		DevolucionID:   d.ID,
		EstadoAnterior: d.Estado,
		EstadoNuevo:    to,
		ActorID:        actor,
		Comentario:     comentario,
		CreatedAt:      at,
	}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	d.Estado = to
	d.Version++
	if processedAt != nil {
		d.ProcessedAt = processedAt
	}
	return nil
}

// completeRefundLeg settles the refund inside MarkAsCompleted without
// touching the aggregate status; failures become historial entries.
func (o *Orchestrator) completeRefundLeg(ctx context.Context, d *repository.Devolucion, amount float64, currency string, report *CompletionReport) {
	l := o.logger.With(zap.String("devolucion_id", d.ID.String()))

	existing, err := o.reembolsos.GetByDevolucionID(ctx, d.ID)
	if err != nil && !errors.Is(err, devolucion.ErrNotFound) {
		report.add(StepRefund, false, err.Error())
		return
	}
	if existing != nil && existing.TransaccionID != nil && *existing.TransaccionID != "" {
		report.add(StepRefund, true, "reembolso ya procesado, transacción "+*existing.TransaccionID)
		return
	}

	result, gatewayErr := o.payments.ProcessRefund(ctx, clients.RefundRequest{
		OrderID: d.OrderID,
		Amount:  amount,
		Reason:  "devolución " + d.Codigo,
	})
	if gatewayErr != nil || result == nil {
		detail := "la pasarela no entregó id de transacción"
		if gatewayErr != nil {
			detail = gatewayErr.Error()
		}
		metrics.RefundsFailedTotal.Inc()
		o.recordFailure(ctx, d, "reembolso fallido durante completación: "+detail)
		report.add(StepRefund, false, detail)
		return
	}

	now := o.now()
	reembolso := existing
	if reembolso == nil {
		reembolso = &repository.Reembolso{
			DevolucionID: d.ID,
			CreatedAt:    now,
		}
	}
	reembolso.Amount = amount
	reembolso.Currency = currency
	reembolso.Estado = devolucion.RefundProcessed
	reembolso.TransaccionID = &result.TransactionID
	reembolso.ProcessedAt = &result.ProcessedAt

	tx, err := o.db.BeginTx(ctx)
	if err != nil {
		report.add(StepRefund, false, err.Error())
		return
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if err := o.reembolsos.UpsertTx(ctx, tx, reembolso); err != nil {
		report.add(StepRefund, false, err.Error())
		return
	}
	if err := o.devoluciones.SetReembolsoIDTx(ctx, tx, d.ID, reembolso.ID); err != nil {
		report.add(StepRefund, false, err.Error())
		return
	}
	if err := o.events.PublishTx(ctx, tx, events.TopicReturnPaid, events.ReturnPaidPayload{
		DevolucionID:  d.ID.String(),
		Codigo:        d.Codigo,
		OrderID:       d.OrderID,
		Amount:        amount,
		Currency:      currency,
		TransaccionID: result.TransactionID,
	}); err != nil {
		report.add(StepRefund, false, err.Error())
		return
	}
	if err := tx.Commit(ctx); err != nil {
		report.add(StepRefund, false, err.Error())
		return
	}

	d.Reembolso = reembolso
	d.ReembolsoID = &reembolso.ID
	metrics.RefundsProcessedTotal.Inc()
	l.Info("Refund settled during completion", zap.Float64("amount", amount), zap.String("transaccion_id", result.TransactionID))
	report.add(StepRefund, true, "transacción "+result.TransactionID)
}

// createReplacementOrder bundles every REPLACE item into one new order and
// persists the resulting links and event.
func (o *Orchestrator) createReplacementOrder(ctx context.Context, d *repository.Devolucion, replaceItems []repository.DevolucionItem, order *clients.Order) (string, error) {
	customerID := ""
	shippingAddress := ""
	if order != nil {
		customerID = order.CustomerID
		shippingAddress = order.ShippingAddress
	}

	lines := make([]clients.ReplacementItem, 0, len(replaceItems))
	for _, it := range replaceItems {
		lines = append(lines, clients.ReplacementItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.UnitPrice,
		})
	}

	created, err := o.replacements.CreateReplacementOrder(ctx, customerID, lines, d.OrderID, d.ID.String(), shippingAddress)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("replacement_order").Inc()
		return "", err
	}

	now := o.now()
	rows := make([]repository.Reemplazo, 0, len(replaceItems))
	for _, it := range replaceItems {
		rows = append(rows, repository.Reemplazo{
			DevolucionID:   d.ID,
			ItemID:         it.ID,
			NewProductID:   it.ProductID,
			AdjustmentType: devolucion.AdjustmentNoCharge,
			Price:          it.UnitPrice,
			Currency:       it.Currency,
			CreatedAt:      now,
		})
	}

	tx, err := o.db.BeginTx(ctx)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if err := o.reemplazos.CreateBulkTx(ctx, tx, rows); err != nil {
		return "", err
	}
	if err := o.devoluciones.SetReplacementOrderIDTx(ctx, tx, d.ID, created.ID); err != nil {
		return "", err
	}
	if err := o.events.PublishTx(ctx, tx, events.TopicReplacementSent, events.ReplacementSentPayload{
		DevolucionID:       d.ID.String(),
		Codigo:             d.Codigo,
		OriginalOrderID:    d.OrderID,
		ReplacementOrderID: created.ID,
		ItemCount:          len(replaceItems),
	}); err != nil {
		return "", err
	}
	if err := tx.Commit(ctx); err != nil {
		return "", err
	}

	d.ReplacementOrderID = &created.ID
	metrics.ReplacementOrdersTotal.Inc()
	return created.ID, nil
}

// recordFailure appends an informational historial entry outside any
// transaction; its own failure is only logged.
func (o *Orchestrator) recordFailure(ctx context.Context, d *repository.Devolucion, comentario string) {
	entry := &repository.HistorialEntry{
		DevolucionID:   d.ID,
		EstadoAnterior: d.Estado,
		EstadoNuevo:    d.Estado,
		ActorID:        systemActor,
		Comentario:     comentario,
		CreatedAt:      o.now(),
	}
	if err := o.historial.Create(ctx, entry); err != nil {
		o.logger.Error("Failed to record historial entry", zap.String("devolucion_id", d.ID.String()), zap.Error(err))
	}
}

func toItemPayloads(items []repository.DevolucionItem) []events.ItemPayload {
	out := make([]events.ItemPayload, 0, len(items))
	for _, it := range items {
		out = append(out, events.ItemPayload{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Currency:  it.Currency,
			Action:    string(it.Action),
			Reason:    it.Reason,
		})
	}
	return out
}
