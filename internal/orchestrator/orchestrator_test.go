package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"gitlab.com/emarket/devoluciones/internal/clients"
	mock_database "gitlab.com/emarket/devoluciones/internal/db/mocks"
	"gitlab.com/emarket/devoluciones/internal/devolucion"
	"gitlab.com/emarket/devoluciones/internal/events"
	mock_events "gitlab.com/emarket/devoluciones/internal/events/mocks"
	mock_orchestrator "gitlab.com/emarket/devoluciones/internal/orchestrator/mocks"
	"gitlab.com/emarket/devoluciones/internal/repository"
	mock_storage "gitlab.com/emarket/devoluciones/internal/storage/mocks"
)

type orchestratorMocks struct {
	db           *mock_database.MockDB
	tx           *mock_database.MockTx
	devoluciones *mock_storage.MockDevolucionRepository
	reembolsos   *mock_storage.MockReembolsoRepository
	reemplazos   *mock_storage.MockReemplazoRepository
	historial    *mock_storage.MockHistorialRepository
	publisher    *mock_events.MockPublisher
	orders       *mock_orchestrator.MockOrderLookup
	payments     *mock_orchestrator.MockPaymentsGateway
	replacements *mock_orchestrator.MockReplacementOrders
	notifier     *mock_orchestrator.MockNotifier
}

var testClock = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestOrchestrator(ctrl *gomock.Controller) (*Orchestrator, *orchestratorMocks) {
	m := &orchestratorMocks{
		db:           mock_database.NewMockDB(ctrl),
		tx:           mock_database.NewMockTx(ctrl),
		devoluciones: mock_storage.NewMockDevolucionRepository(ctrl),
		reembolsos:   mock_storage.NewMockReembolsoRepository(ctrl),
		reemplazos:   mock_storage.NewMockReemplazoRepository(ctrl),
		historial:    mock_storage.NewMockHistorialRepository(ctrl),
		publisher:    mock_events.NewMockPublisher(ctrl),
		orders:       mock_orchestrator.NewMockOrderLookup(ctrl),
		payments:     mock_orchestrator.NewMockPaymentsGateway(ctrl),
		replacements: mock_orchestrator.NewMockReplacementOrders(ctrl),
		notifier:     mock_orchestrator.NewMockNotifier(ctrl),
	}

	m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil).AnyTimes()
	m.tx.EXPECT().Commit(gomock.Any()).Return(nil).AnyTimes()
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

	o := New(
		m.db, m.devoluciones, m.reembolsos, m.reemplazos, m.historial,
		m.publisher, m.orders, m.payments, m.replacements, m.notifier,
		zap.NewNop(),
	).WithClock(func() time.Time { return testClock })
	return o, m
}

func testOrder() *clients.Order {
	return &clients.Order{
		ID:              "order123",
		CustomerID:      "cust-1",
		CustomerName:    "Ana Pérez",
		CustomerEmail:   "ana@example.com",
		ShippingAddress: "Av. Central 123",
	}
}

func pendingDevolucion(items ...repository.DevolucionItem) *repository.Devolucion {
	return &repository.Devolucion{
		ID:        uuid.New(),
		Codigo:    "RET-20250310-000001",
		OrderID:   "order123",
		Estado:    devolucion.StatusPending,
		Version:   0,
		CreatedAt: testClock.Add(-time.Hour),
		Items:     items,
	}
}

func refundItem(price float64, qty int) repository.DevolucionItem {
	return repository.DevolucionItem{
		ID:        uuid.New(),
		ProductID: "prod-1",
		Quantity:  qty,
		UnitPrice: price,
		Currency:  "PEN",
		Action:    devolucion.ActionRefund,
		Reason:    "defectuoso",
	}
}

func replaceItem(price float64, qty int) repository.DevolucionItem {
	return repository.DevolucionItem{
		ID:        uuid.New(),
		ProductID: "prod-2",
		Quantity:  qty,
		UnitPrice: price,
		Currency:  "PEN",
		Action:    devolucion.ActionReplace,
		Reason:    "talla incorrecta",
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		m.orders.EXPECT().GetOrderByID(gomock.Any(), "order123").Return(testOrder(), nil)
		m.devoluciones.EXPECT().NextCorrelativoTx(gomock.Any(), m.tx, gomock.Any()).Return(int64(7), nil)
		m.devoluciones.EXPECT().
			CreateTx(gomock.Any(), m.tx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, d *repository.Devolucion, items []repository.DevolucionItem) error {
				assert.Equal(t, devolucion.StatusPending, d.Estado)
				assert.Equal(t, "RET-20250310-000007", d.Codigo)
				assert.Len(t, items, 2)
				d.ID = uuid.New()
				d.Items = items
				return nil
			})
		m.publisher.EXPECT().
			PublishTx(gomock.Any(), m.tx, events.TopicReturnCreated, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, _ string, data interface{}) error {
				payload := data.(events.ReturnCreatedPayload)
				assert.Equal(t, "order123", payload.OrderID)
				assert.Equal(t, "cust-1", payload.CustomerID)
				assert.Len(t, payload.Items, 2)
				return nil
			})

		d, err := o.Create(ctx, "order123", []NewItem{
			{ProductID: "prod-1", Quantity: 2, UnitPrice: 50, Currency: "PEN", Action: devolucion.ActionRefund, Reason: "defectuoso"},
			{ProductID: "prod-2", Quantity: 1, UnitPrice: 10, Currency: "PEN", Action: devolucion.ActionReplace},
		})
		require.NoError(t, err)
		assert.Equal(t, devolucion.StatusPending, d.Estado)
		assert.Equal(t, "RET-20250310-000007", d.Codigo)
	})

	t.Run("Order Not Found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		m.orders.EXPECT().
			GetOrderByID(gomock.Any(), "missing").
			Return(nil, fmt.Errorf("order missing: %w", devolucion.ErrNotFound))

		d, err := o.Create(ctx, "missing", []NewItem{
			{ProductID: "prod-1", Quantity: 1, UnitPrice: 10, Currency: "PEN", Action: devolucion.ActionRefund},
		})
		assert.Nil(t, d)
		assert.ErrorIs(t, err, devolucion.ErrNotFound)
		// No CreateTx / PublishTx expectations: nothing may be persisted.
	})
}

func TestApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending To Processing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		d := pendingDevolucion(refundItem(50, 2))
		m.devoluciones.EXPECT().GetByID(gomock.Any(), d.ID).Return(d, nil)
		m.devoluciones.EXPECT().
			UpdateEstadoTx(gomock.Any(), m.tx, d.ID, 0, devolucion.StatusProcessing, nil).
			Return(nil)
		m.historial.EXPECT().
			CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, entry *repository.HistorialEntry) error {
				assert.Equal(t, devolucion.StatusPending, entry.EstadoAnterior)
				assert.Equal(t, devolucion.StatusProcessing, entry.EstadoNuevo)
				assert.Equal(t, "admin-9", entry.ActorID)
				return nil
			})
		m.publisher.EXPECT().PublishTx(gomock.Any(), m.tx, events.TopicReturnApproved, gomock.Any()).Return(nil)
		m.publisher.EXPECT().PublishTx(gomock.Any(), m.tx, events.TopicReturnInstructionsGenerated, gomock.Any()).Return(nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), "order123").Return(testOrder(), nil)
		m.notifier.EXPECT().SendApprovalNotification(gomock.Any(), gomock.Any()).Return(nil)

		updated, instructions, report, err := o.Approve(ctx, d.ID, "admin-9", "producto revisado", "pickup")
		require.NoError(t, err)
		assert.Equal(t, devolucion.StatusProcessing, updated.Estado)
		assert.Equal(t, 1, updated.Version)
		require.NotNil(t, instructions)
		assert.Contains(t, instructions.AuthorizationNumber, "AUTH-"+d.Codigo)
		assert.Equal(t, testClock.AddDate(0, 0, 15), instructions.Deadline)
		require.NotNil(t, report)
		assert.Equal(t, []StepResult{{Step: StepNotification, Success: true}}, report.Steps)
	})

	t.Run("Replacement Failure Does Not Roll Back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		d := pendingDevolucion(replaceItem(30, 1))
		m.devoluciones.EXPECT().GetByID(gomock.Any(), d.ID).Return(d, nil)
		m.devoluciones.EXPECT().
			UpdateEstadoTx(gomock.Any(), m.tx, d.ID, 0, devolucion.StatusProcessing, nil).
			Return(nil)
		m.historial.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
		m.publisher.EXPECT().PublishTx(gomock.Any(), m.tx, events.TopicReturnApproved, gomock.Any()).Return(nil)
		m.publisher.EXPECT().PublishTx(gomock.Any(), m.tx, events.TopicReturnInstructionsGenerated, gomock.Any()).Return(nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), "order123").Return(testOrder(), nil)
		m.replacements.EXPECT().
			CreateReplacementOrder(gomock.Any(), "cust-1", gomock.Any(), "order123", d.ID.String(), "Av. Central 123").
			Return(nil, errors.New("order-command unavailable"))
		m.historial.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *repository.HistorialEntry) error {
				assert.Equal(t, devolucion.StatusProcessing, entry.EstadoAnterior)
				assert.Equal(t, devolucion.StatusProcessing, entry.EstadoNuevo)
				assert.Contains(t, entry.Comentario, "orden de reemplazo")
				return nil
			})
		m.notifier.EXPECT().SendApprovalNotification(gomock.Any(), gomock.Any()).Return(nil)

		updated, _, report, err := o.Approve(ctx, d.ID, "admin-9", "", "courier")
		require.NoError(t, err)
		assert.Equal(t, devolucion.StatusProcessing, updated.Estado)
		require.NotNil(t, report)
		assert.Equal(t, StepReplacementOrder, report.Steps[0].Step)
		assert.False(t, report.Steps[0].Success)
	})

	t.Run("Invalid From Processing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		d := pendingDevolucion(refundItem(10, 1))
		d.Estado = devolucion.StatusProcessing
		m.devoluciones.EXPECT().GetByID(gomock.Any(), d.ID).Return(d, nil)

		_, _, _, err := o.Approve(ctx, d.ID, "admin-9", "", "")
		assert.ErrorIs(t, err, devolucion.ErrInvalidState)
	})

	t.Run("Not Found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		id := uuid.New()
		m.devoluciones.EXPECT().GetByID(gomock.Any(), id).Return(nil, devolucion.ErrNotFound)

		_, _, _, err := o.Approve(ctx, id, "admin-9", "", "")
		assert.ErrorIs(t, err, devolucion.ErrNotFound)
	})
}

func TestReject(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending To Cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		d := pendingDevolucion(refundItem(50, 1))
		m.devoluciones.EXPECT().GetByID(gomock.Any(), d.ID).Return(d, nil)
		m.devoluciones.EXPECT().
			UpdateEstadoTx(gomock.Any(), m.tx, d.ID, 0, devolucion.StatusCancelled, gomock.Any()).
			Return(nil)
		m.historial.EXPECT().
			CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, entry *repository.HistorialEntry) error {
				assert.Equal(t, devolucion.StatusCancelled, entry.EstadoNuevo)
				assert.Equal(t, "fuera de plazo: compra de hace 60 días", entry.Comentario)
				return nil
			})
		m.publisher.EXPECT().PublishTx(gomock.Any(), m.tx, events.TopicReturnRejected, gomock.Any()).Return(nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), "order123").Return(testOrder(), nil)
		m.notifier.EXPECT().SendRejectionNotification(gomock.Any(), gomock.Any()).Return(nil)

		updated, err := o.Reject(ctx, d.ID, "admin-9", "fuera de plazo", "compra de hace 60 días")
		require.NoError(t, err)
		assert.Equal(t, devolucion.StatusCancelled, updated.Estado)
		require.NotNil(t, updated.ProcessedAt)
		assert.Equal(t, testClock, *updated.ProcessedAt)
	})

	t.Run("Invalid From Cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		d := pendingDevolucion(refundItem(10, 1))
		d.Estado = devolucion.StatusCancelled
		m.devoluciones.EXPECT().GetByID(gomock.Any(), d.ID).Return(d, nil)

		_, err := o.Reject(ctx, d.ID, "admin-9", "motivo", "")
		assert.ErrorIs(t, err, devolucion.ErrInvalidState)
	})
}

func TestExecuteRefund(t *testing.T) {
	ctx := context.Background()

	t.Run("Success From Processing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		d := pendingDevolucion(refundItem(50, 2), replaceItem(10, 1))
		d.Estado = devolucion.StatusProcessing
		d.Version = 1
		m.devoluciones.EXPECT().GetByID(gomock.Any(), d.ID).Return(d, nil)
		m.payments.EXPECT().
			ProcessRefund(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req clients.RefundRequest) (*clients.RefundResult, error) {
				// REPLACE items never contribute to the payout.
				assert.Equal(t, 100.0, req.Amount)
				assert.Equal(t, "order123", req.OrderID)
				return &clients.RefundResult{TransactionID: "tx-1", ProcessedAt: testClock}, nil
			})
		m.reembolsos.EXPECT().
			UpsertTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, r *repository.Reembolso) error {
				assert.Equal(t, 100.0, r.Amount)
				assert.Equal(t, "PEN", r.Currency)
				assert.Equal(t, devolucion.RefundProcessed, r.Estado)
				require.NotNil(t, r.TransaccionID)
				assert.Equal(t, "tx-1", *r.TransaccionID)
				r.ID = uuid.New()
				return nil
			})
		m.devoluciones.EXPECT().SetReembolsoIDTx(gomock.Any(), m.tx, d.ID, gomock.Any()).Return(nil)
		m.devoluciones.EXPECT().
			UpdateEstadoTx(gomock.Any(), m.tx, d.ID, 1, devolucion.StatusCompleted, gomock.Any()).
			Return(nil)
		m.historial.EXPECT().
			CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, entry *repository.HistorialEntry) error {
				assert.Equal(t, devolucion.StatusProcessing, entry.EstadoAnterior)
				assert.Equal(t, devolucion.StatusCompleted, entry.EstadoNuevo)
				assert.Contains(t, entry.Comentario, "tx-1")
				return nil
			})
		m.publisher.EXPECT().
			PublishTx(gomock.Any(), m.tx, events.TopicReturnPaid, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, _ string, data interface{}) error {
				payload := data.(events.ReturnPaidPayload)
				assert.Equal(t, 100.0, payload.Amount)
				assert.Equal(t, "tx-1", payload.TransaccionID)
				return nil
			})

		updated, err := o.ExecuteRefund(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, devolucion.StatusCompleted, updated.Estado)
		require.NotNil(t, updated.Reembolso)
		assert.Equal(t, "tx-1", *updated.Reembolso.TransaccionID)
	})

	t.Run("Idempotent On Completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		d := pendingDevolucion(refundItem(50, 2))
		d.Estado = devolucion.StatusCompleted
		m.devoluciones.EXPECT().GetByID(gomock.Any(), d.ID).Return(d, nil)
		// No ProcessRefund expectation: a second gateway call would fail the test.

		updated, err := o.ExecuteRefund(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, devolucion.StatusCompleted, updated.Estado)
	})

	t.Run("Invalid From Cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		d := pendingDevolucion(refundItem(50, 2))
		d.Estado = devolucion.StatusCancelled
		m.devoluciones.EXPECT().GetByID(gomock.Any(), d.ID).Return(d, nil)

		_, err := o.ExecuteRefund(ctx, d.ID)
		assert.ErrorIs(t, err, devolucion.ErrInvalidState)
	})

	t.Run("Zero Amount Skips Gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		d := pendingDevolucion(replaceItem(30, 1))
		d.Estado = devolucion.StatusProcessing
		d.Version = 1
		m.devoluciones.EXPECT().GetByID(gomock.Any(), d.ID).Return(d, nil)
		m.devoluciones.EXPECT().
			UpdateEstadoTx(gomock.Any(), m.tx, d.ID, 1, devolucion.StatusCompleted, gomock.Any()).
			Return(nil)
		m.historial.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)

		updated, err := o.ExecuteRefund(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, devolucion.StatusCompleted, updated.Estado)
	})

	t.Run("Gateway Decline Goes To ErrorRefund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		d := pendingDevolucion(refundItem(50, 2))
		d.Estado = devolucion.StatusProcessing
		d.Version = 1
		m.devoluciones.EXPECT().GetByID(gomock.Any(), d.ID).Return(d, nil)
		m.payments.EXPECT().ProcessRefund(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.devoluciones.EXPECT().
			UpdateEstadoTx(gomock.Any(), m.tx, d.ID, 1, devolucion.StatusErrorRefund, nil).
			Return(nil)
		m.historial.EXPECT().
			CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, entry *repository.HistorialEntry) error {
				assert.Equal(t, devolucion.StatusErrorRefund, entry.EstadoNuevo)
				assert.Contains(t, entry.Comentario, "reembolso fallido")
				return nil
			})

		updated, err := o.ExecuteRefund(ctx, d.ID)
		require.NoError(t, err, "gateway failures are absorbed, never surfaced")
		assert.Equal(t, devolucion.StatusErrorRefund, updated.Estado)
	})

	t.Run("Retry From ErrorRefund Records Failure Without Transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		d := pendingDevolucion(refundItem(50, 2))
		d.Estado = devolucion.StatusErrorRefund
		d.Version = 2
		m.devoluciones.EXPECT().GetByID(gomock.Any(), d.ID).Return(d, nil)
		m.payments.EXPECT().ProcessRefund(gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway timeout"))
		m.historial.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *repository.HistorialEntry) error {
				assert.Equal(t, devolucion.StatusErrorRefund, entry.EstadoAnterior)
				assert.Equal(t, devolucion.StatusErrorRefund, entry.EstadoNuevo)
				return nil
			})

		updated, err := o.ExecuteRefund(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, devolucion.StatusErrorRefund, updated.Estado)
	})

	t.Run("From Pending Passes Through Processing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		var chain []repository.HistorialEntry

		d := pendingDevolucion(refundItem(50, 2), replaceItem(10, 1))
		m.devoluciones.EXPECT().GetByID(gomock.Any(), d.ID).Return(d, nil)
		m.devoluciones.EXPECT().
			UpdateEstadoTx(gomock.Any(), m.tx, d.ID, 0, devolucion.StatusProcessing, nil).
			Return(nil)
		m.payments.EXPECT().
			ProcessRefund(gomock.Any(), gomock.Any()).
			Return(&clients.RefundResult{TransactionID: "tx-1", ProcessedAt: testClock}, nil)
		m.reembolsos.EXPECT().
			UpsertTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, r *repository.Reembolso) error {
				r.ID = uuid.New()
				return nil
			})
		m.devoluciones.EXPECT().SetReembolsoIDTx(gomock.Any(), m.tx, d.ID, gomock.Any()).Return(nil)
		m.devoluciones.EXPECT().
			UpdateEstadoTx(gomock.Any(), m.tx, d.ID, 1, devolucion.StatusCompleted, gomock.Any()).
			Return(nil)
		m.historial.EXPECT().
			CreateTx(gomock.Any(), m.tx, gomock.Any()).
			Times(2).
			DoAndReturn(func(_ context.Context, _ interface{}, entry *repository.HistorialEntry) error {
				chain = append(chain, *entry)
				return nil
			})
		m.publisher.EXPECT().PublishTx(gomock.Any(), m.tx, events.TopicReturnPaid, gomock.Any()).Return(nil)

		updated, err := o.ExecuteRefund(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, devolucion.StatusCompleted, updated.Estado)

		require.Len(t, chain, 2)
		assert.Equal(t, devolucion.StatusPending, chain[0].EstadoAnterior)
		assert.Equal(t, devolucion.StatusProcessing, chain[0].EstadoNuevo)
		assert.Equal(t, devolucion.StatusProcessing, chain[1].EstadoAnterior)
		assert.Equal(t, devolucion.StatusCompleted, chain[1].EstadoNuevo)
	})
}

func TestMarkAsCompleted(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid From Terminal States", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		for _, estado := range []devolucion.Status{devolucion.StatusCompleted, devolucion.StatusCancelled} {
			d := pendingDevolucion(refundItem(10, 1))
			d.Estado = estado
			m.devoluciones.EXPECT().GetByID(gomock.Any(), d.ID).Return(d, nil)

			_, _, err := o.MarkAsCompleted(ctx, d.ID)
			assert.ErrorIs(t, err, devolucion.ErrInvalidState)
		}
	})

	t.Run("Reuses Settled Refund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		d := pendingDevolucion(refundItem(50, 2))
		d.Estado = devolucion.StatusErrorRefund
		d.Version = 2
		txID := "tx-old"
		m.devoluciones.EXPECT().GetByID(gomock.Any(), d.ID).Return(d, nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), "order123").Return(testOrder(), nil)
		m.reembolsos.EXPECT().
			GetByDevolucionID(gomock.Any(), d.ID).
			Return(&repository.Reembolso{ID: uuid.New(), DevolucionID: d.ID, TransaccionID: &txID}, nil)
		// No ProcessRefund expectation: the settled refund must be reused.
		m.devoluciones.EXPECT().
			UpdateEstadoTx(gomock.Any(), m.tx, d.ID, 2, devolucion.StatusCompleted, gomock.Any()).
			Return(nil)
		m.historial.EXPECT().
			CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, entry *repository.HistorialEntry) error {
				assert.Equal(t, devolucion.StatusCompleted, entry.EstadoNuevo)
				assert.Contains(t, entry.Comentario, "tx-old")
				return nil
			})

		updated, report, err := o.MarkAsCompleted(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, devolucion.StatusCompleted, updated.Estado)
		require.Len(t, report.Steps, 1)
		assert.Equal(t, StepRefund, report.Steps[0].Step)
		assert.True(t, report.Steps[0].Success)
	})

	t.Run("Completes Despite Gateway Failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		d := pendingDevolucion(refundItem(25, 2))
		d.Estado = devolucion.StatusProcessing
		d.Version = 1
		m.devoluciones.EXPECT().GetByID(gomock.Any(), d.ID).Return(d, nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), "order123").Return(testOrder(), nil)
		m.reembolsos.EXPECT().GetByDevolucionID(gomock.Any(), d.ID).Return(nil, devolucion.ErrNotFound)
		m.payments.EXPECT().ProcessRefund(gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway down"))
		m.historial.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.devoluciones.EXPECT().
			UpdateEstadoTx(gomock.Any(), m.tx, d.ID, 1, devolucion.StatusCompleted, gomock.Any()).
			Return(nil)
		m.historial.EXPECT().
			CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, entry *repository.HistorialEntry) error {
				assert.Contains(t, entry.Comentario, "fallido")
				return nil
			})

		updated, report, err := o.MarkAsCompleted(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, devolucion.StatusCompleted, updated.Estado)
		require.Len(t, report.Steps, 1)
		assert.False(t, report.Steps[0].Success)
	})

	t.Run("Creates Missing Replacement Order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o, m := newTestOrchestrator(ctrl)

		d := pendingDevolucion(replaceItem(30, 1))
		d.Estado = devolucion.StatusProcessing
		d.Version = 1
		m.devoluciones.EXPECT().GetByID(gomock.Any(), d.ID).Return(d, nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), "order123").Return(testOrder(), nil)
		m.replacements.EXPECT().
			CreateReplacementOrder(gomock.Any(), "cust-1", gomock.Any(), "order123", d.ID.String(), "Av. Central 123").
			Return(&clients.ReplacementOrder{ID: "ord-new", Status: "created", CreatedAt: testClock}, nil)
		m.reemplazos.EXPECT().
			CreateBulkTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, rows []repository.Reemplazo) error {
				require.Len(t, rows, 1)
				assert.Equal(t, devolucion.AdjustmentNoCharge, rows[0].AdjustmentType)
				return nil
			})
		m.devoluciones.EXPECT().SetReplacementOrderIDTx(gomock.Any(), m.tx, d.ID, "ord-new").Return(nil)
		m.publisher.EXPECT().PublishTx(gomock.Any(), m.tx, events.TopicReplacementSent, gomock.Any()).Return(nil)
		m.devoluciones.EXPECT().
			UpdateEstadoTx(gomock.Any(), m.tx, d.ID, 1, devolucion.StatusCompleted, gomock.Any()).
			Return(nil)
		m.historial.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)

		updated, report, err := o.MarkAsCompleted(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, devolucion.StatusCompleted, updated.Estado)
		require.NotNil(t, updated.ReplacementOrderID)
		assert.Equal(t, "ord-new", *updated.ReplacementOrderID)
		require.Len(t, report.Steps, 1)
		assert.Equal(t, StepReplacementOrder, report.Steps[0].Step)
		assert.True(t, report.Steps[0].Success)
	})
}
