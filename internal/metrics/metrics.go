package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DevolucionesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devoluciones_created_total",
		Help: "Total number of return requests successfully created.",
	})

	DevolucionesApprovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devoluciones_approved_total",
		Help: "Total number of return requests approved.",
	})

	DevolucionesRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devoluciones_rejected_total",
		Help: "Total number of return requests rejected.",
	})

	RefundsProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devoluciones_refunds_processed_total",
		Help: "Total number of refunds confirmed by the payments gateway.",
	})

	RefundsFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devoluciones_refunds_failed_total",
		Help: "Total number of refund attempts declined or errored by the payments gateway.",
	})

	ReplacementOrdersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devoluciones_replacement_orders_total",
		Help: "Total number of replacement orders created downstream.",
	})

	OutboxTasksPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devoluciones_outbox_tasks_published_total",
		Help: "Total number of outbox tasks successfully delivered to the broker.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devoluciones_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
