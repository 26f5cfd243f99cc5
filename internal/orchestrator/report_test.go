package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionReportSummary(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		r := &CompletionReport{}
		assert.Equal(t, "completado sin pasos pendientes", r.Summary())
	})

	t.Run("Mixed Outcomes", func(t *testing.T) {
		r := &CompletionReport{}
		r.add(StepRefund, true, "transacción tx-1")
		r.add(StepReplacementOrder, false, "order-command unavailable")
		r.add(StepNotification, true, "")

		assert.Equal(t,
			"refund: ok (transacción tx-1); replacement_order: fallido (order-command unavailable); notification: ok",
			r.Summary())
	})
}
