package orchestrator

import "strings"

// StepResult is the explicit outcome of one sub-step of a saga operation.
// Downstream failures are absorbed, not thrown; this is how they surface to
// the caller as structured data.
type StepResult struct {
	Step    string `json:"step"`
	Success bool   `json:"success"`
	Detail  string `json:"detail,omitempty"`
}

const (
	StepOrderLookup      = "order_lookup"
	StepRefund           = "refund"
	StepReplacementOrder = "replacement_order"
	StepNotification     = "notification"
)

// ApprovalReport collects the outcomes of the non-blocking legs of an
// approval (replacement order creation, customer notification).
type ApprovalReport struct {
	ReplacementOrderID string       `json:"replacementOrderId,omitempty"`
	Steps              []StepResult `json:"steps"`
}

// CompletionReport is the structured result of MarkAsCompleted: the return
// always reaches COMPLETED, the steps tell the operator what actually
// happened on the way there.
type CompletionReport struct {
	Steps []StepResult `json:"steps"`
}

func (r *CompletionReport) add(step string, success bool, detail string) {
	r.Steps = append(r.Steps, StepResult{Step: step, Success: success, Detail: detail})
}

// Summary renders the steps into one line for the final historial entry.
func (r *CompletionReport) Summary() string {
	if len(r.Steps) == 0 {
		return "completado sin pasos pendientes"
	}
	parts := make([]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		outcome := "ok"
		if !s.Success {
			outcome = "fallido"
		}
		if s.Detail != "" {
			parts = append(parts, s.Step+": "+outcome+" ("+s.Detail+")")
		} else {
			parts = append(parts, s.Step+": "+outcome)
		}
	}
	return strings.Join(parts, "; ")
}
