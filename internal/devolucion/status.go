package devolucion

// Status is the lifecycle state of a return request.
type Status string

const (
	StatusPending     Status = "PENDING"
	StatusProcessing  Status = "PROCESSING"
	StatusCompleted   Status = "COMPLETED"
	StatusCancelled   Status = "CANCELLED"
	StatusErrorRefund Status = "ERROR_REFUND"
)

// transitions lists the legal moves. ERROR_REFUND is re-enterable: a failed
// refund can be retried (back to PROCESSING) or force-completed by an
// operator.
var transitions = map[Status][]Status{
	StatusPending:     {StatusProcessing, StatusCancelled},
	StatusProcessing:  {StatusCompleted, StatusErrorRefund},
	StatusErrorRefund: {StatusProcessing, StatusCompleted},
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled, StatusErrorRefund:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether moving from -> to is a legal state change.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ItemAction is what the customer wants done with a returned item.
type ItemAction string

const (
	ActionRefund  ItemAction = "REFUND"
	ActionReplace ItemAction = "REPLACE"
	ActionRepair  ItemAction = "REPAIR"
)

func (a ItemAction) IsValid() bool {
	switch a {
	case ActionRefund, ActionReplace, ActionRepair:
		return true
	}
	return false
}

// RefundStatus is the lifecycle state of a refund record.
type RefundStatus string

const (
	RefundPending   RefundStatus = "pending"
	RefundProcessed RefundStatus = "processed"
	RefundCompleted RefundStatus = "completed"
	RefundFailed    RefundStatus = "failed"
)

// AdjustmentType describes the price delta of a replacement item.
type AdjustmentType string

const (
	AdjustmentNoCharge    AdjustmentType = "no_charge"
	AdjustmentExtraCharge AdjustmentType = "extra_charge"
	AdjustmentCredit      AdjustmentType = "credit"
)
