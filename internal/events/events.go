package events

import (
	"encoding/json"
	"time"
)

// Topic names double as event types: each event is published to the topic
// named after it.
const (
	TopicReturnCreated               = "return-created"
	TopicReturnApproved              = "return-approved"
	TopicReturnRejected              = "return-rejected"
	TopicReturnPaid                  = "return-paid"
	TopicReplacementSent             = "replacement-sent"
	TopicReturnInstructionsGenerated = "return-instructions-generated"
)

// Topics lists every topic the service publishes, in the order a consumer
// would want to subscribe to them.
var Topics = []string{
	TopicReturnCreated,
	TopicReturnApproved,
	TopicReturnRejected,
	TopicReturnPaid,
	TopicReplacementSent,
	TopicReturnInstructionsGenerated,
}

// Envelope is the wire format shared by all topics.
type Envelope struct {
	EventType string          `json:"eventType"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

type ItemPayload struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Currency  string  `json:"currency"`
	Action    string  `json:"action"`
	Reason    string  `json:"reason,omitempty"`
}

type ReturnCreatedPayload struct {
	DevolucionID  string        `json:"devolucionId"`
	Codigo        string        `json:"codigo"`
	OrderID       string        `json:"orderId"`
	CustomerID    string        `json:"customerId"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	Items         []ItemPayload `json:"items"`
}

type ReturnApprovedPayload struct {
	DevolucionID     string `json:"devolucionId"`
	Codigo           string `json:"codigo"`
	OrderID          string `json:"orderId"`
	AdminID          string `json:"adminId"`
	MetodoDevolucion string `json:"metodoDevolucion,omitempty"`
}

type ReturnRejectedPayload struct {
	DevolucionID string `json:"devolucionId"`
	Codigo       string `json:"codigo"`
	OrderID      string `json:"orderId"`
	AdminID      string `json:"adminId"`
	Motivo       string `json:"motivo"`
	Comentario   string `json:"comentario,omitempty"`
}

type ReturnPaidPayload struct {
	DevolucionID  string  `json:"devolucionId"`
	Codigo        string  `json:"codigo"`
	OrderID       string  `json:"orderId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	TransaccionID string  `json:"transaccionId"`
}

type ReplacementSentPayload struct {
	DevolucionID       string `json:"devolucionId"`
	Codigo             string `json:"codigo"`
	OriginalOrderID    string `json:"originalOrderId"`
	ReplacementOrderID string `json:"replacementOrderId"`
	ItemCount          int    `json:"itemCount"`
}

type InstructionsGeneratedPayload struct {
	DevolucionID        string    `json:"devolucionId"`
	Codigo              string    `json:"codigo"`
	AuthorizationNumber string    `json:"authorizationNumber"`
	Steps               []string  `json:"steps"`
	Deadline            time.Time `json:"deadline"`
}
