package devolucion

import (
	"fmt"
	"time"
)

// ShippingInstructions tell the customer how to send the items back. They
// are derived deterministically from the return code and approval time, no
// external call involved.
type ShippingInstructions struct {
	AuthorizationNumber string    `json:"authorization_number"`
	Steps               []string  `json:"steps"`
	Deadline            time.Time `json:"deadline"`
}

const returnWindowDays = 15

func GenerateShippingInstructions(codigo string, approvedAt time.Time) ShippingInstructions {
	return ShippingInstructions{
		AuthorizationNumber: fmt.Sprintf("AUTH-%s-%d", codigo, approvedAt.Unix()),
		Steps: []string{
			"Empaque los productos en su embalaje original o uno equivalente.",
			"Incluya el número de autorización visible en el exterior del paquete.",
			"Entregue el paquete en cualquier punto de despacho habilitado.",
			"Conserve el comprobante de envío hasta recibir la confirmación.",
		},
		Deadline: approvedAt.AddDate(0, 0, returnWindowDays).UTC(),
	}
}

// FormatCodigo builds the human-readable return code RET-YYYYMMDD-NNNNNN
// from the day and the per-day correlativo.
func FormatCodigo(day time.Time, correlativo int64) string {
	return fmt.Sprintf("RET-%s-%06d", day.UTC().Format("20060102"), correlativo)
}
