package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem representa una fila editable de la factura (un lote de gemas).
// Amount es derivado (Cts × Price) salvo que la fuente haya enviado un monto
// explícito pre-agregado; en ese caso Amount.Valid es true y se respeta tal
// cual para mantener paridad entre datos de origen servidor y cliente.
type LineItem struct {
	ID          string
	LotName     string
	Description string
	Shape       string
	Size        string
	Grade       string
	Pcs         decimal.Decimal
	Cts         decimal.Decimal // quilates (peso)
	Price       decimal.Decimal // precio por quilate
	Amount      decimal.NullDecimal
	Remarks     string
}

// LineAmount devuelve el monto efectivo de la fila: el monto explícito si la
// fuente lo envió, o Cts × Price en su defecto.
func (li LineItem) LineAmount() decimal.Decimal {
	if li.Amount.Valid {
		return li.Amount.Decimal
	}
	return li.Cts.Mul(li.Price)
}

// Invoice representa una factura del negocio de gemas.
//
// Date siempre es fecha de calendario ISO YYYY-MM-DD (forma canónica); la
// comparación y el orden cronológico son comparación de strings.
// Rows conserva el orden de inserción en todas las vistas derivadas.
type Invoice struct {
	ID              string
	InvoiceNumber   string // INV-{fecha}-{consecutivo de 4 dígitos}, único por corrida
	Date            string
	Party           string // cliente o proveedor contraparte
	TransactionType string // libre: "Sales", "Purchase", "Payment", ...
	Source          string // procedencia del registro (manual, import, ...)
	SellID          string
	Remarks         string
	Rows            []LineItem
	CreatedAt       time.Time
}
