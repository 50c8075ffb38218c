package report

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gemas-api/internal/domain/entity"
)

// CalculateTotals agrega las filas de una factura.
//
// El monto por fila respeta el camino dual: si la fuente envió un amount
// explícito se usa tal cual (datos pre-agregados de origen servidor); si no,
// se deriva Cts × Price. El precio promedio lleva guarda de división por
// cero como regla de primera clase: TotalCts 0 → AveragePrice 0.
func CalculateTotals(items []entity.LineItem) entity.Totals {
	var t entity.Totals
	for _, item := range items {
		t.TotalPcs = t.TotalPcs.Add(item.Pcs)
		t.TotalCts = t.TotalCts.Add(item.Cts)
		t.TotalAmount = t.TotalAmount.Add(item.LineAmount())
	}
	if t.TotalCts.IsPositive() {
		t.AveragePrice = t.TotalAmount.Div(t.TotalCts)
	} else {
		t.AveragePrice = decimal.Zero
	}
	return t
}
