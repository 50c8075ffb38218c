package report

import (
	"strings"

	"github.com/jhoicas/Gemas-api/internal/domain/entity"
)

// Criteria son los predicados opcionales aplicados antes de agregar.
// Campos vacíos no imponen restricción; todos los presentes se combinan
// con AND. Las fechas son cotas inclusivas de calendario en forma ISO
// (el caller las normaliza antes de construir el Criteria).
type Criteria struct {
	DateFrom        string
	DateTo          string
	Party           string // substring, insensible a mayúsculas
	TransactionType string // igualdad exacta, insensible a mayúsculas
	Source          string // igualdad exacta, insensible a mayúsculas
	SellID          string // igualdad exacta, insensible a mayúsculas
}

// Filter aplica los criterios sobre la lista de facturas conservando el orden.
// Siempre retorna slice no-nil.
func Filter(invoices []entity.Invoice, c Criteria) []entity.Invoice {
	filtered := make([]entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if c.Matches(inv) {
			filtered = append(filtered, inv)
		}
	}
	return filtered
}

// Matches evalúa todos los predicados presentes contra una factura.
func (c Criteria) Matches(inv entity.Invoice) bool {
	// Fechas ISO: la comparación de calendario es comparación de strings.
	if c.DateFrom != "" && inv.Date < c.DateFrom {
		return false
	}
	if c.DateTo != "" && inv.Date > c.DateTo {
		return false
	}
	if c.Party != "" && !strings.Contains(strings.ToLower(inv.Party), strings.ToLower(c.Party)) {
		return false
	}
	if c.TransactionType != "" && !strings.EqualFold(inv.TransactionType, c.TransactionType) {
		return false
	}
	if c.Source != "" && !strings.EqualFold(inv.Source, c.Source) {
		return false
	}
	if c.SellID != "" && !strings.EqualFold(inv.SellID, c.SellID) {
		return false
	}
	return true
}
