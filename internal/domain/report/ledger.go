package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gemas-api/internal/domain/entity"
)

// Mode controla sobre qué entidad corre el saldo del estado de cuenta.
type Mode int

const (
	// ModeGlobal acumula un único saldo sobre toda la secuencia
	// (flujo de caja, libro general).
	ModeGlobal Mode = iota
	// ModePerParty acumula un saldo independiente por contraparte
	// (extracto por cliente / libro de clientes).
	ModePerParty
)

// sortChronological ordena por fecha ascendente; empates por número de
// factura, lexicográfico. No muta el slice de entrada.
func sortChronological(invoices []entity.Invoice) []entity.Invoice {
	sorted := make([]entity.Invoice, len(invoices))
	copy(sorted, invoices)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].InvoiceNumber < sorted[j].InvoiceNumber
	})
	return sorted
}

// BuildLedger produce una línea de estado de cuenta por factura, en orden
// cronológico, con saldo corrido.
//
// Por cada factura se calculan sus totales y el clasificador decide débito o
// crédito (exactamente uno distinto de cero). Saldo = anterior + débito −
// crédito; en ModePerParty cada contraparte lleva su propio acumulador.
// Un conjunto filtrado vacío produce slice vacío no-nil, nunca nil.
func BuildLedger(invoices []entity.Invoice, mode Mode) []entity.LedgerRow {
	sorted := sortChronological(invoices)
	rows := make([]entity.LedgerRow, 0, len(sorted))

	var global decimal.Decimal
	perParty := map[string]decimal.Decimal{}

	for _, inv := range sorted {
		amount := CalculateTotals(inv.Rows).TotalAmount
		row := entity.LedgerRow{
			Date:        inv.Date,
			RefNo:       inv.InvoiceNumber,
			Party:       inv.Party,
			Description: inv.TransactionType,
		}
		if IsCredit(inv.TransactionType) {
			row.Credit = amount
		} else {
			row.Debit = amount
		}

		delta := row.Debit.Sub(row.Credit)
		switch mode {
		case ModePerParty:
			perParty[inv.Party] = perParty[inv.Party].Add(delta)
			row.Balance = perParty[inv.Party]
		default:
			global = global.Add(delta)
			row.Balance = global
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildCashFlow produce el flujo de caja: acumulación con signo del monto
// total de cada factura, sin partición débito/crédito. Retorna las líneas y
// el saldo final (0 si no hay movimientos).
func BuildCashFlow(invoices []entity.Invoice) ([]entity.CashFlowRow, decimal.Decimal) {
	sorted := sortChronological(invoices)
	rows := make([]entity.CashFlowRow, 0, len(sorted))

	var balance decimal.Decimal
	for _, inv := range sorted {
		amount := CalculateTotals(inv.Rows).TotalAmount
		balance = balance.Add(amount)
		rows = append(rows, entity.CashFlowRow{
			Date:    inv.Date,
			Party:   inv.Party,
			Type:    inv.TransactionType,
			Amount:  amount,
			Balance: balance,
		})
	}
	return rows, balance
}
