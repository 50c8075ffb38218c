package entity

import "github.com/shopspring/decimal"

// Totals agrega las filas de una factura. Siempre se recalcula al leer,
// nunca se persiste independiente de sus insumos.
type Totals struct {
	TotalPcs     decimal.Decimal
	TotalCts     decimal.Decimal
	TotalAmount  decimal.Decimal
	AveragePrice decimal.Decimal // TotalAmount / TotalCts; 0 si TotalCts es 0
}

// LedgerRow es una línea derivada de estado de cuenta (extracto por cliente,
// libro de clientes). Exactamente uno de Debit/Credit es distinto de cero,
// según el clasificador de tipo de transacción; Balance es la suma corrida
// de (Debit − Credit) en orden cronológico.
type LedgerRow struct {
	Date        string
	RefNo       string
	Party       string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
}

// CashFlowRow es una línea del flujo de caja: acumulación con signo del
// monto total, sin partición débito/crédito.
type CashFlowRow struct {
	Date    string
	Party   string
	Type    string
	Amount  decimal.Decimal
	Balance decimal.Decimal
}
