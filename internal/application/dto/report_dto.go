package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gemas-api/internal/domain/entity"
)

// ReportQuery parámetros comunes de filtrado de reportes.
type ReportQuery struct {
	From            string `query:"from"`
	To              string `query:"to"`
	Party           string `query:"party"`
	TransactionType string `query:"transactionType"`
	Source          string `query:"source"`
	SellID          string `query:"sellId"`
}

// LedgerRowResponse línea de estado de cuenta con saldo corrido.
type LedgerRowResponse struct {
	Date        string          `json:"date"`
	RefNo       string          `json:"refNo"`
	Party       string          `json:"party,omitempty"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// StatementResponse extracto de una contraparte (partywise statement).
type StatementResponse struct {
	Party     string              `json:"party"`
	Statement []LedgerRowResponse `json:"statement"`
}

// LedgerResponse libro de clientes (saldo independiente por contraparte).
type LedgerResponse struct {
	Rows []LedgerRowResponse `json:"rows"`
}

// CashFlowRowResponse línea del flujo de caja.
type CashFlowRowResponse struct {
	Date    string          `json:"date"`
	Party   string          `json:"party"`
	Type    string          `json:"type"`
	Amount  decimal.Decimal `json:"amount"`
	Balance decimal.Decimal `json:"balance"`
}

// CashFlowResponse flujo de caja con saldo final.
type CashFlowResponse struct {
	Rows    []CashFlowRowResponse `json:"rows"`
	Balance decimal.Decimal       `json:"balance"`
}

// SummaryResponse resumen global del negocio.
type SummaryResponse struct {
	InvoiceCount int                        `json:"invoiceCount"`
	Totals       TotalsResponse             `json:"totals"`
	Balances     map[string]decimal.Decimal `json:"balances"`
}

// PartiesResponse contrapartes conocidas.
type PartiesResponse struct {
	Parties []string `json:"parties"`
}

// NewLedgerRows mapea las líneas del dominio.
func NewLedgerRows(rows []entity.LedgerRow) []LedgerRowResponse {
	out := make([]LedgerRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, LedgerRowResponse{
			Date:        r.Date,
			RefNo:       r.RefNo,
			Party:       r.Party,
			Description: r.Description,
			Debit:       r.Debit,
			Credit:      r.Credit,
			Balance:     r.Balance,
		})
	}
	return out
}

// NewCashFlowRows mapea las líneas del dominio.
func NewCashFlowRows(rows []entity.CashFlowRow) []CashFlowRowResponse {
	out := make([]CashFlowRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, CashFlowRowResponse{
			Date:    r.Date,
			Party:   r.Party,
			Type:    r.Type,
			Amount:  r.Amount,
			Balance: r.Balance,
		})
	}
	return out
}
