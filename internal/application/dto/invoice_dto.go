package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gemas-api/internal/domain/entity"
)

// CreateInvoiceRequest body para POST /api/invoices.
// party, transactionType y date son obligatorios (error de cliente si faltan).
type CreateInvoiceRequest struct {
	Party           string            `json:"party"`
	TransactionType string            `json:"transactionType"`
	Date            string            `json:"date"`
	Source          string            `json:"source,omitempty"`
	SellID          string            `json:"sellId,omitempty"`
	Remarks         string            `json:"remarks,omitempty"`
	Items           []LineItemRequest `json:"items"`
}

// LineItemRequest fila editable de la factura.
// Amount es opcional: si viene, se respeta como monto pre-agregado; si no,
// el servidor deriva cts × price.
type LineItemRequest struct {
	LotName     string           `json:"lotName"`
	Description string           `json:"description"`
	Shape       string           `json:"shape"`
	Size        string           `json:"size"`
	Grade       string           `json:"grade"`
	Pcs         decimal.Decimal  `json:"pcs"`
	Cts         decimal.Decimal  `json:"cts"`
	Price       decimal.Decimal  `json:"price"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Remarks     string           `json:"remarks,omitempty"`
}

// TotalsResponse agregados derivados de una factura.
type TotalsResponse struct {
	TotalPcs     decimal.Decimal `json:"totalPcs"`
	TotalCts     decimal.Decimal `json:"totalCts"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	AveragePrice decimal.Decimal `json:"averagePrice"`
}

// LineItemResponse fila de factura en respuestas. Amount siempre viene
// resuelto (explícito o derivado).
type LineItemResponse struct {
	ID          string          `json:"id"`
	LotName     string          `json:"lotName"`
	Description string          `json:"description"`
	Shape       string          `json:"shape"`
	Size        string          `json:"size"`
	Grade       string          `json:"grade"`
	Pcs         decimal.Decimal `json:"pcs"`
	Cts         decimal.Decimal `json:"cts"`
	Price       decimal.Decimal `json:"price"`
	Amount      decimal.Decimal `json:"amount"`
	Remarks     string          `json:"remarks,omitempty"`
}

// InvoiceResponse factura con filas y totales derivados.
type InvoiceResponse struct {
	ID              string             `json:"id"`
	InvoiceNumber   string             `json:"invoiceNumber"`
	Date            string             `json:"date"`
	Party           string             `json:"party"`
	TransactionType string             `json:"transactionType"`
	Source          string             `json:"source,omitempty"`
	SellID          string             `json:"sellId,omitempty"`
	Remarks         string             `json:"remarks,omitempty"`
	Rows            []LineItemResponse `json:"rows"`
	Totals          TotalsResponse     `json:"totals"`
}

// InvoicesResponse listado para GET /api/invoices, con totales agregados
// sobre todas las filas del conjunto filtrado.
type InvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Totals   TotalsResponse    `json:"totals"`
}

// NewTotalsResponse mapea los totales del dominio.
func NewTotalsResponse(t entity.Totals) TotalsResponse {
	return TotalsResponse{
		TotalPcs:     t.TotalPcs,
		TotalCts:     t.TotalCts,
		TotalAmount:  t.TotalAmount,
		AveragePrice: t.AveragePrice,
	}
}

// NewInvoiceResponse mapea una factura del dominio con sus totales ya
// calculados (los totales se derivan en el caso de uso, nunca se cachean).
func NewInvoiceResponse(inv entity.Invoice, totals entity.Totals) InvoiceResponse {
	rows := make([]LineItemResponse, 0, len(inv.Rows))
	for _, r := range inv.Rows {
		rows = append(rows, LineItemResponse{
			ID:          r.ID,
			LotName:     r.LotName,
			Description: r.Description,
			Shape:       r.Shape,
			Size:        r.Size,
			Grade:       r.Grade,
			Pcs:         r.Pcs,
			Cts:         r.Cts,
			Price:       r.Price,
			Amount:      r.LineAmount(),
			Remarks:     r.Remarks,
		})
	}
	return InvoiceResponse{
		ID:              inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		Date:            inv.Date,
		Party:           inv.Party,
		TransactionType: inv.TransactionType,
		Source:          inv.Source,
		SellID:          inv.SellID,
		Remarks:         inv.Remarks,
		Rows:            rows,
		Totals:          NewTotalsResponse(totals),
	}
}
