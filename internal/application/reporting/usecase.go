// Package reporting contiene los casos de uso de las vistas derivadas:
// listado de facturas, flujo de caja, extracto por contraparte, libro de
// clientes y resumen. Cada render es un cómputo fresco sobre el snapshot
// que entrega el orquestador de fuentes; nada se cachea entre requests.
package reporting

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gemas-api/internal/application/dto"
	"github.com/jhoicas/Gemas-api/internal/domain"
	"github.com/jhoicas/Gemas-api/internal/domain/entity"
	"github.com/jhoicas/Gemas-api/internal/domain/report"
	"github.com/jhoicas/Gemas-api/pkg/normalize"
)

// InvoiceFetcher resuelve el conjunto de facturas contra las fuentes con
// fallback (nunca falla: degrada a vacío).
type InvoiceFetcher interface {
	FetchInvoices(ctx context.Context) []entity.Invoice
}

// LedgerExporter serializa un libro a un formato de archivo (XLSX).
type LedgerExporter interface {
	ExportLedger(rows []entity.LedgerRow) ([]byte, error)
}

// UseCase agrupa las vistas derivadas de reporte.
type UseCase struct {
	fetcher  InvoiceFetcher
	exporter LedgerExporter
}

// NewUseCase construye el caso de uso. exporter puede ser nil si el export
// XLSX no está habilitado.
func NewUseCase(fetcher InvoiceFetcher, exporter LedgerExporter) *UseCase {
	return &UseCase{fetcher: fetcher, exporter: exporter}
}

// criteria convierte los query params a criterios del dominio. Las fechas
// presentes se normalizan a ISO; las vacías no imponen restricción (por eso
// no pasan por ToISODate, que convertiría vacío en "hoy").
func criteria(q dto.ReportQuery) report.Criteria {
	c := report.Criteria{
		Party:           q.Party,
		TransactionType: q.TransactionType,
		Source:          q.Source,
		SellID:          q.SellID,
	}
	if q.From != "" {
		c.DateFrom = normalize.ToISODate(q.From)
	}
	if q.To != "" {
		c.DateTo = normalize.ToISODate(q.To)
	}
	return c
}

// Invoices devuelve el reporte de facturas filtrado, con totales derivados.
func (uc *UseCase) Invoices(ctx context.Context, q dto.ReportQuery) dto.InvoicesResponse {
	filtered := report.Filter(uc.fetcher.FetchInvoices(ctx), criteria(q))
	out := make([]dto.InvoiceResponse, 0, len(filtered))
	items := []entity.LineItem{}
	for _, inv := range filtered {
		out = append(out, dto.NewInvoiceResponse(inv, report.CalculateTotals(inv.Rows)))
		items = append(items, inv.Rows...)
	}
	return dto.InvoicesResponse{
		Invoices: out,
		Totals:   dto.NewTotalsResponse(report.CalculateTotals(items)),
	}
}

// CashFlow devuelve el flujo de caja del rango pedido.
func (uc *UseCase) CashFlow(ctx context.Context, q dto.ReportQuery) dto.CashFlowResponse {
	filtered := report.Filter(uc.fetcher.FetchInvoices(ctx), criteria(q))
	rows, balance := report.BuildCashFlow(filtered)
	return dto.CashFlowResponse{Rows: dto.NewCashFlowRows(rows), Balance: balance}
}

// PartywiseStatement devuelve el extracto de una contraparte.
// party es obligatorio (domain.ErrInvalidInput si falta).
func (uc *UseCase) PartywiseStatement(ctx context.Context, q dto.ReportQuery) (*dto.StatementResponse, error) {
	if q.Party == "" {
		return nil, domain.ErrInvalidInput
	}
	filtered := report.Filter(uc.fetcher.FetchInvoices(ctx), criteria(q))
	rows := report.BuildLedger(filtered, report.ModePerParty)
	return &dto.StatementResponse{
		Party:     q.Party,
		Statement: dto.NewLedgerRows(rows),
	}, nil
}

// ClientLedger devuelve el libro de clientes: mismas líneas que el extracto
// pero sobre todas las contrapartes, cada una con su saldo independiente.
func (uc *UseCase) ClientLedger(ctx context.Context, q dto.ReportQuery) dto.LedgerResponse {
	filtered := report.Filter(uc.fetcher.FetchInvoices(ctx), criteria(q))
	rows := report.BuildLedger(filtered, report.ModePerParty)
	return dto.LedgerResponse{Rows: dto.NewLedgerRows(rows)}
}

// Summary devuelve el resumen global: cantidad de facturas, totales sobre
// todas las filas y saldo final (débito − crédito) por contraparte.
func (uc *UseCase) Summary(ctx context.Context) dto.SummaryResponse {
	invoices := uc.fetcher.FetchInvoices(ctx)

	items := []entity.LineItem{}
	for _, inv := range invoices {
		items = append(items, inv.Rows...)
	}

	balances := map[string]decimal.Decimal{}
	for _, row := range report.BuildLedger(invoices, report.ModePerParty) {
		balances[row.Party] = row.Balance // la última línea de cada parte gana
	}

	return dto.SummaryResponse{
		InvoiceCount: len(invoices),
		Totals:       dto.NewTotalsResponse(report.CalculateTotals(items)),
		Balances:     balances,
	}
}

// Parties devuelve las contrapartes distintas presentes en las facturas.
func (uc *UseCase) Parties(ctx context.Context) dto.PartiesResponse {
	seen := map[string]struct{}{}
	parties := []string{}
	for _, inv := range uc.fetcher.FetchInvoices(ctx) {
		if inv.Party == "" {
			continue
		}
		if _, ok := seen[inv.Party]; ok {
			continue
		}
		seen[inv.Party] = struct{}{}
		parties = append(parties, inv.Party)
	}
	return dto.PartiesResponse{Parties: parties}
}

// ExportClientLedger genera el libro de clientes como XLSX.
func (uc *UseCase) ExportClientLedger(ctx context.Context, q dto.ReportQuery) ([]byte, error) {
	if uc.exporter == nil {
		return nil, domain.ErrNotFound
	}
	filtered := report.Filter(uc.fetcher.FetchInvoices(ctx), criteria(q))
	return uc.exporter.ExportLedger(report.BuildLedger(filtered, report.ModePerParty))
}
