package reporting_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gemas-api/internal/application/dto"
	"github.com/jhoicas/Gemas-api/internal/application/reporting"
	"github.com/jhoicas/Gemas-api/internal/domain"
	"github.com/jhoicas/Gemas-api/internal/domain/entity"
)

// fetcherFijo entrega siempre el mismo conjunto (simula al orquestador).
type fetcherFijo struct {
	invoices []entity.Invoice
}

func (f *fetcherFijo) FetchInvoices(_ context.Context) []entity.Invoice {
	return f.invoices
}

func factura(num, date, party, tipo, monto string) entity.Invoice {
	return entity.Invoice{
		ID: num, InvoiceNumber: num, Date: date, Party: party,
		TransactionType: tipo,
		Rows: []entity.LineItem{
			{Pcs: decimal.NewFromInt(1), Cts: decimal.NewFromInt(1),
				Price: decimal.RequireFromString(monto)},
		},
	}
}

func fixture() *reporting.UseCase {
	return reporting.NewUseCase(&fetcherFijo{invoices: []entity.Invoice{
		factura("INV-1", "2024-01-10", "Acme", "Sales", "100"),
		factura("INV-2", "2024-01-20", "Ruby", "Sales", "50"),
		factura("INV-3", "2024-01-25", "Acme", "Payment", "30"),
	}}, nil)
}

func TestInvoices_FiltroYTotalesAgregados(t *testing.T) {
	resp := fixture().Invoices(context.Background(), dto.ReportQuery{Party: "acme"})

	require.Len(t, resp.Invoices, 2)
	assert.True(t, resp.Totals.TotalAmount.Equal(decimal.NewFromInt(130)),
		"los totales agregan solo el conjunto filtrado")
}

func TestCashFlow_SaldoFinal(t *testing.T) {
	resp := fixture().CashFlow(context.Background(), dto.ReportQuery{})

	require.Len(t, resp.Rows, 3)
	assert.True(t, resp.Balance.Equal(decimal.NewFromInt(180)),
		"el flujo de caja acumula montos sin partición")
}

func TestPartywiseStatement_PartyObligatorio(t *testing.T) {
	_, err := fixture().PartywiseStatement(context.Background(), dto.ReportQuery{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPartywiseStatement_SaldoDeLaContraparte(t *testing.T) {
	resp, err := fixture().PartywiseStatement(context.Background(), dto.ReportQuery{Party: "Acme"})
	require.NoError(t, err)

	require.Len(t, resp.Statement, 2)
	assert.Equal(t, "70", resp.Statement[1].Balance.String(),
		"venta 100 menos pago 30")
}

func TestClientLedger_SaldosIndependientes(t *testing.T) {
	resp := fixture().ClientLedger(context.Background(), dto.ReportQuery{})

	require.Len(t, resp.Rows, 3)
	assert.Equal(t, "50", resp.Rows[1].Balance.String(), "Ruby lleva su propio saldo")
	assert.Equal(t, "70", resp.Rows[2].Balance.String())
}

func TestSummary_ConteoTotalesYSaldos(t *testing.T) {
	resp := fixture().Summary(context.Background())

	assert.Equal(t, 3, resp.InvoiceCount)
	assert.True(t, resp.Totals.TotalAmount.Equal(decimal.NewFromInt(180)))
	require.Contains(t, resp.Balances, "Acme")
	require.Contains(t, resp.Balances, "Ruby")
	assert.True(t, resp.Balances["Acme"].Equal(decimal.NewFromInt(70)),
		"el saldo por contraparte es el final de su libro")
	assert.True(t, resp.Balances["Ruby"].Equal(decimal.NewFromInt(50)))
}

func TestParties_DistintasEnOrdenDeAparicion(t *testing.T) {
	resp := fixture().Parties(context.Background())
	assert.Equal(t, []string{"Acme", "Ruby"}, resp.Parties)
}

func TestExportClientLedger_SinExporter(t *testing.T) {
	_, err := fixture().ExportClientLedger(context.Background(), dto.ReportQuery{})
	assert.ErrorIs(t, err, domain.ErrNotFound, "sin exporter configurado el export no existe")
}

func TestInvoices_ConjuntoVacioNoNil(t *testing.T) {
	uc := reporting.NewUseCase(&fetcherFijo{}, nil)
	resp := uc.Invoices(context.Background(), dto.ReportQuery{})
	assert.NotNil(t, resp.Invoices)
	assert.Empty(t, resp.Invoices)
	assert.True(t, resp.Totals.TotalAmount.IsZero())
}
