package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gemas-api/internal/application/billing"
	"github.com/jhoicas/Gemas-api/internal/application/dto"
	"github.com/jhoicas/Gemas-api/internal/domain"
	"github.com/jhoicas/Gemas-api/internal/infrastructure/memory"
)

func validRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		Party:           "Acme Gems",
		TransactionType: "Sales",
		Date:            "2024-03-04",
		Items: []dto.LineItemRequest{
			{
				LotName: "L-1", Shape: "Oval", Grade: "AAA",
				Pcs:   decimal.NewFromInt(2),
				Cts:   decimal.RequireFromString("2.5"),
				Price: decimal.NewFromInt(100),
			},
		},
	}
}

func TestCreateInvoice_NumeracionYTotales(t *testing.T) {
	uc := billing.NewCreateInvoiceUseCase(nil, memory.NewStore(), nil)

	resp, err := uc.CreateInvoice(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "INV-2024-03-04-0001", resp.InvoiceNumber,
		"el consecutivo es INV-{fecha}-{NNNN} empezando en 0001")
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "manual", resp.Source, "sin source explícito se marca manual")
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, resp.ID+"-0", resp.Rows[0].ID)
	assert.True(t, resp.Totals.TotalAmount.Equal(decimal.NewFromInt(250)),
		"TotalAmount = cts × price = 2.5 × 100")
}

func TestCreateInvoice_ConsecutivoIncrementa(t *testing.T) {
	store := memory.NewStore()
	uc := billing.NewCreateInvoiceUseCase(nil, store, nil)

	first, err := uc.CreateInvoice(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := uc.CreateInvoice(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "INV-2024-03-04-0001", first.InvoiceNumber)
	assert.Equal(t, "INV-2024-03-04-0002", second.InvoiceNumber)
}

func TestCreateInvoice_FechaSlashSeNormaliza(t *testing.T) {
	uc := billing.NewCreateInvoiceUseCase(nil, memory.NewStore(), nil)

	req := validRequest()
	req.Date = "3/4/2024"
	resp, err := uc.CreateInvoice(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", resp.Date)
}

func TestCreateInvoice_CamposRequeridos(t *testing.T) {
	uc := billing.NewCreateInvoiceUseCase(nil, memory.NewStore(), nil)

	casos := []func(*dto.CreateInvoiceRequest){
		func(r *dto.CreateInvoiceRequest) { r.Party = "" },
		func(r *dto.CreateInvoiceRequest) { r.TransactionType = "" },
		func(r *dto.CreateInvoiceRequest) { r.Date = "" },
	}
	for _, mutar := range casos {
		req := validRequest()
		mutar(&req)
		_, err := uc.CreateInvoice(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCreateInvoice_MontoExplicitoSeConserva(t *testing.T) {
	uc := billing.NewCreateInvoiceUseCase(nil, memory.NewStore(), nil)

	monto := decimal.NewFromInt(75)
	req := validRequest()
	req.Items[0].Amount = &monto

	resp, err := uc.CreateInvoice(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Totals.TotalAmount.Equal(monto),
		"el amount explícito prevalece sobre cts × price")
}

func TestCreateInvoice_EspejoRecibeLaFactura(t *testing.T) {
	principal := memory.NewStore()
	espejo := memory.NewStore()
	uc := billing.NewCreateInvoiceUseCase(nil, principal, espejo)

	resp, err := uc.CreateInvoice(context.Background(), validRequest())
	require.NoError(t, err)

	copia, err := espejo.GetByID(resp.ID)
	require.NoError(t, err)
	require.NotNil(t, copia, "el espejo mantiene caliente la fuente terciaria")
	assert.Equal(t, resp.InvoiceNumber, copia.InvoiceNumber)
}

func TestGetInvoice_NoExiste(t *testing.T) {
	uc := billing.NewCreateInvoiceUseCase(nil, memory.NewStore(), nil)
	_, err := uc.GetInvoice(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetInvoice_ConTotalesDerivados(t *testing.T) {
	store := memory.NewStore()
	uc := billing.NewCreateInvoiceUseCase(nil, store, nil)

	created, err := uc.CreateInvoice(context.Background(), validRequest())
	require.NoError(t, err)

	got, err := uc.GetInvoice(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.InvoiceNumber, got.InvoiceNumber)
	assert.True(t, got.Totals.TotalAmount.Equal(created.Totals.TotalAmount))
}
