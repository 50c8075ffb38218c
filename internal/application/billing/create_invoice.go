package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gemas-api/internal/application/dto"
	"github.com/jhoicas/Gemas-api/internal/domain"
	"github.com/jhoicas/Gemas-api/internal/domain/entity"
	"github.com/jhoicas/Gemas-api/internal/domain/report"
	"github.com/jhoicas/Gemas-api/internal/domain/repository"
	"github.com/jhoicas/Gemas-api/pkg/normalize"
)

const defaultSource = "manual"

// CreateInvoiceUseCase crea facturas: valida, numera, calcula totales del
// lado servidor y persiste cabecera + filas como unidad.
type CreateInvoiceUseCase struct {
	txRunner    InvoiceTxRunner // nil en modo memoria (el store ya es atómico)
	invoiceRepo repository.InvoiceRepository
	mirror      repository.InvoiceRepository // cache espejo para la fuente terciaria; opcional
}

// NewCreateInvoiceUseCase construye el caso de uso. mirror puede ser nil.
func NewCreateInvoiceUseCase(
	txRunner InvoiceTxRunner,
	invoiceRepo repository.InvoiceRepository,
	mirror repository.InvoiceRepository,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		mirror:      mirror,
	}
}

// CreateInvoice valida el request, genera el consecutivo
// INV-{fecha}-{NNNN} y persiste. party, transactionType y date faltantes son
// error de cliente (domain.ErrInvalidInput).
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Party == "" || in.TransactionType == "" || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}

	date := normalize.ToISODate(in.Date)
	count, err := uc.invoiceRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("consecutivo de factura: %w", err)
	}

	source := in.Source
	if source == "" {
		source = defaultSource
	}

	inv := &entity.Invoice{
		ID:              uuid.New().String(),
		InvoiceNumber:   fmt.Sprintf("INV-%s-%04d", date, count+1),
		Date:            date,
		Party:           in.Party,
		TransactionType: in.TransactionType,
		Source:          source,
		SellID:          in.SellID,
		Remarks:         in.Remarks,
		CreatedAt:       time.Now(),
	}
	inv.Rows = buildRows(inv.ID, in.Items)

	if uc.txRunner != nil {
		err = uc.txRunner.RunInvoice(ctx, func(invoices repository.InvoiceRepository) error {
			return invoices.Create(inv)
		})
	} else {
		err = uc.invoiceRepo.Create(inv)
	}
	if err != nil {
		return nil, err
	}

	if uc.mirror != nil {
		// Espejo best-effort: mantiene caliente la fuente terciaria del
		// orquestador; un fallo aquí no invalida la factura ya persistida.
		_ = uc.mirror.Create(inv)
	}

	resp := dto.NewInvoiceResponse(*inv, report.CalculateTotals(inv.Rows))
	return &resp, nil
}

// GetInvoice obtiene una factura con totales derivados.
func (uc *CreateInvoiceUseCase) GetInvoice(_ context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewInvoiceResponse(*inv, report.CalculateTotals(inv.Rows))
	return &resp, nil
}

func buildRows(invoiceID string, items []dto.LineItemRequest) []entity.LineItem {
	rows := make([]entity.LineItem, 0, len(items))
	for i, item := range items {
		row := entity.LineItem{
			ID:          fmt.Sprintf("%s-%d", invoiceID, i),
			LotName:     item.LotName,
			Description: item.Description,
			Shape:       item.Shape,
			Size:        item.Size,
			Grade:       item.Grade,
			Pcs:         item.Pcs,
			Cts:         item.Cts,
			Price:       item.Price,
			Remarks:     item.Remarks,
		}
		if item.Amount != nil {
			row.Amount = decimal.NullDecimal{Decimal: *item.Amount, Valid: true}
		}
		rows = append(rows, row)
	}
	return rows
}
