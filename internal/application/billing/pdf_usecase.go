package billing

import (
	"context"

	"github.com/jhoicas/Gemas-api/internal/domain"
	"github.com/jhoicas/Gemas-api/internal/domain/report"
	"github.com/jhoicas/Gemas-api/internal/domain/repository"
)

// PDFUseCase genera la representación imprimible de una factura.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(invoiceRepo repository.InvoiceRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, generator: generator}
}

// GetInvoicePDF busca la factura, deriva sus totales y genera el PDF.
func (uc *PDFUseCase) GetInvoicePDF(ctx context.Context, id string) ([]byte, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateInvoicePDF(ctx, inv, report.CalculateTotals(inv.Rows))
}
