package billing

import (
	"context"

	"github.com/jhoicas/Gemas-api/internal/domain/entity"
	"github.com/jhoicas/Gemas-api/internal/domain/repository"
)

// InvoiceTxRunner ejecuta fn dentro de una transacción con un repositorio de
// facturas atado a ella (cabecera + filas como unidad).
type InvoiceTxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoices repository.InvoiceRepository) error) error
}

// InvoicePDFGenerator genera la representación imprimible de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, totals entity.Totals) ([]byte, error)
}
