package repository

import "github.com/jhoicas/Gemas-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para facturas y sus filas.
type InvoiceRepository interface {
	// Create persiste cabecera y filas como unidad.
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// List devuelve todas las facturas con sus filas en orden de inserción.
	List() ([]entity.Invoice, error)
	// Count devuelve el total de facturas (consecutivo del número de factura).
	Count() (int, error)
	// Parties devuelve las contrapartes distintas conocidas.
	Parties() ([]string, error)
}
