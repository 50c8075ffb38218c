// Package source implementa las fuentes de datos de facturas y el
// orquestador de fallback: REST remoto (Supabase) → Postgres directo →
// cache en memoria, intentadas en orden estricto, una sola vez cada una.
package source

import (
	"context"

	"github.com/jhoicas/Gemas-api/internal/domain/entity"
)

// InvoiceSource es un origen de facturas ya normalizadas a la forma canónica.
// Cada fuente normaliza en su borde: la REST decodifica registros laxos y los
// pasa por record.Normalize; Postgres y memoria ya entregan entidades.
type InvoiceSource interface {
	// Name identifica la fuente en los logs de fallback.
	Name() string
	// Fetch trae el conjunto completo de facturas o falla.
	Fetch(ctx context.Context) ([]entity.Invoice, error)
}
