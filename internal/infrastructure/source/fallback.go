package source

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/jhoicas/Gemas-api/internal/domain/entity"
	"github.com/jhoicas/Gemas-api/pkg/logger"
)

// Orchestrator intenta las fuentes en orden estricto y se queda con la
// primera que responda. Política de mejor esfuerzo, no de reintentos: cada
// fuente se intenta exactamente una vez por invocación; el fallo de una se
// loguea como warning y se pasa a la siguiente; si todas fallan el resultado
// es vacío, nunca un error hacia el caller (los reportes degradan a
// "sin datos" en vez de caerse).
type Orchestrator struct {
	sources []InvoiceSource
	log     *logger.Logger

	// Cada fetch lleva un consecutivo monotónico; publish descarta respuestas
	// viejas para que una lenta no pise el snapshot de una más nueva.
	seq      atomic.Uint64
	mu       sync.RWMutex
	snapSeq  uint64
	snapshot []entity.Invoice
}

// NewOrchestrator construye el orquestador con las fuentes en orden de
// preferencia (primaria primero).
func NewOrchestrator(log *logger.Logger, sources ...InvoiceSource) *Orchestrator {
	return &Orchestrator{sources: sources, log: log}
}

// FetchInvoices resuelve el conjunto de facturas contra la primera fuente
// disponible. Siempre retorna slice no-nil.
func (o *Orchestrator) FetchInvoices(ctx context.Context) []entity.Invoice {
	seq := o.seq.Add(1)
	invoices := o.fetch(ctx)
	o.publish(seq, invoices)
	return invoices
}

func (o *Orchestrator) fetch(ctx context.Context) []entity.Invoice {
	for _, src := range o.sources {
		invoices, err := src.Fetch(ctx)
		if err != nil {
			o.log.Warn().Err(err).Str("source", src.Name()).
				Msg("fuente de facturas no disponible, probando la siguiente")
			continue
		}
		if invoices == nil {
			invoices = []entity.Invoice{}
		}
		return invoices
	}
	o.log.Warn().Int("sources", len(o.sources)).
		Msg("todas las fuentes de facturas fallaron, resultado vacío")
	return []entity.Invoice{}
}

// publish actualiza el snapshot solo si seq es más nuevo que el publicado.
func (o *Orchestrator) publish(seq uint64, invoices []entity.Invoice) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if seq <= o.snapSeq {
		return // respuesta vieja: un fetch posterior ya publicó
	}
	o.snapSeq = seq
	o.snapshot = invoices
}

// Snapshot devuelve el último conjunto publicado (puede ser vacío).
func (o *Orchestrator) Snapshot() []entity.Invoice {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.snapshot == nil {
		return []entity.Invoice{}
	}
	out := make([]entity.Invoice, len(o.snapshot))
	copy(out, o.snapshot)
	return out
}
