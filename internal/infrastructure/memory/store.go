// Package memory implementa el store en memoria: repositorio primario cuando
// no hay base de datos configurada, cache espejo y fuente terciaria del
// orquestador de fallback.
//
// El estado es explícito en el struct (nada de singletons de proceso); el
// mutex existe porque los handlers de Fiber atienden en paralelo.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Gemas-api/internal/domain"
	"github.com/jhoicas/Gemas-api/internal/domain/entity"
	"github.com/jhoicas/Gemas-api/internal/domain/repository"
)

var (
	_ repository.InvoiceRepository = (*Store)(nil)
	_ repository.ListRepository    = (*Store)(nil)
)

// Store guarda facturas, contrapartes y listas de referencia en memoria.
type Store struct {
	mu       sync.RWMutex
	invoices []entity.Invoice
	parties  map[string]struct{}
	lists    map[string]map[string]struct{}
}

// NewStore construye un store vacío con las cinco listas de referencia.
func NewStore() *Store {
	lists := make(map[string]map[string]struct{}, len(entity.ReferenceLists))
	for _, l := range entity.ReferenceLists {
		lists[l] = map[string]struct{}{}
	}
	return &Store{
		invoices: []entity.Invoice{},
		parties:  map[string]struct{}{},
		lists:    lists,
	}
}

// ── InvoiceRepository ─────────────────────────────────────────────────────────

// Create agrega la factura al final (orden de inserción preservado).
func (s *Store) Create(invoice *entity.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.invoices {
		if inv.ID == invoice.ID {
			return domain.ErrDuplicate
		}
	}
	s.invoices = append(s.invoices, cloneInvoice(*invoice))
	if invoice.Party != "" {
		s.parties[invoice.Party] = struct{}{}
	}
	return nil
}

// GetByID busca una factura por ID.
func (s *Store) GetByID(id string) (*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invoices {
		if inv.ID == id {
			c := cloneInvoice(inv)
			return &c, nil
		}
	}
	return nil, nil
}

// List devuelve una copia de todas las facturas (snapshot por valor; cada
// render de reporte es un cómputo fresco sobre su propia copia).
func (s *Store) List() ([]entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		out = append(out, cloneInvoice(inv))
	}
	return out, nil
}

// Count devuelve el número de facturas almacenadas.
func (s *Store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.invoices), nil
}

// Parties devuelve las contrapartes distintas, ordenadas.
func (s *Store) Parties() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.parties))
	for p := range s.parties {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

// ── ListRepository ────────────────────────────────────────────────────────────

// Items devuelve los valores de una lista de referencia, ordenados.
func (s *Store) Items(list string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values, ok := s.lists[list]
	if !ok {
		return nil, domain.ErrUnknownList
	}
	out := make([]string, 0, len(values))
	for v := range values {
		out = append(out, v)
	}
	sort.Strings(out)
	return out, nil
}

// Add agrega un valor a una lista de referencia.
func (s *Store) Add(list, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, ok := s.lists[list]
	if !ok {
		return domain.ErrUnknownList
	}
	if _, exists := values[name]; exists {
		return domain.ErrDuplicate
	}
	values[name] = struct{}{}
	return nil
}

// Remove elimina un valor de una lista de referencia.
func (s *Store) Remove(list, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, ok := s.lists[list]
	if !ok {
		return domain.ErrUnknownList
	}
	if _, exists := values[name]; !exists {
		return domain.ErrNotFound
	}
	delete(values, name)
	return nil
}

// ── Fuente de fallback (terciaria) ────────────────────────────────────────────

// Name identifica al store como fuente del orquestador.
func (s *Store) Name() string { return "memory-cache" }

// Fetch entrega el snapshot actual; nunca falla (última línea de defensa).
func (s *Store) Fetch(_ context.Context) ([]entity.Invoice, error) {
	return s.List()
}

func cloneInvoice(inv entity.Invoice) entity.Invoice {
	rows := make([]entity.LineItem, len(inv.Rows))
	copy(rows, inv.Rows)
	inv.Rows = rows
	return inv
}
