package source

import (
	"context"

	"github.com/jhoicas/Gemas-api/internal/domain/entity"
	"github.com/jhoicas/Gemas-api/internal/domain/repository"
)

// RepositorySource adapta un InvoiceRepository (el Postgres de Supabase) como
// fuente secundaria del orquestador.
type RepositorySource struct {
	name string
	repo repository.InvoiceRepository
}

var _ InvoiceSource = (*RepositorySource)(nil)

// NewRepositorySource construye el adaptador.
func NewRepositorySource(name string, repo repository.InvoiceRepository) *RepositorySource {
	return &RepositorySource{name: name, repo: repo}
}

// Name identifica la fuente en los logs.
func (s *RepositorySource) Name() string { return s.name }

// Fetch lista todas las facturas del repositorio.
func (s *RepositorySource) Fetch(_ context.Context) ([]entity.Invoice, error) {
	return s.repo.List()
}
