// Package catalog contiene el caso de uso de las listas de referencia que
// alimentan las celdas de la factura (nombres de lote, formas, tamaños,
// descripciones, calidades).
package catalog

import (
	"context"
	"strings"

	"github.com/jhoicas/Gemas-api/internal/application/dto"
	"github.com/jhoicas/Gemas-api/internal/domain"
	"github.com/jhoicas/Gemas-api/internal/domain/entity"
	"github.com/jhoicas/Gemas-api/internal/domain/repository"
)

// ListUseCase CRUD de las listas de referencia.
type ListUseCase struct {
	repo repository.ListRepository
}

// NewListUseCase construye el caso de uso.
func NewListUseCase(repo repository.ListRepository) *ListUseCase {
	return &ListUseCase{repo: repo}
}

// Get devuelve el contenido de una lista.
func (uc *ListUseCase) Get(_ context.Context, list string) (*dto.ListResponse, error) {
	if !entity.IsReferenceList(list) {
		return nil, domain.ErrUnknownList
	}
	items, err := uc.repo.Items(list)
	if err != nil {
		return nil, err
	}
	return &dto.ListResponse{List: list, Items: items}, nil
}

// Add agrega un valor a una lista. Valores vacíos son error de cliente.
func (uc *ListUseCase) Add(_ context.Context, list string, in dto.AddListItemRequest) error {
	if !entity.IsReferenceList(list) {
		return domain.ErrUnknownList
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Add(list, name)
}

// Remove elimina un valor de una lista.
func (uc *ListUseCase) Remove(_ context.Context, list, name string) error {
	if !entity.IsReferenceList(list) {
		return domain.ErrUnknownList
	}
	if strings.TrimSpace(name) == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Remove(list, name)
}
