package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gemas-api/internal/domain"
	"github.com/jhoicas/Gemas-api/internal/domain/entity"
	"github.com/jhoicas/Gemas-api/internal/domain/repository"
)

var _ repository.ListRepository = (*ListRepo)(nil)

// ListRepo implementación de ListRepository sobre las cinco tablas planas
// del esquema Supabase legacy (lot_names, shapes, sizes, descriptions,
// grades; una columna name cada una).
type ListRepo struct {
	q Querier
}

// NewListRepository construye el adaptador. Pasar pool o tx (Querier).
func NewListRepository(q Querier) *ListRepo {
	return &ListRepo{q: q}
}

// Items devuelve los valores de la lista ordenados por nombre.
func (r *ListRepo) Items(list string) ([]string, error) {
	if !entity.IsReferenceList(list) {
		return nil, domain.ErrUnknownList
	}
	// El nombre de tabla viene del catálogo cerrado de entity.ReferenceLists,
	// nunca del request; por eso puede interpolarse.
	rows, err := r.q.Query(context.Background(),
		fmt.Sprintf(`SELECT name FROM %s ORDER BY name`, list))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", list, err)
	}
	defer rows.Close()

	items := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", list, err)
		}
		items = append(items, name)
	}
	return items, rows.Err()
}

// Add agrega un valor a la lista.
func (r *ListRepo) Add(list, name string) error {
	if !entity.IsReferenceList(list) {
		return domain.ErrUnknownList
	}
	_, err := r.q.Exec(context.Background(),
		fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1)`, list), name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert into %s: %w", list, err)
	}
	return nil
}

// Remove elimina un valor de la lista.
func (r *ListRepo) Remove(list, name string) error {
	if !entity.IsReferenceList(list) {
		return domain.ErrUnknownList
	}
	tag, err := r.q.Exec(context.Background(),
		fmt.Sprintf(`DELETE FROM %s WHERE name = $1`, list), name)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", list, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
