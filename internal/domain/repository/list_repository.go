package repository

// ListRepository define el puerto de persistencia para las listas de
// referencia (lot_names, shapes, sizes, descriptions, grades).
// El caller valida el nombre de lista con entity.IsReferenceList.
type ListRepository interface {
	// Items devuelve los valores de la lista ordenados por nombre.
	Items(list string) ([]string, error)
	// Add agrega un valor; domain.ErrDuplicate si ya existe.
	Add(list, name string) error
	// Remove elimina un valor; domain.ErrNotFound si no existe.
	Remove(list, name string) error
}
