package entity

// Listas de referencia que alimentan las celdas editables de la factura.
// Cada una es una tabla plana de nombres en el store (esquema Supabase legacy).
const (
	ListLotNames     = "lot_names"
	ListShapes       = "shapes"
	ListSizes        = "sizes"
	ListDescriptions = "descriptions"
	ListGrades       = "grades"
)

// ReferenceLists enumera las listas válidas en orden de presentación.
var ReferenceLists = []string{
	ListLotNames, ListShapes, ListSizes, ListDescriptions, ListGrades,
}

// IsReferenceList indica si name es una de las listas conocidas.
func IsReferenceList(name string) bool {
	for _, l := range ReferenceLists {
		if l == name {
			return true
		}
	}
	return false
}
