// Package record modela los registros crudos de factura tal como llegan de
// las fuentes externas (endpoint REST, store Postgres legacy, cache local) y
// su normalización a la forma canónica del dominio.
//
// Los registros históricos usan dos convenciones de nombres de campo
// (p. ej. "rows" vs "items", "lotName" vs "lotNo"); la tabla de aliases de
// normalize.go las reconcilia con precedencia: nombre canónico primero,
// aliases legacy después, default por tipo al final.
package record

import (
	"encoding/json"
	"strconv"
)

// RawInvoice es un registro de factura con tipado laxo, decodificado
// directamente del JSON de una fuente.
type RawInvoice map[string]any

// RawLineItem es una fila de factura con tipado laxo.
type RawLineItem map[string]any

// pick devuelve el primer campo presente entre names, en orden.
func pick(m map[string]any, names ...string) (any, bool) {
	for _, n := range names {
		if v, ok := m[n]; ok {
			return v, true
		}
	}
	return nil, false
}

// asString coerciona un valor laxo a string. Los IDs numéricos del store
// legacy llegan como float64 vía encoding/json.
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		return ""
	}
}
