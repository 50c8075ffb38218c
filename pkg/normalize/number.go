// Package normalize convierte entradas heterogéneas (celdas editables, JSON
// de fuentes externas) a formas canónicas: números finitos y fechas ISO.
//
// Las funciones son totales: nunca retornan error. La entrada basura se
// absorbe en silencio (0 para números, "hoy" para fechas). El caller debe
// tratar 0 como "desconocido", no como "cantidad cero", al auditar datos.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToNumber coerciona cualquier valor a un número finito. Si el valor no es
// numérico (o es NaN/Inf), retorna 0.
func ToNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return finite(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return finite(f)
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
