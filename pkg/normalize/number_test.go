package normalize_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gemas-api/pkg/normalize"
)

// ──────────────────────────────────────────────────────────────────────────────
// ToNumber es función total: cualquier entrada produce un float64 finito.
// Los reportes agregan miles de celdas editadas a mano; un solo NaN
// envenenaría todos los totales aguas abajo.
// ──────────────────────────────────────────────────────────────────────────────

func TestToNumber_TiposNumericos(t *testing.T) {
	assert.Equal(t, 3.5, normalize.ToNumber(3.5))
	assert.Equal(t, 2.5, normalize.ToNumber(float32(2.5)))
	assert.Equal(t, 7.0, normalize.ToNumber(7))
	assert.Equal(t, 7.0, normalize.ToNumber(int32(7)))
	assert.Equal(t, 7.0, normalize.ToNumber(int64(7)))
}

func TestToNumber_Strings(t *testing.T) {
	assert.Equal(t, 12.25, normalize.ToNumber("12.25"), "string numérico debe parsearse")
	assert.Equal(t, 12.25, normalize.ToNumber("  12.25  "), "espacios alrededor se ignoran")
	assert.Equal(t, 0.0, normalize.ToNumber("abc"), "string no numérico colapsa a 0")
	assert.Equal(t, 0.0, normalize.ToNumber(""), "string vacío colapsa a 0")
}

func TestToNumber_JSONNumber(t *testing.T) {
	assert.Equal(t, 99.9, normalize.ToNumber(json.Number("99.9")))
	assert.Equal(t, 0.0, normalize.ToNumber(json.Number("no-num")))
}

func TestToNumber_NilYBool(t *testing.T) {
	assert.Equal(t, 0.0, normalize.ToNumber(nil), "nil colapsa a 0")
	assert.Equal(t, 1.0, normalize.ToNumber(true))
	assert.Equal(t, 0.0, normalize.ToNumber(false))
}

func TestToNumber_NoFinitosColapsanACero(t *testing.T) {
	assert.Equal(t, 0.0, normalize.ToNumber(math.NaN()), "NaN debe colapsar a 0")
	assert.Equal(t, 0.0, normalize.ToNumber(math.Inf(1)), "+Inf debe colapsar a 0")
	assert.Equal(t, 0.0, normalize.ToNumber(math.Inf(-1)), "-Inf debe colapsar a 0")
	assert.Equal(t, 0.0, normalize.ToNumber("Inf"), "Inf en string también colapsa")
}

func TestToNumber_TipoDesconocido(t *testing.T) {
	assert.Equal(t, 0.0, normalize.ToNumber(struct{}{}), "tipo no soportado colapsa a 0")
	assert.Equal(t, 0.0, normalize.ToNumber([]int{1, 2}))
}
