// Package report implementa el núcleo de agregación del negocio: totales por
// factura, filtro de criterios y construcción de estados de cuenta con saldo
// corrido. Todas las funciones son puras y síncronas sobre sus entradas.
package report

import "strings"

// Palabras clave que clasifican un tipo de transacción como crédito.
// Esta lista es la única autoridad del sistema: vistas HTTP, export XLSX y
// PDF consumen este mismo clasificador (no duplicar).
var creditKeywords = []string{"purchase", "payment", "receipt", "credit", "return"}

// IsCredit clasifica un transactionType libre en {débito, crédito}.
// Match por substring, insensible a mayúsculas: "Purchase Return" → crédito,
// "Sales" → débito.
func IsCredit(transactionType string) bool {
	t := strings.ToLower(transactionType)
	for _, kw := range creditKeywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}
