package record

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gemas-api/internal/domain/entity"
	"github.com/jhoicas/Gemas-api/pkg/normalize"
)

// Tabla de aliases: nombre canónico → aliases legacy, en orden de precedencia.
// El default por tipo (string vacío, 0, fecha actual) lo aplica la coerción.
var (
	invoiceAliases = map[string][]string{
		"id":              {"invoiceId", "invoice_id"},
		"invoiceNumber":   {"invoiceNo", "invoice_number"},
		"date":            {"invoiceDate", "invoice_date"},
		"party":           {"partyName", "party_name"},
		"transactionType": {"type", "transaction_type"},
		"source":          {"origin"},
		"sellId":          {"sellID", "sell_id"},
		"remarks":         {"notes"},
		"rows":            {"items"},
	}
	itemAliases = map[string][]string{
		"id":          {"rowId", "row_id"},
		"lotName":     {"lotNo", "lot_no", "lot_name"},
		"description": {"desc"},
		"shape":       nil,
		"size":        nil,
		"grade":       nil,
		"pcs":         {"pieces"},
		"cts":         {"carats", "weight"},
		"price":       {"rate"},
		"amount":      nil,
		"remarks":     {"notes"},
	}
)

const defaultTransactionType = "Sales"

// Normalize mapea un registro laxo a la Invoice canónica del dominio.
//
// Es pura (sin I/O) e idempotente: normalizar una factura ya normalizada
// produce un resultado idéntico. Nunca falla; los campos faltantes o
// malformados se resuelven con defaults por tipo.
func Normalize(raw RawInvoice) entity.Invoice {
	inv := entity.Invoice{
		ID:              text(raw, invoiceAliases, "id"),
		InvoiceNumber:   text(raw, invoiceAliases, "invoiceNumber"),
		Date:            normalize.ToISODate(text(raw, invoiceAliases, "date")),
		Party:           text(raw, invoiceAliases, "party"),
		TransactionType: text(raw, invoiceAliases, "transactionType"),
		Source:          text(raw, invoiceAliases, "source"),
		SellID:          text(raw, invoiceAliases, "sellId"),
		Remarks:         text(raw, invoiceAliases, "remarks"),
	}
	if inv.TransactionType == "" {
		inv.TransactionType = defaultTransactionType
	}

	rows := rawRows(raw)
	inv.Rows = make([]entity.LineItem, 0, len(rows))
	for i, r := range rows {
		inv.Rows = append(inv.Rows, normalizeItem(inv.ID, i, r))
	}
	return inv
}

// NormalizeAll normaliza un lote completo conservando el orden.
func NormalizeAll(raws []RawInvoice) []entity.Invoice {
	invoices := make([]entity.Invoice, 0, len(raws))
	for _, raw := range raws {
		invoices = append(invoices, Normalize(raw))
	}
	return invoices
}

func normalizeItem(invoiceID string, index int, raw RawLineItem) entity.LineItem {
	item := entity.LineItem{
		ID:          text(raw, itemAliases, "id"),
		LotName:     text(raw, itemAliases, "lotName"),
		Description: text(raw, itemAliases, "description"),
		Shape:       text(raw, itemAliases, "shape"),
		Size:        text(raw, itemAliases, "size"),
		Grade:       text(raw, itemAliases, "grade"),
		Pcs:         number(raw, itemAliases, "pcs"),
		Cts:         number(raw, itemAliases, "cts"),
		Price:       number(raw, itemAliases, "price"),
		Remarks:     text(raw, itemAliases, "remarks"),
	}
	// Monto explícito: solo si la fuente lo envió (pre-agregado del servidor);
	// null o ausente se deriva después como Cts × Price.
	if v, ok := pick(raw, names(itemAliases, "amount")...); ok && v != nil {
		item.Amount = decimal.NullDecimal{
			Decimal: decimal.NewFromFloat(normalize.ToNumber(v)),
			Valid:   true,
		}
	}
	if item.ID == "" {
		item.ID = fmt.Sprintf("%s-%d", invoiceID, index)
	}
	return item
}

// rawRows extrae las filas bajo cualquiera de las dos convenciones.
func rawRows(raw RawInvoice) []RawLineItem {
	v, ok := pick(raw, names(invoiceAliases, "rows")...)
	if !ok {
		return nil
	}
	switch rows := v.(type) {
	case []RawLineItem:
		return rows
	case []map[string]any:
		out := make([]RawLineItem, 0, len(rows))
		for _, r := range rows {
			out = append(out, RawLineItem(r))
		}
		return out
	case []any:
		out := make([]RawLineItem, 0, len(rows))
		for _, r := range rows {
			if m, ok := r.(map[string]any); ok {
				out = append(out, RawLineItem(m))
			}
		}
		return out
	default:
		return nil
	}
}

func names(aliases map[string][]string, canonical string) []string {
	return append([]string{canonical}, aliases[canonical]...)
}

func text(m map[string]any, aliases map[string][]string, canonical string) string {
	v, ok := pick(m, names(aliases, canonical)...)
	if !ok {
		return ""
	}
	return asString(v)
}

func number(m map[string]any, aliases map[string][]string, canonical string) decimal.Decimal {
	v, ok := pick(m, names(aliases, canonical)...)
	if !ok {
		return decimal.Zero
	}
	return decimal.NewFromFloat(normalize.ToNumber(v))
}
