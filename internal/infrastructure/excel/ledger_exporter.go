// Package excel serializa el libro de clientes a XLSX con excelize.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Gemas-api/internal/application/reporting"
	"github.com/jhoicas/Gemas-api/internal/domain/entity"
)

const sheetName = "Ledger"

var headers = []string{"Fecha", "Ref No", "Contraparte", "Descripción", "Débito", "Crédito", "Saldo"}

// LedgerExporter implementa reporting.LedgerExporter sobre excelize.
type LedgerExporter struct{}

var _ reporting.LedgerExporter = (*LedgerExporter)(nil)

// NewLedgerExporter construye el exportador.
func NewLedgerExporter() *LedgerExporter { return &LedgerExporter{} }

// ExportLedger escribe una hoja con cabecera en negrita y una fila por línea
// del libro; los montos van como números para que Excel los sume.
func (e *LedgerExporter) ExportLedger(rows []entity.LedgerRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo cabecera: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("excel: cabecera %s: %w", h, err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, boldStyle); err != nil {
		return nil, fmt.Errorf("excel: aplicar estilo: %w", err)
	}

	for i, row := range rows {
		debit, _ := row.Debit.Float64()
		credit, _ := row.Credit.Float64()
		balance, _ := row.Balance.Float64()
		values := []any{row.Date, row.RefNo, row.Party, row.Description, debit, credit, balance}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", i+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
