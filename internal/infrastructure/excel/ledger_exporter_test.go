package excel_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Gemas-api/internal/domain/entity"
	"github.com/jhoicas/Gemas-api/internal/infrastructure/excel"
)

func TestExportLedger_HojaLegible(t *testing.T) {
	exporter := excel.NewLedgerExporter()

	data, err := exporter.ExportLedger([]entity.LedgerRow{
		{
			Date: "2024-01-10", RefNo: "INV-1", Party: "Acme", Description: "Sales",
			Debit:   decimal.NewFromInt(100),
			Balance: decimal.NewFromInt(100),
		},
		{
			Date: "2024-01-20", RefNo: "INV-2", Party: "Acme", Description: "Payment",
			Credit:  decimal.NewFromInt(40),
			Balance: decimal.NewFromInt(60),
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// Releer el archivo generado y verificar celdas clave
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err, "el export debe ser un XLSX válido")
	defer f.Close()

	cabecera, err := f.GetCellValue("Ledger", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Fecha", cabecera)

	ref, _ := f.GetCellValue("Ledger", "B2")
	assert.Equal(t, "INV-1", ref)

	debito, _ := f.GetCellValue("Ledger", "E2")
	assert.Equal(t, "100", debito, "los montos van como números")

	saldo, _ := f.GetCellValue("Ledger", "G3")
	assert.Equal(t, "60", saldo)
}

func TestExportLedger_SinFilas(t *testing.T) {
	exporter := excel.NewLedgerExporter()
	data, err := exporter.ExportLedger(nil)
	require.NoError(t, err, "libro vacío produce solo la cabecera, no error")
	assert.NotEmpty(t, data)
}
