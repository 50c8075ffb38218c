package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gemas-api/internal/application/billing"
	"github.com/jhoicas/Gemas-api/internal/application/catalog"
	"github.com/jhoicas/Gemas-api/internal/application/reporting"
	"github.com/jhoicas/Gemas-api/internal/infrastructure/excel"
	"github.com/jhoicas/Gemas-api/internal/infrastructure/memory"
	"github.com/jhoicas/Gemas-api/internal/infrastructure/source"
	apphttp "github.com/jhoicas/Gemas-api/internal/interfaces/http"
	"github.com/jhoicas/Gemas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: aplicación Fiber completa cableada en modo memoria,
// igual que main cuando no hay DATABASE_URL.
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp() *fiber.App {
	store := memory.NewStore()
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	orchestrator := source.NewOrchestrator(log, store)
	createUC := billing.NewCreateInvoiceUseCase(nil, store, nil)
	reportsUC := reporting.NewUseCase(orchestrator, excel.NewLedgerExporter())
	listsUC := catalog.NewListUseCase(store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CreateInvoice: createUC,
		Reports:       reportsUC,
		Lists:         listsUC,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

const facturaVenta = `{
	"party": "Acme Gems",
	"transactionType": "Sales",
	"date": "2024-03-04",
	"items": [{"lotName": "L-1", "pcs": 1, "cts": 2, "price": 50}]
}`

const facturaPago = `{
	"party": "Acme Gems",
	"transactionType": "Payment",
	"date": "2024-03-10",
	"items": [{"lotName": "L-2", "pcs": 1, "cts": 1, "price": 40}]
}`

// ──────────────────────────────────────────────────────────────────────────────
// Facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestPOSTInvoices_Creada(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/invoices", facturaVenta)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	invoice, ok := body["invoice"].(map[string]any)
	require.True(t, ok, "la respuesta envuelve la factura bajo invoice")
	assert.Equal(t, "INV-2024-03-04-0001", invoice["invoiceNumber"])
	assert.Equal(t, "2024-03-04", invoice["date"])
}

func TestPOSTInvoices_CamposFaltantes400(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/invoices", `{"party": "Acme"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "VALIDATION")
}

func TestPOSTInvoices_CuerpoInvalido400(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/invoices", `{esto no es json`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGETInvoice_PorID(t *testing.T) {
	app := buildTestApp()
	created := decode(t, doJSON(t, app, http.MethodPost, "/api/invoices", facturaVenta))
	id := created["invoice"].(map[string]any)["id"].(string)

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/"+id, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, id, body["id"])
}

func TestGETInvoice_NoExiste404(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/api/invoices/fantasma", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGETInvoices_ListadoConTotales(t *testing.T) {
	app := buildTestApp()
	doJSON(t, app, http.MethodPost, "/api/invoices", facturaVenta).Body.Close()
	doJSON(t, app, http.MethodPost, "/api/invoices", facturaPago).Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/api/invoices?party=acme", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	invoices := body["invoices"].([]any)
	assert.Len(t, invoices, 2)
	totals := body["totals"].(map[string]any)
	assert.Equal(t, "140", totals["totalAmount"], "100 de venta + 40 de pago")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestGETPartywiseStatement_SinParty400(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/api/partywise-statement", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "VALIDATION")
}

func TestGETPartywiseStatement_SaldoCorrido(t *testing.T) {
	app := buildTestApp()
	doJSON(t, app, http.MethodPost, "/api/invoices", facturaVenta).Body.Close()
	doJSON(t, app, http.MethodPost, "/api/invoices", facturaPago).Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/api/partywise-statement?party=Acme", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	statement := body["statement"].([]any)
	require.Len(t, statement, 2)
	ultimo := statement[1].(map[string]any)
	assert.Equal(t, "60", ultimo["balance"], "venta 100 − pago 40")
}

func TestGETCashFlow_SaldoFinal(t *testing.T) {
	app := buildTestApp()
	doJSON(t, app, http.MethodPost, "/api/invoices", facturaVenta).Body.Close()
	doJSON(t, app, http.MethodPost, "/api/invoices", facturaPago).Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/api/cash-flow", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "140", body["balance"])
}

func TestGETSummary(t *testing.T) {
	app := buildTestApp()
	doJSON(t, app, http.MethodPost, "/api/invoices", facturaVenta).Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/api/summary", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, float64(1), body["invoiceCount"])
}

func TestGETParties(t *testing.T) {
	app := buildTestApp()
	doJSON(t, app, http.MethodPost, "/api/invoices", facturaVenta).Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/api/parties", "")
	body := decode(t, resp)
	parties := body["parties"].([]any)
	require.Len(t, parties, 1)
	assert.Equal(t, "Acme Gems", parties[0])
}

func TestGETLedgerExport_XLSX(t *testing.T) {
	app := buildTestApp()
	doJSON(t, app, http.MethodPost, "/api/invoices", facturaVenta).Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/api/reports/ledger/export", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	data, _ := io.ReadAll(resp.Body)
	assert.NotEmpty(t, data)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listas de referencia
// ──────────────────────────────────────────────────────────────────────────────

func TestLists_CicloCompleto(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/lists/shapes", `{"name": "Oval"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/lists/shapes", `{"name": "Oval"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "valor duplicado")
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/lists/shapes", "")
	body := decode(t, resp)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Oval", items[0])

	resp = doJSON(t, app, http.MethodDelete, "/api/lists/shapes/Oval", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/lists/shapes/Oval", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestLists_Desconocida404(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/api/lists/colores", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "UNKNOWN_LIST")
}
