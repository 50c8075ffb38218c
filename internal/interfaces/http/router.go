package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gemas-api/internal/application/billing"
	"github.com/jhoicas/Gemas-api/internal/application/catalog"
	"github.com/jhoicas/Gemas-api/internal/application/reporting"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateInvoice *billing.CreateInvoiceUseCase
	InvoicePDF    *billing.PDFUseCase
	Reports       *reporting.UseCase
	Lists         *catalog.ListUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Facturas
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.InvoicePDF)
	reportHandler := NewReportHandler(deps.Reports)
	invoices := api.Group("/invoices")
	invoices.Get("/", reportHandler.Invoices) // listado filtrado (vista derivada)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.GetPDF)

	// Reportes derivados
	api.Get("/cash-flow", reportHandler.CashFlow)
	api.Get("/partywise-statement", reportHandler.PartywiseStatement)
	api.Get("/client-ledger", reportHandler.ClientLedger)
	api.Get("/summary", reportHandler.Summary)
	api.Get("/parties", reportHandler.Parties)
	api.Get("/reports/ledger/export", reportHandler.ExportLedger)

	// Listas de referencia
	listHandler := NewListHandler(deps.Lists)
	lists := api.Group("/lists")
	lists.Get("/:list", listHandler.Get)
	lists.Post("/:list", listHandler.Add)
	lists.Delete("/:list/:name", listHandler.Remove)
}
