package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gemas-api/internal/application/dto"
	"github.com/jhoicas/Gemas-api/internal/application/reporting"
	"github.com/jhoicas/Gemas-api/internal/domain"
)

// ReportHandler maneja las vistas derivadas (reportes).
// Las vistas nunca fallan por fuentes caídas: degradan a "sin datos".
type ReportHandler struct {
	uc *reporting.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func parseQuery(c *fiber.Ctx) (dto.ReportQuery, error) {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return q, err
	}
	return q, nil
}

// Invoices devuelve el reporte de facturas filtrado.
// GET /api/invoices
func (h *ReportHandler) Invoices(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	return c.JSON(h.uc.Invoices(c.Context(), q))
}

// CashFlow devuelve el flujo de caja.
// GET /api/cash-flow
func (h *ReportHandler) CashFlow(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	return c.JSON(h.uc.CashFlow(c.Context(), q))
}

// PartywiseStatement devuelve el extracto de una contraparte.
// GET /api/partywise-statement?party=X
func (h *ReportHandler) PartywiseStatement(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	statement, err := h.uc.PartywiseStatement(c.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el query param party es obligatorio"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(statement)
}

// ClientLedger devuelve el libro de clientes.
// GET /api/client-ledger
func (h *ReportHandler) ClientLedger(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	return c.JSON(h.uc.ClientLedger(c.Context(), q))
}

// Summary devuelve el resumen global.
// GET /api/summary
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary(c.Context()))
}

// Parties devuelve las contrapartes conocidas.
// GET /api/parties
func (h *ReportHandler) Parties(c *fiber.Ctx) error {
	return c.JSON(h.uc.Parties(c.Context()))
}

// ExportLedger descarga el libro de clientes como XLSX.
// GET /api/reports/ledger/export
func (h *ReportHandler) ExportLedger(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	data, err := h.uc.ExportClientLedger(c.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "export no habilitado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="client-ledger.xlsx"`)
	return c.Send(data)
}
