package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gemas-api/internal/application/catalog"
	"github.com/jhoicas/Gemas-api/internal/application/dto"
	"github.com/jhoicas/Gemas-api/internal/domain"
)

// ListHandler maneja las listas de referencia (chips del formulario).
type ListHandler struct {
	uc *catalog.ListUseCase
}

// NewListHandler construye el handler.
func NewListHandler(uc *catalog.ListUseCase) *ListHandler {
	return &ListHandler{uc: uc}
}

// Get devuelve el contenido de una lista.
// GET /api/lists/:list
func (h *ListHandler) Get(c *fiber.Ctx) error {
	list, err := h.uc.Get(c.Context(), c.Params("list"))
	if err != nil {
		return listError(c, err)
	}
	return c.JSON(list)
}

// Add agrega un valor a una lista.
// POST /api/lists/:list
func (h *ListHandler) Add(c *fiber.Ctx) error {
	var in dto.AddListItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Add(c.Context(), c.Params("list"), in); err != nil {
		return listError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Remove elimina un valor de una lista.
// DELETE /api/lists/:list/:name
func (h *ListHandler) Remove(c *fiber.Ctx) error {
	name, err := decodeParam(c, "name")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre inválido"})
	}
	if err := h.uc.Remove(c.Context(), c.Params("list"), name); err != nil {
		return listError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// decodeParam desescapa un path param (los nombres de lista pueden traer
// espacios codificados).
func decodeParam(c *fiber.Ctx, key string) (string, error) {
	return url.PathUnescape(c.Params(key))
}

func listError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownList):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_LIST", Message: "lista de referencia desconocida"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "valor no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el valor ya existe"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es obligatorio"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
