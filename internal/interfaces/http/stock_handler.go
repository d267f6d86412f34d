package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jportela/tienda-api/internal/application/dto"
	"github.com/jportela/tienda-api/internal/application/stock"
	"github.com/jportela/tienda-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// StockHandler maneja el ajuste de stock y el libro de movimientos.
// Todas las rutas son solo de administradores.
type StockHandler struct {
	uc *stock.LedgerUseCase
}

// NewStockHandler construye el handler de stock.
func NewStockHandler(uc *stock.LedgerUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Adjust aplica un delta al stock del producto y registra el movimiento.
// PATCH /api/products/:id/stock
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser un número"})
	}
	if in.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity es requerido y debe ser un número"})
	}
	newStock, err := h.uc.Adjust(c.Context(), c.Params("id"), GetUserID(c), *in.Quantity, in.Description)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "el stock no puede quedar negativo"})
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
		}
		log.Error().Err(err).Msg("ajustar stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al ajustar el stock"})
	}
	return c.JSON(dto.AdjustStockResponse{Message: "Stock actualizado correctamente.", Stock: newStock})
}

// ListMovements devuelve el libro de movimientos completo, más reciente primero.
// GET /api/stock-movements
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	items, err := h.uc.ListMovements()
	if err != nil {
		log.Error().Err(err).Msg("listar movimientos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al obtener los movimientos"})
	}
	return c.JSON(items)
}

// UpdateMovement corrige cantidad y/o descripción de un movimiento.
// PATCH /api/stock-movements/:id
func (h *StockHandler) UpdateMovement(c *fiber.Ctx) error {
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateMovement(c.Params("id"), in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		log.Error().Err(err).Msg("actualizar movimiento")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al actualizar el movimiento"})
	}
	return c.JSON(dto.MessageResponse{Message: "Movimiento actualizado correctamente."})
}

// DeleteMovement borra un movimiento del libro sin revertir el stock.
// DELETE /api/stock-movements/:id
func (h *StockHandler) DeleteMovement(c *fiber.Ctx) error {
	if err := h.uc.DeleteMovement(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		log.Error().Err(err).Msg("eliminar movimiento")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al eliminar el movimiento"})
	}
	return c.JSON(dto.MessageResponse{Message: "Movimiento eliminado correctamente."})
}
