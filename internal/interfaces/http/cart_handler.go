package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jportela/tienda-api/internal/application/cart"
	"github.com/jportela/tienda-api/internal/application/dto"
	"github.com/jportela/tienda-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// CartHandler maneja el carrito del usuario autenticado.
type CartHandler struct {
	uc *cart.CartUseCase
}

// NewCartHandler construye el handler del carrito.
func NewCartHandler(uc *cart.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get devuelve el carrito del usuario; vacío si todavía no tiene.
// GET /api/cart
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c))
	if err != nil {
		log.Error().Err(err).Msg("obtener carrito")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al obtener el carrito"})
	}
	return c.JSON(out)
}

// Add agrega un producto al carrito; si ya está, suma la cantidad.
// POST /api/cart
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Add(GetUserID(c), in)
	if err != nil {
		return h.cartError(c, err, "agregar al carrito")
	}
	return c.JSON(out)
}

// SetQuantity reemplaza la cantidad de una línea del carrito.
// PUT /api/cart/:productId
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetQuantity(GetUserID(c), c.Params("productId"), in.Quantity)
	if err != nil {
		return h.cartError(c, err, "actualizar línea del carrito")
	}
	return c.JSON(out)
}

// Remove quita un producto del carrito. Quitar uno ausente no es error.
// DELETE /api/cart/:productId
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	out, err := h.uc.Remove(GetUserID(c), c.Params("productId"))
	if err != nil {
		return h.cartError(c, err, "quitar del carrito")
	}
	return c.JSON(out)
}

func (h *CartHandler) cartError(c *fiber.Ctx, err error, op string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y quantity (mínimo 1) son requeridos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o carrito no encontrado"})
	case errors.Is(err, domain.ErrItemNotInCart):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el producto no está en el carrito"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "no hay stock suficiente del producto"})
	}
	log.Error().Err(err).Msg(op)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al procesar el carrito"})
}
