package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jportela/tienda-api/internal/application/contact"
	"github.com/jportela/tienda-api/internal/application/dto"
	"github.com/jportela/tienda-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// ContactHandler maneja el formulario público de contacto.
type ContactHandler struct {
	uc *contact.ContactUseCase
}

// NewContactHandler construye el handler de contacto.
func NewContactHandler(uc *contact.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Send reenvía el mensaje de contacto por correo.
// POST /api/contact
func (h *ContactHandler) Send(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Send(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email y message son requeridos"})
		}
		log.Error().Err(err).Msg("enviar mensaje de contacto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al enviar el mensaje"})
	}
	return c.JSON(dto.MessageResponse{Message: "Mensaje enviado correctamente."})
}
