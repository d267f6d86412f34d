package contact

import (
	"context"

	"github.com/jportela/tienda-api/internal/application/dto"
	"github.com/jportela/tienda-api/internal/domain"
)

// Mailer puerto de correo que necesita contacto.
type Mailer interface {
	SendContactMessage(ctx context.Context, name, email, phone, message string) error
}

// ContactUseCase reenvía los mensajes del formulario de contacto por correo.
// No persiste nada.
type ContactUseCase struct {
	mailer Mailer
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(mailer Mailer) *ContactUseCase {
	return &ContactUseCase{mailer: mailer}
}

// Send valida los campos mínimos y envía el mensaje al correo configurado.
func (uc *ContactUseCase) Send(ctx context.Context, in dto.ContactRequest) error {
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return domain.ErrInvalidInput
	}
	return uc.mailer.SendContactMessage(ctx, in.Name, in.Email, in.Phone, in.Message)
}
