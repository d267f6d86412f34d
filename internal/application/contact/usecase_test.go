package contact_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jportela/tienda-api/internal/application/contact"
	"github.com/jportela/tienda-api/internal/application/dto"
	"github.com/jportela/tienda-api/internal/domain"
)

type fakeMailer struct {
	sent     int
	lastName string
}

func (m *fakeMailer) SendContactMessage(_ context.Context, name, email, phone, message string) error {
	m.sent++
	m.lastName = name
	return nil
}

func TestSend_ReenviaPorCorreo(t *testing.T) {
	mailer := &fakeMailer{}
	uc := contact.NewContactUseCase(mailer)

	err := uc.Send(context.Background(), dto.ContactRequest{
		Name:    "Ana",
		Email:   "ana@tienda.test",
		Message: "¿Tienen envíos a provincia?",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "Ana", mailer.lastName)
}

// El teléfono es opcional; nombre, email y mensaje no.
func TestSend_CamposRequeridos(t *testing.T) {
	mailer := &fakeMailer{}
	uc := contact.NewContactUseCase(mailer)

	err := uc.Send(context.Background(), dto.ContactRequest{Name: "Ana", Email: "ana@tienda.test"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, mailer.sent)
}
