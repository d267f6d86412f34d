package mail

import (
	"context"
	"fmt"

	"github.com/jportela/tienda-api/internal/application/auth"
	"github.com/jportela/tienda-api/internal/application/contact"
	"github.com/jportela/tienda-api/pkg/config"
	"gopkg.in/gomail.v2"
)

var _ auth.Mailer = (*SMTPSender)(nil)
var _ contact.Mailer = (*SMTPSender)(nil)

// SMTPSender envía correos salientes vía SMTP (gomail). Implementa los puertos
// de correo de auth (recuperación de contraseña) y contacto.
type SMTPSender struct {
	cfg config.SMTPConfig
}

// NewSMTPSender construye el sender con la configuración SMTP.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// SendPasswordReset envía el enlace de restablecimiento de contraseña.
func (s *SMTPSender) SendPasswordReset(_ context.Context, to, resetURL string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Recupera tu contraseña")
	m.SetBody("text/plain", fmt.Sprintf(
		"Has solicitado recuperar tu contraseña.\n"+
			"Haz clic en el siguiente enlace (o pégalo en tu navegador) para restablecerla:\n%s\n\n"+
			"Si no solicitaste este cambio, ignora este correo.", resetURL))
	return s.send(m)
}

// SendContactMessage reenvía un mensaje del formulario de contacto al correo configurado.
func (s *SMTPSender) SendContactMessage(_ context.Context, name, email, phone, message string) error {
	if s.cfg.ContactEmail == "" {
		return fmt.Errorf("mail: CONTACT_EMAIL no configurado")
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("Reply-To", email)
	m.SetHeader("To", s.cfg.ContactEmail)
	m.SetHeader("Subject", fmt.Sprintf("Nuevo mensaje de contacto de %s", name))
	m.SetBody("text/plain", fmt.Sprintf(
		"Tienes un nuevo mensaje de contacto:\n\nNombre: %s\nEmail: %s\nTeléfono: %s\n\nMensaje:\n%s",
		name, email, phone, message))
	return s.send(m)
}

func (s *SMTPSender) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo: %w", err)
	}
	return nil
}
