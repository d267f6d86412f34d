package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User representa un usuario del sistema.
// Email se guarda siempre en minúsculas; la unicidad es case-insensitive.
type User struct {
	ID                   string
	Name                 string
	Email                string
	PasswordHash         string // bcrypt hash, nunca plano en dominio después de persistir
	Role                 string // admin, client
	ResetPasswordToken   string // vacío si no hay recuperación en curso
	ResetPasswordExpires *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
