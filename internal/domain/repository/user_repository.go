package repository

import "github.com/jportela/tienda-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los emails llegan ya normalizados a minúsculas desde los casos de uso.
type UserRepository interface {
	// Create persiste el usuario. Retorna domain.ErrEmailAlreadyExists si el
	// email ya está registrado (violación del índice único).
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// GetByResetToken busca por token de recuperación. La expiración la valida
	// el caso de uso.
	GetByResetToken(token string) (*entity.User, error)
}
