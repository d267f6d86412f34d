package repository

import "github.com/jportela/tienda-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para el libro de movimientos.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// ListDetailed devuelve los movimientos con producto (nombre, precio) y
	// usuario (nombre, email) resueltos. Referencias colgantes degradan a nulos.
	ListDetailed() ([]*entity.StockMovementDetail, error)
	// Update sobreescribe cantidad y descripción. No toca el stock del producto
	// ni recalcula el tipo.
	Update(movement *entity.StockMovement) error
	// Delete elimina solo el registro de auditoría; no revierte su efecto sobre
	// el stock. Retorna domain.ErrNotFound si no existe.
	Delete(id string) error
}
