package repository

import "github.com/jportela/tienda-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Delete elimina el producto (hard delete). Retorna domain.ErrNotFound si no existe.
	// No cascadea sobre movimientos ni líneas de carrito.
	Delete(id string) error
	// AdjustStock aplica el delta como un UPDATE condicional atómico:
	// solo modifica si el stock resultante es >= 0. Devuelve el stock nuevo.
	// Retorna domain.ErrInsufficientStock si la condición falla y
	// domain.ErrNotFound si el producto no existe.
	AdjustStock(id string, delta int) (int, error)
}
