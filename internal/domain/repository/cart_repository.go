package repository

import "github.com/jportela/tienda-api/internal/domain/entity"

// CartRepository define el puerto de persistencia para Cart.
// Existe a lo sumo un carrito por usuario; las líneas son únicas por producto.
type CartRepository interface {
	// GetByUserID devuelve el carrito del usuario con los datos de producto
	// resueltos, o nil si todavía no tiene carrito. Las líneas cuyo producto
	// fue borrado se omiten.
	GetByUserID(userID string) (*entity.Cart, error)
	// GetOrCreate devuelve el carrito del usuario, creándolo vacío si no existe.
	GetOrCreate(userID string) (*entity.Cart, error)
	// UpsertItem agrega la línea o incrementa su cantidad si ya existe
	// (merge-on-add, resuelto a nivel de store con ON CONFLICT).
	UpsertItem(cartID, productID string, quantity int) error
	// SetItemQuantity reemplaza la cantidad de una línea existente.
	// Retorna domain.ErrItemNotInCart si el producto no está en el carrito.
	SetItemQuantity(cartID, productID string, quantity int) error
	// RemoveItem elimina la línea si existe. Es idempotente: quitar un
	// producto ausente no es un error.
	RemoveItem(cartID, productID string) error
}
