package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock. El tipo se deriva del signo de la cantidad
// al crear el movimiento y no se recalcula en ediciones posteriores.
const (
	MovementTypeIngreso = "ingreso" // cantidad >= 0
	MovementTypeEgreso  = "egreso"  // cantidad < 0
)

// MovementTypeFor deriva el tipo de movimiento a partir de la cantidad.
func MovementTypeFor(quantity int) string {
	if quantity >= 0 {
		return MovementTypeIngreso
	}
	return MovementTypeEgreso
}

// StockMovement representa una entrada del libro de movimientos de stock:
// quién cambió qué producto, en cuánto y por qué.
// Las referencias a Product y User no son propietarias: borrar un producto
// no elimina sus movimientos.
type StockMovement struct {
	ID          string
	ProductID   string
	Quantity    int    // delta con signo aplicado al stock
	Type        string // ingreso, egreso
	Description string
	UserID      string
	CreatedAt   time.Time
}

// StockMovementDetail es el modelo de lectura del listado de movimientos:
// el movimiento con los datos básicos del producto y del usuario resueltos.
// Los campos del producto son punteros porque la referencia puede quedar
// colgando tras un borrado; en ese caso se devuelven nulos.
type StockMovementDetail struct {
	StockMovement
	ProductName  *string
	ProductPrice *decimal.Decimal
	UserName     *string
	UserEmail    *string
}
