package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock es la cantidad disponible autoritativa; solo se modifica vía ajustes
// de stock (movimientos), nunca por la edición normal del producto.
type Product struct {
	ID          string
	Name        string
	Description string
	Images      []string // nombres de archivo servidos desde /uploads
	Price       decimal.Decimal
	Category    string
	Available   bool
	Stock       int // invariante: nunca negativo después de una operación confirmada
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
