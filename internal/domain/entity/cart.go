package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart representa el carrito de un usuario. Hay a lo sumo un carrito por
// usuario (índice único sobre user_id) y a lo sumo una línea por producto.
type Cart struct {
	ID        string
	UserID    string
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem es una línea del carrito: referencia a producto + cantidad (>= 1).
// Los datos del producto se resuelven al leer; si el producto fue borrado
// la línea se omite en las lecturas.
type CartItem struct {
	ProductID     string
	Quantity      int
	ProductName   string
	ProductPrice  decimal.Decimal
	ProductImages []string
}
