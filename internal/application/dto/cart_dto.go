package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddToCartRequest body para POST /api/cart.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// UpdateCartItemRequest body para PUT /api/cart/:productId.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// CartItemResponse línea de carrito con datos del producto resueltos.
type CartItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Images    []string        `json:"images"`
	Quantity  int             `json:"quantity"`
}

// CartResponse salida del carrito completo.
type CartResponse struct {
	ID        string             `json:"id,omitempty"`
	Items     []CartItemResponse `json:"items"`
	UpdatedAt time.Time          `json:"updated_at,omitempty"`
}
