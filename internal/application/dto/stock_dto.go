package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockRequest body para PATCH /api/products/:id/stock.
// Quantity es puntero para distinguir "0" de "ausente"; un valor no numérico
// en el JSON se rechaza al parsear el body.
type AdjustStockRequest struct {
	Quantity    *int   `json:"quantity"`
	Description string `json:"description"`
}

// AdjustStockResponse salida del ajuste: el stock resultante.
type AdjustStockResponse struct {
	Message string `json:"message"`
	Stock   int    `json:"stock"`
}

// UpdateMovementRequest body para PATCH /api/stock-movements/:id.
// Ambos campos son opcionales; solo se sobreescribe lo enviado.
type UpdateMovementRequest struct {
	Quantity    *int    `json:"quantity"`
	Description *string `json:"description"`
}

// MovementProductRef datos básicos del producto referenciado por un movimiento.
// Nulo cuando el producto fue borrado después del movimiento.
type MovementProductRef struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// MovementUserRef datos básicos del usuario que generó el movimiento.
type MovementUserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StockMovementResponse salida de un movimiento con referencias resueltas.
type StockMovementResponse struct {
	ID          string              `json:"id"`
	Product     *MovementProductRef `json:"product"`
	Quantity    int                 `json:"quantity"`
	Type        string              `json:"type"`
	Description string              `json:"description"`
	User        *MovementUserRef    `json:"user"`
	CreatedAt   time.Time           `json:"created_at"`
}
