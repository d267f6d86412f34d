package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto (JSON o multipart).
// En multipart, un archivo subido reemplaza Images con el nombre guardado.
// Price es puntero para distinguir "0" (válido) de "ausente" (rechazado).
type CreateProductRequest struct {
	Name        string           `json:"name" form:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description" form:"description" validate:"required"`
	Images      []string         `json:"images" form:"-"`
	Price       *decimal.Decimal `json:"price" form:"price" validate:"required"`
	Category    string           `json:"category" form:"category" validate:"required"`
	Available   *bool            `json:"available" form:"available"`
	Stock       int              `json:"stock" form:"stock" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Images distingue tres casos: nil = conservar, vacío = limpiar, valores = reemplazar.
type UpdateProductRequest struct {
	Name        string           `json:"name" form:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description" form:"description" validate:"required"`
	Images      *[]string        `json:"images" form:"-"`
	Price       *decimal.Decimal `json:"price" form:"price" validate:"required"`
	Category    string           `json:"category" form:"category" validate:"required"`
	Available   *bool            `json:"available" form:"available"`
	Stock       *int             `json:"stock" form:"stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
