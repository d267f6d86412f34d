package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jportela/tienda-api/internal/application/dto"
	"github.com/jportela/tienda-api/internal/domain"
	"github.com/jportela/tienda-api/internal/domain/entity"
	"github.com/jportela/tienda-api/internal/domain/repository"
)

// LedgerUseCase mantiene Product.Stock como cantidad autoritativa y el libro
// de movimientos como rastro de auditoría de cada cambio.
//
// El ajuste se ejecuta en una sola transacción: el UPDATE condicional atómico
// sobre products (stock + delta >= 0) y el INSERT del movimiento se confirman
// o revierten juntos. La verificación de límite forma parte del propio UPDATE,
// así que dos decrementos concurrentes nunca pueden dejar el stock negativo.
type LedgerUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner, productRepo repository.ProductRepository, movRepo repository.StockMovementRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, productRepo: productRepo, movRepo: movRepo}
}

// Adjust aplica el delta al stock del producto y registra el movimiento.
// Devuelve el stock resultante.
//
// El tipo del movimiento se deriva del signo del delta: ingreso si >= 0,
// egreso si < 0. La descripción omitida se guarda como cadena vacía.
func (uc *LedgerUseCase) Adjust(ctx context.Context, productID, userID string, delta int, description string) (int, error) {
	if userID == "" {
		return 0, domain.ErrUnauthorized
	}

	var newStock int
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		stock, err := productRepo.AdjustStock(productID, delta)
		if err != nil {
			return err
		}
		newStock = stock
		mov := &entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   productID,
			Quantity:    delta,
			Type:        entity.MovementTypeFor(delta),
			Description: description,
			UserID:      userID,
			CreatedAt:   time.Now(),
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return 0, err
	}
	return newStock, nil
}

// ListMovements devuelve todos los movimientos con producto y usuario
// resueltos. Los productos borrados aparecen con referencia nula.
func (uc *LedgerUseCase) ListMovements() ([]dto.StockMovementResponse, error) {
	list, err := uc.movRepo.ListDetailed()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return items, nil
}

// UpdateMovement sobreescribe cantidad y/o descripción del movimiento sin
// tocar el stock del producto y sin recalcular el tipo. El libro deja de ser
// autoritativo una vez editado; el desacople es deliberado.
func (uc *LedgerUseCase) UpdateMovement(id string, in dto.UpdateMovementRequest) error {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return err
	}
	if mov == nil {
		return domain.ErrNotFound
	}
	if in.Quantity != nil {
		mov.Quantity = *in.Quantity
	}
	if in.Description != nil {
		mov.Description = *in.Description
	}
	return uc.movRepo.Update(mov)
}

// DeleteMovement elimina solo el registro de auditoría; no revierte su efecto
// sobre el stock del producto.
func (uc *LedgerUseCase) DeleteMovement(id string) error {
	return uc.movRepo.Delete(id)
}

func toMovementResponse(m *entity.StockMovementDetail) *dto.StockMovementResponse {
	out := &dto.StockMovementResponse{
		ID:          m.ID,
		Quantity:    m.Quantity,
		Type:        m.Type,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
	if m.ProductName != nil && m.ProductPrice != nil {
		out.Product = &dto.MovementProductRef{ID: m.ProductID, Name: *m.ProductName, Price: *m.ProductPrice}
	}
	if m.UserName != nil && m.UserEmail != nil {
		out.User = &dto.MovementUserRef{ID: m.UserID, Name: *m.UserName, Email: *m.UserEmail}
	}
	return out
}
