package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jportela/tienda-api/internal/domain"
	"github.com/jportela/tienda-api/internal/domain/entity"
	"github.com/jportela/tienda-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, product_id, quantity, type, description, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Quantity, movement.Type,
		movement.Description, movement.UserID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Retorna nil si no existe.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, quantity, type, description, user_id, created_at
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.Quantity, &m.Type, &m.Description, &m.UserID, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return &m, nil
}

// ListDetailed devuelve los movimientos con producto y usuario resueltos via
// LEFT JOIN: las referencias colgantes (producto borrado) quedan en NULL en
// lugar de romper la lectura.
func (r *StockMovementRepo) ListDetailed() ([]*entity.StockMovementDetail, error) {
	query := `
		SELECT m.id, m.product_id, m.quantity, m.type, m.description, m.user_id, m.created_at,
			p.name, p.price, u.name, u.email
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id
		LEFT JOIN users u ON u.id = m.user_id
		ORDER BY m.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovementDetail
	for rows.Next() {
		var d entity.StockMovementDetail
		if err := rows.Scan(
			&d.ID, &d.ProductID, &d.Quantity, &d.Type, &d.Description, &d.UserID, &d.CreatedAt,
			&d.ProductName, &d.ProductPrice, &d.UserName, &d.UserEmail,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update sobreescribe cantidad y descripción. No toca products.stock.
func (r *StockMovementRepo) Update(movement *entity.StockMovement) error {
	query := `
		UPDATE stock_movements SET quantity = $2, description = $3 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Quantity, movement.Description,
	)
	if err != nil {
		return fmt.Errorf("update stock movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el registro de auditoría. Retorna ErrNotFound si no existe.
func (r *StockMovementRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM stock_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
