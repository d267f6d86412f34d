package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jportela/tienda-api/internal/domain"
	"github.com/jportela/tienda-api/internal/domain/entity"
	"github.com/jportela/tienda-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL (usable con pool o tx).
// El índice único sobre carts.user_id garantiza un carrito por usuario; el
// índice único sobre (cart_id, product_id) garantiza una línea por producto.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// GetByUserID devuelve el carrito del usuario con los datos de producto
// resueltos, o nil si no tiene. El INNER JOIN omite líneas cuyo producto
// fue borrado (referencias colgantes degradan en la lectura).
func (r *CartRepo) GetByUserID(userID string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.q.QueryRow(context.Background(),
		`SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1`, userID,
	).Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	rows, err := r.q.Query(context.Background(), `
		SELECT i.product_id, i.quantity, p.name, p.price, p.images
		FROM cart_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.cart_id = $1
		ORDER BY i.product_id`, c.ID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.ProductName, &item.ProductPrice, &item.ProductImages); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		c.Items = append(c.Items, item)
	}
	return &c, rows.Err()
}

// GetOrCreate devuelve el carrito del usuario, creándolo vacío si no existe.
// El ON CONFLICT resuelve la carrera de dos creaciones simultáneas.
func (r *CartRepo) GetOrCreate(userID string) (*entity.Cart, error) {
	cart, err := r.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	now := time.Now()
	_, err = r.q.Exec(context.Background(), `
		INSERT INTO carts (id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id) DO NOTHING`,
		uuid.New().String(), userID, now)
	if err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}
	return r.GetByUserID(userID)
}

// UpsertItem agrega la línea o incrementa su cantidad si ya existe. El merge
// se resuelve a nivel de store para que dos agregados concurrentes no dupliquen líneas.
func (r *CartRepo) UpsertItem(cartID, productID string, quantity int) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`,
		cartID, productID, quantity)
	if err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}
	return r.touch(cartID)
}

// SetItemQuantity reemplaza la cantidad de una línea existente (sin merge).
func (r *CartRepo) SetItemQuantity(cartID, productID string, quantity int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE cart_items SET quantity = $3 WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID, quantity)
	if err != nil {
		return fmt.Errorf("set cart item quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrItemNotInCart
	}
	return r.touch(cartID)
}

// RemoveItem elimina la línea si existe. Quitar un producto ausente no es error.
func (r *CartRepo) RemoveItem(cartID, productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return r.touch(cartID)
}

func (r *CartRepo) touch(cartID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE carts SET updated_at = now() WHERE id = $1`, cartID)
	if err != nil {
		return fmt.Errorf("touch cart: %w", err)
	}
	return nil
}
