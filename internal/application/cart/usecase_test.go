package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jportela/tienda-api/internal/application/cart"
	"github.com/jportela/tienda-api/internal/application/dto"
	"github.com/jportela/tienda-api/internal/domain"
	"github.com/jportela/tienda-api/internal/domain/entity"
)

const (
	userID    = "00000000-0000-0000-0000-000000000001"
	productID = "00000000-0000-0000-0000-00000000000a"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }

func (r *fakeProductRepo) List() ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

func (r *fakeProductRepo) AdjustStock(id string, delta int) (int, error) {
	p, ok := r.products[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if p.Stock+delta < 0 {
		return 0, domain.ErrInsufficientStock
	}
	p.Stock += delta
	return p.Stock, nil
}

// fakeCartRepo guarda las líneas como el store real: una por producto, con
// merge en UpsertItem. Las lecturas resuelven los datos de producto y omiten
// las líneas cuyo producto ya no existe.
type fakeCartRepo struct {
	carts    map[string]map[string]int // userID → productID → quantity
	products *fakeProductRepo
}

func (r *fakeCartRepo) GetByUserID(userID string) (*entity.Cart, error) {
	lines, ok := r.carts[userID]
	if !ok {
		return nil, nil
	}
	cart := &entity.Cart{ID: "cart-" + userID, UserID: userID}
	for productID, quantity := range lines {
		p, ok := r.products.products[productID]
		if !ok {
			continue
		}
		cart.Items = append(cart.Items, entity.CartItem{
			ProductID:    productID,
			Quantity:     quantity,
			ProductName:  p.Name,
			ProductPrice: p.Price,
		})
	}
	return cart, nil
}

func (r *fakeCartRepo) GetOrCreate(userID string) (*entity.Cart, error) {
	if _, ok := r.carts[userID]; !ok {
		r.carts[userID] = map[string]int{}
	}
	return r.GetByUserID(userID)
}

func (r *fakeCartRepo) UpsertItem(cartID, productID string, quantity int) error {
	lines := r.linesFor(cartID)
	lines[productID] += quantity
	return nil
}

func (r *fakeCartRepo) SetItemQuantity(cartID, productID string, quantity int) error {
	lines := r.linesFor(cartID)
	if _, ok := lines[productID]; !ok {
		return domain.ErrItemNotInCart
	}
	lines[productID] = quantity
	return nil
}

func (r *fakeCartRepo) RemoveItem(cartID, productID string) error {
	delete(r.linesFor(cartID), productID)
	return nil
}

// linesFor deshace el prefijo "cart-" de los IDs sintéticos del fake.
func (r *fakeCartRepo) linesFor(cartID string) map[string]int {
	return r.carts[cartID[len("cart-"):]]
}

func newCartUC(products ...*entity.Product) (*cart.CartUseCase, *fakeProductRepo, *fakeCartRepo) {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		productRepo.products[p.ID] = p
	}
	cartRepo := &fakeCartRepo{carts: map[string]map[string]int{}, products: productRepo}
	return cart.NewCartUseCase(cartRepo, productRepo), productRepo, cartRepo
}

func testProduct(stock int) *entity.Product {
	return &entity.Product{
		ID:    productID,
		Name:  "Café orgánico",
		Price: decimal.NewFromInt(25),
		Stock: stock,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Get
// ──────────────────────────────────────────────────────────────────────────────

// Un usuario sin carrito recibe uno vacío, no un error.
func TestGet_SinCarrito_DevuelveVacio(t *testing.T) {
	uc, _, _ := newCartUC()

	out, err := uc.Get(userID)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Add
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_CreaCarritoYLinea(t *testing.T) {
	uc, _, _ := newCartUC(testProduct(10))

	out, err := uc.Add(userID, dto.AddToCartRequest{ProductID: productID, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, productID, out.Items[0].ProductID)
	assert.Equal(t, 2, out.Items[0].Quantity)
	assert.Equal(t, "Café orgánico", out.Items[0].Name)
}

// Agregar dos veces el mismo producto deja una sola línea con la suma de
// cantidades (merge-on-add).
func TestAdd_MismoProductoDosVeces_UnaLineaSumada(t *testing.T) {
	uc, _, _ := newCartUC(testProduct(10))

	_, err := uc.Add(userID, dto.AddToCartRequest{ProductID: productID, Quantity: 2})
	require.NoError(t, err)
	out, err := uc.Add(userID, dto.AddToCartRequest{ProductID: productID, Quantity: 3})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, 5, out.Items[0].Quantity)
}

// La cantidad acumulada de la línea no puede superar el stock del producto.
func TestAdd_SuperaStock_Rechazado(t *testing.T) {
	uc, _, _ := newCartUC(testProduct(4))

	_, err := uc.Add(userID, dto.AddToCartRequest{ProductID: productID, Quantity: 3})
	require.NoError(t, err)
	_, err = uc.Add(userID, dto.AddToCartRequest{ProductID: productID, Quantity: 2})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	out, err := uc.Get(userID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 3, out.Items[0].Quantity, "el rechazo no debe modificar la línea")
}

func TestAdd_ProductoInexistente(t *testing.T) {
	uc, _, _ := newCartUC()

	_, err := uc.Add(userID, dto.AddToCartRequest{ProductID: productID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdd_CantidadInvalida(t *testing.T) {
	uc, _, _ := newCartUC(testProduct(10))

	_, err := uc.Add(userID, dto.AddToCartRequest{ProductID: productID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// SetQuantity
// ──────────────────────────────────────────────────────────────────────────────

// SetQuantity reemplaza la cantidad, no la suma.
func TestSetQuantity_Reemplaza(t *testing.T) {
	uc, _, _ := newCartUC(testProduct(10))

	_, err := uc.Add(userID, dto.AddToCartRequest{ProductID: productID, Quantity: 2})
	require.NoError(t, err)
	out, err := uc.SetQuantity(userID, productID, 7)
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, 7, out.Items[0].Quantity)
}

func TestSetQuantity_SinCarrito(t *testing.T) {
	uc, _, _ := newCartUC(testProduct(10))

	_, err := uc.SetQuantity(userID, productID, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetQuantity_ProductoNoEstaEnCarrito(t *testing.T) {
	uc, _, _ := newCartUC(testProduct(10), &entity.Product{ID: "otro", Name: "Otro", Stock: 5})

	_, err := uc.Add(userID, dto.AddToCartRequest{ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	_, err = uc.SetQuantity(userID, "otro", 2)
	assert.ErrorIs(t, err, domain.ErrItemNotInCart)
}

func TestSetQuantity_SuperaStock(t *testing.T) {
	uc, _, _ := newCartUC(testProduct(4))

	_, err := uc.Add(userID, dto.AddToCartRequest{ProductID: productID, Quantity: 2})
	require.NoError(t, err)

	_, err = uc.SetQuantity(userID, productID, 9)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Remove
// ──────────────────────────────────────────────────────────────────────────────

func TestRemove_QuitaLinea(t *testing.T) {
	uc, _, _ := newCartUC(testProduct(10))

	_, err := uc.Add(userID, dto.AddToCartRequest{ProductID: productID, Quantity: 2})
	require.NoError(t, err)
	out, err := uc.Remove(userID, productID)
	require.NoError(t, err)

	assert.Empty(t, out.Items)
}

// Quitar un producto que no está en el carrito es idempotente: devuelve el
// carrito intacto en lugar de fallar.
func TestRemove_ProductoAusente_Idempotente(t *testing.T) {
	uc, _, _ := newCartUC(testProduct(10))

	_, err := uc.Add(userID, dto.AddToCartRequest{ProductID: productID, Quantity: 2})
	require.NoError(t, err)
	out, err := uc.Remove(userID, "producto-que-no-esta")
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, 2, out.Items[0].Quantity)
}

// Las líneas cuyo producto fue borrado del catálogo se omiten al leer.
func TestGet_LineaConProductoBorrado_SeOmite(t *testing.T) {
	uc, productRepo, _ := newCartUC(testProduct(10))

	_, err := uc.Add(userID, dto.AddToCartRequest{ProductID: productID, Quantity: 2})
	require.NoError(t, err)
	require.NoError(t, productRepo.Delete(productID))

	out, err := uc.Get(userID)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}
