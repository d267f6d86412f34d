package cart

import (
	"github.com/jportela/tienda-api/internal/application/dto"
	"github.com/jportela/tienda-api/internal/domain"
	"github.com/jportela/tienda-api/internal/domain/entity"
	"github.com/jportela/tienda-api/internal/domain/repository"
)

// CartUseCase mantiene el invariante de un carrito por usuario y la semántica
// de merge en agregados repetidos: a lo sumo una línea por producto.
type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo, productRepo: productRepo}
}

// Get devuelve el carrito del usuario. Si todavía no tiene, responde un
// carrito vacío en lugar de error.
func (uc *CartUseCase) Get(userID string) (*dto.CartResponse, error) {
	cart, err := uc.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &dto.CartResponse{Items: []dto.CartItemResponse{}}, nil
	}
	return toCartResponse(cart), nil
}

// Add agrega el producto al carrito del usuario, creándolo si hace falta.
// Si el producto ya está en el carrito, incrementa su cantidad (merge-on-add).
// La cantidad resultante de la línea no puede superar el stock actual del
// producto: el tope se valida en el servidor, no solo en el cliente.
func (uc *CartUseCase) Add(userID string, in dto.AddToCartRequest) (*dto.CartResponse, error) {
	if in.ProductID == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	cart, err := uc.cartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	current := 0
	for _, item := range cart.Items {
		if item.ProductID == in.ProductID {
			current = item.Quantity
			break
		}
	}
	if current+in.Quantity > product.Stock {
		return nil, domain.ErrInsufficientStock
	}
	if err := uc.cartRepo.UpsertItem(cart.ID, in.ProductID, in.Quantity); err != nil {
		return nil, err
	}
	return uc.reload(userID)
}

// SetQuantity reemplaza la cantidad de una línea existente (sin merge).
// Retorna ErrNotFound si el usuario no tiene carrito y ErrItemNotInCart si
// el producto no está en él.
func (uc *CartUseCase) SetQuantity(userID, productID string, quantity int) (*dto.CartResponse, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	cart, err := uc.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product != nil && quantity > product.Stock {
		return nil, domain.ErrInsufficientStock
	}
	if err := uc.cartRepo.SetItemQuantity(cart.ID, productID, quantity); err != nil {
		return nil, err
	}
	return uc.reload(userID)
}

// Remove quita el producto del carrito. Es idempotente: quitar un producto
// ausente devuelve el carrito válido sin modificar, no un error.
func (uc *CartUseCase) Remove(userID, productID string) (*dto.CartResponse, error) {
	cart, err := uc.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.cartRepo.RemoveItem(cart.ID, productID); err != nil {
		return nil, err
	}
	return uc.reload(userID)
}

// reload vuelve a leer el carrito con los datos de producto resueltos,
// igual que el re-populate tras cada escritura en la versión original.
func (uc *CartUseCase) reload(userID string) (*dto.CartResponse, error) {
	cart, err := uc.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &dto.CartResponse{Items: []dto.CartItemResponse{}}, nil
	}
	return toCartResponse(cart), nil
}

func toCartResponse(c *entity.Cart) *dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		images := item.ProductImages
		if images == nil {
			images = []string{}
		}
		items = append(items, dto.CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.ProductName,
			Price:     item.ProductPrice,
			Images:    images,
			Quantity:  item.Quantity,
		})
	}
	return &dto.CartResponse{ID: c.ID, Items: items, UpdatedAt: c.UpdatedAt}
}
