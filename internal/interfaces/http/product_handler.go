package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jportela/tienda-api/internal/application/catalog"
	"github.com/jportela/tienda-api/internal/application/dto"
	"github.com/jportela/tienda-api/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ProductHandler maneja el CRUD del catálogo. Crear y actualizar aceptan
// JSON o multipart/form-data con imagen adjunta.
type ProductHandler struct {
	uc    *catalog.ProductUseCase
	store *ImageStore
}

// NewProductHandler construye el handler del catálogo.
func NewProductHandler(uc *catalog.ProductUseCase, store *ImageStore) *ProductHandler {
	return &ProductHandler{uc: uc, store: store}
}

// List devuelve todos los productos. Endpoint público.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		log.Error().Err(err).Msg("listar productos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al obtener los productos"})
	}
	return c.JSON(items)
}

// Get devuelve un producto por ID. Endpoint público.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		log.Error().Err(err).Msg("obtener producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al obtener el producto"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Create crea un producto. Solo administradores.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if isMultipart(c) {
		parsed, err := h.parseCreateForm(c)
		if err != nil {
			return badRequest(c, err)
		}
		in = *parsed
	} else {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if in.Name == "" || in.Description == "" || in.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, description y category son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price es requerido; precio y stock no pueden ser negativos"})
		}
		log.Error().Err(err).Msg("crear producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al crear el producto"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza un producto existente. Solo administradores.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if isMultipart(c) {
		parsed, err := h.parseUpdateForm(c)
		if err != nil {
			return badRequest(c, err)
		}
		in = *parsed
	} else {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if in.Name == "" || in.Description == "" || in.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, description y category son requeridos"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price es requerido; precio y stock no pueden ser negativos"})
		}
		log.Error().Err(err).Msg("actualizar producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al actualizar el producto"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Delete elimina un producto. Solo administradores.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		log.Error().Err(err).Msg("eliminar producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al eliminar el producto"})
	}
	return c.JSON(dto.MessageResponse{Message: "Producto eliminado correctamente."})
}

// parseCreateForm arma la petición de creación desde multipart/form-data.
func (h *ProductHandler) parseCreateForm(c *fiber.Ctx) (*dto.CreateProductRequest, error) {
	in := dto.CreateProductRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
	}
	price, err := parsePrice(c.FormValue("price"))
	if err != nil {
		return nil, err
	}
	in.Price = price
	if v := c.FormValue("stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("stock debe ser un número")
		}
		in.Stock = stock
	}
	available, err := parseAvailable(c)
	if err != nil {
		return nil, err
	}
	in.Available = available
	saved, err := h.store.SaveFromRequest(c)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, errors.New("la imagen debe ser un archivo de imagen de máximo 5MB")
		}
		return nil, err
	}
	if saved != "" {
		in.Images = []string{saved}
	}
	return &in, nil
}

// parseUpdateForm arma la petición de actualización desde multipart/form-data.
// Un archivo subido reemplaza las imágenes; el campo de texto "images" vacío
// las limpia; si no viene ni archivo ni campo, se conservan.
func (h *ProductHandler) parseUpdateForm(c *fiber.Ctx) (*dto.UpdateProductRequest, error) {
	in := dto.UpdateProductRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
	}
	price, err := parsePrice(c.FormValue("price"))
	if err != nil {
		return nil, err
	}
	in.Price = price
	if v := c.FormValue("stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("stock debe ser un número")
		}
		in.Stock = &stock
	}
	available, err := parseAvailable(c)
	if err != nil {
		return nil, err
	}
	in.Available = available
	saved, err := h.store.SaveFromRequest(c)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, errors.New("la imagen debe ser un archivo de imagen de máximo 5MB")
		}
		return nil, err
	}
	switch {
	case saved != "":
		in.Images = &[]string{saved}
	default:
		if form, err := c.MultipartForm(); err == nil {
			if values, ok := form.Value[uploadFieldName]; ok {
				images := make([]string, 0, len(values))
				for _, v := range values {
					if v != "" {
						images = append(images, v)
					}
				}
				in.Images = &images
			}
		}
	}
	return &in, nil
}

// parsePrice devuelve nil si el campo no viene; la obligatoriedad la valida
// el caso de uso.
func parsePrice(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, errors.New("price debe ser un número")
	}
	return &price, nil
}

func parseAvailable(c *fiber.Ctx) (*bool, error) {
	raw := c.FormValue("available")
	if raw == "" {
		return nil, nil
	}
	available, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.New("available debe ser true o false")
	}
	return &available, nil
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), "multipart/form-data")
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
}
