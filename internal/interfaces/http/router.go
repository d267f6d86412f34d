package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jportela/tienda-api/internal/application/auth"
	"github.com/jportela/tienda-api/internal/application/cart"
	"github.com/jportela/tienda-api/internal/application/catalog"
	"github.com/jportela/tienda-api/internal/application/contact"
	"github.com/jportela/tienda-api/internal/application/stock"
	"github.com/jportela/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *catalog.ProductUseCase
	LedgerUC   *stock.LedgerUseCase
	CartUC     *cart.CartUseCase
	ContactUC  *contact.ContactUseCase
	ImageStore *ImageStore
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Products (lectura pública, escritura solo admin)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ImageStore)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.Get)
	products.Post("/", authRequired, adminOnly, productHandler.Create)
	products.Put("/:id", authRequired, adminOnly, productHandler.Update)
	products.Delete("/:id", authRequired, adminOnly, productHandler.Delete)

	// Stock (solo admin)
	stockHandler := NewStockHandler(deps.LedgerUC)
	products.Patch("/:id/stock", authRequired, adminOnly, stockHandler.Adjust)
	movements := api.Group("/stock-movements", authRequired, adminOnly)
	movements.Get("/", stockHandler.ListMovements)
	movements.Patch("/:id", stockHandler.UpdateMovement)
	movements.Delete("/:id", stockHandler.DeleteMovement)

	// Cart (requiere sesión)
	cartGroup := api.Group("/cart", authRequired)
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Post("/", cartHandler.Add)
	cartGroup.Put("/:productId", cartHandler.SetQuantity)
	cartGroup.Delete("/:productId", cartHandler.Remove)

	// Contact (público)
	contactHandler := NewContactHandler(deps.ContactUC)
	api.Post("/contact", contactHandler.Send)
}
