package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jportela/tienda-api/internal/application/auth"
	"github.com/jportela/tienda-api/internal/application/cart"
	"github.com/jportela/tienda-api/internal/application/catalog"
	"github.com/jportela/tienda-api/internal/application/contact"
	"github.com/jportela/tienda-api/internal/application/stock"
	"github.com/jportela/tienda-api/internal/infrastructure/mail"
	"github.com/jportela/tienda-api/internal/infrastructure/postgres"
	httpRouter "github.com/jportela/tienda-api/internal/interfaces/http"
	"github.com/jportela/tienda-api/pkg/config"
	"github.com/jportela/tienda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := mail.NewSMTPSender(cfg.SMTP)

	authUC := auth.NewAuthUseCase(userRepo, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.App.FrontendURL)
	productUC := catalog.NewProductUseCase(productRepo)
	ledgerUC := stock.NewLedgerUseCase(txRunner, productRepo, movementRepo)
	cartUC := cart.NewCartUseCase(cartRepo, productRepo)
	contactUC := contact.NewContactUseCase(mailer)

	imageStore, err := httpRouter.NewImageStore(cfg.Upload)
	if err != nil {
		log.Fatal().Err(err).Msg("carpeta de subidas")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// Margen sobre el tamaño máximo de imagen para el resto del form.
		BodyLimit: int(cfg.Upload.MaxSizeBytes()) + 1<<20,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.FrontendURL,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Imágenes de productos subidas por administradores.
	app.Static("/uploads", imageStore.Dir())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		LedgerUC:   ledgerUC,
		CartUC:     cartUC,
		ContactUC:  contactUC,
		ImageStore: imageStore,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
