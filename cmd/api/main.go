package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/PrecioVecino-api/internal/application/auth"
	"github.com/jhoicas/PrecioVecino-api/internal/application/pricing"
	"github.com/jhoicas/PrecioVecino-api/internal/application/shoppinglist"
	"github.com/jhoicas/PrecioVecino-api/internal/application/usecase"
	"github.com/jhoicas/PrecioVecino-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/PrecioVecino-api/internal/interfaces/http"
	"github.com/jhoicas/PrecioVecino-api/pkg/config"
	"github.com/jhoicas/PrecioVecino-api/pkg/logger"
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
	storeRepo := postgres.NewStoreRepository(pool)
	priceRepo := postgres.NewPriceRepository(pool)
	listRepo := postgres.NewShoppingListRepository(pool)
	searchRepo := postgres.NewSearchHistoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Motor de precios: filtro de proximidad + resolución del precio vigente.
	proximity := pricing.NewProximityFilter(storeRepo)
	resolver := pricing.NewPriceResolver(priceRepo, cfg.Pricing.HonorSaleExpiry)
	engine := pricing.NewEngine(proximity, resolver)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo)
	priceUC := usecase.NewPriceUseCase(priceRepo, productRepo, storeRepo)
	pricingUC := usecase.NewPricingUseCase(engine, resolver, storeRepo, listRepo)
	searchUC := usecase.NewSearchUseCase(searchRepo)
	shoppingListUC := shoppinglist.NewUseCase(listRepo, productRepo, txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PrecioVecino API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ProductUC:       productUC,
		StoreUC:         storeUC,
		PriceUC:         priceUC,
		PricingUC:       pricingUC,
		SearchUC:        searchUC,
		ShoppingListUC:  shoppingListUC,
		JWTSecret:       cfg.JWT.Secret,
		DefaultRadiusKm: cfg.Pricing.DefaultRadiusKm,
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
