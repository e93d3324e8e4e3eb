package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PrecioVecino-api/internal/application/auth"
	"github.com/jhoicas/PrecioVecino-api/internal/application/shoppinglist"
	"github.com/jhoicas/PrecioVecino-api/internal/application/usecase"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ProductUC       *usecase.ProductUseCase
	StoreUC         *usecase.StoreUseCase
	PriceUC         *usecase.PriceUseCase
	PricingUC       *usecase.PricingUseCase
	SearchUC        *usecase.SearchUseCase
	ShoppingListUC  *shoppinglist.UseCase
	JWTSecret       string
	DefaultRadiusKm float64
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

	// Products: lecturas públicas (con auth opcional para el historial de
	// búsquedas), mutaciones con auth. Las rutas fijas van antes de /:id.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.PricingUC, deps.SearchUC, deps.DefaultRadiusKm)
	products.Get("/search", OptionalAuth(deps.JWTSecret), productHandler.Search)
	products.Get("/barcode/:code", productHandler.GetByBarcode)
	products.Get("/category/:category", productHandler.ListByCategory)
	products.Post("/", authRequired, productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", authRequired, productHandler.Update)
	products.Delete("/:id", authRequired, adminOnly, productHandler.Delete)
	products.Get("/:id/prices", productHandler.Prices)
	products.Get("/:id/best-price", productHandler.BestPrice)

	// Stores: lecturas públicas, mutaciones solo admin. /nearby va antes de
	// /:id para que no lo capture el parámetro.
	stores := api.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC, deps.PricingUC, deps.DefaultRadiusKm)
	stores.Get("/nearby", storeHandler.Nearby)
	stores.Get("/", storeHandler.List)
	stores.Post("/", authRequired, adminOnly, storeHandler.Create)
	stores.Put("/locations/:id", authRequired, adminOnly, storeHandler.UpdateLocation)
	stores.Delete("/locations/:id", authRequired, adminOnly, storeHandler.DeleteLocation)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", authRequired, adminOnly, storeHandler.Update)
	stores.Delete("/:id", authRequired, adminOnly, storeHandler.Delete)
	stores.Post("/:id/locations", authRequired, adminOnly, storeHandler.AddLocation)

	// Prices: historial público, reportes y correcciones con auth,
	// eliminación solo admin.
	prices := api.Group("/prices")
	priceHandler := NewPriceHandler(deps.PriceUC)
	prices.Get("/history", priceHandler.History)
	prices.Post("/", authRequired, priceHandler.Record)
	prices.Put("/:id", authRequired, priceHandler.Correct)
	prices.Delete("/:id", authRequired, adminOnly, priceHandler.Delete)

	// Shopping lists (todo con auth, acotado al dueño)
	lists := api.Group("/shopping-lists", authRequired)
	listHandler := NewShoppingListHandler(deps.ShoppingListUC, deps.PricingUC, deps.DefaultRadiusKm)
	lists.Post("/", listHandler.Create)
	lists.Get("/", listHandler.List)
	lists.Get("/:id", listHandler.GetByID)
	lists.Put("/:id", listHandler.Update)
	lists.Delete("/:id", listHandler.Delete)
	lists.Post("/:id/items", listHandler.AddItem)
	lists.Put("/:id/items/:itemId", listHandler.UpdateItem)
	lists.Delete("/:id/items/:itemId", listHandler.DeleteItem)
	lists.Get("/:id/prices", listHandler.Prices)

	// Search history (con auth) y populares (público)
	searchHandler := NewSearchHandler(deps.SearchUC)
	history := api.Group("/search-history", authRequired)
	history.Get("/", searchHandler.History)
	history.Get("/insights", searchHandler.Insights)
	history.Delete("/", searchHandler.Clear)
	api.Get("/popular-searches", searchHandler.Popular)
}
