package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PrecioVecino-api/internal/application/shoppinglist"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/repository"
	apphttp "github.com/jhoicas/PrecioVecino-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para ejercer el handler de listas contra el caso de uso real
// ──────────────────────────────────────────────────────────────────────────────

type stubListRepo struct {
	list  *entity.ShoppingList
	items []*entity.ShoppingListItem
}

func (s *stubListRepo) Create(_ context.Context, _ *entity.ShoppingList) error { return nil }
func (s *stubListRepo) GetByID(_ context.Context, id string) (*entity.ShoppingList, error) {
	if s.list != nil && s.list.ID == id {
		return s.list, nil
	}
	return nil, nil
}
func (s *stubListRepo) ListByUser(_ context.Context, _ string) ([]*entity.ShoppingList, error) {
	return nil, nil
}
func (s *stubListRepo) Update(_ context.Context, _ *entity.ShoppingList) error { return nil }
func (s *stubListRepo) Delete(_ context.Context, _ string) error               { return nil }
func (s *stubListRepo) AddItem(_ context.Context, it *entity.ShoppingListItem) error {
	s.items = append(s.items, it)
	return nil
}
func (s *stubListRepo) GetItemByID(_ context.Context, _ string) (*entity.ShoppingListItem, error) {
	return nil, nil
}
func (s *stubListRepo) ListItems(_ context.Context, _ string) ([]entity.ShoppingListItemDetail, error) {
	return nil, nil
}
func (s *stubListRepo) UpdateItem(_ context.Context, _ *entity.ShoppingListItem) error { return nil }
func (s *stubListRepo) DeleteItem(_ context.Context, _ string) error                   { return nil }
func (s *stubListRepo) DeleteItemsByList(_ context.Context, _ string) error            { return nil }

type stubProductRepo struct {
	product *entity.Product
}

func (s *stubProductRepo) Create(_ context.Context, _ *entity.Product) error { return nil }
func (s *stubProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if s.product != nil && s.product.ID == id {
		return s.product, nil
	}
	return nil, nil
}
func (s *stubProductRepo) GetByBarcode(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) ListByCategory(_ context.Context, _ string) ([]*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) Search(_ context.Context, _ string) ([]*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) Update(_ context.Context, _ *entity.Product) error { return nil }
func (s *stubProductRepo) Delete(_ context.Context, _ string) error          { return nil }

type stubTxRunner struct{ repo repository.ShoppingListRepository }

func (s *stubTxRunner) Run(_ context.Context, fn func(listRepo repository.ShoppingListRepository) error) error {
	return fn(s.repo)
}

// buildListApp monta la ruta de ítems con el caso de uso real sobre stubs,
// autenticada con un JWT de comprador.
func buildListApp(t *testing.T) (*fiber.App, *stubListRepo) {
	t.Helper()
	now := time.Now()
	listRepo := &stubListRepo{
		list: &entity.ShoppingList{ID: "list-1", UserID: testUserID, Name: "mercado", CreatedAt: now, UpdatedAt: now},
	}
	productRepo := &stubProductRepo{
		product: &entity.Product{ID: "prod-1", Name: "Arroz blanco"},
	}
	uc := shoppinglist.NewUseCase(listRepo, productRepo, &stubTxRunner{repo: listRepo})
	handler := apphttp.NewShoppingListHandler(uc, nil, 10)

	app := fiber.New()
	app.Post("/api/shopping-lists/:id/items",
		apphttp.AuthMiddleware(testJWTSecret),
		handler.AddItem,
	)
	return app, listRepo
}

func postItem(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/shopping-lists/list-1/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "comprador"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AddItem — la cantidad inválida se rechaza, no se corrige
// ──────────────────────────────────────────────────────────────────────────────

// Una cantidad menor a 1 debe producir 400 VALIDATION: el handler no la
// "arregla" silenciosamente a 1.
func TestAddItem_CantidadCero_Retorna400(t *testing.T) {
	app, repo := buildListApp(t)

	resp := postItem(t, app, `{"product_id":"prod-1","quantity":0}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"cantidad 0 debe rechazarse con 400, no corregirse a 1")

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Empty(t, repo.items, "nada debe persistirse ante una cantidad inválida")
}

func TestAddItem_CantidadNegativa_Retorna400(t *testing.T) {
	app, repo := buildListApp(t)

	resp := postItem(t, app, `{"product_id":"prod-1","quantity":-3}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, repo.items)
}

// El camino feliz sigue intacto: cantidad válida crea el ítem con 201.
func TestAddItem_CantidadValida_Retorna201(t *testing.T) {
	app, repo := buildListApp(t)

	resp := postItem(t, app, `{"product_id":"prod-1","quantity":2}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(2), body["quantity"], "la cantidad enviada debe respetarse")
	assert.Equal(t, "Arroz blanco", body["product_name"])
	require.Len(t, repo.items, 1)
	assert.Equal(t, 2, repo.items[0].Quantity)
}
