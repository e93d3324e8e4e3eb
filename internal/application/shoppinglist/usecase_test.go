package shoppinglist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PrecioVecino-api/internal/application/dto"
	"github.com/jhoicas/PrecioVecino-api/internal/domain"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeListRepo struct {
	lists map[string]*entity.ShoppingList
	items map[string]*entity.ShoppingListItem

	deletedLists []string
	deletedByTx  []string // ids de listas cuyos ítems se borraron
	failDelete   bool
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{
		lists: make(map[string]*entity.ShoppingList),
		items: make(map[string]*entity.ShoppingListItem),
	}
}

func (f *fakeListRepo) Create(_ context.Context, l *entity.ShoppingList) error {
	f.lists[l.ID] = l
	return nil
}

func (f *fakeListRepo) GetByID(_ context.Context, id string) (*entity.ShoppingList, error) {
	return f.lists[id], nil
}

func (f *fakeListRepo) ListByUser(_ context.Context, userID string) ([]*entity.ShoppingList, error) {
	var out []*entity.ShoppingList
	for _, l := range f.lists {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeListRepo) Update(_ context.Context, l *entity.ShoppingList) error {
	f.lists[l.ID] = l
	return nil
}

func (f *fakeListRepo) Delete(_ context.Context, id string) error {
	if f.failDelete {
		return errors.New("falla simulada de almacenamiento")
	}
	delete(f.lists, id)
	f.deletedLists = append(f.deletedLists, id)
	return nil
}

func (f *fakeListRepo) AddItem(_ context.Context, it *entity.ShoppingListItem) error {
	f.items[it.ID] = it
	return nil
}

func (f *fakeListRepo) GetItemByID(_ context.Context, id string) (*entity.ShoppingListItem, error) {
	return f.items[id], nil
}

func (f *fakeListRepo) ListItems(_ context.Context, listID string) ([]entity.ShoppingListItemDetail, error) {
	out := make([]entity.ShoppingListItemDetail, 0)
	for _, it := range f.items {
		if it.ListID == listID {
			out = append(out, entity.ShoppingListItemDetail{ShoppingListItem: *it})
		}
	}
	return out, nil
}

func (f *fakeListRepo) UpdateItem(_ context.Context, it *entity.ShoppingListItem) error {
	f.items[it.ID] = it
	return nil
}

func (f *fakeListRepo) DeleteItem(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeListRepo) DeleteItemsByList(_ context.Context, listID string) error {
	for id, it := range f.items {
		if it.ListID == listID {
			delete(f.items, id)
		}
	}
	f.deletedByTx = append(f.deletedByTx, listID)
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetByBarcode(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) ListByCategory(_ context.Context, _ string) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Search(_ context.Context, _ string) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(_ context.Context, _ *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(_ context.Context, _ string) error          { return nil }

// fakeTxRunner simula la transacción: ejecuta fn con el mismo repo y registra
// si el callback terminó bien. Si fn falla, nada se "commitea" (el fake
// restaura el estado previo para emular el rollback).
type fakeTxRunner struct {
	repo      *fakeListRepo
	runs      int
	committed bool
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(listRepo repository.ShoppingListRepository) error) error {
	f.runs++

	// snapshot para emular rollback
	listsBefore := make(map[string]*entity.ShoppingList, len(f.repo.lists))
	for k, v := range f.repo.lists {
		listsBefore[k] = v
	}
	itemsBefore := make(map[string]*entity.ShoppingListItem, len(f.repo.items))
	for k, v := range f.repo.items {
		itemsBefore[k] = v
	}

	if err := fn(f.repo); err != nil {
		f.repo.lists = listsBefore
		f.repo.items = itemsBefore
		return err
	}
	f.committed = true
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	userAna  = "user-ana"
	userBeto = "user-beto"
)

func seedList(repo *fakeListRepo, listID, userID string, itemIDs ...string) {
	now := time.Now()
	repo.lists[listID] = &entity.ShoppingList{ID: listID, UserID: userID, Name: "mercado", CreatedAt: now, UpdatedAt: now}
	for _, itemID := range itemIDs {
		repo.items[itemID] = &entity.ShoppingListItem{ID: itemID, ListID: listID, ProductID: "prod-1", Quantity: 1}
	}
}

func buildUseCase(repo *fakeListRepo) (*UseCase, *fakeTxRunner) {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Leche entera"},
	}}
	tx := &fakeTxRunner{repo: repo}
	return NewUseCase(repo, products, tx), tx
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El borrado de una lista elimina lista e ítems dentro de la transacción:
// jamás quedan ítems huérfanos.
func TestDelete_ListaEItemsCaenJuntos(t *testing.T) {
	repo := newFakeListRepo()
	seedList(repo, "list-1", userAna, "item-1", "item-2")
	uc, tx := buildUseCase(repo)

	err := uc.Delete(context.Background(), userAna, "list-1")
	require.NoError(t, err)

	assert.Equal(t, 1, tx.runs, "el borrado debe correr dentro del TxRunner")
	assert.True(t, tx.committed, "la transacción debe commitear")
	assert.Empty(t, repo.lists, "la lista debe desaparecer")
	assert.Empty(t, repo.items, "los ítems deben desaparecer con la lista")
	assert.Equal(t, []string{"list-1"}, repo.deletedByTx, "los ítems se borran por lista, no uno a uno")
}

// Si el borrado de la fila de la lista falla, la transacción hace rollback y
// los ítems sobreviven: nunca se observa el borrado a medias.
func TestDelete_FallaEnLista_RollbackDeItems(t *testing.T) {
	repo := newFakeListRepo()
	seedList(repo, "list-1", userAna, "item-1")
	repo.failDelete = true
	uc, tx := buildUseCase(repo)

	err := uc.Delete(context.Background(), userAna, "list-1")
	require.Error(t, err)

	assert.False(t, tx.committed, "una falla dentro del callback no debe commitear")
	assert.Len(t, repo.items, 1, "el rollback debe conservar los ítems")
	assert.Len(t, repo.lists, 1, "el rollback debe conservar la lista")
}

// Borrar la lista de otro usuario está prohibido y no toca la transacción.
func TestDelete_ListaAjena_Forbidden(t *testing.T) {
	repo := newFakeListRepo()
	seedList(repo, "list-1", userAna, "item-1")
	uc, tx := buildUseCase(repo)

	err := uc.Delete(context.Background(), userBeto, "list-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, tx.runs, "no debe abrirse transacción para una lista ajena")
	assert.Len(t, repo.lists, 1)
}

// Borrar una lista inexistente devuelve NotFound sin abrir transacción.
func TestDelete_ListaInexistente_NotFound(t *testing.T) {
	repo := newFakeListRepo()
	uc, tx := buildUseCase(repo)

	err := uc.Delete(context.Background(), userAna, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, tx.runs)
}

// GetByID es estrictamente del dueño: lista ajena -> Forbidden,
// inexistente -> nil sin error.
func TestGetByID_AcotadoAlDueno(t *testing.T) {
	repo := newFakeListRepo()
	seedList(repo, "list-1", userAna, "item-1")
	uc, _ := buildUseCase(repo)

	out, err := uc.GetByID(context.Background(), userAna, "list-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Len(t, out.Items, 1)

	_, err = uc.GetByID(context.Background(), userBeto, "list-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err = uc.GetByID(context.Background(), userAna, "no-existe")
	require.NoError(t, err)
	assert.Nil(t, out, "lista inexistente es nil, no error")
}

// AddItem valida que el producto exista y arranca sin marcar.
func TestAddItem_ProductoInexistente_NotFound(t *testing.T) {
	repo := newFakeListRepo()
	seedList(repo, "list-1", userAna)
	uc, _ := buildUseCase(repo)

	_, err := uc.AddItem(context.Background(), userAna, "list-1", dto.AddListItemRequest{
		ProductID: "prod-fantasma",
		Quantity:  2,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddItem_Valido(t *testing.T) {
	repo := newFakeListRepo()
	seedList(repo, "list-1", userAna)
	uc, _ := buildUseCase(repo)

	out, err := uc.AddItem(context.Background(), userAna, "list-1", dto.AddListItemRequest{
		ProductID: "prod-1",
		Quantity:  3,
		Notes:     "deslactosada si hay",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Quantity)
	assert.Equal(t, "Leche entera", out.ProductName)
	assert.False(t, out.IsChecked, "un ítem nuevo arranca sin marcar")
	assert.Len(t, repo.items, 1)
}

// Cantidades menores a 1 se rechazan.
func TestAddItem_CantidadInvalida(t *testing.T) {
	repo := newFakeListRepo()
	seedList(repo, "list-1", userAna)
	uc, _ := buildUseCase(repo)

	_, err := uc.AddItem(context.Background(), userAna, "list-1", dto.AddListItemRequest{
		ProductID: "prod-1",
		Quantity:  0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
