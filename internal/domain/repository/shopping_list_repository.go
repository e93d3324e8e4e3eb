package repository

import (
	"context"

	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
)

// ShoppingListRepository puerto de persistencia para listas de compras y
// sus ítems.
type ShoppingListRepository interface {
	Create(ctx context.Context, list *entity.ShoppingList) error
	GetByID(ctx context.Context, id string) (*entity.ShoppingList, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.ShoppingList, error)
	Update(ctx context.Context, list *entity.ShoppingList) error
	// Delete elimina solo la fila de la lista; el borrado atómico
	// lista+ítems se orquesta vía TxRunner en la capa de aplicación.
	Delete(ctx context.Context, id string) error

	AddItem(ctx context.Context, item *entity.ShoppingListItem) error
	GetItemByID(ctx context.Context, id string) (*entity.ShoppingListItem, error)
	ListItems(ctx context.Context, listID string) ([]entity.ShoppingListItemDetail, error)
	UpdateItem(ctx context.Context, item *entity.ShoppingListItem) error
	DeleteItem(ctx context.Context, id string) error
	DeleteItemsByList(ctx context.Context, listID string) error
}
