package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/repository"
)

var _ repository.ShoppingListRepository = (*ShoppingListRepo)(nil)

// ShoppingListRepo implementación del puerto ShoppingListRepository sobre
// PostgreSQL. Se construye sobre pool o tx (Querier): el borrado atómico
// lista+ítems corre sobre el mismo repo atado a una transacción.
type ShoppingListRepo struct {
	q Querier
}

// NewShoppingListRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShoppingListRepository(q Querier) *ShoppingListRepo {
	return &ShoppingListRepo{q: q}
}

// Create persiste una lista de compras.
func (r *ShoppingListRepo) Create(ctx context.Context, list *entity.ShoppingList) error {
	query := `
		INSERT INTO shopping_lists (id, user_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		list.ID, list.UserID, list.Name, list.Description, list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shopping list: %w", err)
	}
	return nil
}

// GetByID obtiene una lista por ID; nil si no existe.
func (r *ShoppingListRepo) GetByID(ctx context.Context, id string) (*entity.ShoppingList, error) {
	query := `
		SELECT id, user_id, name, description, created_at, updated_at
		FROM shopping_lists WHERE id = $1`
	var l entity.ShoppingList
	err := r.q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.UserID, &l.Name, &l.Description, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shopping list by id: %w", err)
	}
	return &l, nil
}

// ListByUser lista las listas de un usuario, de la más reciente a la más antigua.
func (r *ShoppingListRepo) ListByUser(ctx context.Context, userID string) ([]*entity.ShoppingList, error) {
	query := `
		SELECT id, user_id, name, description, created_at, updated_at
		FROM shopping_lists WHERE user_id = $1 ORDER BY updated_at DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list shopping lists: %w", err)
	}
	defer rows.Close()
	var list []*entity.ShoppingList
	for rows.Next() {
		var l entity.ShoppingList
		if err := rows.Scan(&l.ID, &l.UserID, &l.Name, &l.Description, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shopping list: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza nombre y descripción de una lista.
func (r *ShoppingListRepo) Update(ctx context.Context, list *entity.ShoppingList) error {
	query := `
		UPDATE shopping_lists SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, list.ID, list.Name, list.Description, list.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update shopping list: %w", err)
	}
	return nil
}

// Delete elimina solo la fila de la lista. El borrado atómico lista+ítems se
// orquesta en la capa de aplicación vía TxRunner.
func (r *ShoppingListRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM shopping_lists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shopping list: %w", err)
	}
	return nil
}

// AddItem persiste un ítem de lista.
func (r *ShoppingListRepo) AddItem(ctx context.Context, item *entity.ShoppingListItem) error {
	query := `
		INSERT INTO shopping_list_items (id, list_id, product_id, quantity, notes, is_checked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.ListID, item.ProductID, item.Quantity, item.Notes, item.IsChecked,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shopping list item: %w", err)
	}
	return nil
}

// GetItemByID obtiene un ítem por ID; nil si no existe.
func (r *ShoppingListRepo) GetItemByID(ctx context.Context, id string) (*entity.ShoppingListItem, error) {
	query := `
		SELECT id, list_id, product_id, quantity, notes, is_checked, created_at, updated_at
		FROM shopping_list_items WHERE id = $1`
	var it entity.ShoppingListItem
	err := r.q.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.ListID, &it.ProductID, &it.Quantity, &it.Notes, &it.IsChecked,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shopping list item by id: %w", err)
	}
	return &it, nil
}

// ListItems lista los ítems de una lista con los datos del producto resueltos.
func (r *ShoppingListRepo) ListItems(ctx context.Context, listID string) ([]entity.ShoppingListItemDetail, error) {
	query := `
		SELECT i.id, i.list_id, i.product_id, i.quantity, i.notes, i.is_checked, i.created_at, i.updated_at,
		       p.name, p.brand, p.image_url
		FROM shopping_list_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.list_id = $1
		ORDER BY i.created_at`
	rows, err := r.q.Query(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("list shopping list items: %w", err)
	}
	defer rows.Close()
	list := make([]entity.ShoppingListItemDetail, 0)
	for rows.Next() {
		var d entity.ShoppingListItemDetail
		if err := rows.Scan(
			&d.ID, &d.ListID, &d.ProductID, &d.Quantity, &d.Notes, &d.IsChecked,
			&d.CreatedAt, &d.UpdatedAt,
			&d.ProductName, &d.ProductBrand, &d.ProductImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan shopping list item: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// UpdateItem actualiza cantidad, notas y estado de un ítem.
func (r *ShoppingListRepo) UpdateItem(ctx context.Context, item *entity.ShoppingListItem) error {
	query := `
		UPDATE shopping_list_items SET quantity = $2, notes = $3, is_checked = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, item.ID, item.Quantity, item.Notes, item.IsChecked, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update shopping list item: %w", err)
	}
	return nil
}

// DeleteItem elimina un ítem por ID.
func (r *ShoppingListRepo) DeleteItem(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM shopping_list_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shopping list item: %w", err)
	}
	return nil
}

// DeleteItemsByList elimina todos los ítems de una lista.
func (r *ShoppingListRepo) DeleteItemsByList(ctx context.Context, listID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM shopping_list_items WHERE list_id = $1`, listID)
	if err != nil {
		return fmt.Errorf("delete shopping list items: %w", err)
	}
	return nil
}
