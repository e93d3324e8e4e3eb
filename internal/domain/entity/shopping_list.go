package entity

import "time"

// ShoppingList lista de compras de un usuario. Al eliminarla se eliminan
// sus ítems en la misma transacción: nunca quedan ítems huérfanos.
type ShoppingList struct {
	ID          string
	UserID      string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ShoppingListItem ítem de una lista: producto, cantidad y estado.
type ShoppingListItem struct {
	ID        string
	ListID    string
	ProductID string
	Quantity  int
	Notes     string
	IsChecked bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShoppingListItemDetail ítem con los datos del producto ya resueltos.
type ShoppingListItemDetail struct {
	ShoppingListItem
	ProductName     string
	ProductBrand    string
	ProductImageURL string
}
