package dto

import "time"

// CreateShoppingListRequest entrada para crear una lista de compras.
type CreateShoppingListRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// UpdateShoppingListRequest entrada para renombrar/describir una lista.
type UpdateShoppingListRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ShoppingListResponse salida de una lista.
type ShoppingListResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ShoppingListWithItemsResponse lista con sus ítems resueltos.
type ShoppingListWithItemsResponse struct {
	ShoppingListResponse
	Items []ShoppingListItemResponse `json:"items"`
}

// AddListItemRequest entrada para agregar un ítem a una lista.
type AddListItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Notes     string `json:"notes"`
}

// UpdateListItemRequest entrada para modificar un ítem (parcial).
type UpdateListItemRequest struct {
	Quantity  *int    `json:"quantity" validate:"omitempty,min=1"`
	Notes     *string `json:"notes"`
	IsChecked *bool   `json:"is_checked"`
}

// ShoppingListItemResponse ítem con los datos del producto.
type ShoppingListItemResponse struct {
	ID              string    `json:"id"`
	ListID          string    `json:"list_id"`
	ProductID       string    `json:"product_id"`
	ProductName     string    `json:"product_name"`
	ProductBrand    string    `json:"product_brand"`
	ProductImageURL string    `json:"product_image_url"`
	Quantity        int       `json:"quantity"`
	Notes           string    `json:"notes"`
	IsChecked       bool      `json:"is_checked"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
