package shoppinglist

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/PrecioVecino-api/internal/application/dto"
	"github.com/jhoicas/PrecioVecino-api/internal/domain"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/repository"
)

// UseCase casos de uso de listas de compras. Todas las operaciones están
// acotadas al dueño: un usuario solo ve y muta sus propias listas.
type UseCase struct {
	repo        repository.ShoppingListRepository
	productRepo repository.ProductRepository
	tx          TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ShoppingListRepository, productRepo repository.ProductRepository, tx TxRunner) *UseCase {
	return &UseCase{repo: repo, productRepo: productRepo, tx: tx}
}

// Create crea una lista para el usuario.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateShoppingListRequest) (*dto.ShoppingListResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	list := &entity.ShoppingList{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, list); err != nil {
		return nil, err
	}
	return toListResponse(list), nil
}

// GetByID obtiene una lista del usuario con sus ítems; nil si no existe.
// ErrForbidden si la lista es de otro usuario.
func (uc *UseCase) GetByID(ctx context.Context, userID, id string) (*dto.ShoppingListWithItemsResponse, error) {
	list, err := uc.ownedList(ctx, userID, id)
	if err != nil || list == nil {
		return nil, err
	}
	items, err := uc.repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.ShoppingListWithItemsResponse{
		ShoppingListResponse: *toListResponse(list),
		Items:                make([]dto.ShoppingListItemResponse, 0, len(items)),
	}
	for i := range items {
		out.Items = append(out.Items, toItemResponse(&items[i]))
	}
	return out, nil
}

// ListByUser lista las listas del usuario.
func (uc *UseCase) ListByUser(ctx context.Context, userID string) ([]dto.ShoppingListResponse, error) {
	lists, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShoppingListResponse, 0, len(lists))
	for _, l := range lists {
		out = append(out, *toListResponse(l))
	}
	return out, nil
}

// Update renombra o re-describe una lista del usuario; nil si no existe.
func (uc *UseCase) Update(ctx context.Context, userID, id string, in dto.UpdateShoppingListRequest) (*dto.ShoppingListResponse, error) {
	list, err := uc.ownedList(ctx, userID, id)
	if err != nil || list == nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		list.Name = *in.Name
	}
	if in.Description != nil {
		list.Description = *in.Description
	}
	list.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, list); err != nil {
		return nil, err
	}
	return toListResponse(list), nil
}

// Delete elimina la lista y todos sus ítems en una sola transacción.
// Nunca quedan ítems huérfanos ni una lista a medio borrar.
func (uc *UseCase) Delete(ctx context.Context, userID, id string) error {
	list, err := uc.ownedList(ctx, userID, id)
	if err != nil {
		return err
	}
	if list == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(txRepo repository.ShoppingListRepository) error {
		if err := txRepo.DeleteItemsByList(ctx, id); err != nil {
			return err
		}
		return txRepo.Delete(ctx, id)
	})
}

// AddItem agrega un producto a la lista del usuario.
func (uc *UseCase) AddItem(ctx context.Context, userID, listID string, in dto.AddListItemRequest) (*dto.ShoppingListItemResponse, error) {
	list, err := uc.ownedList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	item := &entity.ShoppingListItem{
		ID:        uuid.New().String(),
		ListID:    listID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Notes:     in.Notes,
		IsChecked: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	resp := toItemResponse(&entity.ShoppingListItemDetail{
		ShoppingListItem: *item,
		ProductName:      product.Name,
		ProductBrand:     product.Brand,
		ProductImageURL:  product.ImageURL,
	})
	return &resp, nil
}

// UpdateItem modifica cantidad, notas o estado de un ítem; nil si no existe.
func (uc *UseCase) UpdateItem(ctx context.Context, userID, listID, itemID string, in dto.UpdateListItemRequest) (*dto.ShoppingListItemResponse, error) {
	list, err := uc.ownedList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.ListID != listID {
		return nil, nil
	}
	if in.Quantity != nil {
		if *in.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}
	if in.IsChecked != nil {
		item.IsChecked = *in.IsChecked
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	detail := entity.ShoppingListItemDetail{ShoppingListItem: *item}
	if product != nil {
		detail.ProductName = product.Name
		detail.ProductBrand = product.Brand
		detail.ProductImageURL = product.ImageURL
	}
	resp := toItemResponse(&detail)
	return &resp, nil
}

// DeleteItem elimina un ítem de la lista del usuario.
func (uc *UseCase) DeleteItem(ctx context.Context, userID, listID, itemID string) error {
	list, err := uc.ownedList(ctx, userID, listID)
	if err != nil {
		return err
	}
	if list == nil {
		return domain.ErrNotFound
	}
	item, err := uc.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil || item.ListID != listID {
		return domain.ErrNotFound
	}
	return uc.repo.DeleteItem(ctx, itemID)
}

// ownedList devuelve la lista si existe y pertenece al usuario.
// (nil, nil) si no existe; ErrForbidden si es de otro usuario.
func (uc *UseCase) ownedList(ctx context.Context, userID, id string) (*entity.ShoppingList, error) {
	list, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, nil
	}
	if list.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return list, nil
}

func toListResponse(l *entity.ShoppingList) *dto.ShoppingListResponse {
	if l == nil {
		return nil
	}
	return &dto.ShoppingListResponse{
		ID:          l.ID,
		UserID:      l.UserID,
		Name:        l.Name,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toItemResponse(d *entity.ShoppingListItemDetail) dto.ShoppingListItemResponse {
	return dto.ShoppingListItemResponse{
		ID:              d.ID,
		ListID:          d.ListID,
		ProductID:       d.ProductID,
		ProductName:     d.ProductName,
		ProductBrand:    d.ProductBrand,
		ProductImageURL: d.ProductImageURL,
		Quantity:        d.Quantity,
		Notes:           d.Notes,
		IsChecked:       d.IsChecked,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}
