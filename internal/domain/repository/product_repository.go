package repository

import (
	"context"

	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	// Search busca por nombre, descripción o marca (ILIKE sobre el patrón).
	Search(ctx context.Context, pattern string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
