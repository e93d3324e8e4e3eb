package repository

import (
	"context"

	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
)

// SearchHistoryRepository puerto de persistencia para el historial de
// búsquedas.
type SearchHistoryRepository interface {
	Record(ctx context.Context, entry *entity.SearchEntry) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.SearchEntry, error)
	TopQueriesByUser(ctx context.Context, userID string, limit int) ([]entity.SearchCount, error)
	TopCategoriesByUser(ctx context.Context, userID string, limit int) ([]entity.SearchCount, error)
	PopularQueries(ctx context.Context, days, limit int) ([]entity.SearchCount, error)
	DeleteByUser(ctx context.Context, userID string) error
}
