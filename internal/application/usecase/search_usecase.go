package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/PrecioVecino-api/internal/application/dto"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/repository"
)

// Límites por defecto del historial de búsquedas.
const (
	defaultHistoryLimit = 20
	defaultTopLimit     = 10
	popularWindowDays   = 7
)

// SearchUseCase historial de búsquedas por usuario y agregados populares.
type SearchUseCase struct {
	repo repository.SearchHistoryRepository
}

// NewSearchUseCase construye el caso de uso.
func NewSearchUseCase(repo repository.SearchHistoryRepository) *SearchUseCase {
	return &SearchUseCase{repo: repo}
}

// Record registra una búsqueda del usuario. Es best-effort desde el punto de
// vista del llamador: fallar aquí no debe romper la búsqueda en sí.
func (uc *SearchUseCase) Record(ctx context.Context, userID, query, category string, lat, lon *float64, resultCount int) error {
	entry := &entity.SearchEntry{
		ID:          uuid.New().String(),
		UserID:      userID,
		Query:       query,
		Category:    category,
		Latitude:    lat,
		Longitude:   lon,
		ResultCount: resultCount,
		CreatedAt:   time.Now(),
	}
	return uc.repo.Record(ctx, entry)
}

// History devuelve las búsquedas recientes del usuario.
func (uc *SearchUseCase) History(ctx context.Context, userID string, limit int) ([]dto.SearchEntryResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	entries, err := uc.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SearchEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.SearchEntryResponse{
			ID:          e.ID,
			Query:       e.Query,
			Category:    e.Category,
			Latitude:    e.Latitude,
			Longitude:   e.Longitude,
			ResultCount: e.ResultCount,
			CreatedAt:   e.CreatedAt,
		})
	}
	return out, nil
}

// Stats agrega los términos y categorías más buscados por el usuario.
func (uc *SearchUseCase) Stats(ctx context.Context, userID string) (*dto.SearchStatsResponse, error) {
	queries, err := uc.repo.TopQueriesByUser(ctx, userID, defaultTopLimit)
	if err != nil {
		return nil, err
	}
	categories, err := uc.repo.TopCategoriesByUser(ctx, userID, defaultTopLimit)
	if err != nil {
		return nil, err
	}
	return &dto.SearchStatsResponse{
		TopQueries:    toSearchCounts(queries),
		TopCategories: toSearchCounts(categories),
	}, nil
}

// Popular agrega los términos más buscados por todos los usuarios en la
// ventana reciente (days, por defecto 7).
func (uc *SearchUseCase) Popular(ctx context.Context, days, limit int) ([]dto.SearchCountResponse, error) {
	if days <= 0 {
		days = popularWindowDays
	}
	if limit <= 0 {
		limit = defaultTopLimit
	}
	counts, err := uc.repo.PopularQueries(ctx, days, limit)
	if err != nil {
		return nil, err
	}
	return toSearchCounts(counts), nil
}

// ClearHistory elimina todo el historial del usuario.
func (uc *SearchUseCase) ClearHistory(ctx context.Context, userID string) error {
	return uc.repo.DeleteByUser(ctx, userID)
}

func toSearchCounts(counts []entity.SearchCount) []dto.SearchCountResponse {
	out := make([]dto.SearchCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.SearchCountResponse{Term: c.Term, Count: c.Count})
	}
	return out
}
