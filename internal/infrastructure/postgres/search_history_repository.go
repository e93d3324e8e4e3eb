package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/repository"
)

var _ repository.SearchHistoryRepository = (*SearchHistoryRepo)(nil)

// SearchHistoryRepo implementación del puerto SearchHistoryRepository sobre PostgreSQL.
type SearchHistoryRepo struct {
	q Querier
}

// NewSearchHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSearchHistoryRepository(q Querier) *SearchHistoryRepo {
	return &SearchHistoryRepo{q: q}
}

// Record persiste una entrada del historial.
func (r *SearchHistoryRepo) Record(ctx context.Context, entry *entity.SearchEntry) error {
	query := `
		INSERT INTO search_history (id, user_id, query, category, latitude, longitude, result_count, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.UserID, entry.Query, entry.Category,
		entry.Latitude, entry.Longitude, entry.ResultCount, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert search entry: %w", err)
	}
	return nil
}

// ListByUser devuelve las búsquedas recientes del usuario.
func (r *SearchHistoryRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.SearchEntry, error) {
	query := `
		SELECT id, user_id, query, COALESCE(category, ''), latitude, longitude, result_count, created_at
		FROM search_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list search history: %w", err)
	}
	defer rows.Close()
	var list []*entity.SearchEntry
	for rows.Next() {
		var e entity.SearchEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Query, &e.Category, &e.Latitude, &e.Longitude, &e.ResultCount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan search entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// TopQueriesByUser agrega los términos más buscados por el usuario.
func (r *SearchHistoryRepo) TopQueriesByUser(ctx context.Context, userID string, limit int) ([]entity.SearchCount, error) {
	query := `
		SELECT query, COUNT(*) AS n
		FROM search_history
		WHERE user_id = $1
		GROUP BY query
		ORDER BY n DESC, query
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("top queries: %w", err)
	}
	defer rows.Close()
	return collectSearchCounts(rows)
}

// TopCategoriesByUser agrega las categorías más buscadas por el usuario.
func (r *SearchHistoryRepo) TopCategoriesByUser(ctx context.Context, userID string, limit int) ([]entity.SearchCount, error) {
	query := `
		SELECT category, COUNT(*) AS n
		FROM search_history
		WHERE user_id = $1 AND category IS NOT NULL
		GROUP BY category
		ORDER BY n DESC, category
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("top categories: %w", err)
	}
	defer rows.Close()
	return collectSearchCounts(rows)
}

// PopularQueries agrega los términos más buscados por todos los usuarios en
// los últimos días.
func (r *SearchHistoryRepo) PopularQueries(ctx context.Context, days, limit int) ([]entity.SearchCount, error) {
	query := `
		SELECT query, COUNT(*) AS n
		FROM search_history
		WHERE created_at > now() - make_interval(days => $1)
		GROUP BY query
		ORDER BY n DESC, query
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, days, limit)
	if err != nil {
		return nil, fmt.Errorf("popular queries: %w", err)
	}
	defer rows.Close()
	return collectSearchCounts(rows)
}

// DeleteByUser elimina todo el historial de un usuario.
func (r *SearchHistoryRepo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM search_history WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete search history: %w", err)
	}
	return nil
}

func collectSearchCounts(rows pgx.Rows) ([]entity.SearchCount, error) {
	list := make([]entity.SearchCount, 0)
	for rows.Next() {
		var c entity.SearchCount
		if err := rows.Scan(&c.Term, &c.Count); err != nil {
			return nil, fmt.Errorf("scan search count: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
