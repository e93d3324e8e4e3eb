package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/repository"
)

var _ repository.PriceRepository = (*PriceRepo)(nil)

// PriceRepo implementación del puerto PriceRepository sobre PostgreSQL.
type PriceRepo struct {
	q Querier
}

// NewPriceRepository construye el adaptador de persistencia para observaciones de precio. Pasar pool o tx (Querier).
func NewPriceRepository(q Querier) *PriceRepo {
	return &PriceRepo{q: q}
}

const pricePointColumns = `id, product_id, store_location_id, price, sale_price, sale_ends, currency, reported_by, recorded_at, updated_at`

// Record persiste una observación nueva de precio.
func (r *PriceRepo) Record(ctx context.Context, pp *entity.PricePoint) error {
	query := `
		INSERT INTO price_points (id, product_id, store_location_id, price, sale_price, sale_ends, currency, reported_by, recorded_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		pp.ID, pp.ProductID, pp.StoreLocationID, pp.Price, pp.SalePrice, pp.SaleEnds,
		pp.Currency, pp.ReportedBy, pp.RecordedAt, pp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert price point: %w", err)
	}
	return nil
}

// GetByID obtiene una observación por ID; nil si no existe.
func (r *PriceRepo) GetByID(ctx context.Context, id string) (*entity.PricePoint, error) {
	query := `SELECT ` + pricePointColumns + ` FROM price_points WHERE id = $1`
	pp, err := scanPricePoint(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price point by id: %w", err)
	}
	return pp, nil
}

// ListByProductsAndLocations devuelve TODAS las observaciones de los pares
// solicitados, sin deduplicar: elegir la vigente por par es responsabilidad
// del resolver, no de SQL.
func (r *PriceRepo) ListByProductsAndLocations(ctx context.Context, productIDs, locationIDs []string) ([]entity.PricePoint, error) {
	if len(productIDs) == 0 || len(locationIDs) == 0 {
		return make([]entity.PricePoint, 0), nil
	}
	query := `
		SELECT ` + pricePointColumns + `
		FROM price_points
		WHERE product_id = ANY($1) AND store_location_id = ANY($2)`
	rows, err := r.q.Query(ctx, query, productIDs, locationIDs)
	if err != nil {
		return nil, fmt.Errorf("list price points: %w", err)
	}
	defer rows.Close()
	return collectPricePoints(rows)
}

// History devuelve las observaciones de un par (producto, sucursal), de la
// más reciente a la más antigua.
func (r *PriceRepo) History(ctx context.Context, productID, storeLocationID string) ([]entity.PricePoint, error) {
	query := `
		SELECT ` + pricePointColumns + `
		FROM price_points
		WHERE product_id = $1 AND store_location_id = $2
		ORDER BY recorded_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query, productID, storeLocationID)
	if err != nil {
		return nil, fmt.Errorf("price history: %w", err)
	}
	defer rows.Close()
	return collectPricePoints(rows)
}

// Correct reescribe montos de una observación en sitio. No toca recorded_at:
// la corrección no cambia qué observación es la más reciente. Devuelve la
// fila actualizada; nil si no existe.
func (r *PriceRepo) Correct(ctx context.Context, id string, c repository.PriceCorrection) (*entity.PricePoint, error) {
	query := `
		UPDATE price_points
		SET price = $2, sale_price = $3, sale_ends = $4, updated_at = now()
		WHERE id = $1
		RETURNING ` + pricePointColumns
	pp, err := scanPricePoint(r.q.QueryRow(ctx, query, id, c.Price, c.SalePrice, c.SaleEnds))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("correct price point: %w", err)
	}
	return pp, nil
}

// Delete elimina una observación por ID.
func (r *PriceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM price_points WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete price point: %w", err)
	}
	return nil
}

func scanPricePoint(row pgx.Row) (*entity.PricePoint, error) {
	var pp entity.PricePoint
	err := row.Scan(
		&pp.ID, &pp.ProductID, &pp.StoreLocationID, &pp.Price, &pp.SalePrice, &pp.SaleEnds,
		&pp.Currency, &pp.ReportedBy, &pp.RecordedAt, &pp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pp, nil
}

func collectPricePoints(rows pgx.Rows) ([]entity.PricePoint, error) {
	list := make([]entity.PricePoint, 0)
	for rows.Next() {
		pp, err := scanPricePoint(rows)
		if err != nil {
			return nil, fmt.Errorf("scan price point: %w", err)
		}
		list = append(list, *pp)
	}
	return list, rows.Err()
}
