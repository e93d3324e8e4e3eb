package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para tiendas. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste una tienda.
func (r *StoreRepo) Create(ctx context.Context, store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, description, logo_url, website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		store.ID, store.Name, store.Description, store.LogoURL, store.Website,
		store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID; nil si no existe.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	query := `
		SELECT id, name, description, logo_url, website, created_at, updated_at
		FROM stores WHERE id = $1`
	var s entity.Store
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.LogoURL, &s.Website, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store by id: %w", err)
	}
	return &s, nil
}

// List lista todas las tiendas.
func (r *StoreRepo) List(ctx context.Context) ([]*entity.Store, error) {
	query := `
		SELECT id, name, description, logo_url, website, created_at, updated_at
		FROM stores ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.LogoURL, &s.Website, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza una tienda.
func (r *StoreRepo) Update(ctx context.Context, store *entity.Store) error {
	query := `
		UPDATE stores SET name = $2, description = $3, logo_url = $4, website = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		store.ID, store.Name, store.Description, store.LogoURL, store.Website, store.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

// Delete elimina una tienda por ID.
func (r *StoreRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}

const locationColumns = `id, store_id, address, city, state, zip_code, country, latitude, longitude, phone, hours, created_at, updated_at`

// AddLocation persiste una sucursal.
func (r *StoreRepo) AddLocation(ctx context.Context, loc *entity.StoreLocation) error {
	query := `
		INSERT INTO store_locations (id, store_id, address, city, state, zip_code, country, latitude, longitude, phone, hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		loc.ID, loc.StoreID, loc.Address, loc.City, loc.State, loc.ZipCode, loc.Country,
		loc.Latitude, loc.Longitude, loc.Phone, loc.Hours, loc.CreatedAt, loc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert store location: %w", err)
	}
	return nil
}

// GetLocationByID obtiene una sucursal por ID; nil si no existe.
func (r *StoreRepo) GetLocationByID(ctx context.Context, id string) (*entity.StoreLocation, error) {
	query := `SELECT ` + locationColumns + ` FROM store_locations WHERE id = $1`
	var l entity.StoreLocation
	err := r.q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.StoreID, &l.Address, &l.City, &l.State, &l.ZipCode, &l.Country,
		&l.Latitude, &l.Longitude, &l.Phone, &l.Hours, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store location by id: %w", err)
	}
	return &l, nil
}

// ListLocationsByStore lista las sucursales de una tienda.
func (r *StoreRepo) ListLocationsByStore(ctx context.Context, storeID string) ([]*entity.StoreLocation, error) {
	query := `SELECT ` + locationColumns + ` FROM store_locations WHERE store_id = $1 ORDER BY city, address`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list store locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.StoreLocation
	for rows.Next() {
		var l entity.StoreLocation
		if err := rows.Scan(
			&l.ID, &l.StoreID, &l.Address, &l.City, &l.State, &l.ZipCode, &l.Country,
			&l.Latitude, &l.Longitude, &l.Phone, &l.Hours, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan store location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// UpdateLocation actualiza una sucursal.
func (r *StoreRepo) UpdateLocation(ctx context.Context, loc *entity.StoreLocation) error {
	query := `
		UPDATE store_locations
		SET address = $2, city = $3, state = $4, zip_code = $5, country = $6,
		    latitude = $7, longitude = $8, phone = $9, hours = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		loc.ID, loc.Address, loc.City, loc.State, loc.ZipCode, loc.Country,
		loc.Latitude, loc.Longitude, loc.Phone, loc.Hours, loc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update store location: %w", err)
	}
	return nil
}

// DeleteLocation elimina una sucursal por ID.
func (r *StoreRepo) DeleteLocation(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM store_locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store location: %w", err)
	}
	return nil
}

// ListAllLocations devuelve todas las sucursales con nombre y logo de su
// tienda. El filtro por distancia NO se hace aquí: la consulta entrega los
// candidatos crudos y el motor decide en memoria.
func (r *StoreRepo) ListAllLocations(ctx context.Context) ([]entity.StoreLocationInfo, error) {
	query := `
		SELECT sl.id, sl.store_id, sl.address, sl.city, sl.state, sl.zip_code, sl.country,
		       sl.latitude, sl.longitude, sl.phone, sl.hours, sl.created_at, sl.updated_at,
		       s.name, s.logo_url
		FROM store_locations sl
		JOIN stores s ON s.id = sl.store_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all store locations: %w", err)
	}
	defer rows.Close()
	list := make([]entity.StoreLocationInfo, 0)
	for rows.Next() {
		var info entity.StoreLocationInfo
		if err := rows.Scan(
			&info.ID, &info.StoreID, &info.Address, &info.City, &info.State, &info.ZipCode, &info.Country,
			&info.Latitude, &info.Longitude, &info.Phone, &info.Hours, &info.CreatedAt, &info.UpdatedAt,
			&info.StoreName, &info.StoreLogoURL,
		); err != nil {
			return nil, fmt.Errorf("scan store location info: %w", err)
		}
		list = append(list, info)
	}
	return list, rows.Err()
}
