package repository

import (
	"context"

	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
)

// StoreRepository puerto de persistencia para Store y sus sucursales.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	List(ctx context.Context) ([]*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id string) error

	AddLocation(ctx context.Context, loc *entity.StoreLocation) error
	GetLocationByID(ctx context.Context, id string) (*entity.StoreLocation, error)
	ListLocationsByStore(ctx context.Context, storeID string) ([]*entity.StoreLocation, error)
	UpdateLocation(ctx context.Context, loc *entity.StoreLocation) error
	DeleteLocation(ctx context.Context, id string) error

	// ListAllLocations devuelve todas las sucursales con datos de tienda.
	// Es la fuente de candidatos del filtro de proximidad; el cálculo de
	// distancia NO vive en SQL sino en el motor.
	ListAllLocations(ctx context.Context) ([]entity.StoreLocationInfo, error)
}
