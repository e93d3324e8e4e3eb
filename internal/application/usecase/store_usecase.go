package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/PrecioVecino-api/internal/application/dto"
	"github.com/jhoicas/PrecioVecino-api/internal/domain"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/repository"
	"github.com/jhoicas/PrecioVecino-api/pkg/geo"
)

// StoreUseCase casos de uso CRUD para tiendas y sus sucursales.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Create crea una tienda.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	store := &entity.Store{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		LogoURL:     in.LogoURL,
		Website:     in.Website,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByID obtiene una tienda con sus sucursales; nil si no existe.
func (uc *StoreUseCase) GetByID(ctx context.Context, id string) (*dto.StoreWithLocationsResponse, error) {
	store, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	locs, err := uc.repo.ListLocationsByStore(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.StoreWithLocationsResponse{
		StoreResponse: *toStoreResponse(store),
		Locations:     make([]dto.StoreLocationResponse, 0, len(locs)),
	}
	for _, loc := range locs {
		out.Locations = append(out.Locations, *toLocationResponse(loc))
	}
	return out, nil
}

// List lista todas las tiendas.
func (uc *StoreUseCase) List(ctx context.Context) ([]dto.StoreResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStoreResponse(s))
	}
	return items, nil
}

// Update actualiza una tienda (campos parciales); nil si no existe.
func (uc *StoreUseCase) Update(ctx context.Context, id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		store.Name = *in.Name
	}
	if in.Description != nil {
		store.Description = *in.Description
	}
	if in.LogoURL != nil {
		store.LogoURL = *in.LogoURL
	}
	if in.Website != nil {
		store.Website = *in.Website
	}
	store.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// Delete elimina una tienda por ID.
func (uc *StoreUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// AddLocation agrega una sucursal a una tienda. Valida coordenadas antes de
// persistir: una sucursal con coordenadas inválidas jamás entra al sistema.
func (uc *StoreUseCase) AddLocation(ctx context.Context, storeID string, in dto.CreateStoreLocationRequest) (*dto.StoreLocationResponse, error) {
	store, err := uc.repo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	if err := geo.ValidateCoordinate(in.Latitude, in.Longitude); err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	loc := &entity.StoreLocation{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		ZipCode:   in.ZipCode,
		Country:   in.Country,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Phone:     in.Phone,
		Hours:     in.Hours,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.AddLocation(ctx, loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// UpdateLocation actualiza una sucursal (campos parciales); nil si no existe.
func (uc *StoreUseCase) UpdateLocation(ctx context.Context, id string, in dto.UpdateStoreLocationRequest) (*dto.StoreLocationResponse, error) {
	loc, err := uc.repo.GetLocationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, nil
	}
	if in.Address != nil {
		loc.Address = *in.Address
	}
	if in.City != nil {
		loc.City = *in.City
	}
	if in.State != nil {
		loc.State = *in.State
	}
	if in.ZipCode != nil {
		loc.ZipCode = *in.ZipCode
	}
	if in.Country != nil {
		loc.Country = *in.Country
	}
	if in.Latitude != nil {
		loc.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		loc.Longitude = *in.Longitude
	}
	if err := geo.ValidateCoordinate(loc.Latitude, loc.Longitude); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Phone != nil {
		loc.Phone = *in.Phone
	}
	if in.Hours != nil {
		loc.Hours = *in.Hours
	}
	loc.UpdatedAt = time.Now()
	if err := uc.repo.UpdateLocation(ctx, loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// DeleteLocation elimina una sucursal por ID.
func (uc *StoreUseCase) DeleteLocation(ctx context.Context, id string) error {
	return uc.repo.DeleteLocation(ctx, id)
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		LogoURL:     s.LogoURL,
		Website:     s.Website,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toLocationResponse(l *entity.StoreLocation) *dto.StoreLocationResponse {
	if l == nil {
		return nil
	}
	return &dto.StoreLocationResponse{
		ID:        l.ID,
		StoreID:   l.StoreID,
		Address:   l.Address,
		City:      l.City,
		State:     l.State,
		ZipCode:   l.ZipCode,
		Country:   l.Country,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Phone:     l.Phone,
		Hours:     l.Hours,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
