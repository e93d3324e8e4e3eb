package usecase

import (
	"context"
	"sort"

	"github.com/jhoicas/PrecioVecino-api/internal/application/dto"
	"github.com/jhoicas/PrecioVecino-api/internal/application/pricing"
	"github.com/jhoicas/PrecioVecino-api/internal/domain"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/repository"
)

// PricingUseCase fachada HTTP del motor de precios: resuelve la lista del
// usuario a renglones del motor y convierte los resultados a DTOs. La lista
// es solo-lectura aquí: cotizar jamás la muta.
type PricingUseCase struct {
	engine    *pricing.Engine
	resolver  *pricing.PriceResolver
	locations pricing.LocationSource
	listRepo  repository.ShoppingListRepository
}

// NewPricingUseCase construye el caso de uso.
func NewPricingUseCase(engine *pricing.Engine, resolver *pricing.PriceResolver, locations pricing.LocationSource, listRepo repository.ShoppingListRepository) *PricingUseCase {
	return &PricingUseCase{engine: engine, resolver: resolver, locations: locations, listRepo: listRepo}
}

// PriceShoppingList cotiza la lista del usuario contra las sucursales dentro
// del radio: vista por sucursal y plan distribuido. La lista debe existir y
// pertenecer al usuario.
func (uc *PricingUseCase) PriceShoppingList(ctx context.Context, userID, listID string, q pricing.GeoQuery) (*dto.ListPricingResponse, error) {
	list, err := uc.listRepo.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, domain.ErrNotFound
	}
	if list.UserID != userID {
		return nil, domain.ErrForbidden
	}

	details, err := uc.listRepo.ListItems(ctx, listID)
	if err != nil {
		return nil, err
	}
	items := make([]pricing.ListItem, 0, len(details))
	for _, d := range details {
		items = append(items, pricing.ListItem{
			ProductID:   d.ProductID,
			ProductName: d.ProductName,
			Quantity:    d.Quantity,
		})
	}

	result, err := uc.engine.PriceShoppingList(ctx, items, q)
	if err != nil {
		return nil, err
	}
	resp := dto.NewListPricingResponse(result)
	return &resp, nil
}

// NearbyStores devuelve las sucursales dentro del radio, ordenadas por
// distancia ascendente.
func (uc *PricingUseCase) NearbyStores(ctx context.Context, q pricing.GeoQuery) ([]dto.NearbyStoreResponse, error) {
	nearby, err := uc.engine.NearbyStores(ctx, q)
	if err != nil {
		return nil, err
	}
	return dto.NewNearbyStoreResponses(nearby), nil
}

// ProductPrices devuelve el precio vigente del producto en cada sucursal que
// tenga al menos una observación, ordenado por precio efectivo ascendente.
// Sin filtro geográfico: es la vista de catálogo, no la de cercanía.
func (uc *PricingUseCase) ProductPrices(ctx context.Context, productID string) ([]dto.ProductBestPriceResponse, error) {
	locs, err := uc.locations.ListAllLocations(ctx)
	if err != nil {
		return nil, err
	}
	locationIDs := make([]string, 0, len(locs))
	locByID := make(map[string]int, len(locs))
	for i, loc := range locs {
		locationIDs = append(locationIDs, loc.ID)
		locByID[loc.ID] = i
	}

	resolved, err := uc.resolver.Resolve(ctx, []string{productID}, locationIDs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProductBestPriceResponse, 0, len(resolved))
	for _, rp := range resolved {
		loc := locs[locByID[rp.StoreLocationID]]
		out = append(out, dto.ProductBestPriceResponse{
			ProductID:       rp.ProductID,
			StoreLocationID: rp.StoreLocationID,
			StoreName:       loc.StoreName,
			StoreLogoURL:    loc.StoreLogoURL,
			Address:         loc.Address,
			City:            loc.City,
			State:           loc.State,
			Price:           rp.Price,
			EffectivePrice:  rp.EffectivePrice,
			SalePrice:       rp.SalePrice,
			Currency:        rp.Currency,
			RecordedAt:      rp.RecordedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EffectivePrice.Equal(out[j].EffectivePrice) {
			return out[i].EffectivePrice.LessThan(out[j].EffectivePrice)
		}
		return out[i].StoreLocationID < out[j].StoreLocationID
	})
	return out, nil
}

// BestPriceForProduct devuelve el mejor precio efectivo de un producto dentro
// del radio, o nil si ninguna sucursal cercana tiene precio conocido.
func (uc *PricingUseCase) BestPriceForProduct(ctx context.Context, productID string, q pricing.GeoQuery) (*dto.ProductBestPriceResponse, error) {
	best, err := uc.engine.BestPriceForProduct(ctx, productID, q)
	if err != nil {
		return nil, err
	}
	if best == nil {
		return nil, nil
	}
	resp := dto.NewProductBestPriceResponse(best)
	return &resp, nil
}
