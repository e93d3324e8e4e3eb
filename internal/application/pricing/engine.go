package pricing

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ListItem entrada del motor: un renglón de la lista de compras ya resuelto
// por el colaborador (la lista es solo-lectura para el motor).
type ListItem struct {
	ProductID   string
	ProductName string
	Quantity    int
}

// QuoteItem renglón cotizado en una sucursal concreta.
type QuoteItem struct {
	ProductID   string
	ProductName string
	UnitPrice   decimal.Decimal // precio efectivo unitario
	SalePrice   *decimal.Decimal
	Quantity    int
	TotalPrice  decimal.Decimal
}

// MissingItem renglón de la lista sin precio conocido en esa sucursal.
type MissingItem struct {
	ProductID string
	Quantity  int
}

// StoreQuote cotización de la lista en una sola sucursal: lo que sí se puede
// comprar ahí (con subtotal) y lo que falta.
type StoreQuote struct {
	StoreLocationID string
	StoreName       string
	StoreLogoURL    string
	Address         string
	City            string
	State           string
	DistanceKm      float64
	Items           []QuoteItem
	TotalPrice      decimal.Decimal
	MissingItems    []MissingItem
}

// BestPickItem renglón de la asignación distribuida: dónde comprar cada
// producto al menor precio efectivo.
type BestPickItem struct {
	ProductID       string
	ProductName     string
	UnitPrice       decimal.Decimal
	Quantity        int
	TotalPrice      decimal.Decimal
	StoreLocationID string
	StoreName       string
}

// BestPickStore sucursal tocada por la asignación distribuida (deduplicada).
type BestPickStore struct {
	StoreLocationID string
	StoreName       string
	StoreLogoURL    string
	Address         string
	City            string
	State           string
	DistanceKm      float64
}

// BestDistribution plan de compra distribuido: cada renglón en su sucursal
// más barata, posiblemente varias sucursales. NO es una recomendación de
// tienda única.
type BestDistribution struct {
	Items      []BestPickItem
	Stores     []BestPickStore
	TotalPrice decimal.Decimal
}

// ListPricing las dos vistas complementarias para una lista de compras.
// Garantía: BestPrice.TotalPrice <= subtotal de cualquier StoreQuote que
// cubra la lista completa.
type ListPricing struct {
	ByStore   []StoreQuote
	BestPrice BestDistribution
}

// ProductBestPrice mejor precio de un solo producto dentro del radio.
type ProductBestPrice struct {
	ProductID       string
	StoreLocationID string
	StoreName       string
	StoreLogoURL    string
	Address         string
	City            string
	State           string
	DistanceKm      float64
	Price           decimal.Decimal
	EffectivePrice  decimal.Decimal
	SalePrice       *decimal.Decimal
	Currency        string
	RecordedAt      time.Time
}

// Engine orquesta ProximityFilter y PriceResolver para producir las vistas
// de precios. No tiene estado mutable compartido: puede usarse desde muchas
// peticiones concurrentes sin sincronización.
type Engine struct {
	filter   *ProximityFilter
	resolver *PriceResolver
}

// NewEngine construye el motor.
func NewEngine(filter *ProximityFilter, resolver *PriceResolver) *Engine {
	return &Engine{filter: filter, resolver: resolver}
}

// NearbyStores expone el filtro de proximidad tal cual.
func (e *Engine) NearbyStores(ctx context.Context, q GeoQuery) ([]NearbyLocation, error) {
	return e.filter.Nearby(ctx, q)
}

// PriceShoppingList produce las dos vistas para los renglones dados.
//
// Lista vacía corta en seco con un resultado vacío, sin consultar precios.
// "No hay precios en la zona" es un resultado válido (vistas vacías), no un
// error. Cualquier falla de almacenamiento aborta el cómputo completo: nunca
// se devuelven resultados parciales.
func (e *Engine) PriceShoppingList(ctx context.Context, items []ListItem, q GeoQuery) (*ListPricing, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return emptyListPricing(), nil
	}

	nearby, err := e.filter.Nearby(ctx, q)
	if err != nil {
		return nil, err
	}

	productIDs := make([]string, 0, len(items))
	for _, it := range items {
		productIDs = append(productIDs, it.ProductID)
	}
	locationIDs := make([]string, 0, len(nearby))
	locationByID := make(map[string]NearbyLocation, len(nearby))
	for _, nl := range nearby {
		locationIDs = append(locationIDs, nl.Location.ID)
		locationByID[nl.Location.ID] = nl
	}

	resolved, err := e.resolver.Resolve(ctx, productIDs, locationIDs)
	if err != nil {
		return nil, err
	}

	out := &ListPricing{
		ByStore:   e.buildStoreQuotes(items, nearby, resolved),
		BestPrice: e.buildBestDistribution(items, locationIDs, locationByID, resolved),
	}
	return out, nil
}

// buildStoreQuotes vista por sucursal: solo sucursales con al menos un
// renglón cotizable, ordenadas por subtotal ascendente (empate por ID).
func (e *Engine) buildStoreQuotes(items []ListItem, nearby []NearbyLocation, resolved map[PairKey]ResolvedPrice) []StoreQuote {
	quotes := make([]StoreQuote, 0, len(nearby))
	for _, nl := range nearby {
		quote := StoreQuote{
			StoreLocationID: nl.Location.ID,
			StoreName:       nl.Location.StoreName,
			StoreLogoURL:    nl.Location.StoreLogoURL,
			Address:         nl.Location.Address,
			City:            nl.Location.City,
			State:           nl.Location.State,
			DistanceKm:      nl.DistanceKm,
			Items:           make([]QuoteItem, 0, len(items)),
			TotalPrice:      decimal.Zero,
			MissingItems:    make([]MissingItem, 0),
		}
		for _, it := range items {
			rp, ok := resolved[PairKey{ProductID: it.ProductID, StoreLocationID: nl.Location.ID}]
			if !ok {
				quote.MissingItems = append(quote.MissingItems, MissingItem{ProductID: it.ProductID, Quantity: it.Quantity})
				continue
			}
			lineTotal := rp.EffectivePrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
			quote.Items = append(quote.Items, QuoteItem{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				UnitPrice:   rp.EffectivePrice,
				SalePrice:   rp.SalePrice,
				Quantity:    it.Quantity,
				TotalPrice:  lineTotal,
			})
			quote.TotalPrice = quote.TotalPrice.Add(lineTotal)
		}
		// Sucursales sin ningún renglón cotizable quedan fuera de la vista.
		if len(quote.Items) > 0 {
			quotes = append(quotes, quote)
		}
	}

	sort.Slice(quotes, func(i, j int) bool {
		if !quotes[i].TotalPrice.Equal(quotes[j].TotalPrice) {
			return quotes[i].TotalPrice.LessThan(quotes[j].TotalPrice)
		}
		return quotes[i].StoreLocationID < quotes[j].StoreLocationID
	})
	return quotes
}

// buildBestDistribution vista distribuida: para cada renglón elige la
// sucursal con menor precio efectivo (empate: menor ID de sucursal).
func (e *Engine) buildBestDistribution(items []ListItem, locationIDs []string, locationByID map[string]NearbyLocation, resolved map[PairKey]ResolvedPrice) BestDistribution {
	dist := BestDistribution{
		Items:      make([]BestPickItem, 0, len(items)),
		Stores:     make([]BestPickStore, 0),
		TotalPrice: decimal.Zero,
	}
	seenStores := make(map[string]bool)

	for _, it := range items {
		var best *ResolvedPrice
		for _, locID := range locationIDs {
			rp, ok := resolved[PairKey{ProductID: it.ProductID, StoreLocationID: locID}]
			if !ok {
				continue
			}
			if best == nil ||
				rp.EffectivePrice.LessThan(best.EffectivePrice) ||
				(rp.EffectivePrice.Equal(best.EffectivePrice) && rp.StoreLocationID < best.StoreLocationID) {
				cp := rp
				best = &cp
			}
		}
		if best == nil {
			// Renglón sin precio en ninguna sucursal: queda fuera del plan.
			continue
		}

		nl := locationByID[best.StoreLocationID]
		lineTotal := best.EffectivePrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		dist.Items = append(dist.Items, BestPickItem{
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			UnitPrice:       best.EffectivePrice,
			Quantity:        it.Quantity,
			TotalPrice:      lineTotal,
			StoreLocationID: best.StoreLocationID,
			StoreName:       nl.Location.StoreName,
		})
		dist.TotalPrice = dist.TotalPrice.Add(lineTotal)

		if !seenStores[best.StoreLocationID] {
			seenStores[best.StoreLocationID] = true
			dist.Stores = append(dist.Stores, BestPickStore{
				StoreLocationID: best.StoreLocationID,
				StoreName:       nl.Location.StoreName,
				StoreLogoURL:    nl.Location.StoreLogoURL,
				Address:         nl.Location.Address,
				City:            nl.Location.City,
				State:           nl.Location.State,
				DistanceKm:      nl.DistanceKm,
			})
		}
	}
	return dist
}

// BestPriceForProduct pipeline restringido a un producto: devuelve el
// candidato de menor precio efectivo dentro del radio, o nil si ningún par
// resuelve ("no encontrado" es un resultado opcional, no un error).
func (e *Engine) BestPriceForProduct(ctx context.Context, productID string, q GeoQuery) (*ProductBestPrice, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	nearby, err := e.filter.Nearby(ctx, q)
	if err != nil {
		return nil, err
	}
	locationIDs := make([]string, 0, len(nearby))
	locationByID := make(map[string]NearbyLocation, len(nearby))
	for _, nl := range nearby {
		locationIDs = append(locationIDs, nl.Location.ID)
		locationByID[nl.Location.ID] = nl
	}

	resolved, err := e.resolver.Resolve(ctx, []string{productID}, locationIDs)
	if err != nil {
		return nil, err
	}

	var best *ResolvedPrice
	for _, locID := range locationIDs {
		rp, ok := resolved[PairKey{ProductID: productID, StoreLocationID: locID}]
		if !ok {
			continue
		}
		if best == nil ||
			rp.EffectivePrice.LessThan(best.EffectivePrice) ||
			(rp.EffectivePrice.Equal(best.EffectivePrice) && rp.StoreLocationID < best.StoreLocationID) {
			cp := rp
			best = &cp
		}
	}
	if best == nil {
		return nil, nil
	}

	nl := locationByID[best.StoreLocationID]
	return &ProductBestPrice{
		ProductID:       productID,
		StoreLocationID: best.StoreLocationID,
		StoreName:       nl.Location.StoreName,
		StoreLogoURL:    nl.Location.StoreLogoURL,
		Address:         nl.Location.Address,
		City:            nl.Location.City,
		State:           nl.Location.State,
		DistanceKm:      nl.DistanceKm,
		Price:           best.Price,
		EffectivePrice:  best.EffectivePrice,
		SalePrice:       best.SalePrice,
		Currency:        best.Currency,
		RecordedAt:      best.RecordedAt,
	}, nil
}

func emptyListPricing() *ListPricing {
	return &ListPricing{
		ByStore: make([]StoreQuote, 0),
		BestPrice: BestDistribution{
			Items:      make([]BestPickItem, 0),
			Stores:     make([]BestPickStore, 0),
			TotalPrice: decimal.Zero,
		},
	}
}
