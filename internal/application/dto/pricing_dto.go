package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PrecioVecino-api/internal/application/pricing"
)

// QuoteItemResponse renglón cotizado en una sucursal.
type QuoteItemResponse struct {
	ProductID   string           `json:"product_id"`
	ProductName string           `json:"product_name"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	SalePrice   *decimal.Decimal `json:"sale_price"`
	Quantity    int              `json:"quantity"`
	TotalPrice  decimal.Decimal  `json:"total_price"`
}

// MissingItemResponse renglón sin precio conocido en esa sucursal.
type MissingItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// StoreQuoteResponse cotización de la lista en una sucursal.
type StoreQuoteResponse struct {
	StoreLocationID string                `json:"store_location_id"`
	StoreName       string                `json:"store_name"`
	StoreLogoURL    string                `json:"store_logo_url"`
	Address         string                `json:"address"`
	City            string                `json:"city"`
	State           string                `json:"state"`
	DistanceKm      float64               `json:"distance_km"`
	Items           []QuoteItemResponse   `json:"items"`
	TotalPrice      decimal.Decimal       `json:"total_price"`
	MissingItems    []MissingItemResponse `json:"missing_items"`
}

// BestPickItemResponse renglón del plan distribuido.
type BestPickItemResponse struct {
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Quantity        int             `json:"quantity"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	StoreLocationID string          `json:"store_location_id"`
	StoreName       string          `json:"store_name"`
}

// BestPickStoreResponse sucursal tocada por el plan distribuido.
type BestPickStoreResponse struct {
	StoreLocationID string  `json:"store_location_id"`
	StoreName       string  `json:"store_name"`
	StoreLogoURL    string  `json:"store_logo_url"`
	Address         string  `json:"address"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	DistanceKm      float64 `json:"distance_km"`
}

// BestDistributionResponse plan de compra distribuido entre sucursales.
type BestDistributionResponse struct {
	Items      []BestPickItemResponse  `json:"items"`
	Stores     []BestPickStoreResponse `json:"stores"`
	TotalPrice decimal.Decimal         `json:"total_price"`
}

// ListPricingResponse las dos vistas de precios de una lista de compras.
type ListPricingResponse struct {
	ByStore   []StoreQuoteResponse     `json:"by_store"`
	BestPrice BestDistributionResponse `json:"best_price"`
}

// ProductBestPriceResponse mejor precio de un producto dentro del radio.
type ProductBestPriceResponse struct {
	ProductID       string           `json:"product_id"`
	StoreLocationID string           `json:"store_location_id"`
	StoreName       string           `json:"store_name"`
	StoreLogoURL    string           `json:"store_logo_url"`
	Address         string           `json:"address"`
	City            string           `json:"city"`
	State           string           `json:"state"`
	DistanceKm      float64          `json:"distance_km"`
	Price           decimal.Decimal  `json:"price"`
	EffectivePrice  decimal.Decimal  `json:"effective_price"`
	SalePrice       *decimal.Decimal `json:"sale_price"`
	Currency        string           `json:"currency"`
	RecordedAt      time.Time        `json:"recorded_at"`
}

// NewListPricingResponse convierte el resultado del motor a su forma HTTP.
func NewListPricingResponse(lp *pricing.ListPricing) ListPricingResponse {
	out := ListPricingResponse{
		ByStore: make([]StoreQuoteResponse, 0, len(lp.ByStore)),
		BestPrice: BestDistributionResponse{
			Items:      make([]BestPickItemResponse, 0, len(lp.BestPrice.Items)),
			Stores:     make([]BestPickStoreResponse, 0, len(lp.BestPrice.Stores)),
			TotalPrice: lp.BestPrice.TotalPrice,
		},
	}
	for _, sq := range lp.ByStore {
		quote := StoreQuoteResponse{
			StoreLocationID: sq.StoreLocationID,
			StoreName:       sq.StoreName,
			StoreLogoURL:    sq.StoreLogoURL,
			Address:         sq.Address,
			City:            sq.City,
			State:           sq.State,
			DistanceKm:      sq.DistanceKm,
			Items:           make([]QuoteItemResponse, 0, len(sq.Items)),
			TotalPrice:      sq.TotalPrice,
			MissingItems:    make([]MissingItemResponse, 0, len(sq.MissingItems)),
		}
		for _, qi := range sq.Items {
			quote.Items = append(quote.Items, QuoteItemResponse{
				ProductID:   qi.ProductID,
				ProductName: qi.ProductName,
				UnitPrice:   qi.UnitPrice,
				SalePrice:   qi.SalePrice,
				Quantity:    qi.Quantity,
				TotalPrice:  qi.TotalPrice,
			})
		}
		for _, mi := range sq.MissingItems {
			quote.MissingItems = append(quote.MissingItems, MissingItemResponse{
				ProductID: mi.ProductID,
				Quantity:  mi.Quantity,
			})
		}
		out.ByStore = append(out.ByStore, quote)
	}
	for _, bi := range lp.BestPrice.Items {
		out.BestPrice.Items = append(out.BestPrice.Items, BestPickItemResponse{
			ProductID:       bi.ProductID,
			ProductName:     bi.ProductName,
			UnitPrice:       bi.UnitPrice,
			Quantity:        bi.Quantity,
			TotalPrice:      bi.TotalPrice,
			StoreLocationID: bi.StoreLocationID,
			StoreName:       bi.StoreName,
		})
	}
	for _, bs := range lp.BestPrice.Stores {
		out.BestPrice.Stores = append(out.BestPrice.Stores, BestPickStoreResponse{
			StoreLocationID: bs.StoreLocationID,
			StoreName:       bs.StoreName,
			StoreLogoURL:    bs.StoreLogoURL,
			Address:         bs.Address,
			City:            bs.City,
			State:           bs.State,
			DistanceKm:      bs.DistanceKm,
		})
	}
	return out
}

// NewProductBestPriceResponse convierte el mejor precio de un producto.
func NewProductBestPriceResponse(bp *pricing.ProductBestPrice) ProductBestPriceResponse {
	return ProductBestPriceResponse{
		ProductID:       bp.ProductID,
		StoreLocationID: bp.StoreLocationID,
		StoreName:       bp.StoreName,
		StoreLogoURL:    bp.StoreLogoURL,
		Address:         bp.Address,
		City:            bp.City,
		State:           bp.State,
		DistanceKm:      bp.DistanceKm,
		Price:           bp.Price,
		EffectivePrice:  bp.EffectivePrice,
		SalePrice:       bp.SalePrice,
		Currency:        bp.Currency,
		RecordedAt:      bp.RecordedAt,
	}
}

// NewNearbyStoreResponses convierte las sucursales cercanas del motor.
func NewNearbyStoreResponses(nearby []pricing.NearbyLocation) []NearbyStoreResponse {
	out := make([]NearbyStoreResponse, 0, len(nearby))
	for _, nl := range nearby {
		loc := nl.Location
		out = append(out, NearbyStoreResponse{
			StoreLocationResponse: StoreLocationResponse{
				ID:        loc.ID,
				StoreID:   loc.StoreID,
				Address:   loc.Address,
				City:      loc.City,
				State:     loc.State,
				ZipCode:   loc.ZipCode,
				Country:   loc.Country,
				Latitude:  loc.Latitude,
				Longitude: loc.Longitude,
				Phone:     loc.Phone,
				Hours:     loc.Hours,
				CreatedAt: loc.CreatedAt,
				UpdatedAt: loc.UpdatedAt,
			},
			StoreName:    loc.StoreName,
			StoreLogoURL: loc.StoreLogoURL,
			DistanceKm:   nl.DistanceKm,
		})
	}
	return out
}
