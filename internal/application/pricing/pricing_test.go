package pricing_test

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos del motor. Sin librerías de mocks: structs simples con
// datos precargados, igual que el resto de tests del proyecto.
// ──────────────────────────────────────────────────────────────────────────────

type fakeLocations struct {
	locs []entity.StoreLocationInfo
	err  error
}

func (f *fakeLocations) ListAllLocations(ctx context.Context) ([]entity.StoreLocationInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.locs, nil
}

type fakePrices struct {
	points []entity.PricePoint
	err    error
	// calls registra las invocaciones para verificar cortocircuitos
	calls int
}

func (f *fakePrices) ListByProductsAndLocations(ctx context.Context, productIDs, locationIDs []string) ([]entity.PricePoint, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	wantProduct := toSet(productIDs)
	wantLocation := toSet(locationIDs)
	var out []entity.PricePoint
	for _, pp := range f.points {
		if wantProduct[pp.ProductID] && wantLocation[pp.StoreLocationID] {
			out = append(out, pp)
		}
	}
	return out, nil
}

func toSet(ids []string) map[string]bool {
	s := make(map[string]bool, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

var errStorage = errors.New("conexión perdida")

// ── constructores de datos de prueba ─────────────────────────────────────────

func testLocation(id, storeName string, lat, lon float64) entity.StoreLocationInfo {
	return entity.StoreLocationInfo{
		StoreLocation: entity.StoreLocation{
			ID:        id,
			StoreID:   "store-" + id,
			Address:   "Calle 1 # 2-3",
			City:      "Bogotá",
			State:     "Cundinamarca",
			Latitude:  lat,
			Longitude: lon,
		},
		StoreName:    storeName,
		StoreLogoURL: "https://cdn.example.com/" + id + ".png",
	}
}

func testPoint(id, productID, locationID string, price float64, salePrice *float64, recordedAt time.Time) entity.PricePoint {
	pp := entity.PricePoint{
		ID:              id,
		ProductID:       productID,
		StoreLocationID: locationID,
		Price:           decimal.NewFromFloat(price),
		Currency:        "COP",
		RecordedAt:      recordedAt,
	}
	if salePrice != nil {
		sp := decimal.NewFromFloat(*salePrice)
		pp.SalePrice = &sp
	}
	return pp
}

func f64(v float64) *float64 { return &v }

func decimalFrom(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }
