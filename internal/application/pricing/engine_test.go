package pricing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PrecioVecino-api/internal/application/pricing"
	"github.com/jhoicas/PrecioVecino-api/internal/domain"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
)

func buildEngine(locs *fakeLocations, prices *fakePrices) *pricing.Engine {
	return pricing.NewEngine(
		pricing.NewProximityFilter(locs),
		pricing.NewPriceResolver(prices, false),
	)
}

// Dos sucursales dentro del radio de búsqueda del origen.
func dosSucursales() *fakeLocations {
	return &fakeLocations{locs: []entity.StoreLocationInfo{
		testLocation("loc-a", "Éxito", 0, 0.01),
		testLocation("loc-b", "Carulla", 0, 0.02),
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// BestPriceForProduct
// ──────────────────────────────────────────────────────────────────────────────

// Producto P con precio 5.00 en A (ayer) y 4.00 con oferta 3.50 en B (hoy):
// el mejor precio es B a 3.50 efectivo.
func TestBestPriceForProduct_EligeMenorPrecioEfectivo(t *testing.T) {
	prices := &fakePrices{points: []entity.PricePoint{
		testPoint("pp-a", "prod-p", "loc-a", 5.00, nil, ayer),
		testPoint("pp-b", "prod-p", "loc-b", 4.00, f64(3.50), hoy),
	}}
	engine := buildEngine(dosSucursales(), prices)

	best, err := engine.BestPriceForProduct(context.Background(), "prod-p", testQuery)
	require.NoError(t, err)
	require.NotNil(t, best)

	assert.Equal(t, "loc-b", best.StoreLocationID)
	assert.Equal(t, "Carulla", best.StoreName)
	assert.True(t, best.EffectivePrice.Equal(decimalFrom(3.50)))
	assert.True(t, best.Price.Equal(decimalFrom(4.00)), "el precio de lista acompaña al efectivo")
	require.NotNil(t, best.SalePrice)
}

// Sin observaciones dentro del radio: nil sin error ("no encontrado" es un
// resultado opcional, no una falla).
func TestBestPriceForProduct_SinPreciosRetornaNil(t *testing.T) {
	engine := buildEngine(dosSucursales(), &fakePrices{})

	best, err := engine.BestPriceForProduct(context.Background(), "prod-p", testQuery)
	require.NoError(t, err)
	assert.Nil(t, best)
}

// Empate de precio efectivo entre sucursales: gana el menor ID.
func TestBestPriceForProduct_EmpateEligeMenorID(t *testing.T) {
	prices := &fakePrices{points: []entity.PricePoint{
		testPoint("pp-a", "prod-p", "loc-a", 3.00, nil, hoy),
		testPoint("pp-b", "prod-p", "loc-b", 3.00, nil, hoy),
	}}
	engine := buildEngine(dosSucursales(), prices)

	best, err := engine.BestPriceForProduct(context.Background(), "prod-p", testQuery)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "loc-a", best.StoreLocationID)
}

// Una sucursal fuera del radio no participa aunque tenga el precio más bajo.
func TestBestPriceForProduct_IgnoraSucursalesFueraDeRadio(t *testing.T) {
	locs := &fakeLocations{locs: []entity.StoreLocationInfo{
		testLocation("loc-a", "Éxito", 0, 0.01),
		testLocation("loc-lejos", "D1", 0, 0.5), // ≈ 55 km
	}}
	prices := &fakePrices{points: []entity.PricePoint{
		testPoint("pp-a", "prod-p", "loc-a", 5.00, nil, hoy),
		testPoint("pp-far", "prod-p", "loc-lejos", 1.00, nil, hoy),
	}}
	engine := buildEngine(locs, prices)

	best, err := engine.BestPriceForProduct(context.Background(), "prod-p", testQuery)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "loc-a", best.StoreLocationID)
}

func TestBestPriceForProduct_GeoInvalida(t *testing.T) {
	engine := buildEngine(dosSucursales(), &fakePrices{})
	_, err := engine.BestPriceForProduct(context.Background(), "prod-p", pricing.GeoQuery{Latitude: 200, Longitude: 0, RadiusKm: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

// ──────────────────────────────────────────────────────────────────────────────
// PriceShoppingList
// ──────────────────────────────────────────────────────────────────────────────

func TestPriceShoppingList_ListaVaciaCortaEnSeco(t *testing.T) {
	prices := &fakePrices{}
	engine := buildEngine(dosSucursales(), prices)

	out, err := engine.PriceShoppingList(context.Background(), nil, testQuery)
	require.NoError(t, err)

	assert.Empty(t, out.ByStore)
	assert.Empty(t, out.BestPrice.Items)
	assert.Empty(t, out.BestPrice.Stores)
	assert.True(t, out.BestPrice.TotalPrice.IsZero())
	assert.Zero(t, prices.calls, "lista vacía no debe consultar precios")
}

// Lista {P1 x2, P2 x1} donde solo A tiene P1 (2.00) y solo B tiene P2 (3.00):
// ninguna sucursal cubre la lista completa, pero el plan distribuido compra
// P1 en A y P2 en B por un total de 7.00 en dos tiendas.
func TestPriceShoppingList_PlanDistribuidoEntreDosTiendas(t *testing.T) {
	prices := &fakePrices{points: []entity.PricePoint{
		testPoint("pp-1", "prod-1", "loc-a", 2.00, nil, hoy),
		testPoint("pp-2", "prod-2", "loc-b", 3.00, nil, hoy),
	}}
	engine := buildEngine(dosSucursales(), prices)

	items := []pricing.ListItem{
		{ProductID: "prod-1", ProductName: "Arroz", Quantity: 2},
		{ProductID: "prod-2", ProductName: "Leche", Quantity: 1},
	}
	out, err := engine.PriceShoppingList(context.Background(), items, testQuery)
	require.NoError(t, err)

	// Vista distribuida: total 2*2.00 + 1*3.00 = 7.00 en dos tiendas.
	assert.True(t, out.BestPrice.TotalPrice.Equal(decimalFrom(7.00)),
		"el total distribuido debe ser 7.00")
	require.Len(t, out.BestPrice.Items, 2)
	require.Len(t, out.BestPrice.Stores, 2)
	assert.Equal(t, "loc-a", out.BestPrice.Items[0].StoreLocationID)
	assert.Equal(t, "loc-b", out.BestPrice.Items[1].StoreLocationID)

	// Vista por tienda: cada sucursal cotiza su único renglón y reporta el
	// otro como faltante.
	require.Len(t, out.ByStore, 2)
	for _, quote := range out.ByStore {
		assert.Len(t, quote.Items, 1)
		assert.Len(t, quote.MissingItems, 1)
	}
}

// Una sucursal tiene toda la lista, otra es más barata en un renglón:
// la garantía bestPrice.TotalPrice <= subtotal de toda cotización completa.
func TestPriceShoppingList_DistribuidoNuncaPeorQueTiendaCompleta(t *testing.T) {
	prices := &fakePrices{points: []entity.PricePoint{
		// loc-a tiene todo
		testPoint("pp-1", "prod-1", "loc-a", 2.50, nil, hoy),
		testPoint("pp-2", "prod-2", "loc-a", 3.00, nil, hoy),
		// loc-b solo tiene prod-1, pero más barato
		testPoint("pp-3", "prod-1", "loc-b", 2.00, nil, hoy),
	}}
	engine := buildEngine(dosSucursales(), prices)

	items := []pricing.ListItem{
		{ProductID: "prod-1", ProductName: "Arroz", Quantity: 2},
		{ProductID: "prod-2", ProductName: "Leche", Quantity: 1},
	}
	out, err := engine.PriceShoppingList(context.Background(), items, testQuery)
	require.NoError(t, err)

	// Distribuido: prod-1 en loc-b (2*2.00) + prod-2 en loc-a (3.00) = 7.00
	assert.True(t, out.BestPrice.TotalPrice.Equal(decimalFrom(7.00)))

	for _, quote := range out.ByStore {
		if len(quote.MissingItems) == 0 {
			assert.True(t, out.BestPrice.TotalPrice.LessThanOrEqual(quote.TotalPrice),
				"comprar distribuido nunca puede ser peor que una tienda que tiene todo")
		}
	}
}

// Cotizaciones por tienda ordenadas por subtotal ascendente.
func TestPriceShoppingList_CotizacionesOrdenadasPorSubtotal(t *testing.T) {
	prices := &fakePrices{points: []entity.PricePoint{
		testPoint("pp-1", "prod-1", "loc-a", 5.00, nil, hoy),
		testPoint("pp-2", "prod-1", "loc-b", 3.00, nil, hoy),
	}}
	engine := buildEngine(dosSucursales(), prices)

	items := []pricing.ListItem{{ProductID: "prod-1", ProductName: "Arroz", Quantity: 1}}
	out, err := engine.PriceShoppingList(context.Background(), items, testQuery)
	require.NoError(t, err)

	require.Len(t, out.ByStore, 2)
	assert.Equal(t, "loc-b", out.ByStore[0].StoreLocationID, "la más barata primero")
	assert.True(t, out.ByStore[0].TotalPrice.LessThanOrEqual(out.ByStore[1].TotalPrice))
}

// La resolución usa la observación más reciente por par: un precio viejo más
// barato en la misma sucursal no debe ganar.
func TestPriceShoppingList_UsaObservacionMasReciente(t *testing.T) {
	prices := &fakePrices{points: []entity.PricePoint{
		testPoint("pp-viejo", "prod-1", "loc-a", 1.00, nil, ayer),
		testPoint("pp-nuevo", "prod-1", "loc-a", 2.00, nil, hoy),
	}}
	engine := buildEngine(dosSucursales(), prices)

	items := []pricing.ListItem{{ProductID: "prod-1", ProductName: "Arroz", Quantity: 1}}
	out, err := engine.PriceShoppingList(context.Background(), items, testQuery)
	require.NoError(t, err)

	require.Len(t, out.ByStore, 1)
	assert.True(t, out.ByStore[0].TotalPrice.Equal(decimalFrom(2.00)),
		"debe cotizar con el precio vigente, no con el histórico más barato")
}

// Ningún precio resuelto para ningún renglón: ambas vistas vacías, éxito.
func TestPriceShoppingList_SinPreciosDisponiblesEsResultadoValido(t *testing.T) {
	engine := buildEngine(dosSucursales(), &fakePrices{})

	items := []pricing.ListItem{{ProductID: "prod-1", ProductName: "Arroz", Quantity: 1}}
	out, err := engine.PriceShoppingList(context.Background(), items, testQuery)
	require.NoError(t, err, "sin precios disponibles NO es un error")

	assert.Empty(t, out.ByStore)
	assert.Empty(t, out.BestPrice.Items)
	assert.True(t, out.BestPrice.TotalPrice.IsZero())
}

// Fallas de almacenamiento abortan el cómputo completo; jamás hay resultado
// parcial.
func TestPriceShoppingList_FallaDePreciosAbortaTodo(t *testing.T) {
	engine := buildEngine(dosSucursales(), &fakePrices{err: errStorage})

	items := []pricing.ListItem{{ProductID: "prod-1", ProductName: "Arroz", Quantity: 1}}
	out, err := engine.PriceShoppingList(context.Background(), items, testQuery)
	assert.ErrorIs(t, err, domain.ErrResolutionFailed)
	assert.Nil(t, out, "una resolución fallida no devuelve resultados parciales")
}

func TestPriceShoppingList_GeoInvalidaAntesQueNada(t *testing.T) {
	prices := &fakePrices{}
	engine := buildEngine(&fakeLocations{err: errStorage}, prices)

	items := []pricing.ListItem{{ProductID: "prod-1", ProductName: "Arroz", Quantity: 1}}
	_, err := engine.PriceShoppingList(context.Background(), items, pricing.GeoQuery{Latitude: 0, Longitude: 0, RadiusKm: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery,
		"la validación geográfica ocurre antes de tocar almacenamiento")
	assert.Zero(t, prices.calls)
}

// NearbyStores delega en el filtro y conserva su orden.
func TestNearbyStores_DelegaEnFiltro(t *testing.T) {
	engine := buildEngine(dosSucursales(), &fakePrices{})
	out, err := engine.NearbyStores(context.Background(), testQuery)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "loc-a", out[0].Location.ID)
}
