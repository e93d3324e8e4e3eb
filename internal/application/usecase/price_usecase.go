package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PrecioVecino-api/internal/application/dto"
	"github.com/jhoicas/PrecioVecino-api/internal/domain"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/repository"
)

// DefaultCurrency moneda asumida cuando el reporte no la trae.
const DefaultCurrency = "COP"

// PriceUseCase casos de uso sobre observaciones de precio: reportar,
// corregir, eliminar (admin) e historial.
type PriceUseCase struct {
	repo        repository.PriceRepository
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
}

// NewPriceUseCase construye el caso de uso.
func NewPriceUseCase(repo repository.PriceRepository, productRepo repository.ProductRepository, storeRepo repository.StoreRepository) *PriceUseCase {
	return &PriceUseCase{repo: repo, productRepo: productRepo, storeRepo: storeRepo}
}

// Record registra una observación nueva de precio reportada por un usuario.
// Valida que producto y sucursal existan y que price > 0. SalePrice puede ser
// mayor o menor que Price: no se impone orden entre ambos.
func (uc *PriceUseCase) Record(ctx context.Context, reporterID string, in dto.RecordPriceRequest) (*dto.PricePointResponse, error) {
	if in.Price.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.SalePrice != nil && in.SalePrice.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	loc, err := uc.storeRepo.GetLocationByID(ctx, in.StoreLocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	currency := in.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	now := time.Now()
	pp := &entity.PricePoint{
		ID:              uuid.New().String(),
		ProductID:       in.ProductID,
		StoreLocationID: in.StoreLocationID,
		Price:           in.Price,
		SalePrice:       in.SalePrice,
		SaleEnds:        in.SaleEnds,
		Currency:        currency,
		ReportedBy:      reporterID,
		RecordedAt:      now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Record(ctx, pp); err != nil {
		return nil, err
	}
	return toPricePointResponse(pp), nil
}

// Correct corrige una observación existente en sitio: reescribe los montos
// sin tocar RecordedAt, de modo que la corrección no altera qué observación
// es la más reciente. Solo el reportero original o un admin pueden corregir.
func (uc *PriceUseCase) Correct(ctx context.Context, actorID, actorRole, id string, in dto.CorrectPriceRequest) (*dto.PricePointResponse, error) {
	if in.Price.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.SalePrice != nil && in.SalePrice.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	pp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pp == nil {
		return nil, nil
	}
	if actorRole != entity.RoleAdmin && pp.ReportedBy != actorID {
		return nil, domain.ErrForbidden
	}
	updated, err := uc.repo.Correct(ctx, id, repository.PriceCorrection{
		Price:     in.Price,
		SalePrice: in.SalePrice,
		SaleEnds:  in.SaleEnds,
	})
	if err != nil {
		return nil, err
	}
	return toPricePointResponse(updated), nil
}

// Delete elimina una observación. Acción administrativa explícita.
func (uc *PriceUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// History devuelve todas las observaciones de un par (producto, sucursal)
// ordenadas de la más reciente a la más antigua.
func (uc *PriceUseCase) History(ctx context.Context, productID, storeLocationID string) ([]dto.PricePointResponse, error) {
	points, err := uc.repo.History(ctx, productID, storeLocationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PricePointResponse, 0, len(points))
	for i := range points {
		out = append(out, *toPricePointResponse(&points[i]))
	}
	return out, nil
}

func toPricePointResponse(pp *entity.PricePoint) *dto.PricePointResponse {
	if pp == nil {
		return nil
	}
	return &dto.PricePointResponse{
		ID:              pp.ID,
		ProductID:       pp.ProductID,
		StoreLocationID: pp.StoreLocationID,
		Price:           pp.Price,
		SalePrice:       pp.SalePrice,
		SaleEnds:        pp.SaleEnds,
		Currency:        pp.Currency,
		ReportedBy:      pp.ReportedBy,
		RecordedAt:      pp.RecordedAt,
		UpdatedAt:       pp.UpdatedAt,
	}
}
