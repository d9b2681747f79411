package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// BOMUseCase casos de uso para recetas (BOM): creación en borrador, consulta,
// reemplazo de componentes y ciclo de estados. Solo un BOM ACTIVE puede
// respaldar órdenes de producción.
type BOMUseCase struct {
	bomRepo     repository.BOMRepository
	productRepo repository.ProductRepository
}

// NewBOMUseCase construye el caso de uso.
func NewBOMUseCase(bomRepo repository.BOMRepository, productRepo repository.ProductRepository) *BOMUseCase {
	return &BOMUseCase{bomRepo: bomRepo, productRepo: productRepo}
}

// Create crea la receta en estado DRAFT con código consecutivo
// BOM-<TIPO3>-<n>. Cabecera y componentes se insertan de forma atómica.
func (uc *BOMUseCase) Create(ctx context.Context, in dto.CreateBOMRequest) (*dto.BOMResponse, error) {
	if in.Name == "" || in.ProductID == "" || in.UOM == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.OutputQty.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	switch in.BOMType {
	case entity.BOMTypeKitting, entity.BOMTypeProcess:
	default:
		return nil, domain.ErrInvalidInput
	}
	if len(in.Details) == 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.buildDetails(ctx, in.ProductID, in.Details)
	if err != nil {
		return nil, err
	}

	prefix := fmt.Sprintf("BOM-%s-", in.BOMType[:3])
	seq, err := uc.bomRepo.NextSequence(ctx, prefix)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	header := &entity.BOMHeader{
		ID:        uuid.New().String(),
		Code:      fmt.Sprintf("%s%04d", prefix, seq),
		Name:      in.Name,
		ProductID: in.ProductID,
		OutputQty: in.OutputQty,
		UOM:       in.UOM,
		BOMType:   in.BOMType,
		Status:    entity.BOMStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
		Details:   details,
	}
	if err := uc.bomRepo.Create(ctx, header); err != nil {
		return nil, err
	}
	return toBOMResponse(header), nil
}

// buildDetails valida los componentes y los materializa con IDs propios.
// Un componente no puede ser el producto de salida ni repetirse.
func (uc *BOMUseCase) buildDetails(ctx context.Context, outputProductID string, in []dto.BOMDetailRequest) ([]entity.BOMDetail, error) {
	seen := make(map[string]bool, len(in))
	details := make([]entity.BOMDetail, 0, len(in))
	for _, d := range in {
		if d.ProductID == "" || d.UOM == "" {
			return nil, domain.ErrInvalidInput
		}
		if d.ProductID == outputProductID {
			return nil, fmt.Errorf("%w: el componente no puede ser el producto de salida", domain.ErrInvalidInput)
		}
		if seen[d.ProductID] {
			return nil, fmt.Errorf("%w: componente repetido %s", domain.ErrInvalidInput, d.ProductID)
		}
		seen[d.ProductID] = true
		if !d.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		// Merma en porcentaje: 0 <= scrap < 100 (100% desperdicia todo lo emitido).
		if d.ScrapRate.IsNegative() || d.ScrapRate.GreaterThanOrEqual(decimal.NewFromInt(100)) {
			return nil, fmt.Errorf("%w: merma fuera de rango [0, 100)", domain.ErrInvalidInput)
		}
		component, err := uc.productRepo.GetByID(ctx, d.ProductID)
		if err != nil || component == nil {
			return nil, domain.ErrNotFound
		}
		details = append(details, entity.BOMDetail{
			ID:        uuid.New().String(),
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UOM:       d.UOM,
			ScrapRate: d.ScrapRate,
		})
	}
	return details, nil
}

// GetByID obtiene la receta con sus componentes.
func (uc *BOMUseCase) GetByID(ctx context.Context, id string) (*dto.BOMResponse, error) {
	bom, err := uc.bomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bom == nil {
		return nil, domain.ErrNotFound
	}
	return toBOMResponse(bom), nil
}

// GetActiveByProduct obtiene el BOM activo del producto; con más de uno
// activo devuelve el de actualización más reciente.
func (uc *BOMUseCase) GetActiveByProduct(ctx context.Context, productID string) (*dto.BOMResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	bom, err := uc.bomRepo.GetActiveByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if bom == nil {
		return nil, domain.ErrNotFound
	}
	return toBOMResponse(bom), nil
}

// List lista recetas (solo cabeceras), opcionalmente por estado.
func (uc *BOMUseCase) List(ctx context.Context, status string) (*dto.BOMListResponse, error) {
	switch status {
	case "", entity.BOMStatusDraft, entity.BOMStatusActive, entity.BOMStatusInactive:
	default:
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.bomRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BOMResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBOMResponse(b))
	}
	return &dto.BOMListResponse{Items: items}, nil
}

// ReplaceDetails reemplaza los componentes de una receta no activa. Una
// receta ACTIVE debe desactivarse primero: las órdenes ya creadas conservan
// su explosión, pero las futuras deben salir de una receta revisada a
// conciencia.
func (uc *BOMUseCase) ReplaceDetails(ctx context.Context, id string, in dto.ReplaceBOMDetailsRequest) (*dto.BOMResponse, error) {
	if len(in.Details) == 0 {
		return nil, domain.ErrInvalidInput
	}
	bom, err := uc.bomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bom == nil {
		return nil, domain.ErrNotFound
	}
	if bom.Status == entity.BOMStatusActive {
		return nil, fmt.Errorf("%w: el BOM %s está activo; desactívelo antes de editar", domain.ErrConflict, bom.Code)
	}
	details, err := uc.buildDetails(ctx, bom.ProductID, in.Details)
	if err != nil {
		return nil, err
	}
	if err := uc.bomRepo.ReplaceDetails(ctx, id, details); err != nil {
		return nil, err
	}
	bom.Details = details
	bom.UpdatedAt = time.Now()
	return toBOMResponse(bom), nil
}

// UpdateStatus cambia el estado de la receta. Activar exige al menos un
// componente.
func (uc *BOMUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.BOMResponse, error) {
	switch status {
	case entity.BOMStatusDraft, entity.BOMStatusActive, entity.BOMStatusInactive:
	default:
		return nil, domain.ErrInvalidInput
	}
	bom, err := uc.bomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bom == nil {
		return nil, domain.ErrNotFound
	}
	if status == entity.BOMStatusActive && len(bom.Details) == 0 {
		return nil, fmt.Errorf("%w: el BOM %s no tiene componentes", domain.ErrInvalidInput, bom.Code)
	}
	if bom.Status != status {
		if err := uc.bomRepo.UpdateStatus(ctx, id, status); err != nil {
			return nil, err
		}
		bom.Status = status
		bom.UpdatedAt = time.Now()
	}
	return toBOMResponse(bom), nil
}

func toBOMResponse(b *entity.BOMHeader) *dto.BOMResponse {
	if b == nil {
		return nil
	}
	details := make([]dto.BOMDetailDTO, 0, len(b.Details))
	for _, d := range b.Details {
		details = append(details, dto.BOMDetailDTO{
			ID:        d.ID,
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UOM:       d.UOM,
			ScrapRate: d.ScrapRate,
		})
	}
	return &dto.BOMResponse{
		ID:        b.ID,
		Code:      b.Code,
		Name:      b.Name,
		ProductID: b.ProductID,
		OutputQty: b.OutputQty,
		UOM:       b.UOM,
		BOMType:   b.BOMType,
		Status:    b.Status,
		Details:   details,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
