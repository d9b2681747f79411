// Package production implementa los casos de uso de órdenes de fabricación:
// planificación con explosión de BOM, chequeo de disponibilidad, emisión FEFO
// de los materiales pendientes y cierre con entrada de producto terminado.
package production

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

// OrderUseCase planifica órdenes de producción contra un BOM activo y expone
// su consulta y cancelación.
type OrderUseCase struct {
	txRunner      TxRunner
	orderRepo     repository.ManufacturingOrderRepository
	bomRepo       repository.BOMRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	reportRepo    repository.StockReportRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.ManufacturingOrderRepository,
	bomRepo repository.BOMRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	reportRepo repository.StockReportRepository,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:      txRunner,
		orderRepo:     orderRepo,
		bomRepo:       bomRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		reportRepo:    reportRepo,
	}
}

// CreateOrder valida producto, bodegas y BOM, explota la receta a materiales
// requeridos y persiste orden + materiales de forma atómica. La orden nace
// PLANNED sin tocar el libro: el inventario solo se mueve al emitir.
//
// Explosión por componente:
//
//	requerido = cantidad × planificado / salida_bom × (1 + merma/100)
func (uc *OrderUseCase) CreateOrder(ctx context.Context, userID string, in dto.CreateOrderRequest) (*entity.ManufacturingOrder, []*entity.OrderMaterial, error) {
	if in.ProductID == "" || in.WarehouseID == "" || in.TargetWarehouseID == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	if !in.QuantityPlanned.GreaterThan(decimal.Zero) {
		return nil, nil, domain.ErrInvalidInput
	}
	var scheduledDate *time.Time
	if in.ScheduledDate != "" {
		d, err := time.ParseInLocation("2006-01-02", in.ScheduledDate, time.UTC)
		if err != nil {
			return nil, nil, domain.ErrInvalidInput
		}
		scheduledDate = &d
	}

	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil || product == nil {
		return nil, nil, domain.ErrNotFound
	}
	if wh, whErr := uc.warehouseRepo.GetByID(ctx, in.WarehouseID); whErr != nil || wh == nil {
		return nil, nil, domain.ErrNotFound
	}
	if wh, whErr := uc.warehouseRepo.GetByID(ctx, in.TargetWarehouseID); whErr != nil || wh == nil {
		return nil, nil, domain.ErrNotFound
	}

	bom, err := uc.resolveBOM(ctx, in.BOMID, product.ID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	order := &entity.ManufacturingOrder{
		ID:                uuid.New().String(),
		OrderNo:           "MO-" + now.Format("20060102150405"),
		ProductID:         product.ID,
		BOMID:             bom.ID,
		QuantityPlanned:   in.QuantityPlanned,
		ProducedQty:       decimal.Zero,
		UOM:               bom.UOM,
		WarehouseID:       in.WarehouseID,
		TargetWarehouseID: in.TargetWarehouseID,
		Status:            entity.OrderStatusPlanned,
		ScheduledDate:     scheduledDate,
		Notes:             in.Notes,
		CreatedBy:         userID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	materials := explode(order, bom)

	err = uc.txRunner.RunProduction(ctx, func(
		_ repository.LedgerRepository,
		_ repository.MaterialIssueRepository,
		orderRepo repository.ManufacturingOrderRepository,
		_ repository.ProductionReceiptRepository,
	) error {
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		for _, m := range materials {
			if err := orderRepo.CreateMaterial(ctx, m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return order, materials, nil
}

// resolveBOM carga el BOM pedido o el activo del producto y valida que pueda
// respaldar una orden: estado ACTIVE, del mismo producto y con componentes.
func (uc *OrderUseCase) resolveBOM(ctx context.Context, bomID, productID string) (*entity.BOMHeader, error) {
	var bom *entity.BOMHeader
	var err error
	if bomID != "" {
		bom, err = uc.bomRepo.GetByID(ctx, bomID)
	} else {
		bom, err = uc.bomRepo.GetActiveByProduct(ctx, productID)
	}
	if err != nil {
		return nil, err
	}
	if bom == nil {
		return nil, fmt.Errorf("%w: el producto %s no tiene BOM activo", domain.ErrInvalidInput, productID)
	}
	if bom.Status != entity.BOMStatusActive {
		return nil, fmt.Errorf("%w: el BOM %s está en estado %s", domain.ErrInvalidInput, bom.Code, bom.Status)
	}
	if bom.ProductID != productID {
		return nil, fmt.Errorf("%w: el BOM %s no corresponde al producto %s", domain.ErrInvalidInput, bom.Code, productID)
	}
	if len(bom.Details) == 0 {
		return nil, fmt.Errorf("%w: el BOM %s no tiene componentes", domain.ErrInvalidInput, bom.Code)
	}
	return bom, nil
}

// explode convierte los componentes del BOM en materiales requeridos por la
// orden, escalando por lo planificado sobre la salida de la receta y aplicando
// el factor de merma de cada componente.
func explode(order *entity.ManufacturingOrder, bom *entity.BOMHeader) []*entity.OrderMaterial {
	factor := order.QuantityPlanned.Div(bom.OutputQty)
	hundred := decimal.NewFromInt(100)
	materials := make([]*entity.OrderMaterial, 0, len(bom.Details))
	for _, d := range bom.Details {
		waste := decimal.NewFromInt(1).Add(d.ScrapRate.Div(hundred))
		materials = append(materials, &entity.OrderMaterial{
			ID:                   uuid.New().String(),
			ManufacturingOrderID: order.ID,
			ProductID:            d.ProductID,
			RequiredQty:          d.Quantity.Mul(factor).Mul(waste),
			IssuedQty:            decimal.Zero,
			UOM:                  d.UOM,
			Status:               entity.OrderMaterialPending,
		})
	}
	return materials
}

// GetOrder devuelve la orden con sus materiales explotados.
func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*entity.ManufacturingOrder, []*entity.OrderMaterial, error) {
	if id == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, domain.ErrNotFound
	}
	materials, err := uc.orderRepo.GetMaterials(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return order, materials, nil
}

// ListOrders lista órdenes, opcionalmente filtradas por estado.
func (uc *OrderUseCase) ListOrders(ctx context.Context, status string, limit, offset int) ([]*entity.ManufacturingOrder, error) {
	switch status {
	case "", entity.OrderStatusPlanned, entity.OrderStatusInProgress,
		entity.OrderStatusCompleted, entity.OrderStatusCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}
	return uc.orderRepo.List(ctx, status, limit, offset)
}

// MaterialAvailability es la disponibilidad de un material frente a lo que
// resta por emitir. No autoritativa: no toma bloqueos.
type MaterialAvailability struct {
	ProductID   string
	RequiredQty decimal.Decimal
	Available   decimal.Decimal
	Sufficient  bool
}

// CheckAvailability compara, material por material, lo que resta por emitir
// contra el saldo elegible no vencido en la bodega de la orden.
func (uc *OrderUseCase) CheckAvailability(ctx context.Context, orderID string) (*entity.ManufacturingOrder, []MaterialAvailability, error) {
	order, materials, err := uc.GetOrder(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	today := time.Now()
	rows := make([]MaterialAvailability, 0, len(materials))
	for _, m := range materials {
		available, err := uc.reportRepo.EligibleRemain(ctx, m.ProductID, order.WarehouseID, today)
		if err != nil {
			return nil, nil, err
		}
		need := m.RequiredQty.Sub(m.IssuedQty)
		if need.IsNegative() {
			need = decimal.Zero
		}
		rows = append(rows, MaterialAvailability{
			ProductID:   m.ProductID,
			RequiredQty: m.RequiredQty,
			Available:   available,
			Sufficient:  available.GreaterThanOrEqual(need),
		})
	}
	return order, rows, nil
}

// CancelOrder cancela una orden que aún no movió inventario. Solo se permite
// en estado PLANNED: una orden con materiales emitidos no puede cancelarse.
func (uc *OrderUseCase) CancelOrder(ctx context.Context, id string) error {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusPlanned {
		return fmt.Errorf("%w: la orden %s está en estado %s", domain.ErrConflict, order.OrderNo, order.Status)
	}
	return uc.orderRepo.UpdateStatus(ctx, id, entity.OrderStatusCancelled)
}
