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

// CompleteOrderUseCase cierra una orden en proceso: apunta la entrada del
// producto terminado al libro (lote nuevo en la bodega destino), persiste la
// recepción que la documenta y marca la orden COMPLETED, todo en una
// transacción.
//
// El vencimiento del lote producido depende del tipo de BOM:
//   - KITTING: hereda el vencimiento mínimo de los lotes consumidos por las
//     emisiones de la orden (el kit vence cuando vence su primer componente).
//   - PROCESS: se calcula con la vida útil del producto de salida; sin vida
//     útil declarada, el lote no vence.
type CompleteOrderUseCase struct {
	txRunner    TxRunner
	orderRepo   repository.ManufacturingOrderRepository
	bomRepo     repository.BOMRepository
	productRepo repository.ProductRepository
	issueRepo   repository.MaterialIssueRepository
	receiptRepo repository.ProductionReceiptRepository
}

// NewCompleteOrderUseCase construye el caso de uso.
func NewCompleteOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.ManufacturingOrderRepository,
	bomRepo repository.BOMRepository,
	productRepo repository.ProductRepository,
	issueRepo repository.MaterialIssueRepository,
	receiptRepo repository.ProductionReceiptRepository,
) *CompleteOrderUseCase {
	return &CompleteOrderUseCase{
		txRunner:    txRunner,
		orderRepo:   orderRepo,
		bomRepo:     bomRepo,
		productRepo: productRepo,
		issueRepo:   issueRepo,
		receiptRepo: receiptRepo,
	}
}

// CompleteOrder valida la orden y registra la producción terminada. El asiento
// de entrada reutiliza el group_id de la primera emisión de la orden, de modo
// que consumos y entrada de una misma corrida queden correlacionados en el
// libro. El guard IN_PROGRESS→COMPLETED evita cierres dobles concurrentes.
func (uc *CompleteOrderUseCase) CompleteOrder(ctx context.Context, orderID, userID string, in dto.CompleteOrderRequest) (*entity.ProductionReceipt, error) {
	if orderID == "" || in.BatchNo == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.ProducedQty.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusInProgress {
		return nil, fmt.Errorf("%w: la orden %s está en estado %s", domain.ErrConflict, order.OrderNo, order.Status)
	}

	bom, err := uc.bomRepo.GetByID(ctx, order.BOMID)
	if err != nil || bom == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(ctx, order.ProductID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}

	// Reutiliza el group_id de la primera emisión; la lista viene de más
	// reciente a más antigua.
	groupID := uuid.New().String()
	issues, err := uc.issueRepo.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		groupID = issues[len(issues)-1].GroupID
	}

	now := time.Now()
	receipt := &entity.ProductionReceipt{
		ID:                   uuid.New().String(),
		ReceiptNo:            "PR-" + now.Format("20060102150405"),
		ManufacturingOrderID: order.ID,
		ProductID:            order.ProductID,
		Quantity:             in.ProducedQty,
		UOM:                  order.UOM,
		BatchNo:              in.BatchNo,
		WarehouseID:          order.TargetWarehouseID,
		Notes:                in.Notes,
		CreatedBy:            userID,
		CreatedAt:            now,
	}

	err = uc.txRunner.RunProduction(ctx, func(
		ledgerRepo repository.LedgerRepository,
		_ repository.MaterialIssueRepository,
		orderRepo repository.ManufacturingOrderRepository,
		receiptRepo repository.ProductionReceiptRepository,
	) error {
		expiry, err := uc.outputExpiry(ctx, ledgerRepo, order, bom, product, now)
		if err != nil {
			return err
		}
		receipt.ExpiredDate = expiry

		entry := &entity.LedgerEntry{
			Type:           entity.EntryTypeProductionIn,
			ProductID:      order.ProductID,
			WarehouseID:    order.TargetWarehouseID,
			Quantity:       in.ProducedQty,
			Remain:         in.ProducedQty,
			BatchNo:        in.BatchNo,
			ExpiredDate:    expiry,
			SourceDetailID: receipt.ID,
			GroupID:        groupID,
			CreatedBy:      userID,
			CreatedAt:      now,
		}
		entryID, err := ledgerRepo.AppendEntry(ctx, entry)
		if err != nil {
			return err
		}
		receipt.LedgerEntryID = entryID

		if err := receiptRepo.Create(ctx, receipt); err != nil {
			return err
		}
		return orderRepo.MarkCompleted(ctx, order.ID, in.ProducedQty, now)
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// outputExpiry calcula el vencimiento del lote producido según el tipo de BOM.
func (uc *CompleteOrderUseCase) outputExpiry(
	ctx context.Context,
	ledgerRepo repository.LedgerRepository,
	order *entity.ManufacturingOrder,
	bom *entity.BOMHeader,
	product *entity.Product,
	now time.Time,
) (*time.Time, error) {
	switch bom.BOMType {
	case entity.BOMTypeKitting:
		return ledgerRepo.MinConsumedExpiryForOrder(ctx, order.ID)
	case entity.BOMTypeProcess:
		if product.ShelfLifeDays <= 0 {
			return nil, nil
		}
		base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		exp := base.AddDate(0, 0, product.ShelfLifeDays)
		return &exp, nil
	}
	return nil, nil
}

// Receipts lista las recepciones de producto terminado de una orden.
func (uc *CompleteOrderUseCase) Receipts(ctx context.Context, orderID string) ([]*entity.ProductionReceipt, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return uc.receiptRepo.GetByOrder(ctx, orderID)
}
