package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/allocation"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// IssueOrderUseCase emite los materiales pendientes de una orden: una sola
// emisión (cabecera única) que asigna FEFO material por material dentro de una
// transacción. Todo o nada: si un material no alcanza, ningún material de la
// llamada queda emitido.
type IssueOrderUseCase struct {
	txRunner    TxRunner
	orderRepo   repository.ManufacturingOrderRepository
	productRepo repository.ProductRepository
	issuer      MaterialIssuer
}

// NewIssueOrderUseCase construye el caso de uso. issuer es el caso de uso de
// emisión de allocation, usado vía IssueInTx sobre la transacción propia.
func NewIssueOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.ManufacturingOrderRepository,
	productRepo repository.ProductRepository,
	issuer MaterialIssuer,
) *IssueOrderUseCase {
	return &IssueOrderUseCase{
		txRunner:    txRunner,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		issuer:      issuer,
	}
}

// OrderIssueResult es el documento de emisión de la orden con todas sus
// líneas y el estado de la orden tras emitir.
type OrderIssueResult struct {
	Issue *entity.MaterialIssue
	Lines []allocation.IssueLine
	Order *entity.ManufacturingOrder
}

// IssueMaterials emite todos los materiales aún PENDING de la orden y la pasa
// a IN_PROGRESS. El guard PENDING→ISSUED por material hace que dos emisiones
// concurrentes de la misma orden no dupliquen consumo: la segunda falla con
// domain.ErrConflict y su transacción se revierte completa.
func (uc *IssueOrderUseCase) IssueMaterials(ctx context.Context, orderID, userID string, allowExpired bool, notes string) (*OrderIssueResult, error) {
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	switch order.Status {
	case entity.OrderStatusPlanned, entity.OrderStatusInProgress:
	default:
		return nil, fmt.Errorf("%w: la orden %s está en estado %s", domain.ErrConflict, order.OrderNo, order.Status)
	}

	materials, err := uc.orderRepo.GetMaterials(ctx, orderID)
	if err != nil {
		return nil, err
	}
	pending := make([]*entity.OrderMaterial, 0, len(materials))
	for _, m := range materials {
		if m.Status == entity.OrderMaterialPending && m.RequiredQty.Sub(m.IssuedQty).GreaterThan(decimal.Zero) {
			pending = append(pending, m)
		}
	}
	if len(pending) == 0 {
		return nil, fmt.Errorf("%w: la orden %s no tiene materiales pendientes", domain.ErrConflict, order.OrderNo)
	}

	products := make(map[string]*entity.Product, len(pending))
	for _, m := range pending {
		if _, ok := products[m.ProductID]; ok {
			continue
		}
		p, err := uc.productRepo.GetByID(ctx, m.ProductID)
		if err != nil || p == nil {
			return nil, domain.ErrNotFound
		}
		products[m.ProductID] = p
	}

	now := time.Now()
	issue := &entity.MaterialIssue{
		ID:                   uuid.New().String(),
		IssueNo:              "MI-" + now.Format("20060102150405"),
		ManufacturingOrderID: order.ID,
		WarehouseID:          order.WarehouseID,
		Status:               entity.IssueStatusConfirmed,
		GroupID:              uuid.New().String(),
		Notes:                notes,
		CreatedBy:            userID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	var lines []allocation.IssueLine
	err = uc.txRunner.RunProduction(ctx, func(
		ledgerRepo repository.LedgerRepository,
		issueRepo repository.MaterialIssueRepository,
		orderRepo repository.ManufacturingOrderRepository,
		_ repository.ProductionReceiptRepository,
	) error {
		if err := issueRepo.Create(ctx, issue); err != nil {
			return err
		}
		for _, m := range pending {
			need := m.RequiredQty.Sub(m.IssuedQty)
			matLines, err := uc.issuer.IssueInTx(ctx, ledgerRepo, issueRepo, issue, products[m.ProductID], need, allowExpired, now)
			if err != nil {
				return err
			}
			if err := orderRepo.MarkMaterialIssued(ctx, m.ID, need); err != nil {
				return err
			}
			lines = append(lines, matLines...)
		}
		if order.Status == entity.OrderStatusPlanned {
			if err := orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusInProgress); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Status = entity.OrderStatusInProgress
	return &OrderIssueResult{Issue: issue, Lines: lines, Order: order}, nil
}
