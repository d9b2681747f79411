package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// ManufacturingOrderRepository define el puerto de persistencia para órdenes
// de producción y sus materiales explotados.
type ManufacturingOrderRepository interface {
	Create(ctx context.Context, order *entity.ManufacturingOrder) error
	CreateMaterial(ctx context.Context, m *entity.OrderMaterial) error
	GetByID(ctx context.Context, id string) (*entity.ManufacturingOrder, error)
	GetMaterials(ctx context.Context, orderID string) ([]*entity.OrderMaterial, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.ManufacturingOrder, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// MarkMaterialIssued registra la cantidad emitida y pasa el material a
	// ISSUED. Falla con domain.ErrConflict si el material ya no está PENDING.
	MarkMaterialIssued(ctx context.Context, materialID string, issued decimal.Decimal) error
	// MarkCompleted fija la cantidad producida y pasa la orden a COMPLETED.
	// Falla con domain.ErrConflict si la orden no está IN_PROGRESS.
	MarkCompleted(ctx context.Context, id string, producedQty decimal.Decimal, completedAt time.Time) error
}
