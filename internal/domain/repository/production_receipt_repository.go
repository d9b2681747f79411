package repository

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// ProductionReceiptRepository define el puerto de persistencia para las
// entradas de producto terminado.
type ProductionReceiptRepository interface {
	Create(ctx context.Context, r *entity.ProductionReceipt) error
	GetByOrder(ctx context.Context, orderID string) ([]*entity.ProductionReceipt, error)
}
