package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.ProductionReceiptRepository = (*ProductionReceiptRepo)(nil)

// ProductionReceiptRepo implementación sobre PostgreSQL (usable con pool o tx).
type ProductionReceiptRepo struct {
	q Querier
}

// NewProductionReceiptRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionReceiptRepository(q Querier) *ProductionReceiptRepo {
	return &ProductionReceiptRepo{q: q}
}

// Create persiste una entrada de producto terminado.
func (r *ProductionReceiptRepo) Create(ctx context.Context, receipt *entity.ProductionReceipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	query := `
		INSERT INTO production_receipts (id, receipt_no, manufacturing_order_id, product_id, quantity, uom, batch_no, expired_date, warehouse_id, ledger_entry_id, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		receipt.ID, receipt.ReceiptNo, receipt.ManufacturingOrderID, receipt.ProductID,
		receipt.Quantity, receipt.UOM, receipt.BatchNo, receipt.ExpiredDate,
		receipt.WarehouseID, receipt.LedgerEntryID, nullIfEmpty(receipt.Notes),
		nullIfEmpty(receipt.CreatedBy), receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create production receipt: %w", err)
	}
	return nil
}

// GetByOrder lista las entradas de producto terminado de una orden.
func (r *ProductionReceiptRepo) GetByOrder(ctx context.Context, orderID string) ([]*entity.ProductionReceipt, error) {
	query := `
		SELECT id, receipt_no, manufacturing_order_id, product_id, quantity, uom, batch_no, expired_date, warehouse_id, ledger_entry_id, notes, created_by, created_at
		FROM production_receipts WHERE manufacturing_order_id = $1
		ORDER BY created_at ASC`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list production receipts: %w", err)
	}
	defer rows.Close()

	var receipts []*entity.ProductionReceipt
	for rows.Next() {
		var pr entity.ProductionReceipt
		var notes, createdBy *string
		if err := rows.Scan(&pr.ID, &pr.ReceiptNo, &pr.ManufacturingOrderID, &pr.ProductID,
			&pr.Quantity, &pr.UOM, &pr.BatchNo, &pr.ExpiredDate, &pr.WarehouseID,
			&pr.LedgerEntryID, &notes, &createdBy, &pr.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production receipt: %w", err)
		}
		if notes != nil {
			pr.Notes = *notes
		}
		if createdBy != nil {
			pr.CreatedBy = *createdBy
		}
		receipts = append(receipts, &pr)
	}
	return receipts, rows.Err()
}
