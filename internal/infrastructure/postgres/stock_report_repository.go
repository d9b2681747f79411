package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.StockReportRepository = (*StockReportRepo)(nil)

// StockReportRepo consultas de solo lectura sobre el libro de inventario.
// Siempre sobre el pool: ninguna consulta toma bloqueos.
type StockReportRepo struct {
	q Querier
}

// NewStockReportRepository construye el adaptador.
func NewStockReportRepository(q Querier) *StockReportRepo {
	return &StockReportRepo{q: q}
}

// StockByBatch agrupa los lotes vivos por (batch, vencimiento) en orden FEFO.
// Incluye vencidos: la vista previa los reporta con estado EXPIRED en vez de
// ocultarlos.
func (r *StockReportRepo) StockByBatch(ctx context.Context, productID, warehouseID string) ([]repository.BatchStock, error) {
	query := `
		SELECT batch_no, expired_date, SUM(remain) AS available
		FROM inventory_ledger
		WHERE product_id = $1 AND warehouse_id = $2
		  AND remain > 0 AND delete_flag = false
		GROUP BY batch_no, expired_date
		ORDER BY COALESCE(expired_date, DATE '9999-12-31') ASC, batch_no ASC`
	rows, err := r.q.Query(ctx, query, productID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("stock by batch: %w", err)
	}
	defer rows.Close()

	var groups []repository.BatchStock
	for rows.Next() {
		var g repository.BatchStock
		if err := rows.Scan(&g.BatchNo, &g.ExpiredDate, &g.Available); err != nil {
			return nil, fmt.Errorf("scan batch stock: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// StockBalance devuelve el saldo del producto por bodega.
func (r *StockReportRepo) StockBalance(ctx context.Context, productID, warehouseID string) ([]repository.WarehouseStock, error) {
	query := `
		SELECT l.warehouse_id, w.code, SUM(l.remain) AS total
		FROM inventory_ledger l
		JOIN warehouses w ON w.id = l.warehouse_id
		WHERE l.product_id = $1 AND l.remain > 0 AND l.delete_flag = false`
	args := []any{productID}
	if warehouseID != "" {
		query += " AND l.warehouse_id = $2"
		args = append(args, warehouseID)
	}
	query += `
		GROUP BY l.warehouse_id, w.code
		ORDER BY w.code ASC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stock balance: %w", err)
	}
	defer rows.Close()

	var balances []repository.WarehouseStock
	for rows.Next() {
		var b repository.WarehouseStock
		if err := rows.Scan(&b.WarehouseID, &b.WarehouseCode, &b.Total); err != nil {
			return nil, fmt.Errorf("scan stock balance: %w", err)
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

// EligibleRemain suma el saldo no vencido del producto en la bodega.
func (r *StockReportRepo) EligibleRemain(ctx context.Context, productID, warehouseID string, today time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(remain), 0)
		FROM inventory_ledger
		WHERE product_id = $1 AND warehouse_id = $2
		  AND remain > 0 AND delete_flag = false
		  AND (expired_date IS NULL OR expired_date >= $3::date)`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, productID, warehouseID, today).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("eligible remain: %w", err)
	}
	return total, nil
}

// ExpiringStock lista los batches con saldo que vencen hasta la fecha límite.
func (r *StockReportRepo) ExpiringStock(ctx context.Context, warehouseID string, until time.Time) ([]repository.ExpiringBatch, error) {
	query := `
		SELECT l.product_id, p.sku, p.name, l.warehouse_id, l.batch_no, l.expired_date, SUM(l.remain) AS remain
		FROM inventory_ledger l
		JOIN products p ON p.id = l.product_id
		WHERE l.remain > 0 AND l.delete_flag = false
		  AND l.expired_date IS NOT NULL AND l.expired_date <= $1::date`
	args := []any{until}
	if warehouseID != "" {
		query += " AND l.warehouse_id = $2"
		args = append(args, warehouseID)
	}
	query += `
		GROUP BY l.product_id, p.sku, p.name, l.warehouse_id, l.batch_no, l.expired_date
		ORDER BY l.expired_date ASC, l.batch_no ASC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("expiring stock: %w", err)
	}
	defer rows.Close()

	var batches []repository.ExpiringBatch
	for rows.Next() {
		var b repository.ExpiringBatch
		if err := rows.Scan(&b.ProductID, &b.SKU, &b.ProductName, &b.WarehouseID,
			&b.BatchNo, &b.ExpiredDate, &b.Remain); err != nil {
			return nil, fmt.Errorf("scan expiring batch: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// BatchOrigins lista los asientos de entrada (quantity > 0) que crearon stock
// del batch: recepciones y entradas de producción.
func (r *StockReportRepo) BatchOrigins(ctx context.Context, productID, batchNo string) ([]repository.BatchOrigin, error) {
	query := `
		SELECT id, type, warehouse_id, quantity, expired_date, COALESCE(created_by, ''), created_at
		FROM inventory_ledger
		WHERE product_id = $1 AND batch_no = $2
		  AND quantity > 0 AND delete_flag = false
		ORDER BY id ASC`
	rows, err := r.q.Query(ctx, query, productID, batchNo)
	if err != nil {
		return nil, fmt.Errorf("batch origins: %w", err)
	}
	defer rows.Close()

	var origins []repository.BatchOrigin
	for rows.Next() {
		var o repository.BatchOrigin
		if err := rows.Scan(&o.LedgerEntryID, &o.Type, &o.WarehouseID, &o.Quantity,
			&o.ExpiredDate, &o.CreatedBy, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan batch origin: %w", err)
		}
		origins = append(origins, o)
	}
	return origins, rows.Err()
}

// BatchLocations devuelve dónde queda saldo vivo del batch.
func (r *StockReportRepo) BatchLocations(ctx context.Context, productID, batchNo string) ([]repository.WarehouseStock, error) {
	query := `
		SELECT l.warehouse_id, w.code, SUM(l.remain) AS total
		FROM inventory_ledger l
		JOIN warehouses w ON w.id = l.warehouse_id
		WHERE l.product_id = $1 AND l.batch_no = $2
		  AND l.remain > 0 AND l.delete_flag = false
		GROUP BY l.warehouse_id, w.code
		ORDER BY w.code ASC`
	rows, err := r.q.Query(ctx, query, productID, batchNo)
	if err != nil {
		return nil, fmt.Errorf("batch locations: %w", err)
	}
	defer rows.Close()

	var locations []repository.WarehouseStock
	for rows.Next() {
		var b repository.WarehouseStock
		if err := rows.Scan(&b.WarehouseID, &b.WarehouseCode, &b.Total); err != nil {
			return nil, fmt.Errorf("scan batch location: %w", err)
		}
		locations = append(locations, b)
	}
	return locations, rows.Err()
}

// BatchConsumptions lista los consumos del batch con su documento de emisión.
// LEFT JOIN: asientos negativos antiguos podrían no tener detalle asociado.
func (r *StockReportRepo) BatchConsumptions(ctx context.Context, productID, batchNo string) ([]repository.BatchConsumption, error) {
	query := `
		SELECT l.id, COALESCE(mi.issue_no, ''), COALESCE(d.manufacturing_order_id, ''), l.warehouse_id, l.quantity, COALESCE(l.created_by, ''), l.created_at
		FROM inventory_ledger l
		LEFT JOIN material_issue_details d ON d.id = l.source_detail_id
		LEFT JOIN material_issues mi ON mi.id = d.material_issue_id
		WHERE l.product_id = $1 AND l.batch_no = $2
		  AND l.quantity < 0 AND l.delete_flag = false
		ORDER BY l.id ASC`
	rows, err := r.q.Query(ctx, query, productID, batchNo)
	if err != nil {
		return nil, fmt.Errorf("batch consumptions: %w", err)
	}
	defer rows.Close()

	var consumptions []repository.BatchConsumption
	for rows.Next() {
		var c repository.BatchConsumption
		if err := rows.Scan(&c.LedgerEntryID, &c.IssueNo, &c.ManufacturingOrderID,
			&c.WarehouseID, &c.Quantity, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan batch consumption: %w", err)
		}
		consumptions = append(consumptions, c)
	}
	return consumptions, rows.Err()
}

// ProductionImpact agrega el efecto de producción por producto en [from, to).
// quantity es con signo, así que el neto es la suma directa; el consumo se
// reporta en positivo.
func (r *StockReportRepo) ProductionImpact(ctx context.Context, from, to time.Time) ([]repository.ProductionImpactRow, error) {
	query := `
		SELECT l.product_id, p.name,
		       SUM(CASE WHEN l.type = $1 THEN l.quantity ELSE 0 END) AS produced,
		       SUM(CASE WHEN l.type = $2 THEN -l.quantity ELSE 0 END) AS consumed,
		       SUM(l.quantity) AS net_change
		FROM inventory_ledger l
		JOIN products p ON p.id = l.product_id
		WHERE l.type IN ($1, $2) AND l.delete_flag = false
		  AND l.created_at >= $3 AND l.created_at < $4
		GROUP BY l.product_id, p.name
		HAVING SUM(l.quantity) <> 0
		ORDER BY ABS(SUM(l.quantity)) DESC`
	rows, err := r.q.Query(ctx, query, entity.EntryTypeProductionIn, entity.EntryTypeProductionOut, from, to)
	if err != nil {
		return nil, fmt.Errorf("production impact: %w", err)
	}
	defer rows.Close()

	var impact []repository.ProductionImpactRow
	for rows.Next() {
		var row repository.ProductionImpactRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Produced, &row.Consumed, &row.NetChange); err != nil {
			return nil, fmt.Errorf("scan production impact: %w", err)
		}
		impact = append(impact, row)
	}
	return impact, rows.Err()
}

// ListEntries lista asientos del libro con filtros opcionales, más recientes primero.
func (r *StockReportRepo) ListEntries(ctx context.Context, f repository.LedgerFilter) ([]entity.LedgerEntry, error) {
	query := `
		SELECT id, type, product_id, warehouse_id, quantity, remain, batch_no, expired_date,
		       COALESCE(source_detail_id, ''), COALESCE(group_id, ''), COALESCE(created_by, ''), created_at, delete_flag
		FROM inventory_ledger
		WHERE delete_flag = false`
	args := []any{}
	pos := 1
	if f.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, f.ProductID)
		pos++
	}
	if f.WarehouseID != "" {
		query += fmt.Sprintf(" AND warehouse_id = $%d", pos)
		args = append(args, f.WarehouseID)
		pos++
	}
	if f.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, f.Type)
		pos++
	}
	if f.GroupID != "" {
		query += fmt.Sprintf(" AND group_id = $%d", pos)
		args = append(args, f.GroupID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.Type, &e.ProductID, &e.WarehouseID, &e.Quantity,
			&e.Remain, &e.BatchNo, &e.ExpiredDate, &e.SourceDetailID, &e.GroupID,
			&e.CreatedBy, &e.CreatedAt, &e.Deleted); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
