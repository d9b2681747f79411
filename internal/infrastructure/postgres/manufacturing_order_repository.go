package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.ManufacturingOrderRepository = (*ManufacturingOrderRepo)(nil)

// ManufacturingOrderRepo implementación sobre PostgreSQL (usable con pool o tx).
type ManufacturingOrderRepo struct {
	q Querier
}

// NewManufacturingOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewManufacturingOrderRepository(q Querier) *ManufacturingOrderRepo {
	return &ManufacturingOrderRepo{q: q}
}

// Create persiste la cabecera de una orden de producción.
func (r *ManufacturingOrderRepo) Create(ctx context.Context, order *entity.ManufacturingOrder) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	query := `
		INSERT INTO manufacturing_orders (id, order_no, product_id, bom_id, quantity_planned, produced_qty, uom, warehouse_id, target_warehouse_id, status, scheduled_date, completion_date, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.OrderNo, order.ProductID, order.BOMID, order.QuantityPlanned,
		order.ProducedQty, order.UOM, order.WarehouseID, order.TargetWarehouseID,
		order.Status, order.ScheduledDate, order.CompletionDate, nullIfEmpty(order.Notes),
		nullIfEmpty(order.CreatedBy), order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create manufacturing order: %w", err)
	}
	return nil
}

// CreateMaterial persiste un material explotado de la orden.
func (r *ManufacturingOrderRepo) CreateMaterial(ctx context.Context, m *entity.OrderMaterial) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO manufacturing_order_materials (id, manufacturing_order_id, product_id, required_qty, issued_qty, uom, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ManufacturingOrderID, m.ProductID, m.RequiredQty, m.IssuedQty, m.UOM, m.Status,
	)
	if err != nil {
		return fmt.Errorf("create order material: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. Retorna (nil, nil) si no existe.
func (r *ManufacturingOrderRepo) GetByID(ctx context.Context, id string) (*entity.ManufacturingOrder, error) {
	query := `
		SELECT id, order_no, product_id, bom_id, quantity_planned, produced_qty, uom, warehouse_id, target_warehouse_id, status, scheduled_date, completion_date, notes, created_by, created_at, updated_at
		FROM manufacturing_orders WHERE id = $1`
	order, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manufacturing order: %w", err)
	}
	return order, nil
}

// GetMaterials lista los materiales explotados de la orden.
func (r *ManufacturingOrderRepo) GetMaterials(ctx context.Context, orderID string) ([]*entity.OrderMaterial, error) {
	query := `
		SELECT id, manufacturing_order_id, product_id, required_qty, issued_qty, uom, status
		FROM manufacturing_order_materials WHERE manufacturing_order_id = $1
		ORDER BY product_id ASC`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order materials: %w", err)
	}
	defer rows.Close()

	var materials []*entity.OrderMaterial
	for rows.Next() {
		var m entity.OrderMaterial
		if err := rows.Scan(&m.ID, &m.ManufacturingOrderID, &m.ProductID,
			&m.RequiredQty, &m.IssuedQty, &m.UOM, &m.Status); err != nil {
			return nil, fmt.Errorf("scan order material: %w", err)
		}
		materials = append(materials, &m)
	}
	return materials, rows.Err()
}

// List lista órdenes, opcionalmente filtradas por estado, más recientes primero.
func (r *ManufacturingOrderRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.ManufacturingOrder, error) {
	query := `
		SELECT id, order_no, product_id, bom_id, quantity_planned, produced_qty, uom, warehouse_id, target_warehouse_id, status, scheduled_date, completion_date, notes, created_by, created_at, updated_at
		FROM manufacturing_orders`
	args := []any{}
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list manufacturing orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.ManufacturingOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan manufacturing order: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// UpdateStatus cambia el estado de la orden.
func (r *ManufacturingOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE manufacturing_orders SET status = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkMaterialIssued registra la cantidad emitida y pasa el material a ISSUED.
// El guard status = PENDING evita doble emisión del mismo material.
func (r *ManufacturingOrderRepo) MarkMaterialIssued(ctx context.Context, materialID string, issued decimal.Decimal) error {
	query := `
		UPDATE manufacturing_order_materials
		SET issued_qty = issued_qty + $2, status = $3
		WHERE id = $1 AND status = $4`
	tag, err := r.q.Exec(ctx, query, materialID, issued, entity.OrderMaterialIssued, entity.OrderMaterialPending)
	if err != nil {
		return fmt.Errorf("mark material issued: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: material %s no está pendiente", domain.ErrConflict, materialID)
	}
	return nil
}

// MarkCompleted fija la cantidad producida y pasa la orden a COMPLETED.
// El guard status = IN_PROGRESS evita completar dos veces la misma orden.
func (r *ManufacturingOrderRepo) MarkCompleted(ctx context.Context, id string, producedQty decimal.Decimal, completedAt time.Time) error {
	query := `
		UPDATE manufacturing_orders
		SET produced_qty = $2, completion_date = $3, status = $4, updated_at = now()
		WHERE id = $1 AND status = $5`
	tag, err := r.q.Exec(ctx, query, id, producedQty, completedAt, entity.OrderStatusCompleted, entity.OrderStatusInProgress)
	if err != nil {
		return fmt.Errorf("mark order completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: orden %s no está en proceso", domain.ErrConflict, id)
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.ManufacturingOrder, error) {
	var order entity.ManufacturingOrder
	var notes, createdBy *string
	err := row.Scan(&order.ID, &order.OrderNo, &order.ProductID, &order.BOMID,
		&order.QuantityPlanned, &order.ProducedQty, &order.UOM, &order.WarehouseID,
		&order.TargetWarehouseID, &order.Status, &order.ScheduledDate,
		&order.CompletionDate, &notes, &createdBy, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if notes != nil {
		order.Notes = *notes
	}
	if createdBy != nil {
		order.CreatedBy = *createdBy
	}
	return &order, nil
}
