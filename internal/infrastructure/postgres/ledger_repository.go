package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del libro de inventario sobre PostgreSQL
// (usable con pool o tx).
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// EligibleLotsForUpdate carga y bloquea los lotes elegibles en orden FEFO.
// El COALESCE manda los lotes sin vencimiento al final; el FOR UPDATE adquiere
// los locks en el mismo orden en que el selector los consumirá, acotando el
// riesgo de deadlock entre emisiones concurrentes.
func (r *LedgerRepo) EligibleLotsForUpdate(ctx context.Context, productID, warehouseID string, includeExpired bool, today time.Time) ([]entity.InventoryLot, error) {
	query := `
		SELECT id, product_id, warehouse_id, batch_no, expired_date, remain
		FROM inventory_ledger
		WHERE product_id = $1 AND warehouse_id = $2
		  AND remain > 0 AND delete_flag = false
		  AND ($3 OR expired_date IS NULL OR expired_date >= $4::date)
		ORDER BY COALESCE(expired_date, DATE '9999-12-31') ASC, batch_no ASC, id ASC
		FOR UPDATE`
	rows, err := r.q.Query(ctx, query, productID, warehouseID, includeExpired, today)
	if err != nil {
		return nil, fmt.Errorf("eligible lots: %w", err)
	}
	defer rows.Close()

	var lots []entity.InventoryLot
	for rows.Next() {
		var lot entity.InventoryLot
		if err := rows.Scan(&lot.ID, &lot.ProductID, &lot.WarehouseID, &lot.BatchNo, &lot.ExpiredDate, &lot.Remain); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		lots = append(lots, lot)
	}
	return lots, rows.Err()
}

// DecrementRemain descuenta qty del saldo del lote con un guard en el WHERE:
// si otro proceso ya consumió el saldo, ninguna fila coincide y se retorna
// domain.ErrConflict en lugar de dejar remain negativo.
func (r *LedgerRepo) DecrementRemain(ctx context.Context, lotID int64, qty decimal.Decimal) error {
	query := `
		UPDATE inventory_ledger
		SET remain = remain - $2
		WHERE id = $1 AND remain >= $2 AND delete_flag = false`
	tag, err := r.q.Exec(ctx, query, lotID, qty)
	if err != nil {
		return fmt.Errorf("decrement remain: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: lote %d sin saldo suficiente para %s", domain.ErrConflict, lotID, qty.String())
	}
	return nil
}

// AppendEntry inserta un asiento y devuelve el id BIGSERIAL generado.
func (r *LedgerRepo) AppendEntry(ctx context.Context, e *entity.LedgerEntry) (int64, error) {
	query := `
		INSERT INTO inventory_ledger
			(type, product_id, warehouse_id, quantity, remain, batch_no, expired_date, source_detail_id, group_id, created_by, created_at, delete_flag)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, false)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		e.Type, e.ProductID, e.WarehouseID, e.Quantity, e.Remain, e.BatchNo,
		e.ExpiredDate, nullIfEmpty(e.SourceDetailID), nullIfEmpty(e.GroupID),
		nullIfEmpty(e.CreatedBy), e.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("append ledger entry: %w", err)
	}
	e.ID = id
	return id, nil
}

// MinConsumedExpiryForOrder devuelve MIN(expired_date) de los lotes consumidos
// por las emisiones confirmadas de la orden. MIN ignora NULL: un insumo sin
// vencimiento no limita el vencimiento heredado.
func (r *LedgerRepo) MinConsumedExpiryForOrder(ctx context.Context, orderID string) (*time.Time, error) {
	query := `
		SELECT MIN(l.expired_date)
		FROM material_issue_details d
		JOIN material_issues mi ON mi.id = d.material_issue_id
		JOIN inventory_ledger l ON l.id = d.ledger_entry_id
		WHERE d.manufacturing_order_id = $1
		  AND mi.status = $2
		  AND l.delete_flag = false`
	var minExpiry *time.Time
	err := r.q.QueryRow(ctx, query, orderID, entity.IssueStatusConfirmed).Scan(&minExpiry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("min consumed expiry: %w", err)
	}
	return minExpiry, nil
}
