package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo implementación sobre PostgreSQL (usable con pool o tx).
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

const insertBOMDetailSQL = `
	INSERT INTO bom_details (id, bom_header_id, product_id, quantity, uom, scrap_rate)
	VALUES ($1, $2, $3, $4, $5, $6)`

// Create inserta cabecera y componentes en un solo batch. pgx envía el batch
// con un único Sync, así que PostgreSQL lo ejecuta como transacción implícita:
// si un componente falla, la cabecera tampoco queda.
func (r *BOMRepo) Create(ctx context.Context, h *entity.BOMHeader) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO bom_headers (id, code, name, product_id, output_qty, uom, bom_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		h.ID, h.Code, h.Name, h.ProductID, h.OutputQty, h.UOM, h.BOMType, h.Status, h.CreatedAt, h.UpdatedAt,
	)
	for i := range h.Details {
		d := &h.Details[i]
		if d.ID == "" {
			d.ID = uuid.New().String()
		}
		d.BOMHeaderID = h.ID
		batch.Queue(insertBOMDetailSQL, d.ID, d.BOMHeaderID, d.ProductID, d.Quantity, d.UOM, d.ScrapRate)
	}

	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: BOM %s", domain.ErrDuplicate, h.Code)
			}
			return fmt.Errorf("create BOM: %w", err)
		}
	}
	return br.Close()
}

// GetByID obtiene cabecera y componentes. Retorna (nil, nil) si no existe.
func (r *BOMRepo) GetByID(ctx context.Context, id string) (*entity.BOMHeader, error) {
	query := `
		SELECT id, code, name, product_id, output_qty, uom, bom_type, status, created_at, updated_at
		FROM bom_headers WHERE id = $1`
	h, err := scanBOMHeader(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get BOM: %w", err)
	}
	if h.Details, err = r.detailsOf(ctx, h.ID); err != nil {
		return nil, err
	}
	return h, nil
}

// GetActiveByProduct devuelve el BOM ACTIVO más reciente del producto de
// salida, con componentes. Retorna (nil, nil) si no hay ninguno.
func (r *BOMRepo) GetActiveByProduct(ctx context.Context, productID string) (*entity.BOMHeader, error) {
	query := `
		SELECT id, code, name, product_id, output_qty, uom, bom_type, status, created_at, updated_at
		FROM bom_headers WHERE product_id = $1 AND status = $2
		ORDER BY updated_at DESC LIMIT 1`
	h, err := scanBOMHeader(r.q.QueryRow(ctx, query, productID, entity.BOMStatusActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active BOM: %w", err)
	}
	if h.Details, err = r.detailsOf(ctx, h.ID); err != nil {
		return nil, err
	}
	return h, nil
}

// List lista cabeceras (sin componentes), opcionalmente filtradas por estado.
func (r *BOMRepo) List(ctx context.Context, status string) ([]*entity.BOMHeader, error) {
	query := `
		SELECT id, code, name, product_id, output_qty, uom, bom_type, status, created_at, updated_at
		FROM bom_headers`
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY code ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list BOMs: %w", err)
	}
	defer rows.Close()

	var headers []*entity.BOMHeader
	for rows.Next() {
		h, err := scanBOMHeader(rows)
		if err != nil {
			return nil, fmt.Errorf("scan BOM header: %w", err)
		}
		headers = append(headers, h)
	}
	return headers, rows.Err()
}

// ReplaceDetails reemplaza los componentes en un solo batch (transacción
// implícita: el DELETE y los INSERT quedan o se revierten juntos).
func (r *BOMRepo) ReplaceDetails(ctx context.Context, bomID string, details []entity.BOMDetail) error {
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM bom_details WHERE bom_header_id = $1`, bomID)
	for i := range details {
		d := &details[i]
		if d.ID == "" {
			d.ID = uuid.New().String()
		}
		d.BOMHeaderID = bomID
		batch.Queue(insertBOMDetailSQL, d.ID, d.BOMHeaderID, d.ProductID, d.Quantity, d.UOM, d.ScrapRate)
	}
	batch.Queue(`UPDATE bom_headers SET updated_at = now() WHERE id = $1`, bomID)

	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("replace BOM details: %w", err)
		}
	}
	return br.Close()
}

// UpdateStatus cambia el estado del BOM. Activar degrada a INACTIVE cualquier
// otro BOM ACTIVE del mismo producto en la misma sentencia, así el invariante
// "a lo sumo uno activo por producto" no depende de una transacción externa.
func (r *BOMRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE bom_headers SET status = $2, updated_at = now() WHERE id = $1`
	if status == entity.BOMStatusActive {
		query = `
			WITH demoted AS (
				UPDATE bom_headers
				SET status = 'INACTIVE', updated_at = now()
				WHERE status = 'ACTIVE' AND id <> $1
				  AND product_id = (SELECT product_id FROM bom_headers WHERE id = $1)
			)
			UPDATE bom_headers SET status = $2, updated_at = now() WHERE id = $1`
	}
	tag, err := r.q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update BOM status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextSequence devuelve el siguiente consecutivo para códigos con el prefijo dado.
func (r *BOMRepo) NextSequence(ctx context.Context, prefix string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) + 1 FROM bom_headers WHERE code LIKE $1 || '%'`, prefix).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next BOM sequence: %w", err)
	}
	return n, nil
}

func (r *BOMRepo) detailsOf(ctx context.Context, bomID string) ([]entity.BOMDetail, error) {
	query := `
		SELECT id, bom_header_id, product_id, quantity, uom, scrap_rate
		FROM bom_details WHERE bom_header_id = $1
		ORDER BY product_id ASC`
	rows, err := r.q.Query(ctx, query, bomID)
	if err != nil {
		return nil, fmt.Errorf("list BOM details: %w", err)
	}
	defer rows.Close()

	var details []entity.BOMDetail
	for rows.Next() {
		var d entity.BOMDetail
		if err := rows.Scan(&d.ID, &d.BOMHeaderID, &d.ProductID, &d.Quantity, &d.UOM, &d.ScrapRate); err != nil {
			return nil, fmt.Errorf("scan BOM detail: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func scanBOMHeader(row pgx.Row) (*entity.BOMHeader, error) {
	var h entity.BOMHeader
	err := row.Scan(&h.ID, &h.Code, &h.Name, &h.ProductID, &h.OutputQty, &h.UOM,
		&h.BOMType, &h.Status, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}
