package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.MaterialIssueRepository = (*MaterialIssueRepo)(nil)

// MaterialIssueRepo implementación sobre PostgreSQL (usable con pool o tx).
type MaterialIssueRepo struct {
	q Querier
}

// NewMaterialIssueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialIssueRepository(q Querier) *MaterialIssueRepo {
	return &MaterialIssueRepo{q: q}
}

// Create persiste la cabecera de una emisión de materiales.
func (r *MaterialIssueRepo) Create(ctx context.Context, issue *entity.MaterialIssue) error {
	if issue.ID == "" {
		issue.ID = uuid.New().String()
	}
	query := `
		INSERT INTO material_issues (id, issue_no, manufacturing_order_id, warehouse_id, status, group_id, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		issue.ID, issue.IssueNo, nullIfEmpty(issue.ManufacturingOrderID), issue.WarehouseID,
		issue.Status, issue.GroupID, nullIfEmpty(issue.Notes), nullIfEmpty(issue.CreatedBy),
		issue.CreatedAt, issue.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create material issue: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de consumo. Inmutable después de creada.
func (r *MaterialIssueRepo) CreateDetail(ctx context.Context, detail *entity.MaterialIssueDetail) error {
	if detail.ID == "" {
		detail.ID = uuid.New().String()
	}
	query := `
		INSERT INTO material_issue_details (id, material_issue_id, product_id, manufacturing_order_id, quantity, uom, batch_no, ledger_entry_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		detail.ID, detail.MaterialIssueID, detail.ProductID, nullIfEmpty(detail.ManufacturingOrderID),
		detail.Quantity, detail.UOM, detail.BatchNo, detail.LedgerEntryID, detail.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create issue detail: %w", err)
	}
	return nil
}

// GetByID obtiene una emisión por ID. Retorna (nil, nil) si no existe.
func (r *MaterialIssueRepo) GetByID(ctx context.Context, id string) (*entity.MaterialIssue, error) {
	query := `
		SELECT id, issue_no, manufacturing_order_id, warehouse_id, status, group_id, notes, created_by, created_at, updated_at
		FROM material_issues WHERE id = $1`
	issue, err := scanIssue(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material issue: %w", err)
	}
	return issue, nil
}

// GetDetailsByIssueID lista las líneas de una emisión en orden de inserción,
// que es el orden FEFO en que el ejecutor las escribió.
func (r *MaterialIssueRepo) GetDetailsByIssueID(ctx context.Context, issueID string) ([]*entity.MaterialIssueDetail, error) {
	query := `
		SELECT id, material_issue_id, product_id, manufacturing_order_id, quantity, uom, batch_no, ledger_entry_id, created_at
		FROM material_issue_details WHERE material_issue_id = $1
		ORDER BY ledger_entry_id ASC`
	rows, err := r.q.Query(ctx, query, issueID)
	if err != nil {
		return nil, fmt.Errorf("list issue details: %w", err)
	}
	defer rows.Close()

	var details []*entity.MaterialIssueDetail
	for rows.Next() {
		var d entity.MaterialIssueDetail
		var orderID *string
		if err := rows.Scan(&d.ID, &d.MaterialIssueID, &d.ProductID, &orderID,
			&d.Quantity, &d.UOM, &d.BatchNo, &d.LedgerEntryID, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan issue detail: %w", err)
		}
		if orderID != nil {
			d.ManufacturingOrderID = *orderID
		}
		details = append(details, &d)
	}
	return details, rows.Err()
}

// ListByOrder lista las emisiones asociadas a una orden de fabricación.
func (r *MaterialIssueRepo) ListByOrder(ctx context.Context, orderID string) ([]*entity.MaterialIssue, error) {
	query := `
		SELECT id, issue_no, manufacturing_order_id, warehouse_id, status, group_id, notes, created_by, created_at, updated_at
		FROM material_issues WHERE manufacturing_order_id = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list issues by order: %w", err)
	}
	defer rows.Close()

	var issues []*entity.MaterialIssue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material issue: %w", err)
		}
		issues = append(issues, issue)
	}
	return issues, rows.Err()
}

func scanIssue(row pgx.Row) (*entity.MaterialIssue, error) {
	var issue entity.MaterialIssue
	var orderID, notes, createdBy *string
	err := row.Scan(&issue.ID, &issue.IssueNo, &orderID, &issue.WarehouseID,
		&issue.Status, &issue.GroupID, &notes, &createdBy, &issue.CreatedAt, &issue.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if orderID != nil {
		issue.ManufacturingOrderID = *orderID
	}
	if notes != nil {
		issue.Notes = *notes
	}
	if createdBy != nil {
		issue.CreatedBy = *createdBy
	}
	return &issue, nil
}
