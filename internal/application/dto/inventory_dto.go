package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PreviewRequest parámetros de GET /api/inventory/preview.
type PreviewRequest struct {
	ProductID   string `query:"product_id" validate:"required"`
	WarehouseID string `query:"warehouse_id" validate:"required"`
}

// BatchStockDTO un grupo (batch, vencimiento) con su saldo y clasificación.
type BatchStockDTO struct {
	BatchNo      string          `json:"batch_no"`
	AvailableQty decimal.Decimal `json:"available_qty"`
	ExpiredDate  *time.Time      `json:"expired_date,omitempty"`
	ExpiryStatus string          `json:"expiry_status"`
	DaysToExpiry *int            `json:"days_to_expiry,omitempty"`
}

// PreviewResponse salida de la vista previa de stock por batch.
type PreviewResponse struct {
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id"`
	Total       decimal.Decimal `json:"total"`
	Batches     []BatchStockDTO `json:"batches"`
}

// PreviewIssueRequest parámetros de GET /api/inventory/preview-issue.
type PreviewIssueRequest struct {
	ProductID    string          `query:"product_id" validate:"required"`
	WarehouseID  string          `query:"warehouse_id" validate:"required"`
	Quantity     decimal.Decimal `query:"quantity" validate:"required"`
	AllowExpired bool            `query:"allow_expired"`
}

// PlanLineDTO una línea del plan FEFO simulado.
type PlanLineDTO struct {
	BatchNo      string          `json:"batch_no"`
	TakeQty      decimal.Decimal `json:"take_qty"`
	ExpiredDate  *time.Time      `json:"expired_date,omitempty"`
	ExpiryStatus string          `json:"expiry_status"`
}

// PreviewIssueResponse plan FEFO simulado, sin bloqueo ni efectos. No es
// autoritativo: el estado puede cambiar antes de la emisión real.
type PreviewIssueResponse struct {
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id"`
	Requested   decimal.Decimal `json:"requested"`
	Lines       []PlanLineDTO   `json:"lines"`
	Unsatisfied decimal.Decimal `json:"unsatisfied"`
	Satisfiable bool            `json:"satisfiable"`
}

// ReceiveStockRequest body de POST /api/inventory/receipts.
type ReceiveStockRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	WarehouseID string          `json:"warehouse_id" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity" validate:"required"`
	BatchNo     string          `json:"batch_no" validate:"required"`
	ExpiredDate string          `json:"expired_date,omitempty"` // YYYY-MM-DD; vacío = sin vencimiento
}

// ReceiveStockResponse salida de la recepción: el lote creado.
type ReceiveStockResponse struct {
	LedgerEntryID int64           `json:"ledger_entry_id"`
	ProductID     string          `json:"product_id"`
	WarehouseID   string          `json:"warehouse_id"`
	BatchNo       string          `json:"batch_no"`
	Quantity      decimal.Decimal `json:"quantity"`
	ExpiredDate   *time.Time      `json:"expired_date,omitempty"`
}

// IssueMaterialRequest body de POST /api/inventory/issues (emisión suelta).
type IssueMaterialRequest struct {
	ProductID            string          `json:"product_id" validate:"required"`
	WarehouseID          string          `json:"warehouse_id" validate:"required"`
	Quantity             decimal.Decimal `json:"quantity" validate:"required"`
	ManufacturingOrderID string          `json:"manufacturing_order_id,omitempty"`
	AllowExpired         bool            `json:"allow_expired"`
	Notes                string          `json:"notes,omitempty"`
}

// IssueLineDTO una línea de consumo ejecutada.
type IssueLineDTO struct {
	ProductID     string          `json:"product_id"`
	BatchNo       string          `json:"batch_no"`
	Quantity      decimal.Decimal `json:"quantity"`
	UOM           string          `json:"uom"`
	ExpiredDate   *time.Time      `json:"expired_date,omitempty"`
	LedgerEntryID int64           `json:"ledger_entry_id"` // lote consumido
}

// IssueResponse documento de emisión confirmado.
type IssueResponse struct {
	ID                   string         `json:"id"`
	IssueNo              string         `json:"issue_no"`
	ManufacturingOrderID string         `json:"manufacturing_order_id,omitempty"`
	WarehouseID          string         `json:"warehouse_id"`
	Status               string         `json:"status"`
	GroupID              string         `json:"group_id"`
	Lines                []IssueLineDTO `json:"lines"`
	CreatedBy            string         `json:"created_by,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
}

// LedgerEntryDTO un asiento del libro para el listado de auditoría.
type LedgerEntryDTO struct {
	ID             int64           `json:"id"`
	Type           string          `json:"type"`
	ProductID      string          `json:"product_id"`
	WarehouseID    string          `json:"warehouse_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	Remain         decimal.Decimal `json:"remain"`
	BatchNo        string          `json:"batch_no"`
	ExpiredDate    *time.Time      `json:"expired_date,omitempty"`
	SourceDetailID string          `json:"source_detail_id,omitempty"`
	GroupID        string          `json:"group_id,omitempty"`
	CreatedBy      string          `json:"created_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// LedgerListResponse listado paginado de asientos.
type LedgerListResponse struct {
	Items []LedgerEntryDTO `json:"items"`
	Page  PageResponse     `json:"page"`
}
