package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest body de POST /api/production/orders.
type CreateOrderRequest struct {
	ProductID         string          `json:"product_id" validate:"required"`
	BOMID             string          `json:"bom_id,omitempty"` // vacío = BOM activo del producto
	QuantityPlanned   decimal.Decimal `json:"quantity_planned" validate:"required"`
	WarehouseID       string          `json:"warehouse_id" validate:"required"`
	TargetWarehouseID string          `json:"target_warehouse_id" validate:"required"`
	ScheduledDate     string          `json:"scheduled_date,omitempty"` // YYYY-MM-DD
	Notes             string          `json:"notes,omitempty"`
}

// OrderMaterialDTO un material explotado de la orden.
type OrderMaterialDTO struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	RequiredQty decimal.Decimal `json:"required_qty"`
	IssuedQty   decimal.Decimal `json:"issued_qty"`
	UOM         string          `json:"uom"`
	Status      string          `json:"status"`
}

// OrderResponse una orden de producción.
type OrderResponse struct {
	ID                string             `json:"id"`
	OrderNo           string             `json:"order_no"`
	ProductID         string             `json:"product_id"`
	BOMID             string             `json:"bom_id"`
	QuantityPlanned   decimal.Decimal    `json:"quantity_planned"`
	ProducedQty       decimal.Decimal    `json:"produced_qty"`
	UOM               string             `json:"uom"`
	WarehouseID       string             `json:"warehouse_id"`
	TargetWarehouseID string             `json:"target_warehouse_id"`
	Status            string             `json:"status"`
	ScheduledDate     *time.Time         `json:"scheduled_date,omitempty"`
	CompletionDate    *time.Time         `json:"completion_date,omitempty"`
	Notes             string             `json:"notes,omitempty"`
	Materials         []OrderMaterialDTO `json:"materials,omitempty"`
	CreatedBy         string             `json:"created_by,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
}

// OrderListResponse listado paginado de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// MaterialAvailabilityDTO disponibilidad de un material frente a lo requerido.
// No autoritativa: no toma bloqueos.
type MaterialAvailabilityDTO struct {
	ProductID   string          `json:"product_id"`
	RequiredQty decimal.Decimal `json:"required_qty"`
	Available   decimal.Decimal `json:"available"`
	Sufficient  bool            `json:"sufficient"`
}

// AvailabilityResponse chequeo de disponibilidad de una orden completa.
type AvailabilityResponse struct {
	OrderID       string                    `json:"order_id"`
	WarehouseID   string                    `json:"warehouse_id"`
	AllSufficient bool                      `json:"all_sufficient"`
	Materials     []MaterialAvailabilityDTO `json:"materials"`
}

// IssueOrderRequest body de POST /api/production/orders/:id/issue.
type IssueOrderRequest struct {
	AllowExpired bool   `json:"allow_expired"`
	Notes        string `json:"notes,omitempty"`
}

// CompleteOrderRequest body de POST /api/production/orders/:id/complete.
type CompleteOrderRequest struct {
	ProducedQty decimal.Decimal `json:"produced_qty" validate:"required"`
	BatchNo     string          `json:"batch_no" validate:"required"`
	Notes       string          `json:"notes,omitempty"`
}

// CompleteOrderResponse salida del cierre de producción.
type CompleteOrderResponse struct {
	ReceiptID     string          `json:"receipt_id"`
	ReceiptNo     string          `json:"receipt_no"`
	OrderID       string          `json:"order_id"`
	ProductID     string          `json:"product_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	BatchNo       string          `json:"batch_no"`
	ExpiredDate   *time.Time      `json:"expired_date,omitempty"`
	WarehouseID   string          `json:"warehouse_id"`
	LedgerEntryID int64           `json:"ledger_entry_id"`
}
