package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseStockDTO saldo de un producto en una bodega.
type WarehouseStockDTO struct {
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseCode string          `json:"warehouse_code"`
	Total         decimal.Decimal `json:"total"`
}

// StockBalanceResponse saldo de un producto por bodega.
type StockBalanceResponse struct {
	ProductID string              `json:"product_id"`
	Total     decimal.Decimal     `json:"total"`
	ByWH      []WarehouseStockDTO `json:"warehouses"`
}

// ExpiringBatchDTO una fila del reporte de vencimientos próximos.
type ExpiringBatchDTO struct {
	ProductID    string          `json:"product_id"`
	SKU          string          `json:"sku"`
	ProductName  string          `json:"product_name"`
	WarehouseID  string          `json:"warehouse_id"`
	BatchNo      string          `json:"batch_no"`
	ExpiredDate  time.Time       `json:"expired_date"`
	Remain       decimal.Decimal `json:"remain"`
	ExpiryStatus string          `json:"expiry_status"`
	DaysToExpiry int             `json:"days_to_expiry"`
}

// ExpiringStockResponse reporte de stock por vencer.
type ExpiringStockResponse struct {
	Until   time.Time          `json:"until"`
	Batches []ExpiringBatchDTO `json:"batches"`
}

// BatchOriginDTO asiento de entrada que creó stock del batch.
type BatchOriginDTO struct {
	LedgerEntryID int64           `json:"ledger_entry_id"`
	Type          string          `json:"type"`
	WarehouseID   string          `json:"warehouse_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	ExpiredDate   *time.Time      `json:"expired_date,omitempty"`
	CreatedBy     string          `json:"created_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BatchConsumptionDTO consumo del batch con su documento de emisión.
type BatchConsumptionDTO struct {
	LedgerEntryID        int64           `json:"ledger_entry_id"`
	IssueNo              string          `json:"issue_no,omitempty"`
	ManufacturingOrderID string          `json:"manufacturing_order_id,omitempty"`
	WarehouseID          string          `json:"warehouse_id"`
	Quantity             decimal.Decimal `json:"quantity"`
	CreatedBy            string          `json:"created_by,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}

// BatchTraceResponse genealogía de un batch: de dónde entró, dónde queda
// saldo y quién lo consumió.
type BatchTraceResponse struct {
	ProductID    string                `json:"product_id"`
	BatchNo      string                `json:"batch_no"`
	Origins      []BatchOriginDTO      `json:"origins"`
	Locations    []WarehouseStockDTO   `json:"locations"`
	Consumptions []BatchConsumptionDTO `json:"consumptions"`
}

// ProductionImpactDTO efecto neto de producción sobre un producto.
type ProductionImpactDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Produced    decimal.Decimal `json:"produced"`
	Consumed    decimal.Decimal `json:"consumed"`
	NetChange   decimal.Decimal `json:"net_change"`
}

// ProductionImpactResponse reporte de impacto de producción en un rango.
type ProductionImpactResponse struct {
	From  time.Time             `json:"from"`
	To    time.Time             `json:"to"`
	Items []ProductionImpactDTO `json:"items"`
}
