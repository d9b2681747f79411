package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de producción.
const (
	OrderStatusPlanned    = "PLANNED"
	OrderStatusInProgress = "IN_PROGRESS"
	OrderStatusCompleted  = "COMPLETED"
	OrderStatusCancelled  = "CANCELLED"
)

// Estados de un material requerido por la orden.
const (
	OrderMaterialPending = "PENDING"
	OrderMaterialIssued  = "ISSUED"
)

// ManufacturingOrder representa una orden de producción planificada contra un
// BOM. Los materiales se emiten desde WarehouseID; el producto terminado entra
// a TargetWarehouseID.
type ManufacturingOrder struct {
	ID                string
	OrderNo           string // MO-<yyyymmddhhmmss>
	ProductID         string // producto de salida
	BOMID             string
	QuantityPlanned   decimal.Decimal
	ProducedQty       decimal.Decimal // fijado al completar
	UOM               string
	WarehouseID       string
	TargetWarehouseID string
	Status            string
	ScheduledDate     *time.Time
	CompletionDate    *time.Time
	Notes             string
	CreatedBy         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderMaterial es un material requerido por la orden, ya explotado desde el
// BOM: RequiredQty incluye el factor de merma (scrap) del componente.
type OrderMaterial struct {
	ID                   string
	ManufacturingOrderID string
	ProductID            string
	RequiredQty          decimal.Decimal
	IssuedQty            decimal.Decimal
	UOM                  string
	Status               string
}
