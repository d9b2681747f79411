package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// BatchStock es un grupo (batch, vencimiento) con su saldo agregado.
type BatchStock struct {
	BatchNo     string
	ExpiredDate *time.Time
	Available   decimal.Decimal
}

// WarehouseStock es el saldo total de un producto en una bodega.
type WarehouseStock struct {
	WarehouseID   string
	WarehouseCode string
	Total         decimal.Decimal
}

// ExpiringBatch es una fila del reporte de vencimientos próximos.
type ExpiringBatch struct {
	ProductID   string
	SKU         string
	ProductName string
	WarehouseID string
	BatchNo     string
	ExpiredDate time.Time
	Remain      decimal.Decimal
}

// BatchOrigin es un asiento de entrada que creó stock del batch.
type BatchOrigin struct {
	LedgerEntryID int64
	Type          string
	WarehouseID   string
	Quantity      decimal.Decimal
	ExpiredDate   *time.Time
	CreatedBy     string
	CreatedAt     time.Time
}

// BatchConsumption es un consumo del batch con su documento de emisión.
type BatchConsumption struct {
	LedgerEntryID        int64
	IssueNo              string
	ManufacturingOrderID string
	WarehouseID          string
	Quantity             decimal.Decimal
	CreatedBy            string
	CreatedAt            time.Time
}

// ProductionImpactRow es el efecto neto de producción sobre un producto:
// cuánto entró por producción terminada y cuánto se consumió como insumo.
type ProductionImpactRow struct {
	ProductID   string
	ProductName string
	Produced    decimal.Decimal
	Consumed    decimal.Decimal
	NetChange   decimal.Decimal
}

// LedgerFilter filtra el listado de auditoría del libro.
type LedgerFilter struct {
	ProductID   string
	WarehouseID string
	Type        string
	GroupID     string
	Limit       int
	Offset      int
}

// StockReportRepository agrupa las consultas de solo lectura sobre el libro.
// Ninguna toma bloqueos: son proyecciones no autoritativas (el estado puede
// cambiar entre la consulta y una emisión posterior).
type StockReportRepository interface {
	// StockByBatch agrupa los lotes vivos del producto/bodega por
	// (batch, vencimiento) en orden FEFO. Incluye lotes vencidos.
	StockByBatch(ctx context.Context, productID, warehouseID string) ([]BatchStock, error)

	// StockBalance devuelve el saldo del producto por bodega
	// (warehouseID vacío = todas las bodegas).
	StockBalance(ctx context.Context, productID, warehouseID string) ([]WarehouseStock, error)

	// EligibleRemain suma el saldo elegible NO vencido del producto en la
	// bodega (chequeos de disponibilidad; sin bloqueo, no autoritativo).
	EligibleRemain(ctx context.Context, productID, warehouseID string, today time.Time) (decimal.Decimal, error)

	// ExpiringStock lista los batches con saldo que vencen hasta la fecha
	// límite, ordenados por vencimiento.
	ExpiringStock(ctx context.Context, warehouseID string, until time.Time) ([]ExpiringBatch, error)

	// BatchOrigins / BatchLocations / BatchConsumptions arman la genealogía
	// de un batch: de dónde entró, dónde queda y quién lo consumió.
	BatchOrigins(ctx context.Context, productID, batchNo string) ([]BatchOrigin, error)
	BatchLocations(ctx context.Context, productID, batchNo string) ([]WarehouseStock, error)
	BatchConsumptions(ctx context.Context, productID, batchNo string) ([]BatchConsumption, error)

	// ProductionImpact agrega producido/consumido/neto por producto sobre los
	// asientos de producción del rango [from, to).
	ProductionImpact(ctx context.Context, from, to time.Time) ([]ProductionImpactRow, error)

	// ListEntries lista asientos del libro, más recientes primero.
	ListEntries(ctx context.Context, f LedgerFilter) ([]entity.LedgerEntry, error)
}
