// Package reports implementa las consultas de solo lectura sobre el libro de
// inventario: saldos, vencimientos próximos, trazabilidad de batches, impacto
// de producción y auditoría de asientos. Ninguna toma bloqueos.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/allocation"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// UseCase agrupa los reportes del libro.
type UseCase struct {
	reportRepo repository.StockReportRepository
	thresholds allocation.Thresholds
}

// NewUseCase construye el caso de uso con los horizontes de clasificación de
// vencimientos de la configuración.
func NewUseCase(reportRepo repository.StockReportRepository, thresholds allocation.Thresholds) *UseCase {
	return &UseCase{reportRepo: reportRepo, thresholds: thresholds}
}

// StockBalance devuelve el saldo del producto por bodega y el total.
// warehouseID vacío = todas las bodegas.
func (uc *UseCase) StockBalance(ctx context.Context, productID, warehouseID string) ([]repository.WarehouseStock, decimal.Decimal, error) {
	if productID == "" {
		return nil, decimal.Zero, domain.ErrInvalidInput
	}
	rows, err := uc.reportRepo.StockBalance(ctx, productID, warehouseID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Total)
	}
	return rows, total, nil
}

// ExpiringRow es una fila del reporte de vencimientos ya clasificada.
type ExpiringRow struct {
	repository.ExpiringBatch
	ExpiryStatus string
	DaysToExpiry int
}

// ExpiringStock lista los batches con saldo que vencen dentro de los próximos
// days días (horizonte de alerta si days <= 0), clasificados contra hoy.
// Incluye lo ya vencido: sigue ocupando bodega hasta que alguien lo disponga.
func (uc *UseCase) ExpiringStock(ctx context.Context, warehouseID string, days int) ([]ExpiringRow, time.Time, error) {
	if days <= 0 {
		days = uc.thresholds.WarningDays
	}
	today := time.Now()
	until := allocation.DateOnly(today).AddDate(0, 0, days)
	batches, err := uc.reportRepo.ExpiringStock(ctx, warehouseID, until)
	if err != nil {
		return nil, until, err
	}
	rows := make([]ExpiringRow, 0, len(batches))
	for _, b := range batches {
		exp := b.ExpiredDate
		d, _ := allocation.DaysToExpiry(&exp, today)
		rows = append(rows, ExpiringRow{
			ExpiringBatch: b,
			ExpiryStatus:  allocation.ClassifyExpiry(&exp, today, uc.thresholds),
			DaysToExpiry:  d,
		})
	}
	return rows, until, nil
}

// BatchTrace es la genealogía completa de un batch.
type BatchTrace struct {
	Origins      []repository.BatchOrigin
	Locations    []repository.WarehouseStock
	Consumptions []repository.BatchConsumption
}

// TraceBatch arma la genealogía del batch: asientos de entrada que lo crearon,
// bodegas donde queda saldo y consumos con su documento de emisión. Un batch
// sin ningún asiento no existe para el libro.
func (uc *UseCase) TraceBatch(ctx context.Context, productID, batchNo string) (*BatchTrace, error) {
	if productID == "" || batchNo == "" {
		return nil, domain.ErrInvalidInput
	}
	origins, err := uc.reportRepo.BatchOrigins(ctx, productID, batchNo)
	if err != nil {
		return nil, err
	}
	if len(origins) == 0 {
		return nil, domain.ErrNotFound
	}
	locations, err := uc.reportRepo.BatchLocations(ctx, productID, batchNo)
	if err != nil {
		return nil, err
	}
	consumptions, err := uc.reportRepo.BatchConsumptions(ctx, productID, batchNo)
	if err != nil {
		return nil, err
	}
	return &BatchTrace{Origins: origins, Locations: locations, Consumptions: consumptions}, nil
}

// ProductionImpact agrega producido, consumido y neto por producto sobre los
// asientos de producción del rango [from, to).
func (uc *UseCase) ProductionImpact(ctx context.Context, from, to time.Time) ([]repository.ProductionImpactRow, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidInput
	}
	return uc.reportRepo.ProductionImpact(ctx, from, to)
}

// ListLedger lista asientos del libro, más recientes primero, con filtros
// opcionales por producto, bodega, tipo y group_id.
func (uc *UseCase) ListLedger(ctx context.Context, f repository.LedgerFilter) ([]entity.LedgerEntry, error) {
	switch f.Type {
	case "", entity.EntryTypeReceipt, entity.EntryTypeProductionIn, entity.EntryTypeProductionOut:
	default:
		return nil, domain.ErrInvalidInput
	}
	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Limit > 200 {
		f.Limit = 200
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return uc.reportRepo.ListEntries(ctx, f)
}
