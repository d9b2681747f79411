package allocation

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/allocation"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// PreviewUseCase consulta el stock por lotes y simula planes de consumo FEFO
// sin tomar bloqueos ni escribir. Sus respuestas no son autoritativas: el
// estado puede cambiar entre la consulta y la emisión real.
type PreviewUseCase struct {
	reportRepo repository.StockReportRepository
	thresholds allocation.Thresholds
}

// NewPreviewUseCase construye el caso de uso con los horizontes de
// clasificación de vencimientos (crítico/alerta) de la configuración.
func NewPreviewUseCase(reportRepo repository.StockReportRepository, thresholds allocation.Thresholds) *PreviewUseCase {
	return &PreviewUseCase{reportRepo: reportRepo, thresholds: thresholds}
}

// BatchPreview es un grupo (batch, vencimiento) con saldo y clasificación.
type BatchPreview struct {
	BatchNo      string
	ExpiredDate  *time.Time
	Available    decimal.Decimal
	ExpiryStatus string
	DaysToExpiry *int
}

// Preview agrupa el stock vivo del producto en la bodega por
// (batch, vencimiento) en orden FEFO y clasifica cada grupo contra hoy.
// Incluye lotes vencidos: la vista muestra todo lo que hay, la elegibilidad
// la decide la emisión.
func (uc *PreviewUseCase) Preview(ctx context.Context, productID, warehouseID string) ([]BatchPreview, error) {
	if productID == "" || warehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	groups, err := uc.reportRepo.StockByBatch(ctx, productID, warehouseID)
	if err != nil {
		return nil, err
	}
	today := time.Now()
	out := make([]BatchPreview, 0, len(groups))
	for _, g := range groups {
		bp := BatchPreview{
			BatchNo:      g.BatchNo,
			ExpiredDate:  g.ExpiredDate,
			Available:    g.Available,
			ExpiryStatus: allocation.ClassifyExpiry(g.ExpiredDate, today, uc.thresholds),
		}
		if days, ok := allocation.DaysToExpiry(g.ExpiredDate, today); ok {
			bp.DaysToExpiry = &days
		}
		out = append(out, bp)
	}
	return out, nil
}

// PreviewIssue simula una emisión sin bloquear ni escribir: agrupa el stock
// por (batch, vencimiento), descarta vencidos salvo allowExpired y aplica la
// misma regla de selección que el ejecutor. Llamar dos veces con el mismo
// estado produce el mismo plan.
func (uc *PreviewUseCase) PreviewIssue(ctx context.Context, productID, warehouseID string, quantity decimal.Decimal, allowExpired bool) (allocation.Plan, error) {
	if productID == "" || warehouseID == "" {
		return allocation.Plan{}, domain.ErrInvalidInput
	}
	if !quantity.GreaterThan(decimal.Zero) {
		return allocation.Plan{}, domain.ErrInvalidInput
	}
	groups, err := uc.reportRepo.StockByBatch(ctx, productID, warehouseID)
	if err != nil {
		return allocation.Plan{}, err
	}
	today := time.Now()
	lots := make([]entity.InventoryLot, 0, len(groups))
	for _, g := range groups {
		lot := entity.InventoryLot{
			ProductID:   productID,
			WarehouseID: warehouseID,
			BatchNo:     g.BatchNo,
			ExpiredDate: g.ExpiredDate,
			Remain:      g.Available,
		}
		if !allowExpired && lot.Expired(today) {
			continue
		}
		lots = append(lots, lot)
	}
	return allocation.Select(lots, quantity), nil
}

// ExpiryStatusOf clasifica una fecha contra hoy con los umbrales del caso de
// uso. Lo reutilizan los handlers para etiquetar líneas de plan y reportes.
func (uc *PreviewUseCase) ExpiryStatusOf(expired *time.Time) string {
	return allocation.ClassifyExpiry(expired, time.Now(), uc.thresholds)
}
