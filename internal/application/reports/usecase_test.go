package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/reports"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/allocation"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// fakeReportRepo devuelve filas enlatadas y registra los argumentos con los
// que fue consultado, para verificar la normalización de filtros.
type fakeReportRepo struct {
	balances     []repository.WarehouseStock
	expiring     []repository.ExpiringBatch
	origins      []repository.BatchOrigin
	locations    []repository.WarehouseStock
	consumptions []repository.BatchConsumption
	impact       []repository.ProductionImpactRow
	entries      []entity.LedgerEntry

	gotUntil  time.Time
	gotFilter repository.LedgerFilter
}

func (f *fakeReportRepo) StockByBatch(context.Context, string, string) ([]repository.BatchStock, error) {
	return nil, nil
}

func (f *fakeReportRepo) EligibleRemain(context.Context, string, string, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeReportRepo) StockBalance(_ context.Context, productID, warehouseID string) ([]repository.WarehouseStock, error) {
	return f.balances, nil
}

func (f *fakeReportRepo) ExpiringStock(_ context.Context, warehouseID string, until time.Time) ([]repository.ExpiringBatch, error) {
	f.gotUntil = until
	return f.expiring, nil
}

func (f *fakeReportRepo) BatchOrigins(context.Context, string, string) ([]repository.BatchOrigin, error) {
	return f.origins, nil
}

func (f *fakeReportRepo) BatchLocations(context.Context, string, string) ([]repository.WarehouseStock, error) {
	return f.locations, nil
}

func (f *fakeReportRepo) BatchConsumptions(context.Context, string, string) ([]repository.BatchConsumption, error) {
	return f.consumptions, nil
}

func (f *fakeReportRepo) ProductionImpact(context.Context, time.Time, time.Time) ([]repository.ProductionImpactRow, error) {
	return f.impact, nil
}

func (f *fakeReportRepo) ListEntries(_ context.Context, filter repository.LedgerFilter) ([]entity.LedgerEntry, error) {
	f.gotFilter = filter
	return f.entries, nil
}

func newReportsUC(repo *fakeReportRepo) *reports.UseCase {
	return reports.NewUseCase(repo, allocation.DefaultThresholds())
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestStockBalance_SumaElTotal(t *testing.T) {
	repo := &fakeReportRepo{balances: []repository.WarehouseStock{
		{WarehouseID: "wh-mp", WarehouseCode: "BOD-MP", Total: dec("10.5")},
		{WarehouseID: "wh-pt", WarehouseCode: "BOD-PT", Total: dec("4.5")},
	}}
	uc := newReportsUC(repo)

	rows, total, err := uc.StockBalance(context.Background(), "mat-1", "")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.True(t, total.Equal(dec("15")), "total = suma por bodega, obtuvo %s", total)

	_, _, err = uc.StockBalance(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExpiringStock_ClasificaContraHoy(t *testing.T) {
	today := time.Now()
	day := func(offset int) time.Time { return allocation.DateOnly(today).AddDate(0, 0, offset) }

	repo := &fakeReportRepo{expiring: []repository.ExpiringBatch{
		{BatchNo: "L-VENCIDO", ExpiredDate: day(-2), Remain: dec("5")},
		{BatchNo: "L-CRITICO", ExpiredDate: day(3), Remain: dec("8")},
		{BatchNo: "L-ALERTA", ExpiredDate: day(20), Remain: dec("2")},
	}}
	uc := newReportsUC(repo)

	rows, until, err := uc.ExpiringStock(context.Background(), "", 0)
	require.NoError(t, err)

	assert.Equal(t, day(30), until, "sin días explícitos usa el horizonte de alerta")
	assert.Equal(t, repo.gotUntil, until, "el repositorio recibe el mismo horizonte")

	require.Len(t, rows, 3)
	assert.Equal(t, allocation.StatusExpired, rows[0].ExpiryStatus)
	assert.Equal(t, -2, rows[0].DaysToExpiry)
	assert.Equal(t, allocation.StatusCritical, rows[1].ExpiryStatus)
	assert.Equal(t, 3, rows[1].DaysToExpiry)
	assert.Equal(t, allocation.StatusWarning, rows[2].ExpiryStatus)

	_, until, err = uc.ExpiringStock(context.Background(), "", 7)
	require.NoError(t, err)
	assert.Equal(t, day(7), until, "días explícitos definen el horizonte")
}

func TestTraceBatch_ExigeAsientoDeOrigen(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := newReportsUC(repo)

	_, err := uc.TraceBatch(context.Background(), "mat-1", "L-000")
	assert.ErrorIs(t, err, domain.ErrNotFound, "sin asientos de entrada el batch no existe")

	_, err = uc.TraceBatch(context.Background(), "", "L-000")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.TraceBatch(context.Background(), "mat-1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTraceBatch_ArmaLaGenealogia(t *testing.T) {
	repo := &fakeReportRepo{
		origins:      []repository.BatchOrigin{{LedgerEntryID: 1, Type: entity.EntryTypeReceipt, Quantity: dec("100")}},
		locations:    []repository.WarehouseStock{{WarehouseID: "wh-mp", Total: dec("40")}},
		consumptions: []repository.BatchConsumption{{LedgerEntryID: 9, IssueNo: "ISS-0001", Quantity: dec("60")}},
	}
	uc := newReportsUC(repo)

	trace, err := uc.TraceBatch(context.Background(), "mat-1", "L-001")
	require.NoError(t, err)
	assert.Len(t, trace.Origins, 1)
	assert.Len(t, trace.Locations, 1)
	assert.Len(t, trace.Consumptions, 1)
}

func TestProductionImpact_ValidaElRango(t *testing.T) {
	repo := &fakeReportRepo{impact: []repository.ProductionImpactRow{{ProductID: "jugo-1"}}}
	uc := newReportsUC(repo)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.ProductionImpact(context.Background(), from, from)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el rango vacío no tiene sentido")

	rows, err := uc.ProductionImpact(context.Background(), from, from.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestListLedger_NormalizaFiltros(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := newReportsUC(repo)

	_, err := uc.ListLedger(context.Background(), repository.LedgerFilter{})
	require.NoError(t, err)
	assert.Equal(t, 50, repo.gotFilter.Limit, "límite por defecto")

	_, err = uc.ListLedger(context.Background(), repository.LedgerFilter{Limit: 500, Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, 200, repo.gotFilter.Limit, "el tope acota límites desmedidos")
	assert.Equal(t, 0, repo.gotFilter.Offset)

	_, err = uc.ListLedger(context.Background(), repository.LedgerFilter{Type: "stockAdjustment"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ListLedger(context.Background(), repository.LedgerFilter{Type: entity.EntryTypeProductionOut})
	require.NoError(t, err)
	assert.Equal(t, entity.EntryTypeProductionOut, repo.gotFilter.Type)
}
