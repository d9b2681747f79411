package allocation_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	domalloc "github.com/jhoicas/Produccion-api/internal/domain/allocation"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// Fakes en memoria con la misma semántica que los adaptadores de Postgres:
// elegibilidad y orden FEFO, guard de saldo en DecrementRemain y rollback por
// snapshot en el TxRunner.

// ── libro ─────────────────────────────────────────────────────────────────────

type fakeLedgerRepo struct {
	entries []entity.LedgerEntry
}

func (f *fakeLedgerRepo) EligibleLotsForUpdate(_ context.Context, productID, warehouseID string, includeExpired bool, today time.Time) ([]entity.InventoryLot, error) {
	var lots []entity.InventoryLot
	for _, e := range f.entries {
		if e.ProductID != productID || e.WarehouseID != warehouseID || e.Deleted {
			continue
		}
		if !e.Quantity.IsPositive() || !e.Remain.IsPositive() {
			continue
		}
		lot := entity.InventoryLot{
			ID:          e.ID,
			ProductID:   e.ProductID,
			WarehouseID: e.WarehouseID,
			BatchNo:     e.BatchNo,
			ExpiredDate: e.ExpiredDate,
			Remain:      e.Remain,
		}
		if !includeExpired && lot.Expired(today) {
			continue
		}
		lots = append(lots, lot)
	}
	domalloc.SortLots(lots)
	return lots, nil
}

func (f *fakeLedgerRepo) DecrementRemain(_ context.Context, lotID int64, qty decimal.Decimal) error {
	for i := range f.entries {
		if f.entries[i].ID != lotID {
			continue
		}
		if f.entries[i].Remain.LessThan(qty) {
			return fmt.Errorf("%w: lote %d sin saldo suficiente", domain.ErrConflict, lotID)
		}
		f.entries[i].Remain = f.entries[i].Remain.Sub(qty)
		return nil
	}
	return fmt.Errorf("%w: lote %d sin saldo suficiente", domain.ErrConflict, lotID)
}

func (f *fakeLedgerRepo) AppendEntry(_ context.Context, e *entity.LedgerEntry) (int64, error) {
	e.ID = int64(len(f.entries) + 1)
	f.entries = append(f.entries, *e)
	return e.ID, nil
}

func (f *fakeLedgerRepo) MinConsumedExpiryForOrder(context.Context, string) (*time.Time, error) {
	return nil, nil
}

func (f *fakeLedgerRepo) entryByID(id int64) *entity.LedgerEntry {
	for i := range f.entries {
		if f.entries[i].ID == id {
			return &f.entries[i]
		}
	}
	return nil
}

// ── emisiones ─────────────────────────────────────────────────────────────────

type fakeIssueRepo struct {
	issues  []*entity.MaterialIssue
	details []*entity.MaterialIssueDetail
}

func (f *fakeIssueRepo) Create(_ context.Context, issue *entity.MaterialIssue) error {
	f.issues = append(f.issues, issue)
	return nil
}

func (f *fakeIssueRepo) CreateDetail(_ context.Context, d *entity.MaterialIssueDetail) error {
	f.details = append(f.details, d)
	return nil
}

func (f *fakeIssueRepo) GetByID(_ context.Context, id string) (*entity.MaterialIssue, error) {
	for _, i := range f.issues {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, nil
}

func (f *fakeIssueRepo) GetDetailsByIssueID(_ context.Context, issueID string) ([]*entity.MaterialIssueDetail, error) {
	var out []*entity.MaterialIssueDetail
	for _, d := range f.details {
		if d.MaterialIssueID == issueID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LedgerEntryID < out[j].LedgerEntryID })
	return out, nil
}

func (f *fakeIssueRepo) ListByOrder(_ context.Context, orderID string) ([]*entity.MaterialIssue, error) {
	var out []*entity.MaterialIssue
	for i := len(f.issues) - 1; i >= 0; i-- { // más reciente primero
		if f.issues[i].ManufacturingOrderID == orderID {
			out = append(out, f.issues[i])
		}
	}
	return out, nil
}

// ── órdenes ───────────────────────────────────────────────────────────────────

// fakeOrderRepo resuelve órdenes por id; el vale solo necesita eso.
type fakeOrderRepo struct {
	orders map[string]*entity.ManufacturingOrder
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.ManufacturingOrder) error {
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) CreateMaterial(context.Context, *entity.OrderMaterial) error { return nil }

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.ManufacturingOrder, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) GetMaterials(context.Context, string) ([]*entity.OrderMaterial, error) {
	return nil, nil
}

func (f *fakeOrderRepo) List(context.Context, string, int, int) ([]*entity.ManufacturingOrder, error) {
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatus(context.Context, string, string) error { return nil }

func (f *fakeOrderRepo) MarkMaterialIssued(context.Context, string, decimal.Decimal) error {
	return nil
}

func (f *fakeOrderRepo) MarkCompleted(context.Context, string, decimal.Decimal, time.Time) error {
	return nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback sobre los repos en memoria y simula el
// rollback restaurando un snapshot cuando el callback falla.
type fakeTxRunner struct {
	ledger *fakeLedgerRepo
	issues *fakeIssueRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	issueRepo repository.MaterialIssueRepository,
) error) error {
	entriesSnap := append([]entity.LedgerEntry(nil), r.ledger.entries...)
	issuesSnap := append([]*entity.MaterialIssue(nil), r.issues.issues...)
	detailsSnap := append([]*entity.MaterialIssueDetail(nil), r.issues.details...)

	if err := fn(r.ledger, r.issues); err != nil {
		r.ledger.entries = entriesSnap
		r.issues.issues = issuesSnap
		r.issues.details = detailsSnap
		return err
	}
	return nil
}

// ── catálogo ──────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) List(context.Context, int, int) ([]*entity.Product, error) {
	return nil, nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (f *fakeWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	f.warehouses[w.ID] = w
	return nil
}

func (f *fakeWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	return f.warehouses[id], nil
}

func (f *fakeWarehouseRepo) GetByCode(_ context.Context, code string) (*entity.Warehouse, error) {
	for _, w := range f.warehouses {
		if w.Code == code {
			return w, nil
		}
	}
	return nil, nil
}

func (f *fakeWarehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	f.warehouses[w.ID] = w
	return nil
}

func (f *fakeWarehouseRepo) List(context.Context, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}

// ── reportes ──────────────────────────────────────────────────────────────────

// fakeReportRepo deriva StockByBatch de los asientos del libro, igual que la
// consulta agregada real. Los demás reportes no se usan en estos tests.
type fakeReportRepo struct {
	ledger *fakeLedgerRepo
}

func (f *fakeReportRepo) StockByBatch(_ context.Context, productID, warehouseID string) ([]repository.BatchStock, error) {
	lots, _ := f.ledger.EligibleLotsForUpdate(context.Background(), productID, warehouseID, true, time.Now())
	var groups []repository.BatchStock
	for _, lot := range lots {
		if n := len(groups); n > 0 && groups[n-1].BatchNo == lot.BatchNo && equalDate(groups[n-1].ExpiredDate, lot.ExpiredDate) {
			groups[n-1].Available = groups[n-1].Available.Add(lot.Remain)
			continue
		}
		groups = append(groups, repository.BatchStock{
			BatchNo:     lot.BatchNo,
			ExpiredDate: lot.ExpiredDate,
			Available:   lot.Remain,
		})
	}
	return groups, nil
}

func (f *fakeReportRepo) StockBalance(context.Context, string, string) ([]repository.WarehouseStock, error) {
	return nil, nil
}

func (f *fakeReportRepo) EligibleRemain(ctx context.Context, productID, warehouseID string, today time.Time) (decimal.Decimal, error) {
	lots, _ := f.ledger.EligibleLotsForUpdate(ctx, productID, warehouseID, false, today)
	total := decimal.Zero
	for _, lot := range lots {
		total = total.Add(lot.Remain)
	}
	return total, nil
}

func (f *fakeReportRepo) ExpiringStock(context.Context, string, time.Time) ([]repository.ExpiringBatch, error) {
	return nil, nil
}

func (f *fakeReportRepo) BatchOrigins(context.Context, string, string) ([]repository.BatchOrigin, error) {
	return nil, nil
}

func (f *fakeReportRepo) BatchLocations(context.Context, string, string) ([]repository.WarehouseStock, error) {
	return nil, nil
}

func (f *fakeReportRepo) BatchConsumptions(context.Context, string, string) ([]repository.BatchConsumption, error) {
	return nil, nil
}

func (f *fakeReportRepo) ProductionImpact(context.Context, time.Time, time.Time) ([]repository.ProductionImpactRow, error) {
	return nil, nil
}

func (f *fakeReportRepo) ListEntries(context.Context, repository.LedgerFilter) ([]entity.LedgerEntry, error) {
	return nil, nil
}

func equalDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
