package production_test

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

// Fakes en memoria para el ciclo de producción. Todas las tablas guardan
// valores (no punteros) para que el TxRunner pueda hacer rollback por
// snapshot: también revierte mutaciones en sitio como MarkMaterialIssued.

type memStore struct {
	entries   []entity.LedgerEntry
	issues    []entity.MaterialIssue
	details   []entity.MaterialIssueDetail
	orders    []entity.ManufacturingOrder
	materials []entity.OrderMaterial
	receipts  []entity.ProductionReceipt
}

func (s *memStore) snapshot() memStore {
	return memStore{
		entries:   append([]entity.LedgerEntry(nil), s.entries...),
		issues:    append([]entity.MaterialIssue(nil), s.issues...),
		details:   append([]entity.MaterialIssueDetail(nil), s.details...),
		orders:    append([]entity.ManufacturingOrder(nil), s.orders...),
		materials: append([]entity.OrderMaterial(nil), s.materials...),
		receipts:  append([]entity.ProductionReceipt(nil), s.receipts...),
	}
}

func (s *memStore) entryByID(id int64) *entity.LedgerEntry {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return &s.entries[i]
		}
	}
	return nil
}

func (s *memStore) orderByID(id string) *entity.ManufacturingOrder {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return &s.orders[i]
		}
	}
	return nil
}

func (s *memStore) materialsOf(orderID string) []entity.OrderMaterial {
	var out []entity.OrderMaterial
	for _, m := range s.materials {
		if m.ManufacturingOrderID == orderID {
			out = append(out, m)
		}
	}
	return out
}

func (s *memStore) negativeEntries() []entity.LedgerEntry {
	var out []entity.LedgerEntry
	for _, e := range s.entries {
		if e.Quantity.IsNegative() {
			out = append(out, e)
		}
	}
	return out
}

// ── libro ─────────────────────────────────────────────────────────────────────

type fakeLedger struct {
	store *memStore
}

func (f *fakeLedger) EligibleLotsForUpdate(_ context.Context, productID, warehouseID string, includeExpired bool, today time.Time) ([]entity.InventoryLot, error) {
	var lots []entity.InventoryLot
	for _, e := range f.store.entries {
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

func (f *fakeLedger) DecrementRemain(_ context.Context, lotID int64, qty decimal.Decimal) error {
	e := f.store.entryByID(lotID)
	if e == nil || e.Remain.LessThan(qty) {
		return fmt.Errorf("%w: lote %d sin saldo suficiente", domain.ErrConflict, lotID)
	}
	e.Remain = e.Remain.Sub(qty)
	return nil
}

func (f *fakeLedger) AppendEntry(_ context.Context, e *entity.LedgerEntry) (int64, error) {
	e.ID = int64(len(f.store.entries) + 1)
	f.store.entries = append(f.store.entries, *e)
	return e.ID, nil
}

// MinConsumedExpiryForOrder replica el join del adaptador real: emisiones
// CONFIRMED de la orden → detalles → lote de origen → mínimo vencimiento.
func (f *fakeLedger) MinConsumedExpiryForOrder(_ context.Context, orderID string) (*time.Time, error) {
	var min *time.Time
	for _, issue := range f.store.issues {
		if issue.ManufacturingOrderID != orderID || issue.Status != entity.IssueStatusConfirmed {
			continue
		}
		for _, d := range f.store.details {
			if d.MaterialIssueID != issue.ID {
				continue
			}
			lot := f.store.entryByID(d.LedgerEntryID)
			if lot == nil || lot.ExpiredDate == nil {
				continue
			}
			if min == nil || lot.ExpiredDate.Before(*min) {
				v := *lot.ExpiredDate
				min = &v
			}
		}
	}
	return min, nil
}

// ── emisiones ─────────────────────────────────────────────────────────────────

type fakeIssues struct {
	store *memStore
}

func (f *fakeIssues) Create(_ context.Context, issue *entity.MaterialIssue) error {
	f.store.issues = append(f.store.issues, *issue)
	return nil
}

func (f *fakeIssues) CreateDetail(_ context.Context, d *entity.MaterialIssueDetail) error {
	f.store.details = append(f.store.details, *d)
	return nil
}

func (f *fakeIssues) GetByID(_ context.Context, id string) (*entity.MaterialIssue, error) {
	for _, i := range f.store.issues {
		if i.ID == id {
			out := i
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeIssues) GetDetailsByIssueID(_ context.Context, issueID string) ([]*entity.MaterialIssueDetail, error) {
	var out []*entity.MaterialIssueDetail
	for _, d := range f.store.details {
		if d.MaterialIssueID == issueID {
			c := d
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LedgerEntryID < out[j].LedgerEntryID })
	return out, nil
}

// ListByOrder devuelve las emisiones más recientes primero, como el adaptador.
func (f *fakeIssues) ListByOrder(_ context.Context, orderID string) ([]*entity.MaterialIssue, error) {
	var out []*entity.MaterialIssue
	for i := len(f.store.issues) - 1; i >= 0; i-- {
		if f.store.issues[i].ManufacturingOrderID == orderID {
			c := f.store.issues[i]
			out = append(out, &c)
		}
	}
	return out, nil
}

// ── órdenes ───────────────────────────────────────────────────────────────────

type fakeOrders struct {
	store *memStore
}

func (f *fakeOrders) Create(_ context.Context, order *entity.ManufacturingOrder) error {
	f.store.orders = append(f.store.orders, *order)
	return nil
}

func (f *fakeOrders) CreateMaterial(_ context.Context, m *entity.OrderMaterial) error {
	f.store.materials = append(f.store.materials, *m)
	return nil
}

func (f *fakeOrders) GetByID(_ context.Context, id string) (*entity.ManufacturingOrder, error) {
	if o := f.store.orderByID(id); o != nil {
		out := *o
		return &out, nil
	}
	return nil, nil
}

func (f *fakeOrders) GetMaterials(_ context.Context, orderID string) ([]*entity.OrderMaterial, error) {
	var out []*entity.OrderMaterial
	for _, m := range f.store.materialsOf(orderID) {
		c := m
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeOrders) List(_ context.Context, status string, limit, offset int) ([]*entity.ManufacturingOrder, error) {
	var out []*entity.ManufacturingOrder
	for i := len(f.store.orders) - 1; i >= 0; i-- {
		if status != "" && f.store.orders[i].Status != status {
			continue
		}
		c := f.store.orders[i]
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id, status string) error {
	o := f.store.orderByID(id)
	if o == nil {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

func (f *fakeOrders) MarkMaterialIssued(_ context.Context, materialID string, issued decimal.Decimal) error {
	for i := range f.store.materials {
		m := &f.store.materials[i]
		if m.ID != materialID {
			continue
		}
		if m.Status != entity.OrderMaterialPending {
			return fmt.Errorf("%w: el material %s ya fue emitido", domain.ErrConflict, materialID)
		}
		m.IssuedQty = m.IssuedQty.Add(issued)
		m.Status = entity.OrderMaterialIssued
		return nil
	}
	return domain.ErrNotFound
}

func (f *fakeOrders) MarkCompleted(_ context.Context, id string, producedQty decimal.Decimal, completedAt time.Time) error {
	o := f.store.orderByID(id)
	if o == nil {
		return domain.ErrNotFound
	}
	if o.Status != entity.OrderStatusInProgress {
		return fmt.Errorf("%w: la orden %s está en estado %s", domain.ErrConflict, o.OrderNo, o.Status)
	}
	o.ProducedQty = producedQty
	o.Status = entity.OrderStatusCompleted
	o.CompletionDate = &completedAt
	return nil
}

// ── recepciones ───────────────────────────────────────────────────────────────

type fakeReceipts struct {
	store *memStore
}

func (f *fakeReceipts) Create(_ context.Context, r *entity.ProductionReceipt) error {
	f.store.receipts = append(f.store.receipts, *r)
	return nil
}

func (f *fakeReceipts) GetByOrder(_ context.Context, orderID string) ([]*entity.ProductionReceipt, error) {
	var out []*entity.ProductionReceipt
	for _, r := range f.store.receipts {
		if r.ManufacturingOrderID == orderID {
			c := r
			out = append(out, &c)
		}
	}
	return out, nil
}

// ── transacción ───────────────────────────────────────────────────────────────

type fakeProdRunner struct {
	store *memStore
}

func (f *fakeProdRunner) RunProduction(_ context.Context, fn func(
	repository.LedgerRepository,
	repository.MaterialIssueRepository,
	repository.ManufacturingOrderRepository,
	repository.ProductionReceiptRepository,
) error) error {
	snap := f.store.snapshot()
	err := fn(&fakeLedger{store: f.store}, &fakeIssues{store: f.store}, &fakeOrders{store: f.store}, &fakeReceipts{store: f.store})
	if err != nil {
		*f.store = snap
	}
	return err
}

// ── catálogos ─────────────────────────────────────────────────────────────────

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

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error { return nil }

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

func (f *fakeWarehouseRepo) Update(_ context.Context, w *entity.Warehouse) error { return nil }

func (f *fakeWarehouseRepo) List(context.Context, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}

// ── BOMs ──────────────────────────────────────────────────────────────────────

// fakeBOMRepo siempre devuelve cabeceras con sus componentes cargados.
type fakeBOMRepo struct {
	boms map[string]*entity.BOMHeader
}

func (f *fakeBOMRepo) Create(_ context.Context, h *entity.BOMHeader) error {
	f.boms[h.ID] = h
	return nil
}

func (f *fakeBOMRepo) GetByID(_ context.Context, id string) (*entity.BOMHeader, error) {
	return f.boms[id], nil
}

func (f *fakeBOMRepo) GetActiveByProduct(_ context.Context, productID string) (*entity.BOMHeader, error) {
	for _, b := range f.boms {
		if b.ProductID == productID && b.Status == entity.BOMStatusActive {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBOMRepo) List(_ context.Context, status string) ([]*entity.BOMHeader, error) {
	return nil, nil
}

func (f *fakeBOMRepo) ReplaceDetails(_ context.Context, bomID string, details []entity.BOMDetail) error {
	f.boms[bomID].Details = details
	return nil
}

func (f *fakeBOMRepo) UpdateStatus(_ context.Context, id, status string) error {
	f.boms[id].Status = status
	return nil
}

func (f *fakeBOMRepo) NextSequence(_ context.Context, prefix string) (int, error) {
	return len(f.boms) + 1, nil
}

// ── reportes ──────────────────────────────────────────────────────────────────

// fakeReportRepo implementa solo EligibleRemain sobre el store; el resto de
// consultas no participa en estos tests.
type fakeReportRepo struct {
	store *memStore
}

func (f *fakeReportRepo) EligibleRemain(_ context.Context, productID, warehouseID string, today time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range f.store.entries {
		if e.ProductID != productID || e.WarehouseID != warehouseID || e.Deleted {
			continue
		}
		if !e.Quantity.IsPositive() || !e.Remain.IsPositive() {
			continue
		}
		lot := entity.InventoryLot{ExpiredDate: e.ExpiredDate}
		if lot.Expired(today) {
			continue
		}
		total = total.Add(e.Remain)
	}
	return total, nil
}

func (f *fakeReportRepo) StockByBatch(context.Context, string, string) ([]repository.BatchStock, error) {
	return nil, nil
}

func (f *fakeReportRepo) StockBalance(context.Context, string, string) ([]repository.WarehouseStock, error) {
	return nil, nil
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
