package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jhoicas/Produccion-api/internal/application/usecase"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// Fakes en memoria del catálogo. Replican el contrato de los adaptadores de
// PostgreSQL: ErrDuplicate en claves únicas, ErrNotFound en updates sin fila y
// la exclusividad de activación de BOMs.

// ── productos ─────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range f.products {
		if existing.SKU == p.SKU {
			return fmt.Errorf("%w: sku %s", domain.ErrDuplicate, p.SKU)
		}
	}
	c := *p
	f.products[p.ID] = &c
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if p, ok := f.products[id]; ok {
		c := *p
		return &c, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *p
	f.products[p.ID] = &c
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		c := *p
		out = append(out, &c)
	}
	return out, nil
}

// ── bodegas ───────────────────────────────────────────────────────────────────

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (f *fakeWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	for _, existing := range f.warehouses {
		if existing.Code == w.Code {
			return fmt.Errorf("%w: código %s", domain.ErrDuplicate, w.Code)
		}
	}
	c := *w
	f.warehouses[w.ID] = &c
	return nil
}

func (f *fakeWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	if w, ok := f.warehouses[id]; ok {
		c := *w
		return &c, nil
	}
	return nil, nil
}

func (f *fakeWarehouseRepo) GetByCode(_ context.Context, code string) (*entity.Warehouse, error) {
	for _, w := range f.warehouses {
		if w.Code == code {
			c := *w
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeWarehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	if _, ok := f.warehouses[w.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *w
	f.warehouses[w.ID] = &c
	return nil
}

func (f *fakeWarehouseRepo) List(_ context.Context, limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range f.warehouses {
		c := *w
		out = append(out, &c)
	}
	return out, nil
}

// ── recetas ───────────────────────────────────────────────────────────────────

type fakeBOMRepo struct {
	boms map[string]*entity.BOMHeader
}

func (f *fakeBOMRepo) Create(_ context.Context, h *entity.BOMHeader) error {
	c := *h
	f.boms[h.ID] = &c
	return nil
}

func (f *fakeBOMRepo) GetByID(_ context.Context, id string) (*entity.BOMHeader, error) {
	if b, ok := f.boms[id]; ok {
		c := *b
		return &c, nil
	}
	return nil, nil
}

func (f *fakeBOMRepo) GetActiveByProduct(_ context.Context, productID string) (*entity.BOMHeader, error) {
	for _, b := range f.boms {
		if b.ProductID == productID && b.Status == entity.BOMStatusActive {
			c := *b
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeBOMRepo) List(_ context.Context, status string) ([]*entity.BOMHeader, error) {
	var out []*entity.BOMHeader
	for _, b := range f.boms {
		if status != "" && b.Status != status {
			continue
		}
		c := *b
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeBOMRepo) ReplaceDetails(_ context.Context, bomID string, details []entity.BOMDetail) error {
	b, ok := f.boms[bomID]
	if !ok {
		return domain.ErrNotFound
	}
	b.Details = append([]entity.BOMDetail(nil), details...)
	return nil
}

// UpdateStatus replica el contrato del adaptador: activar degrada cualquier
// otro BOM ACTIVE del mismo producto en la misma operación.
func (f *fakeBOMRepo) UpdateStatus(_ context.Context, id, status string) error {
	target, ok := f.boms[id]
	if !ok {
		return domain.ErrNotFound
	}
	if status == entity.BOMStatusActive {
		for _, b := range f.boms {
			if b.ID != id && b.ProductID == target.ProductID && b.Status == entity.BOMStatusActive {
				b.Status = entity.BOMStatusInactive
			}
		}
	}
	target.Status = status
	return nil
}

// NextSequence replica el COUNT(*)+1 del adaptador sobre el prefijo.
func (f *fakeBOMRepo) NextSequence(_ context.Context, prefix string) (int, error) {
	n := 1
	for _, b := range f.boms {
		if strings.HasPrefix(b.Code, prefix) {
			n++
		}
	}
	return n, nil
}

// ── entorno ───────────────────────────────────────────────────────────────────

type catalogEnv struct {
	products   *fakeProductRepo
	warehouses *fakeWarehouseRepo
	boms       *fakeBOMRepo

	productUC   *usecase.ProductUseCase
	warehouseUC *usecase.WarehouseUseCase
	bomUC       *usecase.BOMUseCase
}

func newCatalogEnv(t *testing.T) *catalogEnv {
	t.Helper()

	products := &fakeProductRepo{products: map[string]*entity.Product{
		"mat-1":  {ID: "mat-1", SKU: "MP-001", Name: "Harina de trigo", UOM: "KG", Type: entity.ProductTypeRaw, IsActive: true},
		"mat-2":  {ID: "mat-2", SKU: "MP-002", Name: "Azúcar refinada", UOM: "KG", Type: entity.ProductTypeRaw, IsActive: true},
		"jugo-1": {ID: "jugo-1", SKU: "PT-002", Name: "Jugo de mango", UOM: "L", Type: entity.ProductTypeFinished, ShelfLifeDays: 90, IsActive: true},
	}}
	warehouses := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		"wh-mp": {ID: "wh-mp", Code: "BOD-MP", Name: "Bodega materias primas", IsActive: true},
	}}
	boms := &fakeBOMRepo{boms: map[string]*entity.BOMHeader{}}

	return &catalogEnv{
		products:    products,
		warehouses:  warehouses,
		boms:        boms,
		productUC:   usecase.NewProductUseCase(products),
		warehouseUC: usecase.NewWarehouseUseCase(warehouses),
		bomUC:       usecase.NewBOMUseCase(boms, products),
	}
}
