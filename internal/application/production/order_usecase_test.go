package production_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/allocation"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// Receta PROCESS de referencia: 10 L de jugo por corrida, con 5 KG de harina
// al 10% de merma. Planificar 25 L explota a 5 × 2.5 × 1.10 = 13.75 KG.
func TestCreateOrder_ExplotaBOMConFactorYMerma(t *testing.T) {
	env := newProdEnv(t)

	order, materials, err := env.orderUC.CreateOrder(context.Background(), "user-1", dto.CreateOrderRequest{
		ProductID:         "jugo-1",
		QuantityPlanned:   qty(25),
		WarehouseID:       "wh-mp",
		TargetWarehouseID: "wh-pt",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.OrderNo, "MO-"), "número con prefijo MO-: %s", order.OrderNo)
	assert.Equal(t, entity.OrderStatusPlanned, order.Status)
	assert.Equal(t, "bom-proc", order.BOMID, "sin bom_id explícito usa el BOM activo del producto")
	assert.Equal(t, "L", order.UOM, "la orden hereda la unidad del BOM")
	assert.True(t, order.ProducedQty.IsZero())

	require.Len(t, materials, 1)
	m := materials[0]
	assert.Equal(t, "mat-1", m.ProductID)
	assert.True(t, m.RequiredQty.Equal(dec("13.75")), "requerido = 5 × 25/10 × 1.10, obtuvo %s", m.RequiredQty)
	assert.True(t, m.IssuedQty.IsZero())
	assert.Equal(t, entity.OrderMaterialPending, m.Status)
	assert.Equal(t, "KG", m.UOM)
	assert.Equal(t, order.ID, m.ManufacturingOrderID)

	require.NotNil(t, env.store.orderByID(order.ID), "la orden queda persistida")
	assert.Len(t, env.store.materialsOf(order.ID), 1)
	assert.Empty(t, env.store.entries, "planificar no mueve inventario")
}

func TestCreateOrder_KitEscalaLinealSinMerma(t *testing.T) {
	env := newProdEnv(t)

	order, materials, err := env.orderUC.CreateOrder(context.Background(), "user-1", dto.CreateOrderRequest{
		ProductID:         "kit-1",
		QuantityPlanned:   qty(3),
		WarehouseID:       "wh-mp",
		TargetWarehouseID: "wh-pt",
		ScheduledDate:     "2026-09-01",
	})
	require.NoError(t, err)

	require.Len(t, materials, 2)
	byProduct := map[string]decimal.Decimal{}
	for _, m := range materials {
		byProduct[m.ProductID] = m.RequiredQty
	}
	assert.True(t, byProduct["mat-1"].Equal(qty(6)), "2 KG por kit × 3 kits")
	assert.True(t, byProduct["mat-2"].Equal(qty(3)), "1 KG por kit × 3 kits")

	require.NotNil(t, order.ScheduledDate)
	assert.Equal(t, "2026-09-01", order.ScheduledDate.Format("2006-01-02"))
}

func TestCreateOrder_RechazaBOMInservible(t *testing.T) {
	env := newProdEnv(t)
	env.boms.boms["bom-draft"] = &entity.BOMHeader{
		ID: "bom-draft", Code: "BOM-PRO-0099", ProductID: "jugo-1",
		OutputQty: qty(10), UOM: "L", BOMType: entity.BOMTypeProcess,
		Status:  entity.BOMStatusDraft,
		Details: []entity.BOMDetail{{ID: "bd-x", BOMHeaderID: "bom-draft", ProductID: "mat-1", Quantity: qty(5), UOM: "KG"}},
	}
	env.boms.boms["bom-vacio"] = &entity.BOMHeader{
		ID: "bom-vacio", Code: "BOM-PRO-0098", ProductID: "sin-receta",
		OutputQty: qty(1), UOM: "UN", BOMType: entity.BOMTypeProcess,
		Status: entity.BOMStatusActive,
	}
	env.products.products["sin-receta"] = &entity.Product{ID: "sin-receta", SKU: "PT-099", Name: "Sin receta", UOM: "UN", Type: entity.ProductTypeFinished, IsActive: true}

	cases := []struct {
		name  string
		input dto.CreateOrderRequest
	}{
		{"producto sin BOM activo", dto.CreateOrderRequest{ProductID: "mat-1", QuantityPlanned: qty(1), WarehouseID: "wh-mp", TargetWarehouseID: "wh-pt"}},
		{"BOM en borrador", dto.CreateOrderRequest{ProductID: "jugo-1", BOMID: "bom-draft", QuantityPlanned: qty(1), WarehouseID: "wh-mp", TargetWarehouseID: "wh-pt"}},
		{"BOM de otro producto", dto.CreateOrderRequest{ProductID: "jugo-1", BOMID: "bom-kit", QuantityPlanned: qty(1), WarehouseID: "wh-mp", TargetWarehouseID: "wh-pt"}},
		{"BOM sin componentes", dto.CreateOrderRequest{ProductID: "sin-receta", QuantityPlanned: qty(1), WarehouseID: "wh-mp", TargetWarehouseID: "wh-pt"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := env.orderUC.CreateOrder(context.Background(), "user-1", tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, env.store.orders, "ninguna orden inválida debe persistirse")
}

func TestCreateOrder_EntradaInvalida(t *testing.T) {
	env := newProdEnv(t)

	cases := []struct {
		name  string
		input dto.CreateOrderRequest
		want  error
	}{
		{"sin producto", dto.CreateOrderRequest{QuantityPlanned: qty(1), WarehouseID: "wh-mp", TargetWarehouseID: "wh-pt"}, domain.ErrInvalidInput},
		{"cantidad cero", dto.CreateOrderRequest{ProductID: "kit-1", WarehouseID: "wh-mp", TargetWarehouseID: "wh-pt"}, domain.ErrInvalidInput},
		{"fecha malformada", dto.CreateOrderRequest{ProductID: "kit-1", QuantityPlanned: qty(1), WarehouseID: "wh-mp", TargetWarehouseID: "wh-pt", ScheduledDate: "01/09/2026"}, domain.ErrInvalidInput},
		{"producto desconocido", dto.CreateOrderRequest{ProductID: "nope", QuantityPlanned: qty(1), WarehouseID: "wh-mp", TargetWarehouseID: "wh-pt"}, domain.ErrNotFound},
		{"bodega desconocida", dto.CreateOrderRequest{ProductID: "kit-1", QuantityPlanned: qty(1), WarehouseID: "nope", TargetWarehouseID: "wh-pt"}, domain.ErrNotFound},
		{"bodega destino desconocida", dto.CreateOrderRequest{ProductID: "kit-1", QuantityPlanned: qty(1), WarehouseID: "wh-mp", TargetWarehouseID: "nope"}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := env.orderUC.CreateOrder(context.Background(), "user-1", tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestListOrders_FiltraPorEstado(t *testing.T) {
	env := newProdEnv(t)
	first := env.planKitOrder(t, 1)
	env.planKitOrder(t, 2)
	require.NoError(t, env.orderUC.CancelOrder(context.Background(), first.ID))

	all, err := env.orderUC.ListOrders(context.Background(), "", 50, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	planned, err := env.orderUC.ListOrders(context.Background(), entity.OrderStatusPlanned, 50, 0)
	require.NoError(t, err)
	require.Len(t, planned, 1)
	assert.NotEqual(t, first.ID, planned[0].ID)

	_, err = env.orderUC.ListOrders(context.Background(), "EN_PAUSA", 50, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La disponibilidad compara lo que resta por emitir contra el saldo elegible
// no vencido: el stock vencido no cuenta.
func TestCheckAvailability_IgnoraLotesVencidos(t *testing.T) {
	env := newProdEnv(t)
	order, _, err := env.orderUC.CreateOrder(context.Background(), "user-1", dto.CreateOrderRequest{
		ProductID: "jugo-1", QuantityPlanned: qty(25), WarehouseID: "wh-mp", TargetWarehouseID: "wh-pt",
	})
	require.NoError(t, err)

	env.addLot(t, "mat-1", "wh-mp", "B-FRESCO", qty(10), inDays(30))
	env.addLot(t, "mat-1", "wh-mp", "B-VENCIDO", qty(8), inDays(-1))

	_, rows, err := env.orderUC.CheckAvailability(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "mat-1", rows[0].ProductID)
	assert.True(t, rows[0].RequiredQty.Equal(dec("13.75")))
	assert.True(t, rows[0].Available.Equal(qty(10)), "solo el lote fresco es elegible")
	assert.False(t, rows[0].Sufficient)

	env.addLot(t, "mat-1", "wh-mp", "B-NUEVO", qty(5), inDays(60))
	_, rows, err = env.orderUC.CheckAvailability(context.Background(), order.ID)
	require.NoError(t, err)
	assert.True(t, rows[0].Sufficient, "con 15 KG elegibles alcanza para 13.75")
}

func TestCancelOrder_SoloPlanificadas(t *testing.T) {
	env := newProdEnv(t)
	order := env.planKitOrder(t, 1)

	require.NoError(t, env.orderUC.CancelOrder(context.Background(), order.ID))
	assert.Equal(t, entity.OrderStatusCancelled, env.store.orderByID(order.ID).Status)

	err := env.orderUC.CancelOrder(context.Background(), order.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "una orden cancelada no puede cancelarse de nuevo")

	err = env.orderUC.CancelOrder(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── fixtures ──────────────────────────────────────────────────────────────────

// prodEnv arma el ciclo completo de producción sobre un memStore compartido.
// Catálogo: harina y azúcar como insumos, un kit (KITTING, salida 1 UN) y un
// jugo (PROCESS, salida 10 L, vida útil 90 días).
type prodEnv struct {
	store    *memStore
	ledger   *fakeLedger
	boms     *fakeBOMRepo
	products *fakeProductRepo

	orderUC    *production.OrderUseCase
	issueUC    *production.IssueOrderUseCase
	completeUC *production.CompleteOrderUseCase
}

func newProdEnv(t *testing.T) *prodEnv {
	t.Helper()

	store := &memStore{}
	runner := &fakeProdRunner{store: store}
	orders := &fakeOrders{store: store}
	issues := &fakeIssues{store: store}
	receipts := &fakeReceipts{store: store}
	reports := &fakeReportRepo{store: store}

	products := &fakeProductRepo{products: map[string]*entity.Product{
		"mat-1":  {ID: "mat-1", SKU: "MP-001", Name: "Harina de trigo", UOM: "KG", Type: entity.ProductTypeRaw, IsActive: true},
		"mat-2":  {ID: "mat-2", SKU: "MP-002", Name: "Azúcar refinada", UOM: "KG", Type: entity.ProductTypeRaw, IsActive: true},
		"kit-1":  {ID: "kit-1", SKU: "PT-001", Name: "Canasta básica", UOM: "UN", Type: entity.ProductTypeFinished, IsActive: true},
		"jugo-1": {ID: "jugo-1", SKU: "PT-002", Name: "Jugo de mango", UOM: "L", Type: entity.ProductTypeFinished, ShelfLifeDays: 90, IsActive: true},
	}}
	houses := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		"wh-mp": {ID: "wh-mp", Code: "BOD-MP", Name: "Bodega materias primas", IsActive: true},
		"wh-pt": {ID: "wh-pt", Code: "BOD-PT", Name: "Bodega producto terminado", IsActive: true},
	}}
	boms := &fakeBOMRepo{boms: map[string]*entity.BOMHeader{
		"bom-kit": {
			ID: "bom-kit", Code: "BOM-KIT-0001", Name: "Canasta básica x1",
			ProductID: "kit-1", OutputQty: qty(1), UOM: "UN",
			BOMType: entity.BOMTypeKitting, Status: entity.BOMStatusActive,
			Details: []entity.BOMDetail{
				{ID: "bd-1", BOMHeaderID: "bom-kit", ProductID: "mat-1", Quantity: qty(2), UOM: "KG"},
				{ID: "bd-2", BOMHeaderID: "bom-kit", ProductID: "mat-2", Quantity: qty(1), UOM: "KG"},
			},
		},
		"bom-proc": {
			ID: "bom-proc", Code: "BOM-PRO-0001", Name: "Jugo de mango x10L",
			ProductID: "jugo-1", OutputQty: qty(10), UOM: "L",
			BOMType: entity.BOMTypeProcess, Status: entity.BOMStatusActive,
			Details: []entity.BOMDetail{
				{ID: "bd-3", BOMHeaderID: "bom-proc", ProductID: "mat-1", Quantity: qty(5), UOM: "KG", ScrapRate: qty(10)},
			},
		},
	}}

	// Solo se usa IssueInTx, que opera con los repos de la transacción.
	issuer := allocation.NewIssueUseCase(nil, nil, nil, nil)

	return &prodEnv{
		store:      store,
		ledger:     &fakeLedger{store: store},
		boms:       boms,
		products:   products,
		orderUC:    production.NewOrderUseCase(runner, orders, boms, products, houses, reports),
		issueUC:    production.NewIssueOrderUseCase(runner, orders, products, issuer),
		completeUC: production.NewCompleteOrderUseCase(runner, orders, boms, products, issues, receipts),
	}
}

// planKitOrder crea una orden PLANNED del kit por n unidades.
func (e *prodEnv) planKitOrder(t *testing.T, n int64) *entity.ManufacturingOrder {
	t.Helper()
	order, _, err := e.orderUC.CreateOrder(context.Background(), "user-1", dto.CreateOrderRequest{
		ProductID:         "kit-1",
		QuantityPlanned:   qty(n),
		WarehouseID:       "wh-mp",
		TargetWarehouseID: "wh-pt",
	})
	require.NoError(t, err)
	return order
}

// addLot registra una recepción directa en el libro y devuelve el id del lote.
func (e *prodEnv) addLot(t *testing.T, productID, warehouseID, batchNo string, quantity decimal.Decimal, expired *time.Time) int64 {
	t.Helper()
	id, err := e.ledger.AppendEntry(context.Background(), &entity.LedgerEntry{
		Type:        entity.EntryTypeReceipt,
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
		Remain:      quantity,
		BatchNo:     batchNo,
		ExpiredDate: expired,
		GroupID:     "grp-seed",
		CreatedBy:   "seed",
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)
	return id
}

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// inDays devuelve la medianoche UTC a n días de hoy.
func inDays(n int) *time.Time {
	d := time.Now().UTC().AddDate(0, 0, n)
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

func equalDate(t *testing.T, want, got time.Time) {
	t.Helper()
	assert.Equal(t, want.Format("2006-01-02"), got.Format("2006-01-02"))
}
