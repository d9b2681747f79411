package production_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// Un kit hereda el vencimiento mínimo de los lotes consumidos: el kit vence
// cuando vence su primer componente.
func TestCompleteOrder_KittingHeredaVencimientoMinimo(t *testing.T) {
	env := newProdEnv(t)
	order := env.planKitOrder(t, 2)

	env.addLot(t, "mat-1", "wh-mp", "B-HARINA", qty(10), inDays(30))
	env.addLot(t, "mat-2", "wh-mp", "B-AZUCAR", qty(5), inDays(15))
	issued, err := env.issueUC.IssueMaterials(context.Background(), order.ID, "user-1", false, "")
	require.NoError(t, err)

	receipt, err := env.completeUC.CompleteOrder(context.Background(), order.ID, "user-2", dto.CompleteOrderRequest{
		ProducedQty: qty(2),
		BatchNo:     "KIT-001",
		Notes:       "corrida completa",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(receipt.ReceiptNo, "PR-"), "número con prefijo PR-: %s", receipt.ReceiptNo)
	assert.Equal(t, "wh-pt", receipt.WarehouseID, "el producto terminado entra a la bodega destino")
	assert.True(t, receipt.Quantity.Equal(qty(2)))
	assert.Equal(t, "UN", receipt.UOM)
	assert.Equal(t, "KIT-001", receipt.BatchNo)
	assert.Equal(t, "corrida completa", receipt.Notes)
	require.NotNil(t, receipt.ExpiredDate)
	equalDate(t, *inDays(15), *receipt.ExpiredDate)

	entry := env.store.entryByID(receipt.LedgerEntryID)
	require.NotNil(t, entry, "la recepción referencia el asiento que creó el lote")
	assert.Equal(t, entity.EntryTypeProductionIn, entry.Type)
	assert.True(t, entry.Quantity.Equal(qty(2)))
	assert.True(t, entry.Remain.Equal(qty(2)), "el lote producido nace con todo su saldo")
	assert.Equal(t, "KIT-001", entry.BatchNo)
	assert.Equal(t, "wh-pt", entry.WarehouseID)
	assert.Equal(t, receipt.ID, entry.SourceDetailID)
	require.NotNil(t, entry.ExpiredDate)
	equalDate(t, *inDays(15), *entry.ExpiredDate)
	assert.Equal(t, issued.Issue.GroupID, entry.GroupID,
		"consumos y entrada de la misma corrida comparten grupo")

	completed := env.store.orderByID(order.ID)
	assert.Equal(t, entity.OrderStatusCompleted, completed.Status)
	assert.True(t, completed.ProducedQty.Equal(qty(2)))
	assert.NotNil(t, completed.CompletionDate)
	assert.Len(t, env.store.receipts, 1)
}

// PROCESS no hereda vencimientos: lo calcula con la vida útil del producto de
// salida, aunque los insumos venzan antes.
func TestCompleteOrder_ProcessCalculaVencimientoPorVidaUtil(t *testing.T) {
	env := newProdEnv(t)
	order, _, err := env.orderUC.CreateOrder(context.Background(), "user-1", dto.CreateOrderRequest{
		ProductID: "jugo-1", QuantityPlanned: qty(10), WarehouseID: "wh-mp", TargetWarehouseID: "wh-pt",
	})
	require.NoError(t, err)

	env.addLot(t, "mat-1", "wh-mp", "B-CORTO", qty(20), inDays(10))
	_, err = env.issueUC.IssueMaterials(context.Background(), order.ID, "user-1", false, "")
	require.NoError(t, err)

	receipt, err := env.completeUC.CompleteOrder(context.Background(), order.ID, "user-1", dto.CompleteOrderRequest{
		ProducedQty: dec("9.5"),
		BatchNo:     "J-001",
	})
	require.NoError(t, err)

	require.NotNil(t, receipt.ExpiredDate)
	equalDate(t, *inDays(90), *receipt.ExpiredDate)

	completed := env.store.orderByID(order.ID)
	assert.True(t, completed.ProducedQty.Equal(dec("9.5")),
		"lo producido real puede diferir de lo planificado")
}

func TestCompleteOrder_ProcessSinVidaUtilNoVence(t *testing.T) {
	env := newProdEnv(t)
	env.products.products["gel-1"] = &entity.Product{
		ID: "gel-1", SKU: "PT-003", Name: "Gel limpiador", UOM: "UN",
		Type: entity.ProductTypeFinished, IsActive: true,
	}
	env.boms.boms["bom-gel"] = &entity.BOMHeader{
		ID: "bom-gel", Code: "BOM-PRO-0002", Name: "Gel limpiador x1",
		ProductID: "gel-1", OutputQty: qty(1), UOM: "UN",
		BOMType: entity.BOMTypeProcess, Status: entity.BOMStatusActive,
		Details: []entity.BOMDetail{
			{ID: "bd-g", BOMHeaderID: "bom-gel", ProductID: "mat-1", Quantity: qty(1), UOM: "KG"},
		},
	}
	order, _, err := env.orderUC.CreateOrder(context.Background(), "user-1", dto.CreateOrderRequest{
		ProductID: "gel-1", QuantityPlanned: qty(1), WarehouseID: "wh-mp", TargetWarehouseID: "wh-pt",
	})
	require.NoError(t, err)
	env.addLot(t, "mat-1", "wh-mp", "B1", qty(2), inDays(5))
	_, err = env.issueUC.IssueMaterials(context.Background(), order.ID, "user-1", false, "")
	require.NoError(t, err)

	receipt, err := env.completeUC.CompleteOrder(context.Background(), order.ID, "user-1", dto.CompleteOrderRequest{
		ProducedQty: qty(1), BatchNo: "GEL-001",
	})
	require.NoError(t, err)
	assert.Nil(t, receipt.ExpiredDate, "sin vida útil declarada el lote no vence")
	assert.Nil(t, env.store.entryByID(receipt.LedgerEntryID).ExpiredDate)
}

// Sin emisiones previas no hay grupo que reutilizar ni vencimientos que
// heredar: grupo nuevo y lote sin vencer.
func TestCompleteOrder_SinEmisionesUsaGrupoNuevo(t *testing.T) {
	env := newProdEnv(t)
	order := env.planKitOrder(t, 1)
	env.store.orderByID(order.ID).Status = entity.OrderStatusInProgress

	receipt, err := env.completeUC.CompleteOrder(context.Background(), order.ID, "user-1", dto.CompleteOrderRequest{
		ProducedQty: qty(1), BatchNo: "KIT-X",
	})
	require.NoError(t, err)

	assert.Nil(t, receipt.ExpiredDate)
	entry := env.store.entryByID(receipt.LedgerEntryID)
	require.NotNil(t, entry)
	assert.NotEmpty(t, entry.GroupID)
}

func TestCompleteOrder_GuardasDeEstado(t *testing.T) {
	env := newProdEnv(t)
	order := env.planKitOrder(t, 1)
	in := dto.CompleteOrderRequest{ProducedQty: qty(1), BatchNo: "KIT-001"}

	_, err := env.completeUC.CompleteOrder(context.Background(), order.ID, "user-1", in)
	assert.ErrorIs(t, err, domain.ErrConflict, "una orden PLANNED no puede completarse")
	assert.Empty(t, env.store.receipts)

	env.addLot(t, "mat-1", "wh-mp", "B1", qty(5), inDays(30))
	env.addLot(t, "mat-2", "wh-mp", "B2", qty(5), inDays(30))
	_, err = env.issueUC.IssueMaterials(context.Background(), order.ID, "user-1", false, "")
	require.NoError(t, err)
	_, err = env.completeUC.CompleteOrder(context.Background(), order.ID, "user-1", in)
	require.NoError(t, err)

	_, err = env.completeUC.CompleteOrder(context.Background(), order.ID, "user-1", in)
	assert.ErrorIs(t, err, domain.ErrConflict, "no se puede completar dos veces")
	assert.Len(t, env.store.receipts, 1)

	_, err = env.completeUC.CompleteOrder(context.Background(), "nope", "user-1", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = env.completeUC.CompleteOrder(context.Background(), order.ID, "user-1", dto.CompleteOrderRequest{ProducedQty: qty(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el batch del lote producido es obligatorio")

	_, err = env.completeUC.CompleteOrder(context.Background(), order.ID, "user-1", dto.CompleteOrderRequest{BatchNo: "KIT-002"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReceipts_ListaLasEntradasDeLaOrden(t *testing.T) {
	env := newProdEnv(t)
	order := env.planKitOrder(t, 1)
	env.addLot(t, "mat-1", "wh-mp", "B1", qty(5), inDays(30))
	env.addLot(t, "mat-2", "wh-mp", "B2", qty(5), inDays(30))
	_, err := env.issueUC.IssueMaterials(context.Background(), order.ID, "user-1", false, "")
	require.NoError(t, err)
	receipt, err := env.completeUC.CompleteOrder(context.Background(), order.ID, "user-1", dto.CompleteOrderRequest{
		ProducedQty: qty(1), BatchNo: "KIT-001",
	})
	require.NoError(t, err)

	receipts, err := env.completeUC.Receipts(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, receipt.ReceiptNo, receipts[0].ReceiptNo)

	_, err = env.completeUC.Receipts(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
