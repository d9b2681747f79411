package production_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// Emisión completa de una orden del kit x3: 6 KG de harina (cruza dos lotes
// FEFO) y 3 KG de azúcar, bajo una sola cabecera.
func TestIssueMaterials_EmiteTodosLosPendientes(t *testing.T) {
	env := newProdEnv(t)
	order := env.planKitOrder(t, 3)

	env.addLot(t, "mat-1", "wh-mp", "B1", qty(4), inDays(10))
	env.addLot(t, "mat-1", "wh-mp", "B2", qty(10), inDays(30))
	env.addLot(t, "mat-2", "wh-mp", "B3", qty(5), inDays(20))

	res, err := env.issueUC.IssueMaterials(context.Background(), order.ID, "user-1", false, "primera corrida")
	require.NoError(t, err)

	require.Len(t, env.store.issues, 1, "una sola cabecera para todos los materiales")
	assert.Equal(t, order.ID, res.Issue.ManufacturingOrderID)
	assert.Equal(t, "wh-mp", res.Issue.WarehouseID)
	assert.Equal(t, "primera corrida", res.Issue.Notes)

	require.Len(t, res.Lines, 3)
	assert.Equal(t, "B1", res.Lines[0].Detail.BatchNo, "el lote más próximo a vencer sale primero")
	assert.True(t, res.Lines[0].Detail.Quantity.Equal(qty(4)))
	assert.Equal(t, "B2", res.Lines[1].Detail.BatchNo)
	assert.True(t, res.Lines[1].Detail.Quantity.Equal(qty(2)))
	assert.Equal(t, "B3", res.Lines[2].Detail.BatchNo)
	assert.True(t, res.Lines[2].Detail.Quantity.Equal(qty(3)))

	for _, m := range env.store.materialsOf(order.ID) {
		assert.Equal(t, entity.OrderMaterialIssued, m.Status)
		assert.True(t, m.IssuedQty.Equal(m.RequiredQty), "material %s emitido completo", m.ProductID)
	}

	negs := env.store.negativeEntries()
	require.Len(t, negs, 3)
	for _, e := range negs {
		assert.Equal(t, entity.EntryTypeProductionOut, e.Type)
		assert.Equal(t, res.Issue.GroupID, e.GroupID, "todos los consumos comparten el grupo de la emisión")
	}

	assert.Equal(t, entity.OrderStatusInProgress, env.store.orderByID(order.ID).Status)
	assert.Equal(t, entity.OrderStatusInProgress, res.Order.Status)
}

// Si un solo material no alcanza, la transacción completa se revierte: ni
// cabecera, ni detalles, ni consumos del material que sí alcanzaba.
func TestIssueMaterials_TodoONadaSiUnMaterialFalta(t *testing.T) {
	env := newProdEnv(t)
	order := env.planKitOrder(t, 3)

	harina := env.addLot(t, "mat-1", "wh-mp", "B1", qty(10), inDays(30))
	env.addLot(t, "mat-2", "wh-mp", "B2", qty(2), inDays(20)) // necesita 3

	_, err := env.issueUC.IssueMaterials(context.Background(), order.ID, "user-1", false, "")
	require.Error(t, err)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "mat-2", stockErr.ProductID)
	assert.True(t, stockErr.Requested.Equal(qty(3)))
	assert.True(t, stockErr.Available.Equal(qty(2)))

	assert.Empty(t, env.store.issues)
	assert.Empty(t, env.store.details)
	assert.Empty(t, env.store.negativeEntries())
	assert.True(t, env.store.entryByID(harina).Remain.Equal(qty(10)),
		"el consumo de harina ya aplicado se revierte con el rollback")
	for _, m := range env.store.materialsOf(order.ID) {
		assert.Equal(t, entity.OrderMaterialPending, m.Status)
		assert.True(t, m.IssuedQty.IsZero())
	}
	assert.Equal(t, entity.OrderStatusPlanned, env.store.orderByID(order.ID).Status)
}

func TestIssueMaterials_ConsumeVencidosSoloConPermiso(t *testing.T) {
	env := newProdEnv(t)
	order := env.planKitOrder(t, 1)

	env.addLot(t, "mat-1", "wh-mp", "B-VENCIDO", qty(5), inDays(-2))
	env.addLot(t, "mat-2", "wh-mp", "B-FRESCO", qty(2), inDays(15))

	_, err := env.issueUC.IssueMaterials(context.Background(), order.ID, "user-1", false, "")
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "mat-1", stockErr.ProductID)
	assert.True(t, stockErr.Available.IsZero(), "el lote vencido no cuenta como disponible")

	res, err := env.issueUC.IssueMaterials(context.Background(), order.ID, "user-1", true, "reproceso autorizado")
	require.NoError(t, err)
	require.Len(t, res.Lines, 2)
	assert.Equal(t, "B-VENCIDO", res.Lines[0].Detail.BatchNo)
}

func TestIssueMaterials_SinPendientesEsConflicto(t *testing.T) {
	env := newProdEnv(t)
	order := env.planKitOrder(t, 1)
	env.addLot(t, "mat-1", "wh-mp", "B1", qty(10), inDays(30))
	env.addLot(t, "mat-2", "wh-mp", "B2", qty(10), inDays(30))

	_, err := env.issueUC.IssueMaterials(context.Background(), order.ID, "user-1", false, "")
	require.NoError(t, err)

	_, err = env.issueUC.IssueMaterials(context.Background(), order.ID, "user-1", false, "")
	assert.ErrorIs(t, err, domain.ErrConflict, "sin materiales pendientes no hay nada que emitir")
	assert.Len(t, env.store.issues, 1, "la segunda llamada no escribe otra cabecera")
}

func TestIssueMaterials_EstadosYEntradasInvalidas(t *testing.T) {
	env := newProdEnv(t)
	order := env.planKitOrder(t, 1)
	env.store.orderByID(order.ID).Status = entity.OrderStatusCompleted

	_, err := env.issueUC.IssueMaterials(context.Background(), order.ID, "user-1", false, "")
	assert.ErrorIs(t, err, domain.ErrConflict, "una orden terminada no admite emisiones")

	_, err = env.issueUC.IssueMaterials(context.Background(), "nope", "user-1", false, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = env.issueUC.IssueMaterials(context.Background(), "", "user-1", false, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
