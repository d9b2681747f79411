// Package allocation contiene la lógica pura de asignación FEFO
// (First-Expired-First-Out): ordenar lotes, construir el plan de consumo y
// clasificar vencimientos. Sin I/O ni estado: todo es función determinista
// sobre valores, testeable sin capa de persistencia.
package allocation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// PlanLine es una línea del plan de consumo: cuánto tomar de qué lote.
type PlanLine struct {
	Lot  entity.InventoryLot
	Take decimal.Decimal
}

// Plan es el resultado del selector: líneas en orden FEFO más lo que quedó
// sin satisfacer. Invariante: sum(Take) == min(solicitado, total elegible).
type Plan struct {
	Lines       []PlanLine
	Unsatisfied decimal.Decimal
}

// Total suma las cantidades tomadas por todas las líneas del plan.
func (p Plan) Total() decimal.Decimal {
	total := decimal.Zero
	for _, ln := range p.Lines {
		total = total.Add(ln.Take)
	}
	return total
}

// Satisfied indica si el plan cubre completamente lo solicitado.
func (p Plan) Satisfied() bool { return !p.Unsatisfied.IsPositive() }

// Select recorre los lotes EN EL ORDEN RECIBIDO y arma el plan:
// take = min(pendiente, lote.Remain); se detiene al cubrir lo solicitado o
// agotar los lotes. El caller entrega los lotes ya en orden FEFO (SortLots o
// la consulta SQL equivalente); Select no reordena ni filtra elegibilidad.
func Select(lots []entity.InventoryLot, requested decimal.Decimal) Plan {
	if !requested.IsPositive() {
		return Plan{Unsatisfied: decimal.Zero}
	}
	plan := Plan{}
	need := requested
	for _, lot := range lots {
		if !need.IsPositive() {
			break
		}
		take := need
		if lot.Remain.LessThan(take) {
			take = lot.Remain
		}
		if !take.IsPositive() {
			continue
		}
		plan.Lines = append(plan.Lines, PlanLine{Lot: lot, Take: take})
		need = need.Sub(take)
	}
	plan.Unsatisfied = need
	return plan
}

// SortLots ordena in-place por la regla FEFO del libro: vencimiento ascendente
// con los lotes sin vencimiento al final, luego batch ascendente, luego id
// ascendente (orden de inserción; desempata lotes con misma fecha y batch para
// que llamadas repetidas asignen siempre igual). Es la misma regla que aplica
// la consulta de lotes elegibles en Postgres.
func SortLots(lots []entity.InventoryLot) {
	sort.SliceStable(lots, func(i, j int) bool {
		a, b := lots[i], lots[j]
		switch {
		case a.ExpiredDate == nil && b.ExpiredDate != nil:
			return false
		case a.ExpiredDate != nil && b.ExpiredDate == nil:
			return true
		case a.ExpiredDate != nil && b.ExpiredDate != nil:
			if !a.ExpiredDate.Equal(*b.ExpiredDate) {
				return a.ExpiredDate.Before(*b.ExpiredDate)
			}
		}
		if a.BatchNo != b.BatchNo {
			return a.BatchNo < b.BatchNo
		}
		return a.ID < b.ID
	})
}
