package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de asiento del libro de inventario.
const (
	EntryTypeReceipt       = "stockInReceipt"      // recepción de material (crea lote)
	EntryTypeProductionIn  = "stockInProduction"   // entrada por producción terminada (crea lote)
	EntryTypeProductionOut = "stockOutProduction"  // consumo por emisión de materiales
)

// LedgerEntry representa un asiento del libro de inventario (inventory_ledger).
// Es append-only: una vez escrito solo cambia Remain, y únicamente en los
// asientos positivos, decrementado por el ejecutor dentro de su transacción.
// El ID es BIGSERIAL: el orden ascendente de IDs ES el orden de inserción, que
// actúa como último criterio de desempate FEFO.
type LedgerEntry struct {
	ID             int64
	Type           string
	ProductID      string
	WarehouseID    string
	Quantity       decimal.Decimal // con signo: positivo entrada, negativo consumo
	Remain         decimal.Decimal // saldo vivo en asientos positivos; siempre 0 en los negativos
	BatchNo        string
	ExpiredDate    *time.Time // nil = sin vencimiento
	SourceDetailID string     // documento que originó el asiento: detalle de emisión en consumos, recepción de producción en entradas ("" si no aplica)
	GroupID        string     // correlaciona todos los asientos de una misma emisión
	CreatedBy      string
	CreatedAt      time.Time
	Deleted        bool
}
