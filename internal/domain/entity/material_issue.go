package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una emisión de materiales. El flujo actual confirma en el mismo
// acto de emitir; no existe borrador.
const (
	IssueStatusConfirmed = "CONFIRMED"
	IssueStatusCancelled = "CANCELLED"
)

// MaterialIssue es la cabecera del documento de emisión de materiales.
// GroupID correlaciona la cabecera con todos los asientos del libro escritos
// por la misma llamada de asignación.
type MaterialIssue struct {
	ID                   string
	IssueNo              string // MI-<yyyymmddhhmmss>
	ManufacturingOrderID string // "" en emisiones sueltas
	WarehouseID          string
	Status               string
	GroupID              string
	Notes                string
	CreatedBy            string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// MaterialIssueDetail es una línea de consumo: exactamente una por
// (emisión × lote consumido). Nunca se modifica ni se borra después de creada.
type MaterialIssueDetail struct {
	ID                   string
	MaterialIssueID      string
	ProductID            string
	ManufacturingOrderID string
	Quantity             decimal.Decimal
	UOM                  string
	BatchNo              string
	LedgerEntryID        int64 // lote del que se consumió
	CreatedAt            time.Time
}
