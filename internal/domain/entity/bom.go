package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de BOM. KITTING hereda el vencimiento mínimo de los lotes consumidos;
// PROCESS calcula vencimiento por vida útil del producto de salida.
const (
	BOMTypeKitting = "KITTING"
	BOMTypeProcess = "PROCESS"
)

// Estados de un BOM. Se crea en DRAFT; solo un BOM ACTIVE puede respaldar
// órdenes de producción.
const (
	BOMStatusDraft    = "DRAFT"
	BOMStatusActive   = "ACTIVE"
	BOMStatusInactive = "INACTIVE"
)

// BOMHeader define la receta de un producto: cuánto produce una corrida
// (OutputQty en UOM) y de qué tipo es.
type BOMHeader struct {
	ID        string
	Code      string // BOM-<TIPO3>-<seq4>
	Name      string
	ProductID string // producto de salida
	OutputQty decimal.Decimal
	UOM       string
	BOMType   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Details   []BOMDetail // cargado bajo demanda
}

// BOMDetail es un componente de la receta. ScrapRate es porcentaje (0–100):
// la explosión multiplica por (1 + ScrapRate/100).
type BOMDetail struct {
	ID          string
	BOMHeaderID string
	ProductID   string
	Quantity    decimal.Decimal
	UOM         string
	ScrapRate   decimal.Decimal
}
