package entity

import "time"

// Tipos de material del catálogo de manufactura.
const (
	ProductTypeRaw       = "RAW"       // materia prima
	ProductTypePackaging = "PACKAGING" // material de empaque
	ProductTypeFinished  = "FINISHED"  // producto terminado
)

// Product representa un material o producto del catálogo.
// ShelfLifeDays = 0 significa sin vida útil declarada (lotes sin vencimiento).
type Product struct {
	ID            string
	SKU           string // código único del material
	Name          string
	UOM           string // unidad de medida (KG, L, UN, ...)
	Type          string
	ShelfLifeDays int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
