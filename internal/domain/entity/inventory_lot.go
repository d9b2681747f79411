package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryLot es la proyección "lote" de un asiento positivo del libro con
// saldo vivo: remain > 0 y no borrado lógicamente. Es lo que el selector FEFO
// consume y lo que el ejecutor bloquea fila a fila.
type InventoryLot struct {
	ID          int64 // id del asiento de entrada que creó el lote
	ProductID   string
	WarehouseID string
	BatchNo     string
	ExpiredDate *time.Time // nil = nunca vence
	Remain      decimal.Decimal
}

// Expired indica si el lote está vencido respecto a today, a granularidad de
// día: un lote que vence hoy todavía es elegible. Sin vencimiento nunca vence.
func (l *InventoryLot) Expired(today time.Time) bool {
	if l.ExpiredDate == nil {
		return false
	}
	base := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return l.ExpiredDate.Before(base)
}
