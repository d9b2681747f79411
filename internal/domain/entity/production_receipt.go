package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionReceipt documenta la entrada de producto terminado al completar
// una orden. LedgerEntryID apunta al asiento stockInProduction que creó el lote.
type ProductionReceipt struct {
	ID                   string
	ReceiptNo            string // PR-<yyyymmddhhmmss>
	ManufacturingOrderID string
	ProductID            string
	Quantity             decimal.Decimal
	UOM                  string
	BatchNo              string
	ExpiredDate          *time.Time
	WarehouseID          string
	LedgerEntryID        int64
	Notes                string
	CreatedBy            string
	CreatedAt            time.Time
}
