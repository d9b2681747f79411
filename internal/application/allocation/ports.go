package allocation

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad: Commit si fn devuelve
// nil, Rollback en caso contrario. La implementación además fija el
// lock_timeout de la transacción, de modo que la toma de bloqueos FOR UPDATE
// bajo contención falle rápido con domain.ErrLockNotAvailable en vez de
// encolarse indefinidamente.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ledgerRepo repository.LedgerRepository,
		issueRepo repository.MaterialIssueRepository,
	) error) error
}

// IssueSlipLine es una línea del vale de salida ya resuelta para impresión.
type IssueSlipLine struct {
	SKU         string
	ProductName string
	BatchNo     string
	Quantity    decimal.Decimal
	UOM         string
}

// IssueSlipData son los datos completos del vale de salida: cabecera con
// códigos y nombres (no IDs internos) más sus líneas de consumo en orden FEFO.
type IssueSlipData struct {
	IssueNo       string
	OrderNo       string // "" en emisiones sueltas
	WarehouseCode string
	WarehouseName string
	GroupID       string
	Status        string
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	Lines         []IssueSlipLine
}

// SlipPDFGenerator genera la representación gráfica (PDF) del vale de salida.
type SlipPDFGenerator interface {
	GenerateIssueSlip(ctx context.Context, data IssueSlipData) ([]byte, error)
}
