package production

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/allocation"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye, además
// del libro y las emisiones, los repositorios de órdenes y recepciones de
// producción. Mismas garantías que allocation.TxRunner: Commit/Rollback
// automático y lock_timeout por transacción.
type TxRunner interface {
	RunProduction(ctx context.Context, fn func(
		ledgerRepo repository.LedgerRepository,
		issueRepo repository.MaterialIssueRepository,
		orderRepo repository.ManufacturingOrderRepository,
		receiptRepo repository.ProductionReceiptRepository,
	) error) error
}

// MaterialIssuer emite un material con asignación FEFO usando los
// repositorios del caller (misma transacción). Si retorna error
// (ej: InsufficientStockError), el caller debe hacer rollback.
// Lo implementa allocation.IssueUseCase.
type MaterialIssuer interface {
	IssueInTx(
		ctx context.Context,
		ledgerRepo repository.LedgerRepository,
		issueRepo repository.MaterialIssueRepository,
		issue *entity.MaterialIssue,
		product *entity.Product,
		quantity decimal.Decimal,
		allowExpired bool,
		now time.Time,
	) ([]allocation.IssueLine, error)
}
