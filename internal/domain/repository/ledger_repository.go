package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// LedgerRepository es el puerto transaccional del libro de inventario.
// EligibleLotsForUpdate, DecrementRemain y AppendEntry solo se usan dentro de
// la transacción del ejecutor (repos ligados a la tx por el TxRunner).
type LedgerRepository interface {
	// EligibleLotsForUpdate carga los lotes elegibles del producto en la
	// bodega, bloqueados FOR UPDATE, en orden FEFO: vencimiento ascendente
	// (sin vencimiento al final), batch ascendente, id ascendente. Elegible:
	// remain > 0, no borrado y (includeExpired o sin vencer respecto a today).
	EligibleLotsForUpdate(ctx context.Context, productID, warehouseID string, includeExpired bool, today time.Time) ([]entity.InventoryLot, error)

	// DecrementRemain descuenta qty del saldo del lote. Falla con
	// domain.ErrConflict si el saldo es menor a qty: el guard de base de
	// datos que impide dejar remain negativo.
	DecrementRemain(ctx context.Context, lotID int64, qty decimal.Decimal) error

	// AppendEntry inserta un asiento y devuelve su id generado.
	AppendEntry(ctx context.Context, e *entity.LedgerEntry) (int64, error)

	// MinConsumedExpiryForOrder devuelve el vencimiento mínimo entre los
	// lotes consumidos por las emisiones de la orden (nil si ninguno vence).
	// Lo usa el cierre de producción KITTING para heredar vencimiento.
	MinConsumedExpiryForOrder(ctx context.Context, orderID string) (*time.Time, error)
}
