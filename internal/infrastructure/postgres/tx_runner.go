package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Produccion-api/internal/application/allocation"
	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// Ensure TxRunner implements allocation.TxRunner and production.TxRunner.
var _ allocation.TxRunner = (*TxRunner)(nil)
var _ production.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Cada transacción arranca con SET LOCAL lock_timeout para que un FOR UPDATE
// sobre lotes ya bloqueados falle rápido (55P03) en vez de encolarse; ese
// fallo se traduce a domain.ErrLockNotAvailable para que el llamador reintente.
type TxRunner struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

// NewTxRunner construye el runner con el pool y el lock_timeout por transacción.
func NewTxRunner(pool *pgxpool.Pool, lockTimeout time.Duration) *TxRunner {
	return &TxRunner{pool: pool, lockTimeout: lockTimeout}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	issueRepo repository.MaterialIssueRepository,
) error) error {
	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ledgerRepo := NewLedgerRepository(tx)
	issueRepo := NewMaterialIssueRepository(tx)

	if err := fn(ledgerRepo, issueRepo); err != nil {
		return translateLockErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return translateLockErr(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// RunProduction inicia una transacción con los repos de órdenes de fabricación
// además del libro y las salidas (para IssueToOrder y CompleteOrder).
func (r *TxRunner) RunProduction(ctx context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	issueRepo repository.MaterialIssueRepository,
	orderRepo repository.ManufacturingOrderRepository,
	receiptRepo repository.ProductionReceiptRepository,
) error) error {
	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ledgerRepo := NewLedgerRepository(tx)
	issueRepo := NewMaterialIssueRepository(tx)
	orderRepo := NewManufacturingOrderRepository(tx)
	receiptRepo := NewProductionReceiptRepository(tx)

	if err := fn(ledgerRepo, issueRepo, orderRepo, receiptRepo); err != nil {
		return translateLockErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return translateLockErr(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

func (r *TxRunner) begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	if r.lockTimeout > 0 {
		// SET LOCAL vive solo dentro de esta transacción.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout.Milliseconds())
		if _, err := tx.Exec(ctx, stmt); err != nil {
			_ = tx.Rollback(ctx)
			return nil, fmt.Errorf("set lock_timeout: %w", err)
		}
	}
	return tx, nil
}

func translateLockErr(err error) error {
	if isLockNotAvailable(err) {
		return fmt.Errorf("%w: %v", domain.ErrLockNotAvailable, err)
	}
	return err
}
