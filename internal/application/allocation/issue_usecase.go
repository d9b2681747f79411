// Package allocation implementa los casos de uso de asignación FEFO sobre el
// libro de inventario: recepción de material, vista previa de stock y de plan,
// emisión de materiales con bloqueo de lotes y vale de salida en PDF.
package allocation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/allocation"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// IssueUseCase emite materiales de una bodega de forma transaccional: bloquea
// los lotes elegibles (SELECT FOR UPDATE) en orden FEFO, arma el plan de
// consumo y lo ejecuta todo-o-nada con Commit/Rollback.
type IssueUseCase struct {
	txRunner      TxRunner
	issueRepo     repository.MaterialIssueRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewIssueUseCase construye el caso de uso. issueRepo es el repositorio fuera
// de transacción, solo para lecturas; las escrituras usan los repos del TxRunner.
func NewIssueUseCase(
	txRunner TxRunner,
	issueRepo repository.MaterialIssueRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *IssueUseCase {
	return &IssueUseCase{
		txRunner:      txRunner,
		issueRepo:     issueRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// IssueInputDTO entrada para emitir materiales.
// ManufacturingOrderID vacío = emisión suelta, no ligada a una orden.
// AllowExpired habilita consumir lotes vencidos (merma, reproceso).
type IssueInputDTO struct {
	UserID               string
	ProductID            string
	WarehouseID          string
	Quantity             decimal.Decimal
	ManufacturingOrderID string
	AllowExpired         bool
	Notes                string
}

// IssueLine es una línea ejecutada del plan: el detalle de consumo persistido
// y el lote del que se tomó (con su estado previo al decremento).
type IssueLine struct {
	Detail *entity.MaterialIssueDetail
	Lot    entity.InventoryLot
}

// IssueResult es el documento de emisión tal como quedó persistido.
type IssueResult struct {
	Issue *entity.MaterialIssue
	Lines []IssueLine
}

// Issue valida la entrada, abre la transacción y ejecuta la emisión FEFO.
// Si el stock elegible no alcanza devuelve domain.InsufficientStockError y no
// queda escrito ningún asiento ni detalle; si la toma de bloqueos expira
// devuelve domain.ErrLockNotAvailable y el caller puede reintentar.
func (uc *IssueUseCase) Issue(ctx context.Context, input IssueInputDTO) (*IssueResult, error) {
	if input.ProductID == "" || input.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, input.WarehouseID)
	if err != nil || warehouse == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	issue := &entity.MaterialIssue{
		ID:                   uuid.New().String(),
		IssueNo:              "MI-" + now.Format("20060102150405"),
		ManufacturingOrderID: input.ManufacturingOrderID,
		WarehouseID:          input.WarehouseID,
		Status:               entity.IssueStatusConfirmed,
		GroupID:              uuid.New().String(),
		Notes:                input.Notes,
		CreatedBy:            input.UserID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	var lines []IssueLine
	err = uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		issueRepo repository.MaterialIssueRepository,
	) error {
		if err := issueRepo.Create(ctx, issue); err != nil {
			return err
		}
		var txErr error
		lines, txErr = uc.IssueInTx(ctx, ledgerRepo, issueRepo, issue, product, input.Quantity, input.AllowExpired, now)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return &IssueResult{Issue: issue, Lines: lines}, nil
}

// IssueInTx ejecuta una emisión FEFO usando los repositorios proporcionados
// (misma transacción del caller). La cabecera issue debe estar ya creada en
// esa transacción. Lo usa también producción para emitir los materiales de una
// orden dentro de su propia transacción.
//
// Por cada lote del plan escribe el detalle de consumo, descuenta el saldo del
// lote y apunta el asiento negativo que referencia al detalle.
func (uc *IssueUseCase) IssueInTx(
	ctx context.Context,
	ledgerRepo repository.LedgerRepository,
	issueRepo repository.MaterialIssueRepository,
	issue *entity.MaterialIssue,
	product *entity.Product,
	quantity decimal.Decimal,
	allowExpired bool,
	now time.Time,
) ([]IssueLine, error) {
	// Bloquea los lotes elegibles (FOR UPDATE), ya en orden FEFO
	lots, err := ledgerRepo.EligibleLotsForUpdate(ctx, product.ID, issue.WarehouseID, allowExpired, now)
	if err != nil {
		return nil, err
	}
	plan := allocation.Select(lots, quantity)
	if !plan.Satisfied() {
		return nil, &domain.InsufficientStockError{
			ProductID: product.ID,
			Requested: quantity,
			Available: plan.Total(),
		}
	}

	lines := make([]IssueLine, 0, len(plan.Lines))
	for _, ln := range plan.Lines {
		detail := &entity.MaterialIssueDetail{
			ID:                   uuid.New().String(),
			MaterialIssueID:      issue.ID,
			ProductID:            product.ID,
			ManufacturingOrderID: issue.ManufacturingOrderID,
			Quantity:             ln.Take,
			UOM:                  product.UOM,
			BatchNo:              ln.Lot.BatchNo,
			LedgerEntryID:        ln.Lot.ID,
			CreatedAt:            now,
		}
		if err := issueRepo.CreateDetail(ctx, detail); err != nil {
			return nil, err
		}
		// El guard remain >= qty del repositorio aborta toda la transacción
		// si otro proceso consumió el lote entre el SELECT y este UPDATE.
		if err := ledgerRepo.DecrementRemain(ctx, ln.Lot.ID, ln.Take); err != nil {
			return nil, err
		}
		entry := &entity.LedgerEntry{
			Type:           entity.EntryTypeProductionOut,
			ProductID:      product.ID,
			WarehouseID:    issue.WarehouseID,
			Quantity:       ln.Take.Neg(),
			Remain:         decimal.Zero,
			BatchNo:        ln.Lot.BatchNo,
			ExpiredDate:    ln.Lot.ExpiredDate,
			SourceDetailID: detail.ID,
			GroupID:        issue.GroupID,
			CreatedBy:      issue.CreatedBy,
			CreatedAt:      now,
		}
		if _, err := ledgerRepo.AppendEntry(ctx, entry); err != nil {
			return nil, err
		}
		lines = append(lines, IssueLine{Detail: detail, Lot: ln.Lot})
	}
	return lines, nil
}

// GetIssue devuelve la emisión con sus líneas de consumo, en el orden en que
// fueron asignadas.
func (uc *IssueUseCase) GetIssue(ctx context.Context, id string) (*IssueResult, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	issue, err := uc.issueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.issueRepo.GetDetailsByIssueID(ctx, id)
	if err != nil {
		return nil, err
	}
	lines := make([]IssueLine, 0, len(details))
	for _, d := range details {
		lines = append(lines, IssueLine{Detail: d})
	}
	return &IssueResult{Issue: issue, Lines: lines}, nil
}
