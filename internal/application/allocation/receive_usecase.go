package allocation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// ReceiveUseCase registra recepciones de material: cada recepción apunta un
// asiento positivo que crea un lote nuevo (remain = cantidad). Es una
// inserción simple sin bloqueo de filas: no compite con los consumos.
type ReceiveUseCase struct {
	ledgerRepo    repository.LedgerRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewReceiveUseCase construye el caso de uso.
func NewReceiveUseCase(
	ledgerRepo repository.LedgerRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *ReceiveUseCase {
	return &ReceiveUseCase{
		ledgerRepo:    ledgerRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// ReceiveInputDTO entrada para recibir material a una bodega.
// ExpiredDate en formato YYYY-MM-DD; vacío = lote sin vencimiento.
type ReceiveInputDTO struct {
	UserID      string
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	BatchNo     string
	ExpiredDate string
}

// Receive valida la entrada y apunta el asiento de recepción. Se permiten
// fechas ya vencidas: el lote queda registrado pero no será elegible FEFO.
func (uc *ReceiveUseCase) Receive(ctx context.Context, input ReceiveInputDTO) (*entity.LedgerEntry, error) {
	if input.ProductID == "" || input.WarehouseID == "" || input.BatchNo == "" {
		return nil, domain.ErrInvalidInput
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var expiredDate *time.Time
	if input.ExpiredDate != "" {
		d, err := time.ParseInLocation("2006-01-02", input.ExpiredDate, time.UTC)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expiredDate = &d
	}

	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, input.WarehouseID)
	if err != nil || warehouse == nil {
		return nil, domain.ErrNotFound
	}

	entry := &entity.LedgerEntry{
		Type:        entity.EntryTypeReceipt,
		ProductID:   product.ID,
		WarehouseID: warehouse.ID,
		Quantity:    input.Quantity,
		Remain:      input.Quantity,
		BatchNo:     input.BatchNo,
		ExpiredDate: expiredDate,
		GroupID:     uuid.New().String(),
		CreatedBy:   input.UserID,
		CreatedAt:   time.Now(),
	}
	if _, err := uc.ledgerRepo.AppendEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
