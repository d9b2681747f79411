package allocation

import (
	"context"
	"fmt"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// SlipUseCase genera el vale de salida (PDF) de una emisión de materiales.
type SlipUseCase struct {
	issueRepo     repository.MaterialIssueRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	orderRepo     repository.ManufacturingOrderRepository
	generator     SlipPDFGenerator
}

// NewSlipUseCase construye el caso de uso inyectando todas sus dependencias.
func NewSlipUseCase(
	issueRepo repository.MaterialIssueRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	orderRepo repository.ManufacturingOrderRepository,
	generator SlipPDFGenerator,
) *SlipUseCase {
	return &SlipUseCase{
		issueRepo:     issueRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		orderRepo:     orderRepo,
		generator:     generator,
	}
}

// DownloadIssueSlipPDF carga la emisión con sus líneas, resuelve códigos y
// nombres para impresión y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la emisión no existe.
//   - domain.ErrConflict        si la emisión no está CONFIRMED.
func (uc *SlipUseCase) DownloadIssueSlipPDF(ctx context.Context, issueID string) (pdfBytes []byte, filename string, err error) {
	issue, err := uc.issueRepo.GetByID(ctx, issueID)
	if err != nil {
		return nil, "", fmt.Errorf("vale: obtener emisión: %w", err)
	}
	if issue == nil {
		return nil, "", domain.ErrNotFound
	}
	if issue.Status != entity.IssueStatusConfirmed {
		return nil, "", fmt.Errorf("vale: la emisión %s no está confirmada: %w", issue.IssueNo, domain.ErrConflict)
	}

	details, err := uc.issueRepo.GetDetailsByIssueID(ctx, issueID)
	if err != nil {
		return nil, "", fmt.Errorf("vale: obtener detalles: %w", err)
	}

	data := IssueSlipData{
		IssueNo:   issue.IssueNo,
		GroupID:   issue.GroupID,
		Status:    issue.Status,
		Notes:     issue.Notes,
		CreatedBy: issue.CreatedBy,
		CreatedAt: issue.CreatedAt,
	}
	if wh, whErr := uc.warehouseRepo.GetByID(ctx, issue.WarehouseID); whErr == nil && wh != nil {
		data.WarehouseCode = wh.Code
		data.WarehouseName = wh.Name
	}
	if issue.ManufacturingOrderID != "" {
		if order, oErr := uc.orderRepo.GetByID(ctx, issue.ManufacturingOrderID); oErr == nil && order != nil {
			data.OrderNo = order.OrderNo
		}
	}

	// Resuelve SKU y nombre por producto una sola vez
	products := make(map[string]*entity.Product)
	for _, d := range details {
		p, ok := products[d.ProductID]
		if !ok {
			p, _ = uc.productRepo.GetByID(ctx, d.ProductID)
			products[d.ProductID] = p
		}
		line := IssueSlipLine{
			BatchNo:  d.BatchNo,
			Quantity: d.Quantity,
			UOM:      d.UOM,
		}
		if p != nil {
			line.SKU = p.SKU
			line.ProductName = p.Name
		} else {
			line.ProductName = "Producto " + d.ProductID // fallback
		}
		data.Lines = append(data.Lines, line)
	}

	pdfBytes, err = uc.generator.GenerateIssueSlip(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("vale: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("vale_%s.pdf", issue.IssueNo)
	return pdfBytes, filename, nil
}
