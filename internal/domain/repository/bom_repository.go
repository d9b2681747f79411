package repository

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// BOMRepository define el puerto de persistencia para recetas (BOM).
type BOMRepository interface {
	// Create inserta cabecera y componentes de forma atómica.
	Create(ctx context.Context, h *entity.BOMHeader) error
	GetByID(ctx context.Context, id string) (*entity.BOMHeader, error)
	// GetActiveByProduct devuelve el BOM ACTIVO del producto (nil si no hay).
	GetActiveByProduct(ctx context.Context, productID string) (*entity.BOMHeader, error)
	List(ctx context.Context, status string) ([]*entity.BOMHeader, error)
	// ReplaceDetails reemplaza los componentes de la cabecera de forma atómica.
	ReplaceDetails(ctx context.Context, bomID string, details []entity.BOMDetail) error
	// UpdateStatus cambia el estado. Pasar a ACTIVE desactiva en la misma
	// operación cualquier otro BOM ACTIVE del mismo producto.
	UpdateStatus(ctx context.Context, id, status string) error
	// NextSequence devuelve el siguiente consecutivo para códigos BOM-<TIPO>-<n>.
	NextSequence(ctx context.Context, prefix string) (int, error)
}
