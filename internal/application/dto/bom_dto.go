package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOMDetailRequest un componente en la creación/reemplazo de receta.
type BOMDetailRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	UOM       string          `json:"uom" validate:"required"`
	ScrapRate decimal.Decimal `json:"scrap_rate"` // porcentaje 0–100
}

// CreateBOMRequest body de POST /api/boms.
type CreateBOMRequest struct {
	Name      string             `json:"name" validate:"required"`
	ProductID string             `json:"product_id" validate:"required"`
	OutputQty decimal.Decimal    `json:"output_qty" validate:"required"`
	UOM       string             `json:"uom" validate:"required"`
	BOMType   string             `json:"bom_type" validate:"required,oneof=KITTING PROCESS"`
	Details   []BOMDetailRequest `json:"details" validate:"required,min=1"`
}

// ReplaceBOMDetailsRequest body de PUT /api/boms/:id/details.
type ReplaceBOMDetailsRequest struct {
	Details []BOMDetailRequest `json:"details" validate:"required,min=1"`
}

// UpdateBOMStatusRequest body de PATCH /api/boms/:id/status.
type UpdateBOMStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT ACTIVE INACTIVE"`
}

// BOMDetailDTO un componente de la receta.
type BOMDetailDTO struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UOM       string          `json:"uom"`
	ScrapRate decimal.Decimal `json:"scrap_rate"`
}

// BOMResponse una receta.
type BOMResponse struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	ProductID string          `json:"product_id"`
	OutputQty decimal.Decimal `json:"output_qty"`
	UOM       string          `json:"uom"`
	BOMType   string          `json:"bom_type"`
	Status    string          `json:"status"`
	Details   []BOMDetailDTO  `json:"details,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BOMListResponse listado de recetas.
type BOMListResponse struct {
	Items []BOMResponse `json:"items"`
}
