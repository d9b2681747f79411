package dto

import "time"

// CreateProductRequest entrada para crear un material del catálogo.
type CreateProductRequest struct {
	SKU           string `json:"sku" validate:"required,min=1,max=100"`
	Name          string `json:"name" validate:"required,min=1,max=200"`
	UOM           string `json:"uom" validate:"required"`
	Type          string `json:"type" validate:"required,oneof=RAW PACKAGING FINISHED"`
	ShelfLifeDays int    `json:"shelf_life_days" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un material (SKU inmutable).
type UpdateProductRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	UOM           *string `json:"uom"`
	Type          *string `json:"type" validate:"omitempty,oneof=RAW PACKAGING FINISHED"`
	ShelfLifeDays *int    `json:"shelf_life_days" validate:"omitempty,min=0"`
	IsActive      *bool   `json:"is_active"`
}

// ProductResponse salida de un material.
type ProductResponse struct {
	ID            string    `json:"id"`
	SKU           string    `json:"sku"`
	Name          string    `json:"name"`
	UOM           string    `json:"uom"`
	Type          string    `json:"type"`
	ShelfLifeDays int       `json:"shelf_life_days"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de materiales.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
