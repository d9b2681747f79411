package entity

import "time"

// Warehouse representa una bodega o planta donde se almacena inventario.
type Warehouse struct {
	ID        string
	Code      string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
