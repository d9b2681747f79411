package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	// ErrLockNotAvailable: no se obtuvo el bloqueo de fila dentro del
	// presupuesto configurado. Transitorio: el caller puede reintentar la
	// operación completa. Distinto de ErrInsufficientStock.
	ErrLockNotAvailable = errors.New("bloqueo de inventario no disponible")
)

// InsufficientStockError detalla un faltante de stock: cuánto se pidió,
// cuánto había elegible y cuánto faltó. Envuelve ErrInsufficientStock para
// que errors.Is(err, ErrInsufficientStock) siga funcionando.
type InsufficientStockError struct {
	ProductID string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: solicitado %s, disponible %s (faltan %s)",
		e.ProductID, e.Requested, e.Available, e.Shortfall())
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// Shortfall devuelve la cantidad faltante (solicitado - disponible).
func (e *InsufficientStockError) Shortfall() decimal.Decimal {
	return e.Requested.Sub(e.Available)
}
