package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
)

// respondDomainError traduce un error de dominio al status HTTP y cuerpo
// correspondientes. Los casos de uso devuelven sentinelas envueltos con
// contexto (fmt.Errorf %w), por lo que el mapeo se hace con errors.Is /
// errors.As y no por comparación directa.
//
// Mapa de errores:
//
//	ErrInvalidInput      → 400 VALIDATION
//	ErrNotFound          → 404 NOT_FOUND
//	ErrDuplicate         → 409 DUPLICATE
//	ErrConflict          → 409 CONFLICT
//	InsufficientStock    → 409 INSUFFICIENT_STOCK (+ detalle del faltante)
//	ErrLockNotAvailable  → 503 LOCK_TIMEOUT (+ Retry-After)
//	ErrUnauthorized      → 401 UNAUTHORIZED
//	ErrForbidden         → 403 FORBIDDEN
//	otro                 → 500 INTERNAL
func respondDomainError(c *fiber.Ctx, err error) error {
	var insufficientErr *domain.InsufficientStockError
	if errors.As(err, &insufficientErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: insufficientErr.Error(),
			Details: dto.InsufficientStockDetails{
				ProductID: insufficientErr.ProductID,
				Requested: insufficientErr.Requested.String(),
				Available: insufficientErr.Available.String(),
				Shortfall: insufficientErr.Shortfall().String(),
			},
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "DUPLICATE",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "CONFLICT",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrLockNotAvailable):
		// Transitorio: otro proceso tiene bloqueados los lotes. El cliente
		// puede reintentar la operación completa.
		c.Set("Retry-After", "1")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code:    "LOCK_TIMEOUT",
			Message: "inventario bloqueado por otra operación, reintente",
		})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "error interno del servidor",
	})
}

// respondInvalidBody es la respuesta estándar cuando el cuerpo/query de la
// petición no se puede parsear.
func respondInvalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "INVALID_BODY",
		Message: "cuerpo de la petición inválido",
	})
}
