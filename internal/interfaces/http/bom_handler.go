package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// BOMHandler maneja las recetas de fabricación (protegido).
type BOMHandler struct {
	uc *usecase.BOMUseCase
}

// NewBOMHandler construye el handler.
func NewBOMHandler(uc *usecase.BOMUseCase) *BOMHandler {
	return &BOMHandler{uc: uc}
}

// Create godoc
// @Summary      Crear una receta (BOM)
// @Description  La receta nace en DRAFT con sus componentes. output_qty es la
//               cantidad que produce una corrida; scrap_rate es merma en
//               porcentaje por componente.
// @Tags         boms
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBOMRequest  true  "name, product_id, output_qty, uom, bom_type (KITTING|PROCESS), details"
// @Success      201  {object}  dto.BOMResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boms [post]
func (h *BOMHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBOMRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	bom, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bom)
}

// List godoc
// @Summary      Listar recetas
// @Tags         boms
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "DRAFT | ACTIVE | INACTIVE"
// @Success      200  {object}  dto.BOMListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/boms [get]
func (h *BOMHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.Query("status"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Consultar una receta con sus componentes
// @Tags         boms
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Receta (UUID)"
// @Success      200  {object}  dto.BOMResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boms/{id} [get]
func (h *BOMHandler) GetByID(c *fiber.Ctx) error {
	bom, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(bom)
}

// ReplaceDetails godoc
// @Summary      Reemplazar los componentes de una receta
// @Description  Sustituye la lista completa de componentes. Solo para recetas
//               que no están ACTIVE: una receta activa se versiona creando
//               otra, no se edita.
// @Tags         boms
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "Receta (UUID)"
// @Param        body  body  dto.ReplaceBOMDetailsRequest  true  "details"
// @Success      200  {object}  dto.BOMResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse "CONFLICT: la receta está ACTIVE"
// @Router       /api/boms/{id}/details [put]
func (h *BOMHandler) ReplaceDetails(c *fiber.Ctx) error {
	var in dto.ReplaceBOMDetailsRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	bom, err := h.uc.ReplaceDetails(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(bom)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una receta
// @Description  DRAFT → ACTIVE desactiva cualquier otra receta activa del
//               mismo producto: a lo sumo una activa por producto.
// @Tags         boms
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "Receta (UUID)"
// @Param        body  body  dto.UpdateBOMStatusRequest  true  "status (DRAFT|ACTIVE|INACTIVE)"
// @Success      200  {object}  dto.BOMResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boms/{id}/status [patch]
func (h *BOMHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateBOMStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	bom, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(bom)
}

// Deactivate godoc
// @Summary      Desactivar una receta
// @Description  Baja lógica: la receta pasa a INACTIVE y deja de resolverse
//               como receta activa del producto. El historial se conserva.
// @Tags         boms
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Receta (UUID)"
// @Success      200  {object}  dto.BOMResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boms/{id} [delete]
func (h *BOMHandler) Deactivate(c *fiber.Ctx) error {
	bom, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), entity.BOMStatusInactive)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(bom)
}
