package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// ProductionHandler maneja el ciclo de vida de las órdenes de producción:
// planificación contra BOM, chequeo de disponibilidad, emisión de materiales
// y cierre con entrada de producto terminado (protegido).
type ProductionHandler struct {
	orders  *production.OrderUseCase
	issuing *production.IssueOrderUseCase
	closing *production.CompleteOrderUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(
	orders *production.OrderUseCase,
	issuing *production.IssueOrderUseCase,
	closing *production.CompleteOrderUseCase,
) *ProductionHandler {
	return &ProductionHandler{orders: orders, issuing: issuing, closing: closing}
}

// CreateOrder godoc
// @Summary      Planificar una orden de producción
// @Description  Explota el BOM (explícito o el activo del producto) a la
//               cantidad planificada, con factor de salida y merma, y crea la
//               orden en estado PLANNED. No mueve inventario.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "product_id, quantity_planned, warehouse_id, target_warehouse_id, bom_id opcional"
// @Success      201  {object}  dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/orders [post]
func (h *ProductionHandler) CreateOrder(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	order, materials, err := h.orders.CreateOrder(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(orderResponseFrom(order, materials))
}

// ListOrders godoc
// @Summary      Listar órdenes de producción
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "PLANNED | IN_PROGRESS | COMPLETED | CANCELLED"
// @Param        limit   query  int     false  "Máximo de filas"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/production/orders [get]
func (h *ProductionHandler) ListOrders(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondInvalidBody(c)
	}
	page.DefaultPage()
	status := c.Query("status")
	orders, err := h.orders.ListOrders(c.Context(), status, page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := dto.OrderListResponse{
		Items: make([]dto.OrderResponse, 0, len(orders)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, o := range orders {
		out.Items = append(out.Items, orderResponseFrom(o, nil))
	}
	return c.JSON(out)
}

// GetOrder godoc
// @Summary      Consultar una orden con sus materiales
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Orden (UUID)"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/orders/{id} [get]
func (h *ProductionHandler) GetOrder(c *fiber.Ctx) error {
	order, materials, err := h.orders.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(orderResponseFrom(order, materials))
}

// CheckAvailability godoc
// @Summary      Disponibilidad de materiales de una orden
// @Description  Compara lo que resta por emitir contra el saldo elegible no
//               vencido en la bodega de la orden. No autoritativo: no toma
//               bloqueos.
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Orden (UUID)"
// @Success      200  {object}  dto.AvailabilityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/orders/{id}/availability [get]
func (h *ProductionHandler) CheckAvailability(c *fiber.Ctx) error {
	order, materials, err := h.orders.CheckAvailability(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	out := dto.AvailabilityResponse{
		OrderID:       order.ID,
		WarehouseID:   order.WarehouseID,
		AllSufficient: true,
		Materials:     make([]dto.MaterialAvailabilityDTO, 0, len(materials)),
	}
	for _, m := range materials {
		if !m.Sufficient {
			out.AllSufficient = false
		}
		out.Materials = append(out.Materials, dto.MaterialAvailabilityDTO{
			ProductID:   m.ProductID,
			RequiredQty: m.RequiredQty,
			Available:   m.Available,
			Sufficient:  m.Sufficient,
		})
	}
	return c.JSON(out)
}

// IssueMaterials godoc
// @Summary      Emitir los materiales pendientes de una orden
// @Description  Consume en orden FEFO todos los materiales PENDING dentro de
//               una sola transacción y pasa la orden a IN_PROGRESS. Todo-o-
//               nada: si un material no alcanza, no se consume ninguno.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true   "Orden (UUID)"
// @Param        body  body  dto.IssueOrderRequest  false  "allow_expired, notes"
// @Success      201  {object}  dto.IssueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse "INSUFFICIENT_STOCK o CONFLICT (sin pendientes)"
// @Failure      503  {object}  dto.ErrorResponse "LOCK_TIMEOUT, reintentar"
// @Router       /api/production/orders/{id}/issue [post]
func (h *ProductionHandler) IssueMaterials(c *fiber.Ctx) error {
	var in dto.IssueOrderRequest
	// Body opcional: sin cuerpo emite con los valores por defecto.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return respondInvalidBody(c)
		}
	}
	res, err := h.issuing.IssueMaterials(c.Context(), c.Params("id"), GetUserID(c), in.AllowExpired, in.Notes)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := dto.IssueResponse{
		ID:                   res.Issue.ID,
		IssueNo:              res.Issue.IssueNo,
		ManufacturingOrderID: res.Issue.ManufacturingOrderID,
		WarehouseID:          res.Issue.WarehouseID,
		Status:               res.Issue.Status,
		GroupID:              res.Issue.GroupID,
		Lines:                make([]dto.IssueLineDTO, 0, len(res.Lines)),
		CreatedBy:            res.Issue.CreatedBy,
		CreatedAt:            res.Issue.CreatedAt,
	}
	for _, ln := range res.Lines {
		out.Lines = append(out.Lines, dto.IssueLineDTO{
			ProductID:     ln.Detail.ProductID,
			BatchNo:       ln.Detail.BatchNo,
			Quantity:      ln.Detail.Quantity,
			UOM:           ln.Detail.UOM,
			ExpiredDate:   ln.Lot.ExpiredDate,
			LedgerEntryID: ln.Detail.LedgerEntryID,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CompleteOrder godoc
// @Summary      Completar una orden de producción
// @Description  Registra la entrada del producto terminado a la bodega
//               destino. KITTING hereda el vencimiento mínimo de los insumos
//               consumidos; PROCESS lo calcula por vida útil del producto.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Orden (UUID)"
// @Param        body  body  dto.CompleteOrderRequest  true  "produced_qty, batch_no, notes"
// @Success      201  {object}  dto.CompleteOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse "CONFLICT: la orden no está IN_PROGRESS"
// @Router       /api/production/orders/{id}/complete [post]
func (h *ProductionHandler) CompleteOrder(c *fiber.Ctx) error {
	var in dto.CompleteOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	receipt, err := h.closing.CompleteOrder(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CompleteOrderResponse{
		ReceiptID:     receipt.ID,
		ReceiptNo:     receipt.ReceiptNo,
		OrderID:       receipt.ManufacturingOrderID,
		ProductID:     receipt.ProductID,
		Quantity:      receipt.Quantity,
		BatchNo:       receipt.BatchNo,
		ExpiredDate:   receipt.ExpiredDate,
		WarehouseID:   receipt.WarehouseID,
		LedgerEntryID: receipt.LedgerEntryID,
	})
}

// CancelOrder godoc
// @Summary      Cancelar una orden planificada
// @Description  Solo se permite en estado PLANNED: una orden con materiales
//               emitidos no puede cancelarse.
// @Tags         production
// @Security     Bearer
// @Param        id  path  string  true  "Orden (UUID)"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse "CONFLICT: la orden no está PLANNED"
// @Router       /api/production/orders/{id} [delete]
func (h *ProductionHandler) CancelOrder(c *fiber.Ctx) error {
	if err := h.orders.CancelOrder(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListReceipts godoc
// @Summary      Entradas de producto terminado de una orden
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Orden (UUID)"
// @Success      200  {array}   dto.CompleteOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/orders/{id}/receipts [get]
func (h *ProductionHandler) ListReceipts(c *fiber.Ctx) error {
	receipts, err := h.closing.Receipts(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.CompleteOrderResponse, 0, len(receipts))
	for _, r := range receipts {
		out = append(out, dto.CompleteOrderResponse{
			ReceiptID:     r.ID,
			ReceiptNo:     r.ReceiptNo,
			OrderID:       r.ManufacturingOrderID,
			ProductID:     r.ProductID,
			Quantity:      r.Quantity,
			BatchNo:       r.BatchNo,
			ExpiredDate:   r.ExpiredDate,
			WarehouseID:   r.WarehouseID,
			LedgerEntryID: r.LedgerEntryID,
		})
	}
	return c.JSON(out)
}

// orderResponseFrom arma el DTO de orden; materials puede ser nil en listados.
func orderResponseFrom(order *entity.ManufacturingOrder, materials []*entity.OrderMaterial) dto.OrderResponse {
	out := dto.OrderResponse{
		ID:                order.ID,
		OrderNo:           order.OrderNo,
		ProductID:         order.ProductID,
		BOMID:             order.BOMID,
		QuantityPlanned:   order.QuantityPlanned,
		ProducedQty:       order.ProducedQty,
		UOM:               order.UOM,
		WarehouseID:       order.WarehouseID,
		TargetWarehouseID: order.TargetWarehouseID,
		Status:            order.Status,
		ScheduledDate:     order.ScheduledDate,
		CompletionDate:    order.CompletionDate,
		Notes:             order.Notes,
		CreatedBy:         order.CreatedBy,
		CreatedAt:         order.CreatedAt,
	}
	for _, m := range materials {
		out.Materials = append(out.Materials, dto.OrderMaterialDTO{
			ID:          m.ID,
			ProductID:   m.ProductID,
			RequiredQty: m.RequiredQty,
			IssuedQty:   m.IssuedQty,
			UOM:         m.UOM,
			Status:      m.Status,
		})
	}
	return out
}
