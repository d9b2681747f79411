package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/allocation"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
)

// InventoryHandler maneja las peticiones HTTP de inventario: vista previa de
// stock por lotes, simulación de planes FEFO, emisiones sueltas, recepciones
// y el vale de salida en PDF (protegido).
type InventoryHandler struct {
	preview *allocation.PreviewUseCase
	issue   *allocation.IssueUseCase
	receive *allocation.ReceiveUseCase
	slip    *allocation.SlipUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	preview *allocation.PreviewUseCase,
	issue *allocation.IssueUseCase,
	receive *allocation.ReceiveUseCase,
	slip *allocation.SlipUseCase,
) *InventoryHandler {
	return &InventoryHandler{preview: preview, issue: issue, receive: receive, slip: slip}
}

// Preview godoc
// @Summary      Stock por lotes de un producto en una bodega
// @Description  Agrupa el stock vivo por (batch, vencimiento) en orden FEFO y
//               clasifica cada grupo: fresco, por vencer, crítico o vencido.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  true  "Producto (UUID)"
// @Param        warehouse_id  query  string  true  "Bodega (UUID)"
// @Success      200  {object}  dto.PreviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/preview [get]
func (h *InventoryHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewRequest
	if err := c.QueryParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	batches, err := h.preview.Preview(c.Context(), in.ProductID, in.WarehouseID)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := dto.PreviewResponse{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Total:       decimal.Zero,
		Batches:     make([]dto.BatchStockDTO, 0, len(batches)),
	}
	for _, b := range batches {
		out.Total = out.Total.Add(b.Available)
		out.Batches = append(out.Batches, dto.BatchStockDTO{
			BatchNo:      b.BatchNo,
			AvailableQty: b.Available,
			ExpiredDate:  b.ExpiredDate,
			ExpiryStatus: b.ExpiryStatus,
			DaysToExpiry: b.DaysToExpiry,
		})
	}
	return c.JSON(out)
}

// PreviewIssue godoc
// @Summary      Simular un plan de consumo FEFO
// @Description  Calcula qué lotes se consumirían para la cantidad pedida, sin
//               bloquear ni escribir. El plan no es autoritativo: el stock
//               puede cambiar antes de la emisión real.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id     query  string  true   "Producto (UUID)"
// @Param        warehouse_id   query  string  true   "Bodega (UUID)"
// @Param        quantity       query  number  true   "Cantidad solicitada"
// @Param        allow_expired  query  bool    false  "Incluir lotes vencidos"
// @Success      200  {object}  dto.PreviewIssueResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/preview-issue [get]
func (h *InventoryHandler) PreviewIssue(c *fiber.Ctx) error {
	var in dto.PreviewIssueRequest
	if err := c.QueryParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	plan, err := h.preview.PreviewIssue(c.Context(), in.ProductID, in.WarehouseID, in.Quantity, in.AllowExpired)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := dto.PreviewIssueResponse{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Requested:   in.Quantity,
		Lines:       make([]dto.PlanLineDTO, 0, len(plan.Lines)),
		Unsatisfied: plan.Unsatisfied,
		Satisfiable: plan.Satisfied(),
	}
	for _, ln := range plan.Lines {
		out.Lines = append(out.Lines, dto.PlanLineDTO{
			BatchNo:      ln.Lot.BatchNo,
			TakeQty:      ln.Take,
			ExpiredDate:  ln.Lot.ExpiredDate,
			ExpiryStatus: h.preview.ExpiryStatusOf(ln.Lot.ExpiredDate),
		})
	}
	return c.JSON(out)
}

// Issue godoc
// @Summary      Emitir materiales (emisión suelta)
// @Description  Consume stock en orden FEFO dentro de una transacción con
//               bloqueo de lotes. Todo-o-nada: si el stock elegible no
//               alcanza no queda escrito ningún asiento.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueMaterialRequest  true  "product_id, warehouse_id, quantity, allow_expired, notes"
// @Success      201  {object}  dto.IssueResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse "INSUFFICIENT_STOCK con detalle del faltante"
// @Failure      503  {object}  dto.ErrorResponse "LOCK_TIMEOUT, reintentar"
// @Router       /api/inventory/issues [post]
func (h *InventoryHandler) Issue(c *fiber.Ctx) error {
	var in dto.IssueMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	res, err := h.issue.IssueFromRequest(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(issueResponseFrom(res))
}

// GetIssue godoc
// @Summary      Consultar una emisión con sus líneas
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Emisión (UUID)"
// @Success      200  {object}  dto.IssueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/issues/{id} [get]
func (h *InventoryHandler) GetIssue(c *fiber.Ctx) error {
	id := c.Params("id")
	res, err := h.issue.GetIssue(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(issueResponseFrom(res))
}

// DownloadSlip godoc
// @Summary      Vale de salida en PDF
// @Description  Genera el vale imprimible de la emisión: encabezado, líneas
//               consumidas por lote y código QR de trazabilidad. Solo se
//               imprimen emisiones CONFIRMED.
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "Emisión (UUID)"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "CONFLICT: la emisión no está CONFIRMED"
// @Router       /api/inventory/issues/{id}/pdf [get]
func (h *InventoryHandler) DownloadSlip(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, filename, err := h.slip.DownloadIssueSlipPDF(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

// Receive godoc
// @Summary      Recibir stock (crea un lote)
// @Description  Apunta un asiento de entrada con batch y vencimiento. Cada
//               recepción crea un lote independiente, aun con el mismo batch.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveStockRequest  true  "product_id, warehouse_id, quantity, batch_no, expired_date (YYYY-MM-DD, vacío = sin vencimiento)"
// @Success      201  {object}  dto.ReceiveStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/receipts [post]
func (h *InventoryHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	entry, err := h.receive.Receive(c.Context(), allocation.ReceiveInputDTO{
		UserID:      GetUserID(c),
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		BatchNo:     in.BatchNo,
		ExpiredDate: in.ExpiredDate,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReceiveStockResponse{
		LedgerEntryID: entry.ID,
		ProductID:     entry.ProductID,
		WarehouseID:   entry.WarehouseID,
		BatchNo:       entry.BatchNo,
		Quantity:      entry.Quantity,
		ExpiredDate:   entry.ExpiredDate,
	})
}

// issueResponseFrom arma el DTO de respuesta a partir del documento
// persistido y sus líneas.
func issueResponseFrom(res *allocation.IssueResult) dto.IssueResponse {
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
	return out
}
