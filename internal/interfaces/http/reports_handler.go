package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/reports"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// ReportsHandler maneja las consultas de solo lectura sobre el libro de
// inventario: saldos, vencimientos, trazabilidad, impacto de producción y
// auditoría de asientos (protegido).
type ReportsHandler struct {
	uc *reports.UseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *reports.UseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// StockBalance godoc
// @Summary      Saldo de un producto por bodega
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  true   "Producto (UUID)"
// @Param        warehouse_id  query  string  false  "Bodega (UUID). Vacío = todas."
// @Success      200  {object}  dto.StockBalanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [get]
func (h *ReportsHandler) StockBalance(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	warehouseID := c.Query("warehouse_id")
	rows, total, err := h.uc.StockBalance(c.Context(), productID, warehouseID)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := dto.StockBalanceResponse{
		ProductID: productID,
		Total:     total,
		ByWH:      make([]dto.WarehouseStockDTO, 0, len(rows)),
	}
	for _, r := range rows {
		out.ByWH = append(out.ByWH, warehouseStockDTO(r))
	}
	return c.JSON(out)
}

// ExpiringStock godoc
// @Summary      Batches que vencen dentro del horizonte
// @Description  Lista los batches con saldo que vencen dentro de los próximos
//               días indicados, incluyendo lo ya vencido. Orden FEFO.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Bodega (UUID). Vacío = todas."
// @Param        days          query  int     false  "Horizonte en días (defecto: umbral de alerta)"
// @Success      200  {object}  dto.ExpiringStockResponse
// @Router       /api/inventory/expiring [get]
func (h *ReportsHandler) ExpiringStock(c *fiber.Ctx) error {
	warehouseID := c.Query("warehouse_id")
	days := c.QueryInt("days", 0)
	rows, until, err := h.uc.ExpiringStock(c.Context(), warehouseID, days)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := dto.ExpiringStockResponse{
		Until:   until,
		Batches: make([]dto.ExpiringBatchDTO, 0, len(rows)),
	}
	for _, r := range rows {
		out.Batches = append(out.Batches, dto.ExpiringBatchDTO{
			ProductID:    r.ProductID,
			SKU:          r.SKU,
			ProductName:  r.ProductName,
			WarehouseID:  r.WarehouseID,
			BatchNo:      r.BatchNo,
			ExpiredDate:  r.ExpiredDate,
			Remain:       r.Remain,
			ExpiryStatus: r.ExpiryStatus,
			DaysToExpiry: r.DaysToExpiry,
		})
	}
	return c.JSON(out)
}

// TraceBatch godoc
// @Summary      Trazabilidad de un batch
// @Description  Genealogía completa: asientos de entrada que crearon el batch,
//               bodegas donde queda saldo y consumos con su documento.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        batchNo     path   string  true  "Número de batch"
// @Param        product_id  query  string  true  "Producto (UUID)"
// @Success      200  {object}  dto.BatchTraceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/batches/{batchNo}/trace [get]
func (h *ReportsHandler) TraceBatch(c *fiber.Ctx) error {
	batchNo := c.Params("batchNo")
	productID := c.Query("product_id")
	trace, err := h.uc.TraceBatch(c.Context(), productID, batchNo)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := dto.BatchTraceResponse{
		ProductID:    productID,
		BatchNo:      batchNo,
		Origins:      make([]dto.BatchOriginDTO, 0, len(trace.Origins)),
		Locations:    make([]dto.WarehouseStockDTO, 0, len(trace.Locations)),
		Consumptions: make([]dto.BatchConsumptionDTO, 0, len(trace.Consumptions)),
	}
	for _, o := range trace.Origins {
		out.Origins = append(out.Origins, dto.BatchOriginDTO{
			LedgerEntryID: o.LedgerEntryID,
			Type:          o.Type,
			WarehouseID:   o.WarehouseID,
			Quantity:      o.Quantity,
			ExpiredDate:   o.ExpiredDate,
			CreatedBy:     o.CreatedBy,
			CreatedAt:     o.CreatedAt,
		})
	}
	for _, l := range trace.Locations {
		out.Locations = append(out.Locations, warehouseStockDTO(l))
	}
	for _, con := range trace.Consumptions {
		out.Consumptions = append(out.Consumptions, dto.BatchConsumptionDTO{
			LedgerEntryID:        con.LedgerEntryID,
			IssueNo:              con.IssueNo,
			ManufacturingOrderID: con.ManufacturingOrderID,
			WarehouseID:          con.WarehouseID,
			Quantity:             con.Quantity,
			CreatedBy:            con.CreatedBy,
			CreatedAt:            con.CreatedAt,
		})
	}
	return c.JSON(out)
}

// ListLedger godoc
// @Summary      Auditoría del libro de inventario
// @Description  Asientos más recientes primero, con filtros opcionales por
//               producto, bodega, tipo y grupo de trazabilidad.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "Producto (UUID)"
// @Param        warehouse_id  query  string  false  "Bodega (UUID)"
// @Param        type          query  string  false  "stockInReceipt | stockInProduction | stockOutProduction"
// @Param        group_id      query  string  false  "Grupo de trazabilidad"
// @Param        limit         query  int     false  "Máximo de filas (defecto 50, tope 200)"
// @Param        offset        query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.LedgerListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/ledger [get]
func (h *ReportsHandler) ListLedger(c *fiber.Ctx) error {
	filter := repository.LedgerFilter{
		ProductID:   c.Query("product_id"),
		WarehouseID: c.Query("warehouse_id"),
		Type:        c.Query("type"),
		GroupID:     c.Query("group_id"),
		Limit:       c.QueryInt("limit", 0),
		Offset:      c.QueryInt("offset", 0),
	}
	entries, err := h.uc.ListLedger(c.Context(), filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := dto.LedgerListResponse{
		Items: make([]dto.LedgerEntryDTO, 0, len(entries)),
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}
	// El caso de uso normaliza el límite; reflejar el efectivo.
	if out.Page.Limit <= 0 {
		out.Page.Limit = 50
	}
	for _, e := range entries {
		out.Items = append(out.Items, dto.LedgerEntryDTO{
			ID:             e.ID,
			Type:           e.Type,
			ProductID:      e.ProductID,
			WarehouseID:    e.WarehouseID,
			Quantity:       e.Quantity,
			Remain:         e.Remain,
			BatchNo:        e.BatchNo,
			ExpiredDate:    e.ExpiredDate,
			SourceDetailID: e.SourceDetailID,
			GroupID:        e.GroupID,
			CreatedBy:      e.CreatedBy,
			CreatedAt:      e.CreatedAt,
		})
	}
	return c.JSON(out)
}

// ProductionImpact godoc
// @Summary      Impacto de producción por producto en un rango
// @Description  Agrega producido, consumido y neto por producto sobre los
//               asientos de producción del rango [from, to).
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "Inicio (YYYY-MM-DD)"
// @Param        to    query  string  true  "Fin exclusivo (YYYY-MM-DD)"
// @Success      200  {object}  dto.ProductionImpactResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/production/impact [get]
func (h *ReportsHandler) ProductionImpact(c *fiber.Ctx) error {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return respondDomainError(c, domain.ErrInvalidInput)
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return respondDomainError(c, domain.ErrInvalidInput)
	}
	rows, err := h.uc.ProductionImpact(c.Context(), from, to)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := dto.ProductionImpactResponse{
		From:  from,
		To:    to,
		Items: make([]dto.ProductionImpactDTO, 0, len(rows)),
	}
	for _, r := range rows {
		out.Items = append(out.Items, dto.ProductionImpactDTO{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Produced:    r.Produced,
			Consumed:    r.Consumed,
			NetChange:   r.NetChange,
		})
	}
	return c.JSON(out)
}

func warehouseStockDTO(r repository.WarehouseStock) dto.WarehouseStockDTO {
	return dto.WarehouseStockDTO{
		WarehouseID:   r.WarehouseID,
		WarehouseCode: r.WarehouseCode,
		Total:         r.Total,
	}
}
