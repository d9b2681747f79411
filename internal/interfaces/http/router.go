package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/allocation"
	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/application/reports"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	BOMUC        *usecase.BOMUseCase
	PreviewUC    *allocation.PreviewUseCase
	IssueUC      *allocation.IssueUseCase
	ReceiveUC    *allocation.ReceiveUseCase
	SlipUC       *allocation.SlipUseCase
	OrderUC      *production.OrderUseCase
	IssueOrderUC *production.IssueOrderUseCase
	CompleteUC   *production.CompleteOrderUseCase
	ReportsUC    *reports.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
//
// Autorización por rol:
//
//	catálogo (escritura)  admin
//	inventario (movs.)    admin, almacenista
//	producción            admin, produccion
//	lecturas              cualquier rol autenticado
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	catalogWrite := RequireRole(RoleAdmin)
	inventoryOps := RequireRole(RoleAdmin, RoleAlmacenista)
	productionOps := RequireRole(RoleAdmin, RoleProduccion)

	// Products (protegido; escritura solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.BOMUC)
	products.Post("/", catalogWrite, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/bom", productHandler.GetActiveBOM)
	products.Put("/:id", catalogWrite, productHandler.Update)

	// Warehouses (protegido; escritura solo admin)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", catalogWrite, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", catalogWrite, warehouseHandler.Update)

	// BOMs (protegido; escritura solo admin)
	boms := protected.Group("/boms")
	bomHandler := NewBOMHandler(deps.BOMUC)
	boms.Post("/", catalogWrite, bomHandler.Create)
	boms.Get("/", bomHandler.List)
	boms.Get("/:id", bomHandler.GetByID)
	boms.Put("/:id/details", catalogWrite, bomHandler.ReplaceDetails)
	boms.Patch("/:id/status", catalogWrite, bomHandler.UpdateStatus)
	boms.Delete("/:id", catalogWrite, bomHandler.Deactivate)

	// Inventory (protegido; movimientos admin/almacenista, lecturas libres)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.PreviewUC, deps.IssueUC, deps.ReceiveUC, deps.SlipUC)
	reportsHandler := NewReportsHandler(deps.ReportsUC)
	invGroup.Get("/preview", inventoryHandler.Preview)
	invGroup.Get("/preview-issue", inventoryHandler.PreviewIssue)
	invGroup.Post("/issues", inventoryOps, inventoryHandler.Issue)
	invGroup.Get("/issues/:id", inventoryHandler.GetIssue)
	invGroup.Get("/issues/:id/pdf", inventoryHandler.DownloadSlip)
	invGroup.Post("/receipts", inventoryOps, inventoryHandler.Receive)
	invGroup.Get("/stock", reportsHandler.StockBalance)
	invGroup.Get("/expiring", reportsHandler.ExpiringStock)
	invGroup.Get("/batches/:batchNo/trace", reportsHandler.TraceBatch)
	invGroup.Get("/ledger", reportsHandler.ListLedger)

	// Production (protegido; operaciones admin/produccion, lecturas libres)
	prodGroup := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.OrderUC, deps.IssueOrderUC, deps.CompleteUC)
	prodGroup.Post("/orders", productionOps, productionHandler.CreateOrder)
	prodGroup.Get("/orders", productionHandler.ListOrders)
	prodGroup.Get("/orders/:id", productionHandler.GetOrder)
	prodGroup.Get("/orders/:id/availability", productionHandler.CheckAvailability)
	prodGroup.Post("/orders/:id/issue", productionOps, productionHandler.IssueMaterials)
	prodGroup.Post("/orders/:id/complete", productionOps, productionHandler.CompleteOrder)
	prodGroup.Delete("/orders/:id", productionOps, productionHandler.CancelOrder)
	prodGroup.Get("/orders/:id/receipts", productionHandler.ListReceipts)
	prodGroup.Get("/impact", reportsHandler.ProductionImpact)
}
