package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Produccion-api/docs"
	appalloc "github.com/jhoicas/Produccion-api/internal/application/allocation"
	appprod "github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/application/reports"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
	domalloc "github.com/jhoicas/Produccion-api/internal/domain/allocation"
	infrapdf "github.com/jhoicas/Produccion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Produccion-api/internal/interfaces/http"
	"github.com/jhoicas/Produccion-api/pkg/config"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

// @title           Produccion API
// @version         1.0
// @description     API de inventario por lotes y órdenes de producción con asignación FEFO.
// @BasePath        /
//
// @securityDefinitions.apikey Bearer
// @in   header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	log.Info().Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sueltos (fuera de transacción). Los casos de uso que
	// escriben el libro reciben sus repos atados a la transacción vía TxRunner.
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	bomRepo := postgres.NewBOMRepository(pool)
	issueRepo := postgres.NewMaterialIssueRepository(pool)
	orderRepo := postgres.NewManufacturingOrderRepository(pool)
	receiptRepo := postgres.NewProductionReceiptRepository(pool)
	reportRepo := postgres.NewStockReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool, cfg.Inventory.LockTimeout)

	thresholds := domalloc.Thresholds{
		CriticalDays: cfg.Inventory.CriticalDays,
		WarningDays:  cfg.Inventory.WarningDays,
	}

	// Catálogo
	productUC := usecase.NewProductUseCase(productRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	bomUC := usecase.NewBOMUseCase(bomRepo, productRepo)

	// Inventario: asignación FEFO, recepciones, vista previa y vale PDF
	issueUC := appalloc.NewIssueUseCase(txRunner, issueRepo, productRepo, warehouseRepo)
	receiveUC := appalloc.NewReceiveUseCase(postgres.NewLedgerRepository(pool), productRepo, warehouseRepo)
	previewUC := appalloc.NewPreviewUseCase(reportRepo, thresholds)
	slipGenerator := infrapdf.NewMarotoSlipGenerator()
	slipUC := appalloc.NewSlipUseCase(issueRepo, productRepo, warehouseRepo, orderRepo, slipGenerator)

	// Producción: órdenes contra BOM, emisión y cierre
	orderUC := appprod.NewOrderUseCase(txRunner, orderRepo, bomRepo, productRepo, warehouseRepo, reportRepo)
	issueOrderUC := appprod.NewIssueOrderUseCase(txRunner, orderRepo, productRepo, issueUC)
	completeUC := appprod.NewCompleteOrderUseCase(txRunner, orderRepo, bomRepo, productRepo, issueRepo, receiptRepo)

	// Reportes de solo lectura sobre el libro
	reportsUC := reports.NewUseCase(reportRepo, thresholds)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Produccion API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		WarehouseUC:  warehouseUC,
		BOMUC:        bomUC,
		PreviewUC:    previewUC,
		IssueUC:      issueUC,
		ReceiveUC:    receiveUC,
		SlipUC:       slipUC,
		OrderUC:      orderUC,
		IssueOrderUC: issueOrderUC,
		CompleteUC:   completeUC,
		ReportsUC:    reportsUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
