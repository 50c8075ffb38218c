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
	"github.com/jhoicas/Gemas-api/internal/application/billing"
	"github.com/jhoicas/Gemas-api/internal/application/catalog"
	"github.com/jhoicas/Gemas-api/internal/application/reporting"
	"github.com/jhoicas/Gemas-api/internal/domain/repository"
	infraexcel "github.com/jhoicas/Gemas-api/internal/infrastructure/excel"
	"github.com/jhoicas/Gemas-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Gemas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Gemas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Gemas-api/internal/infrastructure/source"
	httpRouter "github.com/jhoicas/Gemas-api/internal/interfaces/http"
	"github.com/jhoicas/Gemas-api/pkg/config"
	"github.com/jhoicas/Gemas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// La caché en memoria cumple doble rol: espejo de escritura para
	// respuestas sin latencia de red y fuente de último recurso cuando
	// Supabase no responde.
	memStore := memory.NewStore()

	// Repositorio principal y sources de lectura. Sin base de datos
	// configurada la app corre en modo memoria (útil en desarrollo).
	var (
		invoiceRepo repository.InvoiceRepository = memStore
		listRepo    repository.ListRepository    = memStore
		mirror      repository.InvoiceRepository
		txRunner    billing.InvoiceTxRunner
		sources     []source.InvoiceSource
	)

	if cfg.Source.RESTBaseURL != "" {
		sources = append(sources, source.NewRESTSource(
			cfg.Source.RESTBaseURL,
			cfg.Source.RESTAPIKey,
			cfg.Source.Timeout(),
		))
	}

	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		invoiceRepo = postgres.NewInvoiceRepository(pool)
		listRepo = postgres.NewListRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
		mirror = memStore
		sources = append(sources, source.NewRepositorySource("postgres", invoiceRepo))
	} else {
		log.Warn().Msg("sin DATABASE_URL: modo memoria, los datos no persisten")
	}

	sources = append(sources, memStore)
	orchestrator := source.NewOrchestrator(log, sources...)

	createInvoiceUC := billing.NewCreateInvoiceUseCase(txRunner, invoiceRepo, mirror)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, pdfGenerator)

	ledgerExporter := infraexcel.NewLedgerExporter()
	reportsUC := reporting.NewUseCase(orchestrator, ledgerExporter)

	listsUC := catalog.NewListUseCase(listRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gemas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateInvoice: createInvoiceUC,
		InvoicePDF:    invoicePDFUC,
		Reports:       reportsUC,
		Lists:         listsUC,
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
