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

	"github.com/tu-usuario/materiales-pro/internal/application/auth"
	appsales "github.com/tu-usuario/materiales-pro/internal/application/sales"
	"github.com/tu-usuario/materiales-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/materiales-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/materiales-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/materiales-pro/internal/interfaces/http"
	"github.com/tu-usuario/materiales-pro/pkg/config"
	"github.com/tu-usuario/materiales-pro/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	financeRepo := postgres.NewFinanceRecordRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	orderRepo := postgres.NewSalesOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, branchRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(clientRepo, projectRepo)
	productUC := usecase.NewProductUseCase(productRepo, supplierRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo)
	userUC := usecase.NewUserUseCase(userRepo, branchRepo)
	financeUC := usecase.NewFinanceUseCase(financeRepo, branchRepo)

	quotationUC := appsales.NewQuotationUseCase(clientRepo, productRepo, quotationRepo, txRunner)
	orderUC := appsales.NewOrderUseCase(quotationRepo, orderRepo, txRunner)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	pdfUC := appsales.NewPDFUseCase(quotationRepo, pdfGenerator)

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
		Title:    "Materiales Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClientUC:    clientUC,
		ProductUC:   productUC,
		SupplierUC:  supplierUC,
		BranchUC:    branchUC,
		UserUC:      userUC,
		FinanceUC:   financeUC,
		QuotationUC: quotationUC,
		OrderUC:     orderUC,
		PDFUC:       pdfUC,
		JWTSecret:   cfg.JWT.Secret,
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
