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
	"github.com/jhoicas/Quickcart-api/internal/application/auth"
	"github.com/jhoicas/Quickcart-api/internal/application/authctx"
	"github.com/jhoicas/Quickcart-api/internal/application/billing"
	"github.com/jhoicas/Quickcart-api/internal/application/cart"
	"github.com/jhoicas/Quickcart-api/internal/application/usecase"
	"github.com/jhoicas/Quickcart-api/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/Quickcart-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Quickcart-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Quickcart-api/internal/interfaces/http"
	"github.com/jhoicas/Quickcart-api/pkg/config"
	"github.com/jhoicas/Quickcart-api/pkg/logger"
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

	store, err := localstore.New(cfg.Store.DataDir, log.Component("localstore"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	adminRepo := store.Admins()
	guardRepo := store.Guards()
	sessionStore := store.Sessions()

	if cfg.Demo.SeedGuard {
		if err := guardRepo.SeedDemoGuard(); err != nil {
			log.Warn().Err(err).Msg("sembrar guardia de demostración")
		}
	}

	productRepo := postgres.NewProductRepository(pool)
	billRepo := postgres.NewBillRepository(pool)

	jwtCfg := auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}
	adminUC := auth.NewAdminUseCase(adminRepo, sessionStore, jwtCfg)
	guardUC := auth.NewGuardUseCase(guardRepo, sessionStore, jwtCfg)
	sessionUC := auth.NewSessionUseCase(sessionStore, adminRepo, guardRepo, jwtCfg)

	// Contexto de sesión reactivo: respalda la decisión de navegación de las
	// páginas y se resincroniza con cada cambio de auth del almacén.
	sessionCtx := authctx.NewCustomerContext(sessionStore, adminUC, guardUC)
	defer sessionCtx.Close()

	productUC := usecase.NewProductUseCase(productRepo)
	dashboardUC := usecase.NewDashboardUseCase(billRepo)
	mallUC := usecase.NewMallUseCase()

	carts := cart.NewService()
	checkoutUC := billing.NewCheckoutUseCase(carts, billRepo, cfg.App.MallName)
	verifyUC := billing.NewVerifyUseCase(billRepo)

	// PDF: factura con código QR para la verificación en puerta
	pdfGenerator := infrapdf.NewMarotoBillGenerator()
	pdfUC := billing.NewPDFUseCase(billRepo, pdfGenerator)

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
		Title:    "Quickcart API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AdminUC:     adminUC,
		GuardUC:     guardUC,
		SessionUC:   sessionUC,
		SessionCtx:  sessionCtx,
		ProductUC:   productUC,
		DashboardUC: dashboardUC,
		MallUC:      mallUC,
		Carts:       carts,
		CheckoutUC:  checkoutUC,
		VerifyUC:    verifyUC,
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
