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

	"github.com/andikasp/atk-intel/internal/application/alerting"
	appinv "github.com/andikasp/atk-intel/internal/application/inventory"
	"github.com/andikasp/atk-intel/internal/application/request"
	"github.com/andikasp/atk-intel/internal/infrastructure/postgres"
	"github.com/andikasp/atk-intel/internal/infrastructure/whatsapp"
	httpRouter "github.com/andikasp/atk-intel/internal/interfaces/http"
	"github.com/andikasp/atk-intel/pkg/config"
	"github.com/andikasp/atk-intel/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	usageRepo := postgres.NewUsageRepository(pool)
	forecastRepo := postgres.NewForecastRepository(pool)
	recipientRepo := postgres.NewRecipientRepository(pool)
	healthRepo := postgres.NewHealthRepository(pool)
	requestRepo := postgres.NewSupplyRequestRepository(pool)

	gateway := whatsapp.NewClient(cfg.WhatsApp)

	commandUC := request.NewUseCase(itemRepo, requestRepo)
	forecastUC := appinv.NewForecastUseCase(itemRepo, usageRepo, forecastRepo, cfg.Forecast.LeadTimeDays)
	healthUC := appinv.NewHealthUseCase(healthRepo)
	dispatcher := alerting.NewDispatcher(gateway, recipientRepo, forecastUC.LeadTimeDays(), log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ATK Intel API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CommandUC:  commandUC,
		ForecastUC: forecastUC,
		HealthUC:   healthUC,
		Dispatcher: dispatcher,
		Gateway:    gateway,
		APIKey:     cfg.Alert.APIKey,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
