package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andikasp/atk-intel/internal/application/alerting"
	appinv "github.com/andikasp/atk-intel/internal/application/inventory"
	"github.com/andikasp/atk-intel/internal/application/request"
	"github.com/andikasp/atk-intel/pkg/logger"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CommandUC  *request.UseCase
	ForecastUC *appinv.ForecastUseCase
	HealthUC   *appinv.HealthUseCase
	Dispatcher *alerting.Dispatcher
	Gateway    alerting.MessageGateway
	APIKey     string
	Log        *logger.Logger
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Webhook (public: called by the messaging channel).
	commandHandler := NewCommandHandler(deps.CommandUC)
	api.Post("/webhook/commands", commandHandler.Receive)

	// Batch and internal endpoints (shared-secret Bearer key).
	protected := api.Group("/", APIKeyMiddleware(deps.APIKey))

	forecastHandler := NewForecastHandler(deps.ForecastUC, deps.Dispatcher, deps.Log)
	protected.Post("/forecasts/run", forecastHandler.Run)

	healthHandler := NewHealthSummaryHandler(deps.HealthUC)
	protected.Get("/inventory/health-summary", healthHandler.GetSummary)

	messageHandler := NewMessageHandler(deps.Gateway)
	protected.Post("/messages/send", messageHandler.Send)
}
