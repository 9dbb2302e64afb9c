package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andikasp/atk-intel/internal/application/alerting"
	"github.com/andikasp/atk-intel/internal/application/dto"
	appinv "github.com/andikasp/atk-intel/internal/application/inventory"
	"github.com/andikasp/atk-intel/pkg/logger"
)

// ForecastHandler runs the restock-prediction batch and fans out the digest.
type ForecastHandler struct {
	forecastUC *appinv.ForecastUseCase
	dispatcher *alerting.Dispatcher
	log        *logger.Logger
}

// NewForecastHandler builds the handler.
func NewForecastHandler(forecastUC *appinv.ForecastUseCase, dispatcher *alerting.Dispatcher, log *logger.Logger) *ForecastHandler {
	return &ForecastHandler{forecastUC: forecastUC, dispatcher: dispatcher, log: log}
}

// forecastRunResponse is the run payload plus the alert fan-out report.
type forecastRunResponse struct {
	dto.ForecastRunResult
	Alerts dto.DispatchReportDTO `json:"alerts"`
}

// Run godoc
// @Summary      Run the restock-prediction batch
// @Description  Computes and persists one forecast per item, then sends the
//
//	urgent-item digest to all configured recipients. Per-recipient
//	delivery failures are reported in the body, not as an error
//	status; a data-read or persistence failure is a 500.
//
// @Tags         forecasts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  forecastRunResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/forecasts/run [post]
func (h *ForecastHandler) Run(c *fiber.Ctx) error {
	result, err := h.forecastUC.Run(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	report, err := h.dispatcher.DispatchToAll(c.Context(), result.Urgent)
	if err != nil {
		// The forecasts are already persisted; a recipient-list failure
		// degrades the run to "no alerts sent" instead of failing it.
		h.log.Error().Err(err).Msg("alert dispatch skipped")
	}

	return c.JSON(forecastRunResponse{ForecastRunResult: *result, Alerts: report})
}
