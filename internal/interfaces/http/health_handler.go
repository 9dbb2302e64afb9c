package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andikasp/atk-intel/internal/application/dto"
	appinv "github.com/andikasp/atk-intel/internal/application/inventory"
)

// HealthSummaryHandler serves the aggregated stock-health report.
type HealthSummaryHandler struct {
	uc *appinv.HealthUseCase
}

// NewHealthSummaryHandler builds the handler.
func NewHealthSummaryHandler(uc *appinv.HealthUseCase) *HealthSummaryHandler {
	return &HealthSummaryHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Stock-health summary
// @Description  Aggregates per-item movement classifications into counts,
//
//	value totals and threshold alerts. Recomputed on every call.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.HealthSummaryDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/health-summary [get]
func (h *HealthSummaryHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}
