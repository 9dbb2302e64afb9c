package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andikasp/atk-intel/internal/application/dto"
	"github.com/andikasp/atk-intel/internal/application/request"
)

// CommandHandler receives inbound chat messages from the messaging-channel
// webhook and turns ATK commands into supply requests.
type CommandHandler struct {
	uc *request.UseCase
}

// NewCommandHandler builds the handler.
func NewCommandHandler(uc *request.UseCase) *CommandHandler {
	return &CommandHandler{uc: uc}
}

// Receive godoc
// @Summary      Process an inbound ATK command
// @Description  Parses the free-text command, resolves items against the
//
//	catalog and creates a supply request. Parse failures return
//	200 with a usage-help reply, never an error status.
//
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        body  body      dto.WebhookCommandRequest  true  "sender, message"
// @Success      200   {object}  dto.WebhookCommandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/webhook/commands [post]
func (h *CommandHandler) Receive(c *fiber.Ctx) error {
	var in dto.WebhookCommandRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message is required"})
	}

	resp, err := h.uc.HandleCommand(c.Context(), in.Sender, in.Message)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
