package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/andikasp/atk-intel/internal/application/alerting"
	"github.com/andikasp/atk-intel/internal/application/dto"
	"github.com/andikasp/atk-intel/internal/domain"
)

// MessageHandler forwards ad hoc messages to the WhatsApp gateway. Gated by
// the shared-secret bearer key in the router.
type MessageHandler struct {
	gateway alerting.MessageGateway
}

// NewMessageHandler builds the handler.
func NewMessageHandler(gateway alerting.MessageGateway) *MessageHandler {
	return &MessageHandler{gateway: gateway}
}

// Send godoc
// @Summary      Send a WhatsApp message
// @Description  Normalizes the phone number and forwards the message to the
//
//	gateway.
//
// @Tags         messages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SendMessageRequest  true  "phone, message"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/messages/send [post]
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	var in dto.SendMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Phone == "" || in.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "phone and message are required"})
	}

	if err := h.gateway.SendMessage(c.Context(), in.Phone, in.Message); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "GATEWAY", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"sent": true})
}
