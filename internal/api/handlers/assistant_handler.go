package handlers

import (
	"errors"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/internal/api/presenters"
	"Food2Plate-Backend/pkg/assistant"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AssistantHandler interface {
		Chat(c *fiber.Ctx) error
	}

	assistantHandler struct {
		assistantService assistant.AssistantService
		validator        *validator.Validate
	}
)

func NewAssistantHandler(assistantService assistant.AssistantService, validator *validator.Validate) AssistantHandler {
	return &assistantHandler{
		assistantService: assistantService,
		validator:        validator,
	}
}

func (h *assistantHandler) Chat(c *fiber.Ctx) error {
	req := new(domain.ChatRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMessageMissing, err)
	}

	res, err := h.assistantService.Chat(c.Context(), *req)
	if err != nil {
		message := domain.MessageFailedChatReply
		if errors.Is(err, domain.ErrChatMessageRequired) {
			message = domain.MessageFailedMessageMissing
		}
		return presenters.ErrorResponse(c, statusFor(err), message, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessChatReply)
}
