package handlers

import (
	"errors"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/internal/api/presenters"
	"Food2Plate-Backend/pkg/quality"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	QualityHandler interface {
		AnalyzeFood(c *fiber.Ctx) error
	}

	qualityHandler struct {
		qualityService quality.QualityService
		validator      *validator.Validate
	}
)

func NewQualityHandler(qualityService quality.QualityService, validator *validator.Validate) QualityHandler {
	return &qualityHandler{
		qualityService: qualityService,
		validator:      validator,
	}
}

func (h *qualityHandler) AnalyzeFood(c *fiber.Ctx) error {
	req := new(domain.AnalyzeFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeFood, err)
	}

	res, err := h.qualityService.AnalyzeFood(c.Context(), *req)
	if err != nil {
		var notFood *domain.ErrNotFood
		message := domain.MessageFailedAnalyzeFood
		switch {
		case errors.As(err, &notFood):
			message = domain.MessageNotFoodImage
		case errors.Is(err, domain.ErrAIRateLimited):
			message = domain.MessageAIRateLimited
		case errors.Is(err, domain.ErrAICreditsExhausted):
			message = domain.MessageAICreditsExhausted
		}
		return presenters.ErrorResponse(c, statusFor(err), message, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAnalyzeFood)
}
