package handlers

import (
	"errors"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/internal/api/presenters"
	"Food2Plate-Backend/pkg/rating"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RatingHandler interface {
		SubmitRating(c *fiber.Ctx) error
	}

	ratingHandler struct {
		ratingService rating.RatingService
		validator     *validator.Validate
	}
)

func NewRatingHandler(ratingService rating.RatingService, validator *validator.Validate) RatingHandler {
	return &ratingHandler{
		ratingService: ratingService,
		validator:     validator,
	}
}

func (h *ratingHandler) SubmitRating(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SubmitRatingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitRating, err)
	}

	res, err := h.ratingService.SubmitRating(c.Context(), userID, *req)
	if err != nil {
		message := domain.MessageFailedSubmitRating
		if errors.Is(err, domain.ErrAlreadyRated) {
			message = domain.MessageAlreadyRated
		}
		return presenters.ErrorResponse(c, statusFor(err), message, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitRating)
}
