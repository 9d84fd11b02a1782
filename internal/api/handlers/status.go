package handlers

import (
	"errors"

	"Food2Plate-Backend/domain"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps service errors to HTTP statuses. Anything unmapped is
// a plain bad request, internal failures stay 500.
func statusFor(err error) int {
	var notFood *domain.ErrNotFood
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrFoodPostNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrRewardNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrEmailAlreadyRegistered),
		errors.Is(err, domain.ErrAlreadyReserved),
		errors.Is(err, domain.ErrFoodNotAvailable),
		errors.Is(err, domain.ErrAlreadyRated),
		errors.Is(err, domain.ErrRoleAlreadySet),
		errors.Is(err, domain.ErrReservationAlreadyCompleted):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotAllowed),
		errors.Is(err, domain.ErrUnauthorizedFoodPostAccess),
		errors.Is(err, domain.ErrUnauthorizedReservationAccess),
		errors.Is(err, domain.ErrRatingNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrAIRateLimited):
		return fiber.StatusTooManyRequests
	case errors.Is(err, domain.ErrAICreditsExhausted):
		return fiber.StatusPaymentRequired
	case errors.As(err, &notFood):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrChatAPIKeyMissing),
		errors.Is(err, domain.ErrChatUpstreamFailed),
		errors.Is(err, domain.ErrAIUpstreamFailed):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}
