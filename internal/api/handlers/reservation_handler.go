package handlers

import (
	"errors"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/internal/api/presenters"
	"Food2Plate-Backend/pkg/reservation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReservationHandler interface {
		ReserveFood(c *fiber.Ctx) error
		GetMyReservations(c *fiber.Ctx) error
		CompleteReservation(c *fiber.Ctx) error
	}

	reservationHandler struct {
		reservationService reservation.ReservationService
		validator          *validator.Validate
	}
)

func NewReservationHandler(reservationService reservation.ReservationService, validator *validator.Validate) ReservationHandler {
	return &reservationHandler{
		reservationService: reservationService,
		validator:          validator,
	}
}

func (h *reservationHandler) ReserveFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ReserveFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReserveFood, err)
	}

	res, err := h.reservationService.ReserveFood(c.Context(), userID, *req)
	if err != nil {
		message := domain.MessageFailedReserveFood
		if errors.Is(err, domain.ErrAlreadyReserved) {
			message = domain.MessageAlreadyReserved
		} else if errors.Is(err, domain.ErrFoodNotAvailable) {
			message = domain.MessageFoodNoLongerAvailable
		}
		return presenters.ErrorResponse(c, statusFor(err), message, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessReserveFood)
}

func (h *reservationHandler) GetMyReservations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.reservationService.GetMyReservations(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetReservations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReservations)
}

func (h *reservationHandler) CompleteReservation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	reservationID := c.Params("id")

	res, err := h.reservationService.CompleteReservation(c.Context(), userID, reservationID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCompleteReservation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCompleteReservation)
}
