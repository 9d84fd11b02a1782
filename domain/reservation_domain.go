package domain

import (
	"errors"
	"time"
)

const (
	ReservationStatusPending   = "pending"
	ReservationStatusCompleted = "completed"
	ReservationStatusCancelled = "cancelled"
)

var (
	MessageSuccessReserveFood         = "food reserved successfully"
	MessageSuccessGetReservations     = "reservations retrieved successfully"
	MessageSuccessCompleteReservation = "reservation completed successfully"

	MessageFailedReserveFood         = "failed to reserve food"
	MessageFailedGetReservations     = "failed to retrieve reservations"
	MessageFailedCompleteReservation = "failed to complete reservation"
	MessageAlreadyReserved           = "you have already reserved this food"
	MessageFoodNoLongerAvailable     = "this food is no longer available"

	ErrReservationNotFound           = errors.New("reservation not found")
	ErrAlreadyReserved               = errors.New("food already reserved by this receiver")
	ErrFoodNotAvailable              = errors.New("food post is not available")
	ErrUnauthorizedReservationAccess = errors.New("unauthorized access to reservation")
	ErrReservationAlreadyCompleted   = errors.New("reservation already completed")
	ErrInvalidPickupTime             = errors.New("invalid pickup time")
)

type (
	ReserveFoodRequest struct {
		FoodPostID string  `json:"food_post_id" validate:"required,uuid"`
		PickupTime *string `json:"pickup_time" validate:"omitempty"`
		// Analysis carries the receiver's own quality re-analysis, embedded
		// into the reservation notes as a text summary when present.
		Analysis *QualityAnalysis `json:"analysis" validate:"omitempty"`
	}

	Reservation struct {
		ID         string     `json:"id"`
		FoodPostID string     `json:"food_post_id"`
		ReceiverID string     `json:"receiver_id"`
		Status     string     `json:"status"`
		Notes      string     `json:"notes,omitempty"`
		PickupTime *time.Time `json:"pickup_time,omitempty"`
		FoodPost   *FoodPost  `json:"food_post,omitempty"`
		CreatedAt  time.Time  `json:"created_at"`
	}
)
