package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSubmitRating = "rating submitted successfully"
	MessageFailedSubmitRating  = "failed to submit rating"
	MessageAlreadyRated        = "you have already rated this donation"

	ErrAlreadyRated     = errors.New("reservation already rated by this receiver")
	ErrRatingNotAllowed = errors.New("rating not allowed for this reservation")
)

type (
	SubmitRatingRequest struct {
		ReservationID string `json:"reservation_id" validate:"required,uuid"`
		Rating        int    `json:"rating" validate:"required,min=1,max=5"`
		Comment       string `json:"comment" validate:"omitempty"`
	}

	Rating struct {
		ID            string    `json:"id"`
		ReservationID string    `json:"reservation_id"`
		DonorID       string    `json:"donor_id"`
		ReceiverID    string    `json:"receiver_id"`
		Rating        int       `json:"rating"`
		Comment       string    `json:"comment,omitempty"`
		CreatedAt     time.Time `json:"created_at"`
	}
)
