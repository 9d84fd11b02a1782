package rating

import (
	"context"
	"errors"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/entities"
	"Food2Plate-Backend/pkg/reservation"
	"Food2Plate-Backend/pkg/user"

	"github.com/google/uuid"
)

type (
	RatingService interface {
		SubmitRating(ctx context.Context, userID string, req domain.SubmitRatingRequest) (*domain.Rating, error)
	}

	ratingService struct {
		ratingRepository      RatingRepository
		reservationRepository reservation.ReservationRepository
		userRepository        user.UserRepository
	}
)

func NewRatingService(
	ratingRepository RatingRepository,
	reservationRepository reservation.ReservationRepository,
	userRepository user.UserRepository,
) RatingService {
	return &ratingService{
		ratingRepository:      ratingRepository,
		reservationRepository: reservationRepository,
		userRepository:        userRepository,
	}
}

// RollingAverage folds one new score into a stored average.
func RollingAverage(current float64, count int, score int) (float64, int) {
	total := current*float64(count) + float64(score)
	count++
	return total / float64(count), count
}

// SubmitRating records a receiver's score for a completed pickup and
// refreshes the donor's stored average. Each receiver rates a
// reservation at most once, enforced by the unique index.
func (s *ratingService) SubmitRating(ctx context.Context, userID string, req domain.SubmitRatingRequest) (*domain.Rating, error) {
	if _, err := uuid.Parse(req.ReservationID); err != nil {
		return nil, domain.ErrParseUUID
	}

	receiver, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	reserved, err := s.reservationRepository.GetReservationByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}
	if reserved.ReceiverID != receiver.ID {
		return nil, domain.ErrRatingNotAllowed
	}
	if reserved.Status != domain.ReservationStatusCompleted {
		return nil, domain.ErrRatingNotAllowed
	}
	if reserved.FoodPost == nil {
		return nil, domain.ErrFoodPostNotFound
	}

	rating := &entities.Rating{
		ReservationID: reserved.ID,
		ReceiverID:    receiver.ID,
		DonorID:       reserved.FoodPost.DonorID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if err := s.ratingRepository.CreateRating(ctx, rating); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrAlreadyRated
		}
		return nil, err
	}

	donor, err := s.userRepository.GetProfileByID(ctx, rating.DonorID.String())
	if err != nil {
		return nil, err
	}
	average, count := RollingAverage(donor.Rating, donor.TotalRatings, req.Rating)
	if err := s.ratingRepository.UpdateDonorRating(ctx, donor.ID.String(), average, count); err != nil {
		return nil, err
	}

	return &domain.Rating{
		ID:            rating.ID.String(),
		ReservationID: rating.ReservationID.String(),
		DonorID:       rating.DonorID.String(),
		ReceiverID:    rating.ReceiverID.String(),
		Rating:        rating.Rating,
		Comment:       rating.Comment,
		CreatedAt:     rating.CreatedAt,
	}, nil
}
