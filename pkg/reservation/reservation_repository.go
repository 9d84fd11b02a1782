package reservation

import (
	"context"
	"errors"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/entities"

	"gorm.io/gorm"
)

type (
	ReservationRepository interface {
		ReserveFoodPost(ctx context.Context, reservation *entities.Reservation) error
		GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error)
		GetReservationsByReceiver(ctx context.Context, receiverID string) ([]*entities.Reservation, error)
		CompleteReservation(ctx context.Context, reservation *entities.Reservation) error
		CountCompletedByReceiver(ctx context.Context, receiverID string) (int64, error)
	}

	reservationRepository struct {
		db *gorm.DB
	}
)

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrConflict
	default:
		return err
	}
}

// ReserveFoodPost claims the post and inserts the reservation in one
// transaction. The status-guarded update decides the winner when two
// receivers race for the same post: whoever flips available to reserved
// first wins, the loser sees zero rows and gets ErrFoodNotAvailable.
// The (post, receiver) unique index turns a repeat attempt by the same
// receiver into ErrAlreadyReserved.
func (r *reservationRepository) ReserveFoodPost(ctx context.Context, reservation *entities.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claim := tx.Model(&entities.FoodPost{}).
			Where("id = ? AND status = ?", reservation.FoodPostID, domain.FoodStatusAvailable).
			Update("status", domain.FoodStatusReserved)
		if claim.Error != nil {
			return translate(claim.Error)
		}
		if claim.RowsAffected == 0 {
			return domain.ErrFoodNotAvailable
		}

		if err := tx.Create(reservation).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrAlreadyReserved
			}
			return translate(err)
		}
		return nil
	})
}

func (r *reservationRepository) GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error) {
	var reservation entities.Reservation
	err := r.db.WithContext(ctx).
		Preload("FoodPost").
		Where("id = ?", id).
		First(&reservation).Error
	if err != nil {
		return nil, translate(err)
	}
	return &reservation, nil
}

func (r *reservationRepository) GetReservationsByReceiver(ctx context.Context, receiverID string) ([]*entities.Reservation, error) {
	var reservations []*entities.Reservation
	err := r.db.WithContext(ctx).
		Preload("FoodPost").
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, translate(err)
	}
	return reservations, nil
}

// CompleteReservation marks the reservation and its post completed
// together so accrual never sees a half-finished pair.
func (r *reservationRepository) CompleteReservation(ctx context.Context, reservation *entities.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Reservation{}).
			Where("id = ?", reservation.ID).
			Update("status", domain.ReservationStatusCompleted).Error; err != nil {
			return translate(err)
		}
		if err := tx.Model(&entities.FoodPost{}).
			Where("id = ?", reservation.FoodPostID).
			Update("status", domain.FoodStatusCompleted).Error; err != nil {
			return translate(err)
		}
		return nil
	})
}

func (r *reservationRepository) CountCompletedByReceiver(ctx context.Context, receiverID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Reservation{}).
		Where("receiver_id = ? AND status = ?", receiverID, domain.ReservationStatusCompleted).
		Count(&count).Error
	if err != nil {
		return 0, translate(err)
	}
	return count, nil
}
