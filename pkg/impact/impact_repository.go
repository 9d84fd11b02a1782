package impact

import (
	"context"
	"errors"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/entities"

	"gorm.io/gorm"
)

type (
	ImpactRepository interface {
		CountCompletedDonations(ctx context.Context) (int64, error)
		CountCompletedReservations(ctx context.Context) (int64, error)
		CountProfiles(ctx context.Context) (int64, error)
	}

	impactRepository struct {
		db *gorm.DB
	}
)

func NewImpactRepository(db *gorm.DB) ImpactRepository {
	return &impactRepository{db: db}
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

func (r *impactRepository) CountCompletedDonations(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.FoodPost{}).
		Where("status = ?", domain.FoodStatusCompleted).
		Count(&count).Error
	return count, translate(err)
}

func (r *impactRepository) CountCompletedReservations(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Reservation{}).
		Where("status = ?", domain.ReservationStatusCompleted).
		Count(&count).Error
	return count, translate(err)
}

func (r *impactRepository) CountProfiles(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Profile{}).Count(&count).Error
	return count, translate(err)
}
