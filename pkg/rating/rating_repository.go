package rating

import (
	"context"
	"errors"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/entities"

	"gorm.io/gorm"
)

type (
	RatingRepository interface {
		CreateRating(ctx context.Context, rating *entities.Rating) error
		UpdateDonorRating(ctx context.Context, donorID string, rating float64, totalRatings int) error
	}

	ratingRepository struct {
		db *gorm.DB
	}
)

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
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

func (r *ratingRepository) CreateRating(ctx context.Context, rating *entities.Rating) error {
	return translate(r.db.WithContext(ctx).Create(rating).Error)
}

func (r *ratingRepository) UpdateDonorRating(ctx context.Context, donorID string, rating float64, totalRatings int) error {
	err := r.db.WithContext(ctx).
		Model(&entities.Profile{}).
		Where("id = ?", donorID).
		Updates(map[string]any{
			"rating":        rating,
			"total_ratings": totalRatings,
		}).Error
	return translate(err)
}
