package foodpost

import (
	"context"
	"errors"
	"time"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/entities"

	"gorm.io/gorm"
)

type (
	FoodPostRepository interface {
		CreateFoodPost(ctx context.Context, post *entities.FoodPost) error
		GetFoodPostByID(ctx context.Context, id string) (*entities.FoodPost, error)
		GetFoodPostsByDonor(ctx context.Context, donorID string) ([]*entities.FoodPost, error)
		GetAvailableFoodPosts(ctx context.Context, now time.Time) ([]*entities.FoodPost, error)
		DeleteFoodPost(ctx context.Context, id string) error
		ExpireFoodPosts(ctx context.Context, now time.Time) (int64, error)
		CountCompletedByDonor(ctx context.Context, donorID string) (int64, error)
	}

	foodPostRepository struct {
		db *gorm.DB
	}
)

func NewFoodPostRepository(db *gorm.DB) FoodPostRepository {
	return &foodPostRepository{db: db}
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

func (r *foodPostRepository) CreateFoodPost(ctx context.Context, post *entities.FoodPost) error {
	return translate(r.db.WithContext(ctx).Create(post).Error)
}

func (r *foodPostRepository) GetFoodPostByID(ctx context.Context, id string) (*entities.FoodPost, error) {
	var post entities.FoodPost
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (r *foodPostRepository) GetFoodPostsByDonor(ctx context.Context, donorID string) ([]*entities.FoodPost, error) {
	var posts []*entities.FoodPost
	err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, translate(err)
	}
	return posts, nil
}

// GetAvailableFoodPosts lists posts receivers can still reserve. The
// available-until filter keeps posts the sweeper has not flipped yet out
// of the feed.
func (r *foodPostRepository) GetAvailableFoodPosts(ctx context.Context, now time.Time) ([]*entities.FoodPost, error) {
	var posts []*entities.FoodPost
	err := r.db.WithContext(ctx).
		Where("status = ? AND available_until > ?", domain.FoodStatusAvailable, now).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, translate(err)
	}
	return posts, nil
}

func (r *foodPostRepository) DeleteFoodPost(ctx context.Context, id string) error {
	return translate(r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodPost{}).Error)
}

// ExpireFoodPosts flips available posts whose window has passed to
// expired and reports how many rows changed.
func (r *foodPostRepository) ExpireFoodPosts(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.FoodPost{}).
		Where("status = ? AND available_until <= ?", domain.FoodStatusAvailable, now).
		Update("status", domain.FoodStatusExpired)
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *foodPostRepository) CountCompletedByDonor(ctx context.Context, donorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.FoodPost{}).
		Where("donor_id = ? AND status = ?", donorID, domain.FoodStatusCompleted).
		Count(&count).Error
	if err != nil {
		return 0, translate(err)
	}
	return count, nil
}
