package reward

import (
	"context"
	"errors"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/entities"

	"gorm.io/gorm"
)

type (
	RewardRepository interface {
		CreateReward(ctx context.Context, reward *entities.Reward) error
		GetRewardByProfileID(ctx context.Context, profileID string) (*entities.Reward, error)
		UpdateReward(ctx context.Context, reward *entities.Reward) error
		GetTopRewards(ctx context.Context, limit int) ([]*entities.Reward, error)
	}

	rewardRepository struct {
		db *gorm.DB
	}
)

func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &rewardRepository{db: db}
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

func (r *rewardRepository) CreateReward(ctx context.Context, reward *entities.Reward) error {
	return translate(r.db.WithContext(ctx).Create(reward).Error)
}

func (r *rewardRepository) GetRewardByProfileID(ctx context.Context, profileID string) (*entities.Reward, error) {
	var reward entities.Reward
	if err := r.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&reward).Error; err != nil {
		return nil, translate(err)
	}
	return &reward, nil
}

func (r *rewardRepository) UpdateReward(ctx context.Context, reward *entities.Reward) error {
	return translate(r.db.WithContext(ctx).Save(reward).Error)
}

func (r *rewardRepository) GetTopRewards(ctx context.Context, limit int) ([]*entities.Reward, error) {
	var rewards []*entities.Reward
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Order("green_points DESC").
		Limit(limit).
		Find(&rewards).Error
	if err != nil {
		return nil, translate(err)
	}
	return rewards, nil
}
