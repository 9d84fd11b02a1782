package reward

import (
	"context"
	"errors"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/entities"
	"Food2Plate-Backend/pkg/user"

	"github.com/google/uuid"
)

const LeaderboardSize = 10

type (
	RewardService interface {
		EnrollProfile(ctx context.Context, profileID string) error
		GetMyReward(ctx context.Context, userID string) (*domain.Reward, error)
		GetLeaderboard(ctx context.Context) ([]*domain.LeaderboardEntry, error)
		AccrueDonationCompleted(ctx context.Context, profileID string) error
		AccrueReservationCompleted(ctx context.Context, profileID string) error
	}

	rewardService struct {
		rewardRepository RewardRepository
		userRepository   user.UserRepository
	}
)

func NewRewardService(rewardRepository RewardRepository, userRepository user.UserRepository) RewardService {
	return &rewardService{
		rewardRepository: rewardRepository,
		userRepository:   userRepository,
	}
}

// CalculateBadgeLevel maps a points total to its badge tier.
func CalculateBadgeLevel(points int) string {
	switch {
	case points >= 700:
		return domain.BadgePlatinum
	case points >= 300:
		return domain.BadgeGold
	case points >= 100:
		return domain.BadgeSilver
	default:
		return domain.BadgeBronze
	}
}

// ProgressToNextBadge reports the next tier and how far along the
// current tier's point range the total sits, as a 0-100 percentage.
// Platinum holders are pinned at 100 with no next tier.
func ProgressToNextBadge(points int) (string, float64) {
	switch {
	case points >= 700:
		return "", 100
	case points >= 300:
		return domain.BadgePlatinum, float64(points-300) / 400 * 100
	case points >= 100:
		return domain.BadgeGold, float64(points-100) / 200 * 100
	default:
		return domain.BadgeSilver, float64(points) / 100 * 100
	}
}

func RewardToDomain(reward *entities.Reward) *domain.Reward {
	nextBadge, progress := ProgressToNextBadge(reward.GreenPoints)
	return &domain.Reward{
		ProfileID:        reward.ProfileID.String(),
		GreenPoints:      reward.GreenPoints,
		BadgeLevel:       CalculateBadgeLevel(reward.GreenPoints),
		TotalFoodSavedKg: reward.TotalFoodSavedKg,
		TotalCO2SavedKg:  reward.TotalCO2SavedKg,
		NextBadge:        nextBadge,
		ProgressPercent:  progress,
	}
}

func (s *rewardService) EnrollProfile(ctx context.Context, profileID string) error {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return domain.ErrParseUUID
	}

	reward := &entities.Reward{
		ProfileID:  id,
		BadgeLevel: domain.BadgeBronze,
	}
	if err := s.rewardRepository.CreateReward(ctx, reward); err != nil {
		// An existing row is fine, enrollment is idempotent.
		if errors.Is(err, domain.ErrConflict) {
			return nil
		}
		return err
	}
	return nil
}

func (s *rewardService) GetMyReward(ctx context.Context, userID string) (*domain.Reward, error) {
	profile, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	reward, err := s.rewardRepository.GetRewardByProfileID(ctx, profile.ID.String())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrRewardNotFound
		}
		return nil, err
	}
	return RewardToDomain(reward), nil
}

func (s *rewardService) GetLeaderboard(ctx context.Context) ([]*domain.LeaderboardEntry, error) {
	rewards, err := s.rewardRepository.GetTopRewards(ctx, LeaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.LeaderboardEntry, 0, len(rewards))
	for _, reward := range rewards {
		entry := &domain.LeaderboardEntry{
			ProfileID:        reward.ProfileID.String(),
			GreenPoints:      reward.GreenPoints,
			BadgeLevel:       CalculateBadgeLevel(reward.GreenPoints),
			TotalFoodSavedKg: reward.TotalFoodSavedKg,
			TotalCO2SavedKg:  reward.TotalCO2SavedKg,
		}
		if reward.Profile != nil {
			entry.FullName = reward.Profile.FullName
			entry.ProfileImageURL = reward.Profile.ProfileImageURL
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// accrue adds points and the paired impact estimate, then refreshes the
// stored badge so leaderboard reads never recompute it.
func (s *rewardService) accrue(ctx context.Context, profileID string, points int, foodSavedKg float64) error {
	reward, err := s.rewardRepository.GetRewardByProfileID(ctx, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrRewardNotFound
		}
		return err
	}

	reward.GreenPoints += points
	reward.TotalFoodSavedKg += foodSavedKg
	reward.TotalCO2SavedKg += foodSavedKg * domain.CO2_KG_PER_FOOD_KG
	reward.BadgeLevel = CalculateBadgeLevel(reward.GreenPoints)
	return s.rewardRepository.UpdateReward(ctx, reward)
}

func (s *rewardService) AccrueDonationCompleted(ctx context.Context, profileID string) error {
	return s.accrue(ctx, profileID, domain.REWARD_POINTS_DONATION_COMPLETED, domain.FOOD_SAVED_KG_PER_DONATION)
}

func (s *rewardService) AccrueReservationCompleted(ctx context.Context, profileID string) error {
	return s.accrue(ctx, profileID, domain.REWARD_POINTS_RESERVATION_COMPLETED, 0)
}
