package domain

import (
	"errors"
)

const (
	BadgeBronze   = "Bronze"
	BadgeSilver   = "Silver"
	BadgeGold     = "Gold"
	BadgePlatinum = "Platinum"

	// Accrual values
	REWARD_POINTS_DONATION_COMPLETED    = 50
	REWARD_POINTS_RESERVATION_COMPLETED = 20
	FOOD_SAVED_KG_PER_DONATION          = 2.5
	CO2_KG_PER_FOOD_KG                  = 2.5
)

var (
	MessageSuccessGetReward      = "reward retrieved successfully"
	MessageSuccessGetLeaderboard = "leaderboard retrieved successfully"

	MessageFailedGetReward      = "failed to retrieve reward"
	MessageFailedGetLeaderboard = "failed to retrieve leaderboard"

	ErrRewardNotFound = errors.New("reward not found")
)

type (
	Reward struct {
		ProfileID        string  `json:"profile_id"`
		GreenPoints      int     `json:"green_points"`
		BadgeLevel       string  `json:"badge_level"`
		TotalFoodSavedKg float64 `json:"total_food_saved_kg"`
		TotalCO2SavedKg  float64 `json:"total_co2_saved_kg"`
		NextBadge        string  `json:"next_badge"`
		ProgressPercent  float64 `json:"progress_percent"`
	}

	LeaderboardEntry struct {
		ProfileID        string  `json:"profile_id"`
		FullName         string  `json:"full_name"`
		ProfileImageURL  string  `json:"profile_image_url,omitempty"`
		GreenPoints      int     `json:"green_points"`
		BadgeLevel       string  `json:"badge_level"`
		TotalFoodSavedKg float64 `json:"total_food_saved_kg"`
		TotalCO2SavedKg  float64 `json:"total_co2_saved_kg"`
	}
)
