package entities

import (
	"github.com/google/uuid"
)

type Reward struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ProfileID        uuid.UUID `gorm:"uniqueIndex" json:"profile_id"`
	GreenPoints      int       `json:"green_points"`
	BadgeLevel       string    `json:"badge_level"` // Bronze, Silver, Gold, Platinum
	TotalFoodSavedKg float64   `json:"total_food_saved_kg"`
	TotalCO2SavedKg  float64   `json:"total_co2_saved_kg"`

	Profile *Profile `gorm:"foreignKey:ProfileID"`
	Timestamp
}
