package entities

import (
	"time"

	"github.com/google/uuid"
)

type FoodPost struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonorID           uuid.UUID `json:"donor_id"`
	FoodType          string    `json:"food_type"`
	Quantity          string    `json:"quantity"`
	Description       string    `json:"description,omitempty"`
	PickupLocation    string    `json:"pickup_location"`
	Latitude          *float64  `json:"latitude,omitempty"`
	Longitude         *float64  `json:"longitude,omitempty"`
	AvailableUntil    time.Time `json:"available_until"`
	Status            string    `json:"status"` // available, reserved, expired, completed
	ImageURL          string    `json:"image_url,omitempty"`
	QualityStatus     *string   `json:"quality_status,omitempty"` // Fresh, Medium, Stale
	QualityConfidence *float64  `json:"quality_confidence,omitempty"`
	ShelfLifeHours    *int      `json:"shelf_life_hours,omitempty"`
	QualityReasoning  *string   `gorm:"type:text" json:"quality_reasoning,omitempty"`

	Donor        *Profile       `gorm:"foreignKey:DonorID"`
	Reservations []*Reservation `gorm:"foreignKey:FoodPostID"`
	Timestamp
}
