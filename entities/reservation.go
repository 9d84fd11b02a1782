package entities

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodPostID uuid.UUID  `gorm:"uniqueIndex:idx_reservations_post_receiver" json:"food_post_id"`
	ReceiverID uuid.UUID  `gorm:"uniqueIndex:idx_reservations_post_receiver" json:"receiver_id"`
	Status     string     `json:"status"` // pending, completed, cancelled
	Notes      string     `gorm:"type:text" json:"notes,omitempty"`
	PickupTime *time.Time `json:"pickup_time,omitempty"`

	FoodPost *FoodPost `gorm:"foreignKey:FoodPostID"`
	Receiver *Profile  `gorm:"foreignKey:ReceiverID"`
	Rating   *Rating   `gorm:"foreignKey:ReservationID"`
	Timestamp
}
