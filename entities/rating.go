package entities

import (
	"github.com/google/uuid"
)

type Rating struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReservationID uuid.UUID `gorm:"uniqueIndex:idx_ratings_reservation_receiver" json:"reservation_id"`
	ReceiverID    uuid.UUID `gorm:"uniqueIndex:idx_ratings_reservation_receiver" json:"receiver_id"`
	DonorID       uuid.UUID `json:"donor_id"`
	Rating        int       `json:"rating"` // 1-5
	Comment       string    `gorm:"type:text" json:"comment,omitempty"`

	Reservation *Reservation `gorm:"foreignKey:ReservationID"`
	Receiver    *Profile     `gorm:"foreignKey:ReceiverID"`
	Donor       *Profile     `gorm:"foreignKey:DonorID"`
	Timestamp
}
