package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Provider string    `json:"provider,omitempty"` // empty for password accounts, e.g. "google" for OAuth

	Profile *Profile `gorm:"foreignKey:UserID"`
	Timestamp
}

type Profile struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID                uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	FullName              string    `json:"full_name"`
	Email                 string    `json:"email"`
	Role                  string    `json:"role"` // donor, receiver; empty until first set
	Phone                 string    `json:"phone,omitempty"`
	Address               string    `json:"address,omitempty"`
	IsRestaurant          bool      `json:"is_restaurant"`
	RestaurantName        string    `json:"restaurant_name,omitempty"`
	RestaurantDescription string    `json:"restaurant_description,omitempty"`
	ProfileImageURL       string    `json:"profile_image_url,omitempty"`
	Rating                float64   `json:"rating"`
	TotalRatings          int       `json:"total_ratings"`

	User      *User       `gorm:"foreignKey:UserID"`
	FoodPosts []*FoodPost `gorm:"foreignKey:DonorID"`
	Reward    *Reward     `gorm:"foreignKey:ProfileID"`
	Timestamp
}
