package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	FoodStatusAvailable = "available"
	FoodStatusReserved  = "reserved"
	FoodStatusExpired   = "expired"
	FoodStatusCompleted = "completed"
)

var (
	MessageSuccessCreateFoodPost  = "food post created successfully"
	MessageSuccessGetFoodPosts    = "food posts retrieved successfully"
	MessageSuccessDeleteFoodPost  = "food post deleted successfully"
	MessageSuccessBrowseFoodPosts = "available food posts retrieved successfully"
	MessageSuccessExpireFoodPosts = "expired food posts swept successfully"

	MessageFailedCreateFoodPost  = "failed to create food post"
	MessageFailedGetFoodPosts    = "failed to retrieve food posts"
	MessageFailedDeleteFoodPost  = "failed to delete food post"
	MessageFailedBrowseFoodPosts = "failed to retrieve available food posts"

	ErrFoodPostNotFound           = errors.New("food post not found")
	ErrUnauthorizedFoodPostAccess = errors.New("unauthorized access to food post")
	ErrFoodImageRequired          = errors.New("food image is required")
	ErrInvalidAvailableUntil      = errors.New("invalid available-until time")
)

type (
	CreateFoodPostRequest struct {
		FoodType          string                `json:"food_type" form:"food_type" validate:"required"`
		Quantity          string                `json:"quantity" form:"quantity" validate:"required"`
		Description       string                `json:"description" form:"description" validate:"omitempty"`
		PickupLocation    string                `json:"pickup_location" form:"pickup_location" validate:"required"`
		Latitude          *float64              `json:"latitude" form:"latitude"`
		Longitude         *float64              `json:"longitude" form:"longitude"`
		AvailableUntil    string                `json:"available_until" form:"available_until" validate:"required"`
		Image             *multipart.FileHeader `json:"image" form:"image"`
		QualityStatus     *string               `json:"quality_status" form:"quality_status" validate:"omitempty,oneof=Fresh Medium Stale"`
		QualityConfidence *float64              `json:"quality_confidence" form:"quality_confidence"`
		ShelfLifeHours    *int                  `json:"shelf_life_hours" form:"shelf_life_hours"`
		QualityReasoning  *string               `json:"quality_reasoning" form:"quality_reasoning"`
	}

	FoodPost struct {
		ID                string         `json:"id"`
		DonorID           string         `json:"donor_id"`
		Donor             *PublicProfile `json:"donor,omitempty"`
		FoodType          string         `json:"food_type"`
		Quantity          string         `json:"quantity"`
		Description       string         `json:"description,omitempty"`
		PickupLocation    string         `json:"pickup_location"`
		Latitude          *float64       `json:"latitude,omitempty"`
		Longitude         *float64       `json:"longitude,omitempty"`
		AvailableUntil    time.Time      `json:"available_until"`
		Status            string         `json:"status"`
		ImageURL          string         `json:"image_url,omitempty"`
		QualityStatus     *string        `json:"quality_status,omitempty"`
		QualityConfidence *float64       `json:"quality_confidence,omitempty"`
		ShelfLifeHours    *int           `json:"shelf_life_hours,omitempty"`
		QualityReasoning  *string        `json:"quality_reasoning,omitempty"`
		CreatedAt         time.Time      `json:"created_at"`
	}
)
