package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister         = "user registered successfully"
	MessageSuccessLogin            = "login successful"
	MessageSuccessGetMe            = "user retrieved successfully"
	MessageSuccessUpdateProfile    = "profile updated successfully"
	MessageSuccessSelectRole       = "role selected successfully"
	MessageSuccessAuthCallback     = "sign in completed"
	MessageSuccessGetPublicProfile = "public profile retrieved successfully"

	MessageFailedRegister         = "failed to register user"
	MessageFailedLogin            = "failed to login"
	MessageFailedGetMe            = "failed to retrieve user"
	MessageFailedUpdateProfile    = "failed to update profile"
	MessageFailedSelectRole       = "failed to select role"
	MessageFailedAuthCallback     = "failed to complete sign in"
	MessageFailedGetPublicProfile = "failed to retrieve public profile"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrProfileNotFound        = errors.New("profile not found")
	ErrRoleAlreadySet         = errors.New("role already set")
	ErrInvalidRole            = errors.New("invalid role")
)

type (
	RegisterRequest struct {
		Email                 string `json:"email" validate:"required,email"`
		Password              string `json:"password" validate:"required,min=8"`
		FullName              string `json:"full_name" validate:"required"`
		Role                  string `json:"role" validate:"required,oneof=donor receiver"`
		Phone                 string `json:"phone" validate:"omitempty"`
		Address               string `json:"address" validate:"omitempty"`
		IsRestaurant          bool   `json:"is_restaurant"`
		RestaurantName        string `json:"restaurant_name" validate:"omitempty"`
		RestaurantDescription string `json:"restaurant_description" validate:"omitempty"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token   string   `json:"token"`
		Profile *Profile `json:"profile"`
	}

	Profile struct {
		ID                    string    `json:"id"`
		UserID                string    `json:"user_id"`
		FullName              string    `json:"full_name"`
		Email                 string    `json:"email"`
		Role                  string    `json:"role"`
		Phone                 string    `json:"phone,omitempty"`
		Address               string    `json:"address,omitempty"`
		IsRestaurant          bool      `json:"is_restaurant"`
		RestaurantName        string    `json:"restaurant_name,omitempty"`
		RestaurantDescription string    `json:"restaurant_description,omitempty"`
		ProfileImageURL       string    `json:"profile_image_url,omitempty"`
		Rating                float64   `json:"rating"`
		TotalRatings          int       `json:"total_ratings"`
		CreatedAt             time.Time `json:"created_at"`
	}

	// PublicProfile carries only the donor fields safe to show other users.
	PublicProfile struct {
		ID                    string  `json:"id"`
		FullName              string  `json:"full_name"`
		Role                  string  `json:"role"`
		IsRestaurant          bool    `json:"is_restaurant"`
		RestaurantName        string  `json:"restaurant_name,omitempty"`
		RestaurantDescription string  `json:"restaurant_description,omitempty"`
		ProfileImageURL       string  `json:"profile_image_url,omitempty"`
		Rating                float64 `json:"rating"`
		TotalRatings          int     `json:"total_ratings"`
	}

	UpdateProfileRequest struct {
		FullName              string                `json:"full_name" form:"full_name" validate:"omitempty"`
		Phone                 string                `json:"phone" form:"phone" validate:"omitempty"`
		Address               string                `json:"address" form:"address" validate:"omitempty"`
		IsRestaurant          *bool                 `json:"is_restaurant" form:"is_restaurant"`
		RestaurantName        string                `json:"restaurant_name" form:"restaurant_name" validate:"omitempty"`
		RestaurantDescription string                `json:"restaurant_description" form:"restaurant_description" validate:"omitempty"`
		ProfileImage          *multipart.FileHeader `json:"profile_image" form:"profile_image"`
	}

	SelectRoleRequest struct {
		Role string `json:"role" validate:"required,oneof=donor receiver"`
	}

	// AuthCallbackResponse reports the outcome of the post-sign-in profile poll.
	// When NeedsRole is true the client must present the role-selection dialog.
	AuthCallbackResponse struct {
		NeedsRole bool     `json:"needs_role"`
		Profile   *Profile `json:"profile,omitempty"`
		Redirect  string   `json:"redirect,omitempty"`
	}
)

// DashboardRoute is the client route a signed-in user lands on for their role.
func DashboardRoute(role string) string {
	if role == RoleDonor {
		return "/donor-dashboard"
	}
	return "/receiver-dashboard"
}
