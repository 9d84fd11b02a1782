package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/entities"
	"Food2Plate-Backend/internal/utils"
	"Food2Plate-Backend/internal/utils/mailing"
	"Food2Plate-Backend/internal/utils/storage"
	"Food2Plate-Backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// The profile row is written by a trigger after sign-up, so the
	// callback polls briefly before concluding the user has no profile.
	ProfilePollAttempts = 5
	ProfilePollInterval = 800 * time.Millisecond
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (*domain.Profile, error)
		AuthCallback(ctx context.Context, userID string) (domain.AuthCallbackResponse, error)
		SelectRole(ctx context.Context, userID string, req domain.SelectRoleRequest) (domain.AuthCallbackResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (*domain.Profile, error)
		GetPublicProfile(ctx context.Context, profileID string) (*domain.PublicProfile, error)
	}

	userService struct {
		userRepository UserRepository
		rewardEnroller RewardEnroller
		jwtService     jwt.JWTService
		awsS3          storage.AwsS3
	}

	// RewardEnroller creates the zero-value reward row for a fresh profile.
	RewardEnroller interface {
		EnrollProfile(ctx context.Context, profileID string) error
	}
)

func NewUserService(userRepository UserRepository, rewardEnroller RewardEnroller, jwtService jwt.JWTService, awsS3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		rewardEnroller: rewardEnroller,
		jwtService:     jwtService,
		awsS3:          awsS3,
	}
}

func ProfileToDomain(profile *entities.Profile) *domain.Profile {
	return &domain.Profile{
		ID:                    profile.ID.String(),
		UserID:                profile.UserID.String(),
		FullName:              profile.FullName,
		Email:                 profile.Email,
		Role:                  profile.Role,
		Phone:                 profile.Phone,
		Address:               profile.Address,
		IsRestaurant:          profile.IsRestaurant,
		RestaurantName:        profile.RestaurantName,
		RestaurantDescription: profile.RestaurantDescription,
		ProfileImageURL:       profile.ProfileImageURL,
		Rating:                profile.Rating,
		TotalRatings:          profile.TotalRatings,
		CreatedAt:             profile.CreatedAt,
	}
}

func ProfileToPublic(profile *entities.Profile) *domain.PublicProfile {
	return &domain.PublicProfile{
		ID:                    profile.ID.String(),
		FullName:              profile.FullName,
		Role:                  profile.Role,
		IsRestaurant:          profile.IsRestaurant,
		RestaurantName:        profile.RestaurantName,
		RestaurantDescription: profile.RestaurantDescription,
		ProfileImageURL:       profile.ProfileImageURL,
		Rating:                profile.Rating,
		TotalRatings:          profile.TotalRatings,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	user := &entities.User{
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.AuthResponse{}, domain.ErrEmailAlreadyRegistered
		}
		return domain.AuthResponse{}, err
	}

	profile := &entities.Profile{
		UserID:                user.ID,
		FullName:              req.FullName,
		Email:                 req.Email,
		Role:                  req.Role,
		Phone:                 req.Phone,
		Address:               req.Address,
		IsRestaurant:          req.IsRestaurant,
		RestaurantName:        req.RestaurantName,
		RestaurantDescription: req.RestaurantDescription,
	}
	if err := s.userRepository.CreateProfile(ctx, profile); err != nil {
		return domain.AuthResponse{}, err
	}

	if err := s.rewardEnroller.EnrollProfile(ctx, profile.ID.String()); err != nil {
		return domain.AuthResponse{}, err
	}

	go func() {
		body := fmt.Sprintf("<p>Hi %s,</p><p>Welcome to Food2Plate! Your account is ready. Share surplus food or find a meal near you.</p>", profile.FullName)
		if err := mailing.SendMail(user.Email, "Welcome to Food2Plate", body); err != nil {
			log.Println("failed to send welcome mail:", err)
		}
	}()

	token := s.jwtService.GenerateTokenUser(user.ID.String(), profile.Role)
	return domain.AuthResponse{Token: token, Profile: ProfileToDomain(profile)}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	profile, err := s.userRepository.GetProfileByUserID(ctx, user.ID.String())
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.AuthResponse{}, err
	}

	role := ""
	var profileResponse *domain.Profile
	if profile != nil {
		role = profile.Role
		profileResponse = ProfileToDomain(profile)
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), role)
	return domain.AuthResponse{Token: token, Profile: profileResponse}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return ProfileToDomain(profile), nil
}

// AuthCallback resolves where a freshly signed-in user should land. It
// polls for the profile row because provider sign-ins may create it a
// beat after the session exists. No profile or no role after the budget
// means the client must ask for a role.
func (s *userService) AuthCallback(ctx context.Context, userID string) (domain.AuthCallbackResponse, error) {
	var profile *entities.Profile

	found, err := utils.Poll(ctx, ProfilePollAttempts, ProfilePollInterval, func(ctx context.Context) (bool, error) {
		p, err := s.userRepository.GetProfileByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		if p.Role == "" {
			return false, nil
		}
		profile = p
		return true, nil
	})
	if err != nil {
		return domain.AuthCallbackResponse{}, err
	}
	if !found {
		return domain.AuthCallbackResponse{NeedsRole: true}, nil
	}

	return domain.AuthCallbackResponse{
		NeedsRole: false,
		Profile:   ProfileToDomain(profile),
		Redirect:  domain.DashboardRoute(profile.Role),
	}, nil
}

func (s *userService) SelectRole(ctx context.Context, userID string, req domain.SelectRoleRequest) (domain.AuthCallbackResponse, error) {
	if req.Role != domain.RoleDonor && req.Role != domain.RoleReceiver {
		return domain.AuthCallbackResponse{}, domain.ErrInvalidRole
	}

	profile, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		user, err := s.userRepository.GetUserByID(ctx, userID)
		if err != nil {
			return domain.AuthCallbackResponse{}, err
		}
		profile = &entities.Profile{
			UserID: user.ID,
			Email:  user.Email,
			Role:   req.Role,
		}
		if err := s.userRepository.CreateProfile(ctx, profile); err != nil {
			return domain.AuthCallbackResponse{}, err
		}
		if err := s.rewardEnroller.EnrollProfile(ctx, profile.ID.String()); err != nil {
			return domain.AuthCallbackResponse{}, err
		}
	} else if err != nil {
		return domain.AuthCallbackResponse{}, err
	} else {
		if profile.Role != "" {
			return domain.AuthCallbackResponse{}, domain.ErrRoleAlreadySet
		}
		profile.Role = req.Role
		if err := s.userRepository.UpdateProfile(ctx, profile); err != nil {
			return domain.AuthCallbackResponse{}, err
		}
	}

	return domain.AuthCallbackResponse{
		NeedsRole: false,
		Profile:   ProfileToDomain(profile),
		Redirect:  domain.DashboardRoute(profile.Role),
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	if req.FullName != "" {
		profile.FullName = req.FullName
	}
	if req.Phone != "" {
		profile.Phone = req.Phone
	}
	if req.Address != "" {
		profile.Address = req.Address
	}
	if req.IsRestaurant != nil {
		profile.IsRestaurant = *req.IsRestaurant
	}
	if req.RestaurantName != "" {
		profile.RestaurantName = req.RestaurantName
	}
	if req.RestaurantDescription != "" {
		profile.RestaurantDescription = req.RestaurantDescription
	}

	if req.ProfileImage != nil {
		key := fmt.Sprintf("profile-%s", uuid.New().String())
		var link string
		if profile.ProfileImageURL != "" {
			oldKey := s.awsS3.GetObjectKeyFromLink(profile.ProfileImageURL)
			link, err = s.awsS3.UpdateFile(oldKey, req.ProfileImage, storage.AllowImage...)
		} else {
			link, err = s.awsS3.UploadFile(key, req.ProfileImage, "profiles", storage.AllowImage...)
		}
		if err != nil {
			return nil, err
		}
		profile.ProfileImageURL = link
	}

	if err := s.userRepository.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return ProfileToDomain(profile), nil
}

func (s *userService) GetPublicProfile(ctx context.Context, profileID string) (*domain.PublicProfile, error) {
	if _, err := uuid.Parse(profileID); err != nil {
		return nil, domain.ErrParseUUID
	}
	profile, err := s.userRepository.GetProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return ProfileToPublic(profile), nil
}
