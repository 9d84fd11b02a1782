package foodpost

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/entities"
	"Food2Plate-Backend/internal/utils/storage"
	"Food2Plate-Backend/pkg/user"

	"github.com/google/uuid"
)

type (
	FoodPostService interface {
		CreateFoodPost(ctx context.Context, userID string, req domain.CreateFoodPostRequest) (*domain.FoodPost, error)
		GetMyFoodPosts(ctx context.Context, userID string) ([]*domain.FoodPost, error)
		BrowseFoodPosts(ctx context.Context) ([]*domain.FoodPost, error)
		DeleteFoodPost(ctx context.Context, userID string, postID string) error
		ExpireOldPosts(ctx context.Context) (int64, error)
	}

	foodPostService struct {
		foodPostRepository FoodPostRepository
		userRepository     user.UserRepository
		awsS3              storage.AwsS3
	}
)

func NewFoodPostService(foodPostRepository FoodPostRepository, userRepository user.UserRepository, awsS3 storage.AwsS3) FoodPostService {
	return &foodPostService{
		foodPostRepository: foodPostRepository,
		userRepository:     userRepository,
		awsS3:              awsS3,
	}
}

func PostToDomain(post *entities.FoodPost) *domain.FoodPost {
	return &domain.FoodPost{
		ID:                post.ID.String(),
		DonorID:           post.DonorID.String(),
		FoodType:          post.FoodType,
		Quantity:          post.Quantity,
		Description:       post.Description,
		PickupLocation:    post.PickupLocation,
		Latitude:          post.Latitude,
		Longitude:         post.Longitude,
		AvailableUntil:    post.AvailableUntil,
		Status:            post.Status,
		ImageURL:          post.ImageURL,
		QualityStatus:     post.QualityStatus,
		QualityConfidence: post.QualityConfidence,
		ShelfLifeHours:    post.ShelfLifeHours,
		QualityReasoning:  post.QualityReasoning,
		CreatedAt:         post.CreatedAt,
	}
}

func (s *foodPostService) CreateFoodPost(ctx context.Context, userID string, req domain.CreateFoodPostRequest) (*domain.FoodPost, error) {
	if req.Image == nil {
		return nil, domain.ErrFoodImageRequired
	}

	availableUntil, err := time.Parse(time.RFC3339, req.AvailableUntil)
	if err != nil {
		return nil, domain.ErrInvalidAvailableUntil
	}

	donor, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	key := fmt.Sprintf("food-%s", uuid.New().String())
	imageURL, err := s.awsS3.UploadFile(key, req.Image, "food-posts", storage.AllowImage...)
	if err != nil {
		return nil, err
	}

	post := &entities.FoodPost{
		DonorID:           donor.ID,
		FoodType:          req.FoodType,
		Quantity:          req.Quantity,
		Description:       req.Description,
		PickupLocation:    req.PickupLocation,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		AvailableUntil:    availableUntil,
		Status:            domain.FoodStatusAvailable,
		ImageURL:          imageURL,
		QualityStatus:     req.QualityStatus,
		QualityConfidence: req.QualityConfidence,
		ShelfLifeHours:    req.ShelfLifeHours,
		QualityReasoning:  req.QualityReasoning,
	}
	if err := s.foodPostRepository.CreateFoodPost(ctx, post); err != nil {
		return nil, err
	}

	response := PostToDomain(post)
	response.Donor = user.ProfileToPublic(donor)
	return response, nil
}

func (s *foodPostService) GetMyFoodPosts(ctx context.Context, userID string) ([]*domain.FoodPost, error) {
	donor, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	posts, err := s.foodPostRepository.GetFoodPostsByDonor(ctx, donor.ID.String())
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.FoodPost, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, PostToDomain(post))
	}
	return responses, nil
}

// BrowseFoodPosts returns every currently reservable post with donor
// display fields attached. Expired posts are swept first so the feed is
// consistent even between cron runs.
func (s *foodPostService) BrowseFoodPosts(ctx context.Context) ([]*domain.FoodPost, error) {
	now := time.Now()
	if _, err := s.foodPostRepository.ExpireFoodPosts(ctx, now); err != nil {
		return nil, err
	}

	posts, err := s.foodPostRepository.GetAvailableFoodPosts(ctx, now)
	if err != nil {
		return nil, err
	}

	donorIDs := make([]string, 0, len(posts))
	seen := make(map[string]bool)
	for _, post := range posts {
		id := post.DonorID.String()
		if !seen[id] {
			seen[id] = true
			donorIDs = append(donorIDs, id)
		}
	}

	donors, err := s.userRepository.GetProfilesByIDs(ctx, donorIDs)
	if err != nil {
		return nil, err
	}
	donorsByID := make(map[string]*entities.Profile, len(donors))
	for _, donor := range donors {
		donorsByID[donor.ID.String()] = donor
	}

	responses := make([]*domain.FoodPost, 0, len(posts))
	for _, post := range posts {
		response := PostToDomain(post)
		if donor, ok := donorsByID[post.DonorID.String()]; ok {
			response.Donor = user.ProfileToPublic(donor)
		}
		responses = append(responses, response)
	}
	return responses, nil
}

func (s *foodPostService) DeleteFoodPost(ctx context.Context, userID string, postID string) error {
	if _, err := uuid.Parse(postID); err != nil {
		return domain.ErrParseUUID
	}

	donor, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrProfileNotFound
		}
		return err
	}

	post, err := s.foodPostRepository.GetFoodPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrFoodPostNotFound
		}
		return err
	}
	if post.DonorID != donor.ID {
		return domain.ErrUnauthorizedFoodPostAccess
	}

	if err := s.foodPostRepository.DeleteFoodPost(ctx, postID); err != nil {
		return err
	}

	if post.ImageURL != "" {
		key := s.awsS3.GetObjectKeyFromLink(post.ImageURL)
		if err := s.awsS3.DeleteFile(key); err != nil {
			log.Println("failed to delete food post image:", err)
		}
	}
	return nil
}

func (s *foodPostService) ExpireOldPosts(ctx context.Context) (int64, error) {
	return s.foodPostRepository.ExpireFoodPosts(ctx, time.Now())
}
