package foodpost

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFoodPostRepository struct {
	mock.Mock
}

func (m *MockFoodPostRepository) CreateFoodPost(ctx context.Context, post *entities.FoodPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockFoodPostRepository) GetFoodPostByID(ctx context.Context, id string) (*entities.FoodPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FoodPost), args.Error(1)
}

func (m *MockFoodPostRepository) GetFoodPostsByDonor(ctx context.Context, donorID string) ([]*entities.FoodPost, error) {
	args := m.Called(ctx, donorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FoodPost), args.Error(1)
}

func (m *MockFoodPostRepository) GetAvailableFoodPosts(ctx context.Context, now time.Time) ([]*entities.FoodPost, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FoodPost), args.Error(1)
}

func (m *MockFoodPostRepository) DeleteFoodPost(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFoodPostRepository) ExpireFoodPosts(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFoodPostRepository) CountCompletedByDonor(ctx context.Context, donorID string) (int64, error) {
	args := m.Called(ctx, donorID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) CreateProfile(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockUserRepository) GetProfileByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockUserRepository) GetProfileByID(ctx context.Context, id string) (*entities.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockUserRepository) GetProfilesByIDs(ctx context.Context, ids []string) ([]*entities.Profile, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Profile), args.Error(1)
}

func (m *MockUserRepository) CountProfiles(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockAwsS3 struct {
	mock.Mock
}

func (m *MockAwsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error) {
	args := m.Called(fileName, file, folder, allowedExt)
	return args.String(0), args.Error(1)
}

func (m *MockAwsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedExt ...string) (string, error) {
	args := m.Called(objectKey, file, allowedExt)
	return args.String(0), args.Error(1)
}

func (m *MockAwsS3) DeleteFile(objectKey string) error {
	args := m.Called(objectKey)
	return args.Error(0)
}

func (m *MockAwsS3) GetPublicLinkKey(objectKey string) string {
	args := m.Called(objectKey)
	return args.String(0)
}

func (m *MockAwsS3) GetObjectKeyFromLink(link string) string {
	args := m.Called(link)
	return args.String(0)
}

type postFixtures struct {
	postRepo *MockFoodPostRepository
	userRepo *MockUserRepository
	s3       *MockAwsS3
	service  FoodPostService

	userID uuid.UUID
	donor  *entities.Profile
}

func newPostFixtures() *postFixtures {
	f := &postFixtures{
		postRepo: new(MockFoodPostRepository),
		userRepo: new(MockUserRepository),
		s3:       new(MockAwsS3),
		userID:   uuid.New(),
	}
	f.service = NewFoodPostService(f.postRepo, f.userRepo, f.s3)
	f.donor = &entities.Profile{ID: uuid.New(), UserID: f.userID, FullName: "Dina Donor", Role: domain.RoleDonor}
	return f
}

func validRequest() domain.CreateFoodPostRequest {
	return domain.CreateFoodPostRequest{
		FoodType:       "Rice boxes",
		Quantity:       "10 portions",
		PickupLocation: "Jl. Melati 5",
		AvailableUntil: time.Now().Add(8 * time.Hour).Format(time.RFC3339),
		Image:          &multipart.FileHeader{Filename: "rice.jpg"},
	}
}

func TestCreateFoodPost(t *testing.T) {
	f := newPostFixtures()
	req := validRequest()

	f.userRepo.On("GetProfileByUserID", mock.Anything, f.userID.String()).Return(f.donor, nil)
	f.s3.On("UploadFile", mock.Anything, req.Image, "food-posts", mock.Anything).Return("https://bucket.s3.region.amazonaws.com/food-posts/rice.jpg", nil)
	f.postRepo.On("CreateFoodPost", mock.Anything, mock.MatchedBy(func(p *entities.FoodPost) bool {
		return p.DonorID == f.donor.ID &&
			p.Status == domain.FoodStatusAvailable &&
			p.QualityStatus == nil &&
			p.QualityConfidence == nil &&
			p.ShelfLifeHours == nil
	})).Return(nil)

	res, err := f.service.CreateFoodPost(context.Background(), f.userID.String(), req)
	assert.NoError(t, err)
	assert.Equal(t, domain.FoodStatusAvailable, res.Status)
	assert.Nil(t, res.QualityStatus)
	assert.Equal(t, "Dina Donor", res.Donor.FullName)
}

func TestCreateFoodPostWithAnalysis(t *testing.T) {
	f := newPostFixtures()
	req := validRequest()
	quality := domain.QualityFresh
	confidence := 92.0
	shelfLife := 48
	reasoning := "Bright color and firm texture"
	req.QualityStatus = &quality
	req.QualityConfidence = &confidence
	req.ShelfLifeHours = &shelfLife
	req.QualityReasoning = &reasoning

	f.userRepo.On("GetProfileByUserID", mock.Anything, f.userID.String()).Return(f.donor, nil)
	f.s3.On("UploadFile", mock.Anything, req.Image, "food-posts", mock.Anything).Return("https://bucket.s3.region.amazonaws.com/food-posts/rice.jpg", nil)
	f.postRepo.On("CreateFoodPost", mock.Anything, mock.MatchedBy(func(p *entities.FoodPost) bool {
		return p.QualityStatus != nil && *p.QualityStatus == domain.QualityFresh && *p.ShelfLifeHours == 48
	})).Return(nil)

	res, err := f.service.CreateFoodPost(context.Background(), f.userID.String(), req)
	assert.NoError(t, err)
	assert.Equal(t, domain.QualityFresh, *res.QualityStatus)
	assert.Equal(t, 92.0, *res.QualityConfidence)
}

func TestCreateFoodPostWithoutImage(t *testing.T) {
	f := newPostFixtures()
	req := validRequest()
	req.Image = nil

	_, err := f.service.CreateFoodPost(context.Background(), f.userID.String(), req)
	assert.ErrorIs(t, err, domain.ErrFoodImageRequired)
}

func TestCreateFoodPostBadAvailableUntil(t *testing.T) {
	f := newPostFixtures()
	req := validRequest()
	req.AvailableUntil = "tomorrow evening"

	_, err := f.service.CreateFoodPost(context.Background(), f.userID.String(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidAvailableUntil)
}

func TestBrowseFoodPostsAttachesDonors(t *testing.T) {
	f := newPostFixtures()

	posts := []*entities.FoodPost{
		{ID: uuid.New(), DonorID: f.donor.ID, Status: domain.FoodStatusAvailable},
		{ID: uuid.New(), DonorID: f.donor.ID, Status: domain.FoodStatusAvailable},
	}

	f.postRepo.On("ExpireFoodPosts", mock.Anything, mock.Anything).Return(int64(0), nil)
	f.postRepo.On("GetAvailableFoodPosts", mock.Anything, mock.Anything).Return(posts, nil)
	f.userRepo.On("GetProfilesByIDs", mock.Anything, []string{f.donor.ID.String()}).Return([]*entities.Profile{f.donor}, nil)

	res, err := f.service.BrowseFoodPosts(context.Background())
	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "Dina Donor", res[0].Donor.FullName)
	// both posts share the donor, still a single batched lookup
	f.userRepo.AssertNumberOfCalls(t, "GetProfilesByIDs", 1)
}

func TestDeleteFoodPostNotOwner(t *testing.T) {
	f := newPostFixtures()

	post := &entities.FoodPost{ID: uuid.New(), DonorID: uuid.New()}
	f.userRepo.On("GetProfileByUserID", mock.Anything, f.userID.String()).Return(f.donor, nil)
	f.postRepo.On("GetFoodPostByID", mock.Anything, post.ID.String()).Return(post, nil)

	err := f.service.DeleteFoodPost(context.Background(), f.userID.String(), post.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedFoodPostAccess)
}

func TestDeleteFoodPostCleansImage(t *testing.T) {
	f := newPostFixtures()

	post := &entities.FoodPost{
		ID:       uuid.New(),
		DonorID:  f.donor.ID,
		ImageURL: "https://bucket.s3.region.amazonaws.com/food-posts/rice.jpg",
	}
	f.userRepo.On("GetProfileByUserID", mock.Anything, f.userID.String()).Return(f.donor, nil)
	f.postRepo.On("GetFoodPostByID", mock.Anything, post.ID.String()).Return(post, nil)
	f.postRepo.On("DeleteFoodPost", mock.Anything, post.ID.String()).Return(nil)
	f.s3.On("GetObjectKeyFromLink", post.ImageURL).Return("food-posts/rice.jpg")
	f.s3.On("DeleteFile", "food-posts/rice.jpg").Return(nil)

	err := f.service.DeleteFoodPost(context.Background(), f.userID.String(), post.ID.String())
	assert.NoError(t, err)
	f.s3.AssertExpectations(t)
}
