package user

import (
	"context"
	"mime/multipart"
	"testing"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/entities"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

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

type MockRewardEnroller struct {
	mock.Mock
}

func (m *MockRewardEnroller) EnrollProfile(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateTokenUser(userId string, role string) string {
	args := m.Called(userId, role)
	return args.String(0)
}

func (m *MockJWTService) ValidateTokenUser(token string) (*jwt.Token, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *MockJWTService) GetUserIDByToken(token string) (string, string, error) {
	args := m.Called(token)
	return args.String(0), args.String(1), args.Error(2)
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

type userFixtures struct {
	userRepo *MockUserRepository
	enroller *MockRewardEnroller
	jwt      *MockJWTService
	s3       *MockAwsS3
	service  UserService
}

func newUserFixtures() *userFixtures {
	f := &userFixtures{
		userRepo: new(MockUserRepository),
		enroller: new(MockRewardEnroller),
		jwt:      new(MockJWTService),
		s3:       new(MockAwsS3),
	}
	f.service = NewUserService(f.userRepo, f.enroller, f.jwt, f.s3)
	return f
}

func TestRegister(t *testing.T) {
	f := newUserFixtures()

	f.userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.Email == "donor@example.com" && u.Password != "secretpass"
	})).Return(nil)
	f.userRepo.On("CreateProfile", mock.Anything, mock.MatchedBy(func(p *entities.Profile) bool {
		return p.Role == domain.RoleDonor && p.FullName == "Dina Donor"
	})).Return(nil)
	f.enroller.On("EnrollProfile", mock.Anything, mock.Anything).Return(nil)
	f.jwt.On("GenerateTokenUser", mock.Anything, domain.RoleDonor).Return("token-abc")

	res, err := f.service.Register(context.Background(), domain.RegisterRequest{
		Email:    "donor@example.com",
		Password: "secretpass",
		FullName: "Dina Donor",
		Role:     domain.RoleDonor,
	})
	assert.NoError(t, err)
	assert.Equal(t, "token-abc", res.Token)
	assert.Equal(t, domain.RoleDonor, res.Profile.Role)
	f.enroller.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newUserFixtures()

	f.userRepo.On("CreateUser", mock.Anything, mock.Anything).Return(domain.ErrConflict)

	_, err := f.service.Register(context.Background(), domain.RegisterRequest{
		Email:    "taken@example.com",
		Password: "secretpass",
		FullName: "Taken",
		Role:     domain.RoleReceiver,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
}

func TestLogin(t *testing.T) {
	f := newUserFixtures()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secretpass"), bcrypt.DefaultCost)
	userID := uuid.New()
	stored := &entities.User{ID: userID, Email: "donor@example.com", Password: string(hashed)}
	profile := &entities.Profile{ID: uuid.New(), UserID: userID, Role: domain.RoleDonor}

	f.userRepo.On("GetUserByEmail", mock.Anything, "donor@example.com").Return(stored, nil)
	f.userRepo.On("GetProfileByUserID", mock.Anything, userID.String()).Return(profile, nil)
	f.jwt.On("GenerateTokenUser", userID.String(), domain.RoleDonor).Return("token-xyz")

	res, err := f.service.Login(context.Background(), domain.LoginRequest{
		Email:    "donor@example.com",
		Password: "secretpass",
	})
	assert.NoError(t, err)
	assert.Equal(t, "token-xyz", res.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newUserFixtures()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secretpass"), bcrypt.DefaultCost)
	stored := &entities.User{ID: uuid.New(), Email: "donor@example.com", Password: string(hashed)}

	f.userRepo.On("GetUserByEmail", mock.Anything, "donor@example.com").Return(stored, nil)

	_, err := f.service.Login(context.Background(), domain.LoginRequest{
		Email:    "donor@example.com",
		Password: "wrongpass",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthCallbackWithRole(t *testing.T) {
	f := newUserFixtures()

	userID := uuid.New()
	profile := &entities.Profile{ID: uuid.New(), UserID: userID, Role: domain.RoleReceiver}
	f.userRepo.On("GetProfileByUserID", mock.Anything, userID.String()).Return(profile, nil)

	res, err := f.service.AuthCallback(context.Background(), userID.String())
	assert.NoError(t, err)
	assert.False(t, res.NeedsRole)
	assert.Equal(t, "/receiver-dashboard", res.Redirect)
}

func TestAuthCallbackNeedsRoleAfterPolling(t *testing.T) {
	f := newUserFixtures()

	userID := uuid.New()
	f.userRepo.On("GetProfileByUserID", mock.Anything, userID.String()).Return(nil, domain.ErrNotFound)

	res, err := f.service.AuthCallback(context.Background(), userID.String())
	assert.NoError(t, err)
	assert.True(t, res.NeedsRole)
	assert.Nil(t, res.Profile)
	f.userRepo.AssertNumberOfCalls(t, "GetProfileByUserID", ProfilePollAttempts)
}

func TestSelectRoleOnRolelessProfile(t *testing.T) {
	f := newUserFixtures()

	userID := uuid.New()
	profile := &entities.Profile{ID: uuid.New(), UserID: userID, Role: ""}

	f.userRepo.On("GetProfileByUserID", mock.Anything, userID.String()).Return(profile, nil)
	f.userRepo.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(p *entities.Profile) bool {
		return p.Role == domain.RoleDonor
	})).Return(nil)

	res, err := f.service.SelectRole(context.Background(), userID.String(), domain.SelectRoleRequest{Role: domain.RoleDonor})
	assert.NoError(t, err)
	assert.Equal(t, "/donor-dashboard", res.Redirect)
}

func TestSelectRoleAlreadySet(t *testing.T) {
	f := newUserFixtures()

	userID := uuid.New()
	profile := &entities.Profile{ID: uuid.New(), UserID: userID, Role: domain.RoleReceiver}
	f.userRepo.On("GetProfileByUserID", mock.Anything, userID.String()).Return(profile, nil)

	_, err := f.service.SelectRole(context.Background(), userID.String(), domain.SelectRoleRequest{Role: domain.RoleDonor})
	assert.ErrorIs(t, err, domain.ErrRoleAlreadySet)
}

func TestSelectRoleCreatesProfileWhenMissing(t *testing.T) {
	f := newUserFixtures()

	userID := uuid.New()
	stored := &entities.User{ID: userID, Email: "new@example.com"}

	f.userRepo.On("GetProfileByUserID", mock.Anything, userID.String()).Return(nil, domain.ErrNotFound)
	f.userRepo.On("GetUserByID", mock.Anything, userID.String()).Return(stored, nil)
	f.userRepo.On("CreateProfile", mock.Anything, mock.MatchedBy(func(p *entities.Profile) bool {
		return p.Role == domain.RoleReceiver && p.Email == "new@example.com"
	})).Return(nil)
	f.enroller.On("EnrollProfile", mock.Anything, mock.Anything).Return(nil)

	res, err := f.service.SelectRole(context.Background(), userID.String(), domain.SelectRoleRequest{Role: domain.RoleReceiver})
	assert.NoError(t, err)
	assert.Equal(t, "/receiver-dashboard", res.Redirect)
}
