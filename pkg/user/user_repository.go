package user

import (
	"context"
	"errors"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)

		CreateProfile(ctx context.Context, profile *entities.Profile) error
		UpdateProfile(ctx context.Context, profile *entities.Profile) error
		GetProfileByUserID(ctx context.Context, userID string) (*entities.Profile, error)
		GetProfileByID(ctx context.Context, id string) (*entities.Profile, error)
		GetProfilesByIDs(ctx context.Context, ids []string) ([]*entities.Profile, error)
		CountProfiles(ctx context.Context) (int64, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// translate maps driver errors to the closed domain error kinds so
// callers never inspect provider codes.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrConflict
	default:
		return err
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) CreateProfile(ctx context.Context, profile *entities.Profile) error {
	return translate(r.db.WithContext(ctx).Create(profile).Error)
}

func (r *userRepository) UpdateProfile(ctx context.Context, profile *entities.Profile) error {
	return translate(r.db.WithContext(ctx).Save(profile).Error)
}

func (r *userRepository) GetProfileByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	var profile entities.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (r *userRepository) GetProfileByID(ctx context.Context, id string) (*entities.Profile, error) {
	var profile entities.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// GetProfilesByIDs fetches a set of profiles in one query. Used to attach
// donor display fields to post listings without a per-row round trip.
func (r *userRepository) GetProfilesByIDs(ctx context.Context, ids []string) ([]*entities.Profile, error) {
	var profiles []*entities.Profile
	if len(ids) == 0 {
		return profiles, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, translate(err)
	}
	return profiles, nil
}

func (r *userRepository) CountProfiles(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Profile{}).Count(&count).Error; err != nil {
		return 0, translate(err)
	}
	return count, nil
}
