package persistent

import (
	"context"
	"errors"

	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/errs"
	"github.com/otaviobrantes/lumen/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)
	List(ctx context.Context, search string, limit int) ([]*entity.Profile, error)
	UpdateRole(ctx context.Context, id string, role entity.UserRole) error
	Count(ctx context.Context) (int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileModel := ToProfileModel(profile)
	if profileModel.ID == "" {
		profileModel.ID = uuid.New().String()
	}

	if err := r.db.WithContext(ctx).Create(profileModel).Error; err != nil {
		return err
	}

	*profile = *ToProfileEntity(profileModel)
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profileModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return ToProfileEntity(&profileModel), nil
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&profileModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return ToProfileEntity(&profileModel), nil
}

// List searches profiles by case-insensitive email substring, capped at
// limit rows.
func (r *profileRepository) List(ctx context.Context, search string, limit int) ([]*entity.Profile, error) {
	var profileModels []model.ProfileModel
	query := r.db.WithContext(ctx).Order("email")
	if search != "" {
		query = query.Where("email ILIKE ?", "%"+search+"%")
	}
	if err := query.Limit(limit).Find(&profileModels).Error; err != nil {
		return nil, err
	}

	profiles := make([]*entity.Profile, len(profileModels))
	for i := range profileModels {
		profiles[i] = ToProfileEntity(&profileModels[i])
	}
	return profiles, nil
}

// UpdateRole changes the role of one profile row, confirming the affected
// row count. A silent zero-row update is a policy denial, not a success.
func (r *profileRepository) UpdateRole(ctx context.Context, id string, role entity.UserRole) error {
	result := r.db.WithContext(ctx).Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("role", string(role))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrPolicyDenied
	}
	return nil
}

func (r *profileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProfileModel{}).Count(&count).Error
	return count, err
}
