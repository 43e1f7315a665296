package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "rihla/internal/models/db_models"
)

type PreferenceRepository interface {
	CreateProfile(ctx context.Context, profile *dbm.PreferenceProfile) error
	GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*dbm.PreferenceProfile, error)
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) CreateProfile(ctx context.Context, profile *dbm.PreferenceProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *preferenceRepository) GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*dbm.PreferenceProfile, error) {
	var profile dbm.PreferenceProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
