package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	dbm "rihla/internal/models/db_models"
	"rihla/internal/models/request_models"
	"rihla/internal/models/response_models"
	"rihla/internal/repositories"
	"rihla/pkg/utils"
)

type PreferenceServiceInterface interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, req request_models.CreatePreferenceRequest) (*response_models.PreferenceProfileResponse, error)
	GetLatest(ctx context.Context, userID uuid.UUID) (*response_models.PreferenceProfileResponse, error)
}

type PreferenceService struct {
	preferenceRepo repositories.PreferenceRepository
}

func NewPreferenceService(preferenceRepo repositories.PreferenceRepository) PreferenceServiceInterface {
	return &PreferenceService{preferenceRepo: preferenceRepo}
}

func (s *PreferenceService) CreateProfile(ctx context.Context, userID uuid.UUID, req request_models.CreatePreferenceRequest) (*response_models.PreferenceProfileResponse, error) {
	if strings.TrimSpace(req.TravelStyle) == "" {
		return nil, utils.ErrInvalidInput
	}

	profile := &dbm.PreferenceProfile{
		UserID:          userID,
		TravelStyle:     req.TravelStyle,
		Interests:       req.Interests,
		FavoriteFood:    req.FavoriteFood,
		PreferredCities: req.PreferredCities,
		BudgetRange:     req.BudgetRange,
	}
	if err := s.preferenceRepo.CreateProfile(ctx, profile); err != nil {
		return nil, utils.ErrPersistenceWrite
	}
	return toProfileResponse(profile), nil
}

func (s *PreferenceService) GetLatest(ctx context.Context, userID uuid.UUID) (*response_models.PreferenceProfileResponse, error) {
	profile, err := s.preferenceRepo.GetLatestByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}
	return toProfileResponse(profile), nil
}

func toProfileResponse(profile *dbm.PreferenceProfile) *response_models.PreferenceProfileResponse {
	return &response_models.PreferenceProfileResponse{
		ID:              profile.ID.String(),
		TravelStyle:     profile.TravelStyle,
		Interests:       profile.Interests,
		FavoriteFood:    profile.FavoriteFood,
		PreferredCities: profile.PreferredCities,
		BudgetRange:     profile.BudgetRange,
	}
}
