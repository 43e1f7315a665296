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

type ItineraryServiceInterface interface {
	CreateManualItinerary(ctx context.Context, userID uuid.UUID, req request_models.CreateManualItineraryRequest) (*response_models.ItineraryResponse, error)
	TogglePlace(ctx context.Context, userID uuid.UUID, req request_models.TogglePlaceRequest) (added bool, err error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]response_models.ItineraryResponse, error)
	GetDetails(ctx context.Context, userID uuid.UUID, itineraryID string) (*response_models.ItineraryDetailResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, itineraryID string) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository) ItineraryServiceInterface {
	return &ItineraryService{itineraryRepo: itineraryRepo}
}

func (s *ItineraryService) CreateManualItinerary(ctx context.Context, userID uuid.UUID, req request_models.CreateManualItineraryRequest) (*response_models.ItineraryResponse, error) {
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, utils.ErrInvalidInput
	}

	itinerary := &dbm.Itinerary{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		Kind:      dbm.ItineraryKindManual,
	}
	if err := s.itineraryRepo.CreateItinerary(ctx, itinerary); err != nil {
		return nil, utils.ErrPersistenceWrite
	}
	resp := toItineraryResponse(itinerary)
	return &resp, nil
}

// TogglePlace adds the place to the given city-day, or removes it when a
// place with the same name is already on that day. Returns whether the
// place ended up added.
func (s *ItineraryService) TogglePlace(ctx context.Context, userID uuid.UUID, req request_models.TogglePlaceRequest) (bool, error) {
	itinerary, err := s.ownedItinerary(ctx, userID, req.ItineraryID)
	if err != nil {
		return false, err
	}

	dailyPlan, err := s.itineraryRepo.FindOrCreateDailyPlan(ctx, itinerary.ID, req.DayNumber, req.City)
	if err != nil {
		return false, utils.ErrPersistenceWrite
	}

	existing, err := s.itineraryRepo.FindSelectedPlace(ctx, dailyPlan.ID, req.PlaceName)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if existing != nil {
		if err := s.itineraryRepo.DeleteSelectedPlace(ctx, dailyPlan.ID, req.PlaceName); err != nil {
			return false, utils.ErrPersistenceWrite
		}
		return false, nil
	}

	place := []dbm.SelectedPlace{{
		DailyPlanID: dailyPlan.ID,
		PlaceName:   req.PlaceName,
		Address:     req.Address,
		ImageURL:    req.ImageURL,
		Type:        req.Type,
		Lat:         req.Lat,
		Lng:         req.Lng,
	}}
	if err := s.itineraryRepo.CreateSelectedPlaces(ctx, place); err != nil {
		return false, utils.ErrPersistenceWrite
	}
	return true, nil
}

func (s *ItineraryService) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]response_models.ItineraryResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	itineraries, err := s.itineraryRepo.ListItinerariesByUserID(ctx, page, pageSize, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ItineraryResponse, 0, len(itineraries))
	for i := range itineraries {
		responses = append(responses, toItineraryResponse(&itineraries[i]))
	}
	return responses, nil
}

func (s *ItineraryService) GetDetails(ctx context.Context, userID uuid.UUID, itineraryID string) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.ownedItinerary(ctx, userID, itineraryID)
	if err != nil {
		return nil, err
	}

	detail := &response_models.ItineraryDetailResponse{
		ItineraryResponse: toItineraryResponse(itinerary),
		Days:              make([]response_models.DailyPlanResponse, 0, len(itinerary.Days)),
	}
	for _, day := range itinerary.Days {
		dayResp := response_models.DailyPlanResponse{
			ID:        day.ID.String(),
			DayNumber: day.DayNumber,
			City:      day.City,
			Places:    make([]response_models.SelectedPlaceResponse, 0, len(day.Places)),
		}
		for _, place := range day.Places {
			dayResp.Places = append(dayResp.Places, response_models.SelectedPlaceResponse{
				ID:        place.ID.String(),
				PlaceName: place.PlaceName,
				Address:   place.Address,
				ImageURL:  place.ImageURL,
				Type:      place.Type,
				Lat:       place.Lat,
				Lng:       place.Lng,
			})
		}
		detail.Days = append(detail.Days, dayResp)
	}
	return detail, nil
}

func (s *ItineraryService) Delete(ctx context.Context, userID uuid.UUID, itineraryID string) error {
	if _, err := s.ownedItinerary(ctx, userID, itineraryID); err != nil {
		return err
	}
	if err := s.itineraryRepo.DeleteItinerary(ctx, itineraryID); err != nil {
		return utils.ErrPersistenceWrite
	}
	return nil
}

func (s *ItineraryService) ownedItinerary(ctx context.Context, userID uuid.UUID, itineraryID string) (*dbm.Itinerary, error) {
	if strings.TrimSpace(itineraryID) == "" {
		return nil, utils.ErrInvalidInput
	}
	itinerary, err := s.itineraryRepo.GetItineraryByID(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	if itinerary.UserID != userID {
		return nil, utils.ErrNotOwner
	}
	return itinerary, nil
}

func toItineraryResponse(itinerary *dbm.Itinerary) response_models.ItineraryResponse {
	return response_models.ItineraryResponse{
		ID:          itinerary.ID.String(),
		StartDate:   itinerary.StartDate.Format(utils.DateLayout),
		EndDate:     itinerary.EndDate.Format(utils.DateLayout),
		Kind:        string(itinerary.Kind),
		Description: itinerary.Description,
	}
}
