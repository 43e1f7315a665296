package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	dbm "rihla/internal/models/db_models"
	"rihla/internal/models/response_models"
)

type mockPreferenceRepo struct {
	mock.Mock
}

func (m *mockPreferenceRepo) CreateProfile(ctx context.Context, profile *dbm.PreferenceProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *mockPreferenceRepo) GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*dbm.PreferenceProfile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*dbm.PreferenceProfile)
	return profile, args.Error(1)
}

type mockItineraryRepo struct {
	mock.Mock
}

func (m *mockItineraryRepo) FindByUserAndDates(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (*dbm.Itinerary, error) {
	args := m.Called(ctx, userID, startDate, endDate)
	itinerary, _ := args.Get(0).(*dbm.Itinerary)
	return itinerary, args.Error(1)
}

func (m *mockItineraryRepo) CreateItinerary(ctx context.Context, itinerary *dbm.Itinerary) error {
	args := m.Called(ctx, itinerary)
	if args.Error(0) == nil && itinerary.ID == uuid.Nil {
		itinerary.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockItineraryRepo) GetItineraryByID(ctx context.Context, itineraryID string) (*dbm.Itinerary, error) {
	args := m.Called(ctx, itineraryID)
	itinerary, _ := args.Get(0).(*dbm.Itinerary)
	return itinerary, args.Error(1)
}

func (m *mockItineraryRepo) ListItinerariesByUserID(ctx context.Context, page, pageSize int, userID uuid.UUID) ([]dbm.Itinerary, error) {
	args := m.Called(ctx, page, pageSize, userID)
	itineraries, _ := args.Get(0).([]dbm.Itinerary)
	return itineraries, args.Error(1)
}

func (m *mockItineraryRepo) DeleteItinerary(ctx context.Context, itineraryID string) error {
	return m.Called(ctx, itineraryID).Error(0)
}

func (m *mockItineraryRepo) UpdateDescription(ctx context.Context, itineraryID uuid.UUID, description string) error {
	return m.Called(ctx, itineraryID, description).Error(0)
}

func (m *mockItineraryRepo) FindOrCreateDailyPlan(ctx context.Context, itineraryID uuid.UUID, dayNumber int, city string) (*dbm.DailyPlan, error) {
	args := m.Called(ctx, itineraryID, dayNumber, city)
	plan, _ := args.Get(0).(*dbm.DailyPlan)
	if plan == nil && args.Error(1) == nil {
		plan = &dbm.DailyPlan{ItineraryID: itineraryID, DayNumber: dayNumber, City: city}
		plan.ID = uuid.New()
	}
	return plan, args.Error(1)
}

func (m *mockItineraryRepo) CreateSelectedPlaces(ctx context.Context, places []dbm.SelectedPlace) error {
	return m.Called(ctx, places).Error(0)
}

func (m *mockItineraryRepo) FindSelectedPlace(ctx context.Context, dailyPlanID uuid.UUID, placeName string) (*dbm.SelectedPlace, error) {
	args := m.Called(ctx, dailyPlanID, placeName)
	place, _ := args.Get(0).(*dbm.SelectedPlace)
	return place, args.Error(1)
}

func (m *mockItineraryRepo) DeleteSelectedPlace(ctx context.Context, dailyPlanID uuid.UUID, placeName string) error {
	return m.Called(ctx, dailyPlanID, placeName).Error(0)
}

type mockCatalogRepo struct {
	mock.Mock
}

func (m *mockCatalogRepo) ListAll(ctx context.Context) ([]dbm.EnrichedPlace, error) {
	args := m.Called(ctx)
	places, _ := args.Get(0).([]dbm.EnrichedPlace)
	return places, args.Error(1)
}

func (m *mockCatalogRepo) CreateEnrichedPlace(ctx context.Context, place *dbm.EnrichedPlace) error {
	return m.Called(ctx, place).Error(0)
}

type mockPlacesService struct {
	mock.Mock
}

func (m *mockPlacesService) CollectCandidates(ctx context.Context, cities, categories []string) []response_models.CandidatePlace {
	args := m.Called(ctx, cities, categories)
	places, _ := args.Get(0).([]response_models.CandidatePlace)
	return places
}

type mockPromptBuilder struct {
	mock.Mock
}

func (m *mockPromptBuilder) BuildItineraryPrompt(profile *dbm.PreferenceProfile, days int, candidates []response_models.CandidatePlace) string {
	return m.Called(profile, days, candidates).String(0)
}

type mockGenerationClient struct {
	mock.Mock
}

func (m *mockGenerationClient) GenerateItinerary(ctx context.Context, prompt string) (response_models.GeneratedPlan, error) {
	args := m.Called(ctx, prompt)
	plan, _ := args.Get(0).(response_models.GeneratedPlan)
	return plan, args.Error(1)
}

func (m *mockGenerationClient) GenerateSummary(ctx context.Context, matched response_models.GeneratedPlan) (string, error) {
	args := m.Called(ctx, matched)
	return args.String(0), args.Error(1)
}

func (m *mockGenerationClient) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
