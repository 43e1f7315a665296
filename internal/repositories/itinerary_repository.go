package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "rihla/internal/models/db_models"
)

type ItineraryRepository interface {
	FindByUserAndDates(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (*dbm.Itinerary, error)
	CreateItinerary(ctx context.Context, itinerary *dbm.Itinerary) error
	GetItineraryByID(ctx context.Context, itineraryID string) (*dbm.Itinerary, error)
	ListItinerariesByUserID(ctx context.Context, page, pageSize int, userID uuid.UUID) ([]dbm.Itinerary, error)
	DeleteItinerary(ctx context.Context, itineraryID string) error
	UpdateDescription(ctx context.Context, itineraryID uuid.UUID, description string) error

	FindOrCreateDailyPlan(ctx context.Context, itineraryID uuid.UUID, dayNumber int, city string) (*dbm.DailyPlan, error)
	CreateSelectedPlaces(ctx context.Context, places []dbm.SelectedPlace) error
	FindSelectedPlace(ctx context.Context, dailyPlanID uuid.UUID, placeName string) (*dbm.SelectedPlace, error)
	DeleteSelectedPlace(ctx context.Context, dailyPlanID uuid.UUID, placeName string) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) FindByUserAndDates(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (*dbm.Itinerary, error) {
	var itinerary dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND start_date = ? AND end_date = ?", userID, startDate, endDate).
		Order("created_at DESC").
		First(&itinerary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) CreateItinerary(ctx context.Context, itinerary *dbm.Itinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *itineraryRepository) GetItineraryByID(ctx context.Context, itineraryID string) (*dbm.Itinerary, error) {
	var itinerary dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ?", itineraryID).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("daily_plans.day_number ASC")
		}).
		Preload("Days.Places").
		First(&itinerary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) ListItinerariesByUserID(ctx context.Context, page, pageSize int, userID uuid.UUID) ([]dbm.Itinerary, error) {
	var itineraries []dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) DeleteItinerary(ctx context.Context, itineraryID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subDayIDs := tx.Model(&dbm.DailyPlan{}).
			Select("id").
			Where("itinerary_id = ?", itineraryID)

		if err := tx.Where("daily_plan_id IN (?)", subDayIDs).
			Delete(&dbm.SelectedPlace{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id = ?", itineraryID).
			Delete(&dbm.DailyPlan{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", itineraryID).
			Delete(&dbm.Itinerary{}).Error
	})
}

func (r *itineraryRepository) UpdateDescription(ctx context.Context, itineraryID uuid.UUID, description string) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Itinerary{}).
		Where("id = ?", itineraryID).
		Update("description", description).Error
}

// FindOrCreateDailyPlan returns the single DailyPlan row for
// (itinerary, dayNumber, city). The read-then-write race is tolerated:
// true uniqueness lives in the composite index, and a duplicate-key
// failure on insert means another writer won, so we re-read.
func (r *itineraryRepository) FindOrCreateDailyPlan(ctx context.Context, itineraryID uuid.UUID, dayNumber int, city string) (*dbm.DailyPlan, error) {
	var plan dbm.DailyPlan
	err := r.db.WithContext(ctx).
		Where("itinerary_id = ? AND day_number = ? AND city = ?", itineraryID, dayNumber, city).
		First(&plan).Error
	if err == nil {
		return &plan, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	plan = dbm.DailyPlan{
		ItineraryID: itineraryID,
		DayNumber:   dayNumber,
		City:        city,
	}
	createErr := r.db.WithContext(ctx).Create(&plan).Error
	if createErr == nil {
		return &plan, nil
	}
	if errors.Is(createErr, gorm.ErrDuplicatedKey) {
		var existing dbm.DailyPlan
		if err := r.db.WithContext(ctx).
			Where("itinerary_id = ? AND day_number = ? AND city = ?", itineraryID, dayNumber, city).
			First(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	return nil, createErr
}

func (r *itineraryRepository) CreateSelectedPlaces(ctx context.Context, places []dbm.SelectedPlace) error {
	if len(places) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&places).Error
}

func (r *itineraryRepository) FindSelectedPlace(ctx context.Context, dailyPlanID uuid.UUID, placeName string) (*dbm.SelectedPlace, error) {
	var place dbm.SelectedPlace
	err := r.db.WithContext(ctx).
		Where("daily_plan_id = ? AND place_name = ?", dailyPlanID, placeName).
		First(&place).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *itineraryRepository) DeleteSelectedPlace(ctx context.Context, dailyPlanID uuid.UUID, placeName string) error {
	return r.db.WithContext(ctx).
		Where("daily_plan_id = ? AND place_name = ?", dailyPlanID, placeName).
		Delete(&dbm.SelectedPlace{}).Error
}
