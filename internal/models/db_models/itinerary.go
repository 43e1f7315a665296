package db_models

import (
	"time"

	"github.com/google/uuid"
)

type ItineraryKind string

const (
	ItineraryKindAI     ItineraryKind = "ai"
	ItineraryKindManual ItineraryKind = "manual"
)

type Itinerary struct {
	BaseModel
	UserID      uuid.UUID     `gorm:"type:uuid;index:idx_user_dates"`
	StartDate   time.Time     `gorm:"type:date;index:idx_user_dates"`
	EndDate     time.Time     `gorm:"type:date;index:idx_user_dates"`
	Kind        ItineraryKind `gorm:"size:16;default:'manual'"`
	Description string

	Days []DailyPlan `gorm:"foreignKey:ItineraryID;constraint:OnDelete:CASCADE"`
}

// DailyPlan is one city-day inside an itinerary. The composite unique index
// backs the lookup-or-insert done by the persistence layer: concurrent
// writers for the same (itinerary, day, city) collapse onto a single row.
type DailyPlan struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_itinerary_day_city"`
	DayNumber   int       `gorm:"uniqueIndex:idx_itinerary_day_city;check:day_number >= 1"`
	City        string    `gorm:"uniqueIndex:idx_itinerary_day_city"`

	Places []SelectedPlace `gorm:"foreignKey:DailyPlanID;constraint:OnDelete:CASCADE"`
}

// SelectedPlace always carries catalog-sourced fields; generator text never
// reaches this table. PlaceName is unique within its daily plan.
type SelectedPlace struct {
	BaseModel
	DailyPlanID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_plan_place_name"`
	PlaceName   string    `gorm:"uniqueIndex:idx_plan_place_name"`
	Address     string
	ImageURL    string
	Type        string
	Lat         float64
	Lng         float64
}
