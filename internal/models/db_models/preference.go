package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PreferenceProfile is written once per generation attempt and never
// updated; a new attempt inserts a new row and the planner reads the
// latest one for the user.
type PreferenceProfile struct {
	BaseModel
	UserID          uuid.UUID      `gorm:"type:uuid;index"`
	TravelStyle     string
	Interests       pq.StringArray `gorm:"type:text[]"`
	FavoriteFood    pq.StringArray `gorm:"type:text[]"`
	PreferredCities pq.StringArray `gorm:"type:text[]"`
	BudgetRange     string
}
