package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Feedback struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;index"`
	UserID      uuid.UUID `gorm:"type:uuid"`
	Rating      int       `gorm:"check:rating >= 1 AND rating <= 5"`
	Comments    string
	ImageURLs   pq.StringArray `gorm:"type:text[]"`
}
