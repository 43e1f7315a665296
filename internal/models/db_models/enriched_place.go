package db_models

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// EnrichedPlace is a curated catalog entry with a precomputed 5-dim
// feature vector (outdoor, culture, family, food, normalized rating).
// The serial primary key doubles as catalog order, which the recommender
// relies on for stable tie-breaking.
type EnrichedPlace struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	Name      string
	City      string
	Stars     *float64
	ImageURL  string
	Vector    pgvector.Vector `gorm:"type:vector(5)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}
