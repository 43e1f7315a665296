package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "rihla/internal/models/db_models"
)

// CatalogRepository reads the enriched recommendation catalog. Entries
// come back in insertion order so the recommender's sort is stable across
// calls.
type CatalogRepository interface {
	ListAll(ctx context.Context) ([]dbm.EnrichedPlace, error)
	CreateEnrichedPlace(ctx context.Context, place *dbm.EnrichedPlace) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListAll(ctx context.Context) ([]dbm.EnrichedPlace, error) {
	var places []dbm.EnrichedPlace
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *catalogRepository) CreateEnrichedPlace(ctx context.Context, place *dbm.EnrichedPlace) error {
	return r.db.WithContext(ctx).Create(place).Error
}
