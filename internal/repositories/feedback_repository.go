package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "rihla/internal/models/db_models"
)

type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedback *dbm.Feedback) error
	ListByItineraryID(ctx context.Context, itineraryID string) ([]dbm.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) CreateFeedback(ctx context.Context, feedback *dbm.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) ListByItineraryID(ctx context.Context, itineraryID string) ([]dbm.Feedback, error) {
	var feedbacks []dbm.Feedback
	err := r.db.WithContext(ctx).
		Where("itinerary_id = ?", itineraryID).
		Order("created_at DESC").
		Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}
