package services

import (
	"context"

	"github.com/google/uuid"

	dbm "rihla/internal/models/db_models"
	"rihla/internal/models/request_models"
	"rihla/internal/models/response_models"
	"rihla/internal/repositories"
	"rihla/pkg/utils"
)

type FeedbackServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req request_models.CreateFeedbackRequest) (*response_models.FeedbackResponse, error)
	ListByItinerary(ctx context.Context, itineraryID string) ([]response_models.FeedbackResponse, error)
}

type FeedbackService struct {
	feedbackRepo  repositories.FeedbackRepository
	itineraryRepo repositories.ItineraryRepository
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepository, itineraryRepo repositories.ItineraryRepository) FeedbackServiceInterface {
	return &FeedbackService{feedbackRepo: feedbackRepo, itineraryRepo: itineraryRepo}
}

func (s *FeedbackService) Create(ctx context.Context, userID uuid.UUID, req request_models.CreateFeedbackRequest) (*response_models.FeedbackResponse, error) {
	itinerary, err := s.itineraryRepo.GetItineraryByID(ctx, req.ItineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	feedback := &dbm.Feedback{
		ItineraryID: itinerary.ID,
		UserID:      userID,
		Rating:      req.Rating,
		Comments:    req.Comments,
		ImageURLs:   req.ImageURLs,
	}
	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		return nil, utils.ErrPersistenceWrite
	}
	return toFeedbackResponse(feedback), nil
}

func (s *FeedbackService) ListByItinerary(ctx context.Context, itineraryID string) ([]response_models.FeedbackResponse, error) {
	feedbacks, err := s.feedbackRepo.ListByItineraryID(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	responses := make([]response_models.FeedbackResponse, 0, len(feedbacks))
	for i := range feedbacks {
		responses = append(responses, *toFeedbackResponse(&feedbacks[i]))
	}
	return responses, nil
}

func toFeedbackResponse(feedback *dbm.Feedback) *response_models.FeedbackResponse {
	return &response_models.FeedbackResponse{
		ID:        feedback.ID.String(),
		Rating:    feedback.Rating,
		Comments:  feedback.Comments,
		ImageURLs: feedback.ImageURLs,
	}
}
