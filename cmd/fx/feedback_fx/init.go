package feedback_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"rihla/internal/api/controllers"
	"rihla/internal/repositories"
	"rihla/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService, provideFeedbackController,
)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepository {
	return repositories.NewFeedbackRepository(db)
}

func provideFeedbackService(
	feedbackRepo repositories.FeedbackRepository,
	itineraryRepo repositories.ItineraryRepository,
) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo, itineraryRepo)
}

func provideFeedbackController(feedbackService services.FeedbackServiceInterface) *controllers.FeedbackController {
	return controllers.NewFeedbackController(feedbackService)
}
