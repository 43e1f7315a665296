package recommend_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"rihla/internal/api/controllers"
	"rihla/internal/repositories"
	"rihla/internal/services"
)

var Module = fx.Provide(
	provideCatalogRepo, provideRecommendService, provideRecommendController,
)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}

func provideRecommendService(catalogRepo repositories.CatalogRepository) services.RecommendServiceInterface {
	return services.NewRecommendService(catalogRepo)
}

func provideRecommendController(recommendService services.RecommendServiceInterface) *controllers.RecommendController {
	return controllers.NewRecommendController(recommendService)
}
