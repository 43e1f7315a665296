package preference_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"rihla/internal/api/controllers"
	"rihla/internal/repositories"
	"rihla/internal/services"
)

var Module = fx.Provide(
	providePreferenceRepo, providePreferenceService, providePreferenceController,
)

func providePreferenceRepo(db *gorm.DB) repositories.PreferenceRepository {
	return repositories.NewPreferenceRepository(db)
}

func providePreferenceService(preferenceRepo repositories.PreferenceRepository) services.PreferenceServiceInterface {
	return services.NewPreferenceService(preferenceRepo)
}

func providePreferenceController(preferenceService services.PreferenceServiceInterface) *controllers.PreferenceController {
	return controllers.NewPreferenceController(preferenceService)
}
