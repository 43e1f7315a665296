package planner_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"rihla/internal/api/controllers"
	"rihla/internal/repositories"
	"rihla/internal/services"
	"rihla/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerationClient,
	provideItineraryRepo,
	providePromptBuilder,
	provideMatcher,
	providePlannerService,
	providePlannerController,
)

// GenerationConfig holds configuration for generation clients
type GenerationConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideGenerationClient creates a generation client based on environment variables
func ProvideGenerationClient() (utils.GenerationClientInterface, error) {
	config := getGenerationConfig()

	log.Printf("Initializing %s generation client with model: %s", config.Provider, config.Model)

	return utils.NewGenerationClient(config.Provider, config.APIKey, config.Model)
}

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func providePromptBuilder() services.PromptBuilderInterface {
	return services.NewPromptBuilder()
}

func provideMatcher() services.MatcherServiceInterface {
	return services.NewMatcherService()
}

func providePlannerService(
	preferenceRepo repositories.PreferenceRepository,
	itineraryRepo repositories.ItineraryRepository,
	placesService services.PlacesServiceInterface,
	promptBuilder services.PromptBuilderInterface,
	matcher services.MatcherServiceInterface,
	generation utils.GenerationClientInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(
		preferenceRepo,
		itineraryRepo,
		placesService,
		promptBuilder,
		matcher,
		generation,
	)
}

func providePlannerController(plannerService services.PlannerServiceInterface) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService)
}

// getGenerationConfig reads configuration from environment variables
func getGenerationConfig() GenerationConfig {
	provider := getEnvWithDefault("GENERATION_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.0-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return GenerationConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
