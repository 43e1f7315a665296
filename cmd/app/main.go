package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"rihla/cmd/fx/db_fx"
	"rihla/cmd/fx/feedback_fx"
	"rihla/cmd/fx/itinerary_fx"
	"rihla/cmd/fx/places_fx"
	"rihla/cmd/fx/planner_fx"
	"rihla/cmd/fx/preference_fx"
	"rihla/cmd/fx/recommend_fx"
	"rihla/internal/api/controllers"
	"rihla/internal/infra"
	"rihla/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		places_fx.Module,
		planner_fx.Module,
		itinerary_fx.Module,
		preference_fx.Module,
		recommend_fx.Module,
		feedback_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(infra.MigrateSchema),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	itineraryController *controllers.ItineraryController,
	preferenceController *controllers.PreferenceController,
	recommendController *controllers.RecommendController,
	feedbackController *controllers.FeedbackController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, plannerController, itineraryController, preferenceController, recommendController, feedbackController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	itineraryController *controllers.ItineraryController,
	preferenceController *controllers.PreferenceController,
	recommendController *controllers.RecommendController,
	feedbackController *controllers.FeedbackController) {

	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware())

	plannerGroup := api.Group("/planner")
	plannerGroup.POST("/generate", plannerController.GenerateHandler)
	plannerGroup.GET("/availability", plannerController.AvailabilityHandler)

	itineraryGroup := api.Group("/itineraries")
	itineraryGroup.POST("", itineraryController.CreateHandler)
	itineraryGroup.GET("", itineraryController.ListHandler)
	itineraryGroup.GET("/:id", itineraryController.DetailsHandler)
	itineraryGroup.DELETE("/:id", itineraryController.DeleteHandler)
	itineraryGroup.POST("/places/toggle", itineraryController.TogglePlaceHandler)

	preferenceGroup := api.Group("/preferences")
	preferenceGroup.POST("", preferenceController.CreateHandler)
	preferenceGroup.GET("/latest", preferenceController.LatestHandler)

	api.POST("/recommend", recommendController.RecommendHandler)
	api.POST("/catalog", recommendController.AddCatalogPlaceHandler)

	feedbackGroup := api.Group("/feedback")
	feedbackGroup.POST("", feedbackController.CreateHandler)
	feedbackGroup.GET("/:itinerary_id", feedbackController.ListHandler)
}
