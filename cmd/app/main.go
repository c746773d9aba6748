package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderplan/cmd/fx/ai_fx"
	"wanderplan/cmd/fx/controllers_fx"
	"wanderplan/cmd/fx/db_fx"
	"wanderplan/cmd/fx/itinerary_fx"
	"wanderplan/internal/api/controllers"
	"wanderplan/internal/infra"
	"wanderplan/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8000"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, itineraryController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	healthController *controllers.HealthController) {

	api := r.Group("/api")
	api.GET("/health", healthController.Health)
	api.GET("/db-check", healthController.DBCheck)

	itineraries := api.Group("/itineraries")
	itineraries.Use(middleware.IdentityMiddleware())
	itineraries.POST("/generate", itineraryController.GenerateItinerary)
	itineraries.GET("", itineraryController.GetItineraries)
	itineraries.GET("/:itineraryId", itineraryController.GetItineraryById)
	itineraries.DELETE("/:itineraryId", itineraryController.DeleteItinerary)
}
