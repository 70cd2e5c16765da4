package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"roadtrip/cmd/fx/db_fx"
	"roadtrip/cmd/fx/destinations_fx"
	"roadtrip/cmd/fx/maps_fx"
	"roadtrip/cmd/fx/narrative_fx"
	"roadtrip/cmd/fx/planner_fx"
	"roadtrip/cmd/fx/resolver_fx"
	"roadtrip/internal/api/controllers"
	"roadtrip/internal/infra"
	"roadtrip/internal/logger"
	"roadtrip/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found – relying on env vars")
	}
	logger.Setup()

	app := fx.New(
		db_fx.Module,
		destinations_fx.Module,
		maps_fx.Module,
		planner_fx.Module,
		narrative_fx.Module,
		resolver_fx.Module,

		fx.Provide(
			controllers.NewDestinationsController,
			controllers.NewStaysController,
			controllers.NewItineraryController,
			controllers.NewResolverController,
		),
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
					port = "8080"
				}
				logrus.Infof("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					logrus.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logrus.Info("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	destinationsController *controllers.DestinationsController,
	staysController *controllers.StaysController,
	itineraryController *controllers.ItineraryController,
	resolverController *controllers.ResolverController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, destinationsController, staysController, itineraryController, resolverController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	destinationsController *controllers.DestinationsController,
	staysController *controllers.StaysController,
	itineraryController *controllers.ItineraryController,
	resolverController *controllers.ResolverController) {

	destinations := r.Group("/destinations")
	destinations.POST("", destinationsController.CreateDestinationHandler)
	destinations.GET("", destinationsController.ListDestinationsHandler)
	destinations.GET("/:id", destinationsController.GetDestinationHandler)
	destinations.PUT("/:id", destinationsController.UpdateDestinationHandler)
	destinations.DELETE("/:id", destinationsController.DeleteDestinationHandler)

	r.GET("/stays", staysController.GetStaysHandler)
	r.GET("/itinerary", itineraryController.GetItineraryHandler)
	r.GET("/resolve-place", resolverController.ResolvePlaceHandler)
	r.GET("/resolve-link", resolverController.ResolveLinkHandler)
}
