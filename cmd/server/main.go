package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ridebook/internal/api"
	"ridebook/internal/api/handlers"
	"ridebook/internal/collection"
	"ridebook/internal/config"
	"ridebook/internal/services"
	"ridebook/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Initialize collections — one independent collection per entity type
	drivers := collection.NewDriverCollection(cfg.Registry.DriverListName)
	passengers := collection.NewPassengerCollection(cfg.Registry.PassengerListName)
	rides := collection.NewRideCollection(cfg.Registry.RideListName)

	// Initialize services
	driverService := services.NewDriverService(drivers, log)
	passengerService := services.NewPassengerService(passengers, log)
	rideService := services.NewRideService(rides, log)

	// Initialize handlers
	driverHandler := handlers.NewDriverHandler(driverService)
	passengerHandler := handlers.NewPassengerHandler(passengerService)
	rideHandler := handlers.NewRideHandler(rideService)
	countsHandler := handlers.NewCountsHandler(driverService, passengerService, rideService)

	// Setup router
	router := api.NewRouter(driverHandler, passengerHandler, rideHandler, countsHandler, log)

	engine := gin.New()
	engine.Use(gin.Recovery())
	router.Setup(engine)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Info("starting ridebook server", zap.String("addr", cfg.Server.Port))
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
