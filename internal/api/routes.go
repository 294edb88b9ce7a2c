// Package api wires the gin engine: middleware, routes, handlers.
package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ridebook/internal/api/handlers"
	"ridebook/internal/api/middleware"
)

type Router struct {
	driverHandler    *handlers.DriverHandler
	passengerHandler *handlers.PassengerHandler
	rideHandler      *handlers.RideHandler
	countsHandler    *handlers.CountsHandler
	log              *zap.Logger
}

func NewRouter(
	driverHandler *handlers.DriverHandler,
	passengerHandler *handlers.PassengerHandler,
	rideHandler *handlers.RideHandler,
	countsHandler *handlers.CountsHandler,
	log *zap.Logger,
) *Router {
	return &Router{
		driverHandler:    driverHandler,
		passengerHandler: passengerHandler,
		rideHandler:      rideHandler,
		countsHandler:    countsHandler,
		log:              log,
	}
}

func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(r.log))

	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	engine.GET("/counts", r.countsHandler.Get)

	drivers := engine.Group("/drivers")
	{
		drivers.POST("", r.driverHandler.Create)
		drivers.GET("", r.driverHandler.List)
		drivers.GET("/:id", r.driverHandler.Get)
		drivers.PATCH("/:id", r.driverHandler.Update)
		drivers.DELETE("/:id", r.driverHandler.Delete)
	}

	passengers := engine.Group("/passengers")
	{
		passengers.POST("", r.passengerHandler.Create)
		passengers.GET("", r.passengerHandler.List)
		passengers.GET("/:id", r.passengerHandler.Get)
		passengers.PATCH("/:id", r.passengerHandler.Update)
		passengers.DELETE("/:id", r.passengerHandler.Delete)
	}

	rides := engine.Group("/rides")
	{
		rides.POST("", r.rideHandler.Create)
		rides.GET("", r.rideHandler.List)
		rides.GET("/:id", r.rideHandler.Get)
		rides.PATCH("/:id/status", r.rideHandler.SetStatus)
		rides.PATCH("/:id/assign", r.rideHandler.Assign)
		rides.DELETE("/:id", r.rideHandler.Delete)
	}
}
