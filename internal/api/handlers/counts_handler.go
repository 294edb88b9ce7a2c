package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridebook/internal/services"
)

// CountsHandler reports the size of each collection in one response — the
// HTTP equivalent of the shell's counts command.
type CountsHandler struct {
	driverService    *services.DriverService
	passengerService *services.PassengerService
	rideService      *services.RideService
}

func NewCountsHandler(
	driverService *services.DriverService,
	passengerService *services.PassengerService,
	rideService *services.RideService,
) *CountsHandler {
	return &CountsHandler{
		driverService:    driverService,
		passengerService: passengerService,
		rideService:      rideService,
	}
}

// Get handles GET /counts
func (h *CountsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"drivers":    h.driverService.Count(),
		"passengers": h.passengerService.Count(),
		"rides":      h.rideService.Count(),
	})
}
