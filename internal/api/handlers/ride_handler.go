package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridebook/internal/services"
)

type RideHandler struct {
	rideService *services.RideService
}

func NewRideHandler(rideService *services.RideService) *RideHandler {
	return &RideHandler{rideService: rideService}
}

// Create handles POST /rides
func (h *RideHandler) Create(c *gin.Context) {
	var req services.CreateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ride, err := h.rideService.Open(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ride)
}

// List handles GET /rides
func (h *RideHandler) List(c *gin.Context) {
	rides := h.rideService.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"count": len(rides),
		"rides": rides,
	})
}

// Get handles GET /rides/:id
func (h *RideHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ride, err := h.rideService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ride)
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus handles PATCH /rides/:id/status
func (h *RideHandler) SetStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ride, err := h.rideService.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ride)
}

type AssignRequest struct {
	DriverID int `json:"driver_id" binding:"required"`
}

// Assign handles PATCH /rides/:id/assign
func (h *RideHandler) Assign(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ride, err := h.rideService.Assign(c.Request.Context(), id, req.DriverID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ride)
}

// Delete handles DELETE /rides/:id
func (h *RideHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.rideService.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
