package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridebook/internal/services"
)

type PassengerHandler struct {
	passengerService *services.PassengerService
}

func NewPassengerHandler(passengerService *services.PassengerService) *PassengerHandler {
	return &PassengerHandler{passengerService: passengerService}
}

// Create handles POST /passengers
func (h *PassengerHandler) Create(c *gin.Context) {
	var req services.CreatePassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passenger, err := h.passengerService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, passenger)
}

// List handles GET /passengers
func (h *PassengerHandler) List(c *gin.Context) {
	passengers := h.passengerService.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"count":      len(passengers),
		"passengers": passengers,
	})
}

// Get handles GET /passengers/:id
func (h *PassengerHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	passenger, err := h.passengerService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, passenger)
}

// Update handles PATCH /passengers/:id
func (h *PassengerHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req services.UpdatePassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passenger, err := h.passengerService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, passenger)
}

// Delete handles DELETE /passengers/:id
func (h *PassengerHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.passengerService.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
