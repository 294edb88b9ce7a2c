package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridebook/internal/services"
)

type DriverHandler struct {
	driverService *services.DriverService
}

func NewDriverHandler(driverService *services.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

// Create handles POST /drivers
func (h *DriverHandler) Create(c *gin.Context) {
	var req services.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, err := h.driverService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, driver)
}

// List handles GET /drivers
func (h *DriverHandler) List(c *gin.Context) {
	drivers := h.driverService.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"count":   len(drivers),
		"drivers": drivers,
	})
}

// Get handles GET /drivers/:id
func (h *DriverHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	driver, err := h.driverService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, driver)
}

// Update handles PATCH /drivers/:id
func (h *DriverHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req services.UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, err := h.driverService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, driver)
}

// Delete handles DELETE /drivers/:id
func (h *DriverHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.driverService.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
