// Package handlers contains the gin handlers for the record keeper's HTTP
// surface. Handlers bind JSON, call a service, and map errors to statuses;
// all record semantics live below them.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ridebook/internal/collection"
	"ridebook/internal/domain/entities"
)

// respondError maps domain and collection errors onto HTTP statuses.
// Unrecognized errors become 500s.
func respondError(c *gin.Context, err error) {
	var verrs entities.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": verrs,
		})
		return
	}

	var iterr *entities.InvalidTransitionError
	if errors.As(err, &iterr) {
		c.JSON(http.StatusConflict, gin.H{
			"error": iterr.Error(),
			"from":  iterr.From,
			"to":    iterr.To,
		})
		return
	}

	switch {
	case errors.Is(err, collection.ErrDuplicateID):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, collection.ErrDriverNotFound),
		errors.Is(err, collection.ErrPassengerNotFound),
		errors.Is(err, collection.ErrRideNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// idParam parses the :id path segment. Records are keyed by integer ids.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}
