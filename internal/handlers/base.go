package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"driftboard/internal/content"
	"driftboard/internal/middleware"
	"driftboard/internal/models"
	"driftboard/internal/services"
	"driftboard/internal/voting"
)

// CurrentUser returns the session user loaded by middleware, or nil
func CurrentUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}

// RespondError maps the core error taxonomy to status codes: invalid input is
// bad-request-class, an unknown caller is forbidden, a missing target is
// not-found. Anything else is a storage failure and stays opaque.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, voting.ErrUnauthenticated):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, content.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, content.ErrInvalidTarget),
		errors.Is(err, voting.ErrInvalidVoteValue),
		errors.Is(err, services.ErrEmptyContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
