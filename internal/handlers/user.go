package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"driftboard/internal/db"
	"driftboard/internal/models"
	"driftboard/internal/utils"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile serves a user's public profile: identity, karma and recent
// submissions.
func (h *UserHandler) Profile(c *gin.Context) {
	id := utils.StringToInt(c.Param("id"))

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	var submissions []models.Submission
	db.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(20).
		Find(&submissions)

	c.JSON(http.StatusOK, gin.H{
		"id":          user.ID,
		"username":    user.Username,
		"karma":       user.Karma,
		"created_at":  user.CreatedAt,
		"submissions": submissions,
	})
}

// KarmaLogs serves the caller's own karma history
func (h *UserHandler) KarmaLogs(c *gin.Context) {
	user := CurrentUser(c)

	var logs []models.KarmaLog
	db.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(50).
		Find(&logs)

	c.JSON(http.StatusOK, gin.H{"karma": user.Karma, "logs": logs})
}
