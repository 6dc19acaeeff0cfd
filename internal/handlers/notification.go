package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"driftboard/internal/db"
	"driftboard/internal/models"
	"driftboard/internal/utils"
)

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// List serves the caller's reply notifications, newest first
func (h *NotificationHandler) List(c *gin.Context) {
	user := CurrentUser(c)

	var notifications []models.Notification
	db.DB.Preload("Actor").Preload("Comment").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications)

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// Read marks one of the caller's notifications as read
func (h *NotificationHandler) Read(c *gin.Context) {
	user := CurrentUser(c)
	id := utils.StringToInt(c.Param("id"))

	var notification models.Notification
	if err := db.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&notification).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}

	notification.IsRead = true
	db.DB.Save(&notification)

	c.JSON(http.StatusOK, gin.H{"msg": "read"})
}
