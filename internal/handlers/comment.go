package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"driftboard/internal/services"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// Create posts a new comment under a submission or another comment
func (h *CommentHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "login required"})
		return
	}

	parentType := c.PostForm("parentType")
	parentID := c.PostForm("parentId")
	body := c.PostForm("commentContent")

	comment, err := h.comments.Post(user.ID, parentType, parentID, body)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg": "Your comment has been posted.",
		"id":  comment.ID,
	})
}
