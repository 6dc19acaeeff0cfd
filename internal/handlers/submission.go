package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"driftboard/internal/db"
	"driftboard/internal/models"
	"driftboard/internal/utils"
)

type SubmissionHandler struct{}

func NewSubmissionHandler() *SubmissionHandler {
	return &SubmissionHandler{}
}

// fillCommentCounts batch-fills the comment count for a page of submissions
func fillCommentCounts(submissions []models.Submission) {
	if len(submissions) == 0 {
		return
	}

	ids := make([]uint, len(submissions))
	for i, s := range submissions {
		ids[i] = s.ID
	}

	type countResult struct {
		SubmissionID uint
		Count        int
	}
	var results []countResult
	db.DB.Model(&models.Comment{}).
		Select("submission_id, COUNT(*) as count").
		Where("submission_id IN ?", ids).
		Group("submission_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.SubmissionID] = r.Count
	}

	for i := range submissions {
		submissions[i].CommentCount = countMap[submissions[i].ID]
	}
}

// List serves submissions ordered by score, then recency
func (h *SubmissionHandler) List(c *gin.Context) {
	var submissions []models.Submission
	db.DB.Preload("User").
		Order("score DESC, created_at DESC").
		Limit(50).
		Find(&submissions)

	fillCommentCounts(submissions)

	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

// Detail serves one submission with its comments
func (h *SubmissionHandler) Detail(c *gin.Context) {
	id := utils.StringToInt(c.Param("id"))

	var submission models.Submission
	if err := db.DB.Preload("User").First(&submission, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
		return
	}

	var comments []models.Comment
	db.DB.Preload("User").
		Where("submission_id = ?", submission.ID).
		Order("created_at ASC").
		Find(&comments)

	submission.CommentCount = len(comments)

	c.JSON(http.StatusOK, gin.H{
		"submission": submission,
		"comments":   comments,
	})
}

// Create handles a new submission
func (h *SubmissionHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "login required"})
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	url := strings.TrimSpace(c.PostForm("url"))
	content := c.PostForm("content")

	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	submission := models.Submission{
		UserID:  user.ID,
		Title:   title,
		URL:     url,
		Content: content,
	}
	if err := db.DB.Create(&submission).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": submission.ID})
}
