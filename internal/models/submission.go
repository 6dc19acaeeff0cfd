package models

import (
	"time"
)

type Submission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title     string    `gorm:"not null" json:"title"`
	URL       string    `json:"url"` // Optional
	Content   string    `gorm:"type:text" json:"content"`
	Score     int       `gorm:"default:0" json:"score"` // Denormalized; written only through the score aggregator
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Filled on detail queries, not stored
	CommentCount int `gorm:"-" json:"comment_count"`
}

func (s Submission) ItemID() uint      { return s.ID }
func (s Submission) AuthorID() uint    { return s.UserID }
func (s Submission) CurrentScore() int { return s.Score }
