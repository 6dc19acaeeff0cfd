package models

import (
	"time"
)

type Comment struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	SubmissionID uint       `gorm:"not null;index" json:"submission_id"`
	Submission   Submission `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"submission"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	User         User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	ParentID     *uint      `gorm:"index" json:"parent_id"` // Nil when the parent is the submission itself
	Parent       *Comment   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"parent"`
	Content      string     `gorm:"type:text;not null" json:"content"`
	Score        int        `gorm:"default:0" json:"score"` // Denormalized; written only through the score aggregator
	CreatedAt    time.Time  `json:"created_at"`
}

func (c Comment) ItemID() uint      { return c.ID }
func (c Comment) AuthorID() uint    { return c.UserID }
func (c Comment) CurrentScore() int { return c.Score }
