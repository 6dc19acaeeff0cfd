package models

import (
	"time"
)

// Vote is one user's directional opinion on one content item. A value of 0 is
// never stored: cancelling a vote deletes the row.
type Vote struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_votes_user_target" json:"user_id"`
	TargetKind string    `gorm:"size:16;not null;uniqueIndex:idx_votes_user_target" json:"target_kind"`
	TargetID   uint      `gorm:"not null;uniqueIndex:idx_votes_user_target" json:"target_id"`
	Value      int       `gorm:"not null" json:"value"` // 1 or -1
	CreatedAt  time.Time `json:"created_at"`
}
