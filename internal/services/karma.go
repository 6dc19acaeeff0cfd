package services

import (
	"gorm.io/gorm"

	"driftboard/internal/content"
	"driftboard/internal/models"
	"driftboard/internal/voting"
)

// Karma action constants
const (
	ActionSubmissionUpvoted   = "submission upvoted"
	ActionSubmissionDownvoted = "submission downvoted"
	ActionCommentUpvoted      = "comment upvoted"
	ActionCommentDownvoted    = "comment downvoted"
	ActionDownvoteCast        = "downvoted someone"
)

// Cost of casting a downvote, charged to the voter
const KarmaDownvotePenalty = -1

// AddKarma adjusts a user's karma balance and records the adjustment, both in
// one transaction.
func AddKarma(db *gorm.DB, userID uint, amount int, action string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		log := models.KarmaLog{
			UserID: userID,
			Amount: amount,
			Action: action,
		}
		if err := tx.Create(&log).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("karma", gorm.Expr("karma + ?", amount)).
			Error; err != nil {
			return err
		}

		return nil
	})
}

// ApplyVoteKarma translates a settled vote result into karma adjustments: the
// content author's karma follows the score delta (self-votes excluded), and a
// freshly cast downvote costs the voter one point. Karma is bookkeeping on top
// of the vote, deliberately outside the vote's own transaction.
func ApplyVoteKarma(db *gorm.DB, voterID uint, kind content.Kind, res *voting.Result) error {
	if res == nil || res.Delta == 0 {
		return nil
	}

	if res.TargetAuthor != 0 && res.TargetAuthor != voterID {
		action := karmaAction(kind, res.Delta)
		if err := AddKarma(db, res.TargetAuthor, res.Delta, action); err != nil {
			return err
		}
	}

	// Charge the voter when the operation lands on a downvote
	if res.Delta < 0 && res.Outcome != voting.OutcomeCancelled {
		if err := AddKarma(db, voterID, KarmaDownvotePenalty, ActionDownvoteCast); err != nil {
			return err
		}
	}

	return nil
}

func karmaAction(kind content.Kind, delta int) string {
	if kind == content.KindComment {
		if delta > 0 {
			return ActionCommentUpvoted
		}
		return ActionCommentDownvoted
	}
	if delta > 0 {
		return ActionSubmissionUpvoted
	}
	return ActionSubmissionDownvoted
}
