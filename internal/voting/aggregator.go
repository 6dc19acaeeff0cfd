package voting

import (
	"gorm.io/gorm"

	"driftboard/internal/content"
	"driftboard/internal/models"
)

// ScoreAggregator maintains the denormalized score counter on content items.
// It is the only writer of the score columns; deltas are applied as in-database
// increments so concurrent voters on the same item never lose updates.
type ScoreAggregator struct{}

func NewScoreAggregator() *ScoreAggregator {
	return &ScoreAggregator{}
}

// ApplyDelta adds delta to the target's score within the caller's transaction.
func (a *ScoreAggregator) ApplyDelta(tx *gorm.DB, kind content.Kind, id uint, delta int) error {
	var model interface{}
	switch kind {
	case content.KindSubmission:
		model = &models.Submission{}
	case content.KindComment:
		model = &models.Comment{}
	default:
		return content.ErrInvalidTarget
	}

	res := tx.Model(model).Where("id = ?", id).
		UpdateColumn("score", gorm.Expr("score + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return content.ErrNotFound
	}
	return nil
}
