package voting

import (
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"driftboard/internal/content"
	"driftboard/internal/models"
)

// A storage-level uniqueness conflict means another writer won the race for
// this (user, target) pair; the whole check-then-act sequence is re-run since
// the existing-vote read is stale.
const maxSubmitAttempts = 3

// Ledger owns vote records and implements the cast/cancel/change state
// machine. Each submit serializes per (user, target) key, and the vote write
// plus the score delta commit as one transaction.
type Ledger struct {
	db       *gorm.DB
	registry *content.Registry
	agg      *ScoreAggregator

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLedger(db *gorm.DB, registry *content.Registry) *Ledger {
	return &Ledger{
		db:       db,
		registry: registry,
		agg:      NewScoreAggregator(),
		locks:    make(map[string]*sync.Mutex),
	}
}

func (l *Ledger) lockKey(userID uint, kind content.Kind, targetID uint) *sync.Mutex {
	key := fmt.Sprintf("%d/%s/%d", userID, kind, targetID)
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[key] = lock
	}
	return lock
}

// SubmitVote applies one vote request against the existing vote, if any, for
// this (user, target) pair:
//
//	no existing vote        -> create, delta = value, outcome cast
//	existing value == value -> delete, delta = -existing, outcome cancelled
//	existing value != value -> update, delta = value - existing, outcome changed
//
// The resulting delta is handed to the score aggregator inside the same
// transaction, so a vote row and its score adjustment land together or not at
// all.
func (l *Ledger) SubmitVote(userID uint, kind content.Kind, targetID uint, value int) (*Result, error) {
	if value != -1 && value != 1 {
		return nil, ErrInvalidVoteValue
	}

	lock := l.lockKey(userID, kind, targetID)
	lock.Lock()
	defer lock.Unlock()

	var result *Result
	var err error
	for attempt := 0; attempt < maxSubmitAttempts; attempt++ {
		result, err = l.submitOnce(userID, kind, targetID, value)
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
	}
	return result, err
}

func (l *Ledger) submitOnce(userID uint, kind content.Kind, targetID uint, value int) (*Result, error) {
	var result *Result

	err := l.db.Transaction(func(tx *gorm.DB) error {
		target, err := l.registry.Resolve(tx, kind, targetID)
		if err != nil {
			return err
		}

		var existing models.Vote
		err = tx.Where("user_id = ? AND target_kind = ? AND target_id = ?",
			userID, string(kind), targetID).First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			vote := models.Vote{
				UserID:     userID,
				TargetKind: string(kind),
				TargetID:   targetID,
				Value:      value,
			}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			result = &Result{Delta: value, Outcome: OutcomeCast, TargetAuthor: target.AuthorID()}

		case err != nil:
			return err

		case existing.Value == value:
			// Re-submitting the same value cancels the vote
			if err := tx.Delete(&models.Vote{}, existing.ID).Error; err != nil {
				return err
			}
			result = &Result{Delta: -existing.Value, Outcome: OutcomeCancelled, TargetAuthor: target.AuthorID()}

		default:
			if err := tx.Model(&models.Vote{}).Where("id = ?", existing.ID).
				Update("value", value).Error; err != nil {
				return err
			}
			result = &Result{Delta: value - existing.Value, Outcome: OutcomeChanged, TargetAuthor: target.AuthorID()}
		}

		return l.agg.ApplyDelta(tx, kind, targetID, result.Delta)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
