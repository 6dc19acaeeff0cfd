// Package voting implements the vote ledger, score aggregation and the service
// facade the request layer calls. The facade takes raw request-shaped values
// and translates them into ledger operations; everything it returns is a plain
// Result or one of the sentinel errors.
package voting

import (
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"driftboard/internal/content"
	"driftboard/internal/models"
)

type Service struct {
	db       *gorm.DB
	registry *content.Registry
	ledger   *Ledger
}

func NewService(db *gorm.DB, registry *content.Registry) *Service {
	return &Service{
		db:       db,
		registry: registry,
		ledger:   NewLedger(db, registry),
	}
}

// CastOrToggle is the single entry point for vote requests. callerID comes
// from the session layer; targetKind, targetID and rawValue arrive as the raw
// strings the request carried.
func (s *Service) CastOrToggle(callerID uint, targetKind, targetID, rawValue string) (*Result, error) {
	var user models.User
	if err := s.db.First(&user, callerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	value, err := strconv.Atoi(strings.TrimSpace(rawValue))
	if err != nil {
		return nil, ErrInvalidVoteValue
	}

	kind, err := s.registry.ParseKind(targetKind)
	if err != nil {
		return nil, err
	}

	id, err := strconv.Atoi(targetID)
	if err != nil || id <= 0 {
		return nil, content.ErrNotFound
	}

	return s.ledger.SubmitVote(user.ID, kind, uint(id), value)
}
