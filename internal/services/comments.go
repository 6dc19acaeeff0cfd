package services

import (
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"driftboard/internal/content"
	"driftboard/internal/models"
	"driftboard/internal/voting"
)

// ErrEmptyContent indicates the comment body is blank
var ErrEmptyContent = errors.New("comment body is empty")

// CommentService creates comments under a submission or another comment. The
// parent is named the same way vote targets are, as a (kind, id) pair resolved
// through the content registry.
type CommentService struct {
	db       *gorm.DB
	registry *content.Registry
}

func NewCommentService(db *gorm.DB, registry *content.Registry) *CommentService {
	return &CommentService{db: db, registry: registry}
}

// Post creates a new comment owned by author under the given parent. Replies
// to a comment keep a back-reference to it and inherit its submission, so
// every comment knows its thread.
func (s *CommentService) Post(authorID uint, parentKind, parentID, body string) (*models.Comment, error) {
	var author models.User
	if err := s.db.First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, voting.ErrUnauthenticated
		}
		return nil, err
	}

	kind, err := s.registry.ParseKind(parentKind)
	if err != nil {
		return nil, err
	}

	id, err := strconv.Atoi(parentID)
	if err != nil || id <= 0 {
		return nil, content.ErrNotFound
	}

	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyContent
	}

	var comment models.Comment
	err = s.db.Transaction(func(tx *gorm.DB) error {
		parent, err := s.registry.Resolve(tx, kind, uint(id))
		if err != nil {
			return err
		}

		comment = models.Comment{
			UserID:  author.ID,
			Content: body,
			Score:   0,
		}
		if kind == content.KindComment {
			var parentComment models.Comment
			if err := tx.First(&parentComment, uint(id)).Error; err != nil {
				return err
			}
			comment.SubmissionID = parentComment.SubmissionID
			parentCommentID := parentComment.ID
			comment.ParentID = &parentCommentID
		} else {
			comment.SubmissionID = parent.ItemID()
		}

		if err := tx.Create(&comment).Error; err != nil {
			return err
		}

		// Notify the parent's author, unless they are replying to themselves
		if parent.AuthorID() != author.ID {
			notification := models.Notification{
				UserID:    parent.AuthorID(),
				ActorID:   &author.ID,
				CommentID: comment.ID,
			}
			if err := tx.Create(&notification).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
