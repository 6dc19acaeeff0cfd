// Package content resolves (kind, id) target references to concrete
// submissions or comments, so voting and commenting never couple to the
// concrete storage types.
package content

import (
	"errors"
)

// Kind tags the two content variants a vote or comment can target.
type Kind string

const (
	KindSubmission Kind = "submission"
	KindComment    Kind = "comment"
)

var (
	// ErrInvalidTarget indicates the target kind is not one of the recognized tags
	ErrInvalidTarget = errors.New("invalid target kind")

	// ErrNotFound indicates the kind is recognized but no item exists with that id
	ErrNotFound = errors.New("content item not found")
)

// Item is the view of a content item the voting core needs: identity, author
// and the current denormalized score.
type Item interface {
	ItemID() uint
	AuthorID() uint
	CurrentScore() int
}
