package voting

import "errors"

var (
	// ErrInvalidVoteValue indicates the vote value is missing, non-numeric or not -1/1
	ErrInvalidVoteValue = errors.New("invalid vote value: must be -1 or 1")

	// ErrUnauthenticated indicates the caller identity does not resolve to a known user
	ErrUnauthenticated = errors.New("caller is not a known user")
)
