package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"driftboard/internal/content"
	"driftboard/internal/db"
	"driftboard/internal/services"
	"driftboard/internal/voting"
)

type VoteHandler struct {
	votes *voting.Service
}

func NewVoteHandler(votes *voting.Service) *VoteHandler {
	return &VoteHandler{votes: votes}
}

// Vote casts, cancels or changes the caller's vote on a submission or comment.
// The response carries the score delta so the client can adjust its displayed
// counter without re-querying.
func (h *VoteHandler) Vote(c *gin.Context) {
	var callerID uint
	if user := CurrentUser(c); user != nil {
		callerID = user.ID
	}

	what := c.PostForm("what")
	whatID := c.PostForm("what_id")
	voteValue := c.PostForm("vote_value")

	res, err := h.votes.CastOrToggle(callerID, what, whatID, voteValue)
	if err != nil {
		RespondError(c, err)
		return
	}

	// Karma bookkeeping happens off the request path
	go func() {
		_ = services.ApplyVoteKarma(db.DB, callerID, content.Kind(what), res)
	}()

	c.JSON(http.StatusOK, gin.H{
		"error":    nil,
		"voteDiff": res.Delta,
		"outcome":  res.Outcome,
	})
}
