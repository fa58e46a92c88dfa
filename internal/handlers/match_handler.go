package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/middleware"
	"github.com/jobflix/jobflix-backend/internal/services"
)

type MatchHandler struct {
	Matcher *services.MatcherService
}

func NewMatchHandler(matcher *services.MatcherService) *MatchHandler {
	return &MatchHandler{Matcher: matcher}
}

// GET /jobs/:id/score
func (h *MatchHandler) ScoreJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, apperr.Validation(apperr.CodeValidation, "invalid job id"))
		return
	}
	userID, _ := middleware.CurrentUser(c)
	score, err := h.Matcher.ScoreJobForUser(c.Request.Context(), userID, jobID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"job_id": jobID, "score": score})
}

// GET /jobs/ranked
func (h *MatchHandler) RankedJobs(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)
	ranked, err := h.Matcher.RankJobs(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, ranked)
}
