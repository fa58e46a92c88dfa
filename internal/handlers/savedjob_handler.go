package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/dtos"
	"github.com/jobflix/jobflix-backend/internal/middleware"
	"github.com/jobflix/jobflix-backend/internal/services"
)

type SavedJobHandler struct {
	SavedJobs *services.SavedJobService
}

func NewSavedJobHandler(saved *services.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{SavedJobs: saved}
}

// POST /saved-jobs
func (h *SavedJobHandler) Save(c *gin.Context) {
	var req dtos.SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindError(c, err)
		return
	}
	userID, _ := middleware.CurrentUser(c)
	saved, err := h.SavedJobs.Save(c.Request.Context(), userID, uuid.MustParse(req.JobID), req.Notes, req.Tags)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, saved)
}

// DELETE /saved-jobs/:job_id
func (h *SavedJobHandler) Unsave(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		RespondError(c, apperr.Validation(apperr.CodeValidation, "invalid job id"))
		return
	}
	userID, _ := middleware.CurrentUser(c)
	if err := h.SavedJobs.Unsave(c.Request.Context(), userID, jobID); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(204)
}

// GET /saved-jobs
func (h *SavedJobHandler) List(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)
	saved, err := h.SavedJobs.List(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"saved_jobs": saved})
}
