package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/dtos"
	"github.com/jobflix/jobflix-backend/internal/middleware"
	"github.com/jobflix/jobflix-backend/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{JobService: jobs}
}

// POST /jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindError(c, err)
		return
	}
	userID, role := middleware.CurrentUser(c)
	job, err := h.JobService.Create(c.Request.Context(), userID, role, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, job)
}

// GET /jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	var filters dtos.JobFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		RespondBindError(c, err)
		return
	}
	jobs, err := h.JobService.List(c.Request.Context(), filters)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"jobs": jobs})
}

// GET /jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, apperr.Validation(apperr.CodeValidation, "invalid job id"))
		return
	}
	job, err := h.JobService.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, job)
}

// POST /jobs/:id/close
func (h *JobHandler) CloseJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, apperr.Validation(apperr.CodeValidation, "invalid job id"))
		return
	}
	userID, role := middleware.CurrentUser(c)
	job, err := h.JobService.Close(c.Request.Context(), userID, role, id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, job)
}
