package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/dtos"
	"github.com/jobflix/jobflix-backend/internal/middleware"
	"github.com/jobflix/jobflix-backend/internal/models"
	"github.com/jobflix/jobflix-backend/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps}
}

// POST /applications
func (h *ApplicationHandler) CreateDraft(c *gin.Context) {
	var req dtos.DraftCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindError(c, err)
		return
	}
	userID, _ := middleware.CurrentUser(c)
	jobID := uuid.MustParse(req.JobID)
	draft, err := h.Applications.CreateDraft(c.Request.Context(), userID, jobID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, draft)
}

// PUT /applications/:id/answers
func (h *ApplicationHandler) SaveScreeningAnswers(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, apperr.Validation(apperr.CodeValidation, "invalid application id"))
		return
	}
	var req dtos.ScreeningAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindError(c, err)
		return
	}
	userID, _ := middleware.CurrentUser(c)
	app, err := h.Applications.RecordScreeningAnswers(c.Request.Context(), userID, draftID, req.Answers)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, app)
}

// PUT /applications/:id/cover-letter
func (h *ApplicationHandler) SetCoverLetter(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, apperr.Validation(apperr.CodeValidation, "invalid application id"))
		return
	}
	var req dtos.CoverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindError(c, err)
		return
	}
	userID, _ := middleware.CurrentUser(c)
	app, err := h.Applications.SetCoverLetter(c.Request.Context(), userID, draftID, req.CoverLetter)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, app)
}

// POST /applications/:id/resume (multipart, field "file")
func (h *ApplicationHandler) UploadResume(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, apperr.Validation(apperr.CodeValidation, "invalid application id"))
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, apperr.Validation(apperr.CodeValidation, "missing file field"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, err)
		return
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		RespondError(c, err)
		return
	}

	userID, _ := middleware.CurrentUser(c)
	app, err := h.Applications.AttachResume(c.Request.Context(), userID, draftID, fileHeader.Filename, content)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, app)
}

// POST /applications/:id/submit
func (h *ApplicationHandler) Submit(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, apperr.Validation(apperr.CodeValidation, "invalid application id"))
		return
	}
	userID, _ := middleware.CurrentUser(c)
	app, err := h.Applications.Submit(c.Request.Context(), userID, draftID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, app)
}

// POST /applications/:id/transition
func (h *ApplicationHandler) Transition(c *gin.Context) {
	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, apperr.Validation(apperr.CodeValidation, "invalid application id"))
		return
	}
	var req dtos.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindError(c, err)
		return
	}
	userID, role := middleware.CurrentUser(c)
	app, err := h.Applications.Transition(c.Request.Context(), appID,
		models.ApplicationStatus(req.Status), userID, role)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, app)
}

// GET /applications
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)
	apps, err := h.Applications.ListForUser(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"applications": apps})
}

// GET /applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, apperr.Validation(apperr.CodeValidation, "invalid application id"))
		return
	}
	userID, role := middleware.CurrentUser(c)
	app, err := h.Applications.GetByID(c.Request.Context(), userID, role, appID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, app)
}

// GET /applications/:id/timeline
func (h *ApplicationHandler) Timeline(c *gin.Context) {
	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, apperr.Validation(apperr.CodeValidation, "invalid application id"))
		return
	}
	userID, role := middleware.CurrentUser(c)
	if _, err := h.Applications.GetByID(c.Request.Context(), userID, role, appID); err != nil {
		RespondError(c, err)
		return
	}
	events, err := h.Applications.Events(c.Request.Context(), appID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"events": events})
}
