package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jobflix/jobflix-backend/internal/dtos"
	"github.com/jobflix/jobflix-backend/internal/middleware"
	"github.com/jobflix/jobflix-backend/internal/services"
)

type ProfileHandler struct {
	Profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles}
}

// GET /profile
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)
	profile, err := h.Profiles.Get(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, profile)
}

// PUT /profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dtos.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindError(c, err)
		return
	}
	userID, _ := middleware.CurrentUser(c)
	profile, err := h.Profiles.Upsert(c.Request.Context(), userID, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, profile)
}
