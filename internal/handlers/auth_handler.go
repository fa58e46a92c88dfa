package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jobflix/jobflix-backend/internal/dtos"
	"github.com/jobflix/jobflix-backend/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindError(c, err)
		return
	}
	user, err := h.Auth.Register(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, user)
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindError(c, err)
		return
	}
	_, token, err := h.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, dtos.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.Auth.TokenTTL().Seconds()),
	})
}
