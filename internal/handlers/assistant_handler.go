package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/dtos"
	"github.com/jobflix/jobflix-backend/internal/services"
)

type AssistantHandler struct {
	Assistant *services.AssistantService
}

func NewAssistantHandler(assistant *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{Assistant: assistant}
}

// POST /assistant/ask
func (h *AssistantHandler) Ask(c *gin.Context) {
	if h.Assistant == nil {
		RespondError(c, &apperr.Error{
			Status: http.StatusServiceUnavailable,
			Code:   "ASSISTANT_UNAVAILABLE",
			Err:    errors.New("assistant is not configured"),
		})
		return
	}
	var req dtos.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindError(c, err)
		return
	}
	answer, err := h.Assistant.Ask(c.Request.Context(), req.Message)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"answer": answer})
}
