package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/dtos"
	"github.com/jobflix/jobflix-backend/internal/middleware"
	"github.com/jobflix/jobflix-backend/internal/services"
)

type NotificationHandler struct {
	Notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{Notifications: notifications}
}

// GET /notifications
func (h *NotificationHandler) List(c *gin.Context) {
	var filters dtos.NotificationFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		RespondBindError(c, err)
		return
	}
	userID, _ := middleware.CurrentUser(c)
	notifications, err := h.Notifications.List(c.Request.Context(), userID, filters)
	if err != nil {
		RespondError(c, err)
		return
	}
	unread, err := h.Notifications.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"notifications": notifications, "unread": unread})
}

// POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, apperr.Validation(apperr.CodeValidation, "invalid notification id"))
		return
	}
	userID, _ := middleware.CurrentUser(c)
	n, err := h.Notifications.MarkRead(c.Request.Context(), userID, id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, n)
}

// POST /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)
	updated, err := h.Notifications.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"updated": updated})
}
