package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/delivery"
	"github.com/jobflix/jobflix-backend/internal/dtos"
	"github.com/jobflix/jobflix-backend/internal/logger"
	"github.com/jobflix/jobflix-backend/internal/models"
)

// NotificationService persists notification rows and fans them out to the
// delivery collaborators. Delivery failures are logged and dropped; they
// never fail the operation that triggered the notification.
type NotificationService struct {
	DB      *gorm.DB
	log     *logger.Logger
	senders []delivery.Sender
}

func NewNotificationService(db *gorm.DB, log *logger.Logger, senders ...delivery.Sender) *NotificationService {
	return &NotificationService{
		DB:      db,
		log:     log.With("service", "NotificationService"),
		senders: senders,
	}
}

func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, typ models.NotificationType,
	title, message, url string, metadata map[string]any) (*models.Notification, error) {

	n := &models.Notification{
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Message: message,
		URL:     url,
	}
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return nil, err
		}
		n.Metadata = raw
	}
	if err := s.DB.WithContext(ctx).Create(n).Error; err != nil {
		return nil, err
	}

	s.deliver(ctx, n)
	return n, nil
}

func (s *NotificationService) deliver(ctx context.Context, n *models.Notification) {
	if len(s.senders) == 0 {
		return
	}
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, "id = ?", n.UserID).Error; err != nil {
		s.log.Warn("delivery skipped: recipient lookup failed", "user_id", n.UserID, "error", err)
		return
	}
	payload := delivery.Payload{
		To:      user.Email,
		Title:   n.Title,
		Message: n.Message,
		URL:     n.URL,
	}
	for _, sender := range s.senders {
		if err := sender.Send(ctx, payload); err != nil {
			s.log.Warn("notification delivery failed",
				"channel", sender.Channel(), "notification_id", n.ID, "error", err)
		}
	}
}

func (s *NotificationService) List(ctx context.Context, userID uuid.UUID, filters dtos.NotificationFilters) ([]models.Notification, error) {
	q := s.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if filters.Type != "" {
		q = q.Where("type = ?", filters.Type)
	}
	if filters.UnreadOnly {
		q = q.Where("is_read = ?", false)
	}
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 20
	}
	if filters.Page <= 0 {
		filters.Page = 1
	}
	var notifications []models.Notification
	err := q.Limit(filters.Limit).Offset((filters.Page - 1) * filters.Limit).Find(&notifications).Error
	return notifications, err
}

// MarkRead flips one notification owned by the user. Rows belonging to
// other users are invisible here, not merely rejected.
func (s *NotificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) (*models.Notification, error) {
	var n models.Notification
	if err := s.DB.WithContext(ctx).First(&n, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound(apperr.CodeNotFound, "notification %s not found", id)
		}
		return nil, err
	}
	if n.IsRead {
		return &n, nil
	}
	if err := s.DB.WithContext(ctx).Model(&n).Update("is_read", true).Error; err != nil {
		return nil, err
	}
	n.IsRead = true
	return &n, nil
}

// MarkAllRead returns how many rows were flipped.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := s.DB.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
