package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotifyJobMatch          NotificationType = "job_match"
	NotifyApplicationUpdate NotificationType = "application_update"
	NotifySystem            NotificationType = "system"
	NotifyReminder          NotificationType = "reminder"
)

// Notification is created by system-side triggers and mutated only by the
// owning user's read toggling.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Type    NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Title   string           `gorm:"not null" json:"title"`
	Message string           `gorm:"type:text" json:"message"`
	IsRead  bool             `gorm:"default:false" json:"is_read"`

	URL      string         `json:"url,omitempty"`
	Metadata datatypes.JSON `json:"metadata,omitempty"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
