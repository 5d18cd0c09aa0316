package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification is an addressed, typed message created as a side effect of a transition
type Notification struct {
	BaseModel
	RecipientEmail   string           `json:"recipient_email" gorm:"size:255;not null;index:idx_notifications_recipient_read"`
	Type             NotificationType `json:"type" gorm:"type:varchar(40);not null"`
	Title            string           `json:"title" gorm:"size:255;not null"`
	Body             string           `json:"body" gorm:"type:text"`
	IdeaID           *uuid.UUID       `json:"idea_id,omitempty" gorm:"type:uuid;index"`
	RelatedUserEmail string           `json:"related_user_email,omitempty" gorm:"size:255"`
	IsRead           bool             `json:"is_read" gorm:"not null;default:false;index:idx_notifications_recipient_read"`
	ReadAt           *time.Time       `json:"read_at,omitempty"`
	Data             datatypes.JSON   `json:"data,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
