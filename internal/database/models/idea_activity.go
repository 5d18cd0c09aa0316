package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// IdeaActivity is a human readable audit trail entry for the mixed activity feed
type IdeaActivity struct {
	AppendOnlyModel
	IdeaID       uuid.UUID      `json:"idea_id" gorm:"type:uuid;not null;index"`
	ActorEmail   string         `json:"actor_email" gorm:"size:255;not null"`
	ActivityType ActivityType   `json:"activity_type" gorm:"type:varchar(30);not null"`
	Message      string         `json:"message" gorm:"type:text"`
	Metadata     datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for IdeaActivity
func (IdeaActivity) TableName() string {
	return "idea_activities"
}
