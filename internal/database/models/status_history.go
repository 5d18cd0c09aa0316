package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusHistory is one append-only ledger row per status/sub-status transition
type StatusHistory struct {
	AppendOnlyModel
	IdeaID          uuid.UUID  `json:"idea_id" gorm:"type:uuid;not null;index"`
	FromStatus      IdeaStatus `json:"from_status" gorm:"type:varchar(20);not null"`
	ToStatus        IdeaStatus `json:"to_status" gorm:"type:varchar(20);not null"`
	FromSubStatus   SubStatus  `json:"from_sub_status" gorm:"type:varchar(30);not null"`
	ToSubStatus     SubStatus  `json:"to_sub_status" gorm:"type:varchar(30);not null"`
	ChangedBy       string     `json:"changed_by" gorm:"size:255;not null"`
	ChangedAt       time.Time  `json:"changed_at" gorm:"not null"`
	Comment         string     `json:"comment" gorm:"type:text"`
	DurationMinutes *int       `json:"duration_minutes"`
	// Sequence gives a stable append order even when ChangedAt collides
	Sequence int64 `json:"sequence" gorm:"autoIncrement;not null;uniqueIndex"`
}

// TableName returns the table name for StatusHistory
func (StatusHistory) TableName() string {
	return "status_history"
}
