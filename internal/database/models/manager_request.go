package models

import (
	"time"
)

// ManagerRequest asks an admin to make the requester the manager of a team
type ManagerRequest struct {
	BaseModel
	RequesterEmail string               `json:"requester_email" gorm:"size:255;not null;index"`
	Team           string               `json:"team" gorm:"size:100;not null;index"`
	Status         ManagerRequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	DecidedBy      string               `json:"decided_by,omitempty" gorm:"size:255"`
	DecidedAt      *time.Time           `json:"decided_at,omitempty"`
}

// TableName returns the table name for ManagerRequest
func (ManagerRequest) TableName() string {
	return "manager_requests"
}
