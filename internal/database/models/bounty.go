package models

import (
	"time"

	"github.com/google/uuid"
)

// Bounty is reward metadata attached to an idea
type Bounty struct {
	BaseModel
	IdeaID           uuid.UUID  `json:"idea_id" gorm:"type:uuid;not null;index"`
	Title            string     `json:"title" gorm:"size:200"`
	IsMonetary       bool       `json:"is_monetary" gorm:"not null;default:false"`
	IsExpensed       bool       `json:"is_expensed" gorm:"not null;default:false"`
	Amount           float64    `json:"amount" gorm:"type:numeric(12,2);not null;default:0"`
	RequiresApproval bool       `json:"requires_approval" gorm:"not null;default:false"`
	IsApproved       *bool      `json:"is_approved"`
	ApprovedBy       string     `json:"approved_by,omitempty" gorm:"size:255"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	CreatedBy        string     `json:"created_by" gorm:"size:255;not null"`
}

// TableName returns the table name for Bounty
func (Bounty) TableName() string {
	return "bounties"
}

// IsPending reports whether the bounty still waits for an approver
func (b *Bounty) IsPending() bool {
	return b.RequiresApproval && b.IsApproved == nil
}
