package models

import (
	"github.com/google/uuid"
)

// Claim is the binding record that a claimer is working an idea.
// The unique index on IdeaID keeps a single claim per idea at the store level.
type Claim struct {
	BaseModel
	IdeaID          uuid.UUID `json:"idea_id" gorm:"type:uuid;not null;uniqueIndex"`
	ClaimerEmail    string    `json:"claimer_email" gorm:"size:255;not null;index"`
	ClaimApprovalID uuid.UUID `json:"claim_approval_id" gorm:"type:uuid;not null"`
}

// TableName returns the table name for Claim
func (Claim) TableName() string {
	return "claims"
}
