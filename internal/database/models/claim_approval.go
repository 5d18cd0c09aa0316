package models

import (
	"time"

	"github.com/google/uuid"
)

// ClaimApproval is the two-party gate in front of a Claim
type ClaimApproval struct {
	BaseModel
	IdeaID       uuid.UUID `json:"idea_id" gorm:"type:uuid;not null;index:idx_claim_approvals_idea_claimer"`
	ClaimerEmail string    `json:"claimer_email" gorm:"size:255;not null;index:idx_claim_approvals_idea_claimer"`
	// ManagerEmail is empty when the claimer's team has no manager and the admin pool decides
	ManagerEmail string `json:"manager_email" gorm:"size:255;index"`

	OwnerDecision    ApprovalSlot `json:"owner_decision" gorm:"type:varchar(20);not null;default:'pending'"`
	OwnerDecidedAt   *time.Time   `json:"owner_decided_at"`
	OwnerDecidedBy   string       `json:"owner_decided_by" gorm:"size:255"`
	ManagerDecision  ApprovalSlot `json:"manager_decision" gorm:"type:varchar(20);not null;default:'pending'"`
	ManagerDecidedAt *time.Time   `json:"manager_decided_at"`
	ManagerDecidedBy string       `json:"manager_decided_by" gorm:"size:255"`

	Status     ClaimApprovalStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ResolvedAt *time.Time          `json:"resolved_at"`
}

// TableName returns the table name for ClaimApproval
func (ClaimApproval) TableName() string {
	return "claim_approvals"
}
