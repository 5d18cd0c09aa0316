package models

import (
	"time"
)

// Idea is a posted work item moving through open -> claimed -> complete
type Idea struct {
	BaseModel
	Title              string       `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Description        string       `json:"description" gorm:"type:text"`
	Team               string       `json:"team" gorm:"size:100;not null;index" validate:"required"`
	SubmitterEmail     string       `json:"submitter_email" gorm:"size:255;not null;index" validate:"required,email"`
	Size               IdeaSize     `json:"size" gorm:"type:varchar(20);not null;default:'medium'"`
	Priority           IdeaPriority `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	Status             IdeaStatus   `json:"status" gorm:"type:varchar(20);not null;default:'open';index"`
	SubStatus          SubStatus    `json:"sub_status" gorm:"type:varchar(30);not null;default:'none'"`
	ProgressPercentage int          `json:"progress_percentage" gorm:"not null;default:0;check:progress_percentage_range,progress_percentage BETWEEN 0 AND 100"`
	BlockedReason      string       `json:"blocked_reason" gorm:"type:text"`
	SubStatusUpdatedAt *time.Time   `json:"sub_status_updated_at"`
	SubStatusUpdatedBy string       `json:"sub_status_updated_by" gorm:"size:255"`
	ClaimedBy          string       `json:"claimed_by,omitempty" gorm:"size:255;index"`
	CompletedAt        *time.Time   `json:"completed_at,omitempty"`

	// Relationships
	Claims         []Claim         `json:"claims,omitempty" gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE"`
	ClaimApprovals []ClaimApproval `json:"claim_approvals,omitempty" gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE"`
	Bounties       []Bounty        `json:"bounties,omitempty" gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE"`
	History        []StatusHistory `json:"history,omitempty" gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE"`
	Activities     []IdeaActivity  `json:"activities,omitempty" gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Idea
func (Idea) TableName() string {
	return "ideas"
}
