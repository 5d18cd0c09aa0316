package service

import (
	"idea-marketplace-backend/internal/database/models"
	apperrors "idea-marketplace-backend/internal/errors"
)

// Decision is an approver's verdict
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionDeny    Decision = "deny"
)

// Validate rejects anything but approve or deny
func (d Decision) Validate() error {
	if d != DecisionApprove && d != DecisionDeny {
		return apperrors.ErrInvalidDecision
	}
	return nil
}

// Slot maps the decision onto an approval slot value
func (d Decision) Slot() models.ApprovalSlot {
	if d == DecisionApprove {
		return models.ApprovalSlotApproved
	}
	return models.ApprovalSlotDenied
}

// ApproverRole names which slot of a claim approval is being decided
type ApproverRole string

const (
	ApproverRoleOwner   ApproverRole = "owner"
	ApproverRoleManager ApproverRole = "manager"
)

// Validate rejects unknown approver roles
func (r ApproverRole) Validate() error {
	if r != ApproverRoleOwner && r != ApproverRoleManager {
		return apperrors.ErrInvalidApproverRole
	}
	return nil
}

// CombineSlots derives the overall claim approval status from the two slots.
// Any denial wins immediately; approval needs both slots approved.
func CombineSlots(owner, manager models.ApprovalSlot) models.ClaimApprovalStatus {
	switch {
	case owner == models.ApprovalSlotDenied || manager == models.ApprovalSlotDenied:
		return models.ClaimApprovalStatusDenied
	case owner == models.ApprovalSlotApproved && manager == models.ApprovalSlotApproved:
		return models.ClaimApprovalStatusApproved
	default:
		return models.ClaimApprovalStatusPending
	}
}
