package models

// IdeaStatus is the coarse lifecycle state of an idea
type IdeaStatus string

const (
	IdeaStatusOpen     IdeaStatus = "open"
	IdeaStatusClaimed  IdeaStatus = "claimed"
	IdeaStatusComplete IdeaStatus = "complete"
)

// SubStatus is the SDLC phase of a claimed idea
type SubStatus string

const (
	SubStatusNone               SubStatus = "none"
	SubStatusPlanning           SubStatus = "planning"
	SubStatusInDevelopment      SubStatus = "in_development"
	SubStatusTesting            SubStatus = "testing"
	SubStatusAwaitingDeployment SubStatus = "awaiting_deployment"
	SubStatusDeployed           SubStatus = "deployed"
	SubStatusVerified           SubStatus = "verified"
	SubStatusBlocked            SubStatus = "blocked"
	SubStatusOnHold             SubStatus = "on_hold"
)

// IdeaSize classifies the expected effort of an idea
type IdeaSize string

const (
	IdeaSizeSmall  IdeaSize = "small"
	IdeaSizeMedium IdeaSize = "medium"
	IdeaSizeLarge  IdeaSize = "large"
)

// IdeaPriority classifies the urgency of an idea
type IdeaPriority string

const (
	IdeaPriorityLow    IdeaPriority = "low"
	IdeaPriorityMedium IdeaPriority = "medium"
	IdeaPriorityHigh   IdeaPriority = "high"
)

// UserRole is the marketplace-wide role of a user profile
type UserRole string

const (
	UserRoleUser    UserRole = "user"
	UserRoleManager UserRole = "manager"
	UserRoleAdmin   UserRole = "admin"
)

// ApprovalSlot is the state of one approver's decision
type ApprovalSlot string

const (
	ApprovalSlotPending  ApprovalSlot = "pending"
	ApprovalSlotApproved ApprovalSlot = "approved"
	ApprovalSlotDenied   ApprovalSlot = "denied"
)

// ClaimApprovalStatus is derived from the two approval slots
type ClaimApprovalStatus string

const (
	ClaimApprovalStatusPending  ClaimApprovalStatus = "pending"
	ClaimApprovalStatusApproved ClaimApprovalStatus = "approved"
	ClaimApprovalStatusDenied   ClaimApprovalStatus = "denied"
)

// ActivityType tags an IdeaActivity row
type ActivityType string

const (
	ActivityCreated        ActivityType = "created"
	ActivityClaimRequested ActivityType = "claim_requested"
	ActivityClaimed        ActivityType = "claimed"
	ActivityClaimDenied    ActivityType = "claim_denied"
	ActivityStatusChanged  ActivityType = "status_changed"
	ActivityCompleted      ActivityType = "completed"
	ActivityCommentAdded   ActivityType = "comment_added"
	ActivityLinkAdded      ActivityType = "link_added"
	ActivityBountyAdded    ActivityType = "bounty_added"
	ActivityBountyUpdated  ActivityType = "bounty_updated"
	ActivityBountyApproved ActivityType = "bounty_approved"
	ActivityBountyDenied   ActivityType = "bounty_denied"
)

// NotificationType tags a Notification row
type NotificationType string

const (
	NotificationClaimRequest           NotificationType = "claim_request"
	NotificationClaimApprovalRequired  NotificationType = "claim_approval_required"
	NotificationClaimApproved          NotificationType = "claim_approved"
	NotificationClaimDenied            NotificationType = "claim_denied"
	NotificationStatusChange           NotificationType = "status_change"
	NotificationBountyApproval         NotificationType = "bounty_approval"
	NotificationTeamMemberJoined       NotificationType = "team_member_joined"
	NotificationManagerRequestApproved NotificationType = "manager_request_approved"
	NotificationManagerRequestDenied   NotificationType = "manager_request_denied"
)

// ManagerRequestStatus is the state of a request to manage a team
type ManagerRequestStatus string

const (
	ManagerRequestStatusPending  ManagerRequestStatus = "pending"
	ManagerRequestStatusApproved ManagerRequestStatus = "approved"
	ManagerRequestStatusDenied   ManagerRequestStatus = "denied"
)

// IsValid checks if the IdeaStatus is valid
func (s IdeaStatus) IsValid() bool {
	switch s {
	case IdeaStatusOpen, IdeaStatusClaimed, IdeaStatusComplete:
		return true
	}
	return false
}

// IsValid checks if the SubStatus is valid
func (s SubStatus) IsValid() bool {
	switch s {
	case SubStatusNone, SubStatusPlanning, SubStatusInDevelopment, SubStatusTesting,
		SubStatusAwaitingDeployment, SubStatusDeployed, SubStatusVerified,
		SubStatusBlocked, SubStatusOnHold:
		return true
	}
	return false
}

// RequiresReason reports whether entering s needs a blocked reason
func (s SubStatus) RequiresReason() bool {
	return s == SubStatusBlocked || s == SubStatusOnHold
}

// IsValid checks if the IdeaSize is valid
func (s IdeaSize) IsValid() bool {
	switch s {
	case IdeaSizeSmall, IdeaSizeMedium, IdeaSizeLarge:
		return true
	}
	return false
}

// IsValid checks if the IdeaPriority is valid
func (p IdeaPriority) IsValid() bool {
	switch p {
	case IdeaPriorityLow, IdeaPriorityMedium, IdeaPriorityHigh:
		return true
	}
	return false
}

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleManager, UserRoleAdmin:
		return true
	}
	return false
}

// IsTerminal reports whether the approval can no longer change
func (s ClaimApprovalStatus) IsTerminal() bool {
	return s == ClaimApprovalStatusApproved || s == ClaimApprovalStatusDenied
}

// IsValid checks if the NotificationType is valid
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationClaimRequest, NotificationClaimApprovalRequired, NotificationClaimApproved,
		NotificationClaimDenied, NotificationStatusChange, NotificationBountyApproval,
		NotificationTeamMemberJoined, NotificationManagerRequestApproved, NotificationManagerRequestDenied:
		return true
	}
	return false
}
