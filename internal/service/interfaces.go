package service

import (
	"context"

	"idea-marketplace-backend/internal/database/models"
	"idea-marketplace-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// IdeaServiceInterface defines the interface for the idea lifecycle service
type IdeaServiceInterface interface {
	CreateIdea(ctx context.Context, actorEmail string, req *CreateIdeaRequest) (*models.Idea, error)
	GetIdea(ctx context.Context, id uuid.UUID) (*models.Idea, error)
	ListIdeas(ctx context.Context, filter repository.IdeaFilter, page, pageSize int) (*IdeaListResponse, error)
	UpdateSubStatus(ctx context.Context, ideaID uuid.UUID, actorEmail string, req *UpdateSubStatusRequest) (*models.Idea, error)
	CompleteIdea(ctx context.Context, ideaID uuid.UUID, actorEmail, comment string) (*models.Idea, error)
	AddComment(ctx context.Context, ideaID uuid.UUID, actorEmail, comment string) (*models.IdeaActivity, error)
	AddLink(ctx context.Context, ideaID uuid.UUID, actorEmail string, req *AddLinkRequest) (*models.IdeaActivity, error)
	ListActivity(ctx context.Context, ideaID uuid.UUID, page, pageSize int) (*ActivityListResponse, error)
	ListHistory(ctx context.Context, ideaID uuid.UUID, afterSequence int64, limit int) ([]models.StatusHistory, error)
}

// ClaimServiceInterface defines the interface for the claim approval coordinator
type ClaimServiceInterface interface {
	RequestClaim(ctx context.Context, ideaID uuid.UUID, claimerEmail string) (*models.ClaimApproval, error)
	DecideClaim(ctx context.Context, ideaID uuid.UUID, claimerEmail, approverEmail string, role ApproverRole, decision Decision) (*models.ClaimApproval, error)
	ListClaimApprovals(ctx context.Context, ideaID uuid.UUID) ([]models.ClaimApproval, error)
	PendingForApprover(ctx context.Context, email string) ([]models.ClaimApproval, error)
}

// BountyServiceInterface defines the interface for the bounty approval gate
type BountyServiceInterface interface {
	CreateBounty(ctx context.Context, ideaID uuid.UUID, actorEmail string, req *CreateBountyRequest) (*models.Bounty, error)
	UpdateBountyAmount(ctx context.Context, bountyID uuid.UUID, actorEmail string, amount float64) (*models.Bounty, error)
	DecideBounty(ctx context.Context, bountyID uuid.UUID, approverEmail string, decision Decision) (*models.Bounty, error)
	GetBounty(ctx context.Context, id uuid.UUID) (*models.Bounty, error)
	ListBounties(ctx context.Context, ideaID uuid.UUID) ([]models.Bounty, error)
	PendingBounties(ctx context.Context, page, pageSize int) (*BountyListResponse, error)
}

// NotificationServiceInterface defines the interface for a user's notification inbox
type NotificationServiceInterface interface {
	List(ctx context.Context, email string, unreadOnly bool, page, pageSize int) (*NotificationListResponse, error)
	MarkRead(ctx context.Context, id uuid.UUID, email string) (*models.Notification, error)
	MarkAllRead(ctx context.Context, email string) (int64, error)
	UnreadCount(ctx context.Context, email string) (int64, error)
}

// TeamServiceInterface defines the interface for team membership and manager requests
type TeamServiceInterface interface {
	GetAllTeams(ctx context.Context) ([]models.Team, error)
	JoinTeam(ctx context.Context, email, teamName string) (*models.UserProfile, error)
	RequestManagerRole(ctx context.Context, email, teamName string) (*models.ManagerRequest, error)
	DecideManagerRequest(ctx context.Context, requestID uuid.UUID, adminEmail string, decision Decision) (*models.ManagerRequest, error)
	ListPendingManagerRequests(ctx context.Context, adminEmail string) ([]models.ManagerRequest, error)
}
