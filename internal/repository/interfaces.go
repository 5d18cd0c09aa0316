package repository

import (
	"context"
	"time"

	"idea-marketplace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// IdeaFilter narrows idea listings
type IdeaFilter struct {
	Status         models.IdeaStatus
	Team           string
	SubmitterEmail string
	ClaimedBy      string
}

// IdeaRepositoryInterface defines the interface for idea repository operations
type IdeaRepositoryInterface interface {
	Create(ctx context.Context, idea *models.Idea) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Idea, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Idea, error)
	List(ctx context.Context, filter IdeaFilter, limit, offset int) ([]models.Idea, int64, error)
	MarkClaimed(ctx context.Context, id uuid.UUID, claimerEmail, actorEmail string, at time.Time) (int64, error)
	UpdateLifecycle(ctx context.Context, idea *models.Idea) error
	WithTx(tx *gorm.DB) IdeaRepositoryInterface
}

// ClaimRepositoryInterface defines the interface for claim repository operations
type ClaimRepositoryInterface interface {
	Create(ctx context.Context, claim *models.Claim) error
	GetByIdeaID(ctx context.Context, ideaID uuid.UUID) (*models.Claim, error)
	CountByIdeaID(ctx context.Context, ideaID uuid.UUID) (int64, error)
	WithTx(tx *gorm.DB) ClaimRepositoryInterface
}

// ClaimApprovalRepositoryInterface defines the interface for claim approval repository operations
type ClaimApprovalRepositoryInterface interface {
	Create(ctx context.Context, approval *models.ClaimApproval) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ClaimApproval, error)
	GetLatestForClaimerForUpdate(ctx context.Context, ideaID uuid.UUID, claimerEmail string) (*models.ClaimApproval, error)
	ExistsActiveForIdea(ctx context.Context, ideaID uuid.UUID) (bool, error)
	ListByIdea(ctx context.Context, ideaID uuid.UUID) ([]models.ClaimApproval, error)
	ListPendingForApprover(ctx context.Context, email string) ([]models.ClaimApproval, error)
	Update(ctx context.Context, approval *models.ClaimApproval) error
	WithTx(tx *gorm.DB) ClaimApprovalRepositoryInterface
}

// BountyRepositoryInterface defines the interface for bounty repository operations
type BountyRepositoryInterface interface {
	Create(ctx context.Context, bounty *models.Bounty) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Bounty, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Bounty, error)
	ListByIdea(ctx context.Context, ideaID uuid.UUID) ([]models.Bounty, error)
	ListPending(ctx context.Context, limit, offset int) ([]models.Bounty, int64, error)
	Update(ctx context.Context, bounty *models.Bounty) error
	WithTx(tx *gorm.DB) BountyRepositoryInterface
}

// StatusHistoryRepositoryInterface only appends and reads; ledger rows are never changed
type StatusHistoryRepositoryInterface interface {
	Append(ctx context.Context, entry *models.StatusHistory) error
	ListByIdea(ctx context.Context, ideaID uuid.UUID, afterSequence int64, limit int) ([]models.StatusHistory, error)
	WithTx(tx *gorm.DB) StatusHistoryRepositoryInterface
}

// ActivityRepositoryInterface only appends and reads; activity rows are never changed
type ActivityRepositoryInterface interface {
	Append(ctx context.Context, activity *models.IdeaActivity) error
	ListByIdea(ctx context.Context, ideaID uuid.UUID, limit, offset int) ([]models.IdeaActivity, int64, error)
	WithTx(tx *gorm.DB) ActivityRepositoryInterface
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	ListByRecipient(ctx context.Context, email string, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error)
	MarkRead(ctx context.Context, id uuid.UUID, email string, at time.Time) (int64, error)
	MarkAllRead(ctx context.Context, email string, at time.Time) (int64, error)
	CountUnread(ctx context.Context, email string) (int64, error)
	WithTx(tx *gorm.DB) NotificationRepositoryInterface
}

// UserRepositoryInterface defines the interface for user profile repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.UserProfile) error
	GetByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	GetByEmailForUpdate(ctx context.Context, email string) (*models.UserProfile, error)
	GetManagerOfTeam(ctx context.Context, team string) (*models.UserProfile, error)
	ListAdmins(ctx context.Context) ([]models.UserProfile, error)
	Update(ctx context.Context, user *models.UserProfile) error
	WithTx(tx *gorm.DB) UserRepositoryInterface
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByName(ctx context.Context, name string) (*models.Team, error)
	GetAll(ctx context.Context) ([]models.Team, error)
	WithTx(tx *gorm.DB) TeamRepositoryInterface
}

// ManagerRequestRepositoryInterface defines the interface for manager request repository operations
type ManagerRequestRepositoryInterface interface {
	Create(ctx context.Context, request *models.ManagerRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ManagerRequest, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.ManagerRequest, error)
	HasPending(ctx context.Context, email, team string) (bool, error)
	ListPending(ctx context.Context) ([]models.ManagerRequest, error)
	Update(ctx context.Context, request *models.ManagerRequest) error
	WithTx(tx *gorm.DB) ManagerRequestRepositoryInterface
}
