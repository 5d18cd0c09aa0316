package testutils

import (
	"fmt"
	"sync/atomic"

	"idea-marketplace-backend/internal/database/models"

	"github.com/google/uuid"
)

// AdminEmail is the configured admin used by integration tests
const AdminEmail = "admin@example.com"

var factorySeq atomic.Int64

func nextSeq() int64 {
	return factorySeq.Add(1)
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a unique name
func (f *TeamFactory) Create() *models.Team {
	return f.WithName(fmt.Sprintf("team-%d", nextSeq()))
}

// WithName creates a test Team with a custom name
func (f *TeamFactory) WithName(name string) *models.Team {
	return &models.Team{
		Name:        name,
		Title:       name + " title",
		Description: "A test team for testing purposes",
	}
}

// UserFactory provides methods to create test UserProfile data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a verified user without a team
func (f *UserFactory) Create() *models.UserProfile {
	n := nextSeq()
	return &models.UserProfile{
		Email:      fmt.Sprintf("user%d@example.com", n),
		Name:       fmt.Sprintf("User %d", n),
		Role:       models.UserRoleUser,
		IsVerified: true,
	}
}

// InTeam creates a verified member of team
func (f *UserFactory) InTeam(team string) *models.UserProfile {
	user := f.Create()
	user.Team = &team
	return user
}

// ManagerOf creates a verified manager of team who is also a member of it
func (f *UserFactory) ManagerOf(team string) *models.UserProfile {
	user := f.InTeam(team)
	user.Role = models.UserRoleManager
	managed := team
	user.ManagedTeam = &managed
	return user
}

// Admin creates a verified user holding the admin role
func (f *UserFactory) Admin(email string) *models.UserProfile {
	user := f.Create()
	user.Email = email
	user.Role = models.UserRoleAdmin
	return user
}

// IdeaFactory provides methods to create test Idea data
type IdeaFactory struct{}

// NewIdeaFactory creates a new IdeaFactory
func NewIdeaFactory() *IdeaFactory {
	return &IdeaFactory{}
}

// Open creates an open idea submitted by submitter
func (f *IdeaFactory) Open(team, submitter string) *models.Idea {
	return &models.Idea{
		Title:          fmt.Sprintf("Idea %d", nextSeq()),
		Description:    "An idea for testing purposes",
		Team:           team,
		SubmitterEmail: submitter,
		Size:           models.IdeaSizeMedium,
		Priority:       models.IdeaPriorityMedium,
		Status:         models.IdeaStatusOpen,
		SubStatus:      models.SubStatusNone,
	}
}

// Claimed creates an idea already claimed by claimer in the given sub-status
func (f *IdeaFactory) Claimed(team, submitter, claimer string, sub models.SubStatus) *models.Idea {
	idea := f.Open(team, submitter)
	idea.Status = models.IdeaStatusClaimed
	idea.SubStatus = sub
	idea.ClaimedBy = claimer
	return idea
}

// ApprovalFactory provides methods to create test ClaimApproval data
type ApprovalFactory struct{}

// NewApprovalFactory creates a new ApprovalFactory
func NewApprovalFactory() *ApprovalFactory {
	return &ApprovalFactory{}
}

// Pending creates a pending approval with both slots undecided
func (f *ApprovalFactory) Pending(ideaID uuid.UUID, claimer, manager string) *models.ClaimApproval {
	return &models.ClaimApproval{
		IdeaID:          ideaID,
		ClaimerEmail:    claimer,
		ManagerEmail:    manager,
		OwnerDecision:   models.ApprovalSlotPending,
		ManagerDecision: models.ApprovalSlotPending,
		Status:          models.ClaimApprovalStatusPending,
	}
}

// BountyFactory provides methods to create test Bounty data
type BountyFactory struct{}

// NewBountyFactory creates a new BountyFactory
func NewBountyFactory() *BountyFactory {
	return &BountyFactory{}
}

// Monetary creates a non-expensed monetary bounty with no gate evaluated
func (f *BountyFactory) Monetary(ideaID uuid.UUID, amount float64, createdBy string) *models.Bounty {
	return &models.Bounty{
		IdeaID:     ideaID,
		Title:      "Test bounty",
		IsMonetary: true,
		Amount:     amount,
		CreatedBy:  createdBy,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Team     *TeamFactory
	User     *UserFactory
	Idea     *IdeaFactory
	Approval *ApprovalFactory
	Bounty   *BountyFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:     NewTeamFactory(),
		User:     NewUserFactory(),
		Idea:     NewIdeaFactory(),
		Approval: NewApprovalFactory(),
		Bounty:   NewBountyFactory(),
	}
}
