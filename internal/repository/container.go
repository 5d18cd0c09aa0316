package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store hands out repositories and runs units of work across them
type Store interface {
	Repositories() *Repos
	ExecTx(ctx context.Context, fn func(*Repos) error) error
}

// Repos groups every repository so a unit of work can rebind them to one transaction
type Repos struct {
	Idea           IdeaRepositoryInterface
	Claim          ClaimRepositoryInterface
	ClaimApproval  ClaimApprovalRepositoryInterface
	Bounty         BountyRepositoryInterface
	StatusHistory  StatusHistoryRepositoryInterface
	Activity       ActivityRepositoryInterface
	Notification   NotificationRepositoryInterface
	User           UserRepositoryInterface
	Team           TeamRepositoryInterface
	ManagerRequest ManagerRequestRepositoryInterface

	db *gorm.DB
}

// NewRepositories builds the repository container on top of db
func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Idea:           NewIdeaRepository(db),
		Claim:          NewClaimRepository(db),
		ClaimApproval:  NewClaimApprovalRepository(db),
		Bounty:         NewBountyRepository(db),
		StatusHistory:  NewStatusHistoryRepository(db),
		Activity:       NewActivityRepository(db),
		Notification:   NewNotificationRepository(db),
		User:           NewUserRepository(db),
		Team:           NewTeamRepository(db),
		ManagerRequest: NewManagerRequestRepository(db),
		db:             db,
	}
}

// Repositories returns the container itself
func (r *Repos) Repositories() *Repos {
	return r
}

// WithTx returns a copy of the container bound to tx
func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Idea:           r.Idea.WithTx(tx),
		Claim:          r.Claim.WithTx(tx),
		ClaimApproval:  r.ClaimApproval.WithTx(tx),
		Bounty:         r.Bounty.WithTx(tx),
		StatusHistory:  r.StatusHistory.WithTx(tx),
		Activity:       r.Activity.WithTx(tx),
		Notification:   r.Notification.WithTx(tx),
		User:           r.User.WithTx(tx),
		Team:           r.Team.WithTx(tx),
		ManagerRequest: r.ManagerRequest.WithTx(tx),
		db:             tx,
	}
}

// ExecTx runs fn inside a database transaction. Returning an error rolls back every write.
func (r *Repos) ExecTx(ctx context.Context, fn func(*Repos) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
