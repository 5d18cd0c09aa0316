package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"idea-marketplace-backend/internal/database/models"
	apperrors "idea-marketplace-backend/internal/errors"
	"idea-marketplace-backend/internal/repository"

	"gorm.io/gorm"
)

//go:generate mockgen -source=identity.go -destination=../mocks/identity_mocks.go -package=mocks

// Actor is the resolved identity behind an email on every core call
type Actor struct {
	Email       string
	Name        string
	Role        models.UserRole
	Team        string
	ManagedTeam string
}

// IsAdmin reports whether the actor belongs to the admin pool
func (a *Actor) IsAdmin() bool {
	return a.Role == models.UserRoleAdmin
}

// Manages reports whether the actor is the manager of team
func (a *Actor) Manages(team string) bool {
	return team != "" && a.ManagedTeam == team
}

// IdentityResolver answers who an email is and who manages a team
type IdentityResolver interface {
	ResolveActor(ctx context.Context, email string) (*Actor, error)
	ManagerOf(ctx context.Context, team string) (*Actor, error)
	AdminPool(ctx context.Context) ([]string, error)
}

// UserIdentityResolver resolves identities from stored user profiles.
// Emails listed in adminEmails are treated as admins regardless of their stored role.
type UserIdentityResolver struct {
	users       repository.UserRepositoryInterface
	adminEmails []string
}

// NewUserIdentityResolver creates a resolver over the user profile repository
func NewUserIdentityResolver(users repository.UserRepositoryInterface, adminEmails []string) *UserIdentityResolver {
	normalized := make([]string, 0, len(adminEmails))
	for _, email := range adminEmails {
		if email = normalizeEmail(email); email != "" {
			normalized = append(normalized, email)
		}
	}
	return &UserIdentityResolver{users: users, adminEmails: normalized}
}

// ResolveActor returns the verified profile of email
func (r *UserIdentityResolver) ResolveActor(ctx context.Context, email string) (*Actor, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, apperrors.ErrMissingActorInContext
	}

	user, err := r.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve actor: %w", err)
	}
	if !user.IsVerified {
		return nil, apperrors.ErrUserNotVerified
	}

	return r.toActor(user), nil
}

// ManagerOf returns the manager of team
func (r *UserIdentityResolver) ManagerOf(ctx context.Context, team string) (*Actor, error) {
	if team == "" {
		return nil, apperrors.ErrManagerNotFound
	}
	user, err := r.users.GetManagerOfTeam(ctx, team)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrManagerNotFound
		}
		return nil, fmt.Errorf("failed to resolve team manager: %w", err)
	}
	return r.toActor(user), nil
}

// AdminPool returns the configured admin emails merged with every profile holding the admin role
func (r *UserIdentityResolver) AdminPool(ctx context.Context) ([]string, error) {
	admins, err := r.users.ListAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	emails := append([]string{}, r.adminEmails...)
	for _, admin := range admins {
		emails = append(emails, admin.Email)
	}
	return uniqueRecipients(emails...), nil
}

func (r *UserIdentityResolver) toActor(user *models.UserProfile) *Actor {
	actor := &Actor{
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
	if user.Team != nil {
		actor.Team = *user.Team
	}
	if user.ManagedTeam != nil {
		actor.ManagedTeam = *user.ManagedTeam
	}
	for _, admin := range r.adminEmails {
		if admin == normalizeEmail(user.Email) {
			actor.Role = models.UserRoleAdmin
			break
		}
	}
	return actor
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
