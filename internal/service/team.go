package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"idea-marketplace-backend/internal/database/models"
	apperrors "idea-marketplace-backend/internal/errors"
	"idea-marketplace-backend/internal/logger"
	"idea-marketplace-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles team membership and requests to manage a team
type TeamService struct {
	store      repository.Store
	identity   IdentityResolver
	dispatcher NotificationDispatcher
	now        func() time.Time
}

// NewTeamService creates a new team service
func NewTeamService(store repository.Store, identity IdentityResolver, dispatcher NotificationDispatcher) *TeamService {
	return &TeamService{
		store:      store,
		identity:   identity,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// GetAllTeams retrieves every team
func (s *TeamService) GetAllTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := s.store.Repositories().Team.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// JoinTeam moves the user into team and tells the team manager
func (s *TeamService) JoinTeam(ctx context.Context, email, teamName string) (*models.UserProfile, error) {
	email = normalizeEmail(email)
	teamName = strings.TrimSpace(teamName)

	var (
		box  outbox
		user *models.UserProfile
	)
	err := s.store.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.Team.GetByName(ctx, teamName); err != nil {
			return notFoundOr(err, apperrors.ErrTeamNotFound, "get team")
		}

		var err error
		user, err = tx.User.GetByEmailForUpdate(ctx, email)
		if err != nil {
			return notFoundOr(err, apperrors.ErrUserNotFound, "get user")
		}
		if user.Team != nil && *user.Team == teamName {
			return apperrors.ErrUserAlreadyInTeam
		}

		user.Team = &teamName
		if err := tx.User.Update(ctx, user); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		manager, err := tx.User.GetManagerOfTeam(ctx, teamName)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get team manager: %w", err)
		}
		box.add(Event{
			Type:        models.NotificationTeamMemberJoined,
			Actor:       user.Email,
			RelatedUser: user.Email,
			Recipients:  recipientsExcept(user.Email, manager.Email),
			Data:        map[string]interface{}{"team": teamName},
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{"user": email, "team": teamName}).Info("user joined team")
	box.flush(ctx, s.dispatcher)
	return user, nil
}

// RequestManagerRole files a pending request for email to manage team
func (s *TeamService) RequestManagerRole(ctx context.Context, email, teamName string) (*models.ManagerRequest, error) {
	actor, err := s.identity.ResolveActor(ctx, email)
	if err != nil {
		return nil, err
	}
	teamName = strings.TrimSpace(teamName)

	var request *models.ManagerRequest
	err = s.store.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.Team.GetByName(ctx, teamName); err != nil {
			return notFoundOr(err, apperrors.ErrTeamNotFound, "get team")
		}
		_, err := tx.User.GetManagerOfTeam(ctx, teamName)
		if err == nil {
			return apperrors.ErrTeamAlreadyManaged
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get team manager: %w", err)
		}

		pending, err := tx.ManagerRequest.HasPending(ctx, actor.Email, teamName)
		if err != nil {
			return fmt.Errorf("failed to check manager requests: %w", err)
		}
		if pending {
			return apperrors.ErrManagerRequestPending
		}

		request = &models.ManagerRequest{
			RequesterEmail: actor.Email,
			Team:           teamName,
			Status:         models.ManagerRequestStatusPending,
		}
		if err := tx.ManagerRequest.Create(ctx, request); err != nil {
			return fmt.Errorf("failed to create manager request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// DecideManagerRequest lets an admin approve or deny a manager request.
// Approval makes the requester a manager of the team.
func (s *TeamService) DecideManagerRequest(ctx context.Context, requestID uuid.UUID, adminEmail string, decision Decision) (*models.ManagerRequest, error) {
	if err := decision.Validate(); err != nil {
		return nil, err
	}
	admin, err := s.identity.ResolveActor(ctx, adminEmail)
	if err != nil {
		return nil, err
	}
	if !admin.IsAdmin() {
		return nil, apperrors.ErrAdminRequired
	}

	var (
		box     outbox
		request *models.ManagerRequest
	)
	err = s.store.ExecTx(ctx, func(tx *repository.Repos) error {
		var err error
		request, err = tx.ManagerRequest.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return notFoundOr(err, apperrors.ErrManagerRequestNotFound, "get manager request")
		}
		if request.Status != models.ManagerRequestStatusPending {
			return apperrors.ErrManagerRequestResolved
		}

		now := s.now()
		request.DecidedBy = admin.Email
		request.DecidedAt = &now
		eventType := models.NotificationManagerRequestDenied
		request.Status = models.ManagerRequestStatusDenied

		if decision == DecisionApprove {
			if current, err := tx.User.GetManagerOfTeam(ctx, request.Team); err == nil && current.Email != request.RequesterEmail {
				return apperrors.ErrTeamAlreadyManaged
			}
			user, err := tx.User.GetByEmailForUpdate(ctx, request.RequesterEmail)
			if err != nil {
				return notFoundOr(err, apperrors.ErrUserNotFound, "get user")
			}
			team := request.Team
			user.ManagedTeam = &team
			if user.Role != models.UserRoleAdmin {
				user.Role = models.UserRoleManager
			}
			if err := tx.User.Update(ctx, user); err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}
			request.Status = models.ManagerRequestStatusApproved
			eventType = models.NotificationManagerRequestApproved
		}

		if err := tx.ManagerRequest.Update(ctx, request); err != nil {
			return fmt.Errorf("failed to update manager request: %w", err)
		}
		box.add(Event{
			Type:        eventType,
			Actor:       admin.Email,
			RelatedUser: request.RequesterEmail,
			Recipients:  uniqueRecipients(request.RequesterEmail),
			Data:        map[string]interface{}{"team": request.Team, "manager_request_id": request.ID},
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"manager_request_id": request.ID,
		"team":               request.Team,
		"decision":           decision,
	}).Info("manager request decided")

	box.flush(ctx, s.dispatcher)
	return request, nil
}

// ListPendingManagerRequests lists pending manager requests for admins
func (s *TeamService) ListPendingManagerRequests(ctx context.Context, adminEmail string) ([]models.ManagerRequest, error) {
	admin, err := s.identity.ResolveActor(ctx, adminEmail)
	if err != nil {
		return nil, err
	}
	if !admin.IsAdmin() {
		return nil, apperrors.ErrAdminRequired
	}
	requests, err := s.store.Repositories().ManagerRequest.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list manager requests: %w", err)
	}
	return requests, nil
}
