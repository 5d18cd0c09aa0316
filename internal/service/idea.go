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

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdeaService owns the idea lifecycle: creation, sub-status progress and completion
type IdeaService struct {
	store      repository.Store
	identity   IdentityResolver
	dispatcher NotificationDispatcher
	validator  *validator.Validate
	history    HistoryTracker
	now        func() time.Time
}

// NewIdeaService creates a new idea service
func NewIdeaService(store repository.Store, identity IdentityResolver, dispatcher NotificationDispatcher, validator *validator.Validate) *IdeaService {
	return &IdeaService{
		store:      store,
		identity:   identity,
		dispatcher: dispatcher,
		validator:  validator,
		now:        time.Now,
	}
}

// SetClock replaces the time source
func (s *IdeaService) SetClock(now func() time.Time) {
	s.now = now
}

// CreateIdeaRequest represents the request to post an idea
type CreateIdeaRequest struct {
	Title       string              `json:"title" validate:"required,min=1,max=200"`
	Description string              `json:"description,omitempty"`
	Team        string              `json:"team" validate:"required,max=100"`
	Size        models.IdeaSize     `json:"size,omitempty" validate:"omitempty,oneof=small medium large"`
	Priority    models.IdeaPriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
}

// UpdateSubStatusRequest represents a sub-status change on a claimed idea
type UpdateSubStatusRequest struct {
	SubStatus          models.SubStatus `json:"sub_status" validate:"required"`
	ProgressPercentage *int             `json:"progress_percentage,omitempty"`
	Comment            string           `json:"comment,omitempty" validate:"max=2000"`
	BlockedReason      string           `json:"blocked_reason,omitempty" validate:"max=2000"`
}

// AddLinkRequest represents a link attached to an idea's activity feed
type AddLinkRequest struct {
	URL   string `json:"url" validate:"required,url,max=2048"`
	Title string `json:"title,omitempty" validate:"max=200"`
}

// IdeaListResponse represents a paginated list of ideas
type IdeaListResponse struct {
	Ideas    []models.Idea `json:"ideas"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// ActivityListResponse represents a page of the activity feed
type ActivityListResponse struct {
	Activities []models.IdeaActivity `json:"activities"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
}

// CreateIdea posts a new open idea for the actor's chosen team
func (s *IdeaService) CreateIdea(ctx context.Context, actorEmail string, req *CreateIdeaRequest) (*models.Idea, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	actor, err := s.identity.ResolveActor(ctx, actorEmail)
	if err != nil {
		return nil, err
	}

	idea := &models.Idea{
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		Team:           req.Team,
		SubmitterEmail: actor.Email,
		Size:           req.Size,
		Priority:       req.Priority,
		Status:         models.IdeaStatusOpen,
		SubStatus:      models.SubStatusNone,
	}
	if idea.Size == "" {
		idea.Size = models.IdeaSizeMedium
	}
	if idea.Priority == "" {
		idea.Priority = models.IdeaPriorityMedium
	}

	err = s.store.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.Team.GetByName(ctx, req.Team); err != nil {
			return notFoundOr(err, apperrors.ErrTeamNotFound, "verify team")
		}
		if err := tx.Idea.Create(ctx, idea); err != nil {
			return fmt.Errorf("failed to create idea: %w", err)
		}
		return tx.Activity.Append(ctx, &models.IdeaActivity{
			IdeaID:       idea.ID,
			ActorEmail:   actor.Email,
			ActivityType: models.ActivityCreated,
			Message:      fmt.Sprintf("%s posted the idea", actor.Email),
		})
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("idea_id", idea.ID).Info("idea created")
	return idea, nil
}

// GetIdea retrieves an idea by ID
func (s *IdeaService) GetIdea(ctx context.Context, id uuid.UUID) (*models.Idea, error) {
	idea, err := s.store.Repositories().Idea.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrIdeaNotFound, "get idea")
	}
	return idea, nil
}

// ListIdeas retrieves ideas matching filter
func (s *IdeaService) ListIdeas(ctx context.Context, filter repository.IdeaFilter, page, pageSize int) (*IdeaListResponse, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown status")
	}
	limit, offset, err := pagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	ideas, total, err := s.store.Repositories().Idea.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	if page == 0 {
		page = 1
	}
	return &IdeaListResponse{Ideas: ideas, Total: total, Page: page, PageSize: limit}, nil
}

// UpdateSubStatus moves a claimed idea to another SDLC phase.
// Reaching verified with 100% progress also completes the idea in the same history row.
func (s *IdeaService) UpdateSubStatus(ctx context.Context, ideaID uuid.UUID, actorEmail string, req *UpdateSubStatusRequest) (*models.Idea, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if !req.SubStatus.IsValid() {
		return nil, apperrors.ErrInvalidSubStatus
	}
	if p := req.ProgressPercentage; p != nil && (*p < 0 || *p > 100) {
		return nil, apperrors.ErrProgressOutOfRange
	}
	reason := strings.TrimSpace(req.BlockedReason)
	if req.SubStatus.RequiresReason() && reason == "" {
		return nil, apperrors.ErrBlockedReasonRequired
	}
	if !req.SubStatus.RequiresReason() {
		reason = ""
	}

	actor, err := s.identity.ResolveActor(ctx, actorEmail)
	if err != nil {
		return nil, err
	}

	var (
		box    outbox
		result *models.Idea
		from   lifecycleState
	)
	err = s.store.ExecTx(ctx, func(tx *repository.Repos) error {
		idea, err := tx.Idea.GetByIDForUpdate(ctx, ideaID)
		if err != nil {
			return notFoundOr(err, apperrors.ErrIdeaNotFound, "get idea")
		}
		if !canDriveLifecycle(actor, idea) {
			return apperrors.ErrNotAuthorizedForIdea
		}
		if err := CheckSubStatusTransition(idea.Status, idea.SubStatus, req.SubStatus); err != nil {
			return err
		}

		now := s.now()
		from = stateOf(idea)
		since := idea.SubStatusUpdatedAt

		idea.SubStatus = req.SubStatus
		idea.BlockedReason = reason
		if req.ProgressPercentage != nil {
			idea.ProgressPercentage = *req.ProgressPercentage
		}
		completed := idea.Status == models.IdeaStatusClaimed &&
			idea.SubStatus == models.SubStatusVerified &&
			idea.ProgressPercentage == 100
		if completed {
			idea.Status = models.IdeaStatusComplete
			idea.CompletedAt = &now
		}
		idea.SubStatusUpdatedAt = &now
		idea.SubStatusUpdatedBy = actor.Email
		idea.UpdatedAt = now

		if err := tx.Idea.UpdateLifecycle(ctx, idea); err != nil {
			return fmt.Errorf("failed to update idea: %w", err)
		}
		if _, err := s.history.Record(ctx, tx, idea.ID, Transition{
			From:    from,
			To:      stateOf(idea),
			Actor:   actor.Email,
			At:      now,
			Comment: req.Comment,
			Since:   since,
		}); err != nil {
			return err
		}

		metadata := map[string]interface{}{
			"from_sub_status":     from.SubStatus,
			"to_sub_status":       idea.SubStatus,
			"progress_percentage": idea.ProgressPercentage,
		}
		if reason != "" {
			metadata["blocked_reason"] = reason
		}
		if err := tx.Activity.Append(ctx, &models.IdeaActivity{
			IdeaID:       idea.ID,
			ActorEmail:   actor.Email,
			ActivityType: models.ActivityStatusChanged,
			Message:      fmt.Sprintf("%s moved the idea from %s to %s", actor.Email, humanize(string(from.SubStatus)), humanize(string(idea.SubStatus))),
			Metadata:     jsonData(metadata),
		}); err != nil {
			return fmt.Errorf("failed to append activity: %w", err)
		}
		if completed {
			if err := appendCompletedActivity(ctx, tx, idea, actor.Email); err != nil {
				return err
			}
		}

		result = idea
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"idea_id": result.ID,
		"actor":   actor.Email,
		"from":    from.SubStatus,
		"to":      result.SubStatus,
		"status":  result.Status,
	}).Info("sub-status updated")

	// recipients are resolved on the pool only after the idea lock is released
	box.add(s.statusChangeEvent(ctx, result, actor.Email, from))
	box.flush(ctx, s.dispatcher)
	return result, nil
}

// CompleteIdea explicitly moves a claimed idea to complete
func (s *IdeaService) CompleteIdea(ctx context.Context, ideaID uuid.UUID, actorEmail, comment string) (*models.Idea, error) {
	actor, err := s.identity.ResolveActor(ctx, actorEmail)
	if err != nil {
		return nil, err
	}

	var (
		box    outbox
		result *models.Idea
		from   lifecycleState
	)
	err = s.store.ExecTx(ctx, func(tx *repository.Repos) error {
		idea, err := tx.Idea.GetByIDForUpdate(ctx, ideaID)
		if err != nil {
			return notFoundOr(err, apperrors.ErrIdeaNotFound, "get idea")
		}
		switch idea.Status {
		case models.IdeaStatusComplete:
			return apperrors.ErrIdeaAlreadyComplete
		case models.IdeaStatusOpen:
			return apperrors.ErrIdeaNotClaimed
		}

		allowed, err := canComplete(ctx, tx, actor, idea)
		if err != nil {
			return err
		}
		if !allowed {
			return apperrors.ErrNotAuthorizedForIdea
		}

		now := s.now()
		from = stateOf(idea)
		idea.Status = models.IdeaStatusComplete
		idea.CompletedAt = &now
		idea.UpdatedAt = now

		if err := tx.Idea.UpdateLifecycle(ctx, idea); err != nil {
			return fmt.Errorf("failed to update idea: %w", err)
		}
		if _, err := s.history.Record(ctx, tx, idea.ID, Transition{
			From:    from,
			To:      stateOf(idea),
			Actor:   actor.Email,
			At:      now,
			Comment: comment,
			Since:   idea.SubStatusUpdatedAt,
		}); err != nil {
			return err
		}
		if err := appendCompletedActivity(ctx, tx, idea, actor.Email); err != nil {
			return err
		}

		result = idea
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"idea_id": result.ID,
		"actor":   actor.Email,
		"from":    from.Status,
		"to":      result.Status,
	}).Info("idea completed")

	box.add(s.statusChangeEvent(ctx, result, actor.Email, from))
	box.flush(ctx, s.dispatcher)
	return result, nil
}

// AddComment appends a comment to the idea's activity feed
func (s *IdeaService) AddComment(ctx context.Context, ideaID uuid.UUID, actorEmail, comment string) (*models.IdeaActivity, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, apperrors.NewValidationError("comment", "must not be empty")
	}
	return s.appendActivity(ctx, ideaID, actorEmail, models.ActivityCommentAdded, comment, nil)
}

// AddLink appends a link to the idea's activity feed
func (s *IdeaService) AddLink(ctx context.Context, ideaID uuid.UUID, actorEmail string, req *AddLinkRequest) (*models.IdeaActivity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	message := req.URL
	if req.Title != "" {
		message = fmt.Sprintf("%s (%s)", req.Title, req.URL)
	}
	return s.appendActivity(ctx, ideaID, actorEmail, models.ActivityLinkAdded, message,
		map[string]interface{}{"url": req.URL, "title": req.Title})
}

// ListActivity returns the mixed activity feed of an idea, newest first
func (s *IdeaService) ListActivity(ctx context.Context, ideaID uuid.UUID, page, pageSize int) (*ActivityListResponse, error) {
	limit, offset, err := pagination(page, pageSize)
	if err != nil {
		return nil, err
	}
	repos := s.store.Repositories()
	if _, err := repos.Idea.GetByID(ctx, ideaID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrIdeaNotFound, "get idea")
	}

	activities, total, err := repos.Activity.ListByIdea(ctx, ideaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	if page == 0 {
		page = 1
	}
	return &ActivityListResponse{Activities: activities, Total: total, Page: page, PageSize: limit}, nil
}

// ListHistory returns history rows in append order. Passing the last seen sequence resumes the read.
func (s *IdeaService) ListHistory(ctx context.Context, ideaID uuid.UUID, afterSequence int64, limit int) ([]models.StatusHistory, error) {
	if afterSequence < 0 || limit < 0 || limit > 1000 {
		return nil, apperrors.ErrInvalidPagination
	}
	repos := s.store.Repositories()
	if _, err := repos.Idea.GetByID(ctx, ideaID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrIdeaNotFound, "get idea")
	}

	entries, err := repos.StatusHistory.ListByIdea(ctx, ideaID, afterSequence, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return entries, nil
}

func (s *IdeaService) appendActivity(ctx context.Context, ideaID uuid.UUID, actorEmail string, activityType models.ActivityType, message string, metadata map[string]interface{}) (*models.IdeaActivity, error) {
	actor, err := s.identity.ResolveActor(ctx, actorEmail)
	if err != nil {
		return nil, err
	}

	activity := &models.IdeaActivity{
		IdeaID:       ideaID,
		ActorEmail:   actor.Email,
		ActivityType: activityType,
		Message:      message,
	}
	if metadata != nil {
		activity.Metadata = jsonData(metadata)
	}

	err = s.store.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.Idea.GetByID(ctx, ideaID); err != nil {
			return notFoundOr(err, apperrors.ErrIdeaNotFound, "get idea")
		}
		if err := tx.Activity.Append(ctx, activity); err != nil {
			return fmt.Errorf("failed to append activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return activity, nil
}

// canDriveLifecycle allows the active claimer, the manager of the idea's team and admins
func canDriveLifecycle(actor *Actor, idea *models.Idea) bool {
	if actor.IsAdmin() || actor.Manages(idea.Team) {
		return true
	}
	return idea.ClaimedBy != "" && normalizeEmail(idea.ClaimedBy) == actor.Email
}

// canComplete also admits the idea owner and the claimer's own manager.
// The claimer's profile is read through tx so the check never leaves the unit of work.
func canComplete(ctx context.Context, tx *repository.Repos, actor *Actor, idea *models.Idea) (bool, error) {
	if canDriveLifecycle(actor, idea) || normalizeEmail(idea.SubmitterEmail) == actor.Email {
		return true, nil
	}
	if actor.ManagedTeam == "" || idea.ClaimedBy == "" {
		return false, nil
	}
	claimer, err := tx.User.GetByEmail(ctx, normalizeEmail(idea.ClaimedBy))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get claimer: %w", err)
	}
	return claimer.Team != nil && actor.Manages(*claimer.Team), nil
}

// statusChangeEvent addresses the owner, the claimer and the managers involved, minus the actor
func (s *IdeaService) statusChangeEvent(ctx context.Context, idea *models.Idea, actor string, from lifecycleState) Event {
	candidates := []string{idea.SubmitterEmail, idea.ClaimedBy}
	if manager, err := s.identity.ManagerOf(ctx, idea.Team); err == nil {
		candidates = append(candidates, manager.Email)
	}
	if idea.ClaimedBy != "" {
		if claimer, err := s.identity.ResolveActor(ctx, idea.ClaimedBy); err == nil {
			if manager, err := s.identity.ManagerOf(ctx, claimer.Team); err == nil {
				candidates = append(candidates, manager.Email)
			}
		}
	}

	event := ideaEvent(models.NotificationStatusChange, idea, actor)
	event.Recipients = recipientsExcept(actor, candidates...)
	event.RelatedUser = idea.ClaimedBy
	event.Data["from"] = from.SubStatus
	event.Data["to"] = idea.SubStatus
	event.Data["from_status"] = from.Status
	event.Data["to_status"] = idea.Status
	event.Data["progress_percentage"] = idea.ProgressPercentage
	return event
}

func appendCompletedActivity(ctx context.Context, tx *repository.Repos, idea *models.Idea, actor string) error {
	if err := tx.Activity.Append(ctx, &models.IdeaActivity{
		IdeaID:       idea.ID,
		ActorEmail:   actor,
		ActivityType: models.ActivityCompleted,
		Message:      fmt.Sprintf("%s completed the idea", actor),
	}); err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}
	return nil
}
