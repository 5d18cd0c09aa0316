package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"idea-marketplace-backend/internal/database/models"
	apperrors "idea-marketplace-backend/internal/errors"
	"idea-marketplace-backend/internal/logger"
	"idea-marketplace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// BountyService attaches rewards to ideas and runs the expense approval gate
type BountyService struct {
	store      repository.Store
	identity   IdentityResolver
	dispatcher NotificationDispatcher
	validator  *validator.Validate
	threshold  float64
	now        func() time.Time
}

// NewBountyService creates a new bounty service. Expensed monetary bounties above threshold need admin approval.
func NewBountyService(store repository.Store, identity IdentityResolver, dispatcher NotificationDispatcher, validator *validator.Validate, threshold float64) *BountyService {
	return &BountyService{
		store:      store,
		identity:   identity,
		dispatcher: dispatcher,
		validator:  validator,
		threshold:  threshold,
		now:        time.Now,
	}
}

// SetClock replaces the time source
func (s *BountyService) SetClock(now func() time.Time) {
	s.now = now
}

// CreateBountyRequest represents the request to attach a bounty to an idea
type CreateBountyRequest struct {
	Title      string  `json:"title,omitempty" validate:"max=200"`
	IsMonetary bool    `json:"is_monetary"`
	IsExpensed bool    `json:"is_expensed"`
	Amount     float64 `json:"amount"`
}

// UpdateBountyAmountRequest represents an amount change on a bounty without a recorded decision
type UpdateBountyAmountRequest struct {
	Amount float64 `json:"amount"`
}

// DecideBountyRequest represents an admin decision on a gated bounty
type DecideBountyRequest struct {
	Decision Decision `json:"decision" validate:"required"`
}

// BountyListResponse represents a paginated list of bounties
type BountyListResponse struct {
	Bounties []models.Bounty `json:"bounties"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// CreateBounty attaches a bounty to an idea. Only the idea owner or an admin may do this.
func (s *BountyService) CreateBounty(ctx context.Context, ideaID uuid.UUID, actorEmail string, req *CreateBountyRequest) (*models.Bounty, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if req.Amount < 0 {
		return nil, apperrors.ErrNegativeAmount
	}

	actor, err := s.identity.ResolveActor(ctx, actorEmail)
	if err != nil {
		return nil, err
	}

	gate := EvaluateBountyGate(req.IsMonetary, req.IsExpensed, req.Amount, s.threshold)
	var admins []string
	if gate.RequiresApproval {
		if admins, err = s.identity.AdminPool(ctx); err != nil {
			return nil, err
		}
	}

	var (
		box    outbox
		bounty *models.Bounty
	)
	err = s.store.ExecTx(ctx, func(tx *repository.Repos) error {
		idea, err := tx.Idea.GetByIDForUpdate(ctx, ideaID)
		if err != nil {
			return notFoundOr(err, apperrors.ErrIdeaNotFound, "get idea")
		}
		if !ownsOrAdmin(actor, idea) {
			return apperrors.ErrBountyOwnerOrAdmin
		}

		bounty = &models.Bounty{
			IdeaID:           idea.ID,
			Title:            strings.TrimSpace(req.Title),
			IsMonetary:       req.IsMonetary,
			IsExpensed:       req.IsExpensed,
			Amount:           req.Amount,
			RequiresApproval: gate.RequiresApproval,
			IsApproved:       gate.IsApproved,
			CreatedBy:        actor.Email,
		}
		if err := tx.Bounty.Create(ctx, bounty); err != nil {
			return fmt.Errorf("failed to create bounty: %w", err)
		}

		if err := tx.Activity.Append(ctx, &models.IdeaActivity{
			IdeaID:       idea.ID,
			ActorEmail:   actor.Email,
			ActivityType: models.ActivityBountyAdded,
			Message:      fmt.Sprintf("%s added a bounty of %s", actor.Email, formatAmount(bounty)),
			Metadata:     jsonData(map[string]interface{}{"bounty_id": bounty.ID, "requires_approval": bounty.RequiresApproval}),
		}); err != nil {
			return fmt.Errorf("failed to append activity: %w", err)
		}

		if bounty.IsPending() {
			box.add(s.approvalRequiredEvent(idea, bounty, actor.Email, admins))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"idea_id":           ideaID,
		"bounty_id":         bounty.ID,
		"requires_approval": bounty.RequiresApproval,
	}).Info("bounty created")

	box.flush(ctx, s.dispatcher)
	return bounty, nil
}

// UpdateBountyAmount changes the amount of a bounty that has no recorded approval decision.
// The gate is evaluated again so an edit can move a bounty into or out of approval.
func (s *BountyService) UpdateBountyAmount(ctx context.Context, bountyID uuid.UUID, actorEmail string, amount float64) (*models.Bounty, error) {
	if amount < 0 {
		return nil, apperrors.ErrNegativeAmount
	}
	actor, err := s.identity.ResolveActor(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	admins, err := s.identity.AdminPool(ctx)
	if err != nil {
		return nil, err
	}

	var (
		box    outbox
		bounty *models.Bounty
	)
	err = s.store.ExecTx(ctx, func(tx *repository.Repos) error {
		bounty, err = tx.Bounty.GetByIDForUpdate(ctx, bountyID)
		if err != nil {
			return notFoundOr(err, apperrors.ErrBountyNotFound, "get bounty")
		}
		idea, err := tx.Idea.GetByID(ctx, bounty.IdeaID)
		if err != nil {
			return notFoundOr(err, apperrors.ErrIdeaNotFound, "get idea")
		}
		if !ownsOrAdmin(actor, idea) {
			return apperrors.ErrBountyOwnerOrAdmin
		}
		if bounty.RequiresApproval && bounty.IsApproved != nil {
			return apperrors.ErrBountyAlreadyResolved
		}

		wasPending := bounty.IsPending()
		previous := bounty.Amount
		gate := EvaluateBountyGate(bounty.IsMonetary, bounty.IsExpensed, amount, s.threshold)
		bounty.Amount = amount
		bounty.RequiresApproval = gate.RequiresApproval
		bounty.IsApproved = gate.IsApproved

		if err := tx.Bounty.Update(ctx, bounty); err != nil {
			return fmt.Errorf("failed to update bounty: %w", err)
		}
		if err := tx.Activity.Append(ctx, &models.IdeaActivity{
			IdeaID:       idea.ID,
			ActorEmail:   actor.Email,
			ActivityType: models.ActivityBountyUpdated,
			Message:      fmt.Sprintf("%s changed the bounty amount to %s", actor.Email, formatAmount(bounty)),
			Metadata:     jsonData(map[string]interface{}{"bounty_id": bounty.ID, "previous_amount": previous, "amount": amount}),
		}); err != nil {
			return fmt.Errorf("failed to append activity: %w", err)
		}

		if bounty.IsPending() && !wasPending {
			box.add(s.approvalRequiredEvent(idea, bounty, actor.Email, admins))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	box.flush(ctx, s.dispatcher)
	return bounty, nil
}

// DecideBounty records an admin decision on a gated bounty. Denial is terminal.
func (s *BountyService) DecideBounty(ctx context.Context, bountyID uuid.UUID, approverEmail string, decision Decision) (*models.Bounty, error) {
	if err := decision.Validate(); err != nil {
		return nil, err
	}
	approver, err := s.identity.ResolveActor(ctx, approverEmail)
	if err != nil {
		return nil, err
	}
	if !approver.IsAdmin() {
		return nil, apperrors.ErrAdminRequired
	}

	var (
		box    outbox
		bounty *models.Bounty
	)
	err = s.store.ExecTx(ctx, func(tx *repository.Repos) error {
		bounty, err = tx.Bounty.GetByIDForUpdate(ctx, bountyID)
		if err != nil {
			return notFoundOr(err, apperrors.ErrBountyNotFound, "get bounty")
		}
		if !bounty.RequiresApproval {
			return apperrors.ErrBountyNotGated
		}
		if bounty.IsApproved != nil {
			return apperrors.ErrBountyAlreadyResolved
		}
		idea, err := tx.Idea.GetByID(ctx, bounty.IdeaID)
		if err != nil {
			return notFoundOr(err, apperrors.ErrIdeaNotFound, "get idea")
		}

		now := s.now()
		approved := decision == DecisionApprove
		bounty.IsApproved = &approved
		bounty.ApprovedBy = approver.Email
		bounty.ApprovedAt = &now
		if err := tx.Bounty.Update(ctx, bounty); err != nil {
			return fmt.Errorf("failed to update bounty: %w", err)
		}

		activityType, verb := models.ActivityBountyApproved, "approved"
		if !approved {
			activityType, verb = models.ActivityBountyDenied, "denied"
		}
		if err := tx.Activity.Append(ctx, &models.IdeaActivity{
			IdeaID:       idea.ID,
			ActorEmail:   approver.Email,
			ActivityType: activityType,
			Message:      fmt.Sprintf("%s %s the bounty of %s", approver.Email, verb, formatAmount(bounty)),
			Metadata:     jsonData(map[string]interface{}{"bounty_id": bounty.ID}),
		}); err != nil {
			return fmt.Errorf("failed to append activity: %w", err)
		}

		event := ideaEvent(models.NotificationBountyApproval, idea, approver.Email)
		event.Recipients = uniqueRecipients(idea.SubmitterEmail)
		event.Data["bounty_id"] = bounty.ID
		event.Data["amount"] = formatAmount(bounty)
		event.Data["decision"] = verb
		box.add(event)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"bounty_id": bounty.ID,
		"actor":     approver.Email,
		"decision":  decision,
	}).Info("bounty decision recorded")

	box.flush(ctx, s.dispatcher)
	return bounty, nil
}

// GetBounty retrieves a bounty by ID
func (s *BountyService) GetBounty(ctx context.Context, id uuid.UUID) (*models.Bounty, error) {
	bounty, err := s.store.Repositories().Bounty.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrBountyNotFound, "get bounty")
	}
	return bounty, nil
}

// ListBounties retrieves the bounties of an idea
func (s *BountyService) ListBounties(ctx context.Context, ideaID uuid.UUID) ([]models.Bounty, error) {
	repos := s.store.Repositories()
	if _, err := repos.Idea.GetByID(ctx, ideaID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrIdeaNotFound, "get idea")
	}
	bounties, err := repos.Bounty.ListByIdea(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bounties: %w", err)
	}
	return bounties, nil
}

// PendingBounties lists gated bounties waiting for an admin
func (s *BountyService) PendingBounties(ctx context.Context, page, pageSize int) (*BountyListResponse, error) {
	limit, offset, err := pagination(page, pageSize)
	if err != nil {
		return nil, err
	}
	bounties, total, err := s.store.Repositories().Bounty.ListPending(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending bounties: %w", err)
	}
	if page == 0 {
		page = 1
	}
	return &BountyListResponse{Bounties: bounties, Total: total, Page: page, PageSize: limit}, nil
}

func (s *BountyService) approvalRequiredEvent(idea *models.Idea, bounty *models.Bounty, actor string, admins []string) Event {
	event := ideaEvent(models.NotificationBountyApproval, idea, actor)
	event.Recipients = recipientsExcept(actor, admins...)
	event.Data["bounty_id"] = bounty.ID
	event.Data["amount"] = formatAmount(bounty)
	return event
}

func ownsOrAdmin(actor *Actor, idea *models.Idea) bool {
	return actor.IsAdmin() || normalizeEmail(idea.SubmitterEmail) == actor.Email
}

func formatAmount(bounty *models.Bounty) string {
	if !bounty.IsMonetary {
		return "non-monetary reward"
	}
	return fmt.Sprintf("$%.2f", bounty.Amount)
}
