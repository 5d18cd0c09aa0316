package service

import (
	"context"
	"fmt"
	"time"

	"idea-marketplace-backend/internal/database/models"
	apperrors "idea-marketplace-backend/internal/errors"
	"idea-marketplace-backend/internal/logger"
	"idea-marketplace-backend/internal/repository"

	"github.com/google/uuid"
)

// ClaimService coordinates the two-party approval that turns a claim request into a binding claim
type ClaimService struct {
	store      repository.Store
	identity   IdentityResolver
	dispatcher NotificationDispatcher
	history    HistoryTracker
	now        func() time.Time
}

// NewClaimService creates a new claim service
func NewClaimService(store repository.Store, identity IdentityResolver, dispatcher NotificationDispatcher) *ClaimService {
	return &ClaimService{
		store:      store,
		identity:   identity,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// SetClock replaces the time source
func (s *ClaimService) SetClock(now func() time.Time) {
	s.now = now
}

// DecideClaimRequest represents one approver's decision on a claim
type DecideClaimRequest struct {
	ClaimerEmail string       `json:"claimer_email" validate:"required,email"`
	ApproverRole ApproverRole `json:"approver_role" validate:"required"`
	Decision     Decision     `json:"decision" validate:"required"`
}

// RequestClaim opens a pending approval for claimerEmail on an open idea
func (s *ClaimService) RequestClaim(ctx context.Context, ideaID uuid.UUID, claimerEmail string) (*models.ClaimApproval, error) {
	claimer, err := s.identity.ResolveActor(ctx, claimerEmail)
	if err != nil {
		return nil, err
	}

	// The claimer's manager decides the manager slot. Without one, or when the
	// claimer manages their own team, the admin pool decides instead.
	var managerEmail string
	manager, err := s.identity.ManagerOf(ctx, claimer.Team)
	switch {
	case err == nil && manager.Email != claimer.Email:
		managerEmail = manager.Email
	case err != nil && !apperrors.IsNotFound(err):
		return nil, err
	}

	var managerRecipients []string
	if managerEmail != "" {
		managerRecipients = []string{managerEmail}
	} else {
		admins, err := s.identity.AdminPool(ctx)
		if err != nil {
			return nil, err
		}
		managerRecipients = admins
	}

	var (
		box      outbox
		approval *models.ClaimApproval
	)
	err = s.store.ExecTx(ctx, func(tx *repository.Repos) error {
		idea, err := tx.Idea.GetByIDForUpdate(ctx, ideaID)
		if err != nil {
			return notFoundOr(err, apperrors.ErrIdeaNotFound, "get idea")
		}
		if idea.Status != models.IdeaStatusOpen {
			return apperrors.ErrIdeaNotOpen
		}

		active, err := tx.ClaimApproval.ExistsActiveForIdea(ctx, idea.ID)
		if err != nil {
			return fmt.Errorf("failed to check claim approvals: %w", err)
		}
		if active {
			return apperrors.ErrActiveClaimExists
		}

		approval = &models.ClaimApproval{
			IdeaID:          idea.ID,
			ClaimerEmail:    claimer.Email,
			ManagerEmail:    managerEmail,
			OwnerDecision:   models.ApprovalSlotPending,
			ManagerDecision: models.ApprovalSlotPending,
			Status:          models.ClaimApprovalStatusPending,
		}
		if err := tx.ClaimApproval.Create(ctx, approval); err != nil {
			return fmt.Errorf("failed to create claim approval: %w", err)
		}

		if err := tx.Activity.Append(ctx, &models.IdeaActivity{
			IdeaID:       idea.ID,
			ActorEmail:   claimer.Email,
			ActivityType: models.ActivityClaimRequested,
			Message:      fmt.Sprintf("%s requested to claim the idea", claimer.Email),
			Metadata:     jsonData(map[string]interface{}{"claim_approval_id": approval.ID}),
		}); err != nil {
			return fmt.Errorf("failed to append activity: %w", err)
		}

		ownerEvent := ideaEvent(models.NotificationClaimRequest, idea, claimer.Email)
		ownerEvent.RelatedUser = claimer.Email
		ownerEvent.Recipients = recipientsExcept(claimer.Email, idea.SubmitterEmail)
		ownerEvent.Data["claim_approval_id"] = approval.ID
		box.add(ownerEvent)

		managerEvent := ideaEvent(models.NotificationClaimApprovalRequired, idea, claimer.Email)
		managerEvent.RelatedUser = claimer.Email
		managerEvent.Recipients = recipientsExcept(claimer.Email, managerRecipients...)
		managerEvent.Data["claim_approval_id"] = approval.ID
		box.add(managerEvent)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"idea_id":           ideaID,
		"claim_approval_id": approval.ID,
		"claimer":           claimer.Email,
		"manager":           managerEmail,
	}).Info("claim requested")

	box.flush(ctx, s.dispatcher)
	return approval, nil
}

// DecideClaim records one approver's decision on the latest approval of claimerEmail.
// When both slots approve, the idea moves open -> claimed through a conditional update;
// if another approval already won the idea, this approval is denied and ErrClaimRaceLost returned.
func (s *ClaimService) DecideClaim(ctx context.Context, ideaID uuid.UUID, claimerEmail, approverEmail string, role ApproverRole, decision Decision) (*models.ClaimApproval, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if err := decision.Validate(); err != nil {
		return nil, err
	}

	approver, err := s.identity.ResolveActor(ctx, approverEmail)
	if err != nil {
		return nil, err
	}
	claimerEmail = normalizeEmail(claimerEmail)

	var (
		box      outbox
		approval *models.ClaimApproval
		raceLost bool
		changed  bool
	)
	err = s.store.ExecTx(ctx, func(tx *repository.Repos) error {
		// Idea first, then approval, so every writer takes locks in the same order
		idea, err := tx.Idea.GetByIDForUpdate(ctx, ideaID)
		if err != nil {
			return notFoundOr(err, apperrors.ErrIdeaNotFound, "get idea")
		}
		approval, err = tx.ClaimApproval.GetLatestForClaimerForUpdate(ctx, idea.ID, claimerEmail)
		if err != nil {
			return notFoundOr(err, apperrors.ErrClaimApprovalNotFound, "get claim approval")
		}

		if err := authorizeSlot(approver, idea, approval, role); err != nil {
			return err
		}

		slot, decidedAt, decidedBy := slotFields(approval, role)
		want := decision.Slot()

		if *slot == want {
			return nil
		}
		if approval.Status.IsTerminal() {
			return apperrors.ErrClaimApprovalTerminal
		}
		if *slot != models.ApprovalSlotPending {
			return apperrors.ErrApprovalSlotAlreadySet
		}

		now := s.now()
		*slot = want
		*decidedAt = &now
		*decidedBy = approver.Email
		approval.Status = CombineSlots(approval.OwnerDecision, approval.ManagerDecision)
		changed = true

		switch approval.Status {
		case models.ClaimApprovalStatusApproved:
			won, err := s.bindClaim(ctx, tx, idea, approval, approver.Email, now, &box)
			if err != nil {
				return err
			}
			raceLost = !won
		case models.ClaimApprovalStatusDenied:
			approval.ResolvedAt = &now
			if err := s.denyClaim(ctx, tx, idea, approval, approver.Email, "", &box); err != nil {
				return err
			}
		}

		if err := tx.ClaimApproval.Update(ctx, approval); err != nil {
			return fmt.Errorf("failed to update claim approval: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"idea_id":           ideaID,
			"claim_approval_id": approval.ID,
			"actor":             approver.Email,
			"role":              role,
			"decision":          decision,
			"to":                approval.Status,
		}).Info("claim decision recorded")
	}

	box.flush(ctx, s.dispatcher)
	if raceLost {
		return approval, apperrors.ErrClaimRaceLost
	}
	return approval, nil
}

// ListClaimApprovals returns every approval of an idea, newest first
func (s *ClaimService) ListClaimApprovals(ctx context.Context, ideaID uuid.UUID) ([]models.ClaimApproval, error) {
	repos := s.store.Repositories()
	if _, err := repos.Idea.GetByID(ctx, ideaID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrIdeaNotFound, "get idea")
	}
	approvals, err := repos.ClaimApproval.ListByIdea(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list claim approvals: %w", err)
	}
	return approvals, nil
}

// PendingForApprover lists approvals still waiting on email. Admins also see approvals
// whose manager slot falls to the admin pool.
func (s *ClaimService) PendingForApprover(ctx context.Context, email string) ([]models.ClaimApproval, error) {
	actor, err := s.identity.ResolveActor(ctx, email)
	if err != nil {
		return nil, err
	}
	repos := s.store.Repositories()
	approvals, err := repos.ClaimApproval.ListPendingForApprover(ctx, actor.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}
	if !actor.IsAdmin() {
		return approvals, nil
	}

	pooled, err := repos.ClaimApproval.ListPendingForApprover(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}
	seen := make(map[uuid.UUID]struct{}, len(approvals))
	for _, a := range approvals {
		seen[a.ID] = struct{}{}
	}
	for _, a := range pooled {
		if _, ok := seen[a.ID]; !ok {
			approvals = append(approvals, a)
		}
	}
	return approvals, nil
}

// bindClaim performs the conditional open -> claimed update and reports whether it won
func (s *ClaimService) bindClaim(ctx context.Context, tx *repository.Repos, idea *models.Idea, approval *models.ClaimApproval, actor string, now time.Time, box *outbox) (bool, error) {
	rows, err := tx.Idea.MarkClaimed(ctx, idea.ID, approval.ClaimerEmail, actor, now)
	if err != nil {
		return false, fmt.Errorf("failed to claim idea: %w", err)
	}
	approval.ResolvedAt = &now

	if rows == 0 {
		approval.Status = models.ClaimApprovalStatusDenied
		return false, s.denyClaim(ctx, tx, idea, approval, actor, "the idea was already claimed", box)
	}

	from := stateOf(idea)
	since := idea.SubStatusUpdatedAt
	idea.Status = models.IdeaStatusClaimed
	idea.SubStatus = models.SubStatusPlanning
	idea.ClaimedBy = approval.ClaimerEmail
	idea.ProgressPercentage = 0
	idea.BlockedReason = ""
	idea.SubStatusUpdatedAt = &now
	idea.SubStatusUpdatedBy = actor

	if err := tx.Claim.Create(ctx, &models.Claim{
		IdeaID:          idea.ID,
		ClaimerEmail:    approval.ClaimerEmail,
		ClaimApprovalID: approval.ID,
	}); err != nil {
		return false, fmt.Errorf("failed to create claim: %w", err)
	}
	if _, err := s.history.Record(ctx, tx, idea.ID, Transition{
		From:    from,
		To:      stateOf(idea),
		Actor:   actor,
		At:      now,
		Comment: fmt.Sprintf("claim approved for %s", approval.ClaimerEmail),
		Since:   since,
	}); err != nil {
		return false, err
	}
	if err := tx.Activity.Append(ctx, &models.IdeaActivity{
		IdeaID:       idea.ID,
		ActorEmail:   actor,
		ActivityType: models.ActivityClaimed,
		Message:      fmt.Sprintf("%s claimed the idea", approval.ClaimerEmail),
		Metadata:     jsonData(map[string]interface{}{"claim_approval_id": approval.ID}),
	}); err != nil {
		return false, fmt.Errorf("failed to append activity: %w", err)
	}

	event := ideaEvent(models.NotificationClaimApproved, idea, actor)
	event.RelatedUser = approval.ClaimerEmail
	event.Recipients = uniqueRecipients(approval.ClaimerEmail, idea.SubmitterEmail, approval.ManagerEmail, approval.ManagerDecidedBy)
	event.Data["claim_approval_id"] = approval.ID
	box.add(event)
	return true, nil
}

func (s *ClaimService) denyClaim(ctx context.Context, tx *repository.Repos, idea *models.Idea, approval *models.ClaimApproval, actor, reason string, box *outbox) error {
	message := fmt.Sprintf("the claim of %s was denied", approval.ClaimerEmail)
	if reason != "" {
		message = fmt.Sprintf("%s: %s", message, reason)
	}
	if err := tx.Activity.Append(ctx, &models.IdeaActivity{
		IdeaID:       idea.ID,
		ActorEmail:   actor,
		ActivityType: models.ActivityClaimDenied,
		Message:      message,
		Metadata:     jsonData(map[string]interface{}{"claim_approval_id": approval.ID}),
	}); err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}

	event := ideaEvent(models.NotificationClaimDenied, idea, actor)
	event.RelatedUser = approval.ClaimerEmail
	event.Recipients = uniqueRecipients(approval.ClaimerEmail)
	event.Data["claim_approval_id"] = approval.ID
	if reason != "" {
		event.Data["reason"] = reason
	}
	box.add(event)
	return nil
}

// authorizeSlot checks that approver is the party behind role
func authorizeSlot(approver *Actor, idea *models.Idea, approval *models.ClaimApproval, role ApproverRole) error {
	switch role {
	case ApproverRoleOwner:
		if normalizeEmail(idea.SubmitterEmail) != approver.Email {
			return apperrors.ErrNotIdeaOwner
		}
	case ApproverRoleManager:
		if approval.ManagerEmail == "" {
			if !approver.IsAdmin() {
				return apperrors.ErrNotClaimerManager
			}
			return nil
		}
		if normalizeEmail(approval.ManagerEmail) != approver.Email {
			return apperrors.ErrNotClaimerManager
		}
	}
	return nil
}

func slotFields(approval *models.ClaimApproval, role ApproverRole) (*models.ApprovalSlot, **time.Time, *string) {
	if role == ApproverRoleOwner {
		return &approval.OwnerDecision, &approval.OwnerDecidedAt, &approval.OwnerDecidedBy
	}
	return &approval.ManagerDecision, &approval.ManagerDecidedAt, &approval.ManagerDecidedBy
}
