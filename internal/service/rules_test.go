package service_test

import (
	"testing"
	"time"

	"idea-marketplace-backend/internal/database/models"
	apperrors "idea-marketplace-backend/internal/errors"
	"idea-marketplace-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSubStatusTransition(t *testing.T) {
	tests := []struct {
		name    string
		status  models.IdeaStatus
		current models.SubStatus
		target  models.SubStatus
		wantErr error
	}{
		{"claimed forward", models.IdeaStatusClaimed, models.SubStatusPlanning, models.SubStatusInDevelopment, nil},
		{"claimed backward", models.IdeaStatusClaimed, models.SubStatusTesting, models.SubStatusPlanning, nil},
		{"claimed skips ahead", models.IdeaStatusClaimed, models.SubStatusPlanning, models.SubStatusDeployed, nil},
		{"claimed to blocked", models.IdeaStatusClaimed, models.SubStatusTesting, models.SubStatusBlocked, nil},
		{"claimed back to none", models.IdeaStatusClaimed, models.SubStatusPlanning, models.SubStatusNone, apperrors.ErrSubStatusTransitionDenied},
		{"open idea", models.IdeaStatusOpen, models.SubStatusNone, models.SubStatusPlanning, apperrors.ErrSubStatusTransitionDenied},
		{"complete to verified", models.IdeaStatusComplete, models.SubStatusDeployed, models.SubStatusVerified, nil},
		{"complete to testing", models.IdeaStatusComplete, models.SubStatusDeployed, models.SubStatusTesting, apperrors.ErrSubStatusTransitionDenied},
		{"unknown target", models.IdeaStatusClaimed, models.SubStatusPlanning, models.SubStatus("shipping"), apperrors.ErrInvalidSubStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.CheckSubStatusTransition(tt.status, tt.current, tt.target)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEvaluateBountyGate(t *testing.T) {
	const threshold = 50.0

	tests := []struct {
		name         string
		monetary     bool
		expensed     bool
		amount       float64
		wantRequired bool
	}{
		{"one cent above threshold", true, true, 50.01, true},
		{"exactly at threshold", true, true, 50.00, false},
		{"float noise at threshold", true, true, 49.999999, false},
		{"large expensed amount", true, true, 1200, true},
		{"not expensed", true, false, 500, false},
		{"non monetary", false, true, 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := service.EvaluateBountyGate(tt.monetary, tt.expensed, tt.amount, threshold)
			assert.Equal(t, tt.wantRequired, gate.RequiresApproval)
			if tt.wantRequired {
				assert.Nil(t, gate.IsApproved, "a gated bounty starts undecided")
				return
			}
			require.NotNil(t, gate.IsApproved)
			assert.True(t, *gate.IsApproved)
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("NoPreviousTimestamp", func(t *testing.T) {
		assert.Nil(t, service.DurationMinutes(nil, now))
	})

	t.Run("Floors", func(t *testing.T) {
		prev := now.Add(-(90*time.Minute + 59*time.Second))
		got := service.DurationMinutes(&prev, now)
		require.NotNil(t, got)
		assert.Equal(t, 90, *got)
	})

	t.Run("ClockSkewClampsToZero", func(t *testing.T) {
		prev := now.Add(5 * time.Minute)
		got := service.DurationMinutes(&prev, now)
		require.NotNil(t, got)
		assert.Equal(t, 0, *got)
	})
}

func TestCombineSlots(t *testing.T) {
	pending, approved, denied := models.ApprovalSlotPending, models.ApprovalSlotApproved, models.ApprovalSlotDenied

	assert.Equal(t, models.ClaimApprovalStatusPending, service.CombineSlots(pending, pending))
	assert.Equal(t, models.ClaimApprovalStatusPending, service.CombineSlots(approved, pending))
	assert.Equal(t, models.ClaimApprovalStatusPending, service.CombineSlots(pending, approved))
	assert.Equal(t, models.ClaimApprovalStatusApproved, service.CombineSlots(approved, approved))
	assert.Equal(t, models.ClaimApprovalStatusDenied, service.CombineSlots(denied, pending))
	assert.Equal(t, models.ClaimApprovalStatusDenied, service.CombineSlots(approved, denied))
}

func TestDecisionAndRoleValidation(t *testing.T) {
	assert.NoError(t, service.DecisionApprove.Validate())
	assert.NoError(t, service.DecisionDeny.Validate())
	assert.ErrorIs(t, service.Decision("maybe").Validate(), apperrors.ErrInvalidDecision)

	assert.NoError(t, service.ApproverRoleOwner.Validate())
	assert.NoError(t, service.ApproverRoleManager.Validate())
	assert.ErrorIs(t, service.ApproverRole("lead").Validate(), apperrors.ErrInvalidApproverRole)

	assert.Equal(t, models.ApprovalSlotApproved, service.DecisionApprove.Slot())
	assert.Equal(t, models.ApprovalSlotDenied, service.DecisionDeny.Slot())
}

func TestRenderNotification(t *testing.T) {
	ideaID := uuid.New()

	t.Run("ClaimRequest", func(t *testing.T) {
		title, body := service.RenderNotification(service.Event{
			Type:        models.NotificationClaimRequest,
			IdeaID:      &ideaID,
			IdeaTitle:   "Faster CI",
			RelatedUser: "dev@example.com",
		})
		assert.Equal(t, "New claim request", title)
		assert.Equal(t, `dev@example.com asked to claim "Faster CI".`, body)
	})

	t.Run("StatusChangeHumanizesTags", func(t *testing.T) {
		_, body := service.RenderNotification(service.Event{
			Type:      models.NotificationStatusChange,
			IdeaTitle: "Faster CI",
			Actor:     "dev@example.com",
			Data:      map[string]interface{}{"from": "in_development", "to": "awaiting_deployment"},
		})
		assert.Equal(t, `dev@example.com moved "Faster CI" from in development to awaiting deployment.`, body)
	})

	t.Run("DeniedWithReason", func(t *testing.T) {
		_, body := service.RenderNotification(service.Event{
			Type:      models.NotificationClaimDenied,
			IdeaTitle: "Faster CI",
			Data:      map[string]interface{}{"reason": "the idea was already claimed"},
		})
		assert.Contains(t, body, "the idea was already claimed")
	})

	t.Run("MissingTitle", func(t *testing.T) {
		_, body := service.RenderNotification(service.Event{Type: models.NotificationType("unknown")})
		assert.Equal(t, "Update on an idea.", body)
	})
}
