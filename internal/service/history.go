package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"idea-marketplace-backend/internal/database/models"
	"idea-marketplace-backend/internal/repository"

	"github.com/google/uuid"
)

// DurationMinutes returns the whole minutes spent since prev, floored and never negative.
// It returns nil when there is no previous timestamp.
func DurationMinutes(prev *time.Time, now time.Time) *int {
	if prev == nil {
		return nil
	}
	minutes := int(math.Floor(now.Sub(*prev).Minutes()))
	if minutes < 0 {
		minutes = 0
	}
	return &minutes
}

// lifecycleState is a snapshot of the two status dimensions of an idea
type lifecycleState struct {
	Status    models.IdeaStatus
	SubStatus models.SubStatus
}

func stateOf(idea *models.Idea) lifecycleState {
	return lifecycleState{Status: idea.Status, SubStatus: idea.SubStatus}
}

// Transition describes one ledger entry
type Transition struct {
	From    lifecycleState
	To      lifecycleState
	Actor   string
	At      time.Time
	Comment string
	// Since is the sub_status_updated_at read before the change
	Since *time.Time
}

// HistoryTracker appends status history rows. It never updates or deletes them.
type HistoryTracker struct{}

// Record appends exactly one row for t
func (HistoryTracker) Record(ctx context.Context, repos *repository.Repos, ideaID uuid.UUID, t Transition) (*models.StatusHistory, error) {
	entry := &models.StatusHistory{
		IdeaID:          ideaID,
		FromStatus:      t.From.Status,
		ToStatus:        t.To.Status,
		FromSubStatus:   t.From.SubStatus,
		ToSubStatus:     t.To.SubStatus,
		ChangedBy:       t.Actor,
		ChangedAt:       t.At,
		Comment:         t.Comment,
		DurationMinutes: DurationMinutes(t.Since, t.At),
	}
	if err := repos.StatusHistory.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append status history: %w", err)
	}
	return entry, nil
}
