package service

import (
	"idea-marketplace-backend/internal/database/models"
	apperrors "idea-marketplace-backend/internal/errors"
)

// transitionRule decides whether a sub-status target is reachable from the current sub-status
type transitionRule func(from, to models.SubStatus) bool

func anyWorkingTarget(_, to models.SubStatus) bool {
	return to != models.SubStatusNone
}

func onlyVerified(_, to models.SubStatus) bool {
	return to == models.SubStatusVerified
}

func never(_, _ models.SubStatus) bool {
	return false
}

// subStatusTransitions is keyed by the idea status; each rule sees the current and requested sub-status
var subStatusTransitions = map[models.IdeaStatus]transitionRule{
	models.IdeaStatusOpen:     never,
	models.IdeaStatusClaimed:  anyWorkingTarget,
	models.IdeaStatusComplete: onlyVerified,
}

// CheckSubStatusTransition validates a sub-status change for an idea in status/current
func CheckSubStatusTransition(status models.IdeaStatus, current, target models.SubStatus) error {
	if !target.IsValid() {
		return apperrors.ErrInvalidSubStatus
	}
	rule, ok := subStatusTransitions[status]
	if !ok || !rule(current, target) {
		return apperrors.ErrSubStatusTransitionDenied
	}
	return nil
}
