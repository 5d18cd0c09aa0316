package service

import (
	"math"
)

// GateDecision is the outcome of evaluating a bounty against the approval threshold
type GateDecision struct {
	RequiresApproval bool
	// IsApproved is nil while an approver still has to decide
	IsApproved *bool
}

// EvaluateBountyGate decides whether a bounty needs sign-off.
// Amounts are compared in whole cents so 50.01 is above a 50.00 threshold and 50.00 is not.
func EvaluateBountyGate(isMonetary, isExpensed bool, amount, threshold float64) GateDecision {
	if isMonetary && isExpensed && toCents(amount) > toCents(threshold) {
		return GateDecision{RequiresApproval: true}
	}
	approved := true
	return GateDecision{RequiresApproval: false, IsApproved: &approved}
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
