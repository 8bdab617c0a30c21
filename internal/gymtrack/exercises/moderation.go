package exercises

import (
	"errors"
	"fmt"
)

var ErrTerminalStatus = errors.New("exercise already moderated")

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Transition applies a moderation decision to the current status.
// Only pending exercises can be moderated; approved and rejected are terminal.
// Returns the new status and visibility.
func Transition(from Status, decision Decision) (Status, bool, error) {
	if from != StatusPending {
		return from, from == StatusApproved, fmt.Errorf("%w: status is %s", ErrTerminalStatus, from)
	}

	switch decision {
	case DecisionApprove:
		return StatusApproved, true, nil
	case DecisionReject:
		return StatusRejected, false, nil
	default:
		return from, false, fmt.Errorf("unknown moderation decision: %s", decision)
	}
}
