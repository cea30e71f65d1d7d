package services

import "verifika-project/microservices/assignments-service/models"

// AssignmentStateMachine governs the assignment lifecycle:
//
//	active → paused, completed, cancelled
//	paused → active, cancelled
//
// completed and cancelled are terminal; nothing leaves them.
type AssignmentStateMachine struct{}

var allowedTransitions = map[models.AssignmentStatus][]models.AssignmentStatus{
	models.StatusActive: {models.StatusPaused, models.StatusCompleted, models.StatusCancelled},
	models.StatusPaused: {models.StatusActive, models.StatusCancelled},
}

// CanTransition reports whether current → requested is in the table.
func (AssignmentStateMachine) CanTransition(current, requested models.AssignmentStatus) bool {
	for _, allowed := range allowedTransitions[current] {
		if allowed == requested {
			return true
		}
	}
	return false
}

// Transition returns the new status, or an InvalidTransitionError naming the
// offending pair. A requested value outside the four known statuses is a
// ValidationError, not a transition failure.
func (m AssignmentStateMachine) Transition(current, requested models.AssignmentStatus) (models.AssignmentStatus, error) {
	if !requested.IsValid() {
		return "", &models.ValidationError{Field: "status", Reason: "unknown status " + string(requested)}
	}
	if !m.CanTransition(current, requested) {
		return "", &models.InvalidTransitionError{From: current, To: requested}
	}
	return requested, nil
}
