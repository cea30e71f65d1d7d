package models

import (
	"fmt"
	"strings"
)

// Business failures are typed so callers can branch with errors.As instead
// of string matching. Anything not listed here that bubbles out of a
// collaborator is wrapped in DependencyError.

// NotFoundError reports a missing assignment, technician or client.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// TechnicianUnavailableError reports a technician that is missing or inactive.
type TechnicianUnavailableError struct {
	TechnicianID string
}

func (e *TechnicianUnavailableError) Error() string {
	return fmt.Sprintf("technician %s not found or inactive", e.TechnicianID)
}

// ClientUnavailableError reports a client that is missing or inactive.
type ClientUnavailableError struct {
	ClientID string
}

func (e *ClientUnavailableError) Error() string {
	return fmt.Sprintf("client %s not found or inactive", e.ClientID)
}

// CompetencyMismatchError reports the required competencies the technician
// does not hold.
type CompetencyMismatchError struct {
	TechnicianID string
	Missing      []string
}

func (e *CompetencyMismatchError) Error() string {
	return fmt.Sprintf("technician %s lacks required competencies: %s",
		e.TechnicianID, strings.Join(e.Missing, ", "))
}

// SchedulingConflictError reports the non-terminal assignments whose date
// ranges overlap the requested interval.
type SchedulingConflictError struct {
	TechnicianID   string
	ConflictingIDs []string
}

func (e *SchedulingConflictError) Error() string {
	return fmt.Sprintf("technician %s has conflicting assignments in the requested period: %s",
		e.TechnicianID, strings.Join(e.ConflictingIDs, ", "))
}

// InvalidTransitionError reports an illegal status change.
type InvalidTransitionError struct {
	From AssignmentStatus
	To   AssignmentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

// ValidationError reports a structural input violation, checked before any
// directory or repository lookup.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DependencyError wraps a persistence or collaborator failure so the calling
// layer can tell infrastructure trouble apart from business rejections.
type DependencyError struct {
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s dependency failed: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
