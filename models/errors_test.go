package models

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorKindsAreDistinguishable(t *testing.T) {
	var (
		notFound   *NotFoundError
		mismatch   *CompetencyMismatchError
		conflict   *SchedulingConflictError
		transition *InvalidTransitionError
		dependency *DependencyError
	)

	err := fmt.Errorf("wrapped: %w", &CompetencyMismatchError{TechnicianID: "tech-1", Missing: []string{"Kotlin"}})
	if !errors.As(err, &mismatch) {
		t.Fatal("errors.As must find CompetencyMismatchError through wrapping")
	}
	if errors.As(err, &notFound) || errors.As(err, &conflict) || errors.As(err, &transition) || errors.As(err, &dependency) {
		t.Fatal("a mismatch must not match the other kinds")
	}
	if mismatch.Missing[0] != "Kotlin" {
		t.Fatalf("missing = %v", mismatch.Missing)
	}
}

func TestDependencyErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := &DependencyError{Dependency: "mongodb", Err: cause}

	if !errors.Is(err, cause) {
		t.Fatal("DependencyError must unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "mongodb") {
		t.Fatalf("message should name the dependency: %q", err.Error())
	}
}

func TestErrorMessagesCarryDetail(t *testing.T) {
	tests := []struct {
		err  error
		want []string
	}{
		{&NotFoundError{Resource: "assignment", ID: "abc"}, []string{"assignment", "abc"}},
		{&TechnicianUnavailableError{TechnicianID: "tech-1"}, []string{"tech-1"}},
		{&ClientUnavailableError{ClientID: "client-9"}, []string{"client-9"}},
		{&SchedulingConflictError{TechnicianID: "tech-1", ConflictingIDs: []string{"a1", "a2"}}, []string{"a1", "a2"}},
		{&InvalidTransitionError{From: StatusCompleted, To: StatusActive}, []string{"completed", "active"}},
		{&ValidationError{Field: "description", Reason: "too short"}, []string{"description", "too short"}},
	}

	for _, tt := range tests {
		message := tt.err.Error()
		for _, fragment := range tt.want {
			if !strings.Contains(message, fragment) {
				t.Errorf("%T message %q missing %q", tt.err, message, fragment)
			}
		}
	}
}

func TestStatusPredicates(t *testing.T) {
	for _, status := range []AssignmentStatus{StatusActive, StatusPaused, StatusCompleted, StatusCancelled} {
		if !status.IsValid() {
			t.Errorf("%s should be valid", status)
		}
	}
	if AssignmentStatus("archived").IsValid() {
		t.Error("unknown status should be invalid")
	}
	if StatusActive.IsTerminal() || StatusPaused.IsTerminal() {
		t.Error("active and paused are non-terminal")
	}
	if !StatusCompleted.IsTerminal() || !StatusCancelled.IsTerminal() {
		t.Error("completed and cancelled are terminal")
	}
}
