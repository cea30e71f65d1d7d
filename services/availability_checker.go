package services

import (
	"context"
	"time"

	"verifika-project/microservices/assignments-service/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AvailabilityChecker answers whether a technician's calendar is free over a
// date interval. Only non-terminal assignments occupy the calendar.
type AvailabilityChecker struct {
	repository repositories.AssignmentRepository
}

func NewAvailabilityChecker(repository repositories.AssignmentRepository) *AvailabilityChecker {
	return &AvailabilityChecker{repository: repository}
}

// IsAvailable reports whether [start, end] is free of conflicts for the
// technician, and returns every conflicting assignment ID so callers can
// report detail. Pass a non-zero excludeID when re-checking an existing
// assignment's own dates.
func (c *AvailabilityChecker) IsAvailable(ctx context.Context, technicianID string, start, end time.Time, excludeID primitive.ObjectID) (bool, []string, error) {
	conflicts, err := c.repository.FindOverlapping(ctx, technicianID, start, end, excludeID)
	if err != nil {
		return false, nil, err
	}
	if len(conflicts) == 0 {
		return true, nil, nil
	}

	conflictingIDs := make([]string, 0, len(conflicts))
	for _, assignment := range conflicts {
		conflictingIDs = append(conflictingIDs, assignment.ID.Hex())
	}
	return false, conflictingIDs, nil
}

// Overlaps reports whether two closed date intervals share at least one day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}
