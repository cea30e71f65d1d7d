package services

import (
	"context"
	"math"

	"verifika-project/microservices/assignments-service/models"
)

// ProgressCalculator derives completion progress from the activity ledger.
// The result is a read-time view; it is never written back to the
// assignment, so it cannot drift from the ledger.
type ProgressCalculator struct {
	ledger ActivityLedger
}

func NewProgressCalculator(ledger ActivityLedger) *ProgressCalculator {
	return &ProgressCalculator{ledger: ledger}
}

// Compute returns the percentage of completed activities (rounded to the
// nearest integer, 0 when the assignment has no activities) and the hours
// worked so far.
func (c *ProgressCalculator) Compute(ctx context.Context, assignmentID string) (models.ProgressReport, error) {
	stats, err := c.ledger.StatsFor(ctx, assignmentID)
	if err != nil {
		return models.ProgressReport{}, err
	}

	percent := 0
	if stats.TotalActivities > 0 {
		percent = int(math.Round(float64(stats.CompletedActivities) / float64(stats.TotalActivities) * 100))
	}

	return models.ProgressReport{
		AssignmentID:        assignmentID,
		PercentComplete:     percent,
		HoursWorked:         stats.HoursWorked,
		CompletedActivities: stats.CompletedActivities,
		TotalActivities:     stats.TotalActivities,
	}, nil
}
