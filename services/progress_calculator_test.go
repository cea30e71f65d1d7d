package services

import (
	"context"
	"errors"
	"testing"

	"verifika-project/microservices/assignments-service/models"
)

type fakeLedger struct {
	stats map[string]models.ActivityStats
	err   error
}

func (f *fakeLedger) StatsFor(_ context.Context, assignmentID string) (models.ActivityStats, error) {
	if f.err != nil {
		return models.ActivityStats{}, f.err
	}
	return f.stats[assignmentID], nil
}

func TestProgressCalculatorCompute(t *testing.T) {
	tests := []struct {
		name        string
		stats       models.ActivityStats
		wantPercent int
	}{
		{"no activities", models.ActivityStats{}, 0},
		{"three of four", models.ActivityStats{TotalActivities: 4, CompletedActivities: 3, HoursWorked: 12.5}, 75},
		{"one of three rounds down", models.ActivityStats{TotalActivities: 3, CompletedActivities: 1}, 33},
		{"two of three rounds up", models.ActivityStats{TotalActivities: 3, CompletedActivities: 2}, 67},
		{"all complete", models.ActivityStats{TotalActivities: 5, CompletedActivities: 5}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calculator := NewProgressCalculator(&fakeLedger{
				stats: map[string]models.ActivityStats{"a1": tt.stats},
			})
			report, err := calculator.Compute(context.Background(), "a1")
			if err != nil {
				t.Fatalf("Compute failed: %v", err)
			}
			if report.PercentComplete != tt.wantPercent {
				t.Fatalf("PercentComplete = %d, want %d", report.PercentComplete, tt.wantPercent)
			}
			if report.HoursWorked != tt.stats.HoursWorked {
				t.Fatalf("HoursWorked = %v, want %v", report.HoursWorked, tt.stats.HoursWorked)
			}
		})
	}
}

func TestProgressCalculatorLedgerFailure(t *testing.T) {
	cause := errors.New("ledger down")
	calculator := NewProgressCalculator(&fakeLedger{
		err: &models.DependencyError{Dependency: "activity-ledger", Err: cause},
	})

	_, err := calculator.Compute(context.Background(), "a1")
	var dep *models.DependencyError
	if !errors.As(err, &dep) {
		t.Fatalf("expected DependencyError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("DependencyError must unwrap to the original cause")
	}
}
