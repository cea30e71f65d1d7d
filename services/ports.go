package services

import (
	"context"

	"verifika-project/microservices/assignments-service/models"
)

// Collaborator directories consumed by the engine. The HTTP adapters in the
// clients package implement these; tests use in-process fakes.

// TechnicianDirectory resolves technician existence, activity status and
// declared competencies.
type TechnicianDirectory interface {
	GetTechnician(ctx context.Context, id string) (*models.Technician, bool, error)
}

// ClientDirectory resolves client existence and activity status.
type ClientDirectory interface {
	GetClient(ctx context.Context, id string) (*models.Client, bool, error)
}

// ActivityLedger returns completed/total activity counts and worked hours
// for one assignment.
type ActivityLedger interface {
	StatsFor(ctx context.Context, assignmentID string) (models.ActivityStats, error)
}
