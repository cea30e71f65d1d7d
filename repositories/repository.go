package repositories

import (
	"context"
	"time"

	"verifika-project/microservices/assignments-service/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssignmentRepository is the persistence port for assignments. Both the
// MongoDB implementation and the in-memory implementation satisfy it; the
// service layer only ever sees this interface.
//
// Update replaces the stored document matched by ID. Callers mutate a loaded
// copy and save it back; the service serializes those read-modify-write
// cycles per technician, so the repository itself does not need compare-and-
// swap semantics.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Assignment, bool, error)
	FindAll(ctx context.Context, filter models.AssignmentFilter) ([]models.Assignment, int64, error)
	Update(ctx context.Context, assignment *models.Assignment) error

	// FindOverlapping returns the non-terminal assignments of a technician
	// whose [startDate, estimatedEndDate] interval overlaps [start, end]
	// (closed intervals). excludeID, when non-zero, is left out of the
	// result so an assignment never conflicts with itself.
	FindOverlapping(ctx context.Context, technicianID string, start, end time.Time, excludeID primitive.ObjectID) ([]models.Assignment, error)

	Stats(ctx context.Context) (models.AssignmentStats, error)
}

// Listing defaults and bounds. The sort allow-list is fixed so callers
// cannot inject arbitrary field names into queries.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

var allowedSortFields = map[string]bool{
	"startDate":      true,
	"createdAt":      true,
	"status":         true,
	"estimatedHours": true,
}

// NormalizeFilter clamps pagination and resolves the sort key against the
// allow-list. Unknown sort keys fall back to startDate.
func NormalizeFilter(filter models.AssignmentFilter) models.AssignmentFilter {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}
	if !allowedSortFields[filter.SortBy] {
		filter.SortBy = "startDate"
	}
	return filter
}
