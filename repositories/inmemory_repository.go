package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"verifika-project/microservices/assignments-service/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InMemoryAssignmentRepository is a map-backed AssignmentRepository. It backs
// the test suites and small embedded deployments; its filter, sort and
// pagination semantics track the MongoDB implementation.
type InMemoryAssignmentRepository struct {
	mu          sync.RWMutex
	assignments map[primitive.ObjectID]models.Assignment
}

func NewInMemoryAssignmentRepository() *InMemoryAssignmentRepository {
	return &InMemoryAssignmentRepository{
		assignments: make(map[primitive.ObjectID]models.Assignment),
	}
}

func (r *InMemoryAssignmentRepository) Create(_ context.Context, assignment *models.Assignment) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if assignment.ID.IsZero() {
		assignment.ID = primitive.NewObjectID()
	}
	r.assignments[assignment.ID] = cloneAssignment(*assignment)
	return assignment.ID, nil
}

func (r *InMemoryAssignmentRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Assignment, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assignment, ok := r.assignments[id]
	if !ok {
		return nil, false, nil
	}
	copied := cloneAssignment(assignment)
	return &copied, true, nil
}

func (r *InMemoryAssignmentRepository) FindAll(_ context.Context, filter models.AssignmentFilter) ([]models.Assignment, int64, error) {
	filter = NormalizeFilter(filter)

	r.mu.RLock()
	var matched []models.Assignment
	for _, assignment := range r.assignments {
		if matchesFilter(assignment, filter) {
			matched = append(matched, cloneAssignment(assignment))
		}
	}
	r.mu.RUnlock()

	sortAssignments(matched, filter.SortBy, filter.SortAscending)

	total := int64(len(matched))
	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(matched) {
		return []models.Assignment{}, total, nil
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *InMemoryAssignmentRepository) Update(_ context.Context, assignment *models.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assignments[assignment.ID]; !ok {
		return &models.NotFoundError{Resource: "assignment", ID: assignment.ID.Hex()}
	}
	r.assignments[assignment.ID] = cloneAssignment(*assignment)
	return nil
}

func (r *InMemoryAssignmentRepository) FindOverlapping(_ context.Context, technicianID string, start, end time.Time, excludeID primitive.ObjectID) ([]models.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var overlapping []models.Assignment
	for id, assignment := range r.assignments {
		if assignment.TechnicianID != technicianID || assignment.Status.IsTerminal() {
			continue
		}
		if !excludeID.IsZero() && id == excludeID {
			continue
		}
		if !assignment.StartDate.After(end) && !assignment.EstimatedEndDate.Before(start) {
			overlapping = append(overlapping, cloneAssignment(assignment))
		}
	}
	sort.Slice(overlapping, func(i, j int) bool {
		return overlapping[i].ID.Hex() < overlapping[j].ID.Hex()
	})
	return overlapping, nil
}

func (r *InMemoryAssignmentRepository) Stats(_ context.Context) (models.AssignmentStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stats models.AssignmentStats
	for _, assignment := range r.assignments {
		stats.Total++
		stats.TotalEstimatedHours += assignment.EstimatedHours
		switch assignment.Status {
		case models.StatusActive:
			stats.Active++
		case models.StatusPaused:
			stats.Paused++
		case models.StatusCompleted:
			stats.Completed++
		case models.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

func matchesFilter(a models.Assignment, f models.AssignmentFilter) bool {
	if f.TechnicianID != "" && a.TechnicianID != f.TechnicianID {
		return false
	}
	if f.ClientID != "" && a.ClientID != f.ClientID {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Type != "" && a.Type != f.Type {
		return false
	}
	if f.Priority != "" && a.Priority != f.Priority {
		return false
	}
	if f.StartDateFrom != nil && a.StartDate.Before(*f.StartDateFrom) {
		return false
	}
	if f.StartDateTo != nil && a.StartDate.After(*f.StartDateTo) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Description), needle) &&
			!strings.Contains(strings.ToLower(a.ProjectLabel), needle) &&
			!strings.Contains(strings.ToLower(a.Notes), needle) {
			return false
		}
	}
	return true
}

// sortAssignments orders by the allow-listed key with the assignment ID as a
// deterministic tiebreak, so identical queries page identically.
func sortAssignments(assignments []models.Assignment, sortBy string, ascending bool) {
	sort.Slice(assignments, func(i, j int) bool {
		a, b := assignments[i], assignments[j]
		var less, equal bool
		switch sortBy {
		case "createdAt":
			less, equal = a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
		case "status":
			less, equal = a.Status < b.Status, a.Status == b.Status
		case "estimatedHours":
			less, equal = a.EstimatedHours < b.EstimatedHours, a.EstimatedHours == b.EstimatedHours
		default:
			less, equal = a.StartDate.Before(b.StartDate), a.StartDate.Equal(b.StartDate)
		}
		if equal {
			return a.ID.Hex() < b.ID.Hex()
		}
		if ascending {
			return less
		}
		return !less
	})
}

func cloneAssignment(a models.Assignment) models.Assignment {
	if a.RequiredCompetencies != nil {
		a.RequiredCompetencies = append([]string(nil), a.RequiredCompetencies...)
	}
	if a.ActualEndDate != nil {
		end := *a.ActualEndDate
		a.ActualEndDate = &end
	}
	return a
}
