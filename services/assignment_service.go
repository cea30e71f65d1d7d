package services

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"verifika-project/microservices/assignments-service/logging"
	"verifika-project/microservices/assignments-service/models"
	"verifika-project/microservices/assignments-service/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// timeNow is swapped out in tests that pin the clock.
var timeNow = time.Now

// AssignmentService is the orchestrating façade over the assignment engine.
// It is the only type the routing layer talks to.
type AssignmentService struct {
	repository   repositories.AssignmentRepository
	validator    *AssignmentValidator
	availability *AvailabilityChecker
	stateMachine AssignmentStateMachine
	progress     *ProgressCalculator

	// technicianLocks serializes validate-then-persist per technician so two
	// concurrent creations cannot both pass the availability check. The
	// granularity is one technician; unrelated technicians never contend.
	mu              sync.Mutex
	technicianLocks map[string]*sync.Mutex
}

func NewAssignmentService(
	repository repositories.AssignmentRepository,
	technicians TechnicianDirectory,
	clients ClientDirectory,
	ledger ActivityLedger,
) *AssignmentService {
	availability := NewAvailabilityChecker(repository)
	return &AssignmentService{
		repository:      repository,
		validator:       NewAssignmentValidator(technicians, clients, availability),
		availability:    availability,
		progress:        NewProgressCalculator(ledger),
		technicianLocks: make(map[string]*sync.Mutex),
	}
}

func (s *AssignmentService) technicianLock(technicianID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.technicianLocks[technicianID]
	if !ok {
		lock = &sync.Mutex{}
		s.technicianLocks[technicianID] = lock
	}
	return lock
}

// CreateAssignment validates the input and persists a new active assignment.
// The whole validate-then-persist cycle runs under the technician's lock.
func (s *AssignmentService) CreateAssignment(ctx context.Context, input models.CreateAssignmentInput) (*models.Assignment, error) {
	lock := s.technicianLock(input.TechnicianID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.validator.Validate(ctx, input); err != nil {
		logging.Logger.Infof("Event ID: ASSIGNMENT_CREATE_REJECTED, Description: Rejected assignment for technician %s: %v", input.TechnicianID, err)
		return nil, err
	}

	if input.Type == "" {
		input.Type = models.TypeProject
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}

	now := timeNow().UTC()
	assignment := &models.Assignment{
		TechnicianID:         input.TechnicianID,
		ClientID:             input.ClientID,
		ProjectLabel:         input.ProjectLabel,
		Type:                 input.Type,
		Status:               models.StatusActive,
		Priority:             input.Priority,
		Description:          input.Description,
		Notes:                input.Notes,
		StartDate:            input.StartDate,
		EstimatedEndDate:     input.EstimatedEndDate,
		EstimatedHours:       input.EstimatedHours,
		RequiredCompetencies: dedupeCompetencies(input.RequiredCompetencies),
		AgreedRate:           input.AgreedRate,
		Currency:             input.Currency,
		EstimatedCost:        input.EstimatedCost,
		CreatedBy:            input.CreatedBy,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	id, err := s.repository.Create(ctx, assignment)
	if err != nil {
		logging.Logger.Errorf("Event ID: ASSIGNMENT_CREATE_FAILED, Description: Failed to persist assignment for technician %s: %v", input.TechnicianID, err)
		return nil, err
	}
	assignment.ID = id

	logging.Logger.Infof("Event ID: ASSIGNMENT_CREATED, Description: Assignment %s created for technician %s and client %s", id.Hex(), input.TechnicianID, input.ClientID)
	return assignment, nil
}

// UpdateAssignment applies a patch to the mutable fields of an assignment.
// Status is not patchable; it only moves through ChangeStatus. A change to
// estimatedEndDate re-runs the availability check excluding the assignment
// itself.
func (s *AssignmentService) UpdateAssignment(ctx context.Context, id primitive.ObjectID, patch models.AssignmentPatch) (*models.Assignment, error) {
	if patch.IsEmpty() {
		return nil, &models.ValidationError{Field: "patch", Reason: "no mutable fields provided"}
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	// First load only discovers the owning technician; the authoritative
	// read happens again under the lock.
	existing, found, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &models.NotFoundError{Resource: "assignment", ID: id.Hex()}
	}

	lock := s.technicianLock(existing.TechnicianID)
	lock.Lock()
	defer lock.Unlock()

	assignment, found, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &models.NotFoundError{Resource: "assignment", ID: id.Hex()}
	}

	if patch.EstimatedEndDate != nil {
		if !patch.EstimatedEndDate.After(assignment.StartDate) {
			return nil, &models.ValidationError{Field: "estimatedEndDate", Reason: "must be after startDate"}
		}
		if !assignment.Status.IsTerminal() {
			available, conflictingIDs, err := s.availability.IsAvailable(ctx, assignment.TechnicianID, assignment.StartDate, *patch.EstimatedEndDate, assignment.ID)
			if err != nil {
				return nil, err
			}
			if !available {
				return nil, &models.SchedulingConflictError{TechnicianID: assignment.TechnicianID, ConflictingIDs: conflictingIDs}
			}
		}
		assignment.EstimatedEndDate = *patch.EstimatedEndDate
	}
	if patch.ProjectLabel != nil {
		assignment.ProjectLabel = *patch.ProjectLabel
	}
	if patch.Type != nil {
		assignment.Type = *patch.Type
	}
	if patch.Priority != nil {
		assignment.Priority = *patch.Priority
	}
	if patch.Description != nil {
		assignment.Description = *patch.Description
	}
	if patch.Notes != nil {
		assignment.Notes = *patch.Notes
	}
	if patch.EstimatedHours != nil {
		assignment.EstimatedHours = *patch.EstimatedHours
	}
	if patch.AgreedRate != nil {
		assignment.AgreedRate = *patch.AgreedRate
	}
	if patch.Currency != nil {
		assignment.Currency = *patch.Currency
	}
	if patch.EstimatedCost != nil {
		assignment.EstimatedCost = *patch.EstimatedCost
	}
	assignment.UpdatedAt = timeNow().UTC()

	if err := s.repository.Update(ctx, assignment); err != nil {
		return nil, err
	}

	logging.Logger.Infof("Event ID: ASSIGNMENT_UPDATED, Description: Assignment %s updated", id.Hex())
	return assignment, nil
}

// ChangeStatus moves an assignment through the lifecycle state machine.
// Completing an assignment records the actual end date.
func (s *AssignmentService) ChangeStatus(ctx context.Context, id primitive.ObjectID, requested models.AssignmentStatus, actor string) (*models.Assignment, error) {
	existing, found, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &models.NotFoundError{Resource: "assignment", ID: id.Hex()}
	}

	lock := s.technicianLock(existing.TechnicianID)
	lock.Lock()
	defer lock.Unlock()

	assignment, found, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &models.NotFoundError{Resource: "assignment", ID: id.Hex()}
	}

	newStatus, err := s.stateMachine.Transition(assignment.Status, requested)
	if err != nil {
		logging.Logger.Infof("Event ID: STATUS_CHANGE_REJECTED, Description: Assignment %s cannot move from %s to %s (actor: %s)", id.Hex(), assignment.Status, requested, actor)
		return nil, err
	}

	previous := assignment.Status
	assignment.Status = newStatus
	if newStatus == models.StatusCompleted {
		completedAt := timeNow().UTC()
		assignment.ActualEndDate = &completedAt
	}
	assignment.UpdatedAt = timeNow().UTC()

	if err := s.repository.Update(ctx, assignment); err != nil {
		return nil, err
	}

	logging.Logger.Infof("Event ID: STATUS_CHANGED, Description: Assignment %s moved from %s to %s (actor: %s)", id.Hex(), previous, newStatus, actor)
	return assignment, nil
}

// GetAssignment fetches one assignment by ID.
func (s *AssignmentService) GetAssignment(ctx context.Context, id primitive.ObjectID) (*models.Assignment, error) {
	assignment, found, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &models.NotFoundError{Resource: "assignment", ID: id.Hex()}
	}
	return assignment, nil
}

// ListAssignments returns one page of assignments plus the total match count.
func (s *AssignmentService) ListAssignments(ctx context.Context, filter models.AssignmentFilter) ([]models.Assignment, int64, error) {
	return s.repository.FindAll(ctx, filter)
}

// ListActive returns non-paged shortcuts used by dashboards.
func (s *AssignmentService) ListActive(ctx context.Context, filter models.AssignmentFilter) ([]models.Assignment, int64, error) {
	filter.Status = models.StatusActive
	return s.repository.FindAll(ctx, filter)
}

func (s *AssignmentService) ListByTechnician(ctx context.Context, technicianID string, filter models.AssignmentFilter) ([]models.Assignment, int64, error) {
	filter.TechnicianID = technicianID
	return s.repository.FindAll(ctx, filter)
}

func (s *AssignmentService) ListByClient(ctx context.Context, clientID string, filter models.AssignmentFilter) ([]models.Assignment, int64, error) {
	filter.ClientID = clientID
	return s.repository.FindAll(ctx, filter)
}

// GetProgress derives the assignment's completion percentage and worked
// hours from the activity ledger.
func (s *AssignmentService) GetProgress(ctx context.Context, id primitive.ObjectID) (models.ProgressReport, error) {
	if _, found, err := s.repository.FindByID(ctx, id); err != nil {
		return models.ProgressReport{}, err
	} else if !found {
		return models.ProgressReport{}, &models.NotFoundError{Resource: "assignment", ID: id.Hex()}
	}
	return s.progress.Compute(ctx, id.Hex())
}

// GetStats aggregates status counts and estimated hours over all assignments.
func (s *AssignmentService) GetStats(ctx context.Context) (models.AssignmentStats, error) {
	return s.repository.Stats(ctx)
}

func validatePatch(patch models.AssignmentPatch) error {
	if patch.Description != nil {
		if length := utf8.RuneCountInString(*patch.Description); length < descriptionMinLength || length > descriptionMaxLength {
			return &models.ValidationError{
				Field:  "description",
				Reason: fmt.Sprintf("must be between %d and %d characters", descriptionMinLength, descriptionMaxLength),
			}
		}
	}
	if patch.Notes != nil && utf8.RuneCountInString(*patch.Notes) > notesMaxLength {
		return &models.ValidationError{Field: "notes", Reason: fmt.Sprintf("must not exceed %d characters", notesMaxLength)}
	}
	if patch.EstimatedHours != nil && (*patch.EstimatedHours < 0 || *patch.EstimatedHours > estimatedHoursMax) {
		return &models.ValidationError{Field: "estimatedHours", Reason: fmt.Sprintf("must be between 0 and %d", estimatedHoursMax)}
	}
	if patch.AgreedRate != nil && *patch.AgreedRate < 0 {
		return &models.ValidationError{Field: "agreedRate", Reason: "must not be negative"}
	}
	if patch.EstimatedCost != nil && *patch.EstimatedCost < 0 {
		return &models.ValidationError{Field: "estimatedCost", Reason: "must not be negative"}
	}
	if patch.Type != nil && !patch.Type.IsValid() {
		return &models.ValidationError{Field: "type", Reason: "must be project, support, maintenance or consulting"}
	}
	if patch.Priority != nil && !patch.Priority.IsValid() {
		return &models.ValidationError{Field: "priority", Reason: "must be low, medium, high or critical"}
	}
	return nil
}

func dedupeCompetencies(competencies []string) []string {
	if len(competencies) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(competencies))
	var unique []string
	for _, competency := range competencies {
		if seen[competency] {
			continue
		}
		seen[competency] = true
		unique = append(unique, competency)
	}
	return unique
}
