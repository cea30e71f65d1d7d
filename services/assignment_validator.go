package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"verifika-project/microservices/assignments-service/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field bounds carried over from the assignment schema.
const (
	descriptionMinLength = 10
	descriptionMaxLength = 2000
	notesMaxLength       = 1000
	estimatedHoursMax    = 10000
	competenciesMax      = 20
	competencyMinLength  = 2
	competencyMaxLength  = 100
)

// AssignmentValidator decides whether a proposed assignment may be created.
// Checks run in a fixed order and stop at the first failure: structural
// field validation, technician lookup, client lookup, competency match,
// availability.
type AssignmentValidator struct {
	technicians  TechnicianDirectory
	clients      ClientDirectory
	availability *AvailabilityChecker
	matcher      CompetencyMatcher
}

func NewAssignmentValidator(technicians TechnicianDirectory, clients ClientDirectory, availability *AvailabilityChecker) *AssignmentValidator {
	return &AssignmentValidator{
		technicians:  technicians,
		clients:      clients,
		availability: availability,
	}
}

// Validate returns nil when the input may be persisted, otherwise one of the
// typed errors from the models package.
func (v *AssignmentValidator) Validate(ctx context.Context, input models.CreateAssignmentInput) error {
	if err := v.validateFields(input); err != nil {
		return err
	}

	technician, found, err := v.technicians.GetTechnician(ctx, input.TechnicianID)
	if err != nil {
		return err
	}
	if !found || !technician.Active {
		return &models.TechnicianUnavailableError{TechnicianID: input.TechnicianID}
	}

	client, found, err := v.clients.GetClient(ctx, input.ClientID)
	if err != nil {
		return err
	}
	if !found || !client.Active {
		return &models.ClientUnavailableError{ClientID: input.ClientID}
	}

	if len(input.RequiredCompetencies) > 0 {
		satisfied, missing := v.matcher.Match(technician.Competencies, input.RequiredCompetencies)
		if !satisfied {
			return &models.CompetencyMismatchError{TechnicianID: input.TechnicianID, Missing: missing}
		}
	}

	available, conflictingIDs, err := v.availability.IsAvailable(ctx, input.TechnicianID, input.StartDate, input.EstimatedEndDate, primitive.NilObjectID)
	if err != nil {
		return err
	}
	if !available {
		return &models.SchedulingConflictError{TechnicianID: input.TechnicianID, ConflictingIDs: conflictingIDs}
	}

	return nil
}

func (v *AssignmentValidator) validateFields(input models.CreateAssignmentInput) error {
	if input.TechnicianID == "" {
		return &models.ValidationError{Field: "technicianId", Reason: "is required"}
	}
	if input.ClientID == "" {
		return &models.ValidationError{Field: "clientId", Reason: "is required"}
	}
	if length := utf8.RuneCountInString(input.Description); length < descriptionMinLength || length > descriptionMaxLength {
		return &models.ValidationError{
			Field:  "description",
			Reason: fmt.Sprintf("must be between %d and %d characters", descriptionMinLength, descriptionMaxLength),
		}
	}
	if utf8.RuneCountInString(input.Notes) > notesMaxLength {
		return &models.ValidationError{Field: "notes", Reason: fmt.Sprintf("must not exceed %d characters", notesMaxLength)}
	}
	if input.StartDate.IsZero() {
		return &models.ValidationError{Field: "startDate", Reason: "is required"}
	}
	if input.EstimatedEndDate.IsZero() {
		return &models.ValidationError{Field: "estimatedEndDate", Reason: "is required"}
	}
	if !input.EstimatedEndDate.After(input.StartDate) {
		return &models.ValidationError{Field: "estimatedEndDate", Reason: "must be after startDate"}
	}
	if input.EstimatedHours < 0 || input.EstimatedHours > estimatedHoursMax {
		return &models.ValidationError{Field: "estimatedHours", Reason: fmt.Sprintf("must be between 0 and %d", estimatedHoursMax)}
	}
	if input.AgreedRate < 0 {
		return &models.ValidationError{Field: "agreedRate", Reason: "must not be negative"}
	}
	if input.EstimatedCost < 0 {
		return &models.ValidationError{Field: "estimatedCost", Reason: "must not be negative"}
	}
	if input.Type != "" && !input.Type.IsValid() {
		return &models.ValidationError{Field: "type", Reason: "must be project, support, maintenance or consulting"}
	}
	if input.Priority != "" && !input.Priority.IsValid() {
		return &models.ValidationError{Field: "priority", Reason: "must be low, medium, high or critical"}
	}
	if len(input.RequiredCompetencies) > competenciesMax {
		return &models.ValidationError{Field: "requiredCompetencies", Reason: fmt.Sprintf("must not exceed %d entries", competenciesMax)}
	}
	for _, competency := range input.RequiredCompetencies {
		if length := utf8.RuneCountInString(competency); length < competencyMinLength || length > competencyMaxLength {
			return &models.ValidationError{
				Field:  "requiredCompetencies",
				Reason: fmt.Sprintf("each competency must be between %d and %d characters", competencyMinLength, competencyMaxLength),
			}
		}
	}
	return nil
}
