package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AssignmentStatus string

const (
	StatusActive    AssignmentStatus = "active"
	StatusPaused    AssignmentStatus = "paused"
	StatusCompleted AssignmentStatus = "completed"
	StatusCancelled AssignmentStatus = "cancelled"
)

// IsValid reports whether s is one of the four known statuses.
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether s no longer occupies the technician's calendar.
func (s AssignmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type AssignmentType string

const (
	TypeProject     AssignmentType = "project"
	TypeSupport     AssignmentType = "support"
	TypeMaintenance AssignmentType = "maintenance"
	TypeConsulting  AssignmentType = "consulting"
)

func (t AssignmentType) IsValid() bool {
	switch t {
	case TypeProject, TypeSupport, TypeMaintenance, TypeConsulting:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Assignment is a bounded engagement of one technician to one client.
type Assignment struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TechnicianID         string             `json:"technicianId" bson:"technicianId"`
	ClientID             string             `json:"clientId" bson:"clientId"`
	ProjectLabel         string             `json:"projectLabel,omitempty" bson:"projectLabel,omitempty"`
	Type                 AssignmentType     `json:"type" bson:"type"`
	Status               AssignmentStatus   `json:"status" bson:"status"`
	Priority             Priority           `json:"priority" bson:"priority"`
	Description          string             `json:"description" bson:"description"`
	Notes                string             `json:"notes,omitempty" bson:"notes,omitempty"`
	StartDate            time.Time          `json:"startDate" bson:"startDate"`
	EstimatedEndDate     time.Time          `json:"estimatedEndDate" bson:"estimatedEndDate"`
	ActualEndDate        *time.Time         `json:"actualEndDate,omitempty" bson:"actualEndDate,omitempty"`
	EstimatedHours       float64            `json:"estimatedHours" bson:"estimatedHours"`
	RequiredCompetencies []string           `json:"requiredCompetencies,omitempty" bson:"requiredCompetencies,omitempty"`
	AgreedRate           float64            `json:"agreedRate,omitempty" bson:"agreedRate,omitempty"`
	Currency             string             `json:"currency,omitempty" bson:"currency,omitempty"`
	EstimatedCost        float64            `json:"estimatedCost,omitempty" bson:"estimatedCost,omitempty"`
	CreatedBy            string             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateAssignmentInput carries everything needed to create an assignment.
type CreateAssignmentInput struct {
	TechnicianID         string         `json:"technicianId"`
	ClientID             string         `json:"clientId"`
	ProjectLabel         string         `json:"projectLabel"`
	Type                 AssignmentType `json:"type"`
	Priority             Priority       `json:"priority"`
	Description          string         `json:"description"`
	Notes                string         `json:"notes"`
	StartDate            time.Time      `json:"startDate"`
	EstimatedEndDate     time.Time      `json:"estimatedEndDate"`
	EstimatedHours       float64        `json:"estimatedHours"`
	RequiredCompetencies []string       `json:"requiredCompetencies"`
	AgreedRate           float64        `json:"agreedRate"`
	Currency             string         `json:"currency"`
	EstimatedCost        float64        `json:"estimatedCost"`
	CreatedBy            string         `json:"createdBy"`
}

// AssignmentPatch holds the mutable fields of an assignment. Nil means
// "leave unchanged". Status, technician, client, start date and the
// competency set are not patchable; status changes go through ChangeStatus.
type AssignmentPatch struct {
	ProjectLabel     *string         `json:"projectLabel,omitempty"`
	Type             *AssignmentType `json:"type,omitempty"`
	Priority         *Priority       `json:"priority,omitempty"`
	Description      *string         `json:"description,omitempty"`
	Notes            *string         `json:"notes,omitempty"`
	EstimatedEndDate *time.Time      `json:"estimatedEndDate,omitempty"`
	EstimatedHours   *float64        `json:"estimatedHours,omitempty"`
	AgreedRate       *float64        `json:"agreedRate,omitempty"`
	Currency         *string         `json:"currency,omitempty"`
	EstimatedCost    *float64        `json:"estimatedCost,omitempty"`
}

// IsEmpty reports whether the patch would change nothing.
func (p AssignmentPatch) IsEmpty() bool {
	return p.ProjectLabel == nil && p.Type == nil && p.Priority == nil &&
		p.Description == nil && p.Notes == nil && p.EstimatedEndDate == nil &&
		p.EstimatedHours == nil && p.AgreedRate == nil && p.Currency == nil &&
		p.EstimatedCost == nil
}

// AssignmentFilter narrows and pages a listing. Zero values mean "no filter".
type AssignmentFilter struct {
	TechnicianID  string           `json:"technicianId,omitempty"`
	ClientID      string           `json:"clientId,omitempty"`
	Status        AssignmentStatus `json:"status,omitempty"`
	Type          AssignmentType   `json:"type,omitempty"`
	Priority      Priority         `json:"priority,omitempty"`
	StartDateFrom *time.Time       `json:"startDateFrom,omitempty"`
	StartDateTo   *time.Time       `json:"startDateTo,omitempty"`
	Search        string           `json:"search,omitempty"`
	SortBy        string           `json:"sortBy,omitempty"`
	SortAscending bool             `json:"sortAscending,omitempty"`
	Page          int              `json:"page,omitempty"`
	Limit         int              `json:"limit,omitempty"`
}

// ProgressReport is derived from the activity ledger at read time; it is
// never persisted.
type ProgressReport struct {
	AssignmentID        string  `json:"assignmentId"`
	PercentComplete     int     `json:"percentComplete"`
	HoursWorked         float64 `json:"hoursWorked"`
	CompletedActivities int     `json:"completedActivities"`
	TotalActivities     int     `json:"totalActivities"`
}

// AssignmentStats aggregates the whole collection for dashboards.
type AssignmentStats struct {
	Total               int     `json:"total" bson:"total"`
	Active              int     `json:"active" bson:"active"`
	Paused              int     `json:"paused" bson:"paused"`
	Completed           int     `json:"completed" bson:"completed"`
	Cancelled           int     `json:"cancelled" bson:"cancelled"`
	TotalEstimatedHours float64 `json:"totalEstimatedHours" bson:"totalEstimatedHours"`
}
