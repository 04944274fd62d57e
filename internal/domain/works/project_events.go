package works

import (
	"github.com/gemba/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeProject = "Project"

// Event type constants
const (
	EventTypeProjectCreated        = "ProjectCreated"
	EventTypeProjectUpdated        = "ProjectUpdated"
	EventTypeProjectStatusChanged  = "ProjectStatusChanged"
	EventTypeProjectBillingChanged = "ProjectBillingChanged"
	EventTypeProjectDeleted        = "ProjectDeleted"
)

// ProjectCreatedEvent is published when a new project is created
type ProjectCreatedEvent struct {
	shared.BaseDomainEvent
	ProjectID        uuid.UUID `json:"project_id"`
	Code             string    `json:"code"`
	Name             string    `json:"name"`
	Period           int       `json:"period"`
	UserID           uuid.UUID `json:"user_id"`
	IsGeneralExpense bool      `json:"is_general_expense"`
}

// NewProjectCreatedEvent creates a new ProjectCreatedEvent
func NewProjectCreatedEvent(project *Project) *ProjectCreatedEvent {
	return &ProjectCreatedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeProjectCreated, AggregateTypeProject, project.ID, project.TenantID),
		ProjectID:        project.ID,
		Code:             project.Code,
		Name:             project.Name,
		Period:           project.Period,
		UserID:           project.UserID,
		IsGeneralExpense: project.IsGeneralExpense,
	}
}

// ProjectUpdatedEvent is published when a project's details change
type ProjectUpdatedEvent struct {
	shared.BaseDomainEvent
	ProjectID      uuid.UUID `json:"project_id"`
	Code           string    `json:"code"`
	ContractAmount int64     `json:"contract_amount"`
}

// NewProjectUpdatedEvent creates a new ProjectUpdatedEvent
func NewProjectUpdatedEvent(project *Project) *ProjectUpdatedEvent {
	return &ProjectUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProjectUpdated, AggregateTypeProject, project.ID, project.TenantID),
		ProjectID:       project.ID,
		Code:            project.Code,
		ContractAmount:  project.ContractAmount,
	}
}

// ProjectStatusChangedEvent is published on lifecycle transitions
type ProjectStatusChangedEvent struct {
	shared.BaseDomainEvent
	ProjectID uuid.UUID     `json:"project_id"`
	Code      string        `json:"code"`
	OldStatus ProjectStatus `json:"old_status"`
	NewStatus ProjectStatus `json:"new_status"`
}

// NewProjectStatusChangedEvent creates a new ProjectStatusChangedEvent
func NewProjectStatusChangedEvent(project *Project, oldStatus, newStatus ProjectStatus) *ProjectStatusChangedEvent {
	return &ProjectStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProjectStatusChanged, AggregateTypeProject, project.ID, project.TenantID),
		ProjectID:       project.ID,
		Code:            project.Code,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// ProjectBillingChangedEvent is published when invoice or payment dates move
type ProjectBillingChangedEvent struct {
	shared.BaseDomainEvent
	ProjectID uuid.UUID `json:"project_id"`
	Billed    bool      `json:"billed"`
	Paid      bool      `json:"paid"`
}

// NewProjectBillingChangedEvent creates a new ProjectBillingChangedEvent
func NewProjectBillingChangedEvent(project *Project) *ProjectBillingChangedEvent {
	return &ProjectBillingChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProjectBillingChanged, AggregateTypeProject, project.ID, project.TenantID),
		ProjectID:       project.ID,
		Billed:          project.IsBilled(),
		Paid:            project.IsPaid(),
	}
}
