package works

import (
	"github.com/gemba/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeCost = "Cost"

// Event type constants
const (
	EventTypeCostRecorded = "CostRecorded"
	EventTypeCostUpdated  = "CostUpdated"
	EventTypeCostDeleted  = "CostDeleted"
)

// CostRecordedEvent is published when a cost is recorded against a project
type CostRecordedEvent struct {
	shared.BaseDomainEvent
	CostID    uuid.UUID `json:"cost_id"`
	ProjectID uuid.UUID `json:"project_id"`
	Category  string    `json:"category"`
	Amount    int64     `json:"amount"`
}

// NewCostRecordedEvent creates a new CostRecordedEvent
func NewCostRecordedEvent(cost *Cost) *CostRecordedEvent {
	return &CostRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCostRecorded, AggregateTypeCost, cost.ID, cost.TenantID),
		CostID:          cost.ID,
		ProjectID:       cost.ProjectID,
		Category:        cost.Category,
		Amount:          cost.Amount,
	}
}

// CostUpdatedEvent is published when a cost is edited
type CostUpdatedEvent struct {
	shared.BaseDomainEvent
	CostID    uuid.UUID `json:"cost_id"`
	ProjectID uuid.UUID `json:"project_id"`
	Amount    int64     `json:"amount"`
}

// NewCostUpdatedEvent creates a new CostUpdatedEvent
func NewCostUpdatedEvent(cost *Cost) *CostUpdatedEvent {
	return &CostUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCostUpdated, AggregateTypeCost, cost.ID, cost.TenantID),
		CostID:          cost.ID,
		ProjectID:       cost.ProjectID,
		Amount:          cost.Amount,
	}
}
