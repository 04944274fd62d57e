package persistence

import (
	"context"

	"go.uber.org/zap"

	"github.com/gemba/backend/internal/domain/shared"
	"github.com/gemba/backend/internal/infrastructure/logger"
)

// eventSource is satisfied by every aggregate root that buffers domain events.
type eventSource interface {
	GetDomainEvents() []shared.DomainEvent
	ClearDomainEvents()
}

// drainDomainEvents consumes the events an aggregate recorded during the
// current unit of work. Events are logged with their identifying fields and
// the buffer is cleared so a later Save on the same instance does not replay
// them. Called only after the aggregate has been persisted.
func drainDomainEvents(ctx context.Context, source eventSource) {
	events := source.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	source.ClearDomainEvents()

	log := logger.L(ctx)
	for _, event := range events {
		log.Info("domain event",
			zap.String("event_id", event.EventID().String()),
			zap.String("event_type", event.EventType()),
			zap.String("aggregate_type", event.AggregateType()),
			zap.String("aggregate_id", event.AggregateID().String()),
			zap.String("tenant_id", event.TenantID().String()),
			zap.Time("occurred_at", event.OccurredAt()),
		)
	}
}
