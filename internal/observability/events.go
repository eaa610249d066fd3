package observability

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/events"
)

// EventObserver logs domain events and feeds the event counters.
type EventObserver struct {
	logger  *zap.Logger
	metrics *Metrics
}

// NewEventObserver creates the observer.
func NewEventObserver(logger *zap.Logger, metrics *Metrics) *EventObserver {
	return &EventObserver{logger: logger, metrics: metrics}
}

// RegisterHandlers subscribes the observer to all ticket events.
func (o *EventObserver) RegisterHandlers(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventTicketCreated,
		events.EventTicketStatusChanged,
		events.EventTicketAssigned,
		events.EventTicketDeleted,
	} {
		dispatcher.Subscribe(eventType, o.handle)
	}
}

func (o *EventObserver) handle(_ context.Context, event events.Event) error {
	o.metrics.RecordEvent(string(event.Type))
	o.logger.Info(string(event.Type),
		zap.String("ticket_id", event.TicketID),
		zap.Any("payload", event.Payload))
	return nil
}
