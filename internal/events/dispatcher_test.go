package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var got []Event
	d.Subscribe(EventTicketCreated, func(_ context.Context, event Event) error {
		got = append(got, event)
		return nil
	})

	event := Event{
		ID:       "event-1",
		Type:     EventTicketCreated,
		TicketID: "ticket-1",
		Payload:  TicketCreatedPayload{Priority: domain.TicketPriorityHigh, Title: "Printer offline"},
	}
	require.NoError(t, d.Publish(context.Background(), event))
	require.Len(t, got, 1)
	require.Equal(t, "ticket-1", got[0].TicketID)

	// Other event types are not delivered to this subscriber.
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketDeleted}))
	require.Len(t, got, 1)
}

func TestDispatcherIgnoresHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()
	calls := 0
	d.Subscribe(EventTicketStatusChanged, func(context.Context, Event) error {
		calls++
		return errors.New("handler failure")
	})
	d.Subscribe(EventTicketStatusChanged, func(context.Context, Event) error {
		calls++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketStatusChanged}))
	require.Equal(t, 2, calls)
}
