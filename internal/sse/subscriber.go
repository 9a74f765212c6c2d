package sse

import (
	"context"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/event"
	"github.com/GEON1999/PomoFarm/internal/logger"
)

// StateSource provides the current game state
type StateSource interface {
	Snapshot() domain.Snapshot
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub   *Hub
	bus   event.Bus
	state StateSource
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus, state StateSource) *Subscriber {
	return &Subscriber{
		hub:   hub,
		bus:   bus,
		state: state,
	}
}

// Subscribe registers handlers for every game event type
func (s *Subscriber) Subscribe() {
	forwarded := make([]string, 0, len(domain.GameEventTypes))
	for _, t := range domain.GameEventTypes {
		if t != domain.EventTypeStateChanged {
			forwarded = append(forwarded, t)
		}
	}

	event.SubscribeAll(s.bus, s.handleGameEvent, forwarded...)
	s.bus.Subscribe(event.Type(domain.EventTypeStateChanged), s.handleStateChanged)

	logger.Info(LogMsgSubscriberReady, "types", domain.GameEventTypes)
}

// handleGameEvent forwards the event payload unchanged
func (s *Subscriber) handleGameEvent(ctx context.Context, evt event.Event) error {
	command := commandOf(evt)
	s.hub.BroadcastCommand(string(evt.Type), command, evt.Payload)

	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type, "command", command)
	return nil
}

// handleStateChanged attaches the full state so clients can redraw in one message
func (s *Subscriber) handleStateChanged(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.StateChangedPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn("Invalid state changed event payload", "error", err)
		return nil
	}

	s.hub.BroadcastCommand(string(evt.Type), payload.Command, StatePayload{
		Command: payload.Command,
		State:   s.state.Snapshot(),
	})
	return nil
}

func commandOf(evt event.Event) string {
	if cmd, ok := evt.GetMetadataValue(event.MetadataKeyCommand).(string); ok {
		return cmd
	}
	return ""
}
