package bootstrap

import (
	"fmt"

	"github.com/GEON1999/PomoFarm/internal/event"
	"github.com/GEON1999/PomoFarm/internal/logger"
	"github.com/GEON1999/PomoFarm/internal/metrics"
	"github.com/GEON1999/PomoFarm/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *sse.Hub
	State    sse.StateSource
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (game counters)
// - SSE subscriber (pushes events and state to connected browsers)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	logger.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(deps.Hub, deps.EventBus, deps.State).Subscribe()
	logger.Info(LogMsgSSESubscriberRegistered)

	return nil
}
