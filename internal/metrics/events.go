package metrics

import (
	"context"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/event"
	"github.com/GEON1999/PomoFarm/internal/logger"
)

// EventMetricsCollector subscribes to game events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every game event
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	event.SubscribeAll(bus, e.HandleEvent, domain.GameEventTypes...)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func record(evt event.Event) error {
	switch string(evt.Type) {
	case domain.EventTypeSessionCompleted:
		SessionsCompleted.Inc()

	case domain.EventTypeModeChanged:
		p, err := event.DecodePayload[domain.ModeChangedPayload](evt.Payload)
		if err != nil {
			return err
		}
		ModeChanges.WithLabelValues(string(p.To)).Inc()

	case domain.EventTypeCropReady:
		p, err := event.DecodePayload[domain.CropReadyPayload](evt.Payload)
		if err != nil {
			return err
		}
		CropsReady.WithLabelValues(p.CropID).Inc()

	case domain.EventTypeProductReady:
		p, err := event.DecodePayload[domain.ProductReadyPayload](evt.Payload)
		if err != nil {
			return err
		}
		ProductsReady.WithLabelValues(p.AnimalType).Inc()

	case domain.EventTypeHarvested:
		p, err := event.DecodePayload[domain.HarvestedPayload](evt.Payload)
		if err != nil {
			return err
		}
		ItemsHarvested.WithLabelValues(p.ItemID).Add(float64(p.Quantity))

	case domain.EventTypeLevelUp:
		p, err := event.DecodePayload[domain.LevelUpPayload](evt.Payload)
		if err != nil {
			return err
		}
		LevelUps.Add(float64(p.NewLevel - p.OldLevel))

	case domain.EventTypeItemSold:
		p, err := event.DecodePayload[domain.ItemSoldPayload](evt.Payload)
		if err != nil {
			return err
		}
		ItemsSold.WithLabelValues(p.ItemID).Add(float64(p.Quantity))
		GoldEarned.Add(float64(p.TotalValue))

	case domain.EventTypeItemBought:
		p, err := event.DecodePayload[domain.ItemBoughtPayload](evt.Payload)
		if err != nil {
			return err
		}
		ItemsBought.WithLabelValues(p.ItemID).Add(float64(p.Quantity))
		GoldSpent.Add(float64(p.TotalCost))

	case domain.EventTypeGachaPulled:
		p, err := event.DecodePayload[domain.GachaPulledPayload](evt.Payload)
		if err != nil {
			return err
		}
		GachaPulls.WithLabelValues(string(p.Pool), string(p.PullType)).Inc()
		GachaSpent.WithLabelValues(string(p.Currency)).Add(float64(p.Cost))
		for _, item := range p.Items {
			GachaItems.WithLabelValues(string(item.Rarity)).Inc()
		}
	}
	return nil
}
