package domain

// Event type constants published on the event bus and forwarded to the presentation layer.
//
// Event types follow the pattern: <aggregate>.<action> (e.g., "timer.session_completed")
const (
	// EventTypeSessionCompleted is published when a focus session counts down to zero
	EventTypeSessionCompleted = "timer.session_completed"

	// EventTypeModeChanged is published whenever the timer switches between focus and break
	EventTypeModeChanged = "timer.mode_changed"

	// EventTypeCropReady is published when a plot reaches 100% growth
	EventTypeCropReady = "farm.crop_ready"

	// EventTypeProductReady is published when an animal has a product to collect
	EventTypeProductReady = "farm.product_ready"

	// EventTypeHarvested is published after a crop harvest or product collection
	EventTypeHarvested = "farm.harvested"

	// EventTypeLevelUp is published when awarded experience raises the player level
	EventTypeLevelUp = "ledger.level_up"

	// EventTypeItemSold is published after a successful sale
	EventTypeItemSold = "ledger.item_sold"

	// EventTypeItemBought is published after a successful shop purchase
	EventTypeItemBought = "shop.item_bought"

	// EventTypeGachaPulled is published after a successful gacha pull
	EventTypeGachaPulled = "gacha.pulled"

	// EventTypeStateChanged is published after any command that changed the game state
	EventTypeStateChanged = "game.state_changed"
)

// GameEventTypes lists every event the game publishes, in no particular order
var GameEventTypes = []string{
	EventTypeSessionCompleted,
	EventTypeModeChanged,
	EventTypeCropReady,
	EventTypeProductReady,
	EventTypeHarvested,
	EventTypeLevelUp,
	EventTypeItemSold,
	EventTypeItemBought,
	EventTypeGachaPulled,
	EventTypeStateChanged,
}
