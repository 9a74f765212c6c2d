package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric
const Namespace = "pomofarm"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameSessionsCompleted = "sessions_completed_total"
	MetricNameModeChanges       = "timer_mode_changes_total"
	MetricNameCropsReady        = "crops_ready_total"
	MetricNameProductsReady     = "products_ready_total"
	MetricNameItemsHarvested    = "items_harvested_total"
	MetricNameLevelUps          = "level_ups_total"
	MetricNameItemsSold         = "items_sold_total"
	MetricNameGoldEarned        = "gold_earned_total"
	MetricNameItemsBought       = "items_bought_total"
	MetricNameGoldSpent         = "gold_spent_total"
	MetricNameGachaPulls        = "gacha_pulls_total"
	MetricNameGachaSpent        = "gacha_currency_spent_total"
	MetricNameGachaItems        = "gacha_items_total"
)

// Persistence metric names
const (
	MetricNameSavesTotal   = "saves_total"
	MetricNameSaveDuration = "save_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextSessionsCompleted = "Focus sessions completed by countdown"
	HelpTextModeChanges       = "Timer mode changes by target mode"
	HelpTextCropsReady        = "Crops that reached full growth"
	HelpTextProductsReady     = "Animal products that became collectable"
	HelpTextItemsHarvested    = "Items gained from harvests and product collection"
	HelpTextLevelUps          = "Player level increases"
	HelpTextItemsSold         = "Total number of items sold"
	HelpTextGoldEarned        = "Total gold earned from selling items"
	HelpTextItemsBought       = "Total number of items bought"
	HelpTextGoldSpent         = "Total gold spent in the shop"
	HelpTextGachaPulls        = "Gacha pulls by pool and pull type"
	HelpTextGachaSpent        = "Currency spent on gacha pulls"
	HelpTextGachaItems        = "Gacha rewards by rarity"
)

// Persistence metric help text
const (
	HelpTextSavesTotal   = "Snapshot save attempts by result"
	HelpTextSaveDuration = "Snapshot save latency in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelItem     = "item"
	LabelMode     = "mode"
	LabelPool     = "pool"
	LabelPullType = "pull_type"
	LabelCurrency = "currency"
	LabelRarity   = "rarity"
	LabelResult   = "result"
)

// Save results
const (
	SaveResultOK      = "ok"
	SaveResultError   = "error"
	SaveResultSkipped = "skipped"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SaveLatencyBuckets covers local disk writes through remote database round trips
var SaveLatencyBuckets = []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
