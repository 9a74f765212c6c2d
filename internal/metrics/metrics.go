package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventsPublished,
			Help:      HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventHandlerErrors,
			Help:      HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Timer and farm metrics
var (
	SessionsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameSessionsCompleted,
			Help:      HelpTextSessionsCompleted,
		},
	)

	ModeChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameModeChanges,
			Help:      HelpTextModeChanges,
		},
		[]string{LabelMode},
	)

	CropsReady = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCropsReady,
			Help:      HelpTextCropsReady,
		},
		[]string{LabelItem},
	)

	ProductsReady = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameProductsReady,
			Help:      HelpTextProductsReady,
		},
		[]string{LabelType},
	)

	ItemsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsHarvested,
			Help:      HelpTextItemsHarvested,
		},
		[]string{LabelItem},
	)
)

// Economy metrics
var (
	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameLevelUps,
			Help:      HelpTextLevelUps,
		},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsSold,
			Help:      HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	GoldEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameGoldEarned,
			Help:      HelpTextGoldEarned,
		},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsBought,
			Help:      HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	GoldSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameGoldSpent,
			Help:      HelpTextGoldSpent,
		},
	)

	GachaPulls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameGachaPulls,
			Help:      HelpTextGachaPulls,
		},
		[]string{LabelPool, LabelPullType},
	)

	GachaSpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameGachaSpent,
			Help:      HelpTextGachaSpent,
		},
		[]string{LabelCurrency},
	)

	GachaItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameGachaItems,
			Help:      HelpTextGachaItems,
		},
		[]string{LabelRarity},
	)
)

// Persistence metrics
var (
	SavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameSavesTotal,
			Help:      HelpTextSavesTotal,
		},
		[]string{LabelResult},
	)

	SaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameSaveDuration,
			Help:      HelpTextSaveDuration,
			Buckets:   SaveLatencyBuckets,
		},
	)
)
