package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Chain Metrics
var (
	ContractCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameContractCallsTotal,
			Help: HelpTextContractCallsTotal,
		},
		[]string{LabelMethod, LabelStatus},
	)

	ContractCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameContractCallDuration,
			Help:    HelpTextContractCallDuration,
			Buckets: ChainLatencyBuckets,
		},
		[]string{LabelMethod},
	)

	TransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTransactionsTotal,
			Help: HelpTextTransactionsTotal,
		},
		[]string{LabelMethod, LabelStatus},
	)

	MetadataFetchErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMetadataFetchErrors,
			Help: HelpTextMetadataFetchErrors,
		},
	)

	MetadataCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMetadataCacheHits,
			Help: HelpTextMetadataCacheHits,
		},
	)

	ScanDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameScanDuration,
			Help:    HelpTextScanDuration,
			Buckets: ChainLatencyBuckets,
		},
		[]string{LabelKind},
	)

	ScanOwnedTokens = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameScanOwnedTokens,
			Help: HelpTextScanOwnedTokens,
		},
		[]string{LabelKind},
	)

	ScanFailedBalanceReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScanFailedBalanceRead,
			Help: HelpTextScanFailedBalanceRead,
		},
		[]string{LabelKind},
	)

	ScanIndexFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameScanIndexFallbacks,
			Help: HelpTextScanIndexFallbacks,
		},
	)
)

// Business Metrics
var (
	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuotesTotal,
			Help: HelpTextQuotesTotal,
		},
		[]string{LabelTier, LabelFree},
	)
)
