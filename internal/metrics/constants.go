package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Chain metric names
const (
	MetricNameContractCallsTotal    = "contract_calls_total"
	MetricNameContractCallDuration  = "contract_call_duration_seconds"
	MetricNameTransactionsTotal     = "transactions_total"
	MetricNameMetadataFetchErrors   = "metadata_fetch_errors_total"
	MetricNameMetadataCacheHits     = "metadata_cache_hits_total"
	MetricNameScanDuration          = "scan_duration_seconds"
	MetricNameScanOwnedTokens       = "scan_owned_tokens"
	MetricNameScanFailedBalanceRead = "scan_failed_balance_reads_total"
	MetricNameScanIndexFallbacks    = "scan_index_fallbacks_total"
)

// Business metric names
const (
	MetricNameQuotesTotal = "quotes_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Chain metric help text
const (
	HelpTextContractCallsTotal    = "Total number of pack contract calls"
	HelpTextContractCallDuration  = "Pack contract call latency in seconds"
	HelpTextTransactionsTotal     = "Total number of submitted transactions"
	HelpTextMetadataFetchErrors   = "Total number of failed token metadata fetches"
	HelpTextMetadataCacheHits     = "Total number of token metadata lookups served from memory"
	HelpTextScanDuration          = "Ownership scan latency in seconds"
	HelpTextScanOwnedTokens       = "Distinct tokens found by the last ownership scan"
	HelpTextScanFailedBalanceRead = "Balance reads that failed during ownership scans"
	HelpTextScanIndexFallbacks    = "Pack lookups that fell back from the contract listing to a range scan"
)

// Business metric help text
const (
	HelpTextQuotesTotal = "Total number of mint quotes computed"
)

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelKind   = "kind"
	LabelTier   = "tier"
	LabelFree   = "free"
)

// Label values
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Latency buckets
var (
	HTTPLatencyBuckets  = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	ChainLatencyBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}
)
