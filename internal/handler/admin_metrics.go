package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/bulbacards/packmint/internal/metrics"
)

// AdminMetricsResponse is a JSON digest of the process metrics for operators
type AdminMetricsResponse struct {
	HTTP     HTTPMetrics     `json:"http"`
	Chain    ChainMetrics    `json:"chain"`
	Scans    ScanMetrics     `json:"scans"`
	Business BusinessMetrics `json:"business"`
}

type HTTPMetrics struct {
	RequestsTotalByStatus map[string]float64 `json:"requests_total_by_status"`
	AvgLatencyMs          float64            `json:"avg_latency_ms"`
	P95LatencyMs          float64            `json:"p95_latency_ms"`
	InFlight              float64            `json:"in_flight"`
}

type ChainMetrics struct {
	CallsByMethod        map[string]float64 `json:"calls_by_method"`
	CallErrorsByMethod   map[string]float64 `json:"call_errors_by_method"`
	TransactionsByStatus map[string]float64 `json:"transactions_by_status"`
	MetadataFetchErrors  float64            `json:"metadata_fetch_errors"`
	MetadataCacheHits    float64            `json:"metadata_cache_hits"`
}

type ScanMetrics struct {
	OwnedTokensByKind        map[string]float64 `json:"owned_tokens_by_kind"`
	FailedBalanceReadsByKind map[string]float64 `json:"failed_balance_reads_by_kind"`
	P95DurationMsByKind      map[string]float64 `json:"p95_duration_ms_by_kind"`
}

type BusinessMetrics struct {
	QuotesByTier map[string]float64 `json:"quotes_by_tier"`
	FreeQuotes   float64            `json:"free_quotes"`
}

// HandleGetAdminMetrics returns JSON-formatted metrics from Prometheus
// @Summary Admin metrics
// @Description Digest of HTTP, contract, scan and quote counters
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} AdminMetricsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/metrics [get]
func HandleGetAdminMetrics(gatherer prometheus.Gatherer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := gatherMetrics(gatherer)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to gather metrics")
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func gatherMetrics(gatherer prometheus.Gatherer) (*AdminMetricsResponse, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return nil, err
	}

	resp := &AdminMetricsResponse{
		HTTP: HTTPMetrics{RequestsTotalByStatus: make(map[string]float64)},
		Chain: ChainMetrics{
			CallsByMethod:        make(map[string]float64),
			CallErrorsByMethod:   make(map[string]float64),
			TransactionsByStatus: make(map[string]float64),
		},
		Scans: ScanMetrics{
			OwnedTokensByKind:        make(map[string]float64),
			FailedBalanceReadsByKind: make(map[string]float64),
			P95DurationMsByKind:      make(map[string]float64),
		},
		Business: BusinessMetrics{QuotesByTier: make(map[string]float64)},
	}

	for _, mf := range families {
		switch mf.GetName() {
		case metrics.MetricNameHTTPRequestsTotal:
			for _, m := range mf.GetMetric() {
				if status := getLabelValue(m, metrics.LabelStatus); status != "" {
					resp.HTTP.RequestsTotalByStatus[status] += m.GetCounter().GetValue()
				}
			}
		case metrics.MetricNameHTTPRequestDuration:
			// Series are per route; fold them into one histogram first.
			merged := mergeHistograms(mf.GetMetric())
			if merged.GetSampleCount() > 0 {
				resp.HTTP.AvgLatencyMs = merged.GetSampleSum() / float64(merged.GetSampleCount()) * 1000
			}
			resp.HTTP.P95LatencyMs = estimateQuantile(merged, 0.95) * 1000
		case metrics.MetricNameHTTPRequestsInFlight:
			for _, m := range mf.GetMetric() {
				resp.HTTP.InFlight += m.GetGauge().GetValue()
			}
		case metrics.MetricNameContractCallsTotal:
			for _, m := range mf.GetMetric() {
				method := getLabelValue(m, metrics.LabelMethod)
				resp.Chain.CallsByMethod[method] += m.GetCounter().GetValue()
				if getLabelValue(m, metrics.LabelStatus) == metrics.StatusError {
					resp.Chain.CallErrorsByMethod[method] += m.GetCounter().GetValue()
				}
			}
		case metrics.MetricNameTransactionsTotal:
			for _, m := range mf.GetMetric() {
				resp.Chain.TransactionsByStatus[getLabelValue(m, metrics.LabelStatus)] += m.GetCounter().GetValue()
			}
		case metrics.MetricNameMetadataFetchErrors:
			for _, m := range mf.GetMetric() {
				resp.Chain.MetadataFetchErrors += m.GetCounter().GetValue()
			}
		case metrics.MetricNameMetadataCacheHits:
			for _, m := range mf.GetMetric() {
				resp.Chain.MetadataCacheHits += m.GetCounter().GetValue()
			}
		case metrics.MetricNameScanOwnedTokens:
			for _, m := range mf.GetMetric() {
				resp.Scans.OwnedTokensByKind[getLabelValue(m, metrics.LabelKind)] = m.GetGauge().GetValue()
			}
		case metrics.MetricNameScanFailedBalanceRead:
			for _, m := range mf.GetMetric() {
				resp.Scans.FailedBalanceReadsByKind[getLabelValue(m, metrics.LabelKind)] += m.GetCounter().GetValue()
			}
		case metrics.MetricNameScanDuration:
			for _, m := range mf.GetMetric() {
				kind := getLabelValue(m, metrics.LabelKind)
				resp.Scans.P95DurationMsByKind[kind] = estimateQuantile(m.GetHistogram(), 0.95) * 1000
			}
		case metrics.MetricNameQuotesTotal:
			for _, m := range mf.GetMetric() {
				v := m.GetCounter().GetValue()
				resp.Business.QuotesByTier[getLabelValue(m, metrics.LabelTier)] += v
				if getLabelValue(m, metrics.LabelFree) == "true" {
					resp.Business.FreeQuotes += v
				}
			}
		}
	}

	return resp, nil
}

func getLabelValue(m *dto.Metric, labelName string) string {
	for _, label := range m.GetLabel() {
		if label.GetName() == labelName {
			return label.GetValue()
		}
	}
	return ""
}

// mergeHistograms sums series that share bucket bounds.
func mergeHistograms(series []*dto.Metric) *dto.Histogram {
	var (
		count   uint64
		sum     float64
		buckets []*dto.Bucket
	)
	for _, m := range series {
		hist := m.GetHistogram()
		if hist == nil {
			continue
		}
		count += hist.GetSampleCount()
		sum += hist.GetSampleSum()
		for i, b := range hist.GetBucket() {
			if i >= len(buckets) {
				upper, cum := b.GetUpperBound(), b.GetCumulativeCount()
				buckets = append(buckets, &dto.Bucket{UpperBound: &upper, CumulativeCount: &cum})
				continue
			}
			cum := buckets[i].GetCumulativeCount() + b.GetCumulativeCount()
			buckets[i].CumulativeCount = &cum
		}
	}
	return &dto.Histogram{SampleCount: &count, SampleSum: &sum, Bucket: buckets}
}

// estimateQuantile approximates the given quantile from a histogram
func estimateQuantile(hist *dto.Histogram, quantile float64) float64 {
	totalCount := hist.GetSampleCount()
	if totalCount == 0 {
		return 0
	}

	targetCount := float64(totalCount) * quantile
	buckets := hist.GetBucket()
	for _, bucket := range buckets {
		if float64(bucket.GetCumulativeCount()) >= targetCount {
			return bucket.GetUpperBound()
		}
	}

	if len(buckets) > 0 {
		return buckets[len(buckets)-1].GetUpperBound()
	}
	return 0
}
