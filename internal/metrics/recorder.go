package metrics

import (
	"strconv"
	"time"
)

func status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}

// ObserveContractCall records one contract read or write started at start.
func ObserveContractCall(method string, start time.Time, err error) {
	ContractCallsTotal.WithLabelValues(method, status(err)).Inc()
	ContractCallDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

// ObserveTransaction records the final outcome of a submitted transaction.
func ObserveTransaction(method string, err error) {
	TransactionsTotal.WithLabelValues(method, status(err)).Inc()
}

// ObserveScan records a finished ownership scan.
func ObserveScan(kind string, start time.Time, owned int) {
	ScanDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	ScanOwnedTokens.WithLabelValues(kind).Set(float64(owned))
}

// RecordQuote counts a computed quote by tier.
func RecordQuote(tier string, free bool) {
	QuotesTotal.WithLabelValues(tier, strconv.FormatBool(free)).Inc()
}
