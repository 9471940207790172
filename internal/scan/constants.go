package scan

const (
	LogMsgScanComplete      = "Ownership scan complete"
	LogMsgBalanceReadFailed = "Balance read failed, treating token as not owned"
	LogMsgBatchReadFailed   = "Batch balance read failed, treating batch as not owned"
	LogMsgMetadataFailed    = "Metadata fetch failed, keeping token without metadata"
	LogMsgIndexFailed       = "Pack listing read failed, falling back to range scan"
	LogMsgIndexComplete     = "Indexed pack lookup complete"
)
