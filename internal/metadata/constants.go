package metadata

const (
	LogMsgFetchFailed = "Failed to fetch token metadata"
)
