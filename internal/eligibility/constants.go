package eligibility

const (
	LogMsgCountReadFailed = "Failed to read mint allowance from contract"
)
