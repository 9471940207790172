package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgMissingAddress    = "Missing address path parameter"

	// Readiness
	ErrMsgChainUnreachable = "chain RPC unreachable"
)

// Log messages for handler events.
const (
	LogMsgMintPrepared   = "Mint prepared"
	LogMsgOpenPrepared   = "Open prepared"
	LogMsgTokensListed   = "Tokens listed"
	LogMsgStatsRetrieved = "Collection stats retrieved"
	LogMsgReadinessFail  = "Readiness check failed"
	LogMsgEncodeFailed   = "Failed to encode JSON response"
	LogMsgWriteFailed    = "Failed to write response buffer"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)
