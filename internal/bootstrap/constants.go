package bootstrap

// Log level string constants
const (
	LogLevelDebug = "DEBUG"
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
)

// Log messages for startup
const (
	LogMsgLoggingInitialized = "Logging initialized"
	LogMsgStarting           = "Starting packmint"
	LogMsgConfigurationLoad  = "Configuration loaded"
	LogMsgHoldersLoaded      = "Holder list loaded"
	LogMsgEligibilitySource  = "Eligibility source selected"
	LogMsgSignerConfigured   = "Transaction signer configured"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgChainClosed          = "Chain connection closed"
)
