package bootstrap

import (
	"log/slog"
	"strings"

	"github.com/bulbacards/packmint/internal/config"
	"github.com/bulbacards/packmint/internal/logger"
)

// SetupLogger installs the process-wide slog logger from cfg and logs the
// startup banner.
func SetupLogger(cfg *config.Config) *slog.Logger {
	env := strings.ToLower(cfg.Environment)
	addSource := env == "dev" || env == "development"

	l := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	).WithChainID(cfg.Chain.ChainID))

	l.Info(LogMsgLoggingInitialized, "level", strings.ToUpper(cfg.LogLevel), "format", cfg.LogFormat)
	l.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version)

	l.Debug(LogMsgConfigurationLoad,
		"port", cfg.Port,
		"rpc_url", cfg.Chain.RPCURL,
		"contract", cfg.Chain.ContractAddress,
		"eligibility_source", cfg.Chain.EligibilitySource,
		"scan_batch_size", cfg.Chain.ScanBatchSize,
		"scan_batch_call", cfg.Chain.ScanUseBatchCall,
		"scan_pack_index", cfg.Chain.ScanUsePackIndex)

	return l
}
