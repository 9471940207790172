package config

import (
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"

	"github.com/bulbacards/packmint/internal/domain"
)

// Config holds the API server configuration
type Config struct {
	Port           int
	LogLevel       string
	LogFormat      string
	Environment    string
	ServiceName    string
	Version        string
	APIKey         string // API key for authentication
	TrustedProxies []string

	Chain ChainConfig
}

// ChainConfig holds everything needed to talk to the pack contract.
// It is shared by the API server and the operator CLI.
type ChainConfig struct {
	RPCURL                 string
	ChainID                int64
	ContractAddress        string
	WalletConnectProjectID string

	EligibilitySource string
	HoldersFile       string

	DefaultMintPriceWei *big.Int
	IPFSGateway         string

	ScanBatchSize     int
	ScanUseBatchCall  bool
	ScanUsePackIndex  bool
	MetadataCacheSize int
	MetadataTimeout   time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		Environment:    getEnv("ENVIRONMENT", "dev"),
		ServiceName:    getEnv("SERVICE_NAME", "packmint"),
		Version:        getEnv("VERSION", "dev"),
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	chain, err := loadChain()
	if err != nil {
		return nil, err
	}
	cfg.Chain = *chain

	return cfg, nil
}

// LoadChain loads only the chain settings. Used by tools that do not serve HTTP.
func LoadChain() (*ChainConfig, error) {
	_ = godotenv.Load()
	return loadChain()
}

func loadChain() (*ChainConfig, error) {
	cfg := &ChainConfig{
		RPCURL:                 getEnv("RPC_URL", DefaultRPCURL),
		ContractAddress:        getEnv("CONTRACT_ADDRESS", ""),
		WalletConnectProjectID: getEnv("WALLETCONNECT_PROJECT_ID", ""),
		EligibilitySource:      strings.ToLower(getEnv("ELIGIBILITY_SOURCE", EligibilitySourceContract)),
		HoldersFile:            getEnv("HOLDERS_FILE", ""),
		IPFSGateway:            getEnv("IPFS_GATEWAY", DefaultIPFSGateway),
		ScanBatchSize:          getEnvAsInt("SCAN_BATCH_SIZE", domain.DefaultScanBatchSize),
		ScanUseBatchCall:       getEnvAsBool("SCAN_USE_BATCH_CALL", false),
		ScanUsePackIndex:       getEnvAsBool("SCAN_USE_PACK_INDEX", true),
		MetadataCacheSize:      getEnvAsInt("METADATA_CACHE_SIZE", DefaultMetadataCacheSize),
		MetadataTimeout:        getEnvAsDuration("METADATA_TIMEOUT", DefaultMetadataTimeout),
	}

	chainID, err := strconv.ParseInt(getEnv("CHAIN_ID", strconv.Itoa(domain.PulseChainID)), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CHAIN_ID value: %w", err)
	}
	cfg.ChainID = chainID

	if cfg.ContractAddress == "" {
		return nil, fmt.Errorf("CONTRACT_ADDRESS environment variable must be set")
	}
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid CONTRACT_ADDRESS value: %q", cfg.ContractAddress)
	}

	price, ok := new(big.Int).SetString(getEnv("DEFAULT_MINT_PRICE_WEI", domain.DefaultMintPriceWei), 10)
	if !ok || price.Sign() < 0 {
		return nil, fmt.Errorf("invalid DEFAULT_MINT_PRICE_WEI value")
	}
	cfg.DefaultMintPriceWei = price

	switch cfg.EligibilitySource {
	case EligibilitySourceContract:
	case EligibilitySourceStatic, EligibilitySourceCombined:
		if cfg.HoldersFile == "" {
			return nil, fmt.Errorf("HOLDERS_FILE must be set when ELIGIBILITY_SOURCE is %s", cfg.EligibilitySource)
		}
	default:
		return nil, fmt.Errorf("invalid ELIGIBILITY_SOURCE value: %q", cfg.EligibilitySource)
	}

	if cfg.ScanBatchSize <= 0 {
		cfg.ScanBatchSize = domain.DefaultScanBatchSize
	}
	if cfg.MetadataCacheSize <= 0 {
		cfg.MetadataCacheSize = DefaultMetadataCacheSize
	}

	return cfg, nil
}

// UsesStaticList reports whether the holders file participates in eligibility.
func (c *ChainConfig) UsesStaticList() bool {
	return c.EligibilitySource == EligibilitySourceStatic || c.EligibilitySource == EligibilitySourceCombined
}

// UsesContract reports whether contract reads participate in eligibility.
func (c *ChainConfig) UsesContract() bool {
	return c.EligibilitySource == EligibilitySourceContract || c.EligibilitySource == EligibilitySourceCombined
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default when the variable is unset or not an integer.
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsBool returns the default when the variable is unset or unparseable.
func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvAsDuration returns the default when the variable is unset or not a duration.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
