package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("API_KEY", "secure-key")
	t.Setenv("RPC_URL", "https://rpc.example")
	t.Setenv("CONTRACT_ADDRESS", testContract)
	t.Setenv("WALLETCONNECT_PROJECT_ID", "wc")
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("CONTRACT_ADDRESS", "")
	t.Setenv("RPC_URL", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "RPC_URL, CONTRACT_ADDRESS")
}

func TestValidateEnv_AllSet(t *testing.T) {
	setRequired(t)
	assert.NoError(t, ValidateEnv())
}

func TestValidateEnvWithWarnings(t *testing.T) {
	t.Run("clean environment has no warnings", func(t *testing.T) {
		setRequired(t)

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("insecure values produce warnings", func(t *testing.T) {
		setRequired(t)
		t.Setenv("API_KEY", exampleAPIKey)
		t.Setenv("RPC_URL", "http://rpc.example")
		t.Setenv("WALLETCONNECT_PROJECT_ID", "")

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err, "Should not error even with warnings")
		require.Len(t, warnings, 3)
		assert.Contains(t, warnings[0], "API_KEY")
		assert.Contains(t, warnings[1], "RPC_URL")
		assert.Contains(t, warnings[2], "WALLETCONNECT_PROJECT_ID")
	})

	t.Run("local http rpc is fine", func(t *testing.T) {
		setRequired(t)
		t.Setenv("RPC_URL", "http://localhost:8545")

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("propagates validation errors", func(t *testing.T) {
		t.Setenv("ENV_SCHEMA_VERSION", "")

		warnings, err := ValidateEnvWithWarnings()
		assert.Error(t, err)
		assert.Nil(t, warnings)
	})
}
