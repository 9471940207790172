package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  int
	}{
		{"unset uses default", nil, 20},
		{"batch size override", strPtr("50"), 50},
		{"zero is kept", strPtr("0"), 0},
		{"negative is kept", strPtr("-1"), -1},
		{"float falls back", strPtr("20.5"), 20},
		{"garbage falls back", strPtr("twenty"), 20},
		{"empty falls back", strPtr(""), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, "SCAN_BATCH_SIZE", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("SCAN_BATCH_SIZE", 20))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  time.Duration
	}{
		{"unset uses default", nil, 10 * time.Second},
		{"seconds", strPtr("3s"), 3 * time.Second},
		{"milliseconds", strPtr("750ms"), 750 * time.Millisecond},
		{"compound", strPtr("1m30s"), 90 * time.Second},
		{"bare number falls back", strPtr("30"), 10 * time.Second},
		{"garbage falls back", strPtr("soon"), 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, "METADATA_TIMEOUT", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("METADATA_TIMEOUT", 10*time.Second))
		})
	}
}

func TestGetEnvAsBool(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		fallback bool
		want     bool
	}{
		{"unset uses default", nil, true, true},
		{"true", strPtr("true"), false, true},
		{"one", strPtr("1"), false, true},
		{"false", strPtr("false"), true, false},
		{"garbage falls back", strPtr("yes please"), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, "SCAN_USE_BATCH_CALL", tt.value)
			assert.Equal(t, tt.want, getEnvAsBool("SCAN_USE_BATCH_CALL", tt.fallback))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , ,"))
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, splitList("10.0.0.1, 10.0.0.2,"))
}

func strPtr(s string) *string { return &s }

// setOrUnset sets key for the test, or unsets it when value is nil.
func setOrUnset(t *testing.T, key string, value *string) {
	t.Helper()
	if value != nil {
		t.Setenv(key, *value)
		return
	}
	t.Setenv(key, "")
	os.Unsetenv(key)
}
