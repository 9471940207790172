package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCommand(t *testing.T) {
	before := commandCounter.Load()

	RecordCommand()
	RecordCommand()

	assert.Equal(t, before+2, commandCounter.Load())
	assert.False(t, lastCommandTime().IsZero())
}

func TestHandleHealth_Degraded(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	bot := &Bot{Session: ctx.Session, Client: ctx.APIClient, Registry: NewCommandRegistry()}
	srv := NewHTTPServer("0", bot)

	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	// The session never opened a gateway connection.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var status HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.Equal(t, "degraded", status.Status)
	assert.False(t, status.Connected)
	assert.True(t, status.APIReachable)
}

func TestHandleHealth_Healthy(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	ctx.Session.DataReady = true

	bot := &Bot{Session: ctx.Session, Client: ctx.APIClient}
	srv := NewHTTPServer("0", bot)

	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var status HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.Equal(t, "healthy", status.Status)
}
