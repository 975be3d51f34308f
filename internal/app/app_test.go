package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/club-brackets/internal/config"
	"github.com/riskibarqy/club-brackets/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		ServiceName:            "club-brackets-api",
		HTTPAddr:               ":0",
		ReadTimeout:            time.Second,
		WriteTimeout:           time.Second,
		DataSource:             config.DataSourceMemory,
		CacheEnabled:           true,
		CacheTTL:               time.Minute,
		BracketOverviewWorkers: 2,
		MetricsEnabled:         true,
	}
}

func TestNewHTTPServer_MemoryDataSource(t *testing.T) {
	logger := logging.New(logging.Options{Level: logging.LevelError, Writer: io.Discard})

	srv, err := NewHTTPServer(context.Background(), testConfig(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })
	require.NotNil(t, srv.Metrics)

	rec := httptest.NewRecorder()
	srv.HTTP.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/brackets", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "futsal-cup-2026")

	rec = httptest.NewRecorder()
	srv.HTTP.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `route="GET /v1/brackets"`))
}

func TestNewHTTPServer_ClubAPITracksCircuit(t *testing.T) {
	cfg := testConfig()
	cfg.DataSource = config.DataSourceClubAPI
	cfg.ClubAPIBaseURL = "http://127.0.0.1:1"
	cfg.ClubAPICircuitEnabled = true

	srv, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.HTTP.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `club_brackets_dependency_circuit_state{dependency="clubapi",state="closed"} 1`)
}

func TestNewHTTPServer_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false

	srv, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	assert.Nil(t, srv.Metrics)

	rec := httptest.NewRecorder()
	srv.HTTP.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""

	_, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}
