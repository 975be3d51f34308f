package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/riskibarqy/club-brackets/internal/domain/bracket"
	"github.com/riskibarqy/club-brackets/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-brackets/internal/observability"
	"github.com/riskibarqy/club-brackets/internal/platform/logging"
	"github.com/riskibarqy/club-brackets/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newTestRouter(t *testing.T) (http.Handler, *observability.Metrics) {
	t.Helper()

	logger := logging.New(logging.Options{Level: logging.LevelError, Writer: io.Discard})
	tournamentRepo := memory.NewTournamentRepository(memory.SeedTournaments())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	metrics := observability.NewMetrics()

	resolver := bracket.NewResolver(observability.NewBracketObserver(logger, metrics))
	handler := NewHandler(
		usecase.NewTournamentService(tournamentRepo, matchRepo),
		usecase.NewBracketService(tournamentRepo, matchRepo, resolver, usecase.BracketServiceConfig{OverviewWorkers: 2}),
		logger,
	)

	return NewRouter(handler, RouterConfig{Logger: logger, Metrics: metrics}), metrics
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var out envelope[T]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, googleAPIVersion, out.APIVersion)
	return out
}

func TestRouter_Healthz(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope[map[string]string](t, rec)
	assert.Equal(t, "ok", body.Data["status"])
}

func TestRouter_ListTournaments(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/tournaments", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope[[]tournamentDTO](t, rec)
	require.Len(t, body.Data, 3)

	ids := make([]string, 0, len(body.Data))
	for _, item := range body.Data {
		ids = append(ids, item.ID)
	}
	assert.ElementsMatch(t, []string{
		memory.TournamentIDFutsalCup,
		memory.TournamentIDFiveASide,
		memory.TournamentIDTableTennis,
	}, ids)
}

func TestRouter_GetTournamentNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/tournaments/unknown-cup", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeEnvelope[any](t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Status)
}

func TestRouter_ListTournamentMatches(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/tournaments/"+memory.TournamentIDFiveASide+"/matches", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope[[]matchDTO](t, rec)
	require.Len(t, body.Data, 3)
	assert.Equal(t, "five-sf1", body.Data[0].ID)
	assert.Equal(t, "five-final", body.Data[2].ID)
	require.NotNil(t, body.Data[2].HomePenaltyScore)
	assert.Equal(t, 4, *body.Data[2].HomePenaltyScore)
}

func TestRouter_GetTournamentBracket_FullTree(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/tournaments/"+memory.TournamentIDFutsalCup+"/bracket", "")
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeEnvelope[bracket.View](t, rec).Data
	assert.Equal(t, bracket.LayoutFullTree, view.Layout)
	assert.Equal(t, 4, view.NumberOfGroups)
	require.Len(t, view.QuarterFinals.Left, 2)
	require.Len(t, view.QuarterFinals.Right, 2)
	assert.Equal(t, "futsal-qf1", view.QuarterFinals.Left[0].MatchID)
	assert.Equal(t, "Finance", view.QuarterFinals.Left[0].Home.Name)
	assert.Equal(t, bracket.WinnerHome, view.QuarterFinals.Left[0].Winner)
	require.NotNil(t, view.Final)
	assert.False(t, view.Final.Home.Resolved)
	require.NotNil(t, view.ThirdPlace)
}

func TestRouter_GetTournamentBracket_SimpleWithPenalties(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/tournaments/"+memory.TournamentIDFiveASide+"/bracket", "")
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeEnvelope[bracket.View](t, rec).Data
	assert.Equal(t, bracket.LayoutSimple, view.Layout)
	require.NotNil(t, view.Final)
	assert.Equal(t, bracket.WinnerHome, view.Final.Winner)
	require.NotNil(t, view.Final.Penalties)
	assert.Equal(t, 4, view.Final.Penalties.Home)
}

func TestRouter_GetTournamentBracket_Empty(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/tournaments/"+memory.TournamentIDTableTennis+"/bracket", "")
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeEnvelope[bracket.View](t, rec).Data
	assert.Equal(t, bracket.LayoutEmpty, view.Layout)
	assert.Equal(t, bracket.EmptyStateGroupStageIncomplete, view.EmptyState)
}

func TestRouter_ListBracketOverview(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/brackets", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope[[]usecase.BracketOverview](t, rec)
	require.Len(t, body.Data, 3)

	byID := make(map[string]usecase.BracketOverview, len(body.Data))
	for _, item := range body.Data {
		byID[item.TournamentID] = item
	}
	assert.Equal(t, "Data", byID[memory.TournamentIDFiveASide].Champion)
	assert.Equal(t, 0, byID[memory.TournamentIDTableTennis].KnockoutMatchCount)
}

func TestRouter_GetPairings(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/brackets/pairings?groups=4", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope[pairingsDTO](t, rec)
	assert.Equal(t, 4, body.Data.NumberOfGroups)
	assert.Equal(t, []bracket.Pairing{
		{Home: "A1", Away: "B2"},
		{Home: "B1", Away: "A2"},
		{Home: "C1", Away: "D2"},
		{Home: "D1", Away: "C2"},
	}, body.Data.Pairings)
}

func TestRouter_GetPairings_InvalidGroups(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, target := range []string{
		"/v1/brackets/pairings",
		"/v1/brackets/pairings?groups=four",
		"/v1/brackets/pairings?groups=-1",
		"/v1/brackets/pairings?groups=65",
	} {
		rec := doRequest(t, router, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestRouter_ResolveBracket(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := `{
		"tournament": {"id": "ad-hoc", "name": "Ad hoc", "number_of_groups": 2},
		"group_stage_complete": true,
		"matches": [
			{"id": "sf-1", "stage": "semi_final", "bracket_position": 1, "home_team": {"id": "a", "name": "Alpha"}, "away_team_source": "SEED:4"},
			{"id": "sf-2", "stage": "semi_final", "bracket_position": 2}
		]
	}`
	rec := doRequest(t, router, http.MethodPost, "/v1/brackets/resolve", payload)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	view := decodeEnvelope[bracket.View](t, rec).Data
	assert.Equal(t, bracket.LayoutSimple, view.Layout)
	require.Len(t, view.SemiFinals.Left, 1)
	assert.Equal(t, "Alpha", view.SemiFinals.Left[0].Home.Name)
	assert.True(t, view.SemiFinals.Left[0].Home.Resolved)
	require.NotNil(t, view.Final)
	assert.True(t, view.Final.Placeholder)
}

func TestRouter_ResolveBracket_InvalidPayload(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "malformed json", body: `{"matches": [`},
		{name: "unknown field", body: `{"matches": [], "colour": "red"}`},
		{name: "missing match id", body: `{"matches": [{"stage": "final"}]}`},
		{name: "negative groups", body: `{"tournament": {"number_of_groups": -1}, "matches": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/v1/brackets/resolve", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			body := decodeEnvelope[any](t, rec)
			require.NotNil(t, body.Error)
			assert.Equal(t, "INVALID_ARGUMENT", body.Error.Status)
		})
	}
}

func TestRouter_ResolveBracket_UnknownStagesShareOneSeries(t *testing.T) {
	router, metrics := newTestRouter(t)

	const requests = 25
	for i := 0; i < requests; i++ {
		payload := fmt.Sprintf(`{"matches":[{"id":"m","stage":"junk-%d"}]}`, i)
		rec := doRequest(t, router, http.MethodPost, "/v1/brackets/resolve", payload)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	assert.Equal(t, 1, testutil.CollectAndCount(metrics.Registry(), "club_brackets_bracket_unknown_stage_total"))

	scrape := doRequest(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, scrape.Code)
	assert.Contains(t, scrape.Body.String(), fmt.Sprintf("club_brackets_bracket_unknown_stage_total %d", requests))
	assert.NotContains(t, scrape.Body.String(), "junk-")
}

func TestRouter_MetricsRecordsRoutePattern(t *testing.T) {
	router, _ := newTestRouter(t)

	require.Equal(t, http.StatusOK, doRequest(t, router, http.MethodGet, "/v1/tournaments/"+memory.TournamentIDFutsalCup, "").Code)

	rec := doRequest(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="GET /v1/tournaments/{tournamentID}"`)
	assert.Contains(t, rec.Body.String(), "club_brackets_http_requests_total")
}

func TestRecoverPanic(t *testing.T) {
	logger := logging.New(logging.Options{Level: logging.LevelError, Writer: io.Discard})
	handler := recoverPanic(logger, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/brackets", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope[any](t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "internal server error", body.Error.Message)
}
