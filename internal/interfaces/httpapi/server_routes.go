package httpapi

import (
	"net/http"

	"github.com/riskibarqy/club-brackets/internal/observability"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics *observability.Metrics) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics == nil {
		return
	}

	mux.Handle("GET /metrics", metrics.Handler())
}

func registerTournamentRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}", handler.GetTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/matches", handler.ListTournamentMatches)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/bracket", handler.GetTournamentBracket)
}

func registerBracketRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/brackets", handler.ListBracketOverview)
	mux.HandleFunc("GET /v1/brackets/pairings", handler.GetPairings)
	mux.HandleFunc("POST /v1/brackets/resolve", handler.ResolveBracket)
}
