package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/club-brackets/internal/usecase"
)

func (h *Handler) GetTournamentBracket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournamentBracket")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	view, err := h.bracketService.GetBracket(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get tournament bracket failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) ListBracketOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBracketOverview")
	defer span.End()

	items, err := h.bracketService.ListOverview(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list bracket overview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPairings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPairings")
	defer span.End()

	raw := strings.TrimSpace(r.URL.Query().Get("groups"))
	if raw == "" {
		writeError(ctx, w, fmt.Errorf("%w: query parameter groups is required", usecase.ErrInvalidInput))
		return
	}
	numGroups, err := strconv.Atoi(raw)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: groups must be an integer", usecase.ErrInvalidInput))
		return
	}

	pairings, err := h.bracketService.Pairings(ctx, numGroups)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pairingsDTO{NumberOfGroups: numGroups, Pairings: pairings})
}

func (h *Handler) ResolveBracket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResolveBracket")
	defer span.End()

	var req resolveBracketRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.bracketService.Resolve(ctx, req.toSnapshot())
	if err != nil {
		h.logger.WarnContext(ctx, "resolve bracket failed", "matches", len(req.Matches), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}
