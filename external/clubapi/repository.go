package clubapi

import (
	"context"
	"fmt"
	"net/url"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-brackets/internal/domain/match"
	"github.com/riskibarqy/club-brackets/internal/domain/tournament"
)

// TournamentRepository reads tournaments from the club API.
type TournamentRepository struct {
	client *Client
}

func NewTournamentRepository(client *Client) *TournamentRepository {
	return &TournamentRepository{client: client}
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	var payload envelope[[]tournamentPayload]
	if err := r.client.getJSON(ctx, "/tournaments", nil, &payload); err != nil {
		return nil, fmt.Errorf("list club api tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(payload.Data))
	for _, item := range payload.Data {
		t := item.toDomain()
		if t.ID == "" {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	var payload envelope[tournamentPayload]
	err := r.client.getJSON(ctx, "/tournaments/"+url.PathEscape(tournamentID), nil, &payload)
	if crerr.Is(err, errNotFound) {
		return tournament.Tournament{}, false, nil
	}
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("get club api tournament %s: %w", tournamentID, err)
	}

	t := payload.Data.toDomain()
	if t.ID == "" {
		return tournament.Tournament{}, false, nil
	}
	return t, true, nil
}

// MatchRepository reads tournament matches from the club API.
type MatchRepository struct {
	client *Client
}

func NewMatchRepository(client *Client) *MatchRepository {
	return &MatchRepository{client: client}
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	var payload envelope[[]matchPayload]
	err := r.client.getJSON(ctx, "/tournaments/"+url.PathEscape(tournamentID)+"/matches", nil, &payload)
	if crerr.Is(err, errNotFound) {
		return []match.Match{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list club api matches tournament=%s: %w", tournamentID, err)
	}

	out := make([]match.Match, 0, len(payload.Data))
	for _, item := range payload.Data {
		m := item.toDomain(tournamentID)
		if m.ID == "" {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
