package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/club-brackets/internal/domain/match"
)

type MatchRepository struct {
	mu                  sync.RWMutex
	matchesByTournament map[string][]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	matchesByTournament := make(map[string][]match.Match)
	for _, item := range matches {
		matchesByTournament[item.TournamentID] = append(matchesByTournament[item.TournamentID], item)
	}

	return &MatchRepository{matchesByTournament: matchesByTournament}
}

func (r *MatchRepository) ListByTournament(_ context.Context, tournamentID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.matchesByTournament[tournamentID]
	out := make([]match.Match, 0, len(items))
	out = append(out, items...)
	return out, nil
}
