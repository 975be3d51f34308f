package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/club-brackets/internal/domain/match"
)

func TestSeed_MatchesReferenceExistingTournaments(t *testing.T) {
	t.Parallel()

	tournaments := NewTournamentRepository(SeedTournaments())
	for _, item := range SeedMatches() {
		if _, ok, _ := tournaments.GetByID(context.Background(), item.TournamentID); !ok {
			t.Fatalf("match %s references unknown tournament %s", item.ID, item.TournamentID)
		}
	}
}

func TestSeed_SourcesPointAtSameTournament(t *testing.T) {
	t.Parallel()

	byID := make(map[string]match.Match)
	for _, item := range SeedMatches() {
		byID[item.ID] = item
	}
	for _, item := range SeedMatches() {
		for _, raw := range []string{item.HomeTeamSource, item.AwayTeamSource} {
			src, ok := match.ParseSource(raw)
			if !ok || src.Kind == match.SourceSeed {
				continue
			}
			origin, found := byID[src.Ref]
			if !found {
				t.Fatalf("match %s source %q does not resolve", item.ID, raw)
			}
			if origin.TournamentID != item.TournamentID {
				t.Fatalf("match %s source %q crosses tournaments", item.ID, raw)
			}
		}
	}
}

func TestMatchRepository_ListByTournamentReturnsCopy(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(SeedMatches())
	first, err := repo.ListByTournament(context.Background(), TournamentIDFiveASide)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("unexpected match count: %d", len(first))
	}
	first[0].ID = "changed"

	second, _ := repo.ListByTournament(context.Background(), TournamentIDFiveASide)
	if second[0].ID == "changed" {
		t.Fatalf("repository returned its internal slice")
	}

	empty, err := repo.ListByTournament(context.Background(), "unknown")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty result for unknown tournament, got %d err=%v", len(empty), err)
	}
}
