package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/club-brackets/internal/domain/match"
	"github.com/riskibarqy/club-brackets/internal/domain/tournament"
	matchmock "github.com/riskibarqy/club-brackets/internal/mocks/domain/match"
	tournamentmock "github.com/riskibarqy/club-brackets/internal/mocks/domain/tournament"
	basecache "github.com/riskibarqy/club-brackets/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

func TestMatchRepository_ListByTournament_CachesAndCopies(t *testing.T) {
	t.Parallel()

	next := matchmock.NewRepository(t)
	next.On("ListByTournament", mock.Anything, "cup").
		Return([]match.Match{{ID: "sf-1", Stage: match.StageSemiFinal}}, nil).
		Once()

	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	first, err := repo.ListByTournament(context.Background(), "cup")
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	first[0].ID = "mutated"

	second, err := repo.ListByTournament(context.Background(), "cup")
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if second[0].ID != "sf-1" {
		t.Fatalf("cached slice was mutated through a previous result: %s", second[0].ID)
	}
}

func TestTournamentRepository_GetByID_CachesMisses(t *testing.T) {
	t.Parallel()

	next := tournamentmock.NewRepository(t)
	next.On("GetByID", mock.Anything, "missing").Return(tournament.Tournament{}, false, nil).Once()

	repo := NewTournamentRepository(next, basecache.NewStore(time.Minute))
	for i := 0; i < 2; i++ {
		_, exists, err := repo.GetByID(context.Background(), "missing")
		if err != nil {
			t.Fatalf("get by id: %v", err)
		}
		if exists {
			t.Fatalf("expected missing tournament")
		}
	}
}
