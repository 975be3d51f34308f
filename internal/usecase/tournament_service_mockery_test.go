package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/club-brackets/internal/domain/match"
	"github.com/riskibarqy/club-brackets/internal/domain/tournament"
	matchmock "github.com/riskibarqy/club-brackets/internal/mocks/domain/match"
	tournamentmock "github.com/riskibarqy/club-brackets/internal/mocks/domain/tournament"
	"github.com/stretchr/testify/mock"
)

func TestTournamentService_ListMatches_SortedUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tournamentRepo := tournamentmock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	service := NewTournamentService(tournamentRepo, matchRepo)

	tournamentRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "futsal-2026").
		Return(tournament.Tournament{ID: "futsal-2026", Name: "Futsal Cup"}, true, nil).
		Once()
	matchRepo.
		On("ListByTournament", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "futsal-2026").
		Return([]match.Match{
			{ID: "final", Stage: match.StageFinal},
			{ID: "sf-1", Stage: match.StageSemiFinal},
		}, nil).
		Once()

	got, err := service.ListMatches(ctx, " futsal-2026 ")
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(got) != 2 || got[0].ID != "sf-1" || got[1].ID != "final" {
		t.Fatalf("unexpected match order: %+v", got)
	}
}

func TestTournamentService_GetTournament_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()
		service := NewTournamentService(tournamentmock.NewRepository(t), matchmock.NewRepository(t))
		if _, err := service.GetTournament(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		tournamentRepo := tournamentmock.NewRepository(t)
		tournamentRepo.On("GetByID", mock.Anything, "missing").Return(tournament.Tournament{}, false, nil).Once()

		service := NewTournamentService(tournamentRepo, matchmock.NewRepository(t))
		if _, err := service.GetTournament(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		t.Parallel()
		repoErr := errors.New("db down")
		tournamentRepo := tournamentmock.NewRepository(t)
		tournamentRepo.On("GetByID", mock.Anything, "cup").Return(tournament.Tournament{}, false, repoErr).Once()

		service := NewTournamentService(tournamentRepo, matchmock.NewRepository(t))
		if _, err := service.GetTournament(context.Background(), "cup"); !errors.Is(err, repoErr) {
			t.Fatalf("expected wrapped repository error, got %v", err)
		}
	})
}
