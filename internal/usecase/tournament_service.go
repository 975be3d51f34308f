package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/club-brackets/internal/domain/bracket"
	"github.com/riskibarqy/club-brackets/internal/domain/match"
	"github.com/riskibarqy/club-brackets/internal/domain/tournament"
)

type TournamentService struct {
	tournamentRepo tournament.Repository
	matchRepo      match.Repository
}

func NewTournamentService(tournamentRepo tournament.Repository, matchRepo match.Repository) *TournamentService {
	return &TournamentService{
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
	}
}

func (s *TournamentService) ListTournaments(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ListTournaments")
	defer span.End()

	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	return items, nil
}

func (s *TournamentService) GetTournament(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.GetTournament")
	defer span.End()

	return getTournament(ctx, s.tournamentRepo, tournamentID)
}

// ListMatches returns the tournament's matches in bracket display order.
func (s *TournamentService) ListMatches(ctx context.Context, tournamentID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ListMatches")
	defer span.End()

	item, err := getTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return nil, err
	}

	matches, err := s.matchRepo.ListByTournament(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list matches by tournament: %w", err)
	}

	return bracket.SortMatches(matches), nil
}

func getTournament(ctx context.Context, repo tournament.Repository, tournamentID string) (tournament.Tournament, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	return item, nil
}
