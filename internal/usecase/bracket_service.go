package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/club-brackets/internal/domain/bracket"
	"github.com/riskibarqy/club-brackets/internal/domain/match"
	"github.com/riskibarqy/club-brackets/internal/domain/tournament"
)

const (
	defaultOverviewWorkers = 4
	maxPairingGroups       = 64
)

type BracketServiceConfig struct {
	OverviewWorkers int
}

type BracketService struct {
	tournamentRepo tournament.Repository
	matchRepo      match.Repository
	resolver       *bracket.Resolver
	cfg            BracketServiceConfig
}

// BracketOverview summarizes the resolved bracket of one tournament.
type BracketOverview struct {
	TournamentID       string             `json:"tournament_id"`
	TournamentName     string             `json:"tournament_name"`
	Layout             bracket.Layout     `json:"layout"`
	EmptyState         bracket.EmptyState `json:"empty_state,omitempty"`
	KnockoutMatchCount int                `json:"knockout_match_count"`
	Champion           string             `json:"champion,omitempty"`
	TrophyImageURL     string             `json:"trophy_image_url,omitempty"`
}

func NewBracketService(
	tournamentRepo tournament.Repository,
	matchRepo match.Repository,
	resolver *bracket.Resolver,
	cfg BracketServiceConfig,
) *BracketService {
	if resolver == nil {
		resolver = bracket.NewResolver(nil)
	}
	if cfg.OverviewWorkers <= 0 {
		cfg.OverviewWorkers = defaultOverviewWorkers
	}
	return &BracketService{
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		resolver:       resolver,
		cfg:            cfg,
	}
}

func (s *BracketService) GetBracket(ctx context.Context, tournamentID string) (bracket.View, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BracketService.GetBracket")
	defer span.End()

	item, err := getTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return bracket.View{}, err
	}

	return s.resolveTournament(ctx, item)
}

// Resolve resolves a snapshot supplied by the caller instead of one loaded from storage.
func (s *BracketService) Resolve(ctx context.Context, snapshot bracket.Snapshot) (bracket.View, error) {
	_, span := startUsecaseSpan(ctx, "usecase.BracketService.Resolve")
	defer span.End()

	if snapshot.Tournament != nil && snapshot.Tournament.NumberOfGroups != nil && *snapshot.Tournament.NumberOfGroups < 0 {
		return bracket.View{}, fmt.Errorf("%w: number of groups must be >= 0", ErrInvalidInput)
	}

	return s.resolver.Resolve(snapshot), nil
}

func (s *BracketService) Pairings(ctx context.Context, numGroups int) ([]bracket.Pairing, error) {
	_, span := startUsecaseSpan(ctx, "usecase.BracketService.Pairings")
	defer span.End()

	if numGroups < 0 || numGroups > maxPairingGroups {
		return nil, fmt.Errorf("%w: number of groups must be between 0 and %d", ErrInvalidInput, maxPairingGroups)
	}

	pairings := bracket.GeneratePairings(numGroups)
	if pairings == nil {
		pairings = []bracket.Pairing{}
	}
	return pairings, nil
}

// ListOverview resolves every tournament's bracket on a bounded worker pool.
func (s *BracketService) ListOverview(ctx context.Context) ([]BracketOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BracketService.ListOverview")
	defer span.End()

	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	if len(tournaments) == 0 {
		return []BracketOverview{}, nil
	}

	type overviewResult struct {
		row BracketOverview
		err error
	}

	pool, err := ants.NewPool(normalizeWorkerCount(s.cfg.OverviewWorkers, len(tournaments)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan overviewResult, len(tournaments))
	var workers sync.WaitGroup
	for _, item := range tournaments {
		item := item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			view, err := s.resolveTournament(ctx, item)
			if err != nil {
				results <- overviewResult{err: fmt.Errorf("tournament=%s: %w", item.ID, err)}
				return
			}
			champion, _ := view.Champion()
			results <- overviewResult{row: BracketOverview{
				TournamentID:       item.ID,
				TournamentName:     item.Name,
				Layout:             view.Layout,
				EmptyState:         view.EmptyState,
				KnockoutMatchCount: view.KnockoutMatchCount(),
				Champion:           champion,
				TrophyImageURL:     view.TrophyImageURL,
			}}
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	out := make([]BracketOverview, 0, len(tournaments))
	var firstErr error
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		out = append(out, res.row)
	}
	if firstErr != nil {
		return nil, firstErr
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TournamentName != out[j].TournamentName {
			return out[i].TournamentName < out[j].TournamentName
		}
		return out[i].TournamentID < out[j].TournamentID
	})
	return out, nil
}

func (s *BracketService) resolveTournament(ctx context.Context, item tournament.Tournament) (bracket.View, error) {
	matches, err := s.matchRepo.ListByTournament(ctx, item.ID)
	if err != nil {
		return bracket.View{}, fmt.Errorf("list matches by tournament: %w", err)
	}

	return s.resolver.Resolve(bracket.Snapshot{
		Matches:            matches,
		Tournament:         &item,
		GroupStageComplete: groupStageComplete(matches),
	}), nil
}

// groupStageComplete is true once every group match is completed. Tournaments without a group stage count as complete.
func groupStageComplete(matches []match.Match) bool {
	for _, item := range matches {
		if item.Stage == match.StageGroup && !item.Status.IsCompleted() {
			return false
		}
	}
	return true
}

func normalizeWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
