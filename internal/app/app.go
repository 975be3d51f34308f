package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/club-brackets/external/clubapi"
	"github.com/riskibarqy/club-brackets/internal/config"
	"github.com/riskibarqy/club-brackets/internal/domain/bracket"
	"github.com/riskibarqy/club-brackets/internal/domain/match"
	"github.com/riskibarqy/club-brackets/internal/domain/tournament"
	cacherepo "github.com/riskibarqy/club-brackets/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/club-brackets/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-brackets/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/club-brackets/internal/interfaces/httpapi"
	"github.com/riskibarqy/club-brackets/internal/observability"
	basecache "github.com/riskibarqy/club-brackets/internal/platform/cache"
	"github.com/riskibarqy/club-brackets/internal/platform/logging"
	"github.com/riskibarqy/club-brackets/internal/platform/resilience"
	"github.com/riskibarqy/club-brackets/internal/usecase"
)

const clubAPIDependency = "clubapi"

// Server bundles the HTTP server with the resources it holds open.
type Server struct {
	HTTP    *http.Server
	Metrics *observability.Metrics
	closers []func() error
}

// Close releases the data source resources. Call it after the HTTP server has shut down.
func (s *Server) Close() error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type repositories struct {
	tournaments tournament.Repository
	matches     match.Repository
	closers     []func() error
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
	}

	repos, err := newRepositories(ctx, cfg, logger, metrics)
	if err != nil {
		return nil, err
	}

	tournamentRepo, matchRepo := repos.tournaments, repos.matches
	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		tournamentRepo = cacherepo.NewTournamentRepository(tournamentRepo, store)
		matchRepo = cacherepo.NewMatchRepository(matchRepo, store)
	}

	resolver := bracket.NewResolver(observability.NewBracketObserver(logger, metrics))

	tournamentSvc := usecase.NewTournamentService(tournamentRepo, matchRepo)
	bracketSvc := usecase.NewBracketService(tournamentRepo, matchRepo, resolver, usecase.BracketServiceConfig{
		OverviewWorkers: cfg.BracketOverviewWorkers,
	})

	handler := httpapi.NewHandler(tournamentSvc, bracketSvc, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		Logger:             logger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Metrics:            metrics,
	})

	return &Server{
		HTTP: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Metrics: metrics,
		closers: repos.closers,
	}, nil
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger, metrics *observability.Metrics) (repositories, error) {
	switch cfg.DataSource {
	case config.DataSourcePostgres:
		db, err := openPostgres(cfg)
		if err != nil {
			return repositories{}, err
		}
		if cfg.DBBootstrapSeed {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
			}
			logger.Info("postgres seed applied")
		}
		logger.Info("data source ready", "data_source", cfg.DataSource, "db_name", databaseName(cfg.DBURL))
		return repositories{
			tournaments: postgres.NewTournamentRepository(db),
			matches:     postgres.NewMatchRepository(db),
			closers:     []func() error{db.Close},
		}, nil
	case config.DataSourceClubAPI:
		client := clubapi.NewClient(clubapi.ClientConfig{
			BaseURL:    cfg.ClubAPIBaseURL,
			Token:      cfg.ClubAPIToken,
			Timeout:    cfg.ClubAPITimeout,
			MaxRetries: cfg.ClubAPIMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.ClubAPICircuitEnabled,
				FailureThreshold: cfg.ClubAPICircuitFailureCount,
				OpenTimeout:      cfg.ClubAPICircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.ClubAPICircuitHalfOpenMaxReq,
			},
		})
		metrics.TrackCircuit(clubAPIDependency, client.Breaker())
		logger.Info("data source ready", "data_source", cfg.DataSource, "base_url", cfg.ClubAPIBaseURL)
		return repositories{
			tournaments: clubapi.NewTournamentRepository(client),
			matches:     clubapi.NewMatchRepository(client),
		}, nil
	default:
		logger.Info("data source ready", "data_source", config.DataSourceMemory)
		return repositories{
			tournaments: memory.NewTournamentRepository(memory.SeedTournaments()),
			matches:     memory.NewMatchRepository(memory.SeedMatches()),
		}, nil
	}
}
