package match

import "context"

// Repository exposes match read operations.
type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]Match, error)
}
