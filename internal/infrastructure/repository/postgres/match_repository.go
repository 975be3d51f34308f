package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-brackets/internal/domain/match"
	qb "github.com/riskibarqy/club-brackets/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

var matchColumns = []string{
	"m.public_id",
	"m.tournament_public_id",
	"m.stage",
	"m.round",
	"m.group_number",
	"m.bracket_position",
	"m.home_team_public_id",
	"ht.name AS home_team_name",
	"ht.logo_url AS home_team_logo_url",
	"m.away_team_public_id",
	"at.name AS away_team_name",
	"at.logo_url AS away_team_logo_url",
	"m.home_team_source",
	"m.away_team_source",
	"m.status",
	"m.home_score",
	"m.away_score",
	"m.home_penalty_score",
	"m.away_penalty_score",
	"m.match_date",
	"m.venue",
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From("matches m").
		LeftJoin("teams ht", "ht.public_id = m.home_team_public_id AND ht.deleted_at IS NULL").
		LeftJoin("teams at", "at.public_id = m.away_team_public_id AND at.deleted_at IS NULL").
		Where(
			qb.Eq("m.tournament_public_id", tournamentID),
			qb.IsNull("m.deleted_at"),
		).
		OrderBy("m.round NULLS FIRST", "m.bracket_position NULLS FIRST", "m.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by tournament query: %w", err)
	}

	var rows []matchRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapQueryError("select matches by tournament", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}

	return out, nil
}

func matchFromRow(row matchRowModel) match.Match {
	out := match.Match{
		ID:              row.PublicID,
		TournamentID:    row.TournamentID,
		Stage:           match.Stage(row.Stage),
		Round:           nullInt64ToIntPtr(row.Round),
		GroupNumber:     nullInt64ToIntPtr(row.GroupNumber),
		BracketPosition: nullInt64ToIntPtr(row.BracketPosition),
		HomeTeamSource:  row.HomeTeamSource.String,
		AwayTeamSource:  row.AwayTeamSource.String,
		Status:          match.NormalizeStatus(row.Status),
		HomeScore:       nullInt64ToIntPtr(row.HomeScore),
		AwayScore:       nullInt64ToIntPtr(row.AwayScore),
		Venue:           row.Venue.String,
	}
	if row.HomeTeamID.Valid && row.HomeTeamName.Valid {
		out.HomeTeam = &match.Team{ID: row.HomeTeamID.String, Name: row.HomeTeamName.String, LogoURL: row.HomeTeamLogoURL.String}
	}
	if row.AwayTeamID.Valid && row.AwayTeamName.Valid {
		out.AwayTeam = &match.Team{ID: row.AwayTeamID.String, Name: row.AwayTeamName.String, LogoURL: row.AwayTeamLogoURL.String}
	}
	if row.HomePenaltyScore.Valid && row.AwayPenaltyScore.Valid {
		out.Penalties = &match.PenaltyOutcome{
			HomeScore: int(row.HomePenaltyScore.Int64),
			AwayScore: int(row.AwayPenaltyScore.Int64),
		}
	}
	if row.MatchDate.Valid {
		out.MatchDate = row.MatchDate.Time
	}
	return out
}
