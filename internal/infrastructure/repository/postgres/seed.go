package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-brackets/internal/domain/match"
	"github.com/riskibarqy/club-brackets/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo tournaments into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM tournaments WHERE deleted_at IS NULL`); err != nil {
		return wrapQueryError("count tournaments for bootstrap seed", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedTournaments() {
		if err := execNamed(ctx, tx, `
INSERT INTO tournaments (public_id, name, sport, number_of_groups, trophy_image_url, starts_at)
VALUES (:public_id, :name, :sport, :number_of_groups, :trophy_image_url, :starts_at)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":        t.ID,
			"name":             t.Name,
			"sport":            t.Sport,
			"number_of_groups": t.NumberOfGroups,
			"trophy_image_url": nullableString(t.TrophyImageURL),
			"starts_at":        t.StartsAt.UTC(),
		}); err != nil {
			return fmt.Errorf("seed tournament %s: %w", t.ID, err)
		}
	}

	matches := memory.SeedMatches()
	for _, team := range seedTeams(matches) {
		if err := execNamed(ctx, tx, `
INSERT INTO teams (public_id, name, logo_url)
VALUES (:public_id, :name, :logo_url)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id": team.ID,
			"name":      team.Name,
			"logo_url":  nullableString(team.LogoURL),
		}); err != nil {
			return fmt.Errorf("seed team %s: %w", team.ID, err)
		}
	}

	for _, m := range matches {
		params := map[string]any{
			"public_id":            m.ID,
			"tournament_public_id": m.TournamentID,
			"stage":                string(m.Stage),
			"round":                m.Round,
			"group_number":         m.GroupNumber,
			"bracket_position":     m.BracketPosition,
			"home_team_public_id":  teamID(m.HomeTeam),
			"away_team_public_id":  teamID(m.AwayTeam),
			"home_team_source":     nullableString(m.HomeTeamSource),
			"away_team_source":     nullableString(m.AwayTeamSource),
			"status":               string(m.Status),
			"home_score":           m.HomeScore,
			"away_score":           m.AwayScore,
			"home_penalty_score":   nil,
			"away_penalty_score":   nil,
			"match_date":           m.MatchDate.UTC(),
			"venue":                nullableString(m.Venue),
		}
		if m.Penalties != nil {
			params["home_penalty_score"] = m.Penalties.HomeScore
			params["away_penalty_score"] = m.Penalties.AwayScore
		}
		if err := execNamed(ctx, tx, `
INSERT INTO matches (
	public_id, tournament_public_id, stage, round, group_number, bracket_position,
	home_team_public_id, away_team_public_id, home_team_source, away_team_source,
	status, home_score, away_score, home_penalty_score, away_penalty_score, match_date, venue
)
VALUES (
	:public_id, :tournament_public_id, :stage, :round, :group_number, :bracket_position,
	:home_team_public_id, :away_team_public_id, :home_team_source, :away_team_source,
	:status, :home_score, :away_score, :home_penalty_score, :away_penalty_score, :match_date, :venue
)
ON CONFLICT (public_id) DO NOTHING`, params); err != nil {
			return fmt.Errorf("seed match %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

func execNamed(ctx context.Context, tx *sqlx.Tx, query string, params map[string]any) error {
	sqlQuery, args, err := sqlx.Named(query, params)
	if err != nil {
		return fmt.Errorf("bind query: %w", err)
	}
	sqlQuery = tx.Rebind(sqlQuery)
	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		return err
	}
	return nil
}

func seedTeams(matches []match.Match) []match.Team {
	seen := make(map[string]struct{})
	out := make([]match.Team, 0)
	for _, m := range matches {
		for _, team := range []*match.Team{m.HomeTeam, m.AwayTeam} {
			if team == nil {
				continue
			}
			if _, ok := seen[team.ID]; ok {
				continue
			}
			seen[team.ID] = struct{}{}
			out = append(out, *team)
		}
	}
	return out
}

func teamID(team *match.Team) any {
	if team == nil {
		return nil
	}
	return team.ID
}

func nullableString(v string) any {
	if v == "" {
		return nil
	}
	return v
}
