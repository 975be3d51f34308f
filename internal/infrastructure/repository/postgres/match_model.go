package postgres

import (
	"database/sql"
)

// matchRowModel is one match joined with both team rows.
type matchRowModel struct {
	PublicID         string         `db:"public_id"`
	TournamentID     string         `db:"tournament_public_id"`
	Stage            string         `db:"stage"`
	Round            sql.NullInt64  `db:"round"`
	GroupNumber      sql.NullInt64  `db:"group_number"`
	BracketPosition  sql.NullInt64  `db:"bracket_position"`
	HomeTeamID       sql.NullString `db:"home_team_public_id"`
	HomeTeamName     sql.NullString `db:"home_team_name"`
	HomeTeamLogoURL  sql.NullString `db:"home_team_logo_url"`
	AwayTeamID       sql.NullString `db:"away_team_public_id"`
	AwayTeamName     sql.NullString `db:"away_team_name"`
	AwayTeamLogoURL  sql.NullString `db:"away_team_logo_url"`
	HomeTeamSource   sql.NullString `db:"home_team_source"`
	AwayTeamSource   sql.NullString `db:"away_team_source"`
	Status           string         `db:"status"`
	HomeScore        sql.NullInt64  `db:"home_score"`
	AwayScore        sql.NullInt64  `db:"away_score"`
	HomePenaltyScore sql.NullInt64  `db:"home_penalty_score"`
	AwayPenaltyScore sql.NullInt64  `db:"away_penalty_score"`
	MatchDate        sql.NullTime   `db:"match_date"`
	Venue            sql.NullString `db:"venue"`
}
