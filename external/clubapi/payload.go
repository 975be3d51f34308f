package clubapi

import (
	"strings"
	"time"

	"github.com/riskibarqy/club-brackets/internal/domain/match"
	"github.com/riskibarqy/club-brackets/internal/domain/tournament"
)

type envelope[T any] struct {
	Data T `json:"data"`
}

type tournamentPayload struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Sport          string     `json:"sport"`
	NumberOfGroups *int       `json:"number_of_groups"`
	TrophyImageURL string     `json:"trophy_image_url"`
	StartsAt       *time.Time `json:"starts_at"`
	CreatedAt      *time.Time `json:"created_at"`
}

type teamPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

type matchPayload struct {
	ID               string       `json:"id"`
	TournamentID     string       `json:"tournament_id"`
	Stage            string       `json:"stage"`
	Round            *int         `json:"round"`
	GroupNumber      *int         `json:"group_number"`
	BracketPosition  *int         `json:"bracket_position"`
	HomeTeam         *teamPayload `json:"home_team"`
	AwayTeam         *teamPayload `json:"away_team"`
	HomeTeamSource   string       `json:"home_team_source"`
	AwayTeamSource   string       `json:"away_team_source"`
	Status           string       `json:"status"`
	HomeScore        *int         `json:"home_score"`
	AwayScore        *int         `json:"away_score"`
	HomePenaltyScore *int         `json:"home_penalty_score"`
	AwayPenaltyScore *int         `json:"away_penalty_score"`
	MatchDate        *time.Time   `json:"match_date"`
	Venue            string       `json:"venue"`
}

func (p tournamentPayload) toDomain() tournament.Tournament {
	out := tournament.Tournament{
		ID:             strings.TrimSpace(p.ID),
		Name:           strings.TrimSpace(p.Name),
		Sport:          strings.TrimSpace(p.Sport),
		NumberOfGroups: p.NumberOfGroups,
		TrophyImageURL: strings.TrimSpace(p.TrophyImageURL),
	}
	if p.StartsAt != nil {
		out.StartsAt = p.StartsAt.UTC()
	}
	if p.CreatedAt != nil {
		out.CreatedAt = p.CreatedAt.UTC()
	}
	return out
}

func (p *teamPayload) toDomain() *match.Team {
	if p == nil || strings.TrimSpace(p.ID) == "" {
		return nil
	}
	return &match.Team{
		ID:      strings.TrimSpace(p.ID),
		Name:    p.Name,
		LogoURL: strings.TrimSpace(p.LogoURL),
	}
}

func (p matchPayload) toDomain(tournamentID string) match.Match {
	out := match.Match{
		ID:              strings.TrimSpace(p.ID),
		TournamentID:    strings.TrimSpace(p.TournamentID),
		Stage:           match.Stage(strings.TrimSpace(p.Stage)),
		Round:           p.Round,
		GroupNumber:     p.GroupNumber,
		BracketPosition: p.BracketPosition,
		HomeTeam:        p.HomeTeam.toDomain(),
		AwayTeam:        p.AwayTeam.toDomain(),
		HomeTeamSource:  strings.TrimSpace(p.HomeTeamSource),
		AwayTeamSource:  strings.TrimSpace(p.AwayTeamSource),
		Status:          match.NormalizeStatus(p.Status),
		HomeScore:       p.HomeScore,
		AwayScore:       p.AwayScore,
		Venue:           strings.TrimSpace(p.Venue),
	}
	if out.TournamentID == "" {
		out.TournamentID = tournamentID
	}
	if p.HomePenaltyScore != nil && p.AwayPenaltyScore != nil {
		out.Penalties = &match.PenaltyOutcome{HomeScore: *p.HomePenaltyScore, AwayScore: *p.AwayPenaltyScore}
	}
	if p.MatchDate != nil {
		out.MatchDate = p.MatchDate.UTC()
	}
	return out
}
